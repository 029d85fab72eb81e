// Package cast converts raw configuration strings into typed values.
//
// A cast is an ordinary function value of type `Func[T]`. The config package
// applies casts uniformly to values resolved from the process environment, a
// settings file, or a string default, so a value behaves the same no matter
// which source it came from.
//
// # Built-in Casts
//
//   - `String` – identity, returns the raw value.
//   - `Bool` – fixed truthy/falsy token tables (`y/yes/t/true/on/1` and
//     `n/no/f/false/off/0`, case-insensitive; empty string is false).
//   - `Int`, `Int64`, `Float64`, `Duration` – thin strconv/time wrappers.
//
// # Composite Casts
//
// `Csv` splits a delimited string, strips and casts each item, and returns a
// slice; `CsvInto` additionally post-processes the slice into any container.
// `Choices`, `ChoicesOf` and `ChoicePairs` validate the cast result against a
// closed set of allowed values.
//
//	debug, err := cast.Bool(os.Getenv("DEBUG"))
//
//	hosts := cast.Csv(cast.String)
//	level := cast.Choices("debug", "info", "warn", "error")
//
// # Error Handling
//
// Conversion failures are reported with sentinel errors usable with
// `errors.Is`:
//
//   - `ErrInvalidCast` – the raw string cannot be converted.
//   - `ErrInvalidChoice` – the converted value is outside the valid set; the
//     message lists the offending value and every valid choice.
package cast
