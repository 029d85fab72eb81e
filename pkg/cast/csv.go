package cast

import "strings"

// asciiWhitespace is the default strip cutset applied to every item after
// splitting.
const asciiWhitespace = " \t\n\r\v\f"

type csvConfig struct {
	delimiter string
	strip     string
}

// CsvOption configures the Csv and CsvInto casts.
type CsvOption func(*csvConfig)

// WithDelimiter sets the item delimiter. Defaults to ",".
func WithDelimiter(delimiter string) CsvOption {
	return func(c *csvConfig) {
		if delimiter != "" {
			c.delimiter = delimiter
		}
	}
}

// WithStrip sets the cutset of characters trimmed from both ends of each item
// after splitting. Defaults to ASCII whitespace.
func WithStrip(cutset string) CsvOption {
	return func(c *csvConfig) {
		c.strip = cutset
	}
}

// Csv builds a cast that splits a delimited string and converts each item
// with the given cast. Items that are empty after stripping are dropped, so
// "a,,b" yields two items and the empty input yields an empty slice.
//
//	hosts, err := config.Resolve(cfg, "ALLOWED_HOSTS", cast.Csv(cast.String))
//	ports, err := config.Resolve(cfg, "PORTS", cast.Csv(cast.Int, cast.WithDelimiter(";")))
func Csv[T any](item Func[T], opts ...CsvOption) Func[[]T] {
	return CsvInto(item, func(items []T) []T { return items }, opts...)
}

// CsvInto is Csv with a post-process hook: after splitting, stripping and
// casting, build is applied to the item slice to produce the final container
// (a set, a sorted copy, a fixed-size tuple check, and so on).
//
//	unique := cast.CsvInto(cast.String, func(items []string) map[string]struct{} {
//	    set := make(map[string]struct{}, len(items))
//	    for _, it := range items {
//	        set[it] = struct{}{}
//	    }
//	    return set
//	})
func CsvInto[T, R any](item Func[T], build func([]T) R, opts ...CsvOption) Func[R] {
	cfg := csvConfig{
		delimiter: ",",
		strip:     asciiWhitespace,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return func(value string) (R, error) {
		var items []T
		if value != "" {
			for _, token := range strings.Split(value, cfg.delimiter) {
				token = strings.Trim(token, cfg.strip)
				if token == "" {
					continue
				}
				cast, err := item(token)
				if err != nil {
					var zero R
					return zero, err
				}
				items = append(items, cast)
			}
		}
		return build(items), nil
	}
}
