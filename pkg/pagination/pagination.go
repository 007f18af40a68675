package pagination

import "strconv"

// Query holds the raw page/limit query parameters
type Query struct {
	Page  string
	Limit string
}

// Options control the clamp bounds applied by Validate
type Options struct {
	MaxLimit     int
	DefaultLimit int
	DefaultPage  int
}

// Validated is the clamped pagination result
type Validated struct {
	Page  int
	Limit int
}

// DefaultOptions returns the standard pagination bounds
func DefaultOptions() Options {
	return Options{
		MaxLimit:     100,
		DefaultLimit: 10,
		DefaultPage:  1,
	}
}

// Validate parses and clamps pagination parameters.
//
// Page defaults to opts.DefaultPage when missing or non-numeric and is never
// below it. Limit defaults to opts.DefaultLimit when missing; a non-numeric
// limit falls to the lower clamp bound 1, and the result is clamped to
// [1, opts.MaxLimit].
func Validate(query Query, opts Options) Validated {
	if opts.MaxLimit == 0 {
		opts = DefaultOptions()
	}

	page := parseOr(query.Page, opts.DefaultPage, opts.DefaultPage)
	if page < opts.DefaultPage {
		page = opts.DefaultPage
	}

	limit := parseOr(query.Limit, opts.DefaultLimit, 1)
	if limit < 1 {
		limit = 1
	}
	if limit > opts.MaxLimit {
		limit = opts.MaxLimit
	}

	return Validated{Page: page, Limit: limit}
}

// parseOr parses raw as an integer, returning whenEmpty for a missing value
// and whenMalformed when parsing fails.
func parseOr(raw string, whenEmpty, whenMalformed int) int {
	if raw == "" {
		return whenEmpty
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return whenMalformed
	}
	return n
}

// Offset converts the validated page/limit into a query offset
func (v Validated) Offset() int {
	return (v.Page - 1) * v.Limit
}
