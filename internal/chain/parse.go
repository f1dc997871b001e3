package chain

import (
	"strconv"
	"strings"
)

// ParseFloats parses a comma-separated list of floating point values.
// Whitespace around tokens is ignored. A non-numeric token fails the
// whole parse with a *ParseError wrapping ErrInvalidInput; no partial
// list is returned.
func ParseFloats(s string) ([]float64, error) {
	if strings.TrimSpace(s) == "" {
		return nil, ErrEmptyList
	}

	tokens := strings.Split(s, ",")
	vals := make([]float64, 0, len(tokens))
	for i, tok := range tokens {
		trimmed := strings.TrimSpace(tok)
		v, err := strconv.ParseFloat(trimmed, 64)
		if err != nil {
			return nil, &ParseError{Token: trimmed, Position: i, Wrapped: err}
		}
		vals = append(vals, v)
	}
	return vals, nil
}
