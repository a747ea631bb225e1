// Package query turns loosely-structured HTTP query parameters into
// parameterized SQL for the three listing endpoints.
package query

import (
	"strconv"
	"strings"
)

// DefaultLimit caps the incidents listing when no usable limit is supplied.
const DefaultLimit = 1000

// SplitList splits a raw comma-delimited parameter into trimmed tokens,
// preserving order and duplicates. An absent or empty parameter, or one
// whose tokens are all blank, yields nil, which downstream treats as
// "no filter on this field".
func SplitList(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	var tokens []string
	for _, part := range strings.Split(raw, ",") {
		if token := strings.TrimSpace(part); token != "" {
			tokens = append(tokens, token)
		}
	}
	return tokens
}

// IntList maps the tokens of a comma-delimited parameter through integer
// parsing, dropping tokens that do not parse. Returns nil when no token
// survives, so a fully malformed filter collapses to "absent".
func IntList(raw string) []int64 {
	var vals []int64
	for _, token := range SplitList(raw) {
		n, err := strconv.ParseInt(token, 10, 64)
		if err != nil {
			continue
		}
		vals = append(vals, n)
	}
	return vals
}

// Limit parses the limit parameter, falling back to DefaultLimit when it
// is missing, non-numeric, or non-positive.
func Limit(raw string) int64 {
	n, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	if err != nil || n <= 0 {
		return DefaultLimit
	}
	return n
}
