package utils

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrInvalidRangeFormat is returned when a range/list token cannot be parsed
var ErrInvalidRangeFormat = errors.New("invalid range format")

// ExpandRangeList expands a list of tokens like ["2020-2022", "5"] into the
// concrete integers they denote. A "start-end" token is inclusive and must be
// ascending. Input order and duplicates are preserved, nothing is sorted or
// de-duplicated.
func ExpandRangeList(parts []string) ([]int, error) {
	result := make([]int, 0, len(parts))

	for _, part := range parts {
		token := strings.TrimSpace(part)

		if strings.Contains(token, "-") {
			bounds := strings.SplitN(token, "-", 2)

			start, err := strconv.Atoi(strings.TrimSpace(bounds[0]))
			if err != nil {
				return nil, fmt.Errorf("%w: %q", ErrInvalidRangeFormat, part)
			}

			end, err := strconv.Atoi(strings.TrimSpace(bounds[1]))
			if err != nil {
				return nil, fmt.Errorf("%w: %q", ErrInvalidRangeFormat, part)
			}

			if start > end {
				return nil, fmt.Errorf("%w: descending range %q", ErrInvalidRangeFormat, part)
			}

			for v := start; v <= end; v++ {
				result = append(result, v)
			}

			continue
		}

		value, err := strconv.Atoi(token)
		if err != nil {
			return nil, fmt.Errorf("%w: %q", ErrInvalidRangeFormat, part)
		}

		result = append(result, value)
	}

	return result, nil
}

// SplitCSV splits a comma separated input field into trimmed tokens,
// dropping empty entries.
func SplitCSV(input string) []string {
	raw := strings.Split(input, ",")

	tokens := make([]string, 0, len(raw))
	for _, t := range raw {
		t = strings.TrimSpace(t)
		if t != "" {
			tokens = append(tokens, t)
		}
	}

	return tokens
}
