// Restotrack - Personal Restaurant Tracker
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/restotrack

package query

import (
	"errors"
	"math"
	"strconv"
	"strings"
	"unicode"
)

const infinity = "Infinity"

// parseLeadingFloat reads the longest decimal number at the start of s,
// after leading white space, and ignores whatever follows it: "2 miles" is
// 2 and "1.5km" is 1.5. ok is false when s does not start with a number.
func parseLeadingFloat(s string) (v float64, ok bool) {
	s = strings.TrimLeftFunc(s, unicode.IsSpace)

	i := 0
	neg := false
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		neg = s[i] == '-'
		i++
	}

	if strings.HasPrefix(s[i:], infinity) {
		if neg {
			return math.Inf(-1), true
		}
		return math.Inf(1), true
	}

	intDigits := scanDigits(s, i)
	end := intDigits
	fracDigits := 0
	if end < len(s) && s[end] == '.' {
		fracEnd := scanDigits(s, end+1)
		fracDigits = fracEnd - (end + 1)
		if fracDigits > 0 || intDigits > i {
			end = fracEnd
		}
	}
	if intDigits == i && fracDigits == 0 {
		return 0, false
	}

	if end < len(s) && (s[end] == 'e' || s[end] == 'E') {
		j := end + 1
		if j < len(s) && (s[j] == '+' || s[j] == '-') {
			j++
		}
		if expEnd := scanDigits(s, j); expEnd > j {
			end = expEnd
		}
	}

	num := strings.TrimSuffix(s[:end], ".")
	v, err := strconv.ParseFloat(num, 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return 0, false
	}
	return v, true
}

// scanDigits returns the index of the first non-digit at or after i.
func scanDigits(s string, i int) int {
	for i < len(s) && s[i] >= '0' && s[i] <= '9' {
		i++
	}
	return i
}
