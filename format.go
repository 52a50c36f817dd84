package mtr

import (
	"fmt"
	"strconv"
	"strings"
)

// FormatCycles renders a cycle count with comma thousands separators,
// e.g. 1048576 -> "1,048,576".
func FormatCycles(n uint64) string {
	s := strconv.FormatUint(n, 10)
	return insertThousands(s)
}

// FormatRatio renders a ratio rounded to one decimal place, with the
// trailing ".0" stripped and thousands separators applied to the
// integer part, e.g. 2.0 -> "2", 2.5 -> "2.5", 1234.0 -> "1,234".
func FormatRatio(v float64) string {
	s := fmt.Sprintf("%.1f", v)
	s = strings.TrimSuffix(s, ".0")
	return insertThousands(s)
}

func insertThousands(s string) string {
	neg := strings.HasPrefix(s, "-")
	lim := 0
	if neg {
		lim = 1
	}

	dot := strings.IndexByte(s, '.')
	idx := len(s) - 3
	if dot >= 0 {
		idx = dot - 3
	}

	for idx > lim {
		s = s[:idx] + "," + s[idx:]
		idx -= 3
	}
	return s
}
