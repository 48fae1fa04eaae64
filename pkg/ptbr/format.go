// Package ptbr formats numbers the way pt-BR locale output does:
// dot as thousands separator, comma as decimal separator.
package ptbr

import (
	"strconv"
	"strings"
)

// FormatInt renders 8000 as "8.000".
func FormatInt(n int64) string {
	s := strconv.FormatInt(n, 10)
	neg := false
	if strings.HasPrefix(s, "-") {
		neg = true
		s = s[1:]
	}

	var b strings.Builder
	for i, r := range s {
		if i > 0 && (len(s)-i)%3 == 0 {
			b.WriteByte('.')
		}
		b.WriteRune(r)
	}

	if neg {
		return "-" + b.String()
	}
	return b.String()
}

// FormatFloat renders with the given number of decimals, comma-separated:
// FormatFloat(1234.5, 1) == "1.234,5".
func FormatFloat(v float64, decimals int) string {
	s := strconv.FormatFloat(v, 'f', decimals, 64)
	intPart, fracPart, hasFrac := strings.Cut(s, ".")

	n, err := strconv.ParseInt(intPart, 10, 64)
	if err != nil {
		return s
	}

	out := FormatInt(n)
	if hasFrac {
		out += "," + fracPart
	}
	return out
}
