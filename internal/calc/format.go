package calc

import (
	"math"
	"strconv"
	"strings"
)

// FormatResult renders an evaluation result for the display. Integral values
// drop the fractional part; everything else gets two decimals rounded half
// away from zero on the shortest decimal form of v.
func FormatResult(v float64, sep rune) string {
	var s string
	if v == math.Trunc(v) {
		s = strconv.FormatFloat(v, 'f', 0, 64)
		if s == "-0" {
			s = "0"
		}
	} else {
		s = roundHalfUp(v, 2)
	}
	if sep != '.' {
		s = strings.Replace(s, ".", string(sep), 1)
	}
	return s
}

func roundHalfUp(v float64, places int) string {
	digits := strconv.FormatFloat(math.Abs(v), 'f', -1, 64)
	whole, frac, _ := strings.Cut(digits, ".")
	if len(frac) < places {
		frac += strings.Repeat("0", places-len(frac))
	}
	n := whole + frac[:places]
	if len(frac) > places && frac[places] >= '5' {
		n = incrementDigits(n)
	}
	whole, frac = n[:len(n)-places], n[len(n)-places:]
	if whole == "" {
		whole = "0"
	}
	sign := ""
	if v < 0 && strings.Trim(n, "0") != "" {
		sign = "-"
	}
	return sign + whole + "." + frac
}

// incrementDigits adds one to a non-empty string of decimal digits.
func incrementDigits(n string) string {
	b := []byte(n)
	for i := len(b) - 1; i >= 0; i-- {
		if b[i] < '9' {
			b[i]++
			return string(b)
		}
		b[i] = '0'
	}
	return "1" + string(b)
}
