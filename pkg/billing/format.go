package billing

import (
	"fmt"
	"strconv"
)

// FormatINR renders a paise amount as an Indian-grouped rupee string, e.g.
// 265500 -> "₹2,655" and 20250 -> "₹202.50". Paise are shown only when
// non-zero. Formatting is display-only and never feeds back into totals.
func FormatINR(paise int64) string {
	sign := ""
	if paise < 0 {
		sign = "-"
		paise = -paise
	}

	rupees := paise / 100
	frac := paise % 100

	s := groupIndian(rupees)
	if frac != 0 {
		s += fmt.Sprintf(".%02d", frac)
	}
	return sign + "₹" + s
}

// groupIndian applies Indian digit grouping: the last three digits, then
// groups of two (12,34,56,789).
func groupIndian(n int64) string {
	s := strconv.FormatInt(n, 10)
	if len(s) <= 3 {
		return s
	}

	head := s[:len(s)-3]
	out := s[len(s)-3:]
	for len(head) > 2 {
		out = head[len(head)-2:] + "," + out
		head = head[:len(head)-2]
	}
	return head + "," + out
}
