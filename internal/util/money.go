package util

import (
	"fmt"
	"strings"
)

// FormatCentsToBRL formats an amount in integer cents as a pt-BR currency
// string, e.g. 4500 -> "R$ 45,00" and 123456789 -> "R$ 1.234.567,89".
func FormatCentsToBRL(cents int64) string {
	sign := ""
	if cents < 0 {
		sign = "-"
		cents = -cents
	}

	reais := cents / 100
	centavos := cents % 100

	return fmt.Sprintf("%sR$ %s,%02d", sign, groupThousands(reais), centavos)
}

// groupThousands inserts pt-BR thousands separators into a non-negative integer.
func groupThousands(n int64) string {
	digits := fmt.Sprintf("%d", n)
	if len(digits) <= 3 {
		return digits
	}

	var b strings.Builder
	head := len(digits) % 3
	if head > 0 {
		b.WriteString(digits[:head])
	}
	for i := head; i < len(digits); i += 3 {
		if b.Len() > 0 {
			b.WriteByte('.')
		}
		b.WriteString(digits[i : i+3])
	}

	return b.String()
}
