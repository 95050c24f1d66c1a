package validation

import (
	"strings"
)

const taxIDLength = 11

// NormalizeTaxID strips formatting (dots, dashes, whitespace) from a CPF.
// The result is only meaningful when ValidTaxID holds.
func NormalizeTaxID(raw string) string {
	var b strings.Builder
	b.Grow(len(raw))
	for _, r := range raw {
		switch r {
		case '.', '-', ' ', '\t':
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// ValidTaxID applies the CPF check-digit algorithm.
func ValidTaxID(raw string) bool {
	cpf := NormalizeTaxID(raw)
	if len(cpf) != taxIDLength {
		return false
	}

	digits := make([]int, taxIDLength)
	allSame := true
	for i := 0; i < taxIDLength; i++ {
		c := cpf[i]
		if c < '0' || c > '9' {
			return false
		}
		digits[i] = int(c - '0')
		if digits[i] != digits[0] {
			allSame = false
		}
	}
	if allSame {
		return false
	}

	return checkDigit(digits[:9], 10) == digits[9] && checkDigit(digits[:10], 11) == digits[10]
}

// checkDigit weights digits from firstWeight down to 2 and reduces mod 11.
func checkDigit(digits []int, firstWeight int) int {
	sum := 0
	for i, d := range digits {
		sum += d * (firstWeight - i)
	}
	r := sum % 11
	if r < 2 {
		return 0
	}
	return 11 - r
}

// FormatTaxID renders a normalized CPF as 000.000.000-00. Other inputs are
// returned unchanged.
func FormatTaxID(cpf string) string {
	if len(cpf) != taxIDLength {
		return cpf
	}
	return cpf[0:3] + "." + cpf[3:6] + "." + cpf[6:9] + "-" + cpf[9:11]
}
