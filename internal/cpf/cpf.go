// Package cpf implements the CPF mask and check-digit validation used by the
// checkout form.
package cpf

import "strings"

// Strip removes everything but digits.
func Strip(value string) string {
	var b strings.Builder
	for _, r := range value {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// Format applies the CPF mask 000.000.000-00, formatting progressively for
// partial input.
func Format(value string) string {
	digits := Strip(value)
	if len(digits) > 11 {
		digits = digits[:11]
	}
	switch {
	case len(digits) <= 3:
		return digits
	case len(digits) <= 6:
		return digits[:3] + "." + digits[3:]
	case len(digits) <= 9:
		return digits[:3] + "." + digits[3:6] + "." + digits[6:]
	default:
		return digits[:3] + "." + digits[3:6] + "." + digits[6:9] + "-" + digits[9:]
	}
}

// IsValid runs the full check-digit algorithm. Sequences of a single repeated
// digit are rejected even though their check digits verify.
func IsValid(value string) bool {
	digits := Strip(value)
	if len(digits) != 11 {
		return false
	}

	repeated := true
	for i := 1; i < len(digits); i++ {
		if digits[i] != digits[0] {
			repeated = false
			break
		}
	}
	if repeated {
		return false
	}

	if checkDigit(digits, 9) != int(digits[9]-'0') {
		return false
	}
	return checkDigit(digits, 10) == int(digits[10]-'0')
}

// checkDigit computes the verifier digit over the first n digits, with
// weights descending from n+1.
func checkDigit(digits string, n int) int {
	sum := 0
	for i := 0; i < n; i++ {
		sum += int(digits[i]-'0') * (n + 1 - i)
	}
	remainder := (sum * 10) % 11
	if remainder == 10 {
		remainder = 0
	}
	return remainder
}
