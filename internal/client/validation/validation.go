// Package validation holds the pure field predicates driving form state on
// the login and OTP screens. Each predicate is a function of the current
// input only; no storage or network is touched.
package validation

import "regexp"

var emailRe = regexp.MustCompile(`^[A-Z0-9a-z._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,64}$`)

// IsValidEmail reports whether s looks like an email address.
func IsValidEmail(s string) bool {
	return emailRe.MatchString(s)
}

// IsValidPassword reports whether s meets the minimum password length.
func IsValidPassword(s string) bool {
	return len(s) >= 6
}

// IsValidOTP reports whether s is exactly four decimal digits.
func IsValidOTP(s string) bool {
	if len(s) != 4 {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
