package validation

import "testing"

func TestIsValidEmail(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"a@b.co", true},
		{"alice@example.org", true},
		{"first.last+tag@sub.domain.io", true},
		{"UPPER@CASE.COM", true},
		{"not-an-email", false},
		{"", false},
		{"missing@tld.", false},
		{"@nouser.com", false},
		{"spaces in@mail.com", false},
	}
	for _, tc := range tests {
		if got := IsValidEmail(tc.in); got != tc.want {
			t.Errorf("IsValidEmail(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestIsValidPassword(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"123456", true},
		{"longenoughpassword", true},
		{"12345", false},
		{"", false},
	}
	for _, tc := range tests {
		if got := IsValidPassword(tc.in); got != tc.want {
			t.Errorf("IsValidPassword(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestIsValidOTP(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"1234", true},
		{"0000", true},
		{"123", false},
		{"12345", false},
		{"12a4", false},
		{"", false},
		{"12 4", false},
	}
	for _, tc := range tests {
		if got := IsValidOTP(tc.in); got != tc.want {
			t.Errorf("IsValidOTP(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}
