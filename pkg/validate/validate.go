package validate

import (
	"regexp"
	"strings"
)

const (
	MinNameLen     = 3
	MaxBioLen      = 300
	MinPasswordLen = 6
)

var (
	emailRe = regexp.MustCompile(`^[\w.-]+@([\w-]+\.)+[\w-]{2,4}$`)
	phoneRe = regexp.MustCompile(`^\d{10}$`)
	otpRe   = regexp.MustCompile(`^\d{6}$`)
)

func IsEmail(s string) bool {
	return emailRe.MatchString(s)
}

// IsPhone accepts a bare 10-digit national number.
func IsPhone(s string) bool {
	return phoneRe.MatchString(s)
}

func IsOTP(s string) bool {
	return otpRe.MatchString(s)
}

func IsName(s string) bool {
	return len([]rune(strings.TrimSpace(s))) >= MinNameLen
}

func IsBio(s string) bool {
	return len([]rune(s)) <= MaxBioLen
}

func NormalizeEmail(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
