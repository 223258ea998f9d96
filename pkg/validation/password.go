package validation

import (
	"unicode/utf8"

	"github.com/aretw0/tabitha/pkg/config"
)

// Password rule messages, in evaluation order.
const (
	MsgPasswordLength    = "Password must be at least 8 characters long"
	MsgPasswordUppercase = "Password must contain at least one uppercase letter"
	MsgPasswordLowercase = "Password must contain at least one lowercase letter"
	MsgPasswordDigit     = "Password must contain at least one number"
)

// ValidatePassword checks length, uppercase, lowercase and digit rules and
// reports every one that fails.
func ValidatePassword(password string) Result {
	var hasUpper, hasLower, hasDigit bool
	for _, r := range password {
		switch {
		case 'A' <= r && r <= 'Z':
			hasUpper = true
		case 'a' <= r && r <= 'z':
			hasLower = true
		case '0' <= r && r <= '9':
			hasDigit = true
		}
	}

	var errs []string
	if utf8.RuneCountInString(password) < config.PasswordMinLength {
		errs = append(errs, MsgPasswordLength)
	}
	if !hasUpper {
		errs = append(errs, MsgPasswordUppercase)
	}
	if !hasLower {
		errs = append(errs, MsgPasswordLowercase)
	}
	if !hasDigit {
		errs = append(errs, MsgPasswordDigit)
	}
	return newResult(errs)
}
