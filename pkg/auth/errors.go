package auth

import (
	"errors"
	"fmt"
)

// MsgUnexpected is shown when an error carries no usable message.
const MsgUnexpected = "An unexpected error occurred. Please try again."

// Known provider error messages.
const (
	ProviderInvalidCredentials = "Invalid login credentials"
	ProviderEmailNotConfirmed  = "Email not confirmed"
	ProviderUserRegistered     = "User already registered"
	ProviderPasswordTooShort   = "Password should be at least 6 characters"
)

// ErrorMessage maps a provider error to user-facing text. Unknown errors
// keep their own message; nil or empty errors get MsgUnexpected. A wrapped
// ProviderError is translated from its own message, not the wrapping text.
func ErrorMessage(err error) string {
	if err == nil {
		return MsgUnexpected
	}
	var pe *ProviderError
	if errors.As(err, &pe) {
		return friendly(pe.Message)
	}
	return friendly(err.Error())
}

// MessageFor is ErrorMessage for loosely typed values: strings are returned
// unchanged, errors and fmt.Stringers are translated, anything else gets
// MsgUnexpected.
func MessageFor(v any) string {
	switch e := v.(type) {
	case string:
		return e
	case error:
		return ErrorMessage(e)
	case fmt.Stringer:
		return friendly(e.String())
	}
	return MsgUnexpected
}

func friendly(msg string) string {
	switch msg {
	case "":
		return MsgUnexpected
	case ProviderInvalidCredentials:
		return "Invalid email or password. Please try again."
	case ProviderEmailNotConfirmed:
		return "Please check your email and click the confirmation link."
	case ProviderUserRegistered:
		return "An account with this email already exists."
	case ProviderPasswordTooShort:
		return "Password must be at least 6 characters long."
	}
	return msg
}

// ProviderError is an error returned by the auth provider.
type ProviderError struct {
	Status  int
	Message string
}

func (e *ProviderError) Error() string { return e.Message }

// IsProviderError reports whether err wraps a ProviderError.
func IsProviderError(err error) bool {
	var pe *ProviderError
	return errors.As(err, &pe)
}
