package validation

import (
	"strings"
	"unicode/utf8"

	"github.com/aretw0/tabitha/pkg/config"
)

// User data rule messages, in evaluation order.
const (
	MsgNameLength          = "Name must be at least 2 characters long"
	MsgAgeRange            = "Age must be between 6 and 16"
	MsgParentEmailRequired = "Parent email is required for users under 13"
)

// UserData is the profile part of a registration form. Age is nil when the
// field was left empty; ParentEmail is empty when not provided.
type UserData struct {
	Name        string
	Age         *int
	ParentEmail string
}

// NewUserData builds a UserData with the age set.
func NewUserData(name string, age int, parentEmail string) UserData {
	return UserData{Name: name, Age: &age, ParentEmail: parentEmail}
}

// ValidateUserData checks the name length, the age range and, for children
// under 13, the presence and validity of a parent email.
func ValidateUserData(u UserData) Result {
	var errs []string

	if utf8.RuneCountInString(strings.TrimSpace(u.Name)) < config.NameMinLength {
		errs = append(errs, MsgNameLength)
	}

	if u.Age == nil || !ValidateAge(*u.Age) {
		errs = append(errs, MsgAgeRange)
	}

	if RequiresParentEmail(u.Age) && !ValidateEmail(u.ParentEmail) {
		errs = append(errs, MsgParentEmailRequired)
	}

	return newResult(errs)
}

// RequiresParentEmail reports whether a user of the given age must supply a
// parent email. An unknown age never triggers the rule.
func RequiresParentEmail(age *int) bool {
	return age != nil && *age < config.ParentEmailAgeThreshold
}
