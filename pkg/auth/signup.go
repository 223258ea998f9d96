package auth

import (
	"strings"

	"github.com/aretw0/tabitha/pkg/config"
	"github.com/aretw0/tabitha/pkg/domain"
	"github.com/aretw0/tabitha/pkg/schema"
	"github.com/aretw0/tabitha/pkg/validation"
)

// Registration is the sign-up payload handed to the auth provider.
type Registration struct {
	Email       string         `json:"email" yaml:"email"`
	Password    string         `json:"password" yaml:"password"`
	Name        string         `json:"name" yaml:"name"`
	Age         *int           `json:"age" yaml:"age"`
	Gender      *domain.Gender `json:"gender,omitempty" yaml:"gender,omitempty"`
	ParentEmail *string        `json:"parentEmail,omitempty" yaml:"parentEmail,omitempty"`
}

// UserData extracts the profile fields checked by validation.ValidateUserData.
func (r Registration) UserData() validation.UserData {
	u := validation.UserData{Name: r.Name, Age: r.Age}
	if r.ParentEmail != nil {
		u.ParentEmail = *r.ParentEmail
	}
	return u
}

// ValidateSignUp runs every pre-submission check and reports all failures:
// email, then password rules, then profile rules. The result is empty when
// the registration may be sent.
func ValidateSignUp(r Registration) []validation.FieldError {
	var errs []validation.FieldError

	if !validation.ValidateEmail(strings.TrimSpace(r.Email)) {
		errs = append(errs, validation.FieldError{Field: "email", Message: config.MsgInvalidEmail})
	}

	for _, msg := range validation.ValidatePassword(r.Password).Errors {
		errs = append(errs, validation.FieldError{Field: "password", Message: msg})
	}

	if r.Gender != nil {
		switch *r.Gender {
		case domain.GenderMale, domain.GenderFemale, domain.GenderOther:
		default:
			errs = append(errs, validation.FieldError{Field: "gender", Message: "must be one of: male, female, other"})
		}
	}

	for _, msg := range validation.ValidateUserData(r.UserData()).Errors {
		errs = append(errs, validation.FieldError{Field: userDataField(msg), Message: msg})
	}

	return errs
}

// ValidateSignIn checks the email before a sign-in attempt.
func ValidateSignIn(email string) []validation.FieldError {
	if !validation.ValidateEmail(strings.TrimSpace(email)) {
		return []validation.FieldError{{Field: "email", Message: config.MsgInvalidEmail}}
	}
	return nil
}

// NormalizeEmail trims and lowercases an address the way the provider
// stores it.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// SignUpMetadata is the user metadata attached to the provider account.
// Keys use the provider's snake_case convention; absent optional values are
// omitted.
func SignUpMetadata(r Registration) map[string]any {
	md := map[string]any{"name": r.Name}
	if r.Age != nil {
		md["age"] = *r.Age
	}
	if r.Gender != nil {
		md["gender"] = string(*r.Gender)
	}
	if r.ParentEmail != nil && *r.ParentEmail != "" {
		md["parent_email"] = NormalizeEmail(*r.ParentEmail)
	}
	return md
}

// NewUser converts an accepted registration into the user creation payload.
func (r Registration) NewUser() domain.NewUser {
	u := domain.NewUser{
		Email:     NormalizeEmail(r.Email),
		Name:      strings.TrimSpace(r.Name),
		Gender:    r.Gender,
		Interests: []string{},
	}
	if r.Age != nil {
		u.Age = *r.Age
	}
	if r.ParentEmail != nil && *r.ParentEmail != "" {
		pe := NormalizeEmail(*r.ParentEmail)
		u.ParentEmail = &pe
	}
	return u
}

func userDataField(msg string) string {
	switch msg {
	case validation.MsgNameLength:
		return "name"
	case validation.MsgAgeRange:
		return "age"
	case validation.MsgParentEmailRequired:
		return "parentEmail"
	}
	return ""
}

// RegistrationSchema is the structure of an untyped registration payload.
// Profile rules (name, age, parent email) are applied by CheckUserData and
// password rules by CheckPassword.
func RegistrationSchema() schema.Schema {
	s := domain.NewUserSchema()
	delete(s, "interests")
	s["password"] = schema.String()
	s["name"] = schema.String()
	s["age"] = schema.Int()
	s["parentEmail"] = schema.Optional(schema.String())
	return s
}

// CheckUserData runs validation.ValidateUserData over an untyped payload.
// A non-string name or a missing or non-integer age is left to the
// structural check.
func CheckUserData(data map[string]any) []validation.FieldError {
	name, nameOK := data["name"].(string)
	u := validation.UserData{Name: name}
	if v, err := schema.ParseValue(schema.Int(), data["age"]); err == nil {
		age := v.(int)
		u.Age = &age
	}
	u.ParentEmail, _ = data["parentEmail"].(string)

	var errs []validation.FieldError
	for _, msg := range validation.ValidateUserData(u).Errors {
		field := userDataField(msg)
		if (field == "name" && !nameOK) || (field == "age" && u.Age == nil) {
			continue
		}
		errs = append(errs, validation.FieldError{Field: field, Message: msg})
	}
	return errs
}

// LoginSchema validates an untyped sign-in payload.
func LoginSchema() schema.Schema {
	return schema.Schema{
		"email":    schema.String(schema.Email().WithMessage(config.MsgInvalidEmail)),
		"password": schema.String(schema.MinLen(1).WithMessage(config.MsgRequiredField)),
	}
}

// CheckPassword applies the password rules to an untyped payload. A missing
// or non-string password is left to the structural check.
func CheckPassword(data map[string]any) []validation.FieldError {
	pw, ok := data["password"].(string)
	if !ok {
		return nil
	}
	var errs []validation.FieldError
	for _, msg := range validation.ValidatePassword(pw).Errors {
		errs = append(errs, validation.FieldError{Field: "password", Message: msg})
	}
	return errs
}
