package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/aretw0/tabitha/pkg/config"
)

// Custom struct tags backed by the validators in this package, so that
// typed records and untyped schemas agree on every format.
const (
	TagEmail = "email_address"
	TagURL   = "absolute_url"
	TagUUID  = "canonical_uuid"
)

// structValidator is built once; validator.Validate caches struct metadata
// and is safe for concurrent use.
var structValidator = newStructValidator()

func newStructValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name == "" {
			return f.Name
		}
		return name
	})

	must := func(tag string, fn func(string) bool) {
		err := v.RegisterValidation(tag, func(fl validator.FieldLevel) bool {
			return fn(fl.Field().String())
		})
		if err != nil {
			panic(fmt.Sprintf("validation: register %s: %v", tag, err))
		}
	}
	must(TagEmail, ValidateEmail)
	must(TagURL, ValidateURL)
	must(TagUUID, ValidateUUID)

	return v
}

// Struct validates a typed record using its `validate` struct tags and
// returns one FieldError per violated constraint, keyed by JSON field path.
// A nil or non-struct argument is a programming error and is returned as a
// single FieldError with an empty field.
func Struct(v any) []FieldError {
	err := structValidator.Struct(v)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return []FieldError{{Message: err.Error()}}
	}

	out := make([]FieldError, 0, len(verrs))
	for _, fe := range verrs {
		out = append(out, FieldError{
			Field:   fieldPath(fe.Namespace()),
			Message: message(fe),
		})
	}
	return out
}

// fieldPath drops the root struct name from a validator namespace and turns
// slice indexes into path segments: "NewWishlist.items[0].notes" becomes
// "items.0.notes".
func fieldPath(ns string) string {
	if i := strings.IndexByte(ns, '.'); i >= 0 {
		ns = ns[i+1:]
	}
	ns = strings.ReplaceAll(ns, "[", ".")
	return strings.ReplaceAll(ns, "]", "")
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return config.MsgRequiredField
	case TagEmail:
		return config.MsgInvalidEmail
	case TagURL:
		return config.MsgInvalidURL
	case TagUUID:
		return config.MsgInvalidID
	case "oneof":
		return fmt.Sprintf("must be one of: %s", strings.ReplaceAll(fe.Param(), " ", ", "))
	case "len":
		return fmt.Sprintf("must contain exactly %s character(s)", fe.Param())
	}

	isString := fe.Kind() == reflect.String
	switch fe.Tag() {
	case "min", "gte":
		if isString {
			return fmt.Sprintf("must contain at least %s character(s)", fe.Param())
		}
		return fmt.Sprintf("must be greater than or equal to %s", fe.Param())
	case "max", "lte":
		if isString {
			return fmt.Sprintf("must contain at most %s character(s)", fe.Param())
		}
		return fmt.Sprintf("must be less than or equal to %s", fe.Param())
	}
	return fmt.Sprintf("failed on the %q rule", fe.Tag())
}
