package form

import (
	"github.com/aretw0/tabitha/pkg/validation"
)

// TypedResult is a Result whose data has been decoded into T.
type TypedResult[T any] struct {
	Success bool
	Data    T
	Errors  []validation.FieldError
}

// Typed wraps a Validator and decodes successful payloads into T.
type Typed[T any] struct {
	*Validator
}

// For returns a typed form validator.
func For[T any](v *Validator) Typed[T] {
	return Typed[T]{Validator: v}
}

// Validate runs the validator and decodes the cleaned data into T.
func (t Typed[T]) Validate(data any) TypedResult[T] {
	res := t.Validator.Validate(data)
	if !res.Success {
		return TypedResult[T]{Errors: res.Errors}
	}
	var out T
	if err := Decode(res.Data, &out); err != nil {
		return TypedResult[T]{Errors: []validation.FieldError{{Message: err.Error()}}}
	}
	return TypedResult[T]{Success: true, Data: out}
}
