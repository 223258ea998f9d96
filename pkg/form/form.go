// Package form adapts schemas to form submissions: it runs a schema plus any
// business rules over arbitrary input and reports every failing field with a
// dotted path and a message, without panicking.
package form

import (
	"fmt"
	"reflect"
	"slices"
	"time"

	"github.com/mitchellh/mapstructure"

	"github.com/aretw0/tabitha/pkg/schema"
	"github.com/aretw0/tabitha/pkg/validation"
)

// Rule is a cross-field business check over the raw payload. It runs
// alongside the structural schema and its failures are accumulated with
// the structural ones.
type Rule func(data map[string]any) []validation.FieldError

// Result is the outcome of a form validation. On success Data holds the
// cleaned payload; on failure Errors lists every failing field.
type Result struct {
	Success bool                    `json:"success"`
	Data    map[string]any          `json:"data,omitempty"`
	Errors  []validation.FieldError `json:"errors,omitempty"`
}

// Validator checks a payload against a schema and rules.
type Validator struct {
	schema schema.Schema
	rules  []Rule
}

// NewValidator returns a form validator for s.
func NewValidator(s schema.Schema, rules ...Rule) *Validator {
	return &Validator{schema: s, rules: rules}
}

// Schema returns the structural schema.
func (v *Validator) Schema() schema.Schema { return v.schema }

// Validate runs the schema and rules over data. data may be any map with
// string keys; anything else is rejected as a whole.
func (v *Validator) Validate(data any) Result {
	m, ok := toMap(data)
	if !ok {
		return Result{Errors: []validation.FieldError{{Message: fmt.Sprintf("expected object, got %T", data)}}}
	}

	clean, err := schema.Parse(v.schema, m)
	errs := FieldErrors(err)
	for _, rule := range v.rules {
		errs = append(errs, rule(m)...)
	}

	if len(errs) > 0 {
		slices.SortStableFunc(errs, func(a, b validation.FieldError) int {
			switch {
			case a.Field < b.Field:
				return -1
			case a.Field > b.Field:
				return 1
			}
			return 0
		})
		return Result{Errors: errs}
	}
	return Result{Success: true, Data: clean}
}

// Func returns v.Validate as a plain function.
func (v *Validator) Func() func(data any) Result {
	return v.Validate
}

// FieldErrors converts schema validation failures into field errors. Any
// other error becomes a single error without a field.
func FieldErrors(err error) []validation.FieldError {
	if err == nil {
		return nil
	}
	verrs := schema.ValidationErrors(err)
	if verrs == nil {
		return []validation.FieldError{{Message: err.Error()}}
	}
	out := make([]validation.FieldError, 0, len(verrs))
	for _, e := range verrs {
		if ve, ok := e.(*schema.ValidationError); ok {
			out = append(out, validation.FieldError{Field: ve.Key, Message: ve.Reason})
			continue
		}
		out = append(out, validation.FieldError{Message: e.Error()})
	}
	return out
}

// Decode copies cleaned form data into a typed record using its json tags.
func Decode(data map[string]any, out any) error {
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		TagName:    "json",
		Squash:     true,
		Result:     out,
		DecodeHook: mapstructure.StringToTimeHookFunc(time.RFC3339Nano),
	})
	if err != nil {
		return fmt.Errorf("form: build decoder: %w", err)
	}
	if err := dec.Decode(data); err != nil {
		return fmt.Errorf("form: decode: %w", err)
	}
	return nil
}

func toMap(data any) (map[string]any, bool) {
	if m, ok := data.(map[string]any); ok {
		return m, m != nil
	}
	if data == nil {
		return nil, false
	}
	rv := reflect.ValueOf(data)
	if rv.Kind() != reflect.Map || rv.Type().Key().Kind() != reflect.String || rv.IsNil() {
		return nil, false
	}
	m := make(map[string]any, rv.Len())
	iter := rv.MapRange()
	for iter.Next() {
		m[iter.Key().String()] = iter.Value().Interface()
	}
	return m, true
}
