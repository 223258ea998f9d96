package schema

import (
	"errors"
	"fmt"
	"reflect"
	"slices"
	"strconv"
)

// Schema is a map of field names to their expected types.
// Example: {"name": String(MinLen(1)), "tags": Slice(String())}
type Schema map[string]Type

// Keys returns the field names in sorted order.
func (s Schema) Keys() []string {
	keys := make([]string, 0, len(s))
	for k := range s {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}

// Validate checks if data conforms to the schema.
// Returns an error with all validation failures found.
func Validate(schema Schema, data map[string]any) error {
	_, err := Parse(schema, data)
	return err
}

// Parse validates data and returns a cleaned copy holding only the declared
// fields, with defaults applied and values normalized.
func Parse(schema Schema, data map[string]any) (map[string]any, error) {
	if len(schema) == 0 {
		// No schema = no validation
		return data, nil
	}

	out, errs := parseObject("", schema, data)
	if len(errs) > 0 {
		return nil, &AggregateError{Errors: errs}
	}
	return out, nil
}

// ParseValue validates a single value of any shape against t. A root value
// that is not an object is reported with an empty key.
func ParseValue(t Type, value any) (any, error) {
	out, err := parseValue("", t, value)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// ValidateFields validates only specific fields from data against the schema.
// Missing fields are treated as an error.
func ValidateFields(schema Schema, data map[string]any, fields ...string) error {
	if len(fields) == 0 {
		// No fields to validate
		return nil
	}

	var errs []error

	for _, fieldName := range fields {
		fieldType, exists := schema[fieldName]
		if !exists {
			// Field not defined in schema
			errs = append(errs, &ValidationError{
				Key:    fieldName,
				Reason: "not defined in schema",
				Value:  nil,
			})
			continue
		}

		value, fieldExists := data[fieldName]
		if !fieldExists && !IsOptional(fieldType) {
			errs = append(errs, &ValidationError{
				Key:    fieldName,
				Reason: "required",
				Value:  nil,
			})
			continue
		}

		if _, err := parseValue(fieldName, fieldType, value); err != nil {
			errs = append(errs, ValidationErrors(err)...)
		}
	}

	if len(errs) > 0 {
		return &AggregateError{Errors: errs}
	}

	return nil
}

func parseObject(path string, schema Schema, data map[string]any) (map[string]any, []error) {
	out := make(map[string]any, len(schema))
	var errs []error

	for _, key := range schema.Keys() {
		fieldType := schema[key]
		fieldPath := join(path, key)
		value, exists := data[key]

		if !exists || value == nil {
			switch t := fieldType.(type) {
			case *DefaultType:
				out[key] = t.Value
				continue
			case *OptionalType, *AnyType:
				continue
			}
			errs = append(errs, &ValidationError{Key: fieldPath, Reason: "required"})
			continue
		}

		v, err := parseValue(fieldPath, fieldType, value)
		if err != nil {
			errs = append(errs, ValidationErrors(err)...)
			continue
		}
		out[key] = v
	}

	return out, errs
}

func parseValue(path string, t Type, value any) (any, error) {
	switch tt := t.(type) {
	case *OptionalType:
		if value == nil {
			return nil, nil
		}
		return parseValue(path, tt.Inner, value)

	case *DefaultType:
		if value == nil {
			return tt.Value, nil
		}
		return parseValue(path, tt.Inner, value)

	case *ObjectType:
		m, ok := asMap(value)
		if !ok {
			return nil, single(path, fmt.Sprintf("expected object, got %s", typeName(value)), value)
		}
		out, errs := parseObject(path, tt.Fields, m)
		if len(errs) > 0 {
			return nil, &AggregateError{Errors: errs}
		}
		return out, nil

	case *SliceType:
		rv := reflect.ValueOf(value)
		if value == nil || (rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array) {
			return nil, single(path, fmt.Sprintf("expected array, got %s", typeName(value)), value)
		}
		out := make([]any, rv.Len())
		var errs []error
		for i := 0; i < rv.Len(); i++ {
			elem := rv.Index(i).Interface()
			v, err := parseValue(join(path, strconv.Itoa(i)), tt.elemType, elem)
			if err != nil {
				errs = append(errs, ValidationErrors(err)...)
				continue
			}
			out[i] = v
		}
		if len(errs) > 0 {
			return nil, &AggregateError{Errors: errs}
		}
		return out, nil
	}

	if err := t.Validate(value); err != nil {
		var errs []error
		if multi, ok := err.(interface{ Unwrap() []error }); ok {
			for _, e := range multi.Unwrap() {
				errs = append(errs, &ValidationError{Key: path, Reason: e.Error(), Value: value})
			}
		} else {
			errs = append(errs, &ValidationError{Key: path, Reason: err.Error(), Value: value})
		}
		return nil, &AggregateError{Errors: errs}
	}

	if n, ok := t.(Normalizer); ok {
		return n.Normalize(value), nil
	}
	return value, nil
}

func single(path, reason string, value any) error {
	return &AggregateError{Errors: []error{&ValidationError{Key: path, Reason: reason, Value: value}}}
}

func asMap(value any) (map[string]any, bool) {
	switch m := value.(type) {
	case map[string]any:
		return m, true
	case nil:
		return nil, false
	}
	rv := reflect.ValueOf(value)
	if rv.Kind() != reflect.Map || rv.Type().Key().Kind() != reflect.String {
		return nil, false
	}
	out := make(map[string]any, rv.Len())
	iter := rv.MapRange()
	for iter.Next() {
		out[iter.Key().String()] = iter.Value().Interface()
	}
	return out, true
}

func join(path, key string) string {
	if path == "" {
		return key
	}
	return path + "." + key
}

// IsValidationError reports whether err carries field failures rather than
// a programming error.
func IsValidationError(err error) bool {
	var v *ValidationError
	return errors.As(err, &v)
}
