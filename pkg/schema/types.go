package schema

import (
	"errors"
	"fmt"
	"math"
	"reflect"
	"strings"
	"time"
)

// Type defines the contract for field validation.
// Implementations determine how values are validated against a type.
type Type interface {
	// Name returns the human-readable name of the type (e.g., "string", "int").
	Name() string
	// Validate checks if a value conforms to this type. Several independent
	// failures may be returned together with errors.Join.
	Validate(value any) error
}

// Normalizer is implemented by types that canonicalize accepted values,
// e.g. parsing an RFC 3339 string into a time.Time.
type Normalizer interface {
	Normalize(value any) any
}

// --- Built-in Type Implementations ---

// StringType validates string values.
type StringType struct {
	Rules []Rule
}

func (t *StringType) Name() string { return "string" }

func (t *StringType) Validate(value any) error {
	s, ok := value.(string)
	if !ok {
		return fmt.Errorf("expected string, got %s", typeName(value))
	}
	var errs []error
	for _, r := range t.Rules {
		if err := r.checkString(s); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// IntType validates integer values.
type IntType struct {
	Rules []Rule
}

func (t *IntType) Name() string { return "int" }

func (t *IntType) Validate(value any) error {
	f, ok := toFloat(value)
	if !ok {
		return fmt.Errorf("expected int, got %s", typeName(value))
	}
	// Accept floats that are whole numbers (from JSON unmarshaling)
	if f != math.Trunc(f) || math.IsInf(f, 0) {
		return fmt.Errorf("expected int, got float (not a whole number)")
	}
	// 2^63 is the first float64 past math.MaxInt64.
	if f < -0x1p63 || f >= 0x1p63 {
		return fmt.Errorf("expected int, got out-of-range number")
	}
	return checkNumber(t.Rules, f)
}

func (t *IntType) Normalize(value any) any {
	f, _ := toFloat(value)
	return int(f)
}

// FloatType validates floating-point values.
type FloatType struct {
	Rules []Rule
}

func (t *FloatType) Name() string { return "float" }

func (t *FloatType) Validate(value any) error {
	f, ok := toFloat(value)
	if !ok {
		return fmt.Errorf("expected float, got %s", typeName(value))
	}
	if math.IsNaN(f) {
		return fmt.Errorf("expected float, got NaN")
	}
	return checkNumber(t.Rules, f)
}

func (t *FloatType) Normalize(value any) any {
	f, _ := toFloat(value)
	return f
}

// BoolType validates boolean values.
type BoolType struct{}

func (t *BoolType) Name() string { return "bool" }

func (t *BoolType) Validate(value any) error {
	_, ok := value.(bool)
	if !ok {
		return fmt.Errorf("expected bool, got %s", typeName(value))
	}
	return nil
}

// TimeType validates timestamps: a time.Time or an RFC 3339 string.
type TimeType struct{}

func (t *TimeType) Name() string { return "time" }

func (t *TimeType) Validate(value any) error {
	switch v := value.(type) {
	case time.Time:
		return nil
	case string:
		if _, err := time.Parse(time.RFC3339Nano, v); err != nil {
			return fmt.Errorf("invalid date")
		}
		return nil
	default:
		return fmt.Errorf("expected date, got %s", typeName(value))
	}
}

func (t *TimeType) Normalize(value any) any {
	if s, ok := value.(string); ok {
		if ts, err := time.Parse(time.RFC3339Nano, s); err == nil {
			return ts
		}
	}
	return value
}

// AnyType accepts every value, including nil.
type AnyType struct{}

func (t *AnyType) Name() string { return "any" }

func (t *AnyType) Validate(value any) error { return nil }

// LiteralType accepts exactly one value.
type LiteralType struct {
	Value any
}

func (t *LiteralType) Name() string { return fmt.Sprintf("literal(%v)", t.Value) }

func (t *LiteralType) Validate(value any) error {
	if !reflect.DeepEqual(value, t.Value) {
		return fmt.Errorf("invalid literal value, expected %v", t.Value)
	}
	return nil
}

// SliceType validates slices of a specific element type.
type SliceType struct {
	elemType Type
}

func (t *SliceType) Name() string {
	return fmt.Sprintf("[%s]", t.elemType.Name())
}

// Elem returns the element type.
func (t *SliceType) Elem() Type { return t.elemType }

func (t *SliceType) Validate(value any) error {
	_, err := parseValue("", t, value)
	return err
}

// ObjectType validates a nested map against a Schema.
type ObjectType struct {
	Fields Schema
}

func (t *ObjectType) Name() string { return "object" }

func (t *ObjectType) Validate(value any) error {
	_, err := parseValue("", t, value)
	return err
}

// OptionalType allows the wrapped field to be absent or null.
type OptionalType struct {
	Inner Type
}

func (t *OptionalType) Name() string { return t.Inner.Name() + "?" }

func (t *OptionalType) Validate(value any) error {
	if value == nil {
		return nil
	}
	return t.Inner.Validate(value)
}

// DefaultType substitutes Value when the field is absent or null.
type DefaultType struct {
	Inner Type
	Value any
}

func (t *DefaultType) Name() string { return t.Inner.Name() }

func (t *DefaultType) Validate(value any) error {
	if value == nil {
		return nil
	}
	return t.Inner.Validate(value)
}

// CustomType applies a user-defined validation function.
type CustomType struct {
	name     string
	validate func(any) error
}

func (t *CustomType) Name() string { return t.name }

func (t *CustomType) Validate(value any) error {
	return t.validate(value)
}

// --- Factory Functions ---

// String creates a string type validator.
func String(rules ...Rule) Type { return &StringType{Rules: rules} }

// Enum creates a string type restricted to values.
func Enum(values ...string) Type { return &StringType{Rules: []Rule{OneOf(values...)}} }

// Int creates an integer type validator.
func Int(rules ...Rule) Type { return &IntType{Rules: rules} }

// Float creates a float type validator.
func Float(rules ...Rule) Type { return &FloatType{Rules: rules} }

// Bool creates a boolean type validator.
func Bool() Type { return &BoolType{} }

// Time creates a timestamp type validator.
func Time() Type { return &TimeType{} }

// Any creates a type that accepts anything.
func Any() Type { return &AnyType{} }

// Literal creates a type matching exactly v.
func Literal(v any) Type { return &LiteralType{Value: v} }

// Slice creates a slice type validator for elements of the given type.
func Slice(elemType Type) Type {
	return &SliceType{elemType: elemType}
}

// Object creates a nested object type.
func Object(fields Schema) Type { return &ObjectType{Fields: fields} }

// Optional marks a field as not required.
func Optional(t Type) Type {
	if _, ok := t.(*OptionalType); ok {
		return t
	}
	return &OptionalType{Inner: t}
}

// Default marks a field as not required and fills v when it is missing.
func Default(t Type, v any) Type { return &DefaultType{Inner: t, Value: v} }

// Custom creates a custom type validator with a user-defined function.
func Custom(name string, validate func(any) error) Type {
	return &CustomType{name: name, validate: validate}
}

// IsOptional reports whether a missing value is acceptable for t.
func IsOptional(t Type) bool {
	switch t.(type) {
	case *OptionalType, *DefaultType, *AnyType:
		return true
	}
	return false
}

// Unwrap strips Optional and Default wrappers.
func Unwrap(t Type) Type {
	for {
		switch w := t.(type) {
		case *OptionalType:
			t = w.Inner
		case *DefaultType:
			t = w.Inner
		default:
			return t
		}
	}
}

// ParseType converts a string type name to a Type.
// Supports basic types: "string", "int", "float", "bool", "time", "any",
// slices such as "[string]", and a "?" suffix for optional fields.
func ParseType(typeStr string) (Type, error) {
	if len(typeStr) > 1 && strings.HasSuffix(typeStr, "?") {
		inner, err := ParseType(typeStr[:len(typeStr)-1])
		if err != nil {
			return nil, err
		}
		return Optional(inner), nil
	}

	// Handle slice types: [string], [int], etc.
	if len(typeStr) > 2 && typeStr[0] == '[' && typeStr[len(typeStr)-1] == ']' {
		elemTypeStr := typeStr[1 : len(typeStr)-1]
		elemType, err := ParseType(elemTypeStr)
		if err != nil {
			return nil, err
		}
		return Slice(elemType), nil
	}

	switch typeStr {
	case "string":
		return String(), nil
	case "int":
		return Int(), nil
	case "float":
		return Float(), nil
	case "bool":
		return Bool(), nil
	case "time":
		return Time(), nil
	case "any":
		return Any(), nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedType, typeStr)
	}
}

// ParseTypeMap converts a map of field names to type strings into a Schema.
// Example: {"api_key": "string", "retries": "int"}
func ParseTypeMap(typeMap map[string]string) (Schema, error) {
	result := make(Schema)
	for key, typeStr := range typeMap {
		t, err := ParseType(typeStr)
		if err != nil {
			return nil, fmt.Errorf("field %s: %w", key, err)
		}
		result[key] = t
	}
	return result, nil
}

func checkNumber(rules []Rule, f float64) error {
	var errs []error
	for _, r := range rules {
		if err := r.checkNumber(f); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func toFloat(value any) (float64, bool) {
	switch v := value.(type) {
	case int:
		return float64(v), true
	case int8:
		return float64(v), true
	case int16:
		return float64(v), true
	case int32:
		return float64(v), true
	case int64:
		return float64(v), true
	case uint:
		return float64(v), true
	case uint8:
		return float64(v), true
	case uint16:
		return float64(v), true
	case uint32:
		return float64(v), true
	case uint64:
		return float64(v), true
	case float32:
		return float64(v), true
	case float64:
		return v, true
	default:
		return 0, false
	}
}

func typeName(value any) string {
	if value == nil {
		return "null"
	}
	switch reflect.TypeOf(value).Kind() {
	case reflect.Map:
		return "object"
	case reflect.Slice, reflect.Array:
		return "array"
	}
	return fmt.Sprintf("%T", value)
}
