package schema

import (
	"fmt"
	"math"
	"testing"
	"time"
)

func TestStringRules(t *testing.T) {
	tests := []struct {
		desc    string
		typ     Type
		value   any
		wantErr bool
	}{
		{"plain string", String(), "", false},
		{"not a string", String(), 42, true},
		{"null", String(), nil, true},
		{"min length met", String(MinLen(1)), "a", false},
		{"min length unmet", String(MinLen(1)), "", true},
		{"max length", String(MaxLen(3)), "abcd", true},
		{"exact length", String(Len(3)), "USD", false},
		{"exact length short", String(Len(3)), "US", true},
		{"runes not bytes", String(Len(3)), "€€€", false},
		{"email", String(Email()), "kid@example.com", false},
		{"bad email", String(Email()), "kid@example", true},
		{"url", String(URL()), "https://www.amazon.com/dp/B0", false},
		{"bad url", String(URL()), "amazon.com", true},
		{"uuid", String(UUID()), "123e4567-e89b-12d3-a456-426614174000", false},
		{"bad uuid", String(UUID()), "123", true},
		{"enum", Enum("amazon", "walmart"), "walmart", false},
		{"bad enum", Enum("amazon", "walmart"), "target", true},
	}

	for _, tt := range tests {
		err := tt.typ.Validate(tt.value)
		if (err != nil) != tt.wantErr {
			t.Errorf("%s: Validate(%v) error = %v, wantErr %v", tt.desc, tt.value, err, tt.wantErr)
		}
	}
}

func TestStringRuleMessages(t *testing.T) {
	typ := String(Email().WithMessage("Please enter a valid email address"))
	err := typ.Validate("nope")
	if err == nil || err.Error() != "Please enter a valid email address" {
		t.Errorf("Validate() error = %v, want custom message", err)
	}

	err = String(OneOf("a", "b")).Validate("c")
	if err == nil || err.Error() != `invalid enum value, expected "a" | "b", got "c"` {
		t.Errorf("Validate() error = %v", err)
	}
}

func TestIntType(t *testing.T) {
	typ := Int(Min(6), Max(16))

	if typ.Name() != "int" {
		t.Errorf("Name() = %q, want %q", typ.Name(), "int")
	}

	tests := []struct {
		value   any
		wantErr bool
	}{
		{6, false},
		{int64(16), false},
		{float64(10), false}, // whole number from JSON
		{10.5, true},
		{5, true},
		{17, true},
		{"10", true},
		{nil, true},
	}

	for _, tt := range tests {
		err := typ.Validate(tt.value)
		if (err != nil) != tt.wantErr {
			t.Errorf("Validate(%v) error = %v, wantErr %v", tt.value, err, tt.wantErr)
		}
	}

	if got := typ.(Normalizer).Normalize(float64(7)); got != 7 {
		t.Errorf("Normalize(7.0) = %v (%T), want int 7", got, got)
	}
}

func TestIntType_Range(t *testing.T) {
	typ := Int(Min(1))

	tests := []struct {
		value   any
		wantErr bool
	}{
		{1e300, true},
		{-1e300, true},
		{float64(1 << 63), true},
		{uint64(math.MaxUint64), true},
		{float64(1 << 53), false},
	}

	for _, tt := range tests {
		err := typ.Validate(tt.value)
		if (err != nil) != tt.wantErr {
			t.Errorf("Validate(%v) error = %v, wantErr %v", tt.value, err, tt.wantErr)
		}
	}

	if err := Int(Max(18)).Validate(-1e300); err == nil {
		t.Error("Validate(-1e300) with only an upper bound should fail")
	}
}

func TestFloatType(t *testing.T) {
	typ := Float(Min(0), Max(5))

	tests := []struct {
		value   any
		wantErr bool
	}{
		{0, false},
		{4.5, false},
		{float32(5), false},
		{-0.01, true},
		{5.01, true},
		{"3.14", true},
	}

	for _, tt := range tests {
		err := typ.Validate(tt.value)
		if (err != nil) != tt.wantErr {
			t.Errorf("Validate(%v) error = %v, wantErr %v", tt.value, err, tt.wantErr)
		}
	}
}

func TestTimeType(t *testing.T) {
	typ := Time()
	now := time.Date(2025, 12, 1, 10, 0, 0, 0, time.UTC)

	if err := typ.Validate(now); err != nil {
		t.Errorf("Validate(time.Time) error = %v", err)
	}
	if err := typ.Validate("2025-12-01T10:00:00Z"); err != nil {
		t.Errorf("Validate(RFC3339) error = %v", err)
	}
	if err := typ.Validate("yesterday"); err == nil {
		t.Error("Validate(yesterday) should fail")
	}
	got, ok := typ.(Normalizer).Normalize("2025-12-01T10:00:00Z").(time.Time)
	if !ok || !got.Equal(now) {
		t.Errorf("Normalize() = %v, want %v", got, now)
	}
}

func TestLiteralType(t *testing.T) {
	typ := Literal(false)
	if err := typ.Validate(false); err != nil {
		t.Errorf("Validate(false) error = %v", err)
	}
	if err := typ.Validate(true); err == nil {
		t.Error("Validate(true) should fail")
	}
	if err := typ.Validate(map[string]any{}); err == nil {
		t.Error("Validate(map) should fail without panicking")
	}
}

func TestSliceType(t *testing.T) {
	stringSlice := Slice(String())

	tests := []struct {
		value   any
		wantErr bool
		desc    string
	}{
		{[]string{"toys", "books"}, false, "string slice"},
		{[]string{}, false, "empty string slice"},
		{[]any{"toys", "books"}, false, "any slice with strings"},
		{[]int{1, 2}, true, "slice of ints when expecting strings"},
		{"toys", true, "string instead of slice"},
		{nil, true, "null"},
	}

	for _, tt := range tests {
		err := stringSlice.Validate(tt.value)
		if (err != nil) != tt.wantErr {
			t.Errorf("%s: Validate(%v) error = %v, wantErr %v", tt.desc, tt.value, err, tt.wantErr)
		}
	}
}

func TestCustomType(t *testing.T) {
	evenNumber := Custom("even", func(v any) error {
		i, ok := v.(int)
		if !ok {
			return fmt.Errorf("not an int")
		}
		if i%2 != 0 {
			return fmt.Errorf("not even")
		}
		return nil
	})

	if evenNumber.Name() != "even" {
		t.Errorf("Name() = %q, want %q", evenNumber.Name(), "even")
	}
	if err := evenNumber.Validate(2); err != nil {
		t.Errorf("Validate(2) error = %v", err)
	}
	if err := evenNumber.Validate(3); err == nil {
		t.Error("Validate(3) should fail")
	}
}

func TestOptionalAndDefault(t *testing.T) {
	opt := Optional(String())
	if !IsOptional(opt) || opt.Name() != "string?" {
		t.Errorf("Optional(String()) = %q, optional=%v", opt.Name(), IsOptional(opt))
	}
	if Optional(opt) != opt {
		t.Error("Optional should not double wrap")
	}

	def := Default(Int(), 5)
	if !IsOptional(def) {
		t.Error("Default should be optional")
	}
	if _, ok := Unwrap(def).(*IntType); !ok {
		t.Errorf("Unwrap(Default(Int())) = %T", Unwrap(def))
	}
}

func TestParseType(t *testing.T) {
	tests := []struct {
		input    string
		wantErr  bool
		wantName string
	}{
		{"string", false, "string"},
		{"int", false, "int"},
		{"float", false, "float"},
		{"bool", false, "bool"},
		{"time", false, "time"},
		{"any", false, "any"},
		{"[string]", false, "[string]"},
		{"[[string]]", false, "[[string]]"},
		{"string?", false, "string?"},
		{"[int]?", false, "[int]?"},
		{"invalid", true, ""},
		{"[invalid]", true, ""},
		{"?", true, ""},
	}

	for _, tt := range tests {
		typ, err := ParseType(tt.input)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseType(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			continue
		}
		if !tt.wantErr && typ.Name() != tt.wantName {
			t.Errorf("ParseType(%q) Name() = %q, want %q", tt.input, typ.Name(), tt.wantName)
		}
	}
}

func TestParseTypeMap(t *testing.T) {
	s, err := ParseTypeMap(map[string]string{
		"name":      "string",
		"age":       "int",
		"interests": "[string]",
		"gender":    "string?",
	})
	if err != nil {
		t.Fatalf("ParseTypeMap() error = %v", err)
	}
	if s["interests"].Name() != "[string]" {
		t.Error("interests type should be [string]")
	}
	if !IsOptional(s["gender"]) {
		t.Error("gender should be optional")
	}

	if _, err := ParseTypeMap(map[string]string{"age": "integer"}); err == nil {
		t.Fatal("ParseTypeMap() should return error for invalid type")
	}
}
