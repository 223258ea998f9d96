package schema

import (
	"encoding/json"
	"reflect"
	"testing"
)

func profileSchema() Schema {
	return Schema{
		"name":     String(MinLen(1)),
		"age":      Int(Min(6), Max(16)),
		"email":    String(Email()),
		"tags":     Slice(String()),
		"isPublic": Default(Bool(), false),
		"notes":    Optional(String()),
		"ageRange": Object(Schema{
			"min": Int(Min(0)),
			"max": Int(Max(18)),
		}),
	}
}

func TestParse_Success(t *testing.T) {
	data := map[string]any{
		"name":     "Tabitha",
		"age":      float64(9),
		"email":    "tabitha@example.com",
		"tags":     []any{"toys"},
		"ageRange": map[string]any{"min": 3, "max": 8},
		"unknown":  "stripped",
	}

	out, err := Parse(profileSchema(), data)
	if err != nil {
		t.Fatalf("Parse() error = %v, want nil", err)
	}
	if _, ok := out["unknown"]; ok {
		t.Error("Parse() should strip undeclared keys")
	}
	if out["isPublic"] != false {
		t.Errorf("isPublic = %v, want default false", out["isPublic"])
	}
	if _, ok := out["notes"]; ok {
		t.Error("absent optional field should stay absent")
	}
	if out["age"] != 9 {
		t.Errorf("age = %v (%T), want int 9", out["age"], out["age"])
	}
	nested, ok := out["ageRange"].(map[string]any)
	if !ok || nested["max"] != 8 {
		t.Errorf("ageRange = %v", out["ageRange"])
	}
}

func TestValidate_NestedPaths(t *testing.T) {
	data := map[string]any{
		"name":     "",
		"age":      5,
		"email":    "tabitha@example.com",
		"tags":     []any{"toys", 7},
		"ageRange": map[string]any{"min": -1, "max": 19},
	}

	err := Validate(profileSchema(), data)
	if err == nil {
		t.Fatal("Validate() should return error")
	}

	var keys []string
	for _, e := range ValidationErrors(err) {
		keys = append(keys, e.(*ValidationError).Key)
	}
	want := []string{"age", "ageRange.max", "ageRange.min", "name", "tags.1"}
	if !reflect.DeepEqual(keys, want) {
		t.Errorf("error keys = %v, want %v", keys, want)
	}
}

func TestValidate_AllRuleFailuresReported(t *testing.T) {
	s := Schema{"code": String(Len(3), OneOf("USD", "EUR"))}

	err := Validate(s, map[string]any{"code": "DOLLAR"})
	errs := ValidationErrors(err)
	if len(errs) != 2 {
		t.Fatalf("Validate() = %d errors, want 2: %v", len(errs), err)
	}
	for _, e := range errs {
		if e.(*ValidationError).Key != "code" {
			t.Errorf("Key = %q, want code", e.(*ValidationError).Key)
		}
	}
}

func TestValidate_MissingAndNull(t *testing.T) {
	s := Schema{
		"name":  String(),
		"notes": Optional(String()),
	}

	err := Validate(s, map[string]any{"name": nil, "notes": nil})
	errs := ValidationErrors(err)
	if len(errs) != 1 {
		t.Fatalf("Validate() = %d errors, want 1", len(errs))
	}
	ve := errs[0].(*ValidationError)
	if ve.Key != "name" || ve.Reason != "required" {
		t.Errorf("error = %+v, want name required", ve)
	}
}

func TestValidate_WrongShape(t *testing.T) {
	s := Schema{"ageRange": Object(Schema{"min": Int()})}

	err := Validate(s, map[string]any{"ageRange": "3-8"})
	errs := ValidationErrors(err)
	if len(errs) != 1 || errs[0].(*ValidationError).Reason != "expected object, got string" {
		t.Errorf("Validate() = %v", err)
	}
}

func TestValidate_Deterministic(t *testing.T) {
	data := map[string]any{"tags": "x", "ageRange": 1}
	first := Validate(profileSchema(), data).Error()
	for i := 0; i < 20; i++ {
		if got := Validate(profileSchema(), data).Error(); got != first {
			t.Fatalf("run %d: %q != %q", i, got, first)
		}
	}
}

func TestValidate_EmptySchema(t *testing.T) {
	data := map[string]any{"name": "Tabitha"}

	if err := Validate(Schema{}, data); err != nil {
		t.Errorf("Validate() with empty schema should return nil, got %v", err)
	}
	var nilSchema Schema
	if err := Validate(nilSchema, data); err != nil {
		t.Errorf("Validate() with nil schema should return nil, got %v", err)
	}
}

func TestParseValue_Root(t *testing.T) {
	_, err := ParseValue(Object(Schema{"a": Int()}), []any{1})
	errs := ValidationErrors(err)
	if len(errs) != 1 || errs[0].(*ValidationError).Key != "" {
		t.Errorf("ParseValue() = %v, want one root error", err)
	}
}

func TestValidateFields(t *testing.T) {
	s := profileSchema()
	data := map[string]any{
		"name": "Tabitha",
		"age":  "ten", // wrong type, but not validated below
	}

	if err := ValidateFields(s, data, "name", "notes"); err != nil {
		t.Errorf("ValidateFields(name, notes) error = %v, want nil", err)
	}

	err := ValidateFields(s, data, "age", "email", "nope")
	errs := ValidationErrors(err)
	if len(errs) != 3 {
		t.Fatalf("ValidateFields() = %d errors, want 3: %v", len(errs), err)
	}
	if errs[2].(*ValidationError).Reason != "not defined in schema" {
		t.Errorf("unexpected reason %q", errs[2].(*ValidationError).Reason)
	}
	if ValidateFields(s, data) != nil {
		t.Error("ValidateFields() with no fields should return nil")
	}
}

func TestSchemaJSONRoundTrip(t *testing.T) {
	s := Schema{
		"name":       String(MinLen(1)),
		"interests":  Slice(String()),
		"gender":     Optional(String()),
		"priceRange": Optional(Object(Schema{"min": Float(), "max": Float()})),
	}

	b, err := json.Marshal(s)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}

	var back Schema
	if err := json.Unmarshal(b, &back); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	if back["gender"].Name() != "string?" || back["interests"].Name() != "[string]" {
		t.Errorf("round trip lost types: %s", b)
	}
	obj, ok := Unwrap(back["priceRange"]).(*ObjectType)
	if !ok || !IsOptional(back["priceRange"]) {
		t.Fatalf("priceRange = %T, want optional object", back["priceRange"])
	}
	if obj.Fields["min"].Name() != "float" {
		t.Errorf("priceRange.min = %s", obj.Fields["min"].Name())
	}
}

func TestIsValidationError(t *testing.T) {
	err := Validate(profileSchema(), map[string]any{"name": ""})
	if !IsValidationError(err) {
		t.Errorf("IsValidationError(%v) = false, want true", err)
	}
	if IsValidationError(ErrUnsupportedType) {
		t.Error("IsValidationError(ErrUnsupportedType) = true, want false")
	}
	if IsValidationError(nil) {
		t.Error("IsValidationError(nil) = true, want false")
	}
}
