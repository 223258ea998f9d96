package schema

import (
	"encoding/json"
	"fmt"
)

// optionalKey marks a nested object that may be absent.
const optionalKey = "$optional"

// MarshalJSON serializes the schema as a map of field names to type strings.
// Nested objects serialize as nested maps. Rules are not serialized.
func (s Schema) MarshalJSON() ([]byte, error) {
	if s == nil {
		return []byte("null"), nil
	}

	raw, err := s.typeMap()
	if err != nil {
		return nil, err
	}
	return json.Marshal(raw)
}

func (s Schema) typeMap() (map[string]any, error) {
	raw := make(map[string]any, len(s))
	for key, typ := range s {
		if typ == nil {
			return nil, fmt.Errorf("field %s: type is nil", key)
		}
		obj, ok := Unwrap(typ).(*ObjectType)
		if !ok {
			raw[key] = typ.Name()
			continue
		}
		nested, err := obj.Fields.typeMap()
		if err != nil {
			return nil, fmt.Errorf("field %s: %w", key, err)
		}
		if IsOptional(typ) {
			nested[optionalKey] = true
		}
		raw[key] = nested
	}
	return raw, nil
}

// UnmarshalJSON deserializes the schema from a map of field names to type strings.
func (s *Schema) UnmarshalJSON(data []byte) error {
	if s == nil {
		return fmt.Errorf("schema: UnmarshalJSON on nil pointer")
	}

	if string(data) == "null" {
		*s = nil
		return nil
	}

	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	parsed, err := fromTypeMap(raw)
	if err != nil {
		return err
	}

	*s = parsed
	return nil
}

func fromTypeMap(raw map[string]any) (Schema, error) {
	result := make(Schema, len(raw))
	for key, value := range raw {
		if key == optionalKey {
			continue
		}
		switch v := value.(type) {
		case string:
			t, err := ParseType(v)
			if err != nil {
				return nil, fmt.Errorf("field %s: %w", key, err)
			}
			result[key] = t
		case map[string]any:
			nested, err := fromTypeMap(v)
			if err != nil {
				return nil, fmt.Errorf("field %s: %w", key, err)
			}
			var t Type = Object(nested)
			if opt, _ := v[optionalKey].(bool); opt {
				t = Optional(t)
			}
			result[key] = t
		default:
			return nil, fmt.Errorf("field %s: expected string type, got %T", key, value)
		}
	}
	return result, nil
}
