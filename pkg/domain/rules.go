package domain

import (
	"github.com/aretw0/tabitha/pkg/validation"
)

// CheckParentEmail applies the parent email rule to an untyped user payload.
// It only reports a missing parent email; a malformed one is left to the
// structural email check. Unreadable ages are left to the age check.
func CheckParentEmail(data map[string]any) []validation.FieldError {
	age, ok := intValue(data["age"])
	if !ok {
		return nil
	}
	pe, _ := data["parentEmail"].(string)
	return parentEmailRule(&age, &pe)
}

func intValue(v any) (int, bool) {
	switch n := v.(type) {
	case int:
		return n, true
	case int32:
		return int(n), true
	case int64:
		return int(n), true
	case float64:
		if n != float64(int(n)) {
			return 0, false
		}
		return int(n), true
	}
	return 0, false
}
