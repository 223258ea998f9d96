package cli

import (
	"regexp"
	"testing"
)

func TestRedact(t *testing.T) {
	data := map[string]any{
		"email":    "kid@example.com",
		"password": "Secret123",
		"profile": map[string]any{
			"apiToken": "abc",
			"name":     "Kid",
		},
		"sessions": []any{map[string]any{"refresh_token": "x"}},
	}

	got := Redact(data, SensitiveKeys)

	if got["email"] != "kid@example.com" {
		t.Errorf("email should be kept, got %v", got["email"])
	}
	if got["password"] != Mask {
		t.Errorf("password should be masked, got %v", got["password"])
	}
	profile := got["profile"].(map[string]any)
	if profile["apiToken"] != Mask || profile["name"] != "Kid" {
		t.Errorf("nested map not redacted correctly: %v", profile)
	}
	session := got["sessions"].([]any)[0].(map[string]any)
	if session["refresh_token"] != Mask {
		t.Errorf("slice element not redacted: %v", session)
	}

	// Immutability check
	if data["password"] != "Secret123" {
		t.Error("Redact modified its input")
	}
	if data["profile"].(map[string]any)["apiToken"] != "abc" {
		t.Error("Redact modified a nested input")
	}
}

func TestRedact_CustomPatterns(t *testing.T) {
	got := Redact(map[string]any{"parentEmail": "mum@example.com", "age": 9}, []*regexp.Regexp{regexp.MustCompile(`(?i)email`)})
	if got["parentEmail"] != Mask || got["age"] != 9 {
		t.Errorf("unexpected result: %v", got)
	}
	if Redact(nil, SensitiveKeys) != nil {
		t.Error("nil input should stay nil")
	}
}
