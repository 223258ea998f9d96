package cli

import "regexp"

// Mask replaces redacted values.
const Mask = "***"

// SensitiveKeys matches payload keys whose values are never echoed.
var SensitiveKeys = []*regexp.Regexp{
	regexp.MustCompile(`(?i)password`),
	regexp.MustCompile(`(?i)secret`),
	regexp.MustCompile(`(?i)token`),
}

// Redact returns a deep copy of m with the values of keys matching patterns
// masked. Nested maps and slices are walked; m is not modified.
func Redact(m map[string]any, patterns []*regexp.Regexp) map[string]any {
	if m == nil {
		return nil
	}
	out := make(map[string]any, len(m))
	for k, v := range m {
		if matchesAny(k, patterns) {
			out[k] = Mask
			continue
		}
		out[k] = redactValue(v, patterns)
	}
	return out
}

func redactValue(v any, patterns []*regexp.Regexp) any {
	switch t := v.(type) {
	case map[string]any:
		return Redact(t, patterns)
	case []any:
		out := make([]any, len(t))
		for i, e := range t {
			out[i] = redactValue(e, patterns)
		}
		return out
	}
	return v
}

func matchesAny(key string, patterns []*regexp.Regexp) bool {
	for _, p := range patterns {
		if p.MatchString(key) {
			return true
		}
	}
	return false
}
