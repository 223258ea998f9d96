package observability

import "testing"

func TestFieldLabel(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"", "(root)"},
		{"age", "age"},
		{"items.17.product.id", "items.*.product.id"},
		{"items.3.product.ageRange.max", "items.*.product.ageRange.max"},
		{"recipients.0", "recipients.*"},
		{"v2.name", "v2.name"},
	}
	for _, tt := range tests {
		if got := fieldLabel(tt.in); got != tt.want {
			t.Errorf("fieldLabel(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
