package validation_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/aretw0/tabitha/pkg/validation"
)

func TestValidateUserData(t *testing.T) {
	tests := []struct {
		name string
		data validation.UserData
		want []string
	}{
		{"two letter name", validation.NewUserData("Al", 14, ""), []string{}},
		{
			"one letter name under 13",
			validation.NewUserData("A", 10, "parent@example.com"),
			[]string{validation.MsgNameLength},
		},
		{"trimmed name", validation.NewUserData("  A  ", 14, ""), []string{validation.MsgNameLength}},
		{"missing parent email", validation.NewUserData("Sam", 10, ""), []string{validation.MsgParentEmailRequired}},
		{"invalid parent email", validation.NewUserData("Sam", 10, "mom@home"), []string{validation.MsgParentEmailRequired}},
		{"parent email present", validation.NewUserData("Sam", 10, "mom@example.com"), []string{}},
		{"thirteen is exempt", validation.NewUserData("Sam", 13, ""), []string{}},
		{"fourteen is exempt", validation.NewUserData("Sam", 14, ""), []string{}},
		{"age out of range", validation.NewUserData("Sam", 17, ""), []string{validation.MsgAgeRange}},
		{
			"everything wrong in order",
			validation.NewUserData("", 4, ""),
			[]string{validation.MsgNameLength, validation.MsgAgeRange, validation.MsgParentEmailRequired},
		},
		{"age missing", validation.UserData{Name: "Sam"}, []string{validation.MsgAgeRange}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := validation.ValidateUserData(tt.data)
			assert.Equal(t, tt.want, got.Errors)
			assert.Equal(t, len(tt.want) == 0, got.IsValid)
		})
	}
}
