package validation_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/aretw0/tabitha/pkg/validation"
)

func TestValidatePassword(t *testing.T) {
	tests := []struct {
		name     string
		password string
		want     []string
	}{
		{"valid", "Abcdefg1", []string{}},
		{
			"short lowercase",
			"abc",
			[]string{validation.MsgPasswordLength, validation.MsgPasswordUppercase, validation.MsgPasswordDigit},
		},
		{
			"empty",
			"",
			[]string{validation.MsgPasswordLength, validation.MsgPasswordUppercase, validation.MsgPasswordLowercase, validation.MsgPasswordDigit},
		},
		{"no digit", "Abcdefgh", []string{validation.MsgPasswordDigit}},
		{"no lowercase", "ABCDEFG1", []string{validation.MsgPasswordLowercase}},
		{"non-ascii letters do not count", "ÄÖÜäöü12", []string{validation.MsgPasswordUppercase, validation.MsgPasswordLowercase}},
		{"emoji count once", "Ab1😀😀😀😀", []string{validation.MsgPasswordLength}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := validation.ValidatePassword(tt.password)
			assert.Equal(t, tt.want, got.Errors)
			assert.Equal(t, len(tt.want) == 0, got.IsValid)
		})
	}
}

func TestValidatePassword_Idempotent(t *testing.T) {
	first := validation.ValidatePassword("abc")
	second := validation.ValidatePassword("abc")
	assert.Equal(t, first, second)
}
