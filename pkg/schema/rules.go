package schema

import (
	"fmt"
	"math"
	"slices"
	"strings"
	"unicode/utf8"

	"github.com/aretw0/tabitha/pkg/validation"
)

// RuleKind identifies a constraint applied on top of a base type.
type RuleKind string

const (
	RuleMinLen RuleKind = "min_length"
	RuleMaxLen RuleKind = "max_length"
	RuleLen    RuleKind = "length"
	RuleEmail  RuleKind = "email"
	RuleURL    RuleKind = "url"
	RuleUUID   RuleKind = "uuid"
	RuleOneOf  RuleKind = "one_of"
	RuleMin    RuleKind = "min"
	RuleMax    RuleKind = "max"
)

// Rule is a declarative constraint. Rules are plain data so that tooling
// (OpenAPI export, docs) can inspect them.
type Rule struct {
	Kind    RuleKind
	Limit   float64
	Values  []string
	Message string // overrides the default reason when set
}

// MinLen requires a string of at least n characters.
func MinLen(n int) Rule { return Rule{Kind: RuleMinLen, Limit: float64(n)} }

// MaxLen requires a string of at most n characters.
func MaxLen(n int) Rule { return Rule{Kind: RuleMaxLen, Limit: float64(n)} }

// Len requires a string of exactly n characters.
func Len(n int) Rule { return Rule{Kind: RuleLen, Limit: float64(n)} }

// Email requires a syntactically valid email address.
func Email() Rule { return Rule{Kind: RuleEmail} }

// URL requires a well-formed absolute URL.
func URL() Rule { return Rule{Kind: RuleURL} }

// UUID requires a canonical UUID string.
func UUID() Rule { return Rule{Kind: RuleUUID} }

// OneOf restricts a string to the given values.
func OneOf(values ...string) Rule { return Rule{Kind: RuleOneOf, Values: values} }

// Min requires a number greater than or equal to n.
func Min(n float64) Rule { return Rule{Kind: RuleMin, Limit: n} }

// Max requires a number less than or equal to n.
func Max(n float64) Rule { return Rule{Kind: RuleMax, Limit: n} }

// WithMessage returns a copy of the rule reporting msg on failure.
func (r Rule) WithMessage(msg string) Rule {
	r.Message = msg
	return r
}

func (r Rule) fail(format string, args ...any) error {
	if r.Message != "" {
		return fmt.Errorf("%s", r.Message)
	}
	return fmt.Errorf(format, args...)
}

func (r Rule) checkString(s string) error {
	n := utf8.RuneCountInString(s)
	switch r.Kind {
	case RuleMinLen:
		if float64(n) < r.Limit {
			return r.fail("must contain at least %d character(s)", int(r.Limit))
		}
	case RuleMaxLen:
		if float64(n) > r.Limit {
			return r.fail("must contain at most %d character(s)", int(r.Limit))
		}
	case RuleLen:
		if float64(n) != r.Limit {
			return r.fail("must contain exactly %d character(s)", int(r.Limit))
		}
	case RuleEmail:
		if !validation.ValidateEmail(s) {
			return r.fail("invalid email")
		}
	case RuleURL:
		if !validation.ValidateURL(s) {
			return r.fail("invalid url")
		}
	case RuleUUID:
		if !validation.ValidateUUID(s) {
			return r.fail("invalid uuid")
		}
	case RuleOneOf:
		if !slices.Contains(r.Values, s) {
			return r.fail("invalid enum value, expected %s, got %q", quoteJoin(r.Values), s)
		}
	}
	return nil
}

func (r Rule) checkNumber(f float64) error {
	switch r.Kind {
	case RuleMin:
		if f < r.Limit {
			return r.fail("must be greater than or equal to %s", formatLimit(r.Limit))
		}
	case RuleMax:
		if f > r.Limit {
			return r.fail("must be less than or equal to %s", formatLimit(r.Limit))
		}
	}
	return nil
}

func quoteJoin(values []string) string {
	quoted := make([]string, len(values))
	for i, v := range values {
		quoted[i] = fmt.Sprintf("%q", v)
	}
	return strings.Join(quoted, " | ")
}

func formatLimit(f float64) string {
	if f == math.Trunc(f) {
		return fmt.Sprintf("%d", int64(f))
	}
	return fmt.Sprintf("%g", f)
}
