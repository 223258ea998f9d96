package validation

import (
	"math"
	"net/url"
	"regexp"
	"strings"

	"github.com/google/uuid"

	"github.com/aretw0/tabitha/pkg/config"
)

var reEmail = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// ValidateEmail reports whether s looks like local@domain.tld.
func ValidateEmail(s string) bool {
	return reEmail.MatchString(s)
}

// ValidateAge reports whether age is within the allowed registration range.
func ValidateAge(age int) bool {
	return age >= config.AgeMin && age <= config.AgeMax
}

// ValidateURL reports whether s is an absolute URL with a scheme and a host.
func ValidateURL(s string) bool {
	if strings.TrimSpace(s) != s || s == "" {
		return false
	}
	u, err := url.Parse(s)
	if err != nil {
		return false
	}
	return u.IsAbs() && u.Host != ""
}

// ValidatePrice reports whether price is a non-negative number.
func ValidatePrice(price float64) bool {
	return !math.IsNaN(price) && price >= 0
}

// ValidateUUID reports whether s is a UUID in canonical 8-4-4-4-12 form.
func ValidateUUID(s string) bool {
	// uuid.Parse also accepts urn and braced forms; those are not canonical.
	if len(s) != 36 {
		return false
	}
	_, err := uuid.Parse(s)
	return err == nil
}
