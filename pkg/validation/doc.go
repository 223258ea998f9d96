// Package validation holds the field-level validators shared by every client
// form and by the entity schemas.
//
// All functions are pure: they never panic on user input, never perform I/O
// and may be called concurrently. Rule violations are returned as values
// (bool, Result or []FieldError), and multi-rule checks report every
// violation in a fixed order rather than stopping at the first one.
package validation
