// Package schema provides a structural validation system for untyped data.
//
// A Schema maps field names to types. Built-in types (string, int, float,
// bool, time, any) accept optional rules such as length bounds, numeric
// bounds, formats and enumerations; composite types (Slice, Object,
// Optional, Default) nest arbitrarily. Failures are reported per field with
// a dotted path ("ageRange.max", "items.0.priority").
//
// Basic usage:
//
//	s := schema.Schema{
//	    "name":     schema.String(schema.MinLen(1)),
//	    "age":      schema.Int(schema.Min(6), schema.Max(16)),
//	    "tags":     schema.Slice(schema.String()),
//	    "isPublic": schema.Default(schema.Bool(), false),
//	}
//
//	clean, err := schema.Parse(s, data)
//	for _, e := range schema.ValidationErrors(err) {
//	    // e.(*schema.ValidationError).Key, .Reason
//	}
//
// Parse returns a copy of the input containing only declared keys, with
// defaults filled in and timestamps normalized to time.Time. Validate is the
// same check without the output.
//
// Errors are reported in sorted field order so repeated calls on the same
// input yield identical results. Types are immutable once built and safe to
// share between goroutines.
package schema
