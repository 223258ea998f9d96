// Package registry looks up payload validators by name. Default holds the
// validators for every entity, its Create and Update variants, and the API
// envelopes.
package registry
