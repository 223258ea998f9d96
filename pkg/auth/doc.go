// Package auth prepares credentials and profile data for the external auth
// provider and turns the provider's errors into text a child (or parent) can
// act on. It does not talk to the provider itself.
package auth
