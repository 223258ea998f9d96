// Package config is the single, versioned source of the constants shared by
// every client: age bounds, enumerations, pagination defaults, user-facing
// validation messages and the retailer/rate-limit tables.
//
// Everything here is read-only. Enumerations are returned by functions so
// that callers always receive a fresh copy and cannot mutate shared state.
package config
