// Package api declares the HTTP contract the clients and the backing service
// share: response envelopes, pagination, endpoint paths, and an OpenAPI 3
// description of every entity wire shape.
package api
