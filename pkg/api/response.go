package api

import (
	"github.com/aretw0/tabitha/pkg/config"
	"github.com/aretw0/tabitha/pkg/schema"
)

// Response is the standard envelope.
type Response[T any] struct {
	Success bool    `json:"success"`
	Data    *T      `json:"data,omitempty"`
	Error   *string `json:"error,omitempty"`
	Message *string `json:"message,omitempty"`
}

// OK wraps data in a successful envelope.
func OK[T any](data T) Response[T] {
	return Response[T]{Success: true, Data: &data}
}

// Pagination describes the position of a page in a listing.
type Pagination struct {
	Page       int  `json:"page"`
	Limit      int  `json:"limit"`
	Total      int  `json:"total"`
	TotalPages int  `json:"totalPages"`
	HasNext    bool `json:"hasNext"`
	HasPrev    bool `json:"hasPrev"`
}

// NewPagination computes the page metadata for total items. Out of range
// page and limit values fall back to the defaults and are capped at
// config.MaxLimit.
func NewPagination(page, limit, total int) Pagination {
	if page < 1 {
		page = config.DefaultPage
	}
	if limit < 1 {
		limit = config.DefaultLimit
	}
	limit = min(limit, config.MaxLimit)
	total = max(total, 0)

	pages := (total + limit - 1) / limit
	return Pagination{
		Page:       page,
		Limit:      limit,
		Total:      total,
		TotalPages: pages,
		HasNext:    page < pages,
		HasPrev:    page > 1,
	}
}

// Offset returns the index of the first item on the page.
func (p Pagination) Offset() int {
	return (p.Page - 1) * p.Limit
}

// PaginatedResponse is the envelope for listings.
type PaginatedResponse[T any] struct {
	Success    bool       `json:"success"`
	Data       []T        `json:"data"`
	Pagination Pagination `json:"pagination"`
	Error      *string    `json:"error,omitempty"`
	Message    *string    `json:"message,omitempty"`
}

// Page returns the slice of items for p and the matching envelope.
func Page[T any](items []T, page, limit int) PaginatedResponse[T] {
	p := NewPagination(page, limit, len(items))
	start := min(p.Offset(), len(items))
	end := min(start+p.Limit, len(items))
	data := make([]T, end-start)
	copy(data, items[start:end])
	return PaginatedResponse[T]{Success: true, Data: data, Pagination: p}
}

// ErrorResponse is the envelope for failures.
type ErrorResponse struct {
	Success bool    `json:"success"`
	Error   string  `json:"error"`
	Message *string `json:"message,omitempty"`
	Code    *string `json:"code,omitempty"`
}

// Fail builds an ErrorResponse with an error code from config.
func Fail(code, msg string) ErrorResponse {
	return ErrorResponse{Success: false, Error: msg, Code: &code}
}

// ResponseSchema validates an untyped Response envelope.
func ResponseSchema() schema.Schema {
	return schema.Schema{
		"success": schema.Bool(),
		"data":    schema.Any(),
		"error":   schema.Optional(schema.String()),
		"message": schema.Optional(schema.String()),
	}
}

// PaginatedResponseSchema validates an untyped PaginatedResponse envelope.
func PaginatedResponseSchema() schema.Schema {
	return schema.Schema{
		"success": schema.Bool(),
		"data":    schema.Slice(schema.Any()),
		"pagination": schema.Object(schema.Schema{
			"page":       schema.Int(schema.Min(1)),
			"limit":      schema.Int(schema.Min(1)),
			"total":      schema.Int(schema.Min(0)),
			"totalPages": schema.Int(schema.Min(0)),
			"hasNext":    schema.Bool(),
			"hasPrev":    schema.Bool(),
		}),
		"error":   schema.Optional(schema.String()),
		"message": schema.Optional(schema.String()),
	}
}

// ErrorResponseSchema validates an untyped ErrorResponse envelope.
func ErrorResponseSchema() schema.Schema {
	return schema.Schema{
		"success": schema.Literal(false),
		"error":   schema.String(),
		"message": schema.Optional(schema.String()),
		"code":    schema.Optional(schema.String()),
	}
}
