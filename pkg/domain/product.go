package domain

import (
	"fmt"
	"math"
	"time"

	"github.com/aretw0/tabitha/pkg/validation"
)

// Retailer is a store products are sourced from.
type Retailer string

const (
	RetailerAmazon  Retailer = "amazon"
	RetailerWalmart Retailer = "walmart"
)

// AgeRange is the recommended age span of a product.
type AgeRange struct {
	Min int `json:"min" validate:"gte=0"`
	Max int `json:"max" validate:"lte=18"`
}

// Product is a catalog entry captured from a retailer.
type Product struct {
	ID            string    `json:"id" validate:"canonical_uuid"`
	Title         string    `json:"title" validate:"min=1"`
	Description   string    `json:"description"`
	Price         float64   `json:"price" validate:"gte=0"`
	OriginalPrice *float64  `json:"originalPrice,omitempty" validate:"omitempty,gte=0"`
	Currency      string    `json:"currency" validate:"len=3"`
	ImageURL      string    `json:"imageUrl" validate:"absolute_url"`
	ProductURL    string    `json:"productUrl" validate:"absolute_url"`
	Retailer      Retailer  `json:"retailer" validate:"oneof=amazon walmart"`
	Category      string    `json:"category"`
	AgeRange      AgeRange  `json:"ageRange"`
	Rating        *float64  `json:"rating,omitempty" validate:"omitempty,gte=0,lte=5"`
	Availability  bool      `json:"availability"`
	ScrapedAt     time.Time `json:"scrapedAt" validate:"required"`
}

// Validate checks field constraints. Price and age range consistency are
// not enforced; see Warnings.
func (p Product) Validate() []validation.FieldError {
	return validation.Struct(p)
}

// DiscountPercent returns the rounded discount relative to OriginalPrice, or
// 0 when there is no higher original price.
func (p Product) DiscountPercent() int {
	return discountPercent(p.Price, p.OriginalPrice)
}

// Warnings lists inconsistencies that do not make the product invalid but
// would produce odd display values.
func (p Product) Warnings() []string {
	return productWarnings(p.Price, p.OriginalPrice, p.AgeRange)
}

// NewProduct is a product before the store assigns its id.
type NewProduct struct {
	Title         string    `json:"title" validate:"min=1"`
	Description   string    `json:"description"`
	Price         float64   `json:"price" validate:"gte=0"`
	OriginalPrice *float64  `json:"originalPrice,omitempty" validate:"omitempty,gte=0"`
	Currency      string    `json:"currency" validate:"len=3"`
	ImageURL      string    `json:"imageUrl" validate:"absolute_url"`
	ProductURL    string    `json:"productUrl" validate:"absolute_url"`
	Retailer      Retailer  `json:"retailer" validate:"oneof=amazon walmart"`
	Category      string    `json:"category"`
	AgeRange      AgeRange  `json:"ageRange"`
	Rating        *float64  `json:"rating,omitempty" validate:"omitempty,gte=0,lte=5"`
	Availability  bool      `json:"availability"`
	ScrapedAt     time.Time `json:"scrapedAt" validate:"required"`
}

// Validate checks field constraints.
func (p NewProduct) Validate() []validation.FieldError {
	return validation.Struct(p)
}

// Complete adds the server-assigned id.
func (p NewProduct) Complete(id string) Product {
	return Product{
		ID:            id,
		Title:         p.Title,
		Description:   p.Description,
		Price:         p.Price,
		OriginalPrice: p.OriginalPrice,
		Currency:      p.Currency,
		ImageURL:      p.ImageURL,
		ProductURL:    p.ProductURL,
		Retailer:      p.Retailer,
		Category:      p.Category,
		AgeRange:      p.AgeRange,
		Rating:        p.Rating,
		Availability:  p.Availability,
		ScrapedAt:     p.ScrapedAt,
	}
}

// ProductFilter narrows a product listing.
type ProductFilter struct {
	Category     *string   `json:"category,omitempty"`
	MinPrice     *float64  `json:"minPrice,omitempty" validate:"omitempty,gte=0"`
	MaxPrice     *float64  `json:"maxPrice,omitempty" validate:"omitempty,gte=0"`
	Retailer     *Retailer `json:"retailer,omitempty" validate:"omitempty,oneof=amazon walmart"`
	AgeRange     *AgeRange `json:"ageRange,omitempty"`
	Availability *bool     `json:"availability,omitempty"`
}

// ProductSearch is a paged full-text product query.
type ProductSearch struct {
	Query   string         `json:"query" validate:"min=1"`
	Filters *ProductFilter `json:"filters,omitempty"`
	Page    int            `json:"page" validate:"gte=1"`
	Limit   int            `json:"limit" validate:"gte=1,lte=100"`
}

// Validate checks field constraints.
func (s ProductSearch) Validate() []validation.FieldError {
	return validation.Struct(s)
}

func discountPercent(price float64, original *float64) int {
	if original == nil || *original <= price || *original <= 0 {
		return 0
	}
	return int(math.Round((*original - price) / *original * 100))
}

func productWarnings(price float64, original *float64, ages AgeRange) []string {
	var out []string
	if original != nil && *original < price {
		out = append(out, fmt.Sprintf("originalPrice %.2f is below price %.2f", *original, price))
	}
	if ages.Min > ages.Max {
		out = append(out, fmt.Sprintf("ageRange.min %d is above ageRange.max %d", ages.Min, ages.Max))
	}
	return out
}
