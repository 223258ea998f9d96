package form_test

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/tabitha/pkg/domain"
	"github.com/aretw0/tabitha/pkg/form"
	"github.com/aretw0/tabitha/pkg/schema"
	"github.com/aretw0/tabitha/pkg/validation"
)

func newUserForm() *form.Validator {
	return form.NewValidator(domain.NewUserSchema(), domain.CheckParentEmail)
}

func TestValidator_Success(t *testing.T) {
	res := newUserForm().Validate(map[string]any{
		"email":     "ana@example.com",
		"name":      "Ana",
		"age":       14.0,
		"interests": []any{"music"},
		"extra":     true,
	})

	require.True(t, res.Success, "%v", res.Errors)
	assert.Empty(t, res.Errors)
	assert.Equal(t, 14, res.Data["age"])
	assert.NotContains(t, res.Data, "extra")
}

func TestValidator_ReportsEveryField(t *testing.T) {
	res := newUserForm().Validate(map[string]any{
		"email":     "ana",
		"age":       8,
		"interests": []any{"music", 3},
		"gender":    "robot",
	})

	require.False(t, res.Success)
	assert.Nil(t, res.Data)

	var got []string
	for _, e := range res.Errors {
		got = append(got, e.Field)
	}
	assert.Equal(t, []string{"email", "gender", "interests.1", "name", "parentEmail"}, got)
	assert.Equal(t, "Please enter a valid email address", res.Errors[0].Message)
	assert.Equal(t, validation.MsgParentEmailRequired, res.Errors[4].Message)
}

func TestValidator_RejectsNonObjects(t *testing.T) {
	v := newUserForm()
	for _, in := range []any{nil, "ana", 42, []any{1}, map[int]any{1: "a"}, map[string]any(nil)} {
		res := v.Validate(in)
		assert.False(t, res.Success, "%v", in)
		require.Len(t, res.Errors, 1)
		assert.Empty(t, res.Errors[0].Field)
	}
}

func TestValidator_AcceptsStringKeyedMaps(t *testing.T) {
	v := form.NewValidator(schema.Schema{"name": schema.String()})
	res := v.Validate(map[string]string{"name": "Ana"})
	assert.True(t, res.Success)
}

func TestValidator_Func(t *testing.T) {
	validate := newUserForm().Func()
	res := validate(map[string]any{"email": "ana"})
	assert.False(t, res.Success)
	assert.NotEmpty(t, res.Errors)
}

func TestValidator_ConcurrentUse(t *testing.T) {
	v := newUserForm()
	payload := map[string]any{"email": "x", "age": 10}
	want := v.Validate(payload)

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.Equal(t, want, v.Validate(payload))
		}()
	}
	wg.Wait()
}

func TestTyped(t *testing.T) {
	v := form.For[domain.WishlistWithItems](form.NewValidator(domain.WishlistWithItemsSchema()))
	now := "2025-12-24T18:00:00Z"

	res := v.Validate(map[string]any{
		"id":        "0b9a8c7d-6e5f-4a3b-8c2d-1e0f9a8b7c6d",
		"userId":    "5f0c6f8e-7b1a-4c2d-9e3f-0a1b2c3d4e5f",
		"name":      "Christmas",
		"type":      "christmas",
		"createdAt": now,
		"updatedAt": now,
		"items": []any{
			map[string]any{
				"id":         "1a2b3c4d-5e6f-4a7b-8c9d-0e1f2a3b4c5d",
				"wishlistId": "0b9a8c7d-6e5f-4a3b-8c2d-1e0f9a8b7c6d",
				"productId":  "9d8c7b6a-5f4e-4d3c-a2b1-0f9e8d7c6b5a",
				"addedAt":    now,
				"product": map[string]any{
					"id":            "9d8c7b6a-5f4e-4d3c-a2b1-0f9e8d7c6b5a",
					"title":         "Sled",
					"description":   "Wooden sled",
					"price":         80,
					"originalPrice": 100,
					"currency":      "USD",
					"imageUrl":      "https://img.example.com/sled.png",
					"productUrl":    "https://www.walmart.com/ip/1",
					"retailer":      "walmart",
					"category":      "outdoor",
					"ageRange":      map[string]any{"min": 4, "max": 12},
					"availability":  true,
					"scrapedAt":     now,
				},
			},
		},
	})

	require.True(t, res.Success, "%v", res.Errors)
	w := res.Data
	assert.Equal(t, domain.WishlistChristmas, w.Type)
	assert.False(t, w.IsPublic)
	assert.Nil(t, w.ShareID)
	require.Len(t, w.Items, 1)

	item := w.Items[0]
	assert.Equal(t, 5, item.Priority)
	assert.Equal(t, "9d8c7b6a-5f4e-4d3c-a2b1-0f9e8d7c6b5a", item.ProductID)
	assert.Equal(t, 20, item.Product.DiscountPercent())
	assert.Equal(t, time.Date(2025, 12, 24, 18, 0, 0, 0, time.UTC), item.AddedAt.UTC())
	assert.Empty(t, w.Validate())
}

func TestTyped_Failure(t *testing.T) {
	v := form.For[domain.ProductSearch](form.NewValidator(domain.ProductSearchSchema()))
	res := v.Validate(map[string]any{"query": ""})
	assert.False(t, res.Success)
	assert.Equal(t, []validation.FieldError{{Field: "query", Message: "must contain at least 1 character(s)"}}, res.Errors)

	res = v.Validate(map[string]any{"query": "lego", "filters": map[string]any{"retailer": "amazon"}})
	require.True(t, res.Success)
	assert.Equal(t, 20, res.Data.Limit)
	require.NotNil(t, res.Data.Filters.Retailer)
	assert.Equal(t, domain.RetailerAmazon, *res.Data.Filters.Retailer)
}
