package domain

import (
	"strconv"
	"time"

	"github.com/aretw0/tabitha/pkg/config"
	"github.com/aretw0/tabitha/pkg/validation"
)

// WishlistType is the occasion a wishlist is made for.
type WishlistType string

const (
	WishlistBirthday  WishlistType = "birthday"
	WishlistChristmas WishlistType = "christmas"
	WishlistHoliday   WishlistType = "holiday"
	WishlistGeneral   WishlistType = "general"
)

// Wishlist is a named collection of wanted products. ShareID stays nil until
// the owner shares the list.
type Wishlist struct {
	ID          string       `json:"id" validate:"canonical_uuid"`
	UserID      string       `json:"userId" validate:"canonical_uuid"`
	Name        string       `json:"name" validate:"min=1"`
	Type        WishlistType `json:"type" validate:"oneof=birthday christmas holiday general"`
	Description *string      `json:"description,omitempty"`
	ShareID     *string      `json:"shareId,omitempty"`
	IsPublic    bool         `json:"isPublic"`
	CreatedAt   time.Time    `json:"createdAt" validate:"required"`
	UpdatedAt   time.Time    `json:"updatedAt" validate:"required"`
}

// Validate checks field constraints.
func (w Wishlist) Validate() []validation.FieldError {
	return validation.Struct(w)
}

// IsShared reports whether a share id has been issued.
func (w Wishlist) IsShared() bool {
	return w.ShareID != nil && *w.ShareID != ""
}

// NewWishlist is the payload for creating a wishlist.
type NewWishlist struct {
	UserID      string       `json:"userId" validate:"canonical_uuid"`
	Name        string       `json:"name" validate:"min=1"`
	Type        WishlistType `json:"type" validate:"oneof=birthday christmas holiday general"`
	Description *string      `json:"description,omitempty"`
	IsPublic    bool         `json:"isPublic"`
}

// Validate checks field constraints.
func (w NewWishlist) Validate() []validation.FieldError {
	return validation.Struct(w)
}

// Complete adds the server-assigned fields. The list starts unshared.
func (w NewWishlist) Complete(id string, now time.Time) Wishlist {
	return Wishlist{
		ID:          id,
		UserID:      w.UserID,
		Name:        w.Name,
		Type:        w.Type,
		Description: w.Description,
		IsPublic:    w.IsPublic,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// WishlistPatch is a partial update; nil fields are left unchanged.
type WishlistPatch struct {
	UserID      *string       `json:"userId,omitempty" validate:"omitempty,canonical_uuid"`
	Name        *string       `json:"name,omitempty" validate:"omitempty,min=1"`
	Type        *WishlistType `json:"type,omitempty" validate:"omitempty,oneof=birthday christmas holiday general"`
	Description *string       `json:"description,omitempty"`
	IsPublic    *bool         `json:"isPublic,omitempty"`
}

// Validate checks only the fields that are set.
func (p WishlistPatch) Validate() []validation.FieldError {
	return validation.Struct(p)
}

// Apply returns w with the set fields of p copied over and UpdatedAt bumped.
func (p WishlistPatch) Apply(w Wishlist, now time.Time) Wishlist {
	if p.UserID != nil {
		w.UserID = *p.UserID
	}
	if p.Name != nil {
		w.Name = *p.Name
	}
	if p.Type != nil {
		w.Type = *p.Type
	}
	if p.Description != nil {
		w.Description = p.Description
	}
	if p.IsPublic != nil {
		w.IsPublic = *p.IsPublic
	}
	w.UpdatedAt = now
	return w
}

// WishlistItem places a product on a wishlist with a priority from 1 to 10.
type WishlistItem struct {
	ID         string    `json:"id" validate:"canonical_uuid"`
	WishlistID string    `json:"wishlistId" validate:"canonical_uuid"`
	ProductID  string    `json:"productId" validate:"canonical_uuid"`
	Priority   int       `json:"priority" validate:"gte=1,lte=10"`
	Notes      *string   `json:"notes,omitempty"`
	AddedAt    time.Time `json:"addedAt" validate:"required"`
}

// Validate checks field constraints.
func (i WishlistItem) Validate() []validation.FieldError {
	return validation.Struct(i)
}

// NewWishlistItem is the payload for adding a product to a wishlist. A zero
// Priority means "use the default".
type NewWishlistItem struct {
	WishlistID string  `json:"wishlistId" validate:"canonical_uuid"`
	ProductID  string  `json:"productId" validate:"canonical_uuid"`
	Priority   int     `json:"priority" validate:"gte=1,lte=10"`
	Notes      *string `json:"notes,omitempty"`
}

// WithDefaults fills the default priority when none was given.
func (i NewWishlistItem) WithDefaults() NewWishlistItem {
	if i.Priority == 0 {
		i.Priority = config.PriorityDefault
	}
	return i
}

// Validate checks field constraints after defaults are applied.
func (i NewWishlistItem) Validate() []validation.FieldError {
	return validation.Struct(i.WithDefaults())
}

// Complete adds the server-assigned fields.
func (i NewWishlistItem) Complete(id string, now time.Time) WishlistItem {
	i = i.WithDefaults()
	return WishlistItem{
		ID:         id,
		WishlistID: i.WishlistID,
		ProductID:  i.ProductID,
		Priority:   i.Priority,
		Notes:      i.Notes,
		AddedAt:    now,
	}
}

// WishlistItemPatch changes the priority or the notes of an item.
type WishlistItemPatch struct {
	Priority *int    `json:"priority,omitempty" validate:"omitempty,gte=1,lte=10"`
	Notes    *string `json:"notes,omitempty"`
}

// Validate checks only the fields that are set.
func (p WishlistItemPatch) Validate() []validation.FieldError {
	return validation.Struct(p)
}

// Apply returns i with the set fields of p copied over.
func (p WishlistItemPatch) Apply(i WishlistItem) WishlistItem {
	if p.Priority != nil {
		i.Priority = *p.Priority
	}
	if p.Notes != nil {
		i.Notes = p.Notes
	}
	return i
}

// ClampPriority forces n into the allowed priority range.
func ClampPriority(n int) int {
	return min(max(n, config.PriorityMin), config.PriorityMax)
}

// WishlistItemWithProduct is an item joined with its product.
type WishlistItemWithProduct struct {
	WishlistItem
	Product Product `json:"product"`
}

// Validate checks the item and the embedded product.
func (i WishlistItemWithProduct) Validate() []validation.FieldError {
	return append(i.WishlistItem.Validate(), prefixed("product", i.Product.Validate())...)
}

// WishlistWithItems is a wishlist joined with its items.
type WishlistWithItems struct {
	Wishlist
	Items []WishlistItemWithProduct `json:"items"`
}

// Validate checks the wishlist and every item.
func (w WishlistWithItems) Validate() []validation.FieldError {
	errs := w.Wishlist.Validate()
	if w.Items == nil {
		errs = append(errs, validation.FieldError{Field: "items", Message: config.MsgRequiredField})
	}
	for i, item := range w.Items {
		errs = append(errs, prefixed("items."+strconv.Itoa(i), item.Validate())...)
	}
	return errs
}

// ShareMethod is the channel a wishlist is shared through.
type ShareMethod string

const (
	ShareByEmail ShareMethod = "email"
	ShareBySMS   ShareMethod = "sms"
)

// ShareWishlist asks for a wishlist to be sent to recipients.
type ShareWishlist struct {
	WishlistID string      `json:"wishlistId" validate:"canonical_uuid"`
	Method     ShareMethod `json:"method" validate:"oneof=email sms"`
	Recipients []string    `json:"recipients" validate:"required"`
	Message    *string     `json:"message,omitempty"`
}

// Validate checks field constraints.
func (s ShareWishlist) Validate() []validation.FieldError {
	return validation.Struct(s)
}

func prefixed(prefix string, errs []validation.FieldError) []validation.FieldError {
	for i := range errs {
		if errs[i].Field == "" {
			errs[i].Field = prefix
			continue
		}
		errs[i].Field = prefix + "." + errs[i].Field
	}
	return errs
}
