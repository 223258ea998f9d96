package domain

import (
	"time"

	"github.com/aretw0/tabitha/pkg/validation"
)

// Gender is the optional self-declared gender of a user.
type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
	GenderOther  Gender = "other"
)

// User is a registered child account.
type User struct {
	ID          string    `json:"id" validate:"canonical_uuid"`
	Email       string    `json:"email" validate:"email_address"`
	Name        string    `json:"name" validate:"min=1"`
	Age         int       `json:"age" validate:"gte=6,lte=16"`
	Gender      *Gender   `json:"gender,omitempty" validate:"omitempty,oneof=male female other"`
	Interests   []string  `json:"interests" validate:"required"`
	ParentEmail *string   `json:"parentEmail,omitempty" validate:"omitempty,email_address"`
	CreatedAt   time.Time `json:"createdAt" validate:"required"`
	UpdatedAt   time.Time `json:"updatedAt" validate:"required"`
}

// Validate checks field constraints and the parent email rule.
func (u User) Validate() []validation.FieldError {
	return append(validation.Struct(u), parentEmailRule(&u.Age, u.ParentEmail)...)
}

// NewUser is the payload for creating a user. The store assigns the id and
// timestamps.
type NewUser struct {
	Email       string   `json:"email" validate:"email_address"`
	Name        string   `json:"name" validate:"min=1"`
	Age         int      `json:"age" validate:"gte=6,lte=16"`
	Gender      *Gender  `json:"gender,omitempty" validate:"omitempty,oneof=male female other"`
	Interests   []string `json:"interests" validate:"required"`
	ParentEmail *string  `json:"parentEmail,omitempty" validate:"omitempty,email_address"`
}

// Validate checks field constraints and the parent email rule.
func (u NewUser) Validate() []validation.FieldError {
	return append(validation.Struct(u), parentEmailRule(&u.Age, u.ParentEmail)...)
}

// Complete adds the server-assigned fields, producing the stored record.
func (u NewUser) Complete(id string, now time.Time) User {
	return User{
		ID:          id,
		Email:       u.Email,
		Name:        u.Name,
		Age:         u.Age,
		Gender:      u.Gender,
		Interests:   u.Interests,
		ParentEmail: u.ParentEmail,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// UserPatch is a partial update; nil fields are left unchanged.
type UserPatch struct {
	Email       *string   `json:"email,omitempty" validate:"omitempty,email_address"`
	Name        *string   `json:"name,omitempty" validate:"omitempty,min=1"`
	Age         *int      `json:"age,omitempty" validate:"omitempty,gte=6,lte=16"`
	Gender      *Gender   `json:"gender,omitempty" validate:"omitempty,oneof=male female other"`
	Interests   *[]string `json:"interests,omitempty"`
	ParentEmail *string   `json:"parentEmail,omitempty" validate:"omitempty,email_address"`
}

// Validate checks only the fields that are set.
func (p UserPatch) Validate() []validation.FieldError {
	return validation.Struct(p)
}

// Apply returns u with the set fields of p copied over and UpdatedAt bumped.
func (p UserPatch) Apply(u User, now time.Time) User {
	if p.Email != nil {
		u.Email = *p.Email
	}
	if p.Name != nil {
		u.Name = *p.Name
	}
	if p.Age != nil {
		u.Age = *p.Age
	}
	if p.Gender != nil {
		u.Gender = p.Gender
	}
	if p.Interests != nil {
		u.Interests = *p.Interests
	}
	if p.ParentEmail != nil {
		u.ParentEmail = p.ParentEmail
	}
	u.UpdatedAt = now
	return u
}

// PriceRange bounds a price preference.
type PriceRange struct {
	Min float64 `json:"min" validate:"gte=0"`
	Max float64 `json:"max" validate:"gte=0"`
}

// Notifications holds the per-channel opt-ins.
type Notifications struct {
	Email bool `json:"email"`
	SMS   bool `json:"sms"`
	Push  bool `json:"push"`
}

// UserPreferences are the discovery and notification settings of a user.
type UserPreferences struct {
	UserID        string        `json:"userId" validate:"canonical_uuid"`
	Categories    []string      `json:"categories" validate:"required"`
	PriceRange    *PriceRange   `json:"priceRange,omitempty"`
	Notifications Notifications `json:"notifications"`
}

// Validate checks field constraints.
func (p UserPreferences) Validate() []validation.FieldError {
	return validation.Struct(p)
}

func parentEmailRule(age *int, parentEmail *string) []validation.FieldError {
	if !validation.RequiresParentEmail(age) {
		return nil
	}
	if parentEmail == nil || *parentEmail == "" {
		return []validation.FieldError{{Field: "parentEmail", Message: validation.MsgParentEmailRequired}}
	}
	// an invalid address is already reported by the struct tag
	return nil
}
