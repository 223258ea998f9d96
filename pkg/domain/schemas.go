package domain

import (
	"github.com/aretw0/tabitha/pkg/config"
	"github.com/aretw0/tabitha/pkg/schema"
)

// field is one row of an entity table. Server fields are assigned by the
// backing store and are absent from Create and Update variants.
type field struct {
	name   string
	typ    schema.Type
	server bool
}

type table []field

// full returns the schema of the stored record.
func (t table) full() schema.Schema {
	s := make(schema.Schema, len(t))
	for _, f := range t {
		s[f.name] = f.typ
	}
	return s
}

// create returns the schema without server-assigned fields.
func (t table) create() schema.Schema {
	s := make(schema.Schema, len(t))
	for _, f := range t {
		if !f.server {
			s[f.name] = f.typ
		}
	}
	return s
}

// update returns the create schema with every field optional and no
// defaults, so that absent fields stay absent.
func (t table) update() schema.Schema {
	s := make(schema.Schema, len(t))
	for _, f := range t {
		if !f.server {
			s[f.name] = schema.Optional(schema.Unwrap(f.typ))
		}
	}
	return s
}

func id() schema.Type {
	return schema.String(schema.UUID().WithMessage(config.MsgInvalidID))
}

func email() schema.Type {
	return schema.String(schema.Email().WithMessage(config.MsgInvalidEmail))
}

func url() schema.Type {
	return schema.String(schema.URL().WithMessage(config.MsgInvalidURL))
}

func price() schema.Type {
	return schema.Float(schema.Min(0).WithMessage(config.MsgInvalidPrice))
}

func priority() schema.Type {
	return schema.Int(schema.Min(config.PriorityMin), schema.Max(config.PriorityMax))
}

func ageRange() schema.Type {
	return schema.Object(schema.Schema{
		"min": schema.Int(schema.Min(config.ProductAgeRangeMin)),
		"max": schema.Int(schema.Max(config.ProductAgeRangeMax)),
	})
}

func userTable() table {
	return table{
		{name: "id", typ: id(), server: true},
		{name: "email", typ: email()},
		{name: "name", typ: schema.String(schema.MinLen(1))},
		{name: "age", typ: schema.Int(
			schema.Min(config.AgeMin).WithMessage(config.MsgAgeTooLow),
			schema.Max(config.AgeMax).WithMessage(config.MsgAgeTooHigh),
		)},
		{name: "gender", typ: schema.Optional(schema.Enum(config.Genders()...))},
		{name: "interests", typ: schema.Slice(schema.String())},
		{name: "parentEmail", typ: schema.Optional(email())},
		{name: "createdAt", typ: schema.Time(), server: true},
		{name: "updatedAt", typ: schema.Time(), server: true},
	}
}

func productTable() table {
	return table{
		{name: "id", typ: id(), server: true},
		{name: "title", typ: schema.String(schema.MinLen(1))},
		{name: "description", typ: schema.String()},
		{name: "price", typ: price()},
		{name: "originalPrice", typ: schema.Optional(price())},
		{name: "currency", typ: schema.String(schema.Len(config.CurrencyCodeLength))},
		{name: "imageUrl", typ: url()},
		{name: "productUrl", typ: url()},
		{name: "retailer", typ: schema.Enum(config.Retailers()...)},
		{name: "category", typ: schema.String()},
		{name: "ageRange", typ: ageRange()},
		{name: "rating", typ: schema.Optional(schema.Float(schema.Min(config.RatingMin), schema.Max(config.RatingMax)))},
		{name: "availability", typ: schema.Bool()},
		{name: "scrapedAt", typ: schema.Time()},
	}
}

func wishlistTable() table {
	return table{
		{name: "id", typ: id(), server: true},
		{name: "userId", typ: id()},
		{name: "name", typ: schema.String(schema.MinLen(1))},
		{name: "type", typ: schema.Enum(config.WishlistTypes()...)},
		{name: "description", typ: schema.Optional(schema.String())},
		{name: "shareId", typ: schema.Optional(schema.String()), server: true},
		{name: "isPublic", typ: schema.Default(schema.Bool(), false)},
		{name: "createdAt", typ: schema.Time(), server: true},
		{name: "updatedAt", typ: schema.Time(), server: true},
	}
}

func wishlistItemTable() table {
	return table{
		{name: "id", typ: id(), server: true},
		{name: "wishlistId", typ: id()},
		{name: "productId", typ: id()},
		{name: "priority", typ: schema.Default(priority(), config.PriorityDefault)},
		{name: "notes", typ: schema.Optional(schema.String())},
		{name: "addedAt", typ: schema.Time(), server: true},
	}
}

// UserSchema is the stored user record.
func UserSchema() schema.Schema { return userTable().full() }

// NewUserSchema is the user creation payload.
func NewUserSchema() schema.Schema { return userTable().create() }

// UserPatchSchema is the partial user update payload.
func UserPatchSchema() schema.Schema { return userTable().update() }

// UserPreferencesSchema describes UserPreferences.
func UserPreferencesSchema() schema.Schema {
	return schema.Schema{
		"userId":     id(),
		"categories": schema.Slice(schema.String()),
		"priceRange": schema.Optional(schema.Object(schema.Schema{
			"min": schema.Float(schema.Min(0)),
			"max": schema.Float(schema.Min(0)),
		})),
		"notifications": schema.Object(schema.Schema{
			"email": schema.Bool(),
			"sms":   schema.Bool(),
			"push":  schema.Bool(),
		}),
	}
}

// ProductSchema is the stored product record.
func ProductSchema() schema.Schema { return productTable().full() }

// NewProductSchema is the product creation payload.
func NewProductSchema() schema.Schema { return productTable().create() }

// ProductFilterSchema describes ProductFilter.
func ProductFilterSchema() schema.Schema {
	return schema.Schema{
		"category":     schema.Optional(schema.String()),
		"minPrice":     schema.Optional(schema.Float(schema.Min(0))),
		"maxPrice":     schema.Optional(schema.Float(schema.Min(0))),
		"retailer":     schema.Optional(schema.Enum(config.Retailers()...)),
		"ageRange":     schema.Optional(ageRange()),
		"availability": schema.Optional(schema.Bool()),
	}
}

// ProductSearchSchema describes ProductSearch.
func ProductSearchSchema() schema.Schema {
	return schema.Schema{
		"query":   schema.String(schema.MinLen(1)),
		"filters": schema.Optional(schema.Object(ProductFilterSchema())),
		"page":    schema.Default(schema.Int(schema.Min(1)), config.DefaultPage),
		"limit":   schema.Default(schema.Int(schema.Min(1), schema.Max(config.MaxLimit)), config.DefaultLimit),
	}
}

// WishlistSchema is the stored wishlist record.
func WishlistSchema() schema.Schema { return wishlistTable().full() }

// NewWishlistSchema is the wishlist creation payload.
func NewWishlistSchema() schema.Schema { return wishlistTable().create() }

// WishlistPatchSchema is the partial wishlist update payload.
func WishlistPatchSchema() schema.Schema { return wishlistTable().update() }

// WishlistItemSchema is the stored wishlist item record.
func WishlistItemSchema() schema.Schema { return wishlistItemTable().full() }

// NewWishlistItemSchema is the payload for adding an item.
func NewWishlistItemSchema() schema.Schema { return wishlistItemTable().create() }

// WishlistItemPatchSchema only allows priority and notes to change.
func WishlistItemPatchSchema() schema.Schema {
	return schema.Schema{
		"priority": schema.Optional(priority()),
		"notes":    schema.Optional(schema.String()),
	}
}

// WishlistItemWithProductSchema is an item joined with its product.
func WishlistItemWithProductSchema() schema.Schema {
	s := WishlistItemSchema()
	s["product"] = schema.Object(ProductSchema())
	return s
}

// WishlistWithItemsSchema is a wishlist joined with its items.
func WishlistWithItemsSchema() schema.Schema {
	s := WishlistSchema()
	s["items"] = schema.Slice(schema.Object(WishlistItemWithProductSchema()))
	return s
}

// ShareWishlistSchema describes ShareWishlist.
func ShareWishlistSchema() schema.Schema {
	return schema.Schema{
		"wishlistId": id(),
		"method":     schema.Enum(config.ShareMethods()...),
		"recipients": schema.Slice(schema.String()),
		"message":    schema.Optional(schema.String()),
	}
}
