package registry

import (
	"github.com/aretw0/tabitha/pkg/api"
	"github.com/aretw0/tabitha/pkg/auth"
	"github.com/aretw0/tabitha/pkg/domain"
	"github.com/aretw0/tabitha/pkg/form"
)

// Built-in validator names.
const (
	User                    = "user"
	UserCreate              = "user.create"
	UserUpdate              = "user.update"
	UserPreferences         = "user.preferences"
	UserRegistration        = "user.registration"
	UserLogin               = "user.login"
	Product                 = "product"
	ProductCreate           = "product.create"
	ProductFilter           = "product.filter"
	ProductSearch           = "product.search"
	Wishlist                = "wishlist"
	WishlistCreate          = "wishlist.create"
	WishlistUpdate          = "wishlist.update"
	WishlistShare           = "wishlist.share"
	WishlistWithItems       = "wishlist.with_items"
	WishlistItem            = "wishlist_item"
	WishlistItemCreate      = "wishlist_item.create"
	WishlistItemUpdate      = "wishlist_item.update"
	WishlistItemWithProduct = "wishlist_item.with_product"
	APIResponse             = "api.response"
	APIPaginated            = "api.paginated"
	APIError                = "api.error"
)

// Default returns a registry holding every entity and envelope validator.
// Each call builds a fresh registry.
func Default() *Registry {
	r := NewRegistry()

	r.Register(User, "Stored user record", form.NewValidator(domain.UserSchema(), domain.CheckParentEmail))
	r.Register(UserCreate, "User creation payload", form.NewValidator(domain.NewUserSchema(), domain.CheckParentEmail))
	r.Register(UserUpdate, "Partial user update", form.NewValidator(domain.UserPatchSchema()))
	r.Register(UserPreferences, "User notification and category preferences", form.NewValidator(domain.UserPreferencesSchema()))
	r.Register(UserRegistration, "Sign-up form", form.NewValidator(auth.RegistrationSchema(), auth.CheckPassword, auth.CheckUserData))
	r.Register(UserLogin, "Sign-in form", form.NewValidator(auth.LoginSchema()))

	r.Register(Product, "Stored product record", form.NewValidator(domain.ProductSchema()))
	r.Register(ProductCreate, "Product creation payload", form.NewValidator(domain.NewProductSchema()))
	r.Register(ProductFilter, "Product listing filter", form.NewValidator(domain.ProductFilterSchema()))
	r.Register(ProductSearch, "Product search request", form.NewValidator(domain.ProductSearchSchema()))

	r.Register(Wishlist, "Stored wishlist record", form.NewValidator(domain.WishlistSchema()))
	r.Register(WishlistCreate, "Wishlist creation payload", form.NewValidator(domain.NewWishlistSchema()))
	r.Register(WishlistUpdate, "Partial wishlist update", form.NewValidator(domain.WishlistPatchSchema()))
	r.Register(WishlistShare, "Wishlist share request", form.NewValidator(domain.ShareWishlistSchema()))
	r.Register(WishlistWithItems, "Wishlist with its items and products", form.NewValidator(domain.WishlistWithItemsSchema()))

	r.Register(WishlistItem, "Stored wishlist item", form.NewValidator(domain.WishlistItemSchema()))
	r.Register(WishlistItemCreate, "Wishlist item creation payload", form.NewValidator(domain.NewWishlistItemSchema()))
	r.Register(WishlistItemUpdate, "Wishlist item priority and notes update", form.NewValidator(domain.WishlistItemPatchSchema()))
	r.Register(WishlistItemWithProduct, "Wishlist item with its product", form.NewValidator(domain.WishlistItemWithProductSchema()))

	r.Register(APIResponse, "Standard response envelope", form.NewValidator(api.ResponseSchema()))
	r.Register(APIPaginated, "Paginated response envelope", form.NewValidator(api.PaginatedResponseSchema()))
	r.Register(APIError, "Error response envelope", form.NewValidator(api.ErrorResponseSchema()))

	return r
}
