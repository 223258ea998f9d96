package api

import "strings"

// Auth endpoints.
const (
	AuthLogin    = "/api/auth/login"
	AuthRegister = "/api/auth/register"
	AuthLogout   = "/api/auth/logout"
	AuthMe       = "/api/auth/me"
	AuthRefresh  = "/api/auth/refresh"
)

// Product endpoints.
const (
	ProductsDiscover = "/api/products/discover"
	ProductsSearch   = "/api/products/search"
	ProductsDetail   = "/api/products"
	ProductsScrape   = "/api/products/scrape"
)

// Wishlist endpoints. Paths with ":" segments take parameters.
const (
	Wishlists          = "/api/wishlists"
	WishlistItems      = "/api/wishlists/:id/items"
	WishlistShareEmail = "/api/wishlists/:id/share/email"
	WishlistShareSMS   = "/api/wishlists/:id/share/sms"
	WishlistShared     = "/api/wishlists/shared/:shareId"
)

// User endpoints.
const (
	UserProfile     = "/api/users/profile"
	UserPreferences = "/api/users/preferences"
)

// Expand substitutes ":name" path segments with params. Segments without a
// matching param are left as they are.
func Expand(path string, params map[string]string) string {
	segs := strings.Split(path, "/")
	for i, s := range segs {
		if !strings.HasPrefix(s, ":") {
			continue
		}
		if v, ok := params[s[1:]]; ok {
			segs[i] = v
		}
	}
	return strings.Join(segs, "/")
}

// OpenAPIPath converts ":name" segments to the "{name}" form.
func OpenAPIPath(path string) string {
	segs := strings.Split(path, "/")
	for i, s := range segs {
		if strings.HasPrefix(s, ":") {
			segs[i] = "{" + s[1:] + "}"
		}
	}
	return strings.Join(segs, "/")
}
