package api

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/getkin/kin-openapi/openapi3"

	"github.com/aretw0/tabitha/pkg/auth"
	"github.com/aretw0/tabitha/pkg/config"
	"github.com/aretw0/tabitha/pkg/domain"
	"github.com/aretw0/tabitha/pkg/schema"
)

// Components returns the named wire shapes published in the OpenAPI
// document. Names are the component keys.
func Components() map[string]schema.Schema {
	return map[string]schema.Schema{
		"User":                    domain.UserSchema(),
		"NewUser":                 domain.NewUserSchema(),
		"UserPatch":               domain.UserPatchSchema(),
		"UserPreferences":         domain.UserPreferencesSchema(),
		"Product":                 domain.ProductSchema(),
		"NewProduct":              domain.NewProductSchema(),
		"ProductFilter":           domain.ProductFilterSchema(),
		"ProductSearch":           domain.ProductSearchSchema(),
		"Wishlist":                domain.WishlistSchema(),
		"NewWishlist":             domain.NewWishlistSchema(),
		"WishlistPatch":           domain.WishlistPatchSchema(),
		"WishlistItem":            domain.WishlistItemSchema(),
		"NewWishlistItem":         domain.NewWishlistItemSchema(),
		"WishlistItemPatch":       domain.WishlistItemPatchSchema(),
		"WishlistItemWithProduct": domain.WishlistItemWithProductSchema(),
		"WishlistWithItems":       domain.WishlistWithItemsSchema(),
		"ShareWishlist":           domain.ShareWishlistSchema(),
		"Registration":            auth.RegistrationSchema(),
		"Login":                   auth.LoginSchema(),
		"ErrorResponse":           ErrorResponseSchema(),
	}
}

// route binds an endpoint and method to its request and response
// components. An empty request means no body; list marks paginated
// responses.
type route struct {
	path     string
	method   string
	id       string
	request  string
	response string
	list     bool
}

func routes() []route {
	return []route{
		{path: AuthRegister, method: http.MethodPost, id: "register", request: "Registration", response: "User"},
		{path: AuthLogin, method: http.MethodPost, id: "login", request: "Login", response: "User"},
		{path: AuthMe, method: http.MethodGet, id: "currentUser", response: "User"},
		{path: ProductsDiscover, method: http.MethodGet, id: "discoverProducts", response: "Product", list: true},
		{path: ProductsSearch, method: http.MethodPost, id: "searchProducts", request: "ProductSearch", response: "Product", list: true},
		{path: Wishlists, method: http.MethodGet, id: "listWishlists", response: "Wishlist", list: true},
		{path: Wishlists, method: http.MethodPost, id: "createWishlist", request: "NewWishlist", response: "Wishlist"},
		{path: WishlistItems, method: http.MethodGet, id: "listWishlistItems", response: "WishlistItemWithProduct", list: true},
		{path: WishlistItems, method: http.MethodPost, id: "addWishlistItem", request: "NewWishlistItem", response: "WishlistItem"},
		{path: WishlistShareEmail, method: http.MethodPost, id: "shareWishlistByEmail", request: "ShareWishlist", response: "Wishlist"},
		{path: WishlistShareSMS, method: http.MethodPost, id: "shareWishlistBySMS", request: "ShareWishlist", response: "Wishlist"},
		{path: WishlistShared, method: http.MethodGet, id: "sharedWishlist", response: "WishlistWithItems"},
		{path: UserProfile, method: http.MethodGet, id: "userProfile", response: "User"},
		{path: UserProfile, method: http.MethodPatch, id: "updateUserProfile", request: "UserPatch", response: "User"},
		{path: UserPreferences, method: http.MethodGet, id: "userPreferences", response: "UserPreferences"},
		{path: UserPreferences, method: http.MethodPut, id: "updateUserPreferences", request: "UserPreferences", response: "UserPreferences"},
	}
}

// Document builds the OpenAPI 3 description of the API contract.
func Document() *openapi3.T {
	components := &openapi3.Components{Schemas: make(openapi3.Schemas)}
	for name, s := range Components() {
		components.Schemas[name] = openapi3.NewSchemaRef("", ObjectSchema(s))
	}

	doc := &openapi3.T{
		OpenAPI: "3.0.3",
		Info: &openapi3.Info{
			Title:   config.AppName,
			Version: config.Version,
		},
		Servers:    openapi3.Servers{{URL: config.APIBaseURL}},
		Components: components,
		Paths:      openapi3.NewPaths(),
	}

	for _, r := range routes() {
		path := OpenAPIPath(r.path)
		item := doc.Paths.Value(path)
		if item == nil {
			item = &openapi3.PathItem{}
			doc.Paths.Set(path, item)
		}
		item.SetOperation(r.method, operation(r, components.Schemas))
	}
	return doc
}

// Validate checks the generated document against the OpenAPI 3 rules.
func Validate(ctx context.Context) error {
	if err := Document().Validate(ctx); err != nil {
		return fmt.Errorf("openapi document: %w", err)
	}
	return nil
}

func operation(r route, schemas openapi3.Schemas) *openapi3.Operation {
	op := openapi3.NewOperation()
	op.OperationID = r.id
	op.Tags = []string{strings.Split(strings.TrimPrefix(r.path, "/api/"), "/")[0]}

	for _, seg := range strings.Split(r.path, "/") {
		if name, ok := strings.CutPrefix(seg, ":"); ok {
			op.AddParameter(openapi3.NewPathParameter(name).WithSchema(openapi3.NewStringSchema()))
		}
	}

	if r.request != "" {
		body := openapi3.NewRequestBody().
			WithRequired(true).
			WithJSONSchemaRef(ref(r.request, schemas))
		op.RequestBody = &openapi3.RequestBodyRef{Value: body}
	}

	ok := openapi3.NewResponse().
		WithDescription("OK").
		WithJSONSchema(envelope(ref(r.response, schemas), r.list))
	failed := openapi3.NewResponse().
		WithDescription("Validation failed").
		WithJSONSchemaRef(ref("ErrorResponse", schemas))

	op.Responses = &openapi3.Responses{}
	op.Responses.Set("200", &openapi3.ResponseRef{Value: ok})
	op.Responses.Set("400", &openapi3.ResponseRef{Value: failed})
	return op
}

func ref(name string, schemas openapi3.Schemas) *openapi3.SchemaRef {
	return openapi3.NewSchemaRef("#/components/schemas/"+name, schemas[name].Value)
}

// envelope wraps data in the Response or PaginatedResponse shape.
func envelope(data *openapi3.SchemaRef, list bool) *openapi3.Schema {
	s := openapi3.NewObjectSchema()
	s.Properties = openapi3.Schemas{
		"success": openapi3.NewBoolSchema().NewRef(),
		"error":   openapi3.NewStringSchema().NewRef(),
		"message": openapi3.NewStringSchema().NewRef(),
	}
	s.Required = []string{"data", "success"}
	if !list {
		s.Properties["data"] = data
		return s
	}
	items := openapi3.NewArraySchema()
	items.Items = data
	s.Properties["data"] = items.NewRef()
	s.Properties["pagination"] = ObjectSchema(PaginatedResponseSchema()["pagination"].(*schema.ObjectType).Fields).NewRef()
	s.Required = append(s.Required, "pagination")
	return s
}

// ObjectSchema converts a runtime schema into an OpenAPI object schema.
// Optional and defaulted fields are not required.
func ObjectSchema(s schema.Schema) *openapi3.Schema {
	out := openapi3.NewObjectSchema()
	out.Properties = make(openapi3.Schemas, len(s))
	for _, key := range s.Keys() {
		t := s[key]
		out.Properties[key] = TypeSchema(t).NewRef()
		if !schema.IsOptional(t) {
			out.Required = append(out.Required, key)
		}
	}
	return out
}

// TypeSchema converts a single runtime type.
func TypeSchema(t schema.Type) *openapi3.Schema {
	var out *openapi3.Schema
	switch u := schema.Unwrap(t).(type) {
	case *schema.StringType:
		out = openapi3.NewStringSchema()
		for _, r := range u.Rules {
			applyStringRule(out, r)
		}
	case *schema.IntType:
		out = openapi3.NewIntegerSchema()
		for _, r := range u.Rules {
			applyNumberRule(out, r)
		}
	case *schema.FloatType:
		out = openapi3.NewFloat64Schema()
		for _, r := range u.Rules {
			applyNumberRule(out, r)
		}
	case *schema.BoolType:
		out = openapi3.NewBoolSchema()
	case *schema.TimeType:
		out = openapi3.NewDateTimeSchema()
	case *schema.LiteralType:
		out = literalSchema(u.Value)
	case *schema.SliceType:
		out = openapi3.NewArraySchema()
		out.Items = TypeSchema(u.Elem()).NewRef()
	case *schema.ObjectType:
		out = ObjectSchema(u.Fields)
	default:
		// Any and custom types carry no structural constraint.
		out = &openapi3.Schema{Description: u.Name()}
	}

	if d, ok := t.(*schema.DefaultType); ok {
		out.Default = jsonValue(d.Value)
	}
	return out
}

func applyStringRule(s *openapi3.Schema, r schema.Rule) {
	switch r.Kind {
	case schema.RuleMinLen:
		s.WithMinLength(int64(r.Limit))
	case schema.RuleMaxLen:
		s.WithMaxLength(int64(r.Limit))
	case schema.RuleLen:
		s.WithMinLength(int64(r.Limit)).WithMaxLength(int64(r.Limit))
	case schema.RuleEmail:
		s.WithFormat("email")
	case schema.RuleURL:
		s.WithFormat("uri")
	case schema.RuleUUID:
		s.WithFormat("uuid")
	case schema.RuleOneOf:
		values := make([]any, len(r.Values))
		for i, v := range r.Values {
			values[i] = v
		}
		s.WithEnum(values...)
	}
}

func applyNumberRule(s *openapi3.Schema, r schema.Rule) {
	switch r.Kind {
	case schema.RuleMin:
		s.WithMin(r.Limit)
	case schema.RuleMax:
		s.WithMax(r.Limit)
	}
}

// jsonValue widens integers to the float64 a decoded JSON document holds.
func jsonValue(v any) any {
	switch n := v.(type) {
	case int:
		return float64(n)
	case int64:
		return float64(n)
	}
	return v
}

func literalSchema(v any) *openapi3.Schema {
	var s *openapi3.Schema
	switch v.(type) {
	case bool:
		s = openapi3.NewBoolSchema()
	case string:
		s = openapi3.NewStringSchema()
	case int, int64, float64:
		s = openapi3.NewFloat64Schema()
	default:
		return &openapi3.Schema{}
	}
	return s.WithEnum(jsonValue(v))
}
