package config

import "time"

// Version identifies the revision of the constants below. Bump it whenever a
// bound, enumeration or message changes so web and mobile clients can detect
// drift against the service they talk to.
const Version = "1.0.0"

// App metadata.
const (
	AppName        = "Tabitha Most Wanted"
	AppDescription = "Cross-platform wishlist app for kids"
	AppVersion     = "1.0.0"
)

// Age bounds for registered users (inclusive).
const (
	AgeMin = 6
	AgeMax = 16
)

// ParentEmailAgeThreshold is the age below which a parent email is mandatory.
const ParentEmailAgeThreshold = 13

// Product age range bounds.
const (
	ProductAgeRangeMin = 0
	ProductAgeRangeMax = 18
)

// Rating bounds.
const (
	RatingMin = 0
	RatingMax = 5
)

// Wishlist item priority bounds and default.
const (
	PriorityMin     = 1
	PriorityMax     = 10
	PriorityDefault = 5
)

// Password policy.
const PasswordMinLength = 8

// NameMinLength is the minimum trimmed length of a display name at registration.
const NameMinLength = 2

// CurrencyCodeLength is the length of an ISO 4217 currency code.
const CurrencyCodeLength = 3

// Retailer names.
const (
	RetailerAmazon  = "amazon"
	RetailerWalmart = "walmart"
)

// Wishlist types.
const (
	WishlistBirthday  = "birthday"
	WishlistChristmas = "christmas"
	WishlistHoliday   = "holiday"
	WishlistGeneral   = "general"
)

// Genders.
const (
	GenderMale   = "male"
	GenderFemale = "female"
	GenderOther  = "other"
)

// Share methods.
const (
	ShareEmail = "email"
	ShareSMS   = "sms"
)

// Currencies.
const (
	CurrencyUSD = "USD"
	CurrencyEUR = "EUR"
	CurrencyGBP = "GBP"
)

// Pagination defaults.
const (
	DefaultPage  = 1
	DefaultLimit = 20
	MaxLimit     = 100
)

// Validation messages shown next to form fields.
const (
	MsgRequiredField = "This field is required"
	MsgInvalidEmail  = "Please enter a valid email address"
	MsgInvalidAge    = "Age must be between 6 and 16"
	MsgInvalidPrice  = "Price must be a positive number"
	MsgInvalidURL    = "Please enter a valid URL"
	MsgInvalidID     = "Invalid ID format"
	MsgAgeTooLow     = "Age must be at least 6"
	MsgAgeTooHigh    = "Age must be at most 16"
)

// API error codes.
const (
	ErrCodeUnauthorized = "UNAUTHORIZED"
	ErrCodeForbidden    = "FORBIDDEN"
	ErrCodeNotFound     = "NOT_FOUND"
	ErrCodeValidation   = "VALIDATION_ERROR"
	ErrCodeInternal     = "INTERNAL_ERROR"
	ErrCodeRateLimited  = "RATE_LIMITED"
)

// API client settings.
const (
	APIBaseURL       = "http://localhost:3000/api"
	APITimeout       = 10 * time.Second
	APIRetryAttempts = 3
	APIRetryDelay    = time.Second
)

// ProductCategories returns the browsable product categories.
func ProductCategories() []string {
	return []string{
		"toys",
		"games",
		"electronics",
		"books",
		"clothing",
		"sports",
		"arts-crafts",
		"educational",
		"outdoor",
		"music",
	}
}

// WishlistTypes returns the allowed wishlist types.
func WishlistTypes() []string {
	return []string{WishlistBirthday, WishlistChristmas, WishlistHoliday, WishlistGeneral}
}

// Retailers returns the supported retailers.
func Retailers() []string {
	return []string{RetailerAmazon, RetailerWalmart}
}

// Genders returns the allowed gender values.
func Genders() []string {
	return []string{GenderMale, GenderFemale, GenderOther}
}

// ShareMethods returns the channels a wishlist can be shared through.
func ShareMethods() []string {
	return []string{ShareEmail, ShareSMS}
}

// Currencies returns the supported currency codes.
func Currencies() []string {
	return []string{CurrencyUSD, CurrencyEUR, CurrencyGBP}
}

// ExternalAPI describes a retailer site. Only referenced, never called.
type ExternalAPI struct {
	BaseURL     string `yaml:"base_url" json:"baseUrl"`
	SearchPath  string `yaml:"search_path" json:"searchPath"`
	ProductPath string `yaml:"product_path" json:"productPath"`
}

// ExternalAPIs returns the retailer endpoints keyed by retailer name.
func ExternalAPIs() map[string]ExternalAPI {
	return map[string]ExternalAPI{
		RetailerAmazon: {
			BaseURL:     "https://www.amazon.com",
			SearchPath:  "/s",
			ProductPath: "/dp",
		},
		RetailerWalmart: {
			BaseURL:     "https://www.walmart.com",
			SearchPath:  "/search",
			ProductPath: "/ip",
		},
	}
}

// RateLimit is a request budget.
type RateLimit struct {
	RequestsPerMinute int `yaml:"requests_per_minute" json:"requestsPerMinute"`
	RequestsPerHour   int `yaml:"requests_per_hour" json:"requestsPerHour"`
}

// ScrapingRateLimit is the budget for retailer scraping.
func ScrapingRateLimit() RateLimit {
	return RateLimit{RequestsPerMinute: 30, RequestsPerHour: 1000}
}

// APIRateLimit is the budget for the public API.
func APIRateLimit() RateLimit {
	return RateLimit{RequestsPerMinute: 100, RequestsPerHour: 5000}
}
