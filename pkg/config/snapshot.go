package config

// Range is an inclusive numeric interval.
type Range struct {
	Min int `yaml:"min" json:"min"`
	Max int `yaml:"max" json:"max"`
}

// Snapshot is a serializable view of the constants, used by tooling that
// needs to publish them (e.g. the CLI config command).
type Snapshot struct {
	Version           string                 `yaml:"version" json:"version"`
	App               string                 `yaml:"app" json:"app"`
	Ages              Range                  `yaml:"ages" json:"ages"`
	ParentEmailBelow  int                    `yaml:"parent_email_below" json:"parentEmailBelow"`
	ProductAgeRange   Range                  `yaml:"product_age_range" json:"productAgeRange"`
	Rating            Range                  `yaml:"rating" json:"rating"`
	Priority          Range                  `yaml:"priority" json:"priority"`
	PriorityDefault   int                    `yaml:"priority_default" json:"priorityDefault"`
	PasswordMinLength int                    `yaml:"password_min_length" json:"passwordMinLength"`
	Categories        []string               `yaml:"categories" json:"categories"`
	WishlistTypes     []string               `yaml:"wishlist_types" json:"wishlistTypes"`
	Retailers         []string               `yaml:"retailers" json:"retailers"`
	Currencies        []string               `yaml:"currencies" json:"currencies"`
	Pagination        Pagination             `yaml:"pagination" json:"pagination"`
	ExternalAPIs      map[string]ExternalAPI `yaml:"external_apis" json:"externalApis"`
	RateLimits        map[string]RateLimit   `yaml:"rate_limits" json:"rateLimits"`
}

// Pagination holds the paging defaults.
type Pagination struct {
	DefaultPage  int `yaml:"default_page" json:"defaultPage"`
	DefaultLimit int `yaml:"default_limit" json:"defaultLimit"`
	MaxLimit     int `yaml:"max_limit" json:"maxLimit"`
}

// Current returns a snapshot of the compiled-in constants.
func Current() Snapshot {
	return Snapshot{
		Version:           Version,
		App:               AppName,
		Ages:              Range{Min: AgeMin, Max: AgeMax},
		ParentEmailBelow:  ParentEmailAgeThreshold,
		ProductAgeRange:   Range{Min: ProductAgeRangeMin, Max: ProductAgeRangeMax},
		Rating:            Range{Min: RatingMin, Max: RatingMax},
		Priority:          Range{Min: PriorityMin, Max: PriorityMax},
		PriorityDefault:   PriorityDefault,
		PasswordMinLength: PasswordMinLength,
		Categories:        ProductCategories(),
		WishlistTypes:     WishlistTypes(),
		Retailers:         Retailers(),
		Currencies:        Currencies(),
		Pagination: Pagination{
			DefaultPage:  DefaultPage,
			DefaultLimit: DefaultLimit,
			MaxLimit:     MaxLimit,
		},
		ExternalAPIs: ExternalAPIs(),
		RateLimits: map[string]RateLimit{
			"scraping": ScrapingRateLimit(),
			"api":      APIRateLimit(),
		},
	}
}
