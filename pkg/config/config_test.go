package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/aretw0/tabitha/pkg/config"
)

func TestEnumerationsReturnCopies(t *testing.T) {
	r := config.Retailers()
	r[0] = "ebay"
	assert.Equal(t, []string{"amazon", "walmart"}, config.Retailers())

	w := config.WishlistTypes()
	w[0] = "wedding"
	assert.Equal(t, "birthday", config.WishlistTypes()[0])
}

func TestCurrent(t *testing.T) {
	s := config.Current()
	assert.Equal(t, config.Version, s.Version)
	assert.Equal(t, config.Range{Min: 6, Max: 16}, s.Ages)
	assert.Equal(t, 13, s.ParentEmailBelow)
	assert.Len(t, s.Categories, 10)
	assert.Contains(t, s.ExternalAPIs, "amazon")
	assert.Equal(t, 30, s.RateLimits["scraping"].RequestsPerMinute)
	assert.Equal(t, 100, s.Pagination.MaxLimit)
}
