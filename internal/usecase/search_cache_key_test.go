package usecase

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCatalogSearchCacheKey_NormalizesTerm(t *testing.T) {
	a := CatalogSearchCacheKey("ITI")
	assert.Equal(t, a, CatalogSearchCacheKey("  iti "))
	assert.NotEqual(t, a, CatalogSearchCacheKey("diploma"))
	assert.True(t, strings.HasPrefix(a, "catalog:search:"))
	assert.Len(t, strings.TrimPrefix(a, "catalog:search:"), 64)
}

func TestCatalogListCacheKey(t *testing.T) {
	assert.Equal(t, "catalog:list:all", CatalogListCacheKey(" "))
	assert.Equal(t, "catalog:list:iti/diploma", CatalogListCacheKey("ITI/Diploma"))
	assert.True(t, strings.HasPrefix(CatalogListCacheKey(""), strings.TrimSuffix(CatalogCachePattern, "*")))
}
