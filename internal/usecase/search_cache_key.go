package usecase

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"strings"

	"career-guide/internal/search"
)

const catalogCachePrefix = "catalog:"

// CatalogCachePattern matches every key written by the catalog usecase.
const CatalogCachePattern = catalogCachePrefix + "*"

type catalogSearchCacheKeyInput struct {
	Term string `json:"term"`
}

func CatalogSearchCacheKey(term string) string {
	in := catalogSearchCacheKeyInput{Term: search.NormalizeTerm(term)}
	b, _ := json.Marshal(in)
	sum := sha256.Sum256(b)
	return catalogCachePrefix + "search:" + hex.EncodeToString(sum[:])
}

func CatalogListCacheKey(category string) string {
	c := strings.ToLower(strings.TrimSpace(category))
	if c == "" {
		c = "all"
	}
	return catalogCachePrefix + "list:" + c
}
