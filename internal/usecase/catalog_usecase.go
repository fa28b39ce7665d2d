package usecase

import (
	"context"
	"fmt"
	"strings"

	"career-guide/internal/domain/catalog"
	"career-guide/internal/repository"
	"career-guide/internal/search"

	"github.com/rs/zerolog"
)

type CatalogUsecase interface {
	Search(ctx context.Context, term string) ([]catalog.Entry, error)
	List(ctx context.Context, category string) ([]catalog.Entry, error)
	InvalidateCache(ctx context.Context) error
}

type Catalog struct {
	jobs  repository.JobCatalogRepository
	cache SearchCache
	log   zerolog.Logger
}

func NewCatalogUsecase(jobs repository.JobCatalogRepository, cache SearchCache, log zerolog.Logger) *Catalog {
	return &Catalog{jobs: jobs, cache: cache, log: log}
}

// Search filters the stored catalog. A blank term is a valid query with no results.
func (u *Catalog) Search(ctx context.Context, term string) ([]catalog.Entry, error) {
	if search.NormalizeTerm(term) == "" {
		return []catalog.Entry{}, nil
	}

	key := CatalogSearchCacheKey(term)
	if cached, ok := u.cached(ctx, key); ok {
		return cached, nil
	}

	all, err := u.jobs.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}
	out := search.Search(term, all)
	u.store(ctx, key, out)
	return out, nil
}

// List returns the catalog in fixture order, optionally narrowed to one category.
func (u *Catalog) List(ctx context.Context, category string) ([]catalog.Entry, error) {
	var (
		c   catalog.Category
		err error
	)
	if strings.TrimSpace(category) != "" {
		c, err = catalog.ParseCategory(category)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidInput, err)
		}
	}

	key := CatalogListCacheKey(string(c))
	if cached, ok := u.cached(ctx, key); ok {
		return cached, nil
	}

	var out []catalog.Entry
	if c == "" {
		out, err = u.jobs.List(ctx)
	} else {
		out, err = u.jobs.ListByCategory(ctx, c)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}
	u.store(ctx, key, out)
	return out, nil
}

func (u *Catalog) InvalidateCache(ctx context.Context) error {
	if u.cache == nil {
		return nil
	}
	n, err := u.cache.DeleteByPattern(ctx, CatalogCachePattern)
	if err != nil {
		return err
	}
	u.log.Debug().Int("keys", n).Msg("catalog cache invalidated")
	return nil
}

func (u *Catalog) cached(ctx context.Context, key string) ([]catalog.Entry, bool) {
	if u.cache == nil {
		return nil, false
	}
	var out []catalog.Entry
	hit, err := u.cache.GetJSON(ctx, key, &out)
	if err != nil {
		u.log.Warn().Err(err).Str("key", key).Msg("catalog cache read failed")
		return nil, false
	}
	if !hit {
		u.log.Debug().Str("key", key).Msg("catalog cache miss")
		return nil, false
	}
	u.log.Debug().Str("key", key).Msg("catalog cache hit")
	if out == nil {
		out = []catalog.Entry{}
	}
	return out, true
}

func (u *Catalog) store(ctx context.Context, key string, v []catalog.Entry) {
	if u.cache == nil {
		return
	}
	if err := u.cache.SetJSON(ctx, key, v, 0); err != nil {
		u.log.Warn().Err(err).Str("key", key).Msg("catalog cache write failed")
	}
}
