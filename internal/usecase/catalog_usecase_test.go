package usecase

import (
	"context"
	"testing"

	"career-guide/internal/domain/catalog"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalog_BlankSearchSkipsRepository(t *testing.T) {
	jobs := &memCatalog{entries: catalog.Fixture()}
	uc := NewCatalogUsecase(jobs, newMemCache(), zerolog.Nop())

	got, err := uc.Search(context.Background(), "   ")
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
	assert.Zero(t, jobs.lists)
}

func TestCatalog_SearchIsCachedByNormalizedTerm(t *testing.T) {
	jobs := &memCatalog{entries: catalog.Fixture()}
	cache := newMemCache()
	uc := NewCatalogUsecase(jobs, cache, zerolog.Nop())
	ctx := context.Background()

	first, err := uc.Search(ctx, "ITI")
	require.NoError(t, err)
	assert.Len(t, first, 12)
	assert.Equal(t, 1, jobs.lists)

	second, err := uc.Search(ctx, "  iti ")
	require.NoError(t, err)
	assert.Equal(t, first, second)
	assert.Equal(t, 1, jobs.lists)

	none, err := uc.Search(ctx, "astronaut")
	require.NoError(t, err)
	assert.Empty(t, none)
	again, err := uc.Search(ctx, "astronaut")
	require.NoError(t, err)
	assert.NotNil(t, again)
	assert.Equal(t, 2, jobs.lists)
}

func TestCatalog_InvalidateCacheForcesReload(t *testing.T) {
	jobs := &memCatalog{entries: catalog.Fixture()}
	cache := newMemCache()
	uc := NewCatalogUsecase(jobs, cache, zerolog.Nop())
	ctx := context.Background()

	_, err := uc.List(ctx, "")
	require.NoError(t, err)
	cache.data["other:key"] = []byte("1")

	require.NoError(t, uc.InvalidateCache(ctx))
	assert.Len(t, cache.data, 1)

	_, err = uc.List(ctx, "")
	require.NoError(t, err)
	assert.Equal(t, 2, jobs.lists)
}

func TestCatalog_ListByCategory(t *testing.T) {
	uc := NewCatalogUsecase(&memCatalog{entries: catalog.Fixture()}, nil, zerolog.Nop())
	ctx := context.Background()

	all, err := uc.List(ctx, "")
	require.NoError(t, err)
	assert.Len(t, all, 60)

	grads, err := uc.List(ctx, "graduation")
	require.NoError(t, err)
	require.Len(t, grads, 10)
	for _, e := range grads {
		assert.Equal(t, catalog.CategoryGraduation, e.Category)
	}

	_, err = uc.List(ctx, "astronomy")
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestCatalog_RepositoryFailure(t *testing.T) {
	uc := NewCatalogUsecase(&memCatalog{err: errBoom}, nil, zerolog.Nop())
	_, err := uc.Search(context.Background(), "driver")
	assert.ErrorIs(t, err, ErrInternal)
}
