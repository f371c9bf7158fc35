package favorites_test

import (
	"testing"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pasarumkm/umkm-market/internal/catalog"
	"github.com/pasarumkm/umkm-market/internal/favorites"
	"github.com/pasarumkm/umkm-market/internal/kvstore"
)

func randomProduct() catalog.Product {
	return catalog.Product{
		ID:        gofakeit.UUID(),
		Name:      gofakeit.ProductName(),
		Category:  catalog.CategoryKerajinan,
		Price:     int64(gofakeit.Number(1, 200)) * 1000,
		StoreID:   gofakeit.UUID(),
		StoreName: gofakeit.Company(),
	}
}

func TestAddIsIdempotent(t *testing.T) {
	ctx := t.Context()
	s, err := favorites.Open(ctx, kvstore.NewMemory(), gofakeit.UUID())
	require.NoError(t, err)

	p := randomProduct()
	require.NoError(t, s.Add(ctx, p))
	require.NoError(t, s.Add(ctx, p))

	assert.Len(t, s.Products(), 1)
	assert.True(t, s.Contains(p.ID))
}

func TestRemove(t *testing.T) {
	ctx := t.Context()
	s, err := favorites.Open(ctx, kvstore.NewMemory(), gofakeit.UUID())
	require.NoError(t, err)

	p := randomProduct()
	require.NoError(t, s.Add(ctx, p))
	require.NoError(t, s.Remove(ctx, p.ID))
	assert.False(t, s.Contains(p.ID))

	// absent id: no-op
	require.NoError(t, s.Remove(ctx, gofakeit.UUID()))
	assert.Empty(t, s.Products())
}

func TestInsertionOrderSurvivesReload(t *testing.T) {
	ctx := t.Context()
	kv := kvstore.NewMemory()
	owner := gofakeit.UUID()

	s, err := favorites.Open(ctx, kv, owner)
	require.NoError(t, err)

	want := []catalog.Product{randomProduct(), randomProduct(), randomProduct()}
	for _, p := range want {
		require.NoError(t, s.Add(ctx, p))
	}

	reloaded, err := favorites.Open(ctx, kv, owner)
	require.NoError(t, err)
	assert.Empty(t, cmp.Diff(want, reloaded.Products()))
}
