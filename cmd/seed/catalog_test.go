package main

import (
	"testing"

	"go-warehouse/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeedCatalog(t *testing.T) {
	store := repository.NewMemoryStore()

	seeded, err := seedCatalog(store)
	require.NoError(t, err)
	assert.True(t, seeded)

	categories, err := store.Categories().FindAll()
	require.NoError(t, err)
	assert.Len(t, categories, len(sampleCategories))

	page, err := store.Products().FindPage(0, 100)
	require.NoError(t, err)
	require.Len(t, page, len(sampleProducts))

	byName := map[string]string{}
	for _, c := range categories {
		byName[c.ID.String()] = c.Name
	}
	for i, p := range page {
		require.NotNil(t, p.CategoryID)
		assert.Equal(t, sampleProducts[i].category, byName[p.CategoryID.String()])
		assert.True(t, p.Quantity > 0)
		assert.True(t, p.Price.IsPositive())
	}
}

func TestSeedCatalogSkipsExistingData(t *testing.T) {
	store := repository.NewMemoryStore()
	_, err := seedCatalog(store)
	require.NoError(t, err)

	seeded, err := seedCatalog(store)
	require.NoError(t, err)
	assert.False(t, seeded)

	total, err := store.Products().Count()
	require.NoError(t, err)
	assert.EqualValues(t, len(sampleProducts), total)
}
