package view

import (
	"testing"

	"go-warehouse/internal/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type lookup map[string]model.Product

func (l lookup) FindProduct(id string) (model.Product, bool) {
	p, ok := l[id]
	return p, ok
}

func product(name string, quantity int, category *uuid.UUID) model.Product {
	p := model.Product{Name: name, Quantity: quantity, CategoryID: category}
	p.ID = uuid.New()
	return p
}

func TestFiltersApply(t *testing.T) {
	toys, tools := uuid.New(), uuid.New()
	products := []model.Product{
		product("Fidget Spinner", 0, &toys),
		product("Hammer", 4, &tools),
		product("spinning top", 3, &toys),
		product("Loose bolts", 10, nil),
	}

	testCases := []struct {
		name     string
		filters  Filters
		expected []string
	}{
		{"No criteria", Filters{}, []string{"Fidget Spinner", "Hammer", "spinning top", "Loose bolts"}},
		{"Name is case-insensitive", Filters{Name: "SPIN"}, []string{"Fidget Spinner", "spinning top"}},
		{"Name as pattern", Filters{Name: "^h.m"}, []string{"Hammer"}},
		{"Invalid pattern falls back to substring", Filters{Name: "bolts("}, []string{}},
		{"In stock only", Filters{InStock: true}, []string{"Hammer", "spinning top", "Loose bolts"}},
		{"Category", Filters{CategoryID: toys.String()}, []string{"Fidget Spinner", "spinning top"}},
		{"All combined", Filters{Name: "spin", InStock: true, CategoryID: toys.String()}, []string{"spinning top"}},
		{"Unknown category", Filters{CategoryID: uuid.NewString()}, []string{}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			names := []string{}
			for _, p := range tc.filters.Apply(products) {
				names = append(names, p.Name)
			}
			assert.Equal(t, tc.expected, names)
		})
	}
}

func TestFiltersSubstringFallback(t *testing.T) {
	products := []model.Product{product("Box (large)", 1, nil), product("Box", 1, nil)}

	got := Filters{Name: "(LARGE"}.Apply(products)

	require.Len(t, got, 1)
	assert.Equal(t, "Box (large)", got[0].Name)
}

func TestDetailViewCountsOncePerInstance(t *testing.T) {
	p := product("Hammer", 4, nil)
	id := p.ID.String()
	products := lookup{id: p}
	counter := NewViewCounter()

	assert.Equal(t, 0, counter.Count(id))

	first := OpenDetail(id, products, nil, counter)
	detail, ok := first.Render()
	require.True(t, ok)
	assert.Equal(t, 1, detail.Views)

	detail, ok = first.Render()
	require.True(t, ok)
	assert.Equal(t, 1, detail.Views)

	second := OpenDetail(id, products, nil, counter)
	detail, ok = second.Render()
	require.True(t, ok)
	assert.Equal(t, 2, detail.Views)
	assert.Equal(t, 2, counter.Count(id))
}

func TestDetailViewWaitsForProduct(t *testing.T) {
	p := product("Hammer", 4, nil)
	id := p.ID.String()
	products := lookup{}
	counter := NewViewCounter()

	view := OpenDetail(id, products, nil, counter)
	_, ok := view.Render()
	assert.False(t, ok)
	assert.Equal(t, 0, counter.Count(id))

	products[id] = p
	detail, ok := view.Render()
	require.True(t, ok)
	assert.Equal(t, 1, detail.Views)
	assert.Equal(t, Uncategorized, detail.CategoryName)
}

func TestCategoryName(t *testing.T) {
	toys := model.Category{Name: "Toys"}
	toys.ID = uuid.New()
	missing := uuid.New()
	categories := []model.Category{toys}

	assert.Equal(t, "Toys", CategoryName(categories, product("a", 1, &toys.ID)))
	assert.Equal(t, Uncategorized, CategoryName(categories, product("b", 1, &missing)))
	assert.Equal(t, Uncategorized, CategoryName(categories, product("c", 1, nil)))
}
