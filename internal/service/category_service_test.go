package service

import (
	"errors"
	"testing"

	"go-warehouse/internal/model"
	"go-warehouse/internal/repository"
	"go-warehouse/pkg/validator"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func validInput(category *string) ProductInput {
	return ProductInput{
		Name:        "Spinner",
		Description: "d",
		Category:    category,
		Quantity:    5,
		Price:       decimal.NewFromInt(299),
		Unit:        "pcs",
	}
}

func TestCreateCategory(t *testing.T) {
	testCases := []struct {
		name      string
		input     string
		expectErr bool
	}{
		{name: "Success", input: "Toys"},
		{name: "Empty name", input: "", expectErr: true},
		{name: "Blank name", input: "   ", expectErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			store := repository.NewMemoryStore()
			svc := NewCategoryService(store)

			category, err := svc.CreateCategory(tc.input)

			if tc.expectErr {
				var verr *validator.ValidationError
				require.ErrorAs(t, err, &verr)
				assert.Equal(t, []string{"Category name is required"}, verr.Messages)
				total, _ := store.Categories().Count()
				assert.Zero(t, total)
				return
			}
			require.NoError(t, err)
			assert.NotEqual(t, uuid.Nil, category.ID)
			assert.Equal(t, tc.input, category.Name)
		})
	}
}

func TestGetAllCategoriesEmpty(t *testing.T) {
	svc := NewCategoryService(repository.NewMemoryStore())

	categories, err := svc.GetAllCategories()

	require.NoError(t, err)
	assert.NotNil(t, categories)
	assert.Empty(t, categories)
}

func TestGetCategoryByID(t *testing.T) {
	svc := NewCategoryService(repository.NewMemoryStore())
	created, err := svc.CreateCategory("Toys")
	require.NoError(t, err)

	got, err := svc.GetCategoryByID(created.ID)
	require.NoError(t, err)
	again, err := svc.GetCategoryByID(created.ID)
	require.NoError(t, err)
	assert.Equal(t, got, again)

	_, err = svc.GetCategoryByID(uuid.New())
	assert.ErrorIs(t, err, ErrCategoryNotFound)
}

func TestUpdateCategory(t *testing.T) {
	svc := NewCategoryService(repository.NewMemoryStore())
	created, err := svc.CreateCategory("Toys")
	require.NoError(t, err)

	updated, err := svc.UpdateCategory(created.ID, "Board games")
	require.NoError(t, err)
	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, "Board games", updated.Name)

	_, err = svc.UpdateCategory(created.ID, "")
	var verr *validator.ValidationError
	assert.ErrorAs(t, err, &verr)

	_, err = svc.UpdateCategory(uuid.New(), "Ghost")
	assert.ErrorIs(t, err, ErrCategoryNotFound)
}

func TestDeleteCategoryDetachesProducts(t *testing.T) {
	store := repository.NewMemoryStore()
	categories := NewCategoryService(store)
	products := NewProductService(store)

	toys, err := categories.CreateCategory("Toys")
	require.NoError(t, err)
	games, err := categories.CreateCategory("Board games")
	require.NoError(t, err)

	spinner, err := products.CreateProduct(validInput(strPtr(toys.ID.String())))
	require.NoError(t, err)
	cube, err := products.CreateProduct(validInput(strPtr(toys.ID.String())))
	require.NoError(t, err)
	bunker, err := products.CreateProduct(validInput(strPtr(games.ID.String())))
	require.NoError(t, err)
	loose, err := products.CreateProduct(validInput(nil))
	require.NoError(t, err)

	require.NoError(t, categories.DeleteCategory(toys.ID))

	_, err = categories.GetCategoryByID(toys.ID)
	assert.ErrorIs(t, err, ErrCategoryNotFound)

	page, err := products.GetProducts(0, 100)
	require.NoError(t, err)
	for _, p := range page.Products {
		assert.False(t, p.InCategory(toys.ID), "product %s still references deleted category", p.ID)
	}

	for _, id := range []uuid.UUID{spinner.ID, cube.ID, loose.ID} {
		p, err := products.GetProductByID(id)
		require.NoError(t, err)
		assert.Nil(t, p.CategoryID)
	}
	p, err := products.GetProductByID(bunker.ID)
	require.NoError(t, err)
	assert.True(t, p.InCategory(games.ID))
}

func TestDeleteCategoryNotFound(t *testing.T) {
	svc := NewCategoryService(repository.NewMemoryStore())

	err := svc.DeleteCategory(uuid.New())

	assert.ErrorIs(t, err, ErrCategoryNotFound)
}

// failingStore wraps a memory store and fails product detachment.
type failingStore struct {
	repository.Store
	err error
}

func (s *failingStore) Products() repository.ProductRepository {
	return &failingProducts{ProductRepository: s.Store.Products(), err: s.err}
}

func (s *failingStore) Transaction(fn func(tx repository.Store) error) error {
	return s.Store.Transaction(func(repository.Store) error { return fn(s) })
}

type failingProducts struct {
	repository.ProductRepository
	err error
}

func (p *failingProducts) DetachCategory(uuid.UUID) (int64, error) { return 0, p.err }
func (p *failingProducts) Count() (int64, error)                    { return 0, p.err }

func TestDeleteCategoryKeepsCategoryWhenDetachFails(t *testing.T) {
	inner := repository.NewMemoryStore()
	cat := &model.Category{Name: "Toys"}
	require.NoError(t, inner.Categories().Create(cat))

	boom := errors.New("storage offline")
	svc := NewCategoryService(&failingStore{Store: inner, err: boom})

	err := svc.DeleteCategory(cat.ID)

	assert.ErrorIs(t, err, boom)
	_, err = inner.Categories().FindByID(cat.ID)
	assert.NoError(t, err, "category must survive a failed cascade")
}
