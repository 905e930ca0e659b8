package service

import (
	"errors"
	"fmt"
	"testing"

	"go-warehouse/internal/model"
	"go-warehouse/internal/repository"
	"go-warehouse/pkg/validator"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateProduct(t *testing.T) {
	store := repository.NewMemoryStore()
	toys := &model.Category{Name: "Toys"}
	require.NoError(t, store.Categories().Create(toys))

	testCases := []struct {
		name          string
		input         func() ProductInput
		expectedErr   error
		expectInvalid []string
		check         func(t *testing.T, p *model.Product)
	}{
		{
			name:  "Success with category",
			input: func() ProductInput { return validInput(strPtr(toys.ID.String())) },
			check: func(t *testing.T, p *model.Product) {
				assert.True(t, p.InCategory(toys.ID))
				assert.Equal(t, 5, p.Quantity)
				assert.True(t, p.Price.Equal(decimal.NewFromInt(299)))
			},
		},
		{
			name:  "Omitted category defaults to null",
			input: func() ProductInput { return validInput(nil) },
			check: func(t *testing.T, p *model.Product) {
				assert.Nil(t, p.CategoryID)
			},
		},
		{
			name:  "Empty category defaults to null",
			input: func() ProductInput { return validInput(strPtr("")) },
			check: func(t *testing.T, p *model.Product) {
				assert.Nil(t, p.CategoryID)
			},
		},
		{
			name:        "Unknown category",
			input:       func() ProductInput { return validInput(strPtr(uuid.NewString())) },
			expectedErr: ErrUnknownCategory,
		},
		{
			name:        "Malformed category id",
			input:       func() ProductInput { return validInput(strPtr("64123456abc123def4567890")) },
			expectedErr: ErrUnknownCategory,
		},
		{
			name: "Zero quantity and price",
			input: func() ProductInput {
				in := validInput(nil)
				in.Quantity = 0
				in.Price = decimal.Zero
				return in
			},
			expectInvalid: []string{"quantity must be greater than 0", "price must be greater than 0"},
		},
		{
			name: "Missing unit",
			input: func() ProductInput {
				in := validInput(nil)
				in.Unit = ""
				return in
			},
			expectInvalid: []string{"unit is required"},
		},
		{
			name: "Price below a cent",
			input: func() ProductInput {
				in := validInput(nil)
				in.Price = decimal.RequireFromString("0.001")
				return in
			},
			expectInvalid: []string{"price must have at most 2 decimal places"},
		},
		{
			name: "Price and quantity beyond their columns",
			input: func() ProductInput {
				in := validInput(nil)
				in.Quantity = model.MaxQuantity + 1
				in.Price = decimal.NewFromInt(100000000000)
				return in
			},
			expectInvalid: []string{"quantity must be at most 2147483647", "price must be at most 9999999999.99"},
		},
		{
			name: "Largest storable values",
			input: func() ProductInput {
				in := validInput(nil)
				in.Quantity = model.MaxQuantity
				in.Price = model.MaxPrice
				return in
			},
			check: func(t *testing.T, p *model.Product) {
				assert.Equal(t, model.MaxQuantity, p.Quantity)
				assert.True(t, p.Price.Equal(model.MaxPrice))
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			svc := NewProductService(store)
			before, _ := store.Products().Count()

			product, err := svc.CreateProduct(tc.input())

			after, _ := store.Products().Count()
			switch {
			case tc.expectedErr != nil:
				assert.ErrorIs(t, err, tc.expectedErr)
				assert.Equal(t, before, after, "failed create must not persist")
			case tc.expectInvalid != nil:
				var verr *validator.ValidationError
				require.ErrorAs(t, err, &verr)
				assert.Equal(t, tc.expectInvalid, verr.Messages)
				assert.Equal(t, before, after, "failed create must not persist")
			default:
				require.NoError(t, err)
				assert.NotEqual(t, uuid.Nil, product.ID)
				assert.Equal(t, before+1, after)
				tc.check(t, product)
			}
		})
	}
}

func TestGetProductsPaging(t *testing.T) {
	store := repository.NewMemoryStore()
	svc := NewProductService(store)
	for i := 0; i < 12; i++ {
		in := validInput(nil)
		in.Name = fmt.Sprintf("Product %02d", i)
		_, err := svc.CreateProduct(in)
		require.NoError(t, err)
	}

	first, err := svc.GetProducts(0, 6)
	require.NoError(t, err)
	second, err := svc.GetProducts(6, 6)
	require.NoError(t, err)

	assert.Len(t, first.Products, 6)
	assert.Len(t, second.Products, 6)
	assert.EqualValues(t, 12, first.Total)
	assert.EqualValues(t, 12, second.Total)

	seen := map[uuid.UUID]bool{}
	for _, p := range append(first.Products, second.Products...) {
		assert.False(t, seen[p.ID], "pages overlap on %s", p.ID)
		seen[p.ID] = true
	}
	assert.Len(t, seen, 12)
	assert.Equal(t, "Product 00", first.Products[0].Name)
	assert.Equal(t, "Product 06", second.Products[0].Name)
}

func TestGetProductsTotalTracksWrites(t *testing.T) {
	svc := NewProductService(repository.NewMemoryStore())
	created, err := svc.CreateProduct(validInput(nil))
	require.NoError(t, err)

	page, err := svc.GetProducts(0, 10)
	require.NoError(t, err)
	assert.EqualValues(t, 1, page.Total)

	require.NoError(t, svc.DeleteProduct(created.ID))

	page, err = svc.GetProducts(0, 10)
	require.NoError(t, err)
	assert.EqualValues(t, 0, page.Total)
	assert.NotNil(t, page.Products)
}

func TestGetProductsStorageError(t *testing.T) {
	boom := errors.New("storage offline")
	svc := NewProductService(&failingStore{Store: repository.NewMemoryStore(), err: boom})

	_, err := svc.GetProducts(0, 10)

	assert.ErrorIs(t, err, boom)
}

func TestUpdateProduct(t *testing.T) {
	store := repository.NewMemoryStore()
	toys := &model.Category{Name: "Toys"}
	require.NoError(t, store.Categories().Create(toys))
	svc := NewProductService(store)
	created, err := svc.CreateProduct(validInput(nil))
	require.NoError(t, err)

	in := validInput(strPtr(toys.ID.String()))
	in.Name = "Spinner XL"
	in.ImageURL = "https://example.com/spinner.jpg"
	updated, err := svc.UpdateProduct(created.ID, in)
	require.NoError(t, err)
	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, "Spinner XL", updated.Name)
	assert.True(t, updated.InCategory(toys.ID))

	got, err := svc.GetProductByID(created.ID)
	require.NoError(t, err)
	assert.Equal(t, "https://example.com/spinner.jpg", got.ImageURL)

	_, err = svc.UpdateProduct(created.ID, validInput(strPtr(uuid.NewString())))
	assert.ErrorIs(t, err, ErrUnknownCategory)
	got, err = svc.GetProductByID(created.ID)
	require.NoError(t, err)
	assert.True(t, got.InCategory(toys.ID), "rejected update must not persist")

	cleared, err := svc.UpdateProduct(created.ID, validInput(nil))
	require.NoError(t, err)
	assert.Nil(t, cleared.CategoryID)

	_, err = svc.UpdateProduct(uuid.New(), validInput(nil))
	assert.ErrorIs(t, err, ErrProductNotFound)
}

func TestDeleteProduct(t *testing.T) {
	svc := NewProductService(repository.NewMemoryStore())
	created, err := svc.CreateProduct(validInput(nil))
	require.NoError(t, err)

	require.NoError(t, svc.DeleteProduct(created.ID))

	_, err = svc.GetProductByID(created.ID)
	assert.ErrorIs(t, err, ErrProductNotFound)
	assert.ErrorIs(t, svc.DeleteProduct(created.ID), ErrProductNotFound)
}
