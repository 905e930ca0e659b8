package service

import (
	"errors"
	"fmt"
	"strings"

	"go-warehouse/internal/model"
	"go-warehouse/internal/repository"
	"go-warehouse/pkg/validator"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type ProductService interface {
	CreateProduct(input ProductInput) (*model.Product, error)
	GetProducts(offset, limit int) (*model.ProductPage, error)
	GetProductByID(id uuid.UUID) (*model.Product, error)
	UpdateProduct(id uuid.UUID, input ProductInput) (*model.Product, error)
	DeleteProduct(id uuid.UUID) error
}

// ProductInput carries the writable product fields. Category is the raw
// category id; nil or empty means uncategorized.
type ProductInput struct {
	Name        string
	Description string
	Category    *string
	Quantity    int
	Price       decimal.Decimal
	Unit        string
	ImageURL    string
}

type productService struct {
	store repository.Store
}

func NewProductService(store repository.Store) ProductService {
	return &productService{store: store}
}

// resolveCategory checks that the referenced category exists. An id that
// does not even parse cannot exist either.
func (s *productService) resolveCategory(raw *string) (*uuid.UUID, error) {
	if raw == nil || strings.TrimSpace(*raw) == "" {
		return nil, nil
	}

	id, err := uuid.Parse(strings.TrimSpace(*raw))
	if err != nil {
		return nil, ErrUnknownCategory
	}
	if _, err := s.store.Categories().FindByID(id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrUnknownCategory
		}
		return nil, err
	}
	return &id, nil
}

func (in ProductInput) apply(product *model.Product, categoryID *uuid.UUID) {
	product.Name = in.Name
	product.Description = in.Description
	product.CategoryID = categoryID
	product.Quantity = in.Quantity
	product.Price = in.Price
	product.Unit = in.Unit
	product.ImageURL = in.ImageURL
}

// validateProduct runs the struct rules plus the price scale check the
// tags cannot express.
func validateProduct(product *model.Product) error {
	var messages []string
	if verr := validator.FromResponses(validator.ValidateStruct(product)); verr != nil {
		messages = verr.Messages
	}
	if !product.PriceFitsScale() {
		messages = append(messages, fmt.Sprintf("price must have at most %d decimal places", model.PricePlaces))
	}
	if len(messages) > 0 {
		return validator.NewValidationError(messages...)
	}
	return nil
}

func (s *productService) CreateProduct(input ProductInput) (*model.Product, error) {
	product := &model.Product{}
	input.apply(product, nil)
	if err := validateProduct(product); err != nil {
		return nil, err
	}

	categoryID, err := s.resolveCategory(input.Category)
	if err != nil {
		return nil, err
	}
	product.CategoryID = categoryID

	if err := s.store.Products().Create(product); err != nil {
		return nil, err
	}
	return product, nil
}

// GetProducts counts on every call so the total reflects concurrent writes.
func (s *productService) GetProducts(offset, limit int) (*model.ProductPage, error) {
	products, err := s.store.Products().FindPage(offset, limit)
	if err != nil {
		return nil, err
	}
	total, err := s.store.Products().Count()
	if err != nil {
		return nil, err
	}
	if products == nil {
		products = []model.Product{}
	}
	return &model.ProductPage{Products: products, Total: total}, nil
}

func (s *productService) GetProductByID(id uuid.UUID) (*model.Product, error) {
	product, err := s.store.Products().FindByID(id)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrProductNotFound
	}
	return product, err
}

func (s *productService) UpdateProduct(id uuid.UUID, input ProductInput) (*model.Product, error) {
	candidate := &model.Product{}
	input.apply(candidate, nil)
	if err := validateProduct(candidate); err != nil {
		return nil, err
	}

	categoryID, err := s.resolveCategory(input.Category)
	if err != nil {
		return nil, err
	}

	product, err := s.GetProductByID(id)
	if err != nil {
		return nil, err
	}

	input.apply(product, categoryID)
	if err := s.store.Products().Update(product); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, err
	}
	return product, nil
}

func (s *productService) DeleteProduct(id uuid.UUID) error {
	err := s.store.Products().Delete(id)
	if errors.Is(err, repository.ErrNotFound) {
		return ErrProductNotFound
	}
	return err
}
