package service

import (
	"errors"
	"log"
	"strings"

	"go-warehouse/internal/model"
	"go-warehouse/internal/repository"
	"go-warehouse/pkg/validator"

	"github.com/google/uuid"
)

type CategoryService interface {
	CreateCategory(name string) (*model.Category, error)
	GetAllCategories() ([]model.Category, error)
	GetCategoryByID(id uuid.UUID) (*model.Category, error)
	UpdateCategory(id uuid.UUID, name string) (*model.Category, error)
	DeleteCategory(id uuid.UUID) error
}

type categoryService struct {
	store repository.Store
}

func NewCategoryService(store repository.Store) CategoryService {
	return &categoryService{store: store}
}

func checkCategoryName(name string) error {
	if strings.TrimSpace(name) == "" {
		return validator.NewValidationError("Category name is required")
	}
	return nil
}

func (s *categoryService) CreateCategory(name string) (*model.Category, error) {
	if err := checkCategoryName(name); err != nil {
		return nil, err
	}

	category := &model.Category{Name: name}
	if err := s.store.Categories().Create(category); err != nil {
		return nil, err
	}
	return category, nil
}

func (s *categoryService) GetAllCategories() ([]model.Category, error) {
	categories, err := s.store.Categories().FindAll()
	if err != nil {
		return nil, err
	}
	if categories == nil {
		categories = []model.Category{}
	}
	return categories, nil
}

func (s *categoryService) GetCategoryByID(id uuid.UUID) (*model.Category, error) {
	category, err := s.store.Categories().FindByID(id)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrCategoryNotFound
	}
	return category, err
}

func (s *categoryService) UpdateCategory(id uuid.UUID, name string) (*model.Category, error) {
	if err := checkCategoryName(name); err != nil {
		return nil, err
	}

	category, err := s.GetCategoryByID(id)
	if err != nil {
		return nil, err
	}

	category.Name = name
	if err := s.store.Categories().Update(category); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrCategoryNotFound
		}
		return nil, err
	}
	return category, nil
}

// DeleteCategory detaches every product referencing the category, then
// removes the category, inside one transaction. Detaching first means a
// store without transactions can only leave an unused category behind,
// never a product pointing at a deleted one.
func (s *categoryService) DeleteCategory(id uuid.UUID) error {
	var detached int64
	err := s.store.Transaction(func(tx repository.Store) error {
		if _, err := tx.Categories().FindByID(id); err != nil {
			return err
		}

		n, err := tx.Products().DetachCategory(id)
		if err != nil {
			return err
		}
		detached = n

		return tx.Categories().Delete(id)
	})
	if errors.Is(err, repository.ErrNotFound) {
		return ErrCategoryNotFound
	}
	if err != nil {
		return err
	}

	log.Printf("Category %s deleted, %d product(s) detached", id, detached)
	return nil
}
