package repository

import (
	"errors"

	"gorm.io/gorm"
)

// ErrNotFound is returned when the requested record does not exist.
var ErrNotFound = errors.New("record not found")

// Store groups the repositories that share one unit of work.
type Store interface {
	Categories() CategoryRepository
	Products() ProductRepository
	// Transaction runs fn against a Store bound to a single transaction.
	// Returning an error from fn rolls the work back.
	Transaction(fn func(tx Store) error) error
}

type gormStore struct {
	db *gorm.DB
}

func NewGormStore(db *gorm.DB) Store {
	return &gormStore{db: db}
}

func (s *gormStore) Categories() CategoryRepository {
	return NewCategoryRepo(s.db)
}

func (s *gormStore) Products() ProductRepository {
	return NewProductRepo(s.db)
}

func (s *gormStore) Transaction(fn func(tx Store) error) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		return fn(&gormStore{db: tx})
	})
}

func translate(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}
