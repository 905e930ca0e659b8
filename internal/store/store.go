// Package store holds the client-side catalog state: the loaded product
// list with its server total, and the category list. Every action marks
// its slice as loading, calls the API, and records the result or error.
package store

import (
	"sync"

	"go-warehouse/internal/client"
	"go-warehouse/internal/model"

	"github.com/google/uuid"
)

// Fallback error texts, used when the server sent no message.
const (
	MsgLoadProducts   = "Failed to load products"
	MsgLoadProduct    = "Failed to load product"
	MsgCreateProduct  = "Failed to create product"
	MsgUpdateProduct  = "Failed to update product"
	MsgDeleteProduct  = "Failed to delete product"
	MsgLoadCategories = "Failed to load categories"
	MsgCreateCategory = "Failed to create category"
	MsgUpdateCategory = "Failed to update category"
	MsgDeleteCategory = "Failed to delete category"
)

// API is the subset of the REST client the store drives.
type API interface {
	ListProducts(offset, limit int) (*model.ProductPage, error)
	GetProduct(id string) (*model.Product, error)
	CreateProduct(payload client.ProductPayload) (*model.Product, error)
	UpdateProduct(id string, payload client.ProductPayload) (*model.Product, error)
	DeleteProduct(id string) error
	ListCategories() ([]model.Category, error)
	CreateCategory(name string) (*model.Category, error)
	UpdateCategory(id, name string) (*model.Category, error)
	DeleteCategory(id string) error
}

type ProductsState struct {
	Products []model.Product
	Total    int64
	// Current is the last product fetched on its own, outside the paged list.
	Current *model.Product
	Loading bool
	Error   string
}

type CategoriesState struct {
	Categories []model.Category
	Loading    bool
	Error      string
}

type Store struct {
	api API

	mu         sync.RWMutex
	products   ProductsState
	categories CategoriesState
}

// New returns an empty store backed by api.
func New(api API) *Store {
	return &Store{api: api}
}

// Products returns a copy of the products slice of state.
func (s *Store) Products() ProductsState {
	s.mu.RLock()
	defer s.mu.RUnlock()

	state := s.products
	state.Products = append([]model.Product(nil), s.products.Products...)
	if s.products.Current != nil {
		current := *s.products.Current
		state.Current = &current
	}
	return state
}

// Categories returns a copy of the categories slice of state.
func (s *Store) Categories() CategoriesState {
	s.mu.RLock()
	defer s.mu.RUnlock()

	state := s.categories
	state.Categories = append([]model.Category(nil), s.categories.Categories...)
	return state
}

// FindProduct looks id up among the loaded products, then the current one.
func (s *Store) FindProduct(id string) (model.Product, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, p := range s.products.Products {
		if p.ID.String() == id {
			return p, true
		}
	}
	if c := s.products.Current; c != nil && c.ID.String() == id {
		return *c, true
	}
	return model.Product{}, false
}

// FetchProducts loads one page. Offset zero replaces the list, any other
// offset appends to it.
func (s *Store) FetchProducts(offset, limit int) error {
	s.startProducts()
	page, err := s.api.ListProducts(offset, limit)

	s.mu.Lock()
	defer s.mu.Unlock()
	if err != nil {
		s.failProducts(err, MsgLoadProducts)
		return err
	}
	if offset == 0 {
		s.products.Products = append([]model.Product(nil), page.Products...)
	} else {
		s.products.Products = append(s.products.Products, page.Products...)
	}
	s.products.Total = page.Total
	s.products.Loading = false
	return nil
}

// FetchProduct loads a single product into Current.
func (s *Store) FetchProduct(id string) error {
	s.startProducts()
	product, err := s.api.GetProduct(id)

	s.mu.Lock()
	defer s.mu.Unlock()
	if err != nil {
		s.failProducts(err, MsgLoadProduct)
		return err
	}
	s.products.Current = product
	s.products.Loading = false
	return nil
}

func (s *Store) CreateProduct(payload client.ProductPayload) (*model.Product, error) {
	s.startProducts()
	product, err := s.api.CreateProduct(payload)

	s.mu.Lock()
	defer s.mu.Unlock()
	if err != nil {
		s.failProducts(err, MsgCreateProduct)
		return nil, err
	}
	s.products.Products = append(s.products.Products, *product)
	s.products.Total++
	s.products.Loading = false
	return product, nil
}

func (s *Store) UpdateProduct(id string, payload client.ProductPayload) (*model.Product, error) {
	s.startProducts()
	product, err := s.api.UpdateProduct(id, payload)

	s.mu.Lock()
	defer s.mu.Unlock()
	if err != nil {
		s.failProducts(err, MsgUpdateProduct)
		return nil, err
	}
	for i := range s.products.Products {
		if s.products.Products[i].ID == product.ID {
			s.products.Products[i] = *product
		}
	}
	if c := s.products.Current; c != nil && c.ID == product.ID {
		s.products.Current = product
	}
	s.products.Loading = false
	return product, nil
}

func (s *Store) DeleteProduct(id string) error {
	s.startProducts()
	err := s.api.DeleteProduct(id)

	s.mu.Lock()
	defer s.mu.Unlock()
	if err != nil {
		s.failProducts(err, MsgDeleteProduct)
		return err
	}
	kept := s.products.Products[:0]
	for _, p := range s.products.Products {
		if p.ID.String() != id {
			kept = append(kept, p)
		}
	}
	if len(kept) < len(s.products.Products) && s.products.Total > 0 {
		s.products.Total--
	}
	s.products.Products = kept
	if c := s.products.Current; c != nil && c.ID.String() == id {
		s.products.Current = nil
	}
	s.products.Loading = false
	return nil
}

func (s *Store) FetchCategories() error {
	s.startCategories()
	categories, err := s.api.ListCategories()

	s.mu.Lock()
	defer s.mu.Unlock()
	if err != nil {
		s.failCategories(err, MsgLoadCategories)
		return err
	}
	s.categories.Categories = append([]model.Category(nil), categories...)
	s.categories.Loading = false
	return nil
}

func (s *Store) CreateCategory(name string) (*model.Category, error) {
	s.startCategories()
	category, err := s.api.CreateCategory(name)

	s.mu.Lock()
	defer s.mu.Unlock()
	if err != nil {
		s.failCategories(err, MsgCreateCategory)
		return nil, err
	}
	s.categories.Categories = append(s.categories.Categories, *category)
	s.categories.Loading = false
	return category, nil
}

func (s *Store) UpdateCategory(id, name string) (*model.Category, error) {
	s.startCategories()
	category, err := s.api.UpdateCategory(id, name)

	s.mu.Lock()
	defer s.mu.Unlock()
	if err != nil {
		s.failCategories(err, MsgUpdateCategory)
		return nil, err
	}
	for i := range s.categories.Categories {
		if s.categories.Categories[i].ID == category.ID {
			s.categories.Categories[i] = *category
		}
	}
	s.categories.Loading = false
	return category, nil
}

// DeleteCategory removes the category and uncategorizes the loaded
// products that referenced it, as the server does.
func (s *Store) DeleteCategory(id string) error {
	s.startCategories()
	err := s.api.DeleteCategory(id)

	s.mu.Lock()
	defer s.mu.Unlock()
	if err != nil {
		s.failCategories(err, MsgDeleteCategory)
		return err
	}
	kept := s.categories.Categories[:0]
	for _, c := range s.categories.Categories {
		if c.ID.String() != id {
			kept = append(kept, c)
		}
	}
	s.categories.Categories = kept
	s.categories.Loading = false

	if categoryID, err := uuid.Parse(id); err == nil {
		for i := range s.products.Products {
			if s.products.Products[i].InCategory(categoryID) {
				s.products.Products[i].CategoryID = nil
			}
		}
		if c := s.products.Current; c != nil && c.InCategory(categoryID) {
			detached := *c
			detached.CategoryID = nil
			s.products.Current = &detached
		}
	}
	return nil
}

func (s *Store) startProducts() {
	s.mu.Lock()
	s.products.Loading = true
	s.products.Error = ""
	s.mu.Unlock()
}

func (s *Store) startCategories() {
	s.mu.Lock()
	s.categories.Loading = true
	s.categories.Error = ""
	s.mu.Unlock()
}

// failProducts and failCategories expect s.mu to be held.
func (s *Store) failProducts(err error, fallback string) {
	s.products.Loading = false
	s.products.Error = messageOf(err, fallback)
}

func (s *Store) failCategories(err error, fallback string) {
	s.categories.Loading = false
	s.categories.Error = messageOf(err, fallback)
}

func messageOf(err error, fallback string) string {
	if msg, ok := client.ServerMessage(err); ok {
		return msg
	}
	return fallback
}
