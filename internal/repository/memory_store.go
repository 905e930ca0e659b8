package repository

import (
	"sync"
	"time"

	"go-warehouse/internal/model"

	"github.com/google/uuid"
)

// memoryData keeps records in insertion order, which is the natural
// order for listings.
type memoryData struct {
	mu         sync.RWMutex
	categories []model.Category
	products   []model.Product
}

type memoryStore struct {
	data *memoryData
	txMu *sync.Mutex
	inTx bool
}

// NewMemoryStore returns a process-local Store. Transactions are
// serialized and restore the previous snapshot when fn fails. Writes made
// outside a transaction wait for the running one to finish, so a rollback
// never discards them.
func NewMemoryStore() Store {
	return &memoryStore{data: &memoryData{}, txMu: &sync.Mutex{}}
}

// writeLock is the mutex writes must hold, nil inside a transaction
// since the transaction already holds it.
func (s *memoryStore) writeLock() *sync.Mutex {
	if s.inTx {
		return nil
	}
	return s.txMu
}

func (s *memoryStore) Categories() CategoryRepository {
	return &memoryCategoryRepo{data: s.data, writes: s.writeLock()}
}

func (s *memoryStore) Products() ProductRepository {
	return &memoryProductRepo{data: s.data, writes: s.writeLock()}
}

func (s *memoryStore) Transaction(fn func(tx Store) error) error {
	// Nested transactions join the outer one.
	if s.inTx {
		return fn(s)
	}

	s.txMu.Lock()
	defer s.txMu.Unlock()

	s.data.mu.RLock()
	categories := append([]model.Category(nil), s.data.categories...)
	products := append([]model.Product(nil), s.data.products...)
	s.data.mu.RUnlock()

	if err := fn(&memoryStore{data: s.data, txMu: s.txMu, inTx: true}); err != nil {
		s.data.mu.Lock()
		s.data.categories = categories
		s.data.products = products
		s.data.mu.Unlock()
		return err
	}
	return nil
}

func stamp(base *model.BaseModel, created bool) {
	now := time.Now()
	if created {
		if base.ID == uuid.Nil {
			base.ID = uuid.New()
		}
		base.CreatedAt = now
	}
	base.UpdatedAt = now
}

func lockWrites(mu *sync.Mutex) func() {
	if mu == nil {
		return func() {}
	}
	mu.Lock()
	return mu.Unlock
}

type memoryCategoryRepo struct {
	data   *memoryData
	writes *sync.Mutex
}

func (r *memoryCategoryRepo) Create(category *model.Category) error {
	defer lockWrites(r.writes)()
	r.data.mu.Lock()
	defer r.data.mu.Unlock()
	stamp(&category.BaseModel, true)
	r.data.categories = append(r.data.categories, *category)
	return nil
}

func (r *memoryCategoryRepo) FindAll() ([]model.Category, error) {
	r.data.mu.RLock()
	defer r.data.mu.RUnlock()
	return append([]model.Category{}, r.data.categories...), nil
}

func (r *memoryCategoryRepo) FindByID(id uuid.UUID) (*model.Category, error) {
	r.data.mu.RLock()
	defer r.data.mu.RUnlock()
	for _, c := range r.data.categories {
		if c.ID == id {
			found := c
			return &found, nil
		}
	}
	return nil, ErrNotFound
}

func (r *memoryCategoryRepo) Update(category *model.Category) error {
	defer lockWrites(r.writes)()
	r.data.mu.Lock()
	defer r.data.mu.Unlock()
	for i := range r.data.categories {
		if r.data.categories[i].ID == category.ID {
			stamp(&category.BaseModel, false)
			category.CreatedAt = r.data.categories[i].CreatedAt
			r.data.categories[i] = *category
			return nil
		}
	}
	return ErrNotFound
}

func (r *memoryCategoryRepo) Delete(id uuid.UUID) error {
	defer lockWrites(r.writes)()
	r.data.mu.Lock()
	defer r.data.mu.Unlock()
	for i := range r.data.categories {
		if r.data.categories[i].ID == id {
			r.data.categories = append(r.data.categories[:i:i], r.data.categories[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}

func (r *memoryCategoryRepo) Count() (int64, error) {
	r.data.mu.RLock()
	defer r.data.mu.RUnlock()
	return int64(len(r.data.categories)), nil
}

type memoryProductRepo struct {
	data   *memoryData
	writes *sync.Mutex
}

func (r *memoryProductRepo) Create(product *model.Product) error {
	defer lockWrites(r.writes)()
	r.data.mu.Lock()
	defer r.data.mu.Unlock()
	stamp(&product.BaseModel, true)
	r.data.products = append(r.data.products, cloneProduct(*product))
	return nil
}

func (r *memoryProductRepo) FindPage(offset, limit int) ([]model.Product, error) {
	r.data.mu.RLock()
	defer r.data.mu.RUnlock()

	start := min(offset, len(r.data.products))
	end := min(start+limit, len(r.data.products))
	page := make([]model.Product, 0, end-start)
	for _, p := range r.data.products[start:end] {
		page = append(page, cloneProduct(p))
	}
	return page, nil
}

func (r *memoryProductRepo) Count() (int64, error) {
	r.data.mu.RLock()
	defer r.data.mu.RUnlock()
	return int64(len(r.data.products)), nil
}

func (r *memoryProductRepo) FindByID(id uuid.UUID) (*model.Product, error) {
	r.data.mu.RLock()
	defer r.data.mu.RUnlock()
	for _, p := range r.data.products {
		if p.ID == id {
			found := cloneProduct(p)
			return &found, nil
		}
	}
	return nil, ErrNotFound
}

func (r *memoryProductRepo) Update(product *model.Product) error {
	defer lockWrites(r.writes)()
	r.data.mu.Lock()
	defer r.data.mu.Unlock()
	for i := range r.data.products {
		if r.data.products[i].ID == product.ID {
			stamp(&product.BaseModel, false)
			product.CreatedAt = r.data.products[i].CreatedAt
			r.data.products[i] = cloneProduct(*product)
			return nil
		}
	}
	return ErrNotFound
}

func (r *memoryProductRepo) Delete(id uuid.UUID) error {
	defer lockWrites(r.writes)()
	r.data.mu.Lock()
	defer r.data.mu.Unlock()
	for i := range r.data.products {
		if r.data.products[i].ID == id {
			r.data.products = append(r.data.products[:i:i], r.data.products[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}

func (r *memoryProductRepo) DetachCategory(categoryID uuid.UUID) (int64, error) {
	defer lockWrites(r.writes)()
	r.data.mu.Lock()
	defer r.data.mu.Unlock()
	var touched int64
	for i := range r.data.products {
		if r.data.products[i].InCategory(categoryID) {
			r.data.products[i].CategoryID = nil
			r.data.products[i].UpdatedAt = time.Now()
			touched++
		}
	}
	return touched, nil
}

// cloneProduct copies the category reference so callers never share it
// with the stored record.
func cloneProduct(p model.Product) model.Product {
	if p.CategoryID != nil {
		id := *p.CategoryID
		p.CategoryID = &id
	}
	return p
}
