package view

import (
	"sync"

	"go-warehouse/internal/model"
)

// ProductDetailOpened is emitted once per opened detail view.
type ProductDetailOpened struct {
	ProductID string
}

// ViewCounter counts detail views per product id for the life of the
// process.
type ViewCounter struct {
	mu     sync.Mutex
	counts map[string]int
}

func NewViewCounter() *ViewCounter {
	return &ViewCounter{counts: make(map[string]int)}
}

func (v *ViewCounter) Dispatch(e ProductDetailOpened) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.counts[e.ProductID]++
}

// Count returns the views recorded for id, zero if none.
func (v *ViewCounter) Count(id string) int {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.counts[id]
}

// ProductLookup finds a loaded product by id.
type ProductLookup interface {
	FindProduct(id string) (model.Product, bool)
}

// Detail is what a detail view shows.
type Detail struct {
	Product      model.Product
	CategoryName string
	Views        int
}

// DetailView is one opened product detail. It records a single view, on
// the first render that finds the product, however often it re-renders.
type DetailView struct {
	productID  string
	products   ProductLookup
	categories []model.Category
	counter    *ViewCounter

	once sync.Once
}

func OpenDetail(productID string, products ProductLookup, categories []model.Category, counter *ViewCounter) *DetailView {
	return &DetailView{
		productID:  productID,
		products:   products,
		categories: categories,
		counter:    counter,
	}
}

// Render returns the detail, or false while the product is not loaded.
func (d *DetailView) Render() (Detail, bool) {
	product, ok := d.products.FindProduct(d.productID)
	if !ok {
		return Detail{}, false
	}

	d.once.Do(func() {
		d.counter.Dispatch(ProductDetailOpened{ProductID: d.productID})
	})

	return Detail{
		Product:      product,
		CategoryName: CategoryName(d.categories, product),
		Views:        d.counter.Count(d.productID),
	}, true
}

// CategoryName resolves the product's category name, or "Uncategorized"
// when it has none or the category is not loaded.
func CategoryName(categories []model.Category, p model.Product) string {
	if p.CategoryID == nil {
		return Uncategorized
	}
	for _, c := range categories {
		if c.ID == *p.CategoryID {
			return c.Name
		}
	}
	return Uncategorized
}

const Uncategorized = "Uncategorized"
