package repository

import (
	"go-warehouse/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ProductRepository interface {
	Create(product *model.Product) error
	FindPage(offset, limit int) ([]model.Product, error)
	Count() (int64, error)
	FindByID(id uuid.UUID) (*model.Product, error)
	Update(product *model.Product) error
	Delete(id uuid.UUID) error
	DetachCategory(categoryID uuid.UUID) (int64, error)
}

type productRepo struct {
	db *gorm.DB
}

func NewProductRepo(db *gorm.DB) ProductRepository {
	return &productRepo{db}
}

func (r *productRepo) Create(product *model.Product) error {
	return r.db.Create(product).Error
}

// FindPage returns products in natural (insertion) order.
func (r *productRepo) FindPage(offset, limit int) ([]model.Product, error) {
	products := []model.Product{}
	err := r.db.Order("created_at ASC, id ASC").Offset(offset).Limit(limit).Find(&products).Error
	return products, err
}

func (r *productRepo) Count() (int64, error) {
	var total int64
	err := r.db.Model(&model.Product{}).Count(&total).Error
	return total, err
}

func (r *productRepo) FindByID(id uuid.UUID) (*model.Product, error) {
	var product model.Product
	if err := r.db.First(&product, "id = ?", id).Error; err != nil {
		return nil, translate(err)
	}
	return &product, nil
}

// Update saves every column, including a nil category and an empty image URL.
func (r *productRepo) Update(product *model.Product) error {
	return r.db.Save(product).Error
}

func (r *productRepo) Delete(id uuid.UUID) error {
	res := r.db.Delete(&model.Product{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// DetachCategory clears the category reference on every product pointing
// at categoryID and reports how many products were touched.
func (r *productRepo) DetachCategory(categoryID uuid.UUID) (int64, error) {
	res := r.db.Model(&model.Product{}).
		Where("category_id = ?", categoryID).
		Update("category_id", nil)
	return res.RowsAffected, res.Error
}
