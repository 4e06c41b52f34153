package repositories

import (
	"context"
	"errors"

	"bookstore/internal/models/db_models"
	"gorm.io/gorm"
)

type ProductRepository interface {
	FindAll(ctx context.Context) ([]db_models.Product, error)
	FindById(ctx context.Context, id uint) (*db_models.Product, error)
	Create(ctx context.Context, product *db_models.Product) error
	Update(ctx context.Context, product *db_models.Product) error
	Delete(ctx context.Context, id uint) (int64, error)
}

type productRepository struct {
	db *gorm.DB
}

func NewProductRepository(db *gorm.DB) ProductRepository {
	return &productRepository{db: db}
}

func (p *productRepository) FindAll(ctx context.Context) ([]db_models.Product, error) {
	var products []db_models.Product
	err := p.db.WithContext(ctx).Order("id DESC").Find(&products).Error
	return products, err
}

func (p *productRepository) FindById(ctx context.Context, id uint) (*db_models.Product, error) {
	var product db_models.Product
	err := p.db.WithContext(ctx).First(&product, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &product, nil
}

func (p *productRepository) Create(ctx context.Context, product *db_models.Product) error {
	return p.db.WithContext(ctx).Create(product).Error
}

// Update writes every editable column, including a nil old price.
func (p *productRepository) Update(ctx context.Context, product *db_models.Product) error {
	return p.db.WithContext(ctx).
		Model(product).
		Select("title", "description", "new_price", "old_price", "cover_image", "category", "updated_at").
		Updates(product).Error
}

func (p *productRepository) Delete(ctx context.Context, id uint) (int64, error) {
	res := p.db.WithContext(ctx).Delete(&db_models.Product{}, id)
	return res.RowsAffected, res.Error
}
