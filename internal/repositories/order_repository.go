package repositories

import (
	"context"
	"time"

	"bookstore/internal/models/db_models"
	"gorm.io/gorm"
)

type OrderRepository interface {
	Create(ctx context.Context, order *db_models.Order) error
	ListByEmail(ctx context.Context, email string) ([]db_models.Order, error)
	ListAll(ctx context.Context) ([]db_models.Order, error)
	ListSince(ctx context.Context, since time.Time) ([]db_models.Order, error)
	Delete(ctx context.Context, id uint) (int64, error)
}

type orderRepository struct {
	db *gorm.DB
}

func NewOrderRepository(db *gorm.DB) OrderRepository {
	return &orderRepository{db: db}
}

func newestFirst(db *gorm.DB) *gorm.DB {
	return db.Order("created_at DESC").Order("id DESC")
}

func (r *orderRepository) Create(ctx context.Context, order *db_models.Order) error {
	return r.db.WithContext(ctx).Create(order).Error
}

func (r *orderRepository) ListByEmail(ctx context.Context, email string) ([]db_models.Order, error) {
	var orders []db_models.Order
	err := r.db.WithContext(ctx).
		Scopes(newestFirst).
		Where("user_email = ?", email).
		Find(&orders).Error
	return orders, err
}

func (r *orderRepository) ListAll(ctx context.Context) ([]db_models.Order, error) {
	var orders []db_models.Order
	err := r.db.WithContext(ctx).Scopes(newestFirst).Find(&orders).Error
	return orders, err
}

func (r *orderRepository) ListSince(ctx context.Context, since time.Time) ([]db_models.Order, error) {
	var orders []db_models.Order
	err := r.db.WithContext(ctx).
		Scopes(newestFirst).
		Where("created_at >= ?", since.UTC()).
		Find(&orders).Error
	return orders, err
}

// Delete removes the row and reports how many rows went away; zero is not
// an error.
func (r *orderRepository) Delete(ctx context.Context, id uint) (int64, error) {
	res := r.db.WithContext(ctx).Delete(&db_models.Order{}, id)
	return res.RowsAffected, res.Error
}
