package repositories

import (
	"context"

	"gorm.io/gorm"

	dbm "bookstore/internal/models/db_models"
)

type DashboardRepository interface {
	CountProducts(ctx context.Context) (int64, error)
	CountOrders(ctx context.Context) (int64, error)
	SumOrderTotals(ctx context.Context) (float64, error)
}

type dashboardRepository struct {
	db *gorm.DB
}

func NewDashboardRepository(db *gorm.DB) DashboardRepository {
	return &dashboardRepository{db: db}
}

func (r *dashboardRepository) CountProducts(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&dbm.Product{}).Count(&n).Error
	return n, err
}

func (r *dashboardRepository) CountOrders(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&dbm.Order{}).Count(&n).Error
	return n, err
}

func (r *dashboardRepository) SumOrderTotals(ctx context.Context) (float64, error) {
	var sum float64
	err := r.db.WithContext(ctx).
		Model(&dbm.Order{}).
		Select("COALESCE(SUM(total_price), 0)").
		Scan(&sum).Error
	return sum, err
}
