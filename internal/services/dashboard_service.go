package services

import (
	"context"
	"fmt"
	"time"

	"bookstore/internal/models/response_models"
	"bookstore/internal/repositories"
	"bookstore/pkg/utils"
)

const (
	trendingWindow  = 30 * 24 * time.Hour
	dashboardMonths = 12
)

type DashboardService interface {
	BuildDashboard(ctx context.Context) (*response_models.DashboardResponse, error)
}

type dashboardService struct {
	repo      repositories.DashboardRepository
	orderRepo repositories.OrderRepository
	now       func() time.Time
}

func NewDashboardService(repo repositories.DashboardRepository, orderRepo repositories.OrderRepository) DashboardService {
	return &dashboardService{repo: repo, orderRepo: orderRepo, now: utils.NowUTC}
}

func (s *dashboardService) BuildDashboard(ctx context.Context) (*response_models.DashboardResponse, error) {
	totalBooks, err := s.repo.CountProducts(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: count products: %v", utils.ErrDatabaseError, err)
	}
	totalOrders, err := s.repo.CountOrders(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: count orders: %v", utils.ErrDatabaseError, err)
	}
	totalSales, err := s.repo.SumOrderTotals(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: sum orders: %v", utils.ErrDatabaseError, err)
	}

	now := s.now()
	months := utils.LastMonths(now, dashboardMonths)
	windowStart := utils.StartOfMonth(now).AddDate(0, -(dashboardMonths - 1), 0)
	trendingSince := now.Add(-trendingWindow)
	if trendingSince.Before(windowStart) {
		windowStart = trendingSince
	}

	recent, err := s.orderRepo.ListSince(ctx, windowStart)
	if err != nil {
		return nil, fmt.Errorf("%w: recent orders: %v", utils.ErrDatabaseError, err)
	}

	perMonth := make(map[string]int, len(months))
	trending := make(map[uint]struct{})
	for _, o := range recent {
		perMonth[utils.MonthKey(o.CreatedAt)]++
		if !o.CreatedAt.Before(trendingSince) {
			for _, it := range o.Items {
				trending[it.ProductID] = struct{}{}
			}
		}
	}

	series := make([]response_models.MonthlyCount, 0, len(months))
	for _, m := range months {
		series = append(series, response_models.MonthlyCount{Month: m, Count: perMonth[m]})
	}

	return &response_models.DashboardResponse{
		TotalBooks:     totalBooks,
		TotalOrders:    totalOrders,
		TotalSales:     utils.RoundMoney(totalSales),
		TrendingBooks:  len(trending),
		OrdersPerMonth: series,
	}, nil
}
