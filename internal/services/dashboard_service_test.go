package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"

	"bookstore/internal/models/db_models"
	"bookstore/internal/repositories"
	"bookstore/internal/testutil"
)

func TestBuildDashboard(t *testing.T) {
	db := testutil.NewDB(t)
	ctx := context.Background()
	now := time.Date(2026, time.March, 15, 12, 0, 0, 0, time.UTC)

	for _, title := range []string{"A", "B", "C"} {
		require.NoError(t, db.Create(&db_models.Product{
			Title: title, Description: "d", NewPrice: 1, CoverImage: "c", Category: "x",
		}).Error)
	}

	orders := []db_models.Order{
		{UserEmail: "a@x", TotalPrice: 10.10, CreatedAt: now.Add(-24 * time.Hour),
			Items: datatypes.NewJSONSlice([]db_models.OrderItem{{ProductID: 1, Quantity: 1}, {ProductID: 2, Quantity: 1}})},
		{UserEmail: "b@x", TotalPrice: 5.05, CreatedAt: now.Add(-48 * time.Hour),
			Items: datatypes.NewJSONSlice([]db_models.OrderItem{{ProductID: 1, Quantity: 3}})},
		{UserEmail: "c@x", TotalPrice: 2, CreatedAt: now.AddDate(0, -2, 0),
			Items: datatypes.NewJSONSlice([]db_models.OrderItem{{ProductID: 3, Quantity: 1}})},
	}
	for i := range orders {
		require.NoError(t, db.Create(&orders[i]).Error)
	}

	svc := &dashboardService{
		repo:      repositories.NewDashboardRepository(db),
		orderRepo: repositories.NewOrderRepository(db),
		now:       func() time.Time { return now },
	}

	report, err := svc.BuildDashboard(ctx)
	require.NoError(t, err)

	assert.Equal(t, int64(3), report.TotalBooks)
	assert.Equal(t, int64(3), report.TotalOrders)
	assert.Equal(t, 17.15, report.TotalSales)
	assert.Equal(t, 2, report.TrendingBooks)

	require.Len(t, report.OrdersPerMonth, 12)
	last := report.OrdersPerMonth[11]
	assert.Equal(t, "2026-03", last.Month)
	assert.Equal(t, 2, last.Count)
	assert.Equal(t, "2026-01", report.OrdersPerMonth[9].Month)
	assert.Equal(t, 1, report.OrdersPerMonth[9].Count)
}
