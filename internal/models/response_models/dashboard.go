package response_models

type MonthlyCount struct {
	Month string `json:"month"`
	Count int    `json:"count"`
}

type DashboardResponse struct {
	TotalBooks     int64          `json:"totalBooks"`
	TotalOrders    int64          `json:"totalOrders"`
	TotalSales     float64        `json:"totalSales"`
	TrendingBooks  int            `json:"trendingBooks"`
	OrdersPerMonth []MonthlyCount `json:"ordersPerMonth"`
}
