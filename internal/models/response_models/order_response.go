package response_models

import (
	"time"

	"bookstore/internal/models/db_models"
)

type OrderResponse struct {
	ID           uint                   `json:"id"`
	UserEmail    string                 `json:"user_email"`
	Items        []db_models.OrderItem  `json:"items"`
	TotalPrice   float64                `json:"total_price"`
	ShippingInfo db_models.ShippingInfo `json:"shipping_info"`
	CreatedAt    time.Time              `json:"created_at"`
}
