package request_models

type OrderItemRequest struct {
	ID         uint    `json:"_id"`
	Title      string  `json:"title"`
	NewPrice   float64 `json:"newPrice"`
	Quantity   int     `json:"quantity"`
	Category   string  `json:"category"`
	CoverImage string  `json:"coverImage"`
}

type ShippingInfoRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
	City    string `json:"city"`
	State   string `json:"state"`
	Zipcode string `json:"zipcode"`
	Country string `json:"country"`
}

type CreateOrderRequest struct {
	Items        []OrderItemRequest   `json:"items" binding:"required,min=1"`
	TotalPrice   float64              `json:"totalPrice" binding:"required,gt=0"`
	ShippingInfo *ShippingInfoRequest `json:"shippingInfo" binding:"required"`
}
