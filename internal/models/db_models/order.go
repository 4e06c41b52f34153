package db_models

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// OrderItem is a snapshot of a cart line, stored inside the order row.
type OrderItem struct {
	ProductID  uint    `json:"_id"`
	Title      string  `json:"title"`
	NewPrice   float64 `json:"newPrice"`
	Quantity   int     `json:"quantity"`
	Category   string  `json:"category,omitempty"`
	CoverImage string  `json:"coverImage,omitempty"`
}

type ShippingInfo struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
	City    string `json:"city"`
	State   string `json:"state"`
	Zipcode string `json:"zipcode"`
	Country string `json:"country"`
}

// Order rows are owned by email rather than a foreign key; cancelling an
// order deletes the row.
type Order struct {
	ID           uint                           `gorm:"primaryKey"`
	UserEmail    string                         `gorm:"size:255;index;not null"`
	Items        datatypes.JSONSlice[OrderItem] `gorm:"not null"`
	TotalPrice   float64                        `gorm:"not null"`
	ShippingInfo datatypes.JSONType[ShippingInfo]
	CreatedAt    time.Time `gorm:"index"`
}

func (o *Order) BeforeCreate(tx *gorm.DB) error {
	if o.CreatedAt.IsZero() {
		o.CreatedAt = time.Now().UTC()
	}
	return nil
}
