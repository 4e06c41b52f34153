package services

import (
	"context"
	"fmt"
	"strings"

	"bookstore/internal/models/db_models"
	"bookstore/internal/models/request_models"
	"bookstore/internal/models/response_models"
	"bookstore/internal/repositories"
	"bookstore/pkg/utils"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"gorm.io/datatypes"
)

type OrderServiceInterface interface {
	CreateOrder(ctx context.Context, identity utils.Identity, request request_models.CreateOrderRequest) (*response_models.OrderResponse, error)
	GetOwnOrders(ctx context.Context, identity utils.Identity) ([]response_models.OrderResponse, error)
	GetAllOrders(ctx context.Context) ([]response_models.OrderResponse, error)
	CancelOrder(ctx context.Context, id uint) error
}

type OrderService struct {
	orderRepo   repositories.OrderRepository
	strictTotal bool
	logger      *zap.Logger
}

// NewOrderService builds the order service. With strictTotal the supplied
// total must equal the sum of the item lines; otherwise it is stored as sent.
func NewOrderService(orderRepo repositories.OrderRepository, strictTotal bool, logger *zap.Logger) OrderServiceInterface {
	return &OrderService{
		orderRepo:   orderRepo,
		strictTotal: strictTotal,
		logger:      logger,
	}
}

func (s *OrderService) CreateOrder(ctx context.Context, identity utils.Identity, request request_models.CreateOrderRequest) (*response_models.OrderResponse, error) {
	if strings.TrimSpace(identity.Email) == "" {
		return nil, utils.ErrInvalidToken
	}
	if len(request.Items) == 0 || request.TotalPrice <= 0 || request.ShippingInfo == nil {
		return nil, utils.ErrOrderDataMissing
	}

	items := make([]db_models.OrderItem, 0, len(request.Items))
	prices := make([]float64, 0, len(request.Items))
	quantities := make([]int, 0, len(request.Items))
	for _, it := range request.Items {
		items = append(items, db_models.OrderItem{
			ProductID:  it.ID,
			Title:      it.Title,
			NewPrice:   it.NewPrice,
			Quantity:   it.Quantity,
			Category:   it.Category,
			CoverImage: it.CoverImage,
		})
		prices = append(prices, it.NewPrice)
		quantities = append(quantities, it.Quantity)
	}

	if s.strictTotal {
		expected := utils.LineTotal(prices, quantities)
		if !expected.Equal(decimal.NewFromFloat(request.TotalPrice).Round(2)) {
			return nil, fmt.Errorf("%w: expected %s", utils.ErrOrderTotalMismatch, expected)
		}
	}

	si := request.ShippingInfo
	order := &db_models.Order{
		UserEmail:  identity.Email,
		Items:      datatypes.NewJSONSlice(items),
		TotalPrice: request.TotalPrice,
		ShippingInfo: datatypes.NewJSONType(db_models.ShippingInfo{
			Name:    si.Name,
			Email:   si.Email,
			Phone:   si.Phone,
			Address: si.Address,
			City:    si.City,
			State:   si.State,
			Zipcode: si.Zipcode,
			Country: si.Country,
		}),
	}

	if err := s.orderRepo.Create(ctx, order); err != nil {
		return nil, fmt.Errorf("%w: create order: %v", utils.ErrDatabaseError, err)
	}

	s.logger.Info("order created",
		zap.Uint("order_id", order.ID),
		zap.Int("items", len(items)),
		zap.Float64("total_price", order.TotalPrice),
	)

	resp := toOrderResponse(order)
	return &resp, nil
}

func (s *OrderService) GetOwnOrders(ctx context.Context, identity utils.Identity) ([]response_models.OrderResponse, error) {
	orders, err := s.orderRepo.ListByEmail(ctx, identity.Email)
	if err != nil {
		return nil, fmt.Errorf("%w: list orders: %v", utils.ErrDatabaseError, err)
	}
	return toOrderResponses(orders), nil
}

func (s *OrderService) GetAllOrders(ctx context.Context) ([]response_models.OrderResponse, error) {
	orders, err := s.orderRepo.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: list orders: %v", utils.ErrDatabaseError, err)
	}
	return toOrderResponses(orders), nil
}

// CancelOrder hard-deletes the order. Deleting an id that does not exist
// succeeds too.
func (s *OrderService) CancelOrder(ctx context.Context, id uint) error {
	deleted, err := s.orderRepo.Delete(ctx, id)
	if err != nil {
		return fmt.Errorf("%w: delete order: %v", utils.ErrDatabaseError, err)
	}
	s.logger.Info("order cancelled", zap.Uint("order_id", id), zap.Int64("rows", deleted))
	return nil
}

func toOrderResponses(orders []db_models.Order) []response_models.OrderResponse {
	resp := make([]response_models.OrderResponse, 0, len(orders))
	for i := range orders {
		resp = append(resp, toOrderResponse(&orders[i]))
	}
	return resp
}

func toOrderResponse(order *db_models.Order) response_models.OrderResponse {
	items := []db_models.OrderItem(order.Items)
	if items == nil {
		items = []db_models.OrderItem{}
	}
	return response_models.OrderResponse{
		ID:           order.ID,
		UserEmail:    order.UserEmail,
		Items:        items,
		TotalPrice:   order.TotalPrice,
		ShippingInfo: order.ShippingInfo.Data(),
		CreatedAt:    order.CreatedAt,
	}
}
