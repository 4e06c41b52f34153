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
)

type ProductServiceInterface interface {
	GetAllProducts(ctx context.Context) ([]response_models.ProductResponse, error)
	GetProduct(ctx context.Context, id uint) (*response_models.ProductResponse, error)
	CreateProduct(ctx context.Context, request request_models.ProductRequest) (*response_models.ProductResponse, error)
	UpdateProduct(ctx context.Context, id uint, request request_models.ProductRequest) (*response_models.ProductResponse, error)
	DeleteProduct(ctx context.Context, id uint) error
}

type ProductService struct {
	productRepo repositories.ProductRepository
}

func NewProductService(productRepo repositories.ProductRepository) ProductServiceInterface {
	return &ProductService{productRepo: productRepo}
}

func (p *ProductService) GetAllProducts(ctx context.Context) ([]response_models.ProductResponse, error) {
	products, err := p.productRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: list products: %v", utils.ErrDatabaseError, err)
	}

	resp := make([]response_models.ProductResponse, 0, len(products))
	for i := range products {
		resp = append(resp, toProductResponse(&products[i]))
	}
	return resp, nil
}

func (p *ProductService) GetProduct(ctx context.Context, id uint) (*response_models.ProductResponse, error) {
	product, err := p.productRepo.FindById(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("%w: find product: %v", utils.ErrDatabaseError, err)
	}
	if product == nil {
		return nil, utils.ErrProductNotFound
	}
	resp := toProductResponse(product)
	return &resp, nil
}

func (p *ProductService) CreateProduct(ctx context.Context, request request_models.ProductRequest) (*response_models.ProductResponse, error) {
	product, err := productFromRequest(request)
	if err != nil {
		return nil, err
	}

	if err := p.productRepo.Create(ctx, product); err != nil {
		return nil, fmt.Errorf("%w: create product: %v", utils.ErrDatabaseError, err)
	}
	resp := toProductResponse(product)
	return &resp, nil
}

func (p *ProductService) UpdateProduct(ctx context.Context, id uint, request request_models.ProductRequest) (*response_models.ProductResponse, error) {
	changes, err := productFromRequest(request)
	if err != nil {
		return nil, err
	}

	product, err := p.productRepo.FindById(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("%w: find product: %v", utils.ErrDatabaseError, err)
	}
	if product == nil {
		return nil, utils.ErrProductNotFound
	}

	product.Title = changes.Title
	product.Description = changes.Description
	product.NewPrice = changes.NewPrice
	product.OldPrice = changes.OldPrice
	product.CoverImage = changes.CoverImage
	product.Category = changes.Category

	if err := p.productRepo.Update(ctx, product); err != nil {
		return nil, fmt.Errorf("%w: update product: %v", utils.ErrDatabaseError, err)
	}
	resp := toProductResponse(product)
	return &resp, nil
}

func (p *ProductService) DeleteProduct(ctx context.Context, id uint) error {
	deleted, err := p.productRepo.Delete(ctx, id)
	if err != nil {
		return fmt.Errorf("%w: delete product: %v", utils.ErrDatabaseError, err)
	}
	if deleted == 0 {
		return utils.ErrProductNotFound
	}
	return nil
}

// productFromRequest trims the text fields and cuts prices to cents.
func productFromRequest(request request_models.ProductRequest) (*db_models.Product, error) {
	title := strings.TrimSpace(request.Title)
	description := strings.TrimSpace(request.Description)
	coverImage := strings.TrimSpace(request.CoverImage)
	category := strings.TrimSpace(request.Category)
	if title == "" || description == "" || coverImage == "" || category == "" || request.NewPrice == nil {
		return nil, utils.ErrInvalidProductData
	}

	newPrice, ok := utils.NormalizePrice(*request.NewPrice)
	if !ok {
		return nil, utils.ErrInvalidProductData
	}

	var oldPrice *float64
	if request.OldPrice != nil {
		v, ok := utils.NormalizePrice(*request.OldPrice)
		if !ok {
			return nil, utils.ErrInvalidProductData
		}
		oldPrice = &v
	}

	return &db_models.Product{
		Title:       title,
		Description: description,
		NewPrice:    newPrice,
		OldPrice:    oldPrice,
		CoverImage:  coverImage,
		Category:    category,
	}, nil
}

// toProductResponse shows a missing old price as the new price.
func toProductResponse(product *db_models.Product) response_models.ProductResponse {
	oldPrice := product.NewPrice
	if product.OldPrice != nil {
		oldPrice = *product.OldPrice
	}
	return response_models.ProductResponse{
		ID:          product.ID,
		Title:       product.Title,
		Description: product.Description,
		NewPrice:    product.NewPrice,
		OldPrice:    oldPrice,
		CoverImage:  product.CoverImage,
		Category:    product.Category,
	}
}
