package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"bookstore/internal/models/request_models"
	"bookstore/internal/services"
	"bookstore/pkg/utils"
)

type ProductController struct {
	productService services.ProductServiceInterface
}

func NewProductController(productService services.ProductServiceInterface) *ProductController {
	return &ProductController{
		productService: productService,
	}
}

// GetAllProducts godoc
// @Summary List books, newest first
// @Tags Products
// @Produce json
// @Success 200 {array} response_models.ProductResponse
// @Router /api/products [get]
func (p *ProductController) GetAllProducts(c *gin.Context) {
	products, err := p.productService.GetAllProducts(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, http.StatusOK, products)
}

// GetProduct godoc
// @Summary Get a book by id
// @Tags Products
// @Produce json
// @Param id path int true "Product ID"
// @Success 200 {object} response_models.ProductResponse
// @Failure 400 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/products/{id} [get]
func (p *ProductController) GetProduct(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	product, err := p.productService.GetProduct(c.Request.Context(), id)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, http.StatusOK, product)
}

// CreateProduct godoc
// @Summary Add a book to the catalog
// @Tags Products
// @Accept json
// @Produce json
// @Param request body request_models.ProductRequest true "Book fields"
// @Success 201 {object} response_models.ProductResponse
// @Failure 400 {object} utils.ErrorResponse
// @Security BearerAuth
// @Router /api/dashboard/products [post]
func (p *ProductController) CreateProduct(c *gin.Context) {
	var req request_models.ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid product data")
		return
	}

	product, err := p.productService.CreateProduct(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, http.StatusCreated, product)
}

func (p *ProductController) UpdateProduct(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	var req request_models.ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid product data")
		return
	}

	product, err := p.productService.UpdateProduct(c.Request.Context(), id, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, http.StatusOK, product)
}

func (p *ProductController) DeleteProduct(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	if err := p.productService.DeleteProduct(c.Request.Context(), id); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, http.StatusOK, gin.H{"success": true})
}
