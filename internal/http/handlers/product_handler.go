package handlers

import (
	"net/http"
	"strconv"

	"avagostar-product-api/internal/models"
	"avagostar-product-api/internal/repo"
	"avagostar-product-api/internal/services"
	"avagostar-product-api/internal/utils"
	"github.com/gin-gonic/gin"
)

type ProductHandler struct {
	products *services.ProductService
}

type ProductCreateRequest struct {
	Name        string  `json:"name" binding:"required,max=100"`
	Description *string `json:"description" binding:"omitempty,max=500"`
	Price       float64 `json:"price" binding:"required,gt=0"`
	Category    string  `json:"category" binding:"required,max=50"`
	Stock       int     `json:"stock" binding:"gte=0"`
	IsActive    *bool   `json:"is_active"`
}

type ProductUpdateRequest struct {
	Name        *string  `json:"name" binding:"omitempty,min=1,max=100"`
	Description *string  `json:"description" binding:"omitempty,max=500"`
	Price       *float64 `json:"price" binding:"omitempty,gt=0"`
	Category    *string  `json:"category" binding:"omitempty,min=1,max=50"`
	Stock       *int     `json:"stock" binding:"omitempty,gte=0"`
	IsActive    *bool    `json:"is_active"`
}

func NewProductHandler(products *services.ProductService) *ProductHandler {
	return &ProductHandler{products: products}
}

func productIDParam(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		utils.RespondValidationError(c, "invalid product id")
		return 0, false
	}
	return id, true
}

func parseProductFilters(c *gin.Context) repo.ProductFilters {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	perPage, _ := strconv.Atoi(c.DefaultQuery("per_page", "20"))
	return repo.ProductFilters{
		Category: c.Query("category"),
		Page:     page,
		PerPage:  perPage,
	}
}

func (h *ProductHandler) list(c *gin.Context, filters repo.ProductFilters, message string) {
	products, total, err := h.products.List(c.Request.Context(), filters)
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	if products == nil {
		products = []models.Product{}
	}
	pagination := utils.NewPagination(filters.Page, filters.PerPage, total)
	utils.RespondList(c, message, products, pagination)
}

func (h *ProductHandler) List(c *gin.Context) {
	h.list(c, parseProductFilters(c), "products")
}

func (h *ProductHandler) Search(c *gin.Context) {
	query := c.Query("q")
	if query == "" {
		utils.RespondValidationError(c, "please provide a search query")
		return
	}

	filters := parseProductFilters(c)
	filters.Search = query
	h.list(c, filters, "search results")
}

func (h *ProductHandler) ByCategory(c *gin.Context) {
	filters := parseProductFilters(c)
	filters.Category = c.Param("category")
	h.list(c, filters, "products in "+filters.Category)
}

func (h *ProductHandler) GetByID(c *gin.Context) {
	id, ok := productIDParam(c)
	if !ok {
		return
	}

	product, err := h.products.GetByID(c.Request.Context(), id)
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	utils.RespondOK(c, "product", product)
}

func (h *ProductHandler) Create(c *gin.Context) {
	var req ProductCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondValidationError(c, err.Error())
		return
	}

	isActive := true
	if req.IsActive != nil {
		isActive = *req.IsActive
	}

	product, err := h.products.Create(c.Request.Context(), &models.Product{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Category:    req.Category,
		Stock:       req.Stock,
		IsActive:    isActive,
	})
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	utils.RespondCreated(c, "product created", product)
}

// Update serves both PUT and PATCH: absent fields keep their stored values.
func (h *ProductHandler) Update(c *gin.Context) {
	id, ok := productIDParam(c)
	if !ok {
		return
	}

	var req ProductUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondValidationError(c, err.Error())
		return
	}

	product, err := h.products.Update(c.Request.Context(), id, services.ProductUpdateInput{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Category:    req.Category,
		Stock:       req.Stock,
		IsActive:    req.IsActive,
	})
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	utils.RespondOK(c, "product updated", product)
}

func (h *ProductHandler) UpdateStock(c *gin.Context) {
	id, ok := productIDParam(c)
	if !ok {
		return
	}

	quantity, err := strconv.Atoi(c.Query("quantity"))
	if err != nil {
		utils.RespondValidationError(c, "quantity must be an integer")
		return
	}

	product, err := h.products.UpdateStock(c.Request.Context(), id, quantity)
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	utils.RespondOK(c, "stock updated", product)
}

func (h *ProductHandler) Delete(c *gin.Context) {
	id, ok := productIDParam(c)
	if !ok {
		return
	}

	if err := h.products.Delete(c.Request.Context(), id); err != nil {
		utils.RespondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
