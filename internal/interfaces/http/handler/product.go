package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	catalogapp "github.com/tshirt-brand/backend/internal/application/catalog"
)

// ProductHandler handles product-related API endpoints
type ProductHandler struct {
	BaseHandler
	productService *catalogapp.ProductService
}

// NewProductHandler creates a new ProductHandler
func NewProductHandler(productService *catalogapp.ProductService) *ProductHandler {
	return &ProductHandler{productService: productService}
}

// CreateProductRequest represents a request to create a new product.
// Price is a pointer so a zero price still satisfies "required".
type CreateProductRequest struct {
	Name        string   `json:"name" binding:"required,min=1,max=100"`
	Description string   `json:"description" binding:"max=200"`
	Price       *float64 `json:"price" binding:"required,gte=0"`
	CategoryID  string   `json:"category" binding:"required,uuid"`
	Sizes       []string `json:"sizes" binding:"omitempty,dive,oneof=S M L XL s m l xl"`
	Images      []string `json:"images" binding:"omitempty,max=3,dive,min=1"`
	Stock       int      `json:"stock" binding:"gte=0"`
}

// UpdateProductRequest represents a request to update a product
type UpdateProductRequest struct {
	Name        string   `json:"name" binding:"required,min=1,max=100"`
	Description string   `json:"description" binding:"max=200"`
	Price       *float64 `json:"price" binding:"required,gte=0"`
	CategoryID  string   `json:"category" binding:"required,uuid"`
	Sizes       []string `json:"sizes" binding:"omitempty,dive,oneof=S M L XL s m l xl"`
	Images      []string `json:"images" binding:"omitempty,max=3,dive,min=1"`
	Stock       int      `json:"stock" binding:"gte=0"`
}

// ListProductsQuery represents storefront listing filters
type ListProductsQuery struct {
	Category string   `form:"category" binding:"omitempty,uuid"`
	Search   string   `form:"search"`
	MinPrice *float64 `form:"minPrice" binding:"omitempty,gte=0"`
	MaxPrice *float64 `form:"maxPrice" binding:"omitempty,gte=0"`
	SortBy   string   `form:"sortBy" binding:"omitempty,oneof=newest price_low price_high"`
}

// List returns products matching the storefront filters
func (h *ProductHandler) List(c *gin.Context) {
	var query ListProductsQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		handleBindingError(h.BaseHandler, c, err)
		return
	}

	filter := catalogapp.ProductListFilter{
		Search: query.Search,
		SortBy: query.SortBy,
	}
	if query.Category != "" {
		categoryID, err := uuid.Parse(query.Category)
		if err != nil {
			h.BadRequest(c, "Invalid category ID format")
			return
		}
		filter.CategoryID = &categoryID
	}
	if query.MinPrice != nil {
		min := decimal.NewFromFloat(*query.MinPrice)
		filter.MinPrice = &min
	}
	if query.MaxPrice != nil {
		max := decimal.NewFromFloat(*query.MaxPrice)
		filter.MaxPrice = &max
	}

	products, err := h.productService.List(c.Request.Context(), filter)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, products)
}

// Get returns a single product by ID
func (h *ProductHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid product ID format")
		return
	}

	product, err := h.productService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, product)
}

// Create creates a new product
func (h *ProductHandler) Create(c *gin.Context) {
	var req CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		handleBindingError(h.BaseHandler, c, err)
		return
	}

	appReq, err := toCreateProductRequest(req)
	if err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	resp, err := h.productService.Create(c.Request.Context(), appReq)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Created(c, resp)
}

// Update updates an existing product
func (h *ProductHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid product ID format")
		return
	}

	var req UpdateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		handleBindingError(h.BaseHandler, c, err)
		return
	}

	categoryID, err := uuid.Parse(req.CategoryID)
	if err != nil {
		h.BadRequest(c, "Invalid category ID format")
		return
	}

	resp, err := h.productService.Update(c.Request.Context(), id, catalogapp.UpdateProductRequest{
		Name:        req.Name,
		Description: req.Description,
		Price:       decimal.NewFromFloat(*req.Price),
		CategoryID:  categoryID,
		Sizes:       req.Sizes,
		Images:      req.Images,
		Stock:       req.Stock,
	})
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, resp)
}

// Delete deletes a product
func (h *ProductHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid product ID format")
		return
	}

	if err := h.productService.Delete(c.Request.Context(), id); err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.NoContent(c)
}

func toCreateProductRequest(req CreateProductRequest) (catalogapp.CreateProductRequest, error) {
	categoryID, err := uuid.Parse(req.CategoryID)
	if err != nil {
		return catalogapp.CreateProductRequest{}, err
	}
	return catalogapp.CreateProductRequest{
		Name:        req.Name,
		Description: req.Description,
		Price:       decimal.NewFromFloat(*req.Price),
		CategoryID:  categoryID,
		Sizes:       req.Sizes,
		Images:      req.Images,
		Stock:       req.Stock,
	}, nil
}
