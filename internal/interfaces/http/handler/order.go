package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	orderapp "github.com/tshirt-brand/backend/internal/application/order"
)

// OrderHandler handles order-related API endpoints
type OrderHandler struct {
	BaseHandler
	orderService *orderapp.OrderService
}

// NewOrderHandler creates a new OrderHandler
func NewOrderHandler(orderService *orderapp.OrderService) *OrderHandler {
	return &OrderHandler{orderService: orderService}
}

// OrderItemRequest represents one line item in a checkout request
type OrderItemRequest struct {
	ProductID string   `json:"product" binding:"required,uuid"`
	Quantity  int      `json:"quantity" binding:"required,gt=0"`
	Size      string   `json:"size" binding:"required"`
	Price     *float64 `json:"price" binding:"omitempty,gte=0"`
}

// CreateOrderRequest represents a checkout request
type CreateOrderRequest struct {
	CustomerName    string             `json:"customerName" binding:"required,min=1,max=100"`
	PhoneNumber     string             `json:"phoneNumber" binding:"required,min=5,max=30"`
	DeliveryAddress string             `json:"deliveryAddress" binding:"required,min=1,max=500"`
	Items           []OrderItemRequest `json:"items" binding:"required,min=1,dive"`
}

// UpdateOrderStatusRequest represents a status change request
type UpdateOrderStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=pending delivered"`
}

// ListOrdersQuery represents back office listing filters
type ListOrdersQuery struct {
	Status   string `form:"status" binding:"omitempty,oneof=pending delivered"`
	Page     int    `form:"page" binding:"omitempty,min=1"`
	PageSize int    `form:"page_size" binding:"omitempty,min=1,max=100"`
}

// Create places a new cash-on-delivery order
func (h *OrderHandler) Create(c *gin.Context) {
	var req CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		handleBindingError(h.BaseHandler, c, err)
		return
	}

	items := make([]orderapp.OrderItemRequest, len(req.Items))
	for i, item := range req.Items {
		productID, err := uuid.Parse(item.ProductID)
		if err != nil {
			h.BadRequest(c, "Invalid product ID format")
			return
		}
		items[i] = orderapp.OrderItemRequest{
			ProductID: productID,
			Quantity:  item.Quantity,
			Size:      item.Size,
		}
		if item.Price != nil {
			price := decimal.NewFromFloat(*item.Price)
			items[i].Price = &price
		}
	}

	resp, err := h.orderService.Create(c.Request.Context(), orderapp.CreateOrderRequest{
		CustomerName:    req.CustomerName,
		PhoneNumber:     req.PhoneNumber,
		DeliveryAddress: req.DeliveryAddress,
		Items:           items,
	})
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Created(c, resp)
}

// List returns orders for the back office
func (h *OrderHandler) List(c *gin.Context) {
	var query ListOrdersQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		handleBindingError(h.BaseHandler, c, err)
		return
	}

	orders, err := h.orderService.List(c.Request.Context(), orderapp.ListOrdersFilter{
		Status:   query.Status,
		Page:     query.Page,
		PageSize: query.PageSize,
	})
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, orders)
}

// Get returns a single order by ID
func (h *OrderHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid order ID format")
		return
	}

	order, err := h.orderService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, order)
}

// UpdateStatus changes an order's status
func (h *OrderHandler) UpdateStatus(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid order ID format")
		return
	}

	var req UpdateOrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		handleBindingError(h.BaseHandler, c, err)
		return
	}

	resp, err := h.orderService.UpdateStatus(c.Request.Context(), id, req.Status)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, resp)
}

// Stats returns order counters for the admin dashboard
func (h *OrderHandler) Stats(c *gin.Context) {
	stats, err := h.orderService.Stats(c.Request.Context())
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, stats)
}
