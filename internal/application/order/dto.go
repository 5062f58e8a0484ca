package order

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/tshirt-brand/backend/internal/domain/order"
)

// OrderItemRequest is one requested line item.
// Price is optional; when present it must match the catalog price.
type OrderItemRequest struct {
	ProductID uuid.UUID
	Quantity  int
	Size      string
	Price     *decimal.Decimal
}

// CreateOrderRequest contains checkout input
type CreateOrderRequest struct {
	CustomerName    string
	PhoneNumber     string
	DeliveryAddress string
	Items           []OrderItemRequest
}

// ListOrdersFilter carries admin listing options
type ListOrdersFilter struct {
	Status   string
	Page     int
	PageSize int
}

// OrderItemResponse is the outward representation of a line item
type OrderItemResponse struct {
	ProductID   uuid.UUID       `json:"product"`
	ProductName string          `json:"productName"`
	Size        string          `json:"size"`
	Quantity    int             `json:"quantity"`
	Price       decimal.Decimal `json:"price"`
	Amount      decimal.Decimal `json:"amount"`
}

// OrderResponse is the outward representation of an order
type OrderResponse struct {
	ID              uuid.UUID           `json:"id"`
	OrderID         string              `json:"orderId"`
	CustomerName    string              `json:"customerName"`
	PhoneNumber     string              `json:"phoneNumber"`
	DeliveryAddress string              `json:"deliveryAddress"`
	Items           []OrderItemResponse `json:"items"`
	TotalAmount     decimal.Decimal     `json:"totalAmount"`
	Status          string              `json:"status"`
	PaymentMethod   string              `json:"paymentMethod"`
	CreatedAt       time.Time           `json:"createdAt"`
	UpdatedAt       time.Time           `json:"updatedAt"`
}

// OrderStatsResponse is the admin dashboard counters payload
type OrderStatsResponse struct {
	Total     int64 `json:"total"`
	Pending   int64 `json:"pending"`
	Delivered int64 `json:"delivered"`
}

// ToOrderResponse maps an order to its response form
func ToOrderResponse(o *order.Order) *OrderResponse {
	items := make([]OrderItemResponse, len(o.Items))
	for i, item := range o.Items {
		items[i] = OrderItemResponse{
			ProductID:   item.ProductID,
			ProductName: item.ProductName,
			Size:        item.Size,
			Quantity:    item.Quantity,
			Price:       item.UnitPrice,
			Amount:      item.Amount,
		}
	}
	return &OrderResponse{
		ID:              o.ID,
		OrderID:         o.Code,
		CustomerName:    o.CustomerName,
		PhoneNumber:     o.PhoneNumber,
		DeliveryAddress: o.DeliveryAddress,
		Items:           items,
		TotalAmount:     o.TotalAmount,
		Status:          string(o.Status),
		PaymentMethod:   o.PaymentMethod,
		CreatedAt:       o.CreatedAt,
		UpdatedAt:       o.UpdatedAt,
	}
}
