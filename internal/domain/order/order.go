package order

import (
	"crypto/rand"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/tshirt-brand/backend/internal/domain/shared"
)

// OrderStatus represents the fulfillment state of an order
type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusDelivered OrderStatus = "delivered"
)

// IsValid checks if the status is a known value
func (s OrderStatus) IsValid() bool {
	switch s {
	case OrderStatusPending, OrderStatusDelivered:
		return true
	}
	return false
}

// PaymentMethodCOD is the only supported payment method (cash on delivery)
const PaymentMethodCOD = "COD"

// OrderItem is a line item within an order.
// Product name and unit price are snapshots taken at checkout.
type OrderItem struct {
	shared.BaseEntity
	OrderID     uuid.UUID       `gorm:"type:uuid;not null;index"`
	ProductID   uuid.UUID       `gorm:"type:uuid;not null"`
	ProductName string          `gorm:"type:varchar(100);not null"`
	Size        string          `gorm:"type:varchar(10);not null"`
	Quantity    int             `gorm:"not null"`
	UnitPrice   decimal.Decimal `gorm:"type:decimal(18,2);not null"`
	Amount      decimal.Decimal `gorm:"type:decimal(18,2);not null"`
}

// TableName returns the table name for GORM
func (OrderItem) TableName() string {
	return "order_items"
}

// NewOrderItem creates a new order item with a computed line amount
func NewOrderItem(productID uuid.UUID, productName, size string, quantity int, unitPrice decimal.Decimal) (*OrderItem, error) {
	if productID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_PRODUCT", "Product is required")
	}
	if size == "" {
		return nil, shared.NewDomainError("INVALID_SIZE", "Size is required")
	}
	if quantity < 1 {
		return nil, shared.NewDomainError("INVALID_QUANTITY", "Quantity must be at least 1")
	}
	if unitPrice.IsNegative() {
		return nil, shared.NewDomainError("INVALID_PRICE", "Unit price cannot be negative")
	}

	qty := decimal.NewFromInt(int64(quantity))
	return &OrderItem{
		BaseEntity:  shared.NewBaseEntity(),
		ProductID:   productID,
		ProductName: productName,
		Size:        size,
		Quantity:    quantity,
		UnitPrice:   unitPrice,
		Amount:      unitPrice.Mul(qty),
	}, nil
}

// Order is a customer purchase placed through the storefront
type Order struct {
	shared.BaseEntity
	Code            string          `gorm:"type:varchar(40);not null;uniqueIndex"`
	CustomerName    string          `gorm:"type:varchar(100);not null"`
	PhoneNumber     string          `gorm:"type:varchar(30);not null"`
	DeliveryAddress string          `gorm:"type:text;not null"`
	Items           []OrderItem     `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
	TotalAmount     decimal.Decimal `gorm:"type:decimal(18,2);not null"`
	Status          OrderStatus     `gorm:"type:varchar(20);not null;default:'pending'"`
	PaymentMethod   string          `gorm:"type:varchar(20);not null"`
}

// TableName returns the table name for GORM
func (Order) TableName() string {
	return "orders"
}

// NewOrder creates a new pending cash-on-delivery order.
// The total amount is computed from the line items.
func NewOrder(code, customerName, phoneNumber, deliveryAddress string, items []OrderItem) (*Order, error) {
	customerName = strings.TrimSpace(customerName)
	phoneNumber = strings.TrimSpace(phoneNumber)
	deliveryAddress = strings.TrimSpace(deliveryAddress)

	if code == "" {
		return nil, shared.NewDomainError("INVALID_CODE", "Order code is required")
	}
	if customerName == "" {
		return nil, shared.NewDomainError("INVALID_CUSTOMER", "Customer name is required")
	}
	if phoneNumber == "" {
		return nil, shared.NewDomainError("INVALID_PHONE", "Phone number is required")
	}
	if deliveryAddress == "" {
		return nil, shared.NewDomainError("INVALID_ADDRESS", "Delivery address is required")
	}
	if len(items) == 0 {
		return nil, shared.NewDomainError("INVALID_ITEMS", "Order must contain at least one item")
	}

	o := &Order{
		BaseEntity:      shared.NewBaseEntity(),
		Code:            code,
		CustomerName:    customerName,
		PhoneNumber:     phoneNumber,
		DeliveryAddress: deliveryAddress,
		Status:          OrderStatusPending,
		PaymentMethod:   PaymentMethodCOD,
	}

	total := decimal.Zero
	for i := range items {
		items[i].OrderID = o.ID
		total = total.Add(items[i].Amount)
	}
	o.Items = items
	o.TotalAmount = total

	return o, nil
}

// UpdateStatus overwrites the order status with a valid value
func (o *Order) UpdateStatus(status OrderStatus) error {
	if !status.IsValid() {
		return shared.NewDomainError("INVALID_STATUS", "Status must be 'pending' or 'delivered'")
	}
	o.Status = status
	o.UpdatedAt = time.Now()
	return nil
}

const codeSuffixLength = 9
const codeSuffixCharset = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"

// NewOrderCode generates a human-readable order code of the form
// ORD-<unix millis>-<9 random base36 chars>. Callers must still check
// uniqueness against storage before use.
func NewOrderCode() string {
	suffix := make([]byte, codeSuffixLength)
	random := make([]byte, codeSuffixLength)
	if _, err := rand.Read(random); err != nil {
		// Extremely unlikely; fall back to the entity ID charset source
		copy(random, []byte(uuid.New().String()))
	}
	for i := range suffix {
		suffix[i] = codeSuffixCharset[int(random[i])%len(codeSuffixCharset)]
	}
	return fmt.Sprintf("ORD-%d-%s", time.Now().UnixMilli(), string(suffix))
}
