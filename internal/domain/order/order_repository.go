package order

import (
	"context"

	"github.com/google/uuid"
	"github.com/tshirt-brand/backend/internal/domain/shared"
)

// OrderRepository defines the persistence operations for orders
type OrderRepository interface {
	// FindByID finds an order with its items by ID
	FindByID(ctx context.Context, id uuid.UUID) (*Order, error)

	// FindAll finds orders with their items matching the filter
	FindAll(ctx context.Context, filter shared.Filter) ([]Order, error)

	// Save creates or updates an order together with its items
	Save(ctx context.Context, order *Order) error

	// ExistsByCode checks if an order with the given code exists
	ExistsByCode(ctx context.Context, code string) (bool, error)

	// Count counts all orders
	Count(ctx context.Context) (int64, error)

	// CountByStatus counts orders in the given status
	CountByStatus(ctx context.Context, status OrderStatus) (int64, error)
}
