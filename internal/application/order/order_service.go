package order

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/tshirt-brand/backend/internal/domain/catalog"
	"github.com/tshirt-brand/backend/internal/domain/order"
	"github.com/tshirt-brand/backend/internal/domain/shared"
	"go.uber.org/zap"
)

// codeGenerationAttempts bounds the retry loop for order code collisions
const codeGenerationAttempts = 5

// OrderService handles order-related business operations
type OrderService struct {
	orderRepo   order.OrderRepository
	productRepo catalog.ProductRepository
	logger      *zap.Logger
}

// NewOrderService creates a new OrderService
func NewOrderService(
	orderRepo order.OrderRepository,
	productRepo catalog.ProductRepository,
	logger *zap.Logger,
) *OrderService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &OrderService{
		orderRepo:   orderRepo,
		productRepo: productRepo,
		logger:      logger,
	}
}

// Create places a new order. Prices are always taken from the catalog;
// a client-supplied price that disagrees with it is rejected.
func (s *OrderService) Create(ctx context.Context, req CreateOrderRequest) (*OrderResponse, error) {
	if len(req.Items) == 0 {
		return nil, shared.NewDomainError("INVALID_ITEMS", "Order must contain at least one item")
	}

	items := make([]order.OrderItem, 0, len(req.Items))
	for _, itemReq := range req.Items {
		product, err := s.productRepo.FindByID(ctx, itemReq.ProductID)
		if err != nil {
			if errors.Is(err, shared.ErrNotFound) {
				return nil, shared.NewDomainError("PRODUCT_NOT_FOUND", "Ordered product does not exist")
			}
			return nil, err
		}

		if !product.OffersSize(itemReq.Size) {
			return nil, shared.NewDomainError("SIZE_NOT_OFFERED", "Product is not available in size "+itemReq.Size)
		}

		if itemReq.Price != nil && !itemReq.Price.Equal(product.Price) {
			return nil, shared.NewDomainError("PRICE_MISMATCH", "Item price does not match the catalog price")
		}

		item, err := order.NewOrderItem(product.ID, product.Name, itemReq.Size, itemReq.Quantity, product.Price)
		if err != nil {
			return nil, err
		}
		items = append(items, *item)
	}

	code, err := s.generateCode(ctx)
	if err != nil {
		return nil, err
	}

	o, err := order.NewOrder(code, req.CustomerName, req.PhoneNumber, req.DeliveryAddress, items)
	if err != nil {
		return nil, err
	}

	if err := s.orderRepo.Save(ctx, o); err != nil {
		return nil, err
	}

	s.logger.Info("Order placed",
		zap.String("order_code", o.Code),
		zap.String("total_amount", o.TotalAmount.String()),
		zap.Int("item_count", len(o.Items)),
	)

	return ToOrderResponse(o), nil
}

// GetByID retrieves an order by ID
func (s *OrderService) GetByID(ctx context.Context, id uuid.UUID) (*OrderResponse, error) {
	o, err := s.orderRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return ToOrderResponse(o), nil
}

// List retrieves orders for the back office, newest first
func (s *OrderService) List(ctx context.Context, filter ListOrdersFilter) ([]OrderResponse, error) {
	domainFilter := shared.DefaultFilter()
	if filter.Status != "" {
		domainFilter.Filters["status"] = filter.Status
	}
	if filter.Page > 0 && filter.PageSize > 0 {
		domainFilter.Page = filter.Page
		domainFilter.PageSize = filter.PageSize
	}

	orders, err := s.orderRepo.FindAll(ctx, domainFilter)
	if err != nil {
		return nil, err
	}

	responses := make([]OrderResponse, len(orders))
	for i := range orders {
		responses[i] = *ToOrderResponse(&orders[i])
	}
	return responses, nil
}

// UpdateStatus overwrites an order's status
func (s *OrderService) UpdateStatus(ctx context.Context, id uuid.UUID, status string) (*OrderResponse, error) {
	o, err := s.orderRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := o.UpdateStatus(order.OrderStatus(status)); err != nil {
		return nil, err
	}

	if err := s.orderRepo.Save(ctx, o); err != nil {
		return nil, err
	}

	return ToOrderResponse(o), nil
}

// Stats returns order counters for the admin dashboard
func (s *OrderService) Stats(ctx context.Context) (*OrderStatsResponse, error) {
	total, err := s.orderRepo.Count(ctx)
	if err != nil {
		return nil, err
	}
	pending, err := s.orderRepo.CountByStatus(ctx, order.OrderStatusPending)
	if err != nil {
		return nil, err
	}
	delivered, err := s.orderRepo.CountByStatus(ctx, order.OrderStatusDelivered)
	if err != nil {
		return nil, err
	}

	return &OrderStatsResponse{
		Total:     total,
		Pending:   pending,
		Delivered: delivered,
	}, nil
}

// generateCode produces an order code that is free in storage
func (s *OrderService) generateCode(ctx context.Context) (string, error) {
	for attempt := 0; attempt < codeGenerationAttempts; attempt++ {
		code := order.NewOrderCode()
		exists, err := s.orderRepo.ExistsByCode(ctx, code)
		if err != nil {
			return "", err
		}
		if !exists {
			return code, nil
		}
		s.logger.Warn("Order code collision, retrying", zap.String("order_code", code))
	}
	return "", shared.NewDomainError("CODE_GENERATION_FAILED", "Could not generate a unique order code")
}
