package order

import (
	"regexp"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tshirt-brand/backend/internal/domain/shared"
)

func newTestItem(t *testing.T, quantity int, price float64) OrderItem {
	t.Helper()
	item, err := NewOrderItem(uuid.New(), "Logo Tee", "M", quantity, decimal.NewFromFloat(price))
	require.NoError(t, err)
	return *item
}

func TestNewOrderItem(t *testing.T) {
	t.Run("computes line amount", func(t *testing.T) {
		item, err := NewOrderItem(uuid.New(), "Logo Tee", "L", 3, decimal.NewFromFloat(19.99))

		require.NoError(t, err)
		assert.True(t, item.Amount.Equal(decimal.NewFromFloat(59.97)))
	})

	t.Run("rejects zero quantity", func(t *testing.T) {
		_, err := NewOrderItem(uuid.New(), "Logo Tee", "L", 0, decimal.NewFromInt(10))

		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "INVALID_QUANTITY", domainErr.Code)
	})

	t.Run("rejects missing size", func(t *testing.T) {
		_, err := NewOrderItem(uuid.New(), "Logo Tee", "", 1, decimal.NewFromInt(10))

		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "INVALID_SIZE", domainErr.Code)
	})
}

func TestNewOrder(t *testing.T) {
	t.Run("creates pending COD order with computed total", func(t *testing.T) {
		items := []OrderItem{newTestItem(t, 2, 19.99), newTestItem(t, 1, 25.00)}

		o, err := NewOrder(NewOrderCode(), "Jordan", "+8801700000000", "12 Mirpur Rd, Dhaka", items)

		require.NoError(t, err)
		assert.Equal(t, OrderStatusPending, o.Status)
		assert.Equal(t, PaymentMethodCOD, o.PaymentMethod)
		assert.True(t, o.TotalAmount.Equal(decimal.NewFromFloat(64.98)))
		for _, item := range o.Items {
			assert.Equal(t, o.ID, item.OrderID)
		}
	})

	t.Run("rejects empty items", func(t *testing.T) {
		_, err := NewOrder(NewOrderCode(), "Jordan", "+880170", "Dhaka", nil)

		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "INVALID_ITEMS", domainErr.Code)
	})

	t.Run("rejects blank customer fields", func(t *testing.T) {
		items := []OrderItem{newTestItem(t, 1, 10)}

		_, err := NewOrder(NewOrderCode(), "  ", "+880170", "Dhaka", items)
		assert.Error(t, err)

		_, err = NewOrder(NewOrderCode(), "Jordan", "", "Dhaka", items)
		assert.Error(t, err)

		_, err = NewOrder(NewOrderCode(), "Jordan", "+880170", "", items)
		assert.Error(t, err)
	})
}

func TestOrder_UpdateStatus(t *testing.T) {
	items := []OrderItem{newTestItem(t, 1, 10)}
	o, err := NewOrder(NewOrderCode(), "Jordan", "+880170", "Dhaka", items)
	require.NoError(t, err)

	t.Run("accepts delivered", func(t *testing.T) {
		require.NoError(t, o.UpdateStatus(OrderStatusDelivered))
		assert.Equal(t, OrderStatusDelivered, o.Status)
	})

	t.Run("rejects unknown status", func(t *testing.T) {
		err := o.UpdateStatus("shipped")

		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "INVALID_STATUS", domainErr.Code)
		assert.Equal(t, OrderStatusDelivered, o.Status)
	})
}

func TestNewOrderCode(t *testing.T) {
	pattern := regexp.MustCompile(`^ORD-\d{13,}-[0-9A-Z]{9}$`)

	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		code := NewOrderCode()
		assert.Regexp(t, pattern, code)
		assert.False(t, seen[code], "generated duplicate code %s", code)
		seen[code] = true
	}
}
