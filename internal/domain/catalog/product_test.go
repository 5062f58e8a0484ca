package catalog

import (
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tshirt-brand/backend/internal/domain/shared"
)

func TestNewProduct(t *testing.T) {
	categoryID := uuid.New()

	t.Run("creates product with explicit sizes", func(t *testing.T) {
		product, err := NewProduct("Logo Tee", "Classic fit", decimal.NewFromFloat(19.99), categoryID,
			[]string{"s", "M"}, []string{"/uploads/a.jpg"}, 10)

		require.NoError(t, err)
		assert.Equal(t, "Logo Tee", product.Name)
		assert.Equal(t, StringList{"S", "M"}, product.Sizes)
		assert.Equal(t, 10, product.Stock)
		assert.True(t, product.Price.Equal(decimal.NewFromFloat(19.99)))
	})

	t.Run("defaults to all sizes when none given", func(t *testing.T) {
		product, err := NewProduct("Logo Tee", "", decimal.NewFromInt(20), categoryID, nil, nil, 0)

		require.NoError(t, err)
		assert.Equal(t, StringList{"S", "M", "L", "XL"}, product.Sizes)
		assert.Equal(t, StringList{}, product.Images)
	})

	t.Run("rejects unknown size", func(t *testing.T) {
		_, err := NewProduct("Logo Tee", "", decimal.NewFromInt(20), categoryID, []string{"XXL"}, nil, 0)

		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "INVALID_SIZE", domainErr.Code)
	})

	t.Run("rejects negative price", func(t *testing.T) {
		_, err := NewProduct("Logo Tee", "", decimal.NewFromInt(-1), categoryID, nil, nil, 0)

		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "INVALID_PRICE", domainErr.Code)
	})

	t.Run("rejects missing category", func(t *testing.T) {
		_, err := NewProduct("Logo Tee", "", decimal.NewFromInt(20), uuid.Nil, nil, nil, 0)

		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "INVALID_CATEGORY", domainErr.Code)
	})

	t.Run("rejects description over 200 characters", func(t *testing.T) {
		_, err := NewProduct("Logo Tee", strings.Repeat("d", 201), decimal.NewFromInt(20), categoryID, nil, nil, 0)

		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "INVALID_DESCRIPTION", domainErr.Code)
	})

	t.Run("rejects more than three images", func(t *testing.T) {
		images := []string{"/a.jpg", "/b.jpg", "/c.jpg", "/d.jpg"}
		_, err := NewProduct("Logo Tee", "", decimal.NewFromInt(20), categoryID, nil, images, 0)

		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "INVALID_IMAGES", domainErr.Code)
	})
}

func TestProduct_OffersSize(t *testing.T) {
	product, err := NewProduct("Logo Tee", "", decimal.NewFromInt(20), uuid.New(), []string{"M", "L"}, nil, 0)
	require.NoError(t, err)

	assert.True(t, product.OffersSize("M"))
	assert.False(t, product.OffersSize("S"))
}

func TestStringList_Roundtrip(t *testing.T) {
	value, err := StringList{"S", "M"}.Value()
	require.NoError(t, err)

	var scanned StringList
	require.NoError(t, scanned.Scan(value))
	assert.Equal(t, StringList{"S", "M"}, scanned)

	var empty StringList
	require.NoError(t, empty.Scan(nil))
	assert.Equal(t, StringList{}, empty)
}
