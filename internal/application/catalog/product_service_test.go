package catalog

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/tshirt-brand/backend/internal/domain/catalog"
	"github.com/tshirt-brand/backend/internal/domain/shared"
)

func newTestProduct(t *testing.T, name string, categoryID uuid.UUID) *catalog.Product {
	t.Helper()
	product, err := catalog.NewProduct(name, "", decimal.NewFromFloat(19.99), categoryID, nil, nil, 10)
	require.NoError(t, err)
	return product
}

func TestProductService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("creates product", func(t *testing.T) {
		productRepo := new(MockProductRepository)
		categoryRepo := new(MockCategoryRepository)
		service := NewProductService(productRepo, categoryRepo)

		category := newTestCategory(t, "Tees")
		categoryRepo.On("FindByID", ctx, category.ID).Return(category, nil)
		productRepo.On("Save", ctx, mock.AnythingOfType("*catalog.Product")).Return(nil)

		resp, err := service.Create(ctx, CreateProductRequest{
			Name:       "Classic Tee",
			Price:      decimal.NewFromFloat(24.99),
			CategoryID: category.ID,
			Sizes:      []string{"M", "L"},
			Stock:      5,
		})

		require.NoError(t, err)
		assert.Equal(t, "Classic Tee", resp.Name)
		assert.Equal(t, []string{"M", "L"}, resp.Sizes)
		productRepo.AssertExpectations(t)
	})

	t.Run("rejects unknown category", func(t *testing.T) {
		productRepo := new(MockProductRepository)
		categoryRepo := new(MockCategoryRepository)
		service := NewProductService(productRepo, categoryRepo)

		categoryID := uuid.New()
		categoryRepo.On("FindByID", ctx, categoryID).Return(nil, shared.ErrNotFound)

		_, err := service.Create(ctx, CreateProductRequest{
			Name:       "Classic Tee",
			Price:      decimal.NewFromFloat(24.99),
			CategoryID: categoryID,
		})

		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "CATEGORY_NOT_FOUND", domainErr.Code)
		productRepo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})

	t.Run("rejects missing category", func(t *testing.T) {
		productRepo := new(MockProductRepository)
		categoryRepo := new(MockCategoryRepository)
		service := NewProductService(productRepo, categoryRepo)

		_, err := service.Create(ctx, CreateProductRequest{
			Name:  "Classic Tee",
			Price: decimal.NewFromFloat(24.99),
		})

		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "INVALID_CATEGORY", domainErr.Code)
	})
}

func TestProductService_List(t *testing.T) {
	ctx := context.Background()
	productRepo := new(MockProductRepository)
	categoryRepo := new(MockCategoryRepository)
	service := NewProductService(productRepo, categoryRepo)

	categoryID := uuid.New()
	minPrice := decimal.NewFromInt(10)
	products := []catalog.Product{*newTestProduct(t, "Classic Tee", categoryID)}

	productRepo.On("FindAll", ctx, catalog.ProductListFilter{
		CategoryID: &categoryID,
		Search:     "tee",
		MinPrice:   &minPrice,
		SortBy:     catalog.SortPriceLow,
	}).Return(products, nil)

	resp, err := service.List(ctx, ProductListFilter{
		CategoryID: &categoryID,
		Search:     "tee",
		MinPrice:   &minPrice,
		SortBy:     catalog.SortPriceLow,
	})

	require.NoError(t, err)
	require.Len(t, resp, 1)
	assert.Equal(t, "Classic Tee", resp[0].Name)
	productRepo.AssertExpectations(t)
}

func TestProductService_Update(t *testing.T) {
	ctx := context.Background()

	t.Run("updates fields in place", func(t *testing.T) {
		productRepo := new(MockProductRepository)
		categoryRepo := new(MockCategoryRepository)
		service := NewProductService(productRepo, categoryRepo)

		categoryID := uuid.New()
		existing := newTestProduct(t, "Classic Tee", categoryID)
		productRepo.On("FindByID", ctx, existing.ID).Return(existing, nil)
		productRepo.On("Save", ctx, existing).Return(nil)

		resp, err := service.Update(ctx, existing.ID, UpdateProductRequest{
			Name:       "Premium Tee",
			Price:      decimal.NewFromFloat(29.99),
			CategoryID: categoryID,
			Stock:      2,
		})

		require.NoError(t, err)
		assert.Equal(t, "Premium Tee", resp.Name)
		assert.Equal(t, 2, resp.Stock)
		categoryRepo.AssertNotCalled(t, "FindByID", mock.Anything, mock.Anything)
	})

	t.Run("verifies new category on move", func(t *testing.T) {
		productRepo := new(MockProductRepository)
		categoryRepo := new(MockCategoryRepository)
		service := NewProductService(productRepo, categoryRepo)

		existing := newTestProduct(t, "Classic Tee", uuid.New())
		newCategoryID := uuid.New()
		productRepo.On("FindByID", ctx, existing.ID).Return(existing, nil)
		categoryRepo.On("FindByID", ctx, newCategoryID).Return(nil, shared.ErrNotFound)

		_, err := service.Update(ctx, existing.ID, UpdateProductRequest{
			Name:       "Classic Tee",
			Price:      existing.Price,
			CategoryID: newCategoryID,
		})

		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "CATEGORY_NOT_FOUND", domainErr.Code)
	})
}

func TestProductService_Delete(t *testing.T) {
	ctx := context.Background()
	productRepo := new(MockProductRepository)
	categoryRepo := new(MockCategoryRepository)
	service := NewProductService(productRepo, categoryRepo)

	id := uuid.New()
	productRepo.On("Delete", ctx, id).Return(nil)

	require.NoError(t, service.Delete(ctx, id))
	productRepo.AssertExpectations(t)
}
