package handler

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	catalogapp "github.com/tshirt-brand/backend/internal/application/catalog"
	"github.com/tshirt-brand/backend/internal/domain/catalog"
	"github.com/tshirt-brand/backend/internal/interfaces/http/dto"
	"github.com/tshirt-brand/backend/internal/interfaces/http/middleware"
)

func newProductRouter(productRepo *mockProductRepo, categoryRepo *mockCategoryRepo) *gin.Engine {
	gin.SetMode(gin.TestMode)
	middleware.SetupValidator()

	service := catalogapp.NewProductService(productRepo, categoryRepo)
	h := NewProductHandler(service)

	r := gin.New()
	r.GET("/api/products", h.List)
	r.GET("/api/products/:id", h.Get)
	r.POST("/api/products", h.Create)
	r.PUT("/api/products/:id", h.Update)
	r.DELETE("/api/products/:id", h.Delete)
	return r
}

func TestProductHandler_Create(t *testing.T) {
	t.Run("creates product", func(t *testing.T) {
		productRepo := new(mockProductRepo)
		categoryRepo := new(mockCategoryRepo)
		router := newProductRouter(productRepo, categoryRepo)

		category, err := catalog.NewCategory("Tees", "")
		require.NoError(t, err)
		categoryRepo.On("FindByID", mock.Anything, category.ID).Return(category, nil)
		productRepo.On("Save", mock.Anything, mock.AnythingOfType("*catalog.Product")).Return(nil)

		w := doJSON(t, router, http.MethodPost, "/api/products", gin.H{
			"name":     "Plain Tee",
			"price":    19.99,
			"category": category.ID.String(),
			"sizes":    []string{"S", "M"},
		})

		assert.Equal(t, http.StatusCreated, w.Code)
		resp := decodeResponse(t, w)
		assert.True(t, resp.Success)
	})

	t.Run("accepts zero price", func(t *testing.T) {
		productRepo := new(mockProductRepo)
		categoryRepo := new(mockCategoryRepo)
		router := newProductRouter(productRepo, categoryRepo)

		category, err := catalog.NewCategory("Promos", "")
		require.NoError(t, err)
		categoryRepo.On("FindByID", mock.Anything, category.ID).Return(category, nil)
		productRepo.On("Save", mock.Anything, mock.AnythingOfType("*catalog.Product")).Return(nil)

		w := doJSON(t, router, http.MethodPost, "/api/products", gin.H{
			"name":     "Giveaway Tee",
			"price":    0,
			"category": category.ID.String(),
		})

		assert.Equal(t, http.StatusCreated, w.Code)
		resp := decodeResponse(t, w)
		assert.True(t, resp.Success)
	})

	t.Run("rejects negative price", func(t *testing.T) {
		router := newProductRouter(new(mockProductRepo), new(mockCategoryRepo))

		w := doJSON(t, router, http.MethodPost, "/api/products", gin.H{
			"name":     "Broken Tee",
			"price":    -1,
			"category": "00000000-0000-0000-0000-000000000001",
		})

		assert.Equal(t, http.StatusBadRequest, w.Code)
		resp := decodeResponse(t, w)
		require.NotNil(t, resp.Error)
		assert.Equal(t, dto.ErrCodeValidation, resp.Error.Code)
	})

	t.Run("rejects missing price", func(t *testing.T) {
		router := newProductRouter(new(mockProductRepo), new(mockCategoryRepo))

		w := doJSON(t, router, http.MethodPost, "/api/products", gin.H{
			"name":     "No Price Tee",
			"category": "00000000-0000-0000-0000-000000000001",
		})

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestProductHandler_Update(t *testing.T) {
	t.Run("updates price down to zero", func(t *testing.T) {
		productRepo := new(mockProductRepo)
		categoryRepo := new(mockCategoryRepo)
		router := newProductRouter(productRepo, categoryRepo)

		category, err := catalog.NewCategory("Promos", "")
		require.NoError(t, err)
		product, err := catalog.NewProduct("Tee", "", decimal.NewFromFloat(19.99), category.ID, nil, nil, 5)
		require.NoError(t, err)

		productRepo.On("FindByID", mock.Anything, product.ID).Return(product, nil)
		productRepo.On("Save", mock.Anything, mock.AnythingOfType("*catalog.Product")).Return(nil)

		w := doJSON(t, router, http.MethodPut, "/api/products/"+product.ID.String(), gin.H{
			"name":     "Tee",
			"price":    0,
			"category": category.ID.String(),
		})

		assert.Equal(t, http.StatusOK, w.Code)
		assert.True(t, product.Price.IsZero())
	})
}
