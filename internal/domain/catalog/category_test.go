package catalog

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tshirt-brand/backend/internal/domain/shared"
)

func TestNewCategory(t *testing.T) {
	t.Run("creates category with trimmed fields", func(t *testing.T) {
		category, err := NewCategory("  T-Shirts  ", " Plain tees ")

		require.NoError(t, err)
		assert.Equal(t, "T-Shirts", category.Name)
		assert.Equal(t, "Plain tees", category.Description)
		assert.NotEqual(t, category.ID.String(), "00000000-0000-0000-0000-000000000000")
	})

	t.Run("rejects empty name", func(t *testing.T) {
		_, err := NewCategory("   ", "")

		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "INVALID_NAME", domainErr.Code)
	})

	t.Run("rejects name over 100 characters", func(t *testing.T) {
		_, err := NewCategory(strings.Repeat("x", 101), "")

		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "INVALID_NAME", domainErr.Code)
	})
}

func TestCategory_Update(t *testing.T) {
	category, err := NewCategory("Hoodies", "")
	require.NoError(t, err)
	createdAt := category.UpdatedAt

	t.Run("updates name and description", func(t *testing.T) {
		err := category.Update("Sweatshirts", "Warm stuff")

		require.NoError(t, err)
		assert.Equal(t, "Sweatshirts", category.Name)
		assert.Equal(t, "Warm stuff", category.Description)
		assert.True(t, !category.UpdatedAt.Before(createdAt))
	})

	t.Run("rejects empty name and keeps old value", func(t *testing.T) {
		err := category.Update("", "ignored")

		assert.Error(t, err)
		assert.Equal(t, "Sweatshirts", category.Name)
	})
}
