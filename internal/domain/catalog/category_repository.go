package catalog

import (
	"context"

	"github.com/google/uuid"
	"github.com/tshirt-brand/backend/internal/domain/shared"
)

// CategoryRepository defines the persistence operations for categories
type CategoryRepository interface {
	// FindByID finds a category by its ID
	FindByID(ctx context.Context, id uuid.UUID) (*Category, error)

	// FindAll finds all categories matching the filter
	FindAll(ctx context.Context, filter shared.Filter) ([]Category, error)

	// Save creates or updates a category.
	// Returns shared.ErrAlreadyExists when the unique name constraint is violated.
	Save(ctx context.Context, category *Category) error

	// Delete deletes a category
	Delete(ctx context.Context, id uuid.UUID) error

	// ExistsByName checks if a category with the given name exists
	ExistsByName(ctx context.Context, name string) (bool, error)

	// ExistsByNameExcluding checks name uniqueness while ignoring one category,
	// used when renaming
	ExistsByNameExcluding(ctx context.Context, name string, excludeID uuid.UUID) (bool, error)
}
