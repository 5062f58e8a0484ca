package identity

import "context"

// AdminRepository defines the persistence operations for admins
type AdminRepository interface {
	// FindByEmail finds an admin by email
	FindByEmail(ctx context.Context, email string) (*Admin, error)

	// ExistsByEmail checks if an admin with the given email exists
	ExistsByEmail(ctx context.Context, email string) (bool, error)

	// Save creates or updates an admin
	Save(ctx context.Context, admin *Admin) error
}
