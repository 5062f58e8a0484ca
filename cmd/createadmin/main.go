package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/tshirt-brand/backend/internal/domain/identity"
	"github.com/tshirt-brand/backend/internal/infrastructure/config"
	"github.com/tshirt-brand/backend/internal/infrastructure/logger"
	"github.com/tshirt-brand/backend/internal/infrastructure/persistence"
	"go.uber.org/zap"
)

// createadmin provisions a back office account. Admins cannot register
// through the API, so this tool is the only way to create one.
func main() {
	var (
		email    string
		password string
	)

	flag.StringVar(&email, "email", "", "Admin email address")
	flag.StringVar(&password, "password", "", "Admin password (min 8 characters)")
	flag.Parse()

	if email == "" || password == "" {
		fmt.Fprintln(os.Stderr, "Usage: createadmin -email <email> -password <password>")
		os.Exit(1)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.New(&logger.Config{
		Level:  cfg.Log.Level,
		Format: "console",
		Output: "stdout",
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer func() {
		_ = logger.Sync(log)
	}()

	db, err := persistence.NewDatabase(&cfg.Database)
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer func() {
		_ = db.Close()
	}()

	admin, err := identity.NewAdmin(email, password)
	if err != nil {
		log.Fatal("Invalid admin credentials", zap.Error(err))
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	adminRepo := persistence.NewGormAdminRepository(db.DB)

	exists, err := adminRepo.ExistsByEmail(ctx, admin.Email)
	if err != nil {
		log.Fatal("Failed to check existing admin", zap.Error(err))
	}
	if exists {
		log.Fatal("Admin already exists", zap.String("email", admin.Email))
	}

	if err := adminRepo.Save(ctx, admin); err != nil {
		log.Fatal("Failed to save admin", zap.Error(err))
	}

	log.Info("Admin created", zap.String("email", admin.Email), zap.String("id", admin.ID.String()))
}
