package identity

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/tshirt-brand/backend/internal/domain/identity"
	"github.com/tshirt-brand/backend/internal/domain/shared"
	"github.com/tshirt-brand/backend/internal/infrastructure/auth"
	"go.uber.org/zap"
)

// LoginRequest contains admin login input
type LoginRequest struct {
	Email    string
	Password string
}

// LoginResponse carries the issued token and admin identity
type LoginResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expiresAt"`
	AdminID   uuid.UUID `json:"adminId"`
	Email     string    `json:"email"`
}

// AuthService handles admin authentication
type AuthService struct {
	adminRepo  identity.AdminRepository
	jwtService *auth.JWTService
	logger     *zap.Logger
}

// NewAuthService creates a new AuthService
func NewAuthService(adminRepo identity.AdminRepository, jwtService *auth.JWTService, logger *zap.Logger) *AuthService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AuthService{
		adminRepo:  adminRepo,
		jwtService: jwtService,
		logger:     logger,
	}
}

// Login verifies admin credentials and issues a JWT.
// Unknown email and wrong password produce the same error.
func (s *AuthService) Login(ctx context.Context, req LoginRequest) (*LoginResponse, error) {
	admin, err := s.adminRepo.FindByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			s.logger.Warn("Login attempt for unknown admin", zap.String("email", req.Email))
			return nil, invalidCredentials()
		}
		return nil, err
	}

	if !admin.VerifyPassword(req.Password) {
		s.logger.Warn("Login attempt with wrong password", zap.String("email", admin.Email))
		return nil, invalidCredentials()
	}

	token, expiresAt, err := s.jwtService.GenerateToken(admin.ID, admin.Email)
	if err != nil {
		return nil, err
	}

	s.logger.Info("Admin logged in", zap.String("email", admin.Email))

	return &LoginResponse{
		Token:     token,
		ExpiresAt: expiresAt,
		AdminID:   admin.ID,
		Email:     admin.Email,
	}, nil
}

func invalidCredentials() error {
	return shared.NewDomainError("INVALID_CREDENTIALS", "Invalid email or password")
}
