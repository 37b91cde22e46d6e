// Package app contains application services that orchestrate use cases.
// Services raise domain failures and never build HTTP responses;
// translation to status codes is done once, in the HTTP adapter.
package app

import (
	"context"
	"log/slog"

	"github.com/jsamuelsen/content-api/internal/domain"
	"github.com/jsamuelsen/content-api/internal/platform/logging"
)

// UserService serves user lookups.
// There is no user store, so every lookup reports the user as missing.
type UserService struct {
	logger *slog.Logger
}

// UserServiceConfig contains configuration for the user service.
type UserServiceConfig struct {
	Logger *slog.Logger
}

// NewUserService creates a new user service.
func NewUserService(cfg UserServiceConfig) *UserService {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &UserService{
		logger: logger.With(slog.String("component", "app.UserService")),
	}
}

// GetUser looks up a user by username.
func (s *UserService) GetUser(ctx context.Context, username string) (*domain.User, error) {
	logging.FromContextOr(ctx, s.logger).DebugContext(ctx, "looking up user",
		slog.String("username", username),
	)

	return nil, domain.NewUserNotFoundError(username)
}
