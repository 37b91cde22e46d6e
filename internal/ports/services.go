// Package ports defines interfaces between the HTTP adapter and the
// application layer. Handlers depend on these contracts, not on concrete
// services, so they can be tested with mocks.
//
// Port design:
//   - Context as first parameter for request-scoped logging and deadlines
//   - Return domain types, never HTTP DTOs
//   - Failures are domain.Failure values (UserNotFoundError, ContentNotAllowedError)
package ports

import (
	"context"

	"github.com/jsamuelsen/content-api/internal/domain"
)

// UserService looks up users.
type UserService interface {
	// GetUser returns the user with the given username.
	// Returns *domain.UserNotFoundError if no such user exists.
	GetUser(ctx context.Context, username string) (*domain.User, error)
}

// PostService creates posts after checking their content.
type PostService interface {
	// CreatePost validates the post content and accepts the post.
	// Returns *domain.ContentNotAllowedError if the content has denylisted terms.
	CreatePost(ctx context.Context, post *domain.Post) error
}
