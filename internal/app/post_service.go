package app

import (
	"context"
	"log/slog"

	"github.com/jsamuelsen/content-api/internal/domain"
	"github.com/jsamuelsen/content-api/internal/platform/logging"
)

// PostService accepts posts whose content passes the denylist check.
type PostService struct {
	validator *domain.ContentValidator
	logger    *slog.Logger
}

// PostServiceConfig contains configuration for the post service.
type PostServiceConfig struct {
	// Validator checks post content. Defaults to domain.DefaultContentValidator.
	Validator *domain.ContentValidator
	Logger    *slog.Logger
}

// NewPostService creates a new post service with the provided dependencies.
func NewPostService(cfg PostServiceConfig) *PostService {
	validator := cfg.Validator
	if validator == nil {
		validator = domain.DefaultContentValidator()
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &PostService{
		validator: validator,
		logger:    logger.With(slog.String("component", "app.PostService")),
	}
}

// CreatePost checks the post content and accepts the post if it is clean.
// Nothing is stored; acceptance is the only observable effect.
func (s *PostService) CreatePost(ctx context.Context, post *domain.Post) error {
	logger := logging.FromContextOr(ctx, s.logger).With(
		slog.String("owner", post.Owner),
		slog.Int64("post_id", post.ID),
	)

	if violations := s.validator.Validate(post.Content); len(violations) > 0 {
		logger.InfoContext(ctx, "post rejected",
			slog.Int("violations", len(violations)),
		)

		return domain.NewContentNotAllowedError(violations)
	}

	logger.InfoContext(ctx, "post accepted")

	return nil
}
