package app

import (
	"context"
	"errors"

	"github.com/jsamuelsen/content-api/internal/domain"
)

// ErrEmptyDenylist is reported when the content policy has no terms loaded.
var ErrEmptyDenylist = errors.New("content denylist is empty")

// ContentPolicyCheck reports readiness of the content validator.
// It fails while the denylist is empty.
type ContentPolicyCheck struct {
	validator *domain.ContentValidator
}

// NewContentPolicyCheck creates a readiness check for the validator.
func NewContentPolicyCheck(validator *domain.ContentValidator) *ContentPolicyCheck {
	return &ContentPolicyCheck{validator: validator}
}

// Name implements ports.HealthChecker.
func (c *ContentPolicyCheck) Name() string {
	return "content-policy"
}

// Check implements ports.HealthChecker.
func (c *ContentPolicyCheck) Check(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if c.validator == nil || c.validator.Terms() == 0 {
		return ErrEmptyDenylist
	}

	return nil
}
