package config

import (
	"errors"
	"fmt"
	"strings"
	"unicode"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate validates the configuration and returns an error if invalid.
// The service refuses to start with an invalid configuration.
func (c *Config) Validate() error {
	var msgs []string

	if err := validate.Struct(c); err != nil {
		var validationErrs validator.ValidationErrors
		if !errors.As(err, &validationErrs) {
			return err
		}

		for _, fe := range validationErrs {
			msgs = append(msgs, formatFieldError(fe))
		}
	}

	msgs = append(msgs, c.Content.validateTerms()...)

	if len(msgs) == 0 {
		return nil
	}

	return fmt.Errorf("config validation failed:\n  %s", strings.Join(msgs, "\n  "))
}

// validateTerms rejects terms that can never match a whitespace-split token.
func (c ContentConfig) validateTerms() []string {
	var msgs []string

	for i, term := range c.Denylist {
		if strings.ContainsFunc(term, unicode.IsSpace) {
			msgs = append(msgs, fmt.Sprintf("content.denylist[%d] must not contain whitespace", i))
		}
	}

	return msgs
}

func formatFieldError(fe validator.FieldError) string {
	field := formatFieldPath(fe.Namespace())

	switch fe.Tag() {
	case "required":
		return field + " is required"
	case "required_if":
		return fmt.Sprintf("%s is required when %s", field, fe.Param())
	case "min":
		return fmt.Sprintf("%s must be at least %s", field, fe.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s", field, fe.Param())
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", field, fe.Param())
	default:
		return fmt.Sprintf("%s failed validation: %s", field, fe.Tag())
	}
}

// formatFieldPath converts "Config.Server.Port" to "server.port".
func formatFieldPath(namespace string) string {
	parts := strings.Split(namespace, ".")
	if len(parts) > 1 {
		parts = parts[1:]
	}

	return strings.ToLower(strings.Join(parts, "."))
}
