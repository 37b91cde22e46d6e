// Package failure translates failures raised by handlers into HTTP
// responses. It is the only place that inspects failure types.
//
//	*domain.UserNotFoundError      -> 404 {"errors":["User `mj` not found"]}
//	*domain.ContentNotAllowedError -> 400 {"errors":["<term> <reason>", ...]}
//	*dto.BindingError              -> 400 {"errors":[<binding messages>]}
//	anything else                  -> 500, no body
package failure

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/jsamuelsen/content-api/internal/adapters/http/dto"
	"github.com/jsamuelsen/content-api/internal/domain"
	"github.com/jsamuelsen/content-api/internal/platform/logging"
)

// Kind is the classification of a failure.
type Kind string

const (
	KindUserNotFound      Kind = "user_not_found"
	KindContentNotAllowed Kind = "content_not_allowed"
	KindBadRequest        Kind = "bad_request"
	KindUnclassified      Kind = "unclassified"
)

// Status returns the HTTP status for the kind.
func (k Kind) Status() int {
	switch k {
	case KindUserNotFound:
		return http.StatusNotFound
	case KindContentNotAllowed, KindBadRequest:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// classified is the outcome of inspecting one failure.
type classified struct {
	kind     Kind
	typeName string
	messages []string
}

// Classify returns the kind of err. Wrapped failures classify like the
// failure they wrap.
func Classify(err error) Kind {
	return classify(err).kind
}

// classify never calls methods on a nil failure pointer; typed nils are
// unclassified.
func classify(err error) classified {
	if f, ok := domain.AsFailure(err); ok {
		switch f := f.(type) {
		case *domain.UserNotFoundError:
			if f != nil {
				return classified{kind: KindUserNotFound, typeName: "UserNotFound", messages: f.Messages()}
			}
		case *domain.ContentNotAllowedError:
			if f != nil {
				msgs := f.Messages()
				if len(msgs) == 0 {
					msgs = []string{f.Error()}
				}

				return classified{kind: KindContentNotAllowed, typeName: "ContentNotAllowed", messages: msgs}
			}
		}
	}

	var bindErr *dto.BindingError
	if errors.As(err, &bindErr) && bindErr != nil && len(bindErr.Messages) > 0 {
		return classified{kind: KindBadRequest, typeName: "BindingFailure", messages: bindErr.Messages}
	}

	return classified{kind: KindUnclassified, typeName: fmt.Sprintf("%T", err), messages: []string{err.Error()}}
}

// Mapper is the central failure-to-response translator.
// It holds no per-request state and is safe for concurrent use.
type Mapper struct {
	logger *slog.Logger
}

// NewMapper creates a mapper. The logger is used when the request context
// carries no request-scoped logger.
func NewMapper(logger *slog.Logger) *Mapper {
	if logger == nil {
		logger = slog.Default()
	}

	return &Mapper{logger: logger}
}

// Map translates err into a status code and error body. The body is nil for
// unclassified failures, whose messages are logged but never returned to
// the client. A nil err maps to 200 with no body and is not logged.
//
// Every failure produces one error-level log entry; unclassified failures
// also produce a warning naming the unrecognized type.
func (m *Mapper) Map(ctx context.Context, err error) (int, *dto.APIError) {
	if err == nil {
		return http.StatusOK, nil
	}

	c := classify(err)
	logger := logging.FromContextOr(ctx, m.logger)

	logger.ErrorContext(ctx, "handling "+c.typeName,
		slog.String("failure_type", c.typeName),
		slog.String("failure_kind", string(c.kind)),
		slog.Any("messages", c.messages),
	)

	if c.kind == KindUnclassified {
		logger.WarnContext(ctx, "unknown failure type",
			slog.String("failure_type", c.typeName),
		)

		return c.kind.Status(), nil
	}

	return c.kind.Status(), dto.NewAPIError(c.messages...)
}
