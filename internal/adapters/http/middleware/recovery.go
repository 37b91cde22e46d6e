package middleware

import (
	"fmt"
	"log/slog"
	"net/http"
	"runtime/debug"

	"github.com/gin-gonic/gin"

	"github.com/jsamuelsen/content-api/internal/adapters/http/failure"
	"github.com/jsamuelsen/content-api/internal/platform/logging"
)

// PanicError carries a recovered panic value through the failure mapper.
type PanicError struct {
	Value any
}

func (e *PanicError) Error() string {
	return fmt.Sprintf("panic: %v", e.Value)
}

// Recovery returns middleware that recovers from panics.
// On panic, it:
//   - Logs the panic value with full stack trace at ERROR level
//   - Routes the panic through the mapper as an unclassified failure
//     (500 Internal Server Error, empty body)
//
// http.ErrAbortHandler is re-panicked so net/http aborts the connection.
//
// This middleware should be applied first in the chain to catch panics
// from all subsequent handlers and middleware.
func Recovery(mapper *failure.Mapper) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			r := recover()
			if r == nil {
				return
			}

			if r == http.ErrAbortHandler {
				panic(r)
			}

			logging.FromContext(c.Request.Context()).Error("panic recovered",
				slog.Any("panic", r),
				slog.String("stack", string(debug.Stack())),
				slog.String("path", c.Request.URL.Path),
				slog.String("method", c.Request.Method),
			)

			if c.Writer.Written() {
				c.Abort()
				return
			}

			mapper.Respond(c, &PanicError{Value: r})
		}()

		c.Next()
	}
}
