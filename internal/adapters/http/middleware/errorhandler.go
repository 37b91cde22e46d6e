package middleware

import (
	"log/slog"

	"github.com/gin-gonic/gin"

	"github.com/jsamuelsen/content-api/internal/adapters/http/failure"
	"github.com/jsamuelsen/content-api/internal/platform/logging"
)

// ErrorHandler returns middleware that writes the response for failures
// recorded by handlers with c.Error. It runs after the rest of the chain,
// takes the last recorded failure and hands it to the mapper. Handlers
// never format failure responses themselves.
//
// If a handler already wrote a response the written response is kept; the
// failure still goes through the mapper so it is logged like any other.
func ErrorHandler(mapper *failure.Mapper) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 {
			return
		}

		err := c.Errors.Last().Err

		if c.Writer.Written() {
			mapper.Map(c.Request.Context(), err)
			logging.FromContext(c.Request.Context()).Warn("failure recorded after response was written",
				slog.String("error", err.Error()),
				slog.Int("status", c.Writer.Status()),
			)

			return
		}

		mapper.Respond(c, err)
	}
}
