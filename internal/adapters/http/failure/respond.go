package failure

import (
	"github.com/gin-gonic/gin"

	"github.com/jsamuelsen/content-api/internal/platform/telemetry"
)

// Respond maps err, writes the response and aborts the handler chain.
// Unclassified failures are written with an empty body.
func (m *Mapper) Respond(c *gin.Context, err error) {
	status, body := m.Map(c.Request.Context(), err)
	telemetry.RecordFailure(string(Classify(err)), status)

	if body == nil {
		c.AbortWithStatus(status)
		return
	}

	c.AbortWithStatusJSON(status, body)
}
