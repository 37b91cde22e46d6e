package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jsamuelsen/content-api/internal/adapters/http/dto"
	"github.com/jsamuelsen/content-api/internal/ports"
)

// UserHandler serves the user resource.
type UserHandler struct {
	service ports.UserService
}

// NewUserHandler creates a user handler.
func NewUserHandler(service ports.UserService) *UserHandler {
	return &UserHandler{service: service}
}

// GetUser handles GET /users/:username.
// Failures are recorded with c.Error and written by the error middleware.
func (h *UserHandler) GetUser(c *gin.Context) {
	user, err := h.service.GetUser(c.Request.Context(), c.Param("username"))
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, dto.NewUserResponse(user))
}

// RegisterRoutes registers the user routes on the given router group.
func (h *UserHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/users/:username", h.GetUser)
}
