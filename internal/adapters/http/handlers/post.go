package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jsamuelsen/content-api/internal/adapters/http/dto"
	"github.com/jsamuelsen/content-api/internal/ports"
)

// PostHandler serves the post resource nested under a user.
type PostHandler struct {
	service ports.PostService
}

// NewPostHandler creates a post handler.
func NewPostHandler(service ports.PostService) *PostHandler {
	return &PostHandler{service: service}
}

// CreatePost handles POST /users/:username/posts.
// The path username owns the post; ownerName in the body is ignored.
// Responds 201 with an empty body on success.
func (h *PostHandler) CreatePost(c *gin.Context) {
	var req dto.CreatePostRequest
	if err := dto.BindAndValidate(c, &req); err != nil {
		_ = c.Error(err)
		return
	}

	if err := h.service.CreatePost(c.Request.Context(), req.ToDomain(c.Param("username"))); err != nil {
		_ = c.Error(err)
		return
	}

	c.Status(http.StatusCreated)
}

// RegisterRoutes registers the post routes on the given router group.
func (h *PostHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/users/:username/posts", h.CreatePost)
}
