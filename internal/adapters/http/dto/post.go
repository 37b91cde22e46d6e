package dto

import "github.com/jsamuelsen/content-api/internal/domain"

// CreatePostRequest is the body of POST /users/{username}/posts.
type CreatePostRequest struct {
	OwnerName string `json:"ownerName"`
	ID        int64  `json:"id"`
	Content   string `json:"content"`
}

// ToDomain converts the request into a post owned by the path username.
// The body's ownerName is informational; the path decides ownership.
func (r *CreatePostRequest) ToDomain(username string) *domain.Post {
	return &domain.Post{
		Owner:   username,
		ID:      r.ID,
		Content: r.Content,
	}
}

// UserResponse is the body of a successful GET /users/{username}.
type UserResponse struct {
	Username string `json:"username"`
}

// NewUserResponse converts a domain user to its response body.
func NewUserResponse(u *domain.User) *UserResponse {
	return &UserResponse{Username: u.Username}
}
