package domain

// Post is a piece of user-submitted content.
type Post struct {
	// Owner is the username the post is created under.
	Owner string

	// ID is the client supplied post identifier.
	ID int64

	// Content is the free text checked against the denylist.
	Content string
}

// User is an account that owns posts.
type User struct {
	Username string
}
