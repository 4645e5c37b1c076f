// Package api holds the two wire clients of the blog service. Both
// implement Client so the CLI picks a transport with a flag and the
// commands stay transport-agnostic.
package api

import "context"

// PostInfo is a post as rendered by the server. Timestamps are RFC 3339
// strings on both transports.
type PostInfo struct {
	ID        int64  `json:"id"`
	Title     string `json:"title"`
	Content   string `json:"content"`
	AuthorID  int64  `json:"author_id"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

// PostList is one page of posts with the resolved pagination window.
type PostList struct {
	Offset int64      `json:"offset"`
	Limit  int64      `json:"limit"`
	Posts  []PostInfo `json:"posts"`
}

// ServerError is a domain rejection the server answered with. Reaching the
// server and being told "no" is a protocol success; the CLI prints the
// message and exits zero. Transport failures stay plain errors.
type ServerError struct {
	Message string
}

func (e *ServerError) Error() string {
	return e.Message
}

// Client is the transport-independent surface the CLI commands run on.
// Token is passed per call; the clients keep no session state.
type Client interface {
	Register(ctx context.Context, username, email, password string) (string, error)
	Login(ctx context.Context, username, password string) (string, error)
	CreatePost(ctx context.Context, token, title, content string) (*PostInfo, error)
	GetPost(ctx context.Context, id int64) (*PostInfo, error)
	UpdatePost(ctx context.Context, token string, id int64, title, content string) (*PostInfo, error)
	DeletePost(ctx context.Context, token string, id int64) error
	ListPosts(ctx context.Context, offset, limit *int64) (*PostList, error)
}
