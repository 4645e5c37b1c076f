package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/goblog/internal/common"
	"github.com/dmitrijs2005/goblog/internal/logging"
	"github.com/dmitrijs2005/goblog/internal/server/models"
	"github.com/dmitrijs2005/goblog/internal/server/repositories/posts"
)

// Pagination defaults when the caller omits the parameters.
const (
	DefaultOffset = 0
	DefaultLimit  = 10
)

// ErrInvalidPagination rejects negative offset or limit before the store
// is reached. Each surface translates it itself (HTTP 400, gRPC
// INVALID_ARGUMENT); it is not part of the domain taxonomy.
var ErrInvalidPagination = errors.New("offset and limit must be non-negative")

// AuthUser is the caller identity built from verified token claims.
type AuthUser struct {
	ID       int64
	Username string
	Email    string
}

// NewPost carries the fields of a post to create.
type NewPost struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

// PostInfo is the public projection of a post. Timestamps are rendered as
// RFC 3339 UTC strings on every surface.
type PostInfo struct {
	ID        int64  `json:"id"`
	Title     string `json:"title"`
	Content   string `json:"content"`
	AuthorID  int64  `json:"author_id"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

// PostList echoes the resolved pagination window along with the page.
type PostList struct {
	Offset int64      `json:"offset"`
	Limit  int64      `json:"limit"`
	Posts  []PostInfo `json:"posts"`
}

func PostInfoFrom(p *models.Post) PostInfo {
	return PostInfo{
		ID:        p.ID,
		Title:     p.Title,
		Content:   p.Content,
		AuthorID:  p.AuthorID,
		CreatedAt: p.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt: p.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
}

type BlogService struct {
	posts  posts.Repository
	logger logging.Logger
}

func NewBlogService(p posts.Repository, l logging.Logger) *BlogService {
	return &BlogService{posts: p, logger: l.With("module", "blog_service")}
}

// Create reserves an id and persists a post authored by the caller.
func (s *BlogService) Create(ctx context.Context, caller AuthUser, req NewPost) (*PostInfo, error) {
	id, err := s.posts.NextID(ctx)
	if err != nil {
		return nil, err
	}

	post := models.NewPost(id, req.Title, req.Content, caller.ID)
	if err := s.posts.Create(ctx, post); err != nil {
		return nil, err
	}

	s.logger.Info(ctx, "post created", "id", post.ID, "author_id", caller.ID)
	info := PostInfoFrom(post)
	return &info, nil
}

// Get fetches a post. Public; no caller required.
func (s *BlogService) Get(ctx context.Context, id int64) (*PostInfo, error) {
	post, err := s.posts.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	info := PostInfoFrom(post)
	return &info, nil
}

// Update applies the supplied fields after the ownership gate. Existence
// is checked before ownership, so an absent post surfaces as
// ErrPostNotFound rather than ErrUnauthorized.
func (s *BlogService) Update(ctx context.Context, caller AuthUser, id int64, title, content string) (*PostInfo, error) {
	if err := s.checkOwnership(ctx, caller, id); err != nil {
		return nil, err
	}

	post, err := s.posts.Update(ctx, id, title, content)
	if err != nil {
		return nil, err
	}

	info := PostInfoFrom(post)
	return &info, nil
}

// Delete removes a post after the ownership gate.
func (s *BlogService) Delete(ctx context.Context, caller AuthUser, id int64) error {
	if err := s.checkOwnership(ctx, caller, id); err != nil {
		return err
	}

	if err := s.posts.Delete(ctx, id); err != nil {
		return err
	}

	s.logger.Info(ctx, "post deleted", "id", id, "author_id", caller.ID)
	return nil
}

// List returns one page of posts, newest updated_at first. Nil offset or
// limit fall back to the defaults; negative values are rejected before
// reaching the store.
func (s *BlogService) List(ctx context.Context, offset, limit *int64) (*PostList, error) {
	off := int64(DefaultOffset)
	if offset != nil {
		off = *offset
	}
	lim := int64(DefaultLimit)
	if limit != nil {
		lim = *limit
	}
	if off < 0 || lim < 0 {
		return nil, ErrInvalidPagination
	}

	page, err := s.posts.List(ctx, off, lim)
	if err != nil {
		return nil, err
	}

	list := &PostList{Offset: off, Limit: lim, Posts: make([]PostInfo, 0, len(page))}
	for _, p := range page {
		list.Posts = append(list.Posts, PostInfoFrom(p))
	}

	return list, nil
}

// checkOwnership uses GetAuthor rather than Get to avoid fetching content
// before a possible rejection.
func (s *BlogService) checkOwnership(ctx context.Context, caller AuthUser, id int64) error {
	authorID, err := s.posts.GetAuthor(ctx, id)
	if err != nil {
		return err
	}
	if authorID != caller.ID {
		return fmt.Errorf("%w: %s", common.ErrUnauthorized, caller.Username)
	}
	return nil
}
