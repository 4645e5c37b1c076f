package models

import "time"

// Post is an authored blog entry. UpdatedAt never precedes CreatedAt and
// both are equal on a fresh post.
type Post struct {
	ID        int64
	Title     string
	Content   string
	AuthorID  int64
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewPost builds a post with both timestamps set to the same instant.
func NewPost(id int64, title, content string, authorID int64) *Post {
	now := time.Now().UTC()
	return &Post{
		ID:        id,
		Title:     title,
		Content:   content,
		AuthorID:  authorID,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// Update applies the supplied fields. An empty string means "leave alone".
// UpdatedAt is bumped only when at least one field was supplied.
func (p *Post) Update(title, content string) {
	if title == "" && content == "" {
		return
	}
	p.UpdatedAt = time.Now().UTC()
	if title != "" {
		p.Title = title
	}
	if content != "" {
		p.Content = content
	}
}
