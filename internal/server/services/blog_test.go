package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/goblog/internal/common"
)

var (
	alice = AuthUser{ID: 1, Username: "alice", Email: "a@x"}
	bob   = AuthUser{ID: 2, Username: "bob", Email: "b@x"}
)

func i64(v int64) *int64 { return &v }

func mustTime(t *testing.T, s string) time.Time {
	t.Helper()
	ts, err := time.Parse(time.RFC3339Nano, s)
	require.NoError(t, err)
	return ts
}

func TestCreateAndGet(t *testing.T) {
	svc := NewBlogService(newFakePostRepo(), nopLogger{})
	ctx := context.Background()

	created, err := svc.Create(ctx, alice, NewPost{Title: "hello", Content: "world"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), created.ID)
	assert.Equal(t, "hello", created.Title)
	assert.Equal(t, "world", created.Content)
	assert.Equal(t, alice.ID, created.AuthorID)
	assert.Equal(t, created.CreatedAt, created.UpdatedAt)

	got, err := svc.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, *created, *got)

	// Timestamps are RFC 3339.
	_, err = time.Parse(time.RFC3339Nano, got.CreatedAt)
	assert.NoError(t, err)
}

func TestGetMissing(t *testing.T) {
	svc := NewBlogService(newFakePostRepo(), nopLogger{})

	_, err := svc.Get(context.Background(), 999)
	assert.ErrorIs(t, err, common.ErrPostNotFound)
}

func TestUpdateOwnershipGate(t *testing.T) {
	repo := newFakePostRepo()
	svc := NewBlogService(repo, nopLogger{})
	ctx := context.Background()

	created, err := svc.Create(ctx, alice, NewPost{Title: "hello", Content: "world"})
	require.NoError(t, err)

	_, err = svc.Update(ctx, bob, created.ID, "hijack", "")
	assert.ErrorIs(t, err, common.ErrUnauthorized)

	// State unchanged.
	got, err := svc.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "hello", got.Title)
	assert.Equal(t, created.UpdatedAt, got.UpdatedAt)
}

func TestUpdateMissingPostBeatsOwnership(t *testing.T) {
	svc := NewBlogService(newFakePostRepo(), nopLogger{})

	// Existence is checked before ownership: not-found, not unauthorized.
	_, err := svc.Update(context.Background(), bob, 404, "t", "")
	assert.ErrorIs(t, err, common.ErrPostNotFound)

	err = svc.Delete(context.Background(), bob, 404)
	assert.ErrorIs(t, err, common.ErrPostNotFound)
}

func TestUpdateSemantics(t *testing.T) {
	svc := NewBlogService(newFakePostRepo(), nopLogger{})
	ctx := context.Background()

	created, err := svc.Create(ctx, alice, NewPost{Title: "hello", Content: "world"})
	require.NoError(t, err)

	// No fields supplied: everything unchanged, including updated_at.
	same, err := svc.Update(ctx, alice, created.ID, "", "")
	require.NoError(t, err)
	assert.Equal(t, *created, *same)

	time.Sleep(5 * time.Millisecond)

	// Title only: content untouched, updated_at bumped.
	updated, err := svc.Update(ctx, alice, created.ID, "new title", "")
	require.NoError(t, err)
	assert.Equal(t, "new title", updated.Title)
	assert.Equal(t, "world", updated.Content)
	assert.Equal(t, created.CreatedAt, updated.CreatedAt)
	assert.True(t, mustTime(t, updated.UpdatedAt).After(mustTime(t, created.UpdatedAt)))
}

func TestDeleteOwnershipGate(t *testing.T) {
	repo := newFakePostRepo()
	svc := NewBlogService(repo, nopLogger{})
	ctx := context.Background()

	created, err := svc.Create(ctx, alice, NewPost{Title: "hello", Content: "world"})
	require.NoError(t, err)

	err = svc.Delete(ctx, bob, created.ID)
	assert.ErrorIs(t, err, common.ErrUnauthorized)

	_, err = svc.Get(ctx, created.ID)
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, alice, created.ID))

	_, err = svc.Get(ctx, created.ID)
	assert.ErrorIs(t, err, common.ErrPostNotFound)
}

func TestListDefaultsAndEcho(t *testing.T) {
	svc := NewBlogService(newFakePostRepo(), nopLogger{})
	ctx := context.Background()

	list, err := svc.List(ctx, nil, nil)
	require.NoError(t, err)
	assert.Equal(t, int64(DefaultOffset), list.Offset)
	assert.Equal(t, int64(DefaultLimit), list.Limit)
	assert.Empty(t, list.Posts)

	list, err = svc.List(ctx, i64(3), i64(7))
	require.NoError(t, err)
	assert.Equal(t, int64(3), list.Offset)
	assert.Equal(t, int64(7), list.Limit)
}

func TestListRejectsNegative(t *testing.T) {
	svc := NewBlogService(newFakePostRepo(), nopLogger{})
	ctx := context.Background()

	_, err := svc.List(ctx, i64(-1), nil)
	assert.ErrorIs(t, err, ErrInvalidPagination)

	_, err = svc.List(ctx, nil, i64(-1))
	assert.ErrorIs(t, err, ErrInvalidPagination)
}

func TestListOrderingFollowsUpdatedAt(t *testing.T) {
	svc := NewBlogService(newFakePostRepo(), nopLogger{})
	ctx := context.Background()

	p1, err := svc.Create(ctx, alice, NewPost{Title: "first", Content: "v1"})
	require.NoError(t, err)
	time.Sleep(5 * time.Millisecond)
	p2, err := svc.Create(ctx, alice, NewPost{Title: "second", Content: "v1"})
	require.NoError(t, err)

	list, err := svc.List(ctx, nil, nil)
	require.NoError(t, err)
	require.Len(t, list.Posts, 2)
	assert.Equal(t, p2.ID, list.Posts[0].ID)
	assert.Equal(t, p1.ID, list.Posts[1].ID)

	// Updating post 1 moves it to the front.
	time.Sleep(5 * time.Millisecond)
	_, err = svc.Update(ctx, alice, p1.ID, "", "v2")
	require.NoError(t, err)

	list, err = svc.List(ctx, nil, nil)
	require.NoError(t, err)
	require.Len(t, list.Posts, 2)
	assert.Equal(t, p1.ID, list.Posts[0].ID)
	assert.Equal(t, p2.ID, list.Posts[1].ID)
}

func TestListPagination(t *testing.T) {
	svc := NewBlogService(newFakePostRepo(), nopLogger{})
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		_, err := svc.Create(ctx, alice, NewPost{Title: "t", Content: "c"})
		require.NoError(t, err)
	}

	seen := map[int64]bool{}
	for off := int64(0); off < 6; off += 2 {
		list, err := svc.List(ctx, i64(off), i64(2))
		require.NoError(t, err)
		assert.LessOrEqual(t, len(list.Posts), 2)
		for _, p := range list.Posts {
			assert.False(t, seen[p.ID], "post %d duplicated across pages", p.ID)
			seen[p.ID] = true
		}
	}
	assert.Len(t, seen, 5)
}
