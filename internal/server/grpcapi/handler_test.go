package grpcapi

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/dmitrijs2005/goblog/internal/common"
	"github.com/dmitrijs2005/goblog/internal/logging"
	pb "github.com/dmitrijs2005/goblog/internal/proto"
	"github.com/dmitrijs2005/goblog/internal/server/auth"
	"github.com/dmitrijs2005/goblog/internal/server/services"
)

type nopLogger struct{}

func (nopLogger) Debug(context.Context, string, ...any) {}
func (nopLogger) Info(context.Context, string, ...any)  {}
func (nopLogger) Warn(context.Context, string, ...any)  {}
func (nopLogger) Error(context.Context, string, ...any) {}
func (nopLogger) With(...any) logging.Logger            { return nopLogger{} }

// ---- fakes ----

type fakeAuth struct {
	registerResp *services.RegisteredUser
	registerErr  error
	loginResp    *services.RegisteredUser
	loginErr     error
}

func (f *fakeAuth) Register(ctx context.Context, req services.RegisterRequest) (*services.RegisteredUser, error) {
	return f.registerResp, f.registerErr
}
func (f *fakeAuth) Login(ctx context.Context, req services.LoginRequest) (*services.RegisteredUser, error) {
	return f.loginResp, f.loginErr
}

type fakeBlog struct {
	postResp *services.PostInfo
	listResp *services.PostList
	err      error

	lastCaller services.AuthUser
	lastID     int64
	lastOffset *int64
	lastLimit  *int64
	deleted    bool
}

func (f *fakeBlog) Create(ctx context.Context, caller services.AuthUser, req services.NewPost) (*services.PostInfo, error) {
	f.lastCaller = caller
	return f.postResp, f.err
}
func (f *fakeBlog) Get(ctx context.Context, id int64) (*services.PostInfo, error) {
	f.lastID = id
	return f.postResp, f.err
}
func (f *fakeBlog) Update(ctx context.Context, caller services.AuthUser, id int64, title, content string) (*services.PostInfo, error) {
	f.lastCaller, f.lastID = caller, id
	return f.postResp, f.err
}
func (f *fakeBlog) Delete(ctx context.Context, caller services.AuthUser, id int64) error {
	f.lastCaller, f.lastID, f.deleted = caller, id, true
	return f.err
}
func (f *fakeBlog) List(ctx context.Context, offset, limit *int64) (*services.PostList, error) {
	f.lastOffset, f.lastLimit = offset, limit
	return f.listResp, f.err
}

// ---- helpers ----

func newTestServer(fa AuthProvider, fb BlogProvider) (*GRPCServer, *auth.TokenService) {
	tokens := auth.NewTokenService("test-secret")
	return NewGRPCServer(":0", nopLogger{}, fa, fb, tokens), tokens
}

func issue(t *testing.T, tokens *auth.TokenService) *pb.RegisteredUser {
	t.Helper()
	token, err := tokens.Issue("alice", "a@x", 1)
	require.NoError(t, err)
	return &pb.RegisteredUser{Token: token}
}

func requireCode(t *testing.T, err error, code codes.Code) *status.Status {
	t.Helper()
	require.Error(t, err)
	st, ok := status.FromError(err)
	require.True(t, ok)
	require.Equal(t, code, st.Code())
	return st
}

var testPost = &services.PostInfo{
	ID: 7, Title: "t", Content: "c", AuthorID: 1,
	CreatedAt: "2026-01-02T03:04:05Z", UpdatedAt: "2026-01-02T03:04:05Z",
}

// ---- auth methods ----

func TestRegister(t *testing.T) {
	s, _ := newTestServer(&fakeAuth{registerResp: &services.RegisteredUser{Token: "tok"}}, &fakeBlog{})

	resp, err := s.Register(context.Background(), &pb.RegisterRequest{Username: "alice", Email: "a@x", Password: "p"})
	require.NoError(t, err)
	assert.Equal(t, "tok", resp.GetToken())
}

func TestRegisterConflict(t *testing.T) {
	regErr := fmt.Errorf("%w: alice", common.ErrAlreadyExists)
	s, _ := newTestServer(&fakeAuth{registerErr: regErr}, &fakeBlog{})

	_, err := s.Register(context.Background(), &pb.RegisterRequest{Username: "alice", Email: "a@x", Password: "p"})
	st := requireCode(t, err, codes.AlreadyExists)
	assert.Equal(t, "User already exists: alice", st.Message())
}

func TestLogin(t *testing.T) {
	s, _ := newTestServer(&fakeAuth{loginResp: &services.RegisteredUser{Token: "tok"}}, &fakeBlog{})

	resp, err := s.Login(context.Background(), &pb.LoginRequest{Username: "alice", Password: "p"})
	require.NoError(t, err)
	assert.Equal(t, "tok", resp.GetToken())
}

func TestLoginErrors(t *testing.T) {
	tests := []struct {
		name string
		err  error
		code codes.Code
	}{
		{"unknown user", fmt.Errorf("%w: ghost", common.ErrUserNotFound), codes.NotFound},
		{"wrong password", fmt.Errorf("%w: alice", common.ErrUnauthorized), codes.Unauthenticated},
		{"backend down", fmt.Errorf("%w: dial tcp: refused", common.ErrInternal), codes.Internal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, _ := newTestServer(&fakeAuth{loginErr: tt.err}, &fakeBlog{})

			_, err := s.Login(context.Background(), &pb.LoginRequest{Username: "alice", Password: "p"})
			requireCode(t, err, tt.code)
		})
	}
}

func TestInternalDetailNotLeaked(t *testing.T) {
	loginErr := fmt.Errorf("%w: pq: connection reset", common.ErrInternal)
	s, _ := newTestServer(&fakeAuth{loginErr: loginErr}, &fakeBlog{})

	_, err := s.Login(context.Background(), &pb.LoginRequest{Username: "alice", Password: "p"})
	st := requireCode(t, err, codes.Internal)
	assert.Equal(t, "Internal server error", st.Message())
	assert.NotContains(t, st.Message(), "connection reset")
}

// ---- in-message token auth ----

func TestCreatePostPreconditions(t *testing.T) {
	s, tokens := newTestServer(&fakeAuth{}, &fakeBlog{postResp: testPost})
	ctx := context.Background()

	// Missing reg_user entirely.
	_, err := s.CreatePost(ctx, &pb.CreatePostRequest{NewPost: &pb.NewPost{Title: "t"}})
	st := requireCode(t, err, codes.FailedPrecondition)
	assert.Equal(t, "token not present", st.Message())

	// reg_user present but token empty.
	_, err = s.CreatePost(ctx, &pb.CreatePostRequest{RegUser: &pb.RegisteredUser{}, NewPost: &pb.NewPost{Title: "t"}})
	st = requireCode(t, err, codes.FailedPrecondition)
	assert.Equal(t, "token not present", st.Message())

	// Garbage token.
	_, err = s.CreatePost(ctx, &pb.CreatePostRequest{RegUser: &pb.RegisteredUser{Token: "not.a.jwt"}, NewPost: &pb.NewPost{Title: "t"}})
	st = requireCode(t, err, codes.Unauthenticated)
	assert.Equal(t, "invalid credentials", st.Message())

	// Missing new_post.
	_, err = s.CreatePost(ctx, &pb.CreatePostRequest{RegUser: issue(t, tokens)})
	st = requireCode(t, err, codes.FailedPrecondition)
	assert.Equal(t, "new post not present", st.Message())
}

func TestCreatePost(t *testing.T) {
	blog := &fakeBlog{postResp: testPost}
	s, tokens := newTestServer(&fakeAuth{}, blog)

	resp, err := s.CreatePost(context.Background(), &pb.CreatePostRequest{
		RegUser: issue(t, tokens),
		NewPost: &pb.NewPost{Title: "t", Content: "c"},
	})
	require.NoError(t, err)
	assert.Equal(t, services.AuthUser{ID: 1, Username: "alice", Email: "a@x"}, blog.lastCaller)
	assert.Equal(t, int64(7), resp.GetId())
	assert.Equal(t, "2026-01-02T03:04:05Z", resp.GetCreatedAt())
}

// ---- post methods ----

func TestGetPost(t *testing.T) {
	blog := &fakeBlog{postResp: testPost}
	s, _ := newTestServer(&fakeAuth{}, blog)

	resp, err := s.GetPost(context.Background(), &pb.PostId{Id: 7})
	require.NoError(t, err)
	assert.Equal(t, int64(7), blog.lastID)
	assert.Equal(t, "t", resp.GetTitle())
	assert.Equal(t, int64(1), resp.GetAuthorId())
}

func TestGetPostMissing(t *testing.T) {
	blog := &fakeBlog{err: fmt.Errorf("%w: 7", common.ErrPostNotFound)}
	s, _ := newTestServer(&fakeAuth{}, blog)

	_, err := s.GetPost(context.Background(), &pb.PostId{Id: 7})
	st := requireCode(t, err, codes.NotFound)
	assert.Equal(t, "Post not found: 7", st.Message())
}

func TestUpdatePost(t *testing.T) {
	blog := &fakeBlog{postResp: testPost}
	s, tokens := newTestServer(&fakeAuth{}, blog)
	ctx := context.Background()

	// Missing update_post is rejected before the post id is looked at.
	_, err := s.UpdatePost(ctx, &pb.UpdatePostRequest{RegUser: issue(t, tokens)})
	st := requireCode(t, err, codes.FailedPrecondition)
	assert.Equal(t, "new post not present", st.Message())

	_, err = s.UpdatePost(ctx, &pb.UpdatePostRequest{RegUser: issue(t, tokens), PostId: &pb.PostId{Id: 7}})
	st = requireCode(t, err, codes.FailedPrecondition)
	assert.Equal(t, "new post not present", st.Message())

	// Missing post id.
	_, err = s.UpdatePost(ctx, &pb.UpdatePostRequest{RegUser: issue(t, tokens), UpdatePost: &pb.UpdatePost{}})
	st = requireCode(t, err, codes.FailedPrecondition)
	assert.Equal(t, "post id not present", st.Message())

	// An empty update_post message is a valid no-op update.
	resp, err := s.UpdatePost(ctx, &pb.UpdatePostRequest{
		RegUser:    issue(t, tokens),
		PostId:     &pb.PostId{Id: 7},
		UpdatePost: &pb.UpdatePost{},
	})
	require.NoError(t, err)
	assert.Equal(t, int64(7), blog.lastID)
	assert.Equal(t, int64(7), resp.GetId())
}

func TestUpdatePostForeign(t *testing.T) {
	blog := &fakeBlog{err: fmt.Errorf("%w: alice", common.ErrUnauthorized)}
	s, tokens := newTestServer(&fakeAuth{}, blog)

	_, err := s.UpdatePost(context.Background(), &pb.UpdatePostRequest{
		RegUser:    issue(t, tokens),
		PostId:     &pb.PostId{Id: 7},
		UpdatePost: &pb.UpdatePost{Title: "hijack"},
	})
	st := requireCode(t, err, codes.Unauthenticated)
	assert.Equal(t, "User unauthorized: alice", st.Message())
}

func TestDeletePost(t *testing.T) {
	blog := &fakeBlog{}
	s, tokens := newTestServer(&fakeAuth{}, blog)
	ctx := context.Background()

	_, err := s.DeletePost(ctx, &pb.DeletePostRequest{RegUser: issue(t, tokens)})
	st := requireCode(t, err, codes.FailedPrecondition)
	assert.Equal(t, "post id not present", st.Message())

	resp, err := s.DeletePost(ctx, &pb.DeletePostRequest{RegUser: issue(t, tokens), PostId: &pb.PostId{Id: 7}})
	require.NoError(t, err)
	require.NotNil(t, resp)
	assert.True(t, blog.deleted)
	assert.Equal(t, int64(7), blog.lastID)
}

// ---- listing ----

func TestGetPosts(t *testing.T) {
	blog := &fakeBlog{listResp: &services.PostList{Offset: 0, Limit: 10, Posts: []services.PostInfo{*testPost}}}
	s, _ := newTestServer(&fakeAuth{}, blog)

	// Zero limit falls back to the service default.
	resp, err := s.GetPosts(context.Background(), &pb.GetPostsRequest{})
	require.NoError(t, err)
	require.NotNil(t, blog.lastOffset)
	assert.Equal(t, int64(0), *blog.lastOffset)
	assert.Nil(t, blog.lastLimit)
	assert.Equal(t, int64(10), resp.GetLimit())
	require.Len(t, resp.GetPostsInfo(), 1)
	assert.Equal(t, int64(7), resp.GetPostsInfo()[0].GetId())

	// Explicit window passes through.
	blog.listResp = &services.PostList{Offset: 3, Limit: 7, Posts: nil}
	_, err = s.GetPosts(context.Background(), &pb.GetPostsRequest{Offset: 3, Limit: 7})
	require.NoError(t, err)
	require.NotNil(t, blog.lastLimit)
	assert.Equal(t, int64(3), *blog.lastOffset)
	assert.Equal(t, int64(7), *blog.lastLimit)
}

func TestGetPostsNegative(t *testing.T) {
	blog := &fakeBlog{err: services.ErrInvalidPagination}
	s, _ := newTestServer(&fakeAuth{}, blog)

	_, err := s.GetPosts(context.Background(), &pb.GetPostsRequest{Offset: -1})
	requireCode(t, err, codes.InvalidArgument)
}
