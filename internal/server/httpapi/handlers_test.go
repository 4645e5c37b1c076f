package httpapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/goblog/internal/common"
	"github.com/dmitrijs2005/goblog/internal/logging"
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

	lastCaller  services.AuthUser
	lastID      int64
	lastTitle   string
	lastContent string
	lastOffset  *int64
	lastLimit   *int64
	deleted     bool
}

func (f *fakeBlog) Create(ctx context.Context, caller services.AuthUser, req services.NewPost) (*services.PostInfo, error) {
	f.lastCaller, f.lastTitle, f.lastContent = caller, req.Title, req.Content
	return f.postResp, f.err
}
func (f *fakeBlog) Get(ctx context.Context, id int64) (*services.PostInfo, error) {
	f.lastID = id
	return f.postResp, f.err
}
func (f *fakeBlog) Update(ctx context.Context, caller services.AuthUser, id int64, title, content string) (*services.PostInfo, error) {
	f.lastCaller, f.lastID, f.lastTitle, f.lastContent = caller, id, title, content
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

func newTestServer(fa AuthProvider, fb BlogProvider) (*Server, *auth.TokenService) {
	tokens := auth.NewTokenService("test-secret")
	return NewServer(":0", nopLogger{}, fa, fb, tokens), tokens
}

func doJSON(t *testing.T, s *Server, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, path, &buf)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	s.Router().ServeHTTP(w, req)
	return w
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) errorBody {
	t.Helper()
	var body errorBody
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

var testPost = &services.PostInfo{
	ID: 7, Title: "t", Content: "c", AuthorID: 1,
	CreatedAt: "2026-01-02T03:04:05Z", UpdatedAt: "2026-01-02T03:04:05Z",
}

// ---- auth endpoints ----

func TestRegisterCreated(t *testing.T) {
	s, _ := newTestServer(&fakeAuth{registerResp: &services.RegisteredUser{Token: "tok"}}, &fakeBlog{})

	w := doJSON(t, s, http.MethodPost, "/api/auth/register", "",
		services.RegisterRequest{Username: "alice", Email: "a@x", Password: "p"})

	require.Equal(t, http.StatusCreated, w.Code)
	assert.JSONEq(t, `{"token":"tok"}`, w.Body.String())
}

func TestRegisterConflict(t *testing.T) {
	err := fmt.Errorf("%w: alice", common.ErrAlreadyExists)
	s, _ := newTestServer(&fakeAuth{registerErr: err}, &fakeBlog{})

	w := doJSON(t, s, http.MethodPost, "/api/auth/register", "",
		services.RegisterRequest{Username: "alice", Email: "a@x", Password: "p"})

	require.Equal(t, http.StatusConflict, w.Code)
	body := decodeError(t, w)
	assert.Equal(t, "User already exists: alice", body.Error)
	assert.Equal(t, http.StatusConflict, body.Status)
}

func TestRegisterBadBody(t *testing.T) {
	s, _ := newTestServer(&fakeAuth{}, &fakeBlog{})

	req := httptest.NewRequest(http.MethodPost, "/api/auth/register", bytes.NewBufferString("{not json"))
	w := httptest.NewRecorder()
	s.Router().ServeHTTP(w, req)

	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "invalid request body", decodeError(t, w).Error)
}

func TestLoginOK(t *testing.T) {
	s, _ := newTestServer(&fakeAuth{loginResp: &services.RegisteredUser{Token: "tok"}}, &fakeBlog{})

	w := doJSON(t, s, http.MethodPost, "/api/auth/login", "",
		services.LoginRequest{Username: "alice", Password: "p"})

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"token":"tok"}`, w.Body.String())
}

func TestLoginErrors(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
	}{
		{"unknown user", fmt.Errorf("%w: ghost", common.ErrUserNotFound), http.StatusNotFound},
		{"wrong password", fmt.Errorf("%w: alice", common.ErrUnauthorized), http.StatusUnauthorized},
		{"backend down", fmt.Errorf("%w: dial tcp: refused", common.ErrInternal), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, _ := newTestServer(&fakeAuth{loginErr: tt.err}, &fakeBlog{})

			w := doJSON(t, s, http.MethodPost, "/api/auth/login", "",
				services.LoginRequest{Username: "alice", Password: "p"})

			require.Equal(t, tt.status, w.Code)
			assert.Equal(t, tt.status, decodeError(t, w).Status)
		})
	}
}

func TestInternalDetailNotLeaked(t *testing.T) {
	err := fmt.Errorf("%w: pq: connection reset", common.ErrInternal)
	s, _ := newTestServer(&fakeAuth{loginErr: err}, &fakeBlog{})

	w := doJSON(t, s, http.MethodPost, "/api/auth/login", "",
		services.LoginRequest{Username: "alice", Password: "p"})

	require.Equal(t, http.StatusInternalServerError, w.Code)
	body := decodeError(t, w)
	assert.Equal(t, "Internal server error", body.Error)
	assert.NotContains(t, w.Body.String(), "connection reset")
}

// ---- bearer middleware ----

func TestAuthMiddleware(t *testing.T) {
	blog := &fakeBlog{postResp: testPost}
	s, tokens := newTestServer(&fakeAuth{}, blog)

	// No header.
	w := doJSON(t, s, http.MethodPost, "/api/posts", "", services.NewPost{Title: "t", Content: "c"})
	require.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "missing bearer", decodeError(t, w).Error)

	// Wrong scheme.
	req := httptest.NewRequest(http.MethodPost, "/api/posts", bytes.NewBufferString("{}"))
	req.Header.Set("Authorization", "Basic abc")
	w = httptest.NewRecorder()
	s.Router().ServeHTTP(w, req)
	require.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "missing bearer", decodeError(t, w).Error)

	// Garbage token.
	w = doJSON(t, s, http.MethodPost, "/api/posts", "not.a.jwt", services.NewPost{Title: "t", Content: "c"})
	require.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "invalid credentials", decodeError(t, w).Error)

	// Valid token reaches the handler with the caller identity.
	token, err := tokens.Issue("alice", "a@x", 1)
	require.NoError(t, err)
	w = doJSON(t, s, http.MethodPost, "/api/posts", token, services.NewPost{Title: "t", Content: "c"})
	require.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, services.AuthUser{ID: 1, Username: "alice", Email: "a@x"}, blog.lastCaller)
}

// ---- post endpoints ----

func TestGetPost(t *testing.T) {
	blog := &fakeBlog{postResp: testPost}
	s, _ := newTestServer(&fakeAuth{}, blog)

	w := doJSON(t, s, http.MethodGet, "/api/posts/7", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, int64(7), blog.lastID)

	var got services.PostInfo
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, *testPost, got)
}

func TestGetPostMissing(t *testing.T) {
	blog := &fakeBlog{err: fmt.Errorf("%w: 7", common.ErrPostNotFound)}
	s, _ := newTestServer(&fakeAuth{}, blog)

	w := doJSON(t, s, http.MethodGet, "/api/posts/7", "", nil)
	require.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Post not found: 7", decodeError(t, w).Error)
}

func TestGetPostBadID(t *testing.T) {
	s, _ := newTestServer(&fakeAuth{}, &fakeBlog{})

	w := doJSON(t, s, http.MethodGet, "/api/posts/abc", "", nil)
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "invalid post id", decodeError(t, w).Error)
}

func TestUpdatePost(t *testing.T) {
	blog := &fakeBlog{postResp: testPost}
	s, tokens := newTestServer(&fakeAuth{}, blog)
	token, err := tokens.Issue("alice", "a@x", 1)
	require.NoError(t, err)

	w := doJSON(t, s, http.MethodPut, "/api/posts/7", token, map[string]string{"title": "new"})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, int64(7), blog.lastID)
	assert.Equal(t, "new", blog.lastTitle)
	assert.Equal(t, "", blog.lastContent)
}

func TestUpdatePostForeign(t *testing.T) {
	blog := &fakeBlog{err: fmt.Errorf("%w: bob", common.ErrUnauthorized)}
	s, tokens := newTestServer(&fakeAuth{}, blog)
	token, err := tokens.Issue("bob", "b@x", 2)
	require.NoError(t, err)

	w := doJSON(t, s, http.MethodPut, "/api/posts/7", token, map[string]string{"title": "hijack"})
	require.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "User unauthorized: bob", decodeError(t, w).Error)
}

func TestDeletePost(t *testing.T) {
	blog := &fakeBlog{}
	s, tokens := newTestServer(&fakeAuth{}, blog)
	token, err := tokens.Issue("alice", "a@x", 1)
	require.NoError(t, err)

	w := doJSON(t, s, http.MethodDelete, "/api/posts/7", token, nil)
	require.Equal(t, http.StatusNoContent, w.Code)
	assert.Empty(t, w.Body.Bytes())
	assert.True(t, blog.deleted)
	assert.Equal(t, int64(7), blog.lastID)
}

func TestListPosts(t *testing.T) {
	blog := &fakeBlog{listResp: &services.PostList{Offset: 0, Limit: 10, Posts: []services.PostInfo{*testPost}}}
	s, _ := newTestServer(&fakeAuth{}, blog)

	// Omitted parameters pass through as nil so the service applies defaults.
	w := doJSON(t, s, http.MethodGet, "/api/posts", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Nil(t, blog.lastOffset)
	assert.Nil(t, blog.lastLimit)

	w = doJSON(t, s, http.MethodGet, "/api/posts?offset=3&limit=7", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.NotNil(t, blog.lastOffset)
	require.NotNil(t, blog.lastLimit)
	assert.Equal(t, int64(3), *blog.lastOffset)
	assert.Equal(t, int64(7), *blog.lastLimit)
}

func TestListPostsBadQuery(t *testing.T) {
	s, _ := newTestServer(&fakeAuth{}, &fakeBlog{})

	w := doJSON(t, s, http.MethodGet, "/api/posts?offset=abc", "", nil)
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "invalid offset", decodeError(t, w).Error)
}

func TestListPostsNegative(t *testing.T) {
	blog := &fakeBlog{err: services.ErrInvalidPagination}
	s, _ := newTestServer(&fakeAuth{}, blog)

	w := doJSON(t, s, http.MethodGet, "/api/posts?offset=-1", "", nil)
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, http.StatusBadRequest, decodeError(t, w).Status)
}

// ---- cross-cutting ----

func TestCORSPreflight(t *testing.T) {
	s, _ := newTestServer(&fakeAuth{}, &fakeBlog{})

	req := httptest.NewRequest(http.MethodOptions, "/api/posts", nil)
	req.Header.Set("Origin", "http://example.com")
	w := httptest.NewRecorder()
	s.Router().ServeHTTP(w, req)

	require.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Methods"))
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Headers"))
	assert.Equal(t, "3600", w.Header().Get("Access-Control-Max-Age"))
}

func TestRequestIDEchoed(t *testing.T) {
	s, _ := newTestServer(&fakeAuth{}, &fakeBlog{})

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	req.Header.Set("X-Request-ID", "abc-123")
	w := httptest.NewRecorder()
	s.Router().ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "abc-123", w.Header().Get("X-Request-ID"))

	// Minted when absent.
	w = doJSON(t, s, http.MethodGet, "/healthz", "", nil)
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
}

func TestHealthz(t *testing.T) {
	s, _ := newTestServer(&fakeAuth{}, &fakeBlog{})

	w := doJSON(t, s, http.MethodGet, "/healthz", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
}

func TestMetricsExposed(t *testing.T) {
	s, _ := newTestServer(&fakeAuth{}, &fakeBlog{})

	w := doJSON(t, s, http.MethodGet, "/metrics", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
}
