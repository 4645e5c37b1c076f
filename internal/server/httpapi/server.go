// Package httpapi exposes the blog over JSON/HTTP with gin. It owns the
// bearer middleware, CORS, request ids and metrics; domain behavior lives
// in the services it fronts.
package httpapi

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/dmitrijs2005/goblog/internal/logging"
	"github.com/dmitrijs2005/goblog/internal/server/auth"
	"github.com/dmitrijs2005/goblog/internal/server/services"
)

// AuthProvider is the slice of the auth service the HTTP surface needs.
type AuthProvider interface {
	Register(ctx context.Context, req services.RegisterRequest) (*services.RegisteredUser, error)
	Login(ctx context.Context, req services.LoginRequest) (*services.RegisteredUser, error)
}

// BlogProvider is the slice of the blog service the HTTP surface needs.
type BlogProvider interface {
	Create(ctx context.Context, caller services.AuthUser, req services.NewPost) (*services.PostInfo, error)
	Get(ctx context.Context, id int64) (*services.PostInfo, error)
	Update(ctx context.Context, caller services.AuthUser, id int64, title, content string) (*services.PostInfo, error)
	Delete(ctx context.Context, caller services.AuthUser, id int64) error
	List(ctx context.Context, offset, limit *int64) (*services.PostList, error)
}

type Server struct {
	address string
	auth    AuthProvider
	blog    BlogProvider
	tokens  *auth.TokenService
	logger  logging.Logger
}

func NewServer(address string, l logging.Logger, as AuthProvider, bs BlogProvider, ts *auth.TokenService) *Server {
	return &Server{
		address: address,
		logger:  l.With("module", "http_server"),
		auth:    as,
		blog:    bs,
		tokens:  ts,
	}
}

// Router assembles the gin engine. Exposed for httptest use.
func (s *Server) Router() *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()
	r.Use(gin.Recovery(), s.requestID(), cors(), metrics())

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := r.Group("/api")
	api.POST("/auth/register", s.register)
	api.POST("/auth/login", s.login)
	api.GET("/posts", s.listPosts)
	api.GET("/posts/:id", s.getPost)

	authed := api.Group("", s.requireAuth())
	authed.POST("/posts", s.createPost)
	authed.PUT("/posts/:id", s.updatePost)
	authed.DELETE("/posts/:id", s.deletePost)

	return r
}

// Run serves until ctx is cancelled, then drains in-flight requests.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{Addr: s.address, Handler: s.Router()}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	s.logger.Info(ctx, "Starting HTTP server", "address", s.address)

	select {
	case <-ctx.Done():
		s.logger.Info(ctx, "Stopping HTTP server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	case err := <-errCh:
		return err
	}
}
