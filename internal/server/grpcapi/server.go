// Package grpcapi exposes the blog over gRPC. Auth rides inside the
// request messages (reg_user.token), not in metadata, so there is no auth
// interceptor; each mutating handler verifies the token itself.
package grpcapi

import (
	"context"
	"net"

	"google.golang.org/grpc"

	"github.com/dmitrijs2005/goblog/internal/logging"
	pb "github.com/dmitrijs2005/goblog/internal/proto"
	"github.com/dmitrijs2005/goblog/internal/server/auth"
	"github.com/dmitrijs2005/goblog/internal/server/services"
)

// AuthProvider is the slice of the auth service the gRPC surface needs.
type AuthProvider interface {
	Register(ctx context.Context, req services.RegisterRequest) (*services.RegisteredUser, error)
	Login(ctx context.Context, req services.LoginRequest) (*services.RegisteredUser, error)
}

// BlogProvider is the slice of the blog service the gRPC surface needs.
type BlogProvider interface {
	Create(ctx context.Context, caller services.AuthUser, req services.NewPost) (*services.PostInfo, error)
	Get(ctx context.Context, id int64) (*services.PostInfo, error)
	Update(ctx context.Context, caller services.AuthUser, id int64, title, content string) (*services.PostInfo, error)
	Delete(ctx context.Context, caller services.AuthUser, id int64) error
	List(ctx context.Context, offset, limit *int64) (*services.PostList, error)
}

type GRPCServer struct {
	pb.UnimplementedBlogServiceServer
	address string
	auth    AuthProvider
	blog    BlogProvider
	tokens  *auth.TokenService
	logger  logging.Logger
}

func NewGRPCServer(address string, l logging.Logger, as AuthProvider, bs BlogProvider, ts *auth.TokenService) *GRPCServer {
	return &GRPCServer{
		address: address,
		logger:  l.With("module", "grpc_server"),
		auth:    as,
		blog:    bs,
		tokens:  ts,
	}
}

// Run serves until ctx is cancelled, then drains in-flight RPCs.
func (s *GRPCServer) Run(ctx context.Context) error {
	listen, err := net.Listen("tcp", s.address)
	if err != nil {
		return err
	}

	srv := grpc.NewServer(grpc.ChainUnaryInterceptor(s.loggingInterceptor))
	pb.RegisterBlogServiceServer(srv, s)

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping gRPC server...")
		srv.GracefulStop()
	}()

	s.logger.Info(ctx, "Starting gRPC server", "address", s.address)

	if err := srv.Serve(listen); err != nil {
		return err
	}

	return nil
}
