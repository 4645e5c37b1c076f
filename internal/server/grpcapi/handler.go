package grpcapi

import (
	"context"
	"errors"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/dmitrijs2005/goblog/internal/common"
	pb "github.com/dmitrijs2005/goblog/internal/proto"
	"github.com/dmitrijs2005/goblog/internal/server/services"
)

func (s *GRPCServer) Register(ctx context.Context, req *pb.RegisterRequest) (*pb.RegisteredUser, error) {
	user, err := s.auth.Register(ctx, services.RegisterRequest{
		Username: req.GetUsername(),
		Email:    req.GetEmail(),
		Password: req.GetPassword(),
	})
	if err != nil {
		return nil, s.statusFromError(ctx, err)
	}

	return &pb.RegisteredUser{Token: user.Token}, nil
}

func (s *GRPCServer) Login(ctx context.Context, req *pb.LoginRequest) (*pb.RegisteredUser, error) {
	user, err := s.auth.Login(ctx, services.LoginRequest{
		Username: req.GetUsername(),
		Password: req.GetPassword(),
	})
	if err != nil {
		return nil, s.statusFromError(ctx, err)
	}

	return &pb.RegisteredUser{Token: user.Token}, nil
}

func (s *GRPCServer) CreatePost(ctx context.Context, req *pb.CreatePostRequest) (*pb.PostInfo, error) {
	caller, err := s.caller(req.GetRegUser())
	if err != nil {
		return nil, err
	}
	if req.GetNewPost() == nil {
		return nil, status.Error(codes.FailedPrecondition, "new post not present")
	}

	post, err := s.blog.Create(ctx, caller, services.NewPost{
		Title:   req.GetNewPost().GetTitle(),
		Content: req.GetNewPost().GetContent(),
	})
	if err != nil {
		return nil, s.statusFromError(ctx, err)
	}

	return postInfoToPB(post), nil
}

func (s *GRPCServer) GetPost(ctx context.Context, req *pb.PostId) (*pb.PostInfo, error) {
	post, err := s.blog.Get(ctx, req.GetId())
	if err != nil {
		return nil, s.statusFromError(ctx, err)
	}

	return postInfoToPB(post), nil
}

func (s *GRPCServer) UpdatePost(ctx context.Context, req *pb.UpdatePostRequest) (*pb.PostInfo, error) {
	caller, err := s.caller(req.GetRegUser())
	if err != nil {
		return nil, err
	}
	if req.GetUpdatePost() == nil {
		return nil, status.Error(codes.FailedPrecondition, "new post not present")
	}
	if req.GetPostId() == nil {
		return nil, status.Error(codes.FailedPrecondition, "post id not present")
	}

	post, err := s.blog.Update(ctx, caller, req.GetPostId().GetId(),
		req.GetUpdatePost().GetTitle(), req.GetUpdatePost().GetContent())
	if err != nil {
		return nil, s.statusFromError(ctx, err)
	}

	return postInfoToPB(post), nil
}

func (s *GRPCServer) DeletePost(ctx context.Context, req *pb.DeletePostRequest) (*pb.DeletePostResponse, error) {
	caller, err := s.caller(req.GetRegUser())
	if err != nil {
		return nil, err
	}
	if req.GetPostId() == nil {
		return nil, status.Error(codes.FailedPrecondition, "post id not present")
	}

	if err := s.blog.Delete(ctx, caller, req.GetPostId().GetId()); err != nil {
		return nil, s.statusFromError(ctx, err)
	}

	return &pb.DeletePostResponse{}, nil
}

func (s *GRPCServer) GetPosts(ctx context.Context, req *pb.GetPostsRequest) (*pb.GetPostsResponse, error) {
	offset := req.GetOffset()

	// Zero means "not set" on the wire, so it falls back to the default
	// page size rather than an empty page.
	var limit *int64
	if l := req.GetLimit(); l != 0 {
		limit = &l
	}

	list, err := s.blog.List(ctx, &offset, limit)
	if err != nil {
		return nil, s.statusFromError(ctx, err)
	}

	resp := &pb.GetPostsResponse{
		Offset:    list.Offset,
		Limit:     list.Limit,
		PostsInfo: make([]*pb.PostInfo, 0, len(list.Posts)),
	}
	for i := range list.Posts {
		resp.PostsInfo = append(resp.PostsInfo, postInfoToPB(&list.Posts[i]))
	}

	return resp, nil
}

// caller verifies the in-message token and builds the caller identity.
// The returned error is already a gRPC status.
func (s *GRPCServer) caller(regUser *pb.RegisteredUser) (services.AuthUser, error) {
	if regUser.GetToken() == "" {
		return services.AuthUser{}, status.Error(codes.FailedPrecondition, "token not present")
	}

	claims, err := s.tokens.Verify(regUser.GetToken())
	if err != nil {
		return services.AuthUser{}, status.Error(codes.Unauthenticated, "invalid credentials")
	}

	return services.AuthUser{
		ID:       claims.UserID,
		Username: claims.Username,
		Email:    claims.Email,
	}, nil
}

// statusFromError is the single translation point from the domain taxonomy
// to gRPC codes. Internal failures keep their detail out of the status; the
// full chain goes to the log.
func (s *GRPCServer) statusFromError(ctx context.Context, err error) error {
	switch {
	case errors.Is(err, common.ErrAlreadyExists):
		return status.Error(codes.AlreadyExists, err.Error())
	case errors.Is(err, common.ErrUnauthorized):
		return status.Error(codes.Unauthenticated, err.Error())
	case errors.Is(err, common.ErrUserNotFound), errors.Is(err, common.ErrPostNotFound):
		return status.Error(codes.NotFound, err.Error())
	case errors.Is(err, services.ErrInvalidPagination):
		return status.Error(codes.InvalidArgument, err.Error())
	default:
		s.logger.Error(ctx, "rpc failed", "error", err.Error())
		return status.Error(codes.Internal, common.ErrInternal.Error())
	}
}

func postInfoToPB(p *services.PostInfo) *pb.PostInfo {
	return &pb.PostInfo{
		Id:        p.ID,
		Title:     p.Title,
		Content:   p.Content,
		AuthorId:  p.AuthorID,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}
