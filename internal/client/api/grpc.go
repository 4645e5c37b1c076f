package api

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/status"

	pb "github.com/dmitrijs2005/goblog/internal/proto"
)

type GRPCClient struct {
	conn   *grpc.ClientConn
	client pb.BlogServiceClient
}

// NewGRPCClient builds a client for the gRPC surface. target is a host:port
// dial string; the connection is plaintext like the server side.
func NewGRPCClient(target string) (*GRPCClient, error) {
	conn, err := grpc.NewClient(target, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return nil, err
	}

	return &GRPCClient{conn: conn, client: pb.NewBlogServiceClient(conn)}, nil
}

func (c *GRPCClient) Close() error {
	return c.conn.Close()
}

func (c *GRPCClient) Register(ctx context.Context, username, email, password string) (string, error) {
	resp, err := c.client.Register(ctx, &pb.RegisterRequest{Username: username, Email: email, Password: password})
	if err != nil {
		return "", translate(err)
	}
	return resp.GetToken(), nil
}

func (c *GRPCClient) Login(ctx context.Context, username, password string) (string, error) {
	resp, err := c.client.Login(ctx, &pb.LoginRequest{Username: username, Password: password})
	if err != nil {
		return "", translate(err)
	}
	return resp.GetToken(), nil
}

func (c *GRPCClient) CreatePost(ctx context.Context, token, title, content string) (*PostInfo, error) {
	resp, err := c.client.CreatePost(ctx, &pb.CreatePostRequest{
		RegUser: &pb.RegisteredUser{Token: token},
		NewPost: &pb.NewPost{Title: title, Content: content},
	})
	if err != nil {
		return nil, translate(err)
	}
	return postInfoFromPB(resp), nil
}

func (c *GRPCClient) GetPost(ctx context.Context, id int64) (*PostInfo, error) {
	resp, err := c.client.GetPost(ctx, &pb.PostId{Id: id})
	if err != nil {
		return nil, translate(err)
	}
	return postInfoFromPB(resp), nil
}

func (c *GRPCClient) UpdatePost(ctx context.Context, token string, id int64, title, content string) (*PostInfo, error) {
	resp, err := c.client.UpdatePost(ctx, &pb.UpdatePostRequest{
		RegUser:    &pb.RegisteredUser{Token: token},
		PostId:     &pb.PostId{Id: id},
		UpdatePost: &pb.UpdatePost{Title: title, Content: content},
	})
	if err != nil {
		return nil, translate(err)
	}
	return postInfoFromPB(resp), nil
}

func (c *GRPCClient) DeletePost(ctx context.Context, token string, id int64) error {
	_, err := c.client.DeletePost(ctx, &pb.DeletePostRequest{
		RegUser: &pb.RegisteredUser{Token: token},
		PostId:  &pb.PostId{Id: id},
	})
	if err != nil {
		return translate(err)
	}
	return nil
}

func (c *GRPCClient) ListPosts(ctx context.Context, offset, limit *int64) (*PostList, error) {
	req := &pb.GetPostsRequest{}
	if offset != nil {
		req.Offset = *offset
	}
	if limit != nil {
		req.Limit = *limit
	}

	resp, err := c.client.GetPosts(ctx, req)
	if err != nil {
		return nil, translate(err)
	}

	list := &PostList{
		Offset: resp.GetOffset(),
		Limit:  resp.GetLimit(),
		Posts:  make([]PostInfo, 0, len(resp.GetPostsInfo())),
	}
	for _, p := range resp.GetPostsInfo() {
		list.Posts = append(list.Posts, *postInfoFromPB(p))
	}
	return list, nil
}

// translate turns a status the server actually answered with into a
// ServerError; failures to reach the server stay plain errors.
func translate(err error) error {
	st, ok := status.FromError(err)
	if !ok {
		return err
	}
	switch st.Code() {
	case codes.Unavailable, codes.DeadlineExceeded, codes.Canceled:
		return err
	default:
		return &ServerError{Message: st.Message()}
	}
}

func postInfoFromPB(p *pb.PostInfo) *PostInfo {
	return &PostInfo{
		ID:        p.GetId(),
		Title:     p.GetTitle(),
		Content:   p.GetContent(),
		AuthorID:  p.GetAuthorId(),
		CreatedAt: p.GetCreatedAt(),
		UpdatedAt: p.GetUpdatedAt(),
	}
}
