// Package cli implements the blog command line client. Every subcommand
// talks to the server over HTTP by default or over gRPC with -grpc; the
// bearer token is kept in token.txt between invocations.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/dmitrijs2005/goblog/internal/client/api"
	"github.com/dmitrijs2005/goblog/internal/client/config"
)

type App struct {
	config *config.Config
	out    io.Writer

	// newClient is a test seam; nil means build the real transports.
	newClient func(useGRPC bool) (api.Client, func() error, error)
}

func NewApp(c *config.Config) *App {
	return &App{config: c, out: os.Stdout}
}

const usage = `usage: blog-cli <command> [flags]

commands:
  register  create an account and store its token
  login     authenticate and store the token
  create    create a post (requires login)
  get       fetch one post by id
  update    update own post (requires login)
  delete    delete own post (requires login)
  list      list posts, newest first

every command accepts -grpc to use the gRPC transport`

// Run dispatches one subcommand. A domain rejection from the server is
// printed and reported as success; only transport and usage failures
// produce a non-nil error.
func (app *App) Run(ctx context.Context, args []string) error {
	if len(args) < 1 {
		fmt.Fprintln(app.out, usage)
		return errors.New("no command given")
	}

	cmd, rest := args[0], args[1:]

	switch cmd {
	case "register":
		return app.register(ctx, rest)
	case "login":
		return app.login(ctx, rest)
	case "create":
		return app.createPost(ctx, rest)
	case "get":
		return app.getPost(ctx, rest)
	case "update":
		return app.updatePost(ctx, rest)
	case "delete":
		return app.deletePost(ctx, rest)
	case "list":
		return app.listPosts(ctx, rest)
	default:
		fmt.Fprintln(app.out, usage)
		return fmt.Errorf("unknown command %q", cmd)
	}
}

func (app *App) client(useGRPC bool) (api.Client, func() error, error) {
	if app.newClient != nil {
		return app.newClient(useGRPC)
	}

	if useGRPC {
		c, err := api.NewGRPCClient(app.config.GRPCAddr)
		if err != nil {
			return nil, nil, err
		}
		return c, c.Close, nil
	}

	return api.NewHTTPClient(app.config.HTTPAddr), func() error { return nil }, nil
}

// finish implements the exit-status contract: a ServerError is printed and
// swallowed, anything else propagates.
func (app *App) finish(err error) error {
	if err == nil {
		return nil
	}
	var srvErr *api.ServerError
	if errors.As(err, &srvErr) {
		fmt.Fprintln(app.out, srvErr.Message)
		return nil
	}
	return err
}

func (app *App) printPost(p *api.PostInfo) {
	fmt.Fprintf(app.out, "#%d %s (author %d)\n", p.ID, p.Title, p.AuthorID)
	fmt.Fprintf(app.out, "  created %s, updated %s\n", p.CreatedAt, p.UpdatedAt)
	fmt.Fprintf(app.out, "  %s\n", p.Content)
}
