package cli

import (
	"context"
	"errors"
	"flag"
	"fmt"
)

func (app *App) register(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("register", flag.ContinueOnError)
	useGRPC := fs.Bool("grpc", false, "use the gRPC transport")
	user := fs.String("user", "", "username")
	email := fs.String("email", "", "email address")
	pass := fs.String("pass", "", "password (prompted when omitted)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *user == "" || *email == "" {
		return errors.New("register: -user and -email are required")
	}

	password, err := app.password(*pass)
	if err != nil {
		return err
	}

	client, closeFn, err := app.client(*useGRPC)
	if err != nil {
		return err
	}
	defer closeFn()

	token, err := client.Register(ctx, *user, *email, password)
	if err != nil {
		return app.finish(err)
	}

	if err := saveToken(token); err != nil {
		return err
	}
	fmt.Fprintln(app.out, "registered, token saved to "+tokenFile)
	return nil
}

func (app *App) login(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("login", flag.ContinueOnError)
	useGRPC := fs.Bool("grpc", false, "use the gRPC transport")
	user := fs.String("user", "", "username")
	pass := fs.String("pass", "", "password (prompted when omitted)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *user == "" {
		return errors.New("login: -user is required")
	}

	password, err := app.password(*pass)
	if err != nil {
		return err
	}

	client, closeFn, err := app.client(*useGRPC)
	if err != nil {
		return err
	}
	defer closeFn()

	token, err := client.Login(ctx, *user, password)
	if err != nil {
		return app.finish(err)
	}

	if err := saveToken(token); err != nil {
		return err
	}
	fmt.Fprintln(app.out, "logged in, token saved to "+tokenFile)
	return nil
}

func (app *App) createPost(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("create", flag.ContinueOnError)
	useGRPC := fs.Bool("grpc", false, "use the gRPC transport")
	title := fs.String("title", "", "post title")
	content := fs.String("content", "", "post content")
	if err := fs.Parse(args); err != nil {
		return err
	}

	token, err := loadToken()
	if err != nil {
		return err
	}

	client, closeFn, err := app.client(*useGRPC)
	if err != nil {
		return err
	}
	defer closeFn()

	post, err := client.CreatePost(ctx, token, *title, *content)
	if err != nil {
		return app.finish(err)
	}

	app.printPost(post)
	return nil
}

func (app *App) getPost(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("get", flag.ContinueOnError)
	useGRPC := fs.Bool("grpc", false, "use the gRPC transport")
	id := fs.Int64("id", 0, "post id")
	if err := fs.Parse(args); err != nil {
		return err
	}

	client, closeFn, err := app.client(*useGRPC)
	if err != nil {
		return err
	}
	defer closeFn()

	post, err := client.GetPost(ctx, *id)
	if err != nil {
		return app.finish(err)
	}

	app.printPost(post)
	return nil
}

func (app *App) updatePost(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("update", flag.ContinueOnError)
	useGRPC := fs.Bool("grpc", false, "use the gRPC transport")
	id := fs.Int64("id", 0, "post id")
	title := fs.String("title", "", "new title (empty leaves it alone)")
	content := fs.String("content", "", "new content (empty leaves it alone)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	token, err := loadToken()
	if err != nil {
		return err
	}

	client, closeFn, err := app.client(*useGRPC)
	if err != nil {
		return err
	}
	defer closeFn()

	post, err := client.UpdatePost(ctx, token, *id, *title, *content)
	if err != nil {
		return app.finish(err)
	}

	app.printPost(post)
	return nil
}

func (app *App) deletePost(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("delete", flag.ContinueOnError)
	useGRPC := fs.Bool("grpc", false, "use the gRPC transport")
	id := fs.Int64("id", 0, "post id")
	if err := fs.Parse(args); err != nil {
		return err
	}

	token, err := loadToken()
	if err != nil {
		return err
	}

	client, closeFn, err := app.client(*useGRPC)
	if err != nil {
		return err
	}
	defer closeFn()

	if err := client.DeletePost(ctx, token, *id); err != nil {
		return app.finish(err)
	}

	fmt.Fprintf(app.out, "post %d deleted\n", *id)
	return nil
}

func (app *App) listPosts(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("list", flag.ContinueOnError)
	useGRPC := fs.Bool("grpc", false, "use the gRPC transport")
	offset := fs.Int64("offset", -1, "page offset (server default when omitted)")
	limit := fs.Int64("limit", -1, "page size (server default when omitted)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	var off, lim *int64
	if *offset >= 0 {
		off = offset
	}
	if *limit >= 0 {
		lim = limit
	}

	client, closeFn, err := app.client(*useGRPC)
	if err != nil {
		return err
	}
	defer closeFn()

	list, err := client.ListPosts(ctx, off, lim)
	if err != nil {
		return app.finish(err)
	}

	fmt.Fprintf(app.out, "posts %d..%d:\n", list.Offset, list.Offset+int64(len(list.Posts)))
	for i := range list.Posts {
		app.printPost(&list.Posts[i])
	}
	return nil
}
