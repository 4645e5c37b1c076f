package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"
)

type HTTPClient struct {
	base   string
	client *http.Client
}

// NewHTTPClient builds a client for the JSON surface. base is the server's
// base URL without the /api prefix.
func NewHTTPClient(base string) *HTTPClient {
	return &HTTPClient{
		base:   base,
		client: &http.Client{Timeout: 30 * time.Second},
	}
}

func (c *HTTPClient) Register(ctx context.Context, username, email, password string) (string, error) {
	body := map[string]string{"username": username, "email": email, "password": password}

	var resp struct {
		Token string `json:"token"`
	}
	if err := c.do(ctx, http.MethodPost, "/api/auth/register", "", body, &resp); err != nil {
		return "", err
	}
	return resp.Token, nil
}

func (c *HTTPClient) Login(ctx context.Context, username, password string) (string, error) {
	body := map[string]string{"username": username, "password": password}

	var resp struct {
		Token string `json:"token"`
	}
	if err := c.do(ctx, http.MethodPost, "/api/auth/login", "", body, &resp); err != nil {
		return "", err
	}
	return resp.Token, nil
}

func (c *HTTPClient) CreatePost(ctx context.Context, token, title, content string) (*PostInfo, error) {
	body := map[string]string{"title": title, "content": content}

	var post PostInfo
	if err := c.do(ctx, http.MethodPost, "/api/posts", token, body, &post); err != nil {
		return nil, err
	}
	return &post, nil
}

func (c *HTTPClient) GetPost(ctx context.Context, id int64) (*PostInfo, error) {
	var post PostInfo
	if err := c.do(ctx, http.MethodGet, "/api/posts/"+strconv.FormatInt(id, 10), "", nil, &post); err != nil {
		return nil, err
	}
	return &post, nil
}

func (c *HTTPClient) UpdatePost(ctx context.Context, token string, id int64, title, content string) (*PostInfo, error) {
	body := map[string]string{"title": title, "content": content}

	var post PostInfo
	if err := c.do(ctx, http.MethodPut, "/api/posts/"+strconv.FormatInt(id, 10), token, body, &post); err != nil {
		return nil, err
	}
	return &post, nil
}

func (c *HTTPClient) DeletePost(ctx context.Context, token string, id int64) error {
	return c.do(ctx, http.MethodDelete, "/api/posts/"+strconv.FormatInt(id, 10), token, nil, nil)
}

func (c *HTTPClient) ListPosts(ctx context.Context, offset, limit *int64) (*PostList, error) {
	path := "/api/posts"
	sep := "?"
	if offset != nil {
		path += sep + "offset=" + strconv.FormatInt(*offset, 10)
		sep = "&"
	}
	if limit != nil {
		path += sep + "limit=" + strconv.FormatInt(*limit, 10)
	}

	var list PostList
	if err := c.do(ctx, http.MethodGet, path, "", nil, &list); err != nil {
		return nil, err
	}
	return &list, nil
}

// do runs one request and decodes either the success body into out or the
// error body into a ServerError.
func (c *HTTPClient) do(ctx context.Context, method, path, token string, body, out any) error {
	var buf io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return err
		}
		buf = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.base+path, buf)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		var errBody struct {
			Error  string `json:"error"`
			Status int    `json:"status"`
		}
		if err := json.NewDecoder(resp.Body).Decode(&errBody); err != nil || errBody.Error == "" {
			return fmt.Errorf("server returned status %d", resp.StatusCode)
		}
		return &ServerError{Message: errBody.Error}
	}

	if out == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}
