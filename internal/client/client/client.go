// Package client is a typed HTTP client for the filehost API.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/dmitrijs2005/filehost/internal/client/models"
	"github.com/dmitrijs2005/filehost/internal/common"
	"github.com/dmitrijs2005/filehost/internal/filex"
	"github.com/dmitrijs2005/filehost/internal/netx"
)

// Client calls the filehost server. The bearer token set by SetToken is
// sent on every request.
type Client struct {
	baseURL string
	http    *http.Client
	token   string
}

func New(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
	}
}

func (c *Client) SetToken(token string) { c.token = token }

func (c *Client) Token() string { return c.token }

type credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (c *Client) Signup(ctx context.Context, username, password string) (*models.AuthResponse, error) {
	var out models.AuthResponse
	if err := c.do(ctx, http.MethodPost, "/signup", credentials{username, password}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) Signin(ctx context.Context, username, password string) (*models.AuthResponse, error) {
	var out models.AuthResponse
	if err := c.do(ctx, http.MethodPost, "/signIn", credentials{username, password}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) ListFiles(ctx context.Context) ([]*models.File, error) {
	var out struct {
		Files []*models.File `json:"files"`
	}
	if err := c.do(ctx, http.MethodGet, "/files", nil, &out); err != nil {
		return nil, err
	}
	return out.Files, nil
}

func (c *Client) DeleteFile(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, "/files/"+strconv.FormatInt(id, 10), nil, nil)
}

func (c *Client) RequestUpload(ctx context.Context, filename, contentType string) (*models.UploadTicket, error) {
	q := url.Values{}
	q.Set("filename", filename)
	if contentType != "" {
		q.Set("contentType", contentType)
	}

	var out models.UploadTicket
	if err := c.do(ctx, http.MethodGet, "/upload?"+q.Encode(), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) ConfirmUpload(ctx context.Context, filename string, size int64, key string) (*models.File, error) {
	in := struct {
		Filename string `json:"filename"`
		Size     int64  `json:"size"`
		Key      string `json:"key"`
	}{filename, size, key}

	var out struct {
		File *models.File `json:"file"`
	}
	if err := c.do(ctx, http.MethodPost, "/files/confirm", in, &out); err != nil {
		return nil, err
	}
	return out.File, nil
}

// Upload runs the whole upload flow: reserve a key, PUT the bytes to the
// presigned URL and record the file on the server.
func (c *Client) Upload(ctx context.Context, up *filex.Upload) (*models.File, error) {
	ticket, err := c.RequestUpload(ctx, up.Name, up.ContentType)
	if err != nil {
		return nil, err
	}

	if err := netx.PutPresigned(ctx, c.http, ticket.UploadURL, up.ContentType, up.Data); err != nil {
		return nil, fmt.Errorf("put object: %w", err)
	}

	return c.ConfirmUpload(ctx, up.Name, up.Size, ticket.Key)
}

func (c *Client) Metrics(ctx context.Context) (*models.Metrics, error) {
	var out models.Metrics
	if err := c.do(ctx, http.MethodGet, "/metrics", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) do(ctx context.Context, method, path string, in, out any) error {
	var body io.Reader
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return err
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set(common.AuthorizationHeader, common.BearerPrefix+c.token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return decodeError(resp)
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

func decodeError(resp *http.Response) error {
	var payload struct {
		Error string `json:"error"`
	}
	_ = json.NewDecoder(io.LimitReader(resp.Body, 64<<10)).Decode(&payload)
	return &APIError{StatusCode: resp.StatusCode, Message: payload.Error}
}
