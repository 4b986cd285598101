// Package client talks to the childcare API on behalf of the CLI.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"net/url"
	"strings"
	"time"

	"github.com/pkg/errors"

	"childcare-app-server/internal/models"
	"childcare-app-server/internal/publish"
)

// maxErrorBody bounds how much of an error response is read.
const maxErrorBody = 4 << 10

// APIError is a non-2xx response.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("api: status %d", e.StatusCode)
	}
	return fmt.Sprintf("api: status %d: %s", e.StatusCode, e.Message)
}

// StatusCode returns the HTTP status of an *APIError in err's chain, or 0.
func StatusCode(err error) int {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode
	}
	return 0
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient overrides the default HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// Client is an authenticated API client.
type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
}

var _ publish.Backend = (*Client)(nil)

// New creates a Client for baseURL using the bearer token.
func New(baseURL, token string, opts ...Option) *Client {
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		token:      token,
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

type envelope struct {
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func (c *Client) do(ctx context.Context, method, path string, body io.Reader, contentType string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return errors.Wrap(err, "build request")
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	req.Header.Set("Accept", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return errors.Wrapf(err, "%s %s", method, path)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var env envelope
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		if json.Unmarshal(raw, &env) != nil {
			env.Message = strings.TrimSpace(string(raw))
		}
		return &APIError{StatusCode: resp.StatusCode, Message: env.Message}
	}

	if out == nil {
		return nil
	}
	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return errors.Wrapf(err, "decode %s %s", method, path)
	}
	if len(env.Data) == 0 {
		return errors.Errorf("%s %s: response has no data", method, path)
	}
	return errors.Wrapf(json.Unmarshal(env.Data, out), "decode %s %s", method, path)
}

func (c *Client) postJSON(ctx context.Context, path string, in, out interface{}) error {
	body, err := json.Marshal(in)
	if err != nil {
		return errors.Wrap(err, "encode request")
	}
	return c.do(ctx, http.MethodPost, path, bytes.NewReader(body), "application/json", out)
}

// UploadImage sends snap as the multipart "file" field.
func (c *Client) UploadImage(ctx context.Context, snap *publish.Snapshot) (*publish.Image, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", fmt.Sprintf(`form-data; name="file"; filename=%q`, snap.FileName))
	contentType := snap.ContentType
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	h.Set("Content-Type", contentType)

	part, err := w.CreatePart(h)
	if err != nil {
		return nil, errors.Wrap(err, "create form part")
	}
	if _, err := part.Write(snap.Data); err != nil {
		return nil, errors.Wrap(err, "write form part")
	}
	if err := w.Close(); err != nil {
		return nil, errors.Wrap(err, "close form")
	}

	var img publish.Image
	if err := c.do(ctx, http.MethodPost, "/api/image/upload", &buf, w.FormDataContentType(), &img); err != nil {
		return nil, err
	}
	return &img, nil
}

// DeleteImage removes an uploaded image.
func (c *Client) DeleteImage(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/api/image/"+url.PathEscape(id), nil, "", nil)
}

// CreateReport stores a report for an uploaded image.
func (c *Client) CreateReport(ctx context.Context, imageURL, title string) (*models.Report, error) {
	var report models.Report
	in := map[string]string{"imageUrl": imageURL, "title": title}
	if err := c.postJSON(ctx, "/api/report", in, &report); err != nil {
		return nil, err
	}
	return &report, nil
}

// GetChild fetches one of the caller's children.
func (c *Client) GetChild(ctx context.Context, id string) (*models.ChildDetail, error) {
	var child models.ChildDetail
	if err := c.do(ctx, http.MethodGet, "/api/child/"+url.PathEscape(id), nil, "", &child); err != nil {
		return nil, err
	}
	return &child, nil
}
