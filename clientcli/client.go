package clientcli

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
)

const (
	// DefaultTimeout is the default HTTP client timeout.
	DefaultTimeout = 30 * time.Second

	// FamilyHeader is the request header carrying the family identifier.
	FamilyHeader = "x-family-id"
)

// Client performs operations against a Pawtrait server.
type Client struct {
	config     *Config
	httpClient *http.Client
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(client *http.Client) Option {
	return func(c *Client) {
		c.httpClient = client
	}
}

// WithTimeout sets the HTTP client timeout.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		c.httpClient.Timeout = timeout
	}
}

// New creates a new Client with the given config and options.
func New(cfg *Config, opts ...Option) (*Client, error) {
	if cfg == nil {
		return nil, ErrConfigRequired
	}

	cfg = cfg.WithDefaults()

	endpoint := strings.TrimSuffix(cfg.Endpoint, "/")

	c := &Client{
		config: &Config{
			Endpoint: endpoint,
			FamilyID: cfg.FamilyID,
		},
		httpClient: &http.Client{Timeout: DefaultTimeout},
	}

	for _, opt := range opts {
		opt(c)
	}

	return c, nil
}

// Health checks the server's health route. No family id is required.
func (c *Client) Health(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.config.Endpoint+"/health", http.NoBody)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("do request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return parseServerError(resp.StatusCode, body)
	}

	return nil
}

// RequestUpload asks the server for a presigned upload grant.
func (c *Client) RequestUpload(ctx context.Context, contentType, title string) (*Grant, error) {
	if err := c.config.Validate(); err != nil {
		return nil, err
	}

	body, err := json.Marshal(uploadURLRequest{ContentType: contentType, Title: title})
	if err != nil {
		return nil, fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.config.Endpoint+"/photos/upload-url", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(FamilyHeader, c.config.FamilyID)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("do request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, parseServerError(resp.StatusCode, respBody)
	}

	var grant Grant
	if err := json.Unmarshal(respBody, &grant); err != nil {
		return nil, fmt.Errorf("parse response: %w", err)
	}

	return &grant, nil
}

// Record stores photo metadata on the server after an upload.
func (c *Client) Record(ctx context.Context, photoID, objectKey, contentType, title, description, takenAt string) (*Photo, error) {
	if err := c.config.Validate(); err != nil {
		return nil, err
	}
	if photoID == "" {
		return nil, fmt.Errorf("record: %w", ErrEmptyPhotoID)
	}

	body, err := json.Marshal(recordRequest{
		PhotoID:     photoID,
		ObjectKey:   objectKey,
		ContentType: contentType,
		Title:       title,
		Description: description,
		TakenAt:     takenAt,
	})
	if err != nil {
		return nil, fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.config.Endpoint+"/photos", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(FamilyHeader, c.config.FamilyID)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("do request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode != http.StatusCreated {
		return nil, parseServerError(resp.StatusCode, respBody)
	}

	var photo Photo
	if err := json.Unmarshal(respBody, &photo); err != nil {
		return nil, fmt.Errorf("parse response: %w", err)
	}

	return &photo, nil
}

// List fetches every photo recorded for the family, newest first.
func (c *Client) List(ctx context.Context) ([]Photo, error) {
	if err := c.config.Validate(); err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.config.Endpoint+"/photos", http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set(FamilyHeader, c.config.FamilyID)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("do request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, parseServerError(resp.StatusCode, respBody)
	}

	var list photoList
	if err := json.Unmarshal(respBody, &list); err != nil {
		return nil, fmt.Errorf("parse response: %w", err)
	}

	return list.Items, nil
}

// ContentURL resolves a photo to its presigned download URL without
// following the redirect.
func (c *Client) ContentURL(ctx context.Context, photoID string) (string, error) {
	if err := c.config.Validate(); err != nil {
		return "", err
	}
	if photoID == "" {
		return "", fmt.Errorf("content url: %w", ErrEmptyPhotoID)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet,
		c.config.Endpoint+"/photos/"+photoID+"/content", http.NoBody)
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}
	req.Header.Set(FamilyHeader, c.config.FamilyID)

	// Capture the redirect instead of following it.
	client := *c.httpClient
	client.CheckRedirect = func(req *http.Request, via []*http.Request) error {
		return http.ErrUseLastResponse
	}

	resp, err := client.Do(req)
	if err != nil {
		return "", fmt.Errorf("do request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusFound {
		body, _ := io.ReadAll(resp.Body)
		return "", parseServerError(resp.StatusCode, body)
	}

	location := resp.Header.Get("Location")
	if location == "" {
		return "", errors.New("content url: redirect without location")
	}

	return location, nil
}

// Upload runs the full flow for a local file: request a grant, PUT the
// bytes to the presigned URL, then record metadata.
func (c *Client) Upload(ctx context.Context, opts UploadOptions) (*UploadResult, error) {
	if opts.LocalPath == "" {
		return nil, fmt.Errorf("upload: %w", ErrEmptyPath)
	}

	contentType := opts.ContentType
	if contentType == "" {
		contentType = detectContentType(opts.LocalPath)
	}

	grant, err := c.RequestUpload(ctx, contentType, opts.Title)
	if err != nil {
		return nil, fmt.Errorf("request upload: %w", err)
	}

	size, err := c.putObject(ctx, grant.UploadURL, opts.LocalPath, contentType)
	if err != nil {
		return nil, fmt.Errorf("upload bytes: %w", err)
	}

	photo, err := c.Record(ctx, grant.PhotoID, grant.ObjectKey, contentType, opts.Title, opts.Description, opts.TakenAt)
	if err != nil {
		return nil, fmt.Errorf("record metadata: %w", err)
	}

	return &UploadResult{
		LocalPath:   opts.LocalPath,
		PhotoID:     photo.PhotoID,
		ObjectKey:   photo.ObjectKey,
		ContentType: photo.ContentType,
		Title:       photo.Title,
		Size:        size,
		UploadedAt:  photo.UploadedAt,
	}, nil
}

// putObject streams the file to the presigned URL.
func (c *Client) putObject(ctx context.Context, uploadURL, localPath, contentType string) (int64, error) {
	file, err := os.Open(localPath) //#nosec G304 -- localPath is user-provided input
	if err != nil {
		return 0, fmt.Errorf("open file: %w", err)
	}
	defer func() { _ = file.Close() }()

	info, err := file.Stat()
	if err != nil {
		return 0, fmt.Errorf("stat file: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPut, uploadURL, file)
	if err != nil {
		return 0, fmt.Errorf("create request: %w", err)
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	req.ContentLength = info.Size()

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, fmt.Errorf("do request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusNoContent {
		body, _ := io.ReadAll(resp.Body)
		return 0, parseServerError(resp.StatusCode, body)
	}

	return info.Size(), nil
}

// detectContentType returns MIME type based on file extension.
func detectContentType(path string) string {
	ext := filepath.Ext(path)
	if ext == "" {
		return "application/octet-stream"
	}

	mimeType := mime.TypeByExtension(ext)
	if mimeType == "" {
		return "application/octet-stream"
	}

	return mimeType
}

// parseServerError extracts error message from server response.
func parseServerError(statusCode int, body []byte) error {
	return &APIError{
		StatusCode: statusCode,
		Body:       string(body),
	}
}

// APIError represents an error response from the server.
type APIError struct {
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	return "server error: " + strconv.Itoa(e.StatusCode) + " - " + e.Body
}

// Is reports whether target matches this error.
// It matches if target is an *APIError with the same StatusCode.
func (e *APIError) Is(target error) bool {
	var t *APIError
	ok := errors.As(target, &t)
	if !ok {
		return false
	}
	return t.StatusCode == e.StatusCode
}

// IsNotFound returns true if the error is a 404.
func (e *APIError) IsNotFound() bool {
	return e.StatusCode == http.StatusNotFound
}

// Sentinel errors for common API error conditions.
// Use errors.Is() to check for these conditions.
var (
	// ErrNotFound is returned when the requested photo does not exist (404).
	ErrNotFound = &APIError{StatusCode: http.StatusNotFound}

	// ErrForbidden is returned when the family id is not allow-listed (403).
	ErrForbidden = &APIError{StatusCode: http.StatusForbidden}

	// ErrBadRequest is returned for missing or invalid request fields (400),
	// including a missing family id header.
	ErrBadRequest = &APIError{StatusCode: http.StatusBadRequest}

	// ErrStorageUnavailable is returned when the server's storage
	// collaborators fail (502).
	ErrStorageUnavailable = &APIError{StatusCode: http.StatusBadGateway}
)
