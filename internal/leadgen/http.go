package leadgen

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strings"
	"time"
)

// ErrUnexpectedStatus is returned when the service answers with a status the
// step does not accept.
var ErrUnexpectedStatus = errors.New("unexpected status")

// HTTPClient wraps http.Client with the service base URL.
type HTTPClient struct {
	client  *http.Client
	baseURL string
}

// newHTTPClient creates a new HTTP client with timeout.
func newHTTPClient(baseURL string, timeout time.Duration) *HTTPClient {
	return &HTTPClient{
		client:  &http.Client{Timeout: timeout},
		baseURL: strings.TrimRight(baseURL, "/"),
	}
}

func (c *HTTPClient) do(ctx context.Context, method, path, contentType string, body io.Reader, want int) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}
	if resp.StatusCode != want {
		return nil, fmt.Errorf("%w: %s %s returned %d: %s", ErrUnexpectedStatus, method, path, resp.StatusCode, strings.TrimSpace(string(data)))
	}
	return data, nil
}

// Health checks GET /health.
func (c *HTTPClient) Health(ctx context.Context) error {
	_, err := c.do(ctx, http.MethodGet, "/health", "", nil, http.StatusOK)
	return err
}

// CreateOffer posts an offer.
func (c *HTTPClient) CreateOffer(ctx context.Context, offer Offer) error {
	body, err := json.Marshal(offer)
	if err != nil {
		return fmt.Errorf("failed to marshal offer: %w", err)
	}
	_, err = c.do(ctx, http.MethodPost, "/offer", "application/json", bytes.NewReader(body), http.StatusCreated)
	return err
}

// UploadLeads sends csvData as the multipart "file" field and returns the
// inserted count.
func (c *HTTPClient) UploadLeads(ctx context.Context, filename string, csvData []byte) (int, error) {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	part, err := mw.CreateFormFile("file", filename)
	if err != nil {
		return 0, fmt.Errorf("failed to create form file: %w", err)
	}
	if _, err := part.Write(csvData); err != nil {
		return 0, fmt.Errorf("failed to write form file: %w", err)
	}
	if err := mw.Close(); err != nil {
		return 0, fmt.Errorf("failed to close multipart writer: %w", err)
	}

	data, err := c.do(ctx, http.MethodPost, "/leads/upload", mw.FormDataContentType(), &buf, http.StatusCreated)
	if err != nil {
		return 0, err
	}
	var out struct {
		Inserted int `json:"inserted"`
	}
	if err := json.Unmarshal(data, &out); err != nil {
		return 0, fmt.Errorf("failed to decode upload response: %w", err)
	}
	return out.Inserted, nil
}

// Score triggers a scoring run.
func (c *HTTPClient) Score(ctx context.Context) (ScoreResponse, error) {
	var out ScoreResponse
	data, err := c.do(ctx, http.MethodPost, "/score", "", nil, http.StatusOK)
	if err != nil {
		return out, err
	}
	if err := json.Unmarshal(data, &out); err != nil {
		return out, fmt.Errorf("failed to decode score response: %w", err)
	}
	return out, nil
}

// Results fetches every stored result.
func (c *HTTPClient) Results(ctx context.Context) ([]Result, error) {
	data, err := c.do(ctx, http.MethodGet, "/results", "", nil, http.StatusOK)
	if err != nil {
		return nil, err
	}
	var out []Result
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, fmt.Errorf("failed to decode results: %w", err)
	}
	return out, nil
}

// Export downloads the CSV export.
func (c *HTTPClient) Export(ctx context.Context) ([]byte, error) {
	return c.do(ctx, http.MethodGet, "/results/export", "", nil, http.StatusOK)
}
