package zzdoc

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"
)

// HTTPGenerateRequest configures GenerateHTTP.
type HTTPGenerateRequest struct {
	URL    string
	Client *http.Client
	Writer io.Writer
	Date   time.Time
}

// GenerateHTTP fetches manual-page source over HTTP(S) and converts it.
func GenerateHTTP(ctx context.Context, req HTTPGenerateRequest) error {
	if req.URL == "" {
		return fmt.Errorf("generate http: URL is required")
	}
	if req.Writer == nil {
		return fmt.Errorf("generate http: Writer is nil")
	}
	if ctx == nil {
		ctx = context.Background()
	}
	client := req.Client
	if client == nil {
		client = http.DefaultClient
	}
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, req.URL, nil)
	if err != nil {
		return fmt.Errorf("generate http: build request: %w", err)
	}
	if httpReq.URL.Scheme != "http" && httpReq.URL.Scheme != "https" {
		return fmt.Errorf("generate http: unsupported scheme %q", httpReq.URL.Scheme)
	}
	resp, err := client.Do(httpReq)
	if err != nil {
		return fmt.Errorf("generate http: request: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("generate http: status %s", resp.Status)
	}
	return Generate(GenerateRequest{
		Reader: resp.Body,
		Writer: req.Writer,
		Date:   req.Date,
	})
}
