package source

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/pfrederiksen/kalendarz/internal/logger"
)

const (
	// MaxBodySize caps the downloaded feed; a full year is well under 1 MiB.
	MaxBodySize = 16 << 20
	feedPath    = "/calendar/ics/%s-pl-PL.ics?v=3"
)

// ErrNotPublished is returned when the server has no calendar for the year.
var ErrNotPublished = errors.New("calendar not published yet")

// StatusError is returned for any response other than 200 and 404.
type StatusError struct {
	StatusCode int
	Status     string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("unexpected status code: %d", e.StatusCode)
}

// Client fetches the ICS feed
type Client struct {
	client    *http.Client
	baseURL   string
	userAgent string
}

// New creates a Client for the given base URL (scheme and host).
func New(baseURL, userAgent string, timeout time.Duration) *Client {
	return &Client{
		client: &http.Client{
			Timeout: timeout,
		},
		baseURL:   baseURL,
		userAgent: userAgent,
	}
}

// URL returns the feed address for year
func (c *Client) URL(year string) string {
	return c.baseURL + fmt.Sprintf(feedPath, year)
}

// Fetch downloads the ICS document for year.
func (c *Client) Fetch(ctx context.Context, year string) (string, error) {
	url := c.URL(year)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "text/calendar")

	start := time.Now()
	resp, err := c.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("fetching calendar: %w", err)
	}
	defer resp.Body.Close()

	logger.RecordTiming("fetch.duration", time.Since(start))
	logger.Debug("calendar response", logger.Fields{
		"url":    url,
		"status": resp.StatusCode,
	})

	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusNotFound:
		return "", ErrNotPublished
	default:
		return "", &StatusError{StatusCode: resp.StatusCode, Status: resp.Status}
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, MaxBodySize+1))
	if err != nil {
		return "", fmt.Errorf("reading calendar: %w", err)
	}
	if len(body) > MaxBodySize {
		return "", fmt.Errorf("calendar larger than %d bytes", MaxBodySize)
	}

	logger.Info("calendar fetched", logger.Fields{
		"year":  year,
		"bytes": len(body),
	})

	return string(body), nil
}
