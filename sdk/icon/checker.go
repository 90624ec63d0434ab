// Package icon verifies hosted token icons.
package icon

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/smartcontractkit/tokenreg/sdk"
)

// SVGContentType is the media type icons must be served with.
const SVGContentType = "image/svg+xml"

var _ sdk.IconChecker = (*Checker)(nil)

// ContentTypeError is returned when an icon is reachable but not served as SVG.
type ContentTypeError struct {
	URL         string
	ContentType string
}

func (e *ContentTypeError) Error() string {
	return fmt.Sprintf("icon %s is served as %q, expected %s", e.URL, e.ContentType, SVGContentType)
}

// Checker fetches icons over HTTP.
type Checker struct {
	http *resty.Client
}

// NewChecker creates a new Checker.
func NewChecker(timeout time.Duration) *Checker {
	return &Checker{http: resty.New().SetTimeout(timeout)}
}

// CheckSVG fetches url and verifies it is served successfully as SVG.
func (c *Checker) CheckSVG(ctx context.Context, url string) error {
	resp, err := c.http.R().SetContext(ctx).Get(url)
	if err != nil {
		return fmt.Errorf("failed to fetch icon %s: %w", url, err)
	}
	if !resp.IsSuccess() {
		return fmt.Errorf("failed to fetch icon %s: status %d", url, resp.StatusCode())
	}

	ct := resp.Header().Get("Content-Type")
	if !strings.Contains(ct, SVGContentType) {
		return &ContentTypeError{URL: url, ContentType: ct}
	}

	return nil
}
