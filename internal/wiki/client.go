// Package wiki fetches issue pages from the comic wiki and feeds them
// through the extractor, one placeholder record per unfetchable issue.
package wiki

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/liammcnabb/spider-man-villain-viz/internal/ui"
	"github.com/liammcnabb/spider-man-villain-viz/internal/util"
)

// Fetcher retrieves the raw markup of one issue page.
type Fetcher interface {
	FetchIssue(ctx context.Context, series string, issue int) (string, error)
}

type Client struct {
	client *http.Client
	base   string
	log    *ui.Logger
}

func NewClient(c *http.Client, baseURL string, log *ui.Logger) *Client {
	return &Client{
		client: c,
		base:   strings.TrimRight(baseURL, "/"),
		log:    log,
	}
}

// PageURL builds the wiki page URL for one issue, e.g.
// <base>/Amazing_Spider-Man_Vol_1_14.
func (c *Client) PageURL(series string, issue int) string {
	page := strings.ReplaceAll(strings.TrimSpace(series), " ", "_") +
		"_Vol_1_" + strconv.Itoa(issue)

	return c.base + "/" + url.PathEscape(page)
}

func (c *Client) FetchIssue(ctx context.Context, series string, issue int) (string, error) {
	target := c.PageURL(series, issue)

	req, err := http.NewRequestWithContext(ctx, "GET", target, nil)
	if err != nil {
		return "", err
	}

	resp, err := util.DoWithRetry(c.client, req, 3, 500*time.Millisecond)
	if err != nil {
		return "", err
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("HTTP %d for %s", resp.StatusCode, target)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}

	c.log.Debugf("fetched %s (%d bytes)\n", target, len(body))

	return string(body), nil
}
