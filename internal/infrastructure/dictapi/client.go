package dictapi

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/eslsoft/dictcli/internal/entity"
	"github.com/eslsoft/dictcli/internal/repository"
)

// Client queries the free dictionary API. It implements
// repository.DictionaryRepository with one GET per lookup and no retries.
type Client struct {
	baseURL string
	httpc   *http.Client
	logger  *logrus.Logger
}

// NewClient builds a client for the given endpoint base URL, e.g.
// "https://api.dictionaryapi.dev/api/v2/entries/en".
func NewClient(baseURL string, timeout time.Duration, logger *logrus.Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpc:   &http.Client{Timeout: timeout},
		logger:  logger,
	}
}

var _ repository.DictionaryRepository = (*Client)(nil)

func (c *Client) Lookup(ctx context.Context, word string) ([]entity.Entry, error) {
	endpoint := c.baseURL + "/" + url.PathEscape(word)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("build dictionary request: %w", err)
	}

	start := time.Now()
	resp, err := c.httpc.Do(req)
	if err != nil {
		return nil, fmt.Errorf("query dictionary: %w", err)
	}
	defer resp.Body.Close()

	c.logger.WithFields(logrus.Fields{
		"word":     word,
		"status":   resp.StatusCode,
		"duration": time.Since(start),
	}).Debug("dictionary lookup")

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return nil, entity.ErrWordNotFound
	case resp.StatusCode != http.StatusOK:
		return nil, fmt.Errorf("dictionary returned %s", resp.Status)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read dictionary response: %w", err)
	}

	var entries []entity.Entry
	if err := json.Unmarshal(body, &entries); err != nil {
		return nil, fmt.Errorf("%w: %v", entity.ErrMalformedResponse, err)
	}
	if len(entries) == 0 {
		return nil, entity.ErrWordNotFound
	}
	return entries, nil
}
