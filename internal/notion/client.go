package notion

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"
)

const (
	defaultBaseURL = "https://api.notion.com/v1"
	defaultVersion = "2022-06-28"
	defaultTimeout = 15 * time.Second
)

type Config struct {
	Token   string
	BaseURL string
	Version string
	Timeout time.Duration
}

// Client talks to the Notion REST API.
type Client struct {
	http    *http.Client
	baseURL string
}

func NewClient(cfg Config) *Client {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	version := cfg.Version
	if version == "" {
		version = defaultVersion
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	return &Client{
		http: &http.Client{
			Timeout: timeout,
			Transport: &authTransport{
				base:    http.DefaultTransport,
				token:   cfg.Token,
				version: version,
			},
		},
		baseURL: baseURL,
	}
}

type authTransport struct {
	base    http.RoundTripper
	token   string
	version string
}

func (t *authTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	clone := req.Clone(req.Context())
	if t.token != "" {
		clone.Header.Set("Authorization", "Bearer "+t.token)
	}
	clone.Header.Set("Notion-Version", t.version)
	return t.base.RoundTrip(clone)
}

// QueryDatabase runs a single database query request. Pagination is the
// caller's business; QueryDatabaseAll follows cursors to the end.
func (c *Client) QueryDatabase(ctx context.Context, databaseID string, query DatabaseQuery) (*PageList, error) {
	body, err := json.Marshal(query)
	if err != nil {
		return nil, fmt.Errorf("encode database query: %w", err)
	}

	var list PageList
	url := fmt.Sprintf("%s/databases/%s/query", c.baseURL, NormalizeID(databaseID))
	if err := c.do(ctx, http.MethodPost, url, body, &list); err != nil {
		return nil, fmt.Errorf("query database %s: %w", databaseID, err)
	}

	return &list, nil
}

func (c *Client) QueryDatabaseAll(ctx context.Context, databaseID string, query DatabaseQuery) ([]Page, error) {
	var pages []Page
	for {
		list, err := c.QueryDatabase(ctx, databaseID, query)
		if err != nil {
			return nil, err
		}
		pages = append(pages, list.Results...)
		if !list.HasMore || list.NextCursor == nil || *list.NextCursor == "" {
			return pages, nil
		}
		query.StartCursor = *list.NextCursor
	}
}

// BlockChildren lists one page of a block's children. An empty cursor starts
// from the beginning.
func (c *Client) BlockChildren(ctx context.Context, blockID string, cursor string) (*BlockList, error) {
	url := fmt.Sprintf("%s/blocks/%s/children?page_size=100", c.baseURL, NormalizeID(blockID))
	if cursor != "" {
		url += "&start_cursor=" + cursor
	}

	var list BlockList
	if err := c.do(ctx, http.MethodGet, url, nil, &list); err != nil {
		return nil, fmt.Errorf("list block children %s: %w", blockID, err)
	}

	return &list, nil
}

func (c *Client) AllBlockChildren(ctx context.Context, blockID string) ([]Block, error) {
	var blocks []Block
	cursor := ""
	for {
		list, err := c.BlockChildren(ctx, blockID, cursor)
		if err != nil {
			return nil, err
		}
		blocks = append(blocks, list.Results...)
		if !list.HasMore || list.NextCursor == nil || *list.NextCursor == "" {
			return blocks, nil
		}
		cursor = *list.NextCursor
	}
}

func (c *Client) do(ctx context.Context, method string, url string, body []byte, out any) error {
	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, reader)
	if err != nil {
		return fmt.Errorf("new request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	payload, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return decodeAPIError(resp.StatusCode, payload)
	}

	if err := json.Unmarshal(payload, out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}

	return nil
}

// NormalizeID converts the compact 32-hex form Notion hands out in URLs into
// the hyphenated form its API paths expect. Anything unparseable passes
// through untouched.
func NormalizeID(id string) string {
	parsed, err := uuid.Parse(id)
	if err != nil {
		return id
	}

	return parsed.String()
}
