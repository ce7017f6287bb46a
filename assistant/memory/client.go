// Package memory provides the long-term memory backends behind
// contract.MemoryStore: a REST client for an external memory service and
// a Postgres-backed conversation log.
package memory

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	contractx "github.com/napatw/shopmind/assistant/contract"
)

const (
	defaultNamespace     = "smart_shopping"
	maxResponseSizeBytes = 2 << 20

	searchPath = "/v1/search"
	recordPath = "/v1/record"
)

type Config struct {
	URL       string        `envconfig:"URL" split_words:"true" required:"true"`
	Token     string        `envconfig:"TOKEN" split_words:"true"`
	Namespace string        `envconfig:"NAMESPACE" split_words:"true" default:"smart_shopping"`
	Timeout   time.Duration `envconfig:"TIMEOUT" split_words:"true" default:"10s"`
}

// ClientOption customizes Client.
type ClientOption func(*Client)

func WithHTTPClient(client *http.Client) ClientOption {
	return func(c *Client) {
		if client != nil {
			c.httpClient = client
		}
	}
}

func WithNamespace(namespace string) ClientOption {
	return func(c *Client) {
		trimmed := strings.TrimSpace(namespace)
		if trimmed != "" {
			c.namespace = trimmed
		}
	}
}

// Client talks to a memory/recall service over JSON REST.
type Client struct {
	baseURL    string
	token      string
	namespace  string
	httpClient *http.Client
}

var _ contractx.MemoryStore = (*Client)(nil)

func NewClient(cfg Config, opts ...ClientOption) (*Client, error) {
	baseURL := strings.TrimRight(strings.TrimSpace(cfg.URL), "/")
	if baseURL == "" {
		return nil, errors.New("memory service url is required")
	}
	if _, err := url.ParseRequestURI(baseURL); err != nil {
		return nil, fmt.Errorf("invalid memory service url: %w", err)
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	namespace := strings.TrimSpace(cfg.Namespace)
	if namespace == "" {
		namespace = defaultNamespace
	}

	client := &Client{
		baseURL:   baseURL,
		token:     strings.TrimSpace(cfg.Token),
		namespace: namespace,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}

	for _, opt := range opts {
		if opt != nil {
			opt(client)
		}
	}

	return client, nil
}

type searchRequest struct {
	Namespace string `json:"namespace"`
	Query     string `json:"query"`
}

type searchResponse struct {
	Result string `json:"result"`
	Error  string `json:"error"`
}

type recordRequest struct {
	Namespace  string         `json:"namespace"`
	CustomerID string         `json:"customer_id"`
	UserInput  string         `json:"user_input"`
	Output     string         `json:"ai_output"`
	Model      string         `json:"model"`
	Metadata   map[string]any `json:"metadata,omitempty"`
}

type recordResponse struct {
	Error string `json:"error"`
}

// Lookup asks the service for a snippet relevant to the query. An empty
// result means "no match" and is not an error.
func (c *Client) Lookup(ctx context.Context, query string) (string, error) {
	if strings.TrimSpace(query) == "" {
		return "", nil
	}

	var resp searchResponse
	if err := c.post(ctx, searchPath, searchRequest{
		Namespace: c.namespace,
		Query:     query,
	}, &resp); err != nil {
		return "", err
	}
	if resp.Error != "" {
		return "", fmt.Errorf("%w: %s", contractx.ErrMemoryStore, resp.Error)
	}
	return resp.Result, nil
}

// Record stores a finished exchange for future recall.
func (c *Client) Record(ctx context.Context, exch contractx.Exchange) error {
	var resp recordResponse
	if err := c.post(ctx, recordPath, recordRequest{
		Namespace:  c.namespace,
		CustomerID: exch.CustomerID,
		UserInput:  exch.UserInput,
		Output:     exch.Output,
		Model:      exch.Model,
		Metadata:   exch.Metadata,
	}, &resp); err != nil {
		return err
	}
	if resp.Error != "" {
		return fmt.Errorf("%w: %s", contractx.ErrMemoryStore, resp.Error)
	}
	return nil
}

func (c *Client) post(ctx context.Context, path string, payload any, out any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal memory request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build memory request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", contractx.ErrMemoryStore, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSizeBytes))
	if err != nil {
		return fmt.Errorf("read memory response: %w", err)
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return fmt.Errorf("%w: http status=%d body=%s", contractx.ErrMemoryStore, resp.StatusCode, string(raw))
	}

	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("decode memory response: %w", err)
	}
	return nil
}
