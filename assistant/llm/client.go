// Package llm implements the agent service gateway against an
// OpenAI-compatible chat-completions endpoint.
package llm

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	openaisdk "github.com/openai/openai-go"
	"github.com/openai/openai-go/option"

	contractx "github.com/napatw/shopmind/assistant/contract"
)

type Config struct {
	Endpoint  string `envconfig:"ENDPOINT" split_words:"true" required:"true"`
	AccessKey string `envconfig:"ACCESS_KEY" split_words:"true" required:"true"`
	// Managed agent endpoints ignore the model name; "n/a" is their
	// documented placeholder.
	Model   string        `envconfig:"MODEL" split_words:"true" default:"n/a"`
	Timeout time.Duration `envconfig:"TIMEOUT" split_words:"true" default:"30s"`
}

// Client completes conversations against the configured agent endpoint.
type Client struct {
	api   *openaisdk.Client
	model string
}

var _ contractx.Completer = (*Client)(nil)

func NewClient(cfg Config) (*Client, error) {
	endpoint := strings.TrimSpace(cfg.Endpoint)
	if endpoint == "" {
		return nil, errors.New("agent endpoint is required")
	}
	accessKey := strings.TrimSpace(cfg.AccessKey)
	if accessKey == "" {
		return nil, errors.New("agent access key is required")
	}

	opts := []option.RequestOption{
		option.WithAPIKey(accessKey),
		option.WithBaseURL(normalizeBaseURL(endpoint)),
	}
	if cfg.Timeout > 0 {
		opts = append(opts, option.WithRequestTimeout(cfg.Timeout))
	}

	api := openaisdk.NewClient(opts...)

	model := strings.TrimSpace(cfg.Model)
	if model == "" {
		model = "n/a"
	}

	return &Client{
		api:   &api,
		model: model,
	}, nil
}

func MustNewClient(cfg Config) *Client {
	client, err := NewClient(cfg)
	if err != nil {
		panic(err)
	}
	return client
}

func (c *Client) Complete(ctx context.Context, systemPrompt string, conversation []contractx.Message) (string, error) {
	messages := make([]openaisdk.ChatCompletionMessageParamUnion, 0, len(conversation)+1)
	if strings.TrimSpace(systemPrompt) != "" {
		messages = append(messages, openaisdk.SystemMessage(systemPrompt))
	}
	for _, m := range conversation {
		switch m.Role {
		case contractx.RoleAssistant:
			messages = append(messages, openaisdk.AssistantMessage(m.Content))
		case contractx.RoleSystem:
			messages = append(messages, openaisdk.SystemMessage(m.Content))
		default:
			messages = append(messages, openaisdk.UserMessage(m.Content))
		}
	}
	if len(messages) == 0 {
		return "", fmt.Errorf("%w: conversation is empty", contractx.ErrValidation)
	}

	resp, err := c.api.Chat.Completions.New(ctx, openaisdk.ChatCompletionNewParams{
		Model:    openaisdk.ChatModel(c.model),
		Messages: messages,
	})
	if err != nil {
		return "", fmt.Errorf("%w: %v", contractx.ErrAgentInvoke, err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("%w: response has no choices", contractx.ErrAgentInvoke)
	}

	return resp.Choices[0].Message.Content, nil
}

// normalizeBaseURL appends the /api/v1 suffix managed agent endpoints
// expect, so configuration may name the bare endpoint or the full path.
func normalizeBaseURL(endpoint string) string {
	trimmed := strings.TrimRight(endpoint, "/")
	if !strings.HasSuffix(trimmed, "/api/v1") {
		trimmed += "/api/v1"
	}
	return trimmed + "/"
}
