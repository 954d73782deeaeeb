package llm

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
)

var claudeAliases = map[string]string{
	"claude-haiku":  "claude-haiku-4-5-20251001",
	"claude-sonnet": "claude-sonnet-4-5-20250929",
}

type claude struct {
	msgs  anthropic.MessageService
	model string
}

// NewAnthropicProvider talks to the Anthropic Messages API. The SDK's own
// retries are off; WithRetry owns that policy.
func NewAnthropicProvider(cfg AnthropicConfig) (Provider, error) {
	if cfg.APIKey == "" {
		return nil, errors.New("anthropic: api key not set")
	}
	opts := []option.RequestOption{option.WithAPIKey(cfg.APIKey), option.WithMaxRetries(0)}
	if cfg.BaseURL != "" {
		opts = append(opts, option.WithBaseURL(cfg.BaseURL))
	}
	client := anthropic.NewClient(opts...)
	return &claude{msgs: client.Messages, model: modelFor(cfg.Model, claudeAliases)}, nil
}

func (c *claude) ModelID() string { return c.model }

func (c *claude) Generate(ctx context.Context, req Request) (*Response, error) {
	msg, err := c.msgs.New(ctx, claudeParams(c.model, req))
	if err != nil {
		var apiErr *anthropic.Error
		if errors.As(err, &apiErr) && apiErr.Response != nil {
			return nil, statusError(apiErr.StatusCode, apiErr.Response.Header, err)
		}
		return nil, &ErrProviderUnavailable{Err: err}
	}
	resp, err := claudeResponse(msg)
	if err != nil {
		return nil, err
	}
	return finishResponse(req, resp)
}

func claudeParams(model string, req Request) anthropic.MessageNewParams {
	p := anthropic.MessageNewParams{
		Model:     anthropic.Model(model),
		MaxTokens: int64(req.tokenBudget()),
	}
	if req.System != "" {
		p.System = []anthropic.TextBlockParam{{Text: req.System}}
	}
	if req.Temperature > 0 {
		p.Temperature = anthropic.Float(req.Temperature)
	}
	for _, m := range req.Messages {
		block := anthropic.NewTextBlock(m.Content)
		if m.Role == RoleAssistant {
			p.Messages = append(p.Messages, anthropic.NewAssistantMessage(block))
		} else {
			p.Messages = append(p.Messages, anthropic.NewUserMessage(block))
		}
	}
	if req.Schema != nil {
		p.OutputConfig = anthropic.OutputConfigParam{
			Format: anthropic.JSONOutputFormatParam{Schema: req.Schema.Definition},
		}
	}
	return p
}

func claudeResponse(msg *anthropic.Message) (*Response, error) {
	var text strings.Builder
	for _, block := range msg.Content {
		if block.Type == "text" {
			text.WriteString(block.Text)
		}
	}
	if text.Len() == 0 {
		return nil, &ErrInvalidResponse{Err: fmt.Errorf("anthropic: no text in reply (stop %s)", msg.StopReason)}
	}

	resp := &Response{
		Content:    []byte(text.String()),
		Usage:      newUsage(int(msg.Usage.InputTokens), int(msg.Usage.OutputTokens)),
		Model:      string(msg.Model),
		StopReason: StopEnd,
	}
	if msg.StopReason == anthropic.StopReasonMaxTokens {
		resp.StopReason = StopMaxTokens
	}
	return resp, nil
}

// modelFor resolves a short alias. Unknown names pass through as vendor IDs.
func modelFor(name string, aliases map[string]string) string {
	if id, ok := aliases[name]; ok {
		return id
	}
	return name
}
