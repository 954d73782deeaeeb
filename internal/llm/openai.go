package llm

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	openai "github.com/sashabaranov/go-openai"
)

const openRouterURL = "https://openrouter.ai/api/v1"

// OpenRouter ranks apps by these headers.
var openRouterHeaders = http.Header{
	"HTTP-Referer": {"https://github.com/adilsezer/lithuaningo"},
	"X-Title":      {"Lithuaningo"},
}

var gptAliases = map[string]string{
	"gpt-4o":      "gpt-4o",
	"gpt-4o-mini": "gpt-4o-mini",
}

// chatCompletions serves every OpenAI-compatible endpoint.
type chatCompletions struct {
	client *openai.Client
	model  string
}

// NewOpenAIProvider talks to the OpenAI chat completions API, or to any
// compatible API when cfg.BaseURL is set.
func NewOpenAIProvider(cfg OpenAIConfig) (Provider, error) {
	if cfg.APIKey == "" {
		return nil, errors.New("openai: api key not set")
	}
	conf := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		conf.BaseURL = cfg.BaseURL
	}
	return &chatCompletions{client: openai.NewClientWithConfig(conf), model: modelFor(cfg.Model, gptAliases)}, nil
}

// NewOpenRouterProvider is the OpenAI adapter pointed at OpenRouter. Model
// names are OpenRouter slugs such as "google/gemini-2.0-flash-001".
func NewOpenRouterProvider(cfg OpenRouterConfig) (Provider, error) {
	if cfg.APIKey == "" {
		return nil, errors.New("openrouter: api key not set")
	}
	conf := openai.DefaultConfig(cfg.APIKey)
	conf.BaseURL = openRouterURL
	if cfg.BaseURL != "" {
		conf.BaseURL = cfg.BaseURL
	}
	conf.HTTPClient = headerDoer{next: http.DefaultClient, header: openRouterHeaders}
	return &chatCompletions{client: openai.NewClientWithConfig(conf), model: cfg.Model}, nil
}

func (c *chatCompletions) ModelID() string { return c.model }

func (c *chatCompletions) Generate(ctx context.Context, req Request) (*Response, error) {
	params, err := chatParams(c.model, req)
	if err != nil {
		return nil, err
	}
	out, err := c.client.CreateChatCompletion(ctx, params)
	if err != nil {
		var apiErr *openai.APIError
		var reqErr *openai.RequestError
		switch {
		case errors.As(err, &apiErr):
			return nil, statusError(apiErr.HTTPStatusCode, out.Header(), err)
		case errors.As(err, &reqErr):
			return nil, statusError(reqErr.HTTPStatusCode, out.Header(), err)
		}
		return nil, &ErrProviderUnavailable{Err: err}
	}
	resp, err := chatResponse(out)
	if err != nil {
		return nil, err
	}
	return finishResponse(req, resp)
}

func chatParams(model string, req Request) (openai.ChatCompletionRequest, error) {
	p := openai.ChatCompletionRequest{
		Model:               model,
		MaxCompletionTokens: req.tokenBudget(),
		Temperature:         float32(req.Temperature),
	}
	if req.System != "" {
		p.Messages = append(p.Messages, openai.ChatCompletionMessage{Role: openai.ChatMessageRoleSystem, Content: req.System})
	}
	for _, m := range req.Messages {
		role := openai.ChatMessageRoleUser
		if m.Role == RoleAssistant {
			role = openai.ChatMessageRoleAssistant
		}
		p.Messages = append(p.Messages, openai.ChatCompletionMessage{Role: role, Content: m.Content})
	}
	if req.Schema == nil {
		return p, nil
	}

	def, err := json.Marshal(req.Schema.Definition)
	if err != nil {
		return p, fmt.Errorf("openai: schema %s: %w", req.Schema.Name, err)
	}
	p.ResponseFormat = &openai.ChatCompletionResponseFormat{
		Type: openai.ChatCompletionResponseFormatTypeJSONSchema,
		JSONSchema: &openai.ChatCompletionResponseFormatJSONSchema{
			Name:        req.Schema.Name,
			Description: req.Schema.Description,
			Schema:      json.RawMessage(def),
			Strict:      true,
		},
	}
	return p, nil
}

func chatResponse(out openai.ChatCompletionResponse) (*Response, error) {
	if len(out.Choices) == 0 {
		return nil, &ErrInvalidResponse{Err: errors.New("openai: reply has no choices")}
	}
	choice := out.Choices[0]
	resp := &Response{
		Content:    []byte(choice.Message.Content),
		Usage:      newUsage(out.Usage.PromptTokens, out.Usage.CompletionTokens),
		Model:      out.Model,
		StopReason: StopEnd,
	}
	if choice.FinishReason == openai.FinishReasonLength {
		resp.StopReason = StopMaxTokens
	}
	return resp, nil
}

// headerDoer adds fixed headers to every outgoing request.
type headerDoer struct {
	next   *http.Client
	header http.Header
}

func (d headerDoer) Do(r *http.Request) (*http.Response, error) {
	for k, vs := range d.header {
		for _, v := range vs {
			r.Header.Add(k, v)
		}
	}
	return d.next.Do(r)
}
