package llm

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"google.golang.org/genai"
)

var geminiAliases = map[string]string{
	"gemini-flash": "gemini-2.5-flash",
	"gemini-lite":  "gemini-2.5-flash-lite",
	"gemini-pro":   "gemini-2.5-pro",
}

// JSON Schema type names understood by genai. Anything else is sent as
// a string.
var geminiTypes = map[string]genai.Type{
	"object":  genai.TypeObject,
	"array":   genai.TypeArray,
	"string":  genai.TypeString,
	"integer": genai.TypeInteger,
	"number":  genai.TypeNumber,
	"boolean": genai.TypeBoolean,
}

type gemini struct {
	models *genai.Models
	model  string
}

func NewGeminiProvider(ctx context.Context, cfg GeminiConfig) (Provider, error) {
	if cfg.APIKey == "" {
		return nil, errors.New("gemini: api key not set")
	}
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:      cfg.APIKey,
		Backend:     genai.BackendGeminiAPI,
		HTTPOptions: genai.HTTPOptions{BaseURL: cfg.BaseURL},
	})
	if err != nil {
		return nil, fmt.Errorf("gemini: %w", err)
	}
	return &gemini{models: client.Models, model: modelFor(cfg.Model, geminiAliases)}, nil
}

func (g *gemini) ModelID() string { return g.model }

func (g *gemini) Generate(ctx context.Context, req Request) (*Response, error) {
	out, err := g.models.GenerateContent(ctx, g.model, geminiContents(req.Messages), geminiConfig(req))
	if err != nil {
		// genai returns APIError by value.
		var apiErr genai.APIError
		if errors.As(err, &apiErr) {
			return nil, statusError(apiErr.Code, nil, err)
		}
		return nil, &ErrProviderUnavailable{Err: err}
	}
	resp, err := geminiResponse(g.model, out)
	if err != nil {
		return nil, err
	}
	return finishResponse(req, resp)
}

func geminiConfig(req Request) *genai.GenerateContentConfig {
	conf := &genai.GenerateContentConfig{MaxOutputTokens: int32(req.tokenBudget())}
	if req.Temperature > 0 {
		conf.Temperature = genai.Ptr(float32(req.Temperature))
	}
	if req.System != "" {
		conf.SystemInstruction = genai.NewContentFromText(req.System, genai.RoleUser)
	}
	if req.Schema != nil {
		conf.ResponseMIMEType = "application/json"
		conf.ResponseSchema = geminiSchema(req.Schema.Definition)
	}
	return conf
}

func geminiContents(msgs []Message) []*genai.Content {
	out := make([]*genai.Content, 0, len(msgs))
	for _, m := range msgs {
		role := genai.Role(genai.RoleUser)
		if m.Role == RoleAssistant {
			role = genai.RoleModel
		}
		out = append(out, genai.NewContentFromText(m.Content, role))
	}
	return out
}

// geminiSchema translates the JSON Schema subset used for explanations.
// Keywords genai has no field for, such as additionalProperties, are
// dropped.
func geminiSchema(def map[string]any) *genai.Schema {
	s := &genai.Schema{Type: genai.TypeString}
	if t, ok := geminiTypes[fmt.Sprint(def["type"])]; ok {
		s.Type = t
	}
	s.Description, _ = def["description"].(string)

	if props, ok := def["properties"].(map[string]any); ok {
		s.Properties = make(map[string]*genai.Schema, len(props))
		for name, sub := range props {
			if subDef, ok := sub.(map[string]any); ok {
				s.Properties[name] = geminiSchema(subDef)
				s.PropertyOrdering = append(s.PropertyOrdering, name)
			}
		}
		slices.Sort(s.PropertyOrdering)
	}
	s.Required = stringList(def["required"])
	s.Enum = stringList(def["enum"])
	if items, ok := def["items"].(map[string]any); ok {
		s.Items = geminiSchema(items)
	}
	return s
}

func stringList(v any) []string {
	switch list := v.(type) {
	case []string:
		return list
	case []any:
		out := make([]string, 0, len(list))
		for _, x := range list {
			if s, ok := x.(string); ok {
				out = append(out, s)
			}
		}
		return out
	}
	return nil
}

func geminiResponse(model string, out *genai.GenerateContentResponse) (*Response, error) {
	text := out.Text()
	if text == "" {
		return nil, &ErrInvalidResponse{Err: errors.New("gemini: no text in reply")}
	}
	resp := &Response{Content: []byte(text), Model: model, StopReason: StopEnd}
	if out.ModelVersion != "" {
		resp.Model = out.ModelVersion
	}
	if u := out.UsageMetadata; u != nil {
		resp.Usage = newUsage(int(u.PromptTokenCount), int(u.CandidatesTokenCount))
	}
	if len(out.Candidates) > 0 && out.Candidates[0].FinishReason == genai.FinishReasonMaxTokens {
		resp.StopReason = StopMaxTokens
	}
	return resp, nil
}
