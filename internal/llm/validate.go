package llm

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

var compiled sync.Map // Schema.Name -> *jsonschema.Schema

// finishResponse is the last step of every vendor adapter. It strips a
// markdown fence some models put around JSON, rejects truncated structured
// output and checks the content against req.Schema.
func finishResponse(req Request, resp *Response) (*Response, error) {
	if req.Schema == nil {
		return resp, nil
	}
	resp.Content = unfence(resp.Content)
	if resp.StopReason == StopMaxTokens {
		return nil, &ErrMaxTokensExceeded{Content: resp.Content}
	}
	if err := validateResponse(req.Schema, resp.Content); err != nil {
		return nil, err
	}
	return resp, nil
}

// unfence removes a surrounding ```json ... ``` block.
func unfence(raw json.RawMessage) json.RawMessage {
	b := bytes.TrimSpace(raw)
	if !bytes.HasPrefix(b, []byte("```")) {
		return b
	}
	b = b[3:]
	if nl := bytes.IndexByte(b, '\n'); nl >= 0 {
		b = b[nl+1:] // language tag
	}
	b = bytes.TrimSuffix(bytes.TrimSpace(b), []byte("```"))
	return bytes.TrimSpace(b)
}

// validateResponse reports an *ErrInvalidResponse when raw does not satisfy
// schema. A nil schema accepts anything.
func validateResponse(schema *Schema, raw json.RawMessage) error {
	if schema == nil {
		return nil
	}
	reject := func(err error) error { return &ErrInvalidResponse{Content: raw, Err: err} }

	if len(raw) == 0 {
		return reject(errors.New("empty reply"))
	}
	doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(raw))
	if err != nil {
		return reject(fmt.Errorf("not JSON: %w", err))
	}
	sch, err := compileSchema(schema)
	if err != nil {
		return reject(err)
	}
	if err := sch.Validate(doc); err != nil {
		return reject(err)
	}
	return nil
}

func compileSchema(schema *Schema) (*jsonschema.Schema, error) {
	if sch, ok := compiled.Load(schema.Name); ok {
		return sch.(*jsonschema.Schema), nil
	}

	// The compiler wants the same value shapes UnmarshalJSON produces, so
	// the Go map goes through a JSON round trip first.
	def, err := json.Marshal(schema.Definition)
	if err != nil {
		return nil, fmt.Errorf("schema %s: %w", schema.Name, err)
	}
	doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(def))
	if err != nil {
		return nil, fmt.Errorf("schema %s: %w", schema.Name, err)
	}

	url := "mem://schemas/" + schema.Name + ".json"
	c := jsonschema.NewCompiler()
	if err := c.AddResource(url, doc); err != nil {
		return nil, fmt.Errorf("schema %s: %w", schema.Name, err)
	}
	sch, err := c.Compile(url)
	if err != nil {
		return nil, fmt.Errorf("schema %s: %w", schema.Name, err)
	}
	compiled.Store(schema.Name, sch)
	return sch, nil
}
