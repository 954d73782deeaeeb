package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/adilsezer/lithuaningo-sub000/internal/store"
)

// EventSink persists one event per vendor call. store.EventRepo satisfies
// it.
type EventSink interface {
	AppendLLMRequest(ctx context.Context, data store.LLMRequestEventData) error
}

type recorder struct {
	inner  Provider
	vendor string
	sink   EventSink
	logger *slog.Logger
}

// WithLogging records every call to p: a debug line always, and an event
// when sink is non-nil. A failing sink never fails the call.
func WithLogging(p Provider, vendor string, sink EventSink, logger *slog.Logger) Provider {
	if logger == nil {
		logger = slog.Default()
	}
	return &recorder{inner: p, vendor: vendor, sink: sink, logger: logger}
}

func (r *recorder) ModelID() string { return r.inner.ModelID() }

func (r *recorder) Generate(ctx context.Context, req Request) (*Response, error) {
	start := time.Now()
	resp, err := r.inner.Generate(ctx, req)
	ev := r.event(PurposeFrom(ctx), req, resp, err, time.Since(start))

	r.logger.Debug("llm call", "vendor", ev.Provider, "model", ev.Model, "purpose", ev.Purpose,
		"latency_ms", ev.LatencyMs, "tokens_in", ev.InputTokens, "tokens_out", ev.OutputTokens, "ok", ev.Success)

	if r.sink != nil {
		if serr := r.sink.AppendLLMRequest(ctx, ev); serr != nil {
			r.logger.Warn("llm event not stored", "purpose", ev.Purpose, "err", serr)
		}
	}
	return resp, err
}

func (r *recorder) event(purpose string, req Request, resp *Response, err error, took time.Duration) store.LLMRequestEventData {
	ev := store.LLMRequestEventData{
		Provider:    r.vendor,
		Model:       r.inner.ModelID(),
		Purpose:     purpose,
		LatencyMs:   took.Milliseconds(),
		Success:     err == nil,
		RequestBody: transcript(req),
	}
	if resp != nil {
		ev.Model = resp.Model
		ev.InputTokens = resp.Usage.InputTokens
		ev.OutputTokens = resp.Usage.OutputTokens
		ev.ResponseBody = string(resp.Content)
	}
	if err != nil {
		ev.ErrorMessage = err.Error()
	}
	return ev
}

// transcript renders a request for "lithuaningo llm view": one bracketed
// header per part.
func transcript(req Request) string {
	var b strings.Builder
	section := func(head, body string) {
		fmt.Fprintf(&b, "[%s]\n%s\n\n", head, strings.TrimRight(body, "\n"))
	}
	if req.System != "" {
		section("system", req.System)
	}
	for _, m := range req.Messages {
		section(string(m.Role), m.Content)
	}
	if req.Schema != nil {
		def, err := json.Marshal(req.Schema.Definition)
		if err != nil {
			def = []byte(err.Error())
		}
		section("schema: "+req.Schema.Name, string(def))
	}
	return strings.TrimRight(b.String(), "\n") + "\n"
}
