package ai

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"text/template"
)

// ParityJudge asks an LLM whether a value is even.
type ParityJudge struct {
	provider LLMProvider
	tmpl     *template.Template
	logger   *slog.Logger
}

// NewParityJudge creates a judge that renders tmpl with the value and sends it
// to provider. A nil logger discards output.
func NewParityJudge(provider LLMProvider, tmpl *template.Template, logger *slog.Logger) *ParityJudge {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &ParityJudge{
		provider: provider,
		tmpl:     tmpl,
		logger:   logger,
	}
}

// Judge returns true when the model says value is even.
func (j *ParityJudge) Judge(ctx context.Context, value string) (bool, error) {
	var promptBuf bytes.Buffer
	if err := j.tmpl.Execute(&promptBuf, struct{ Value string }{Value: value}); err != nil {
		return false, fmt.Errorf("render prompt: %w", err)
	}

	raw, err := j.provider.Complete(ctx, promptBuf.String())
	if err != nil {
		return false, fmt.Errorf("llm complete: %w", err)
	}
	j.logger.Debug("model replied", "reply", truncate(raw, 200))

	even, err := ParseVerdict(raw)
	if err != nil {
		return false, fmt.Errorf("interpret reply: %w", err)
	}
	return even, nil
}
