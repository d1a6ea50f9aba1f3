package ai

import (
	"context"
	"io"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	oaoption "github.com/openai/openai-go/v3/option"

	"github.com/amishk599/isntthatodd/internal/model"
)

// Ensure Client implements model.ParityClient.
var _ model.ParityClient = (*Client)(nil)

// Client is the production model.ParityClient. It picks a provider from the
// model identifier and asks it through a ParityJudge.
type Client struct {
	logger *slog.Logger
}

// NewClient returns a Client. A nil logger discards output.
func NewClient(logger *slog.Logger) *Client {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Client{logger: logger}
}

// IsEven asks the model named in req whether req.Value is even.
func (c *Client) IsEven(ctx context.Context, req model.ParityRequest) (bool, error) {
	requestID := uuid.NewString()
	logger := c.logger.With("request_id", requestID)

	name, modelID := ProviderFor(req.Model)
	var provider LLMProvider
	switch name {
	case providerGemini:
		provider = NewGeminiProvider(req.BaseURL, req.APIKey, modelID)
	default:
		provider = NewOpenAIProvider(req.BaseURL, req.APIKey, modelID,
			oaoption.WithHeader("X-Client-Request-Id", requestID))
	}

	logger.Debug("asking model",
		"provider", name,
		"model", modelID,
		"base_url", req.BaseURL,
		"api_key_set", req.APIKey != "",
	)
	return NewParityJudge(provider, ParityTemplate, logger).Judge(ctx, req.Value)
}

// ProviderFor returns the provider name for a model identifier and the model
// name that provider expects. "gemini/<name>" and "gemini-*" go to Gemini;
// everything else is sent to an OpenAI-compatible endpoint, minus an optional
// "openai/" prefix.
func ProviderFor(modelID string) (provider, name string) {
	if rest, ok := strings.CutPrefix(modelID, "gemini/"); ok {
		return providerGemini, rest
	}
	if strings.HasPrefix(modelID, "gemini-") {
		return providerGemini, modelID
	}
	return providerOpenAI, strings.TrimPrefix(modelID, "openai/")
}
