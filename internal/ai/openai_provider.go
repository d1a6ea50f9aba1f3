package ai

import (
	"context"
	"errors"

	"github.com/openai/openai-go/v3"
	oaoption "github.com/openai/openai-go/v3/option"

	"github.com/amishk599/isntthatodd/internal/model"
)

const providerOpenAI = "openai"

// OpenAIProvider calls /chat/completions on the OpenAI API or any
// OpenAI-compatible server reachable at baseURL.
type OpenAIProvider struct {
	client  openai.Client
	modelID string
}

// NewOpenAIProvider creates a provider for modelID. Empty baseURL or apiKey
// leave resolution to the SDK (OPENAI_BASE_URL, OPENAI_API_KEY). The SDK's
// automatic retries are disabled.
func NewOpenAIProvider(baseURL, apiKey, modelID string, opts ...oaoption.RequestOption) *OpenAIProvider {
	clientOpts := []oaoption.RequestOption{oaoption.WithMaxRetries(0)}
	if apiKey != "" {
		clientOpts = append(clientOpts, oaoption.WithAPIKey(apiKey))
	}
	if baseURL != "" {
		clientOpts = append(clientOpts, oaoption.WithBaseURL(baseURL))
	}
	clientOpts = append(clientOpts, opts...)

	return &OpenAIProvider{
		client:  openai.NewClient(clientOpts...),
		modelID: modelID,
	}
}

// Complete sends prompt as a single user message and returns the content of
// the first choice.
func (p *OpenAIProvider) Complete(ctx context.Context, prompt string) (string, error) {
	resp, err := p.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: openai.ChatModel(p.modelID),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(systemPrompt),
			openai.UserMessage(prompt),
		},
		Temperature: openai.Float(0),
	})
	if err != nil {
		var apiErr *openai.Error
		if errors.As(err, &apiErr) {
			return "", &model.ProviderError{Provider: providerOpenAI, StatusCode: apiErr.StatusCode, Err: err}
		}
		return "", &model.ProviderError{Provider: providerOpenAI, Err: err}
	}

	if len(resp.Choices) == 0 {
		return "", &model.ProviderError{Provider: providerOpenAI, Err: errors.New("llm returned no choices")}
	}
	return resp.Choices[0].Message.Content, nil
}
