package ai

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"

	"github.com/amishk599/isntthatodd/internal/model"
)

const providerGemini = "gemini"

// envGeminiAPIKey is read when no API key is configured; the genai client
// will not start without one.
const envGeminiAPIKey = "GEMINI_API_KEY"

// GeminiProvider calls the Gemini API through the generative-ai-go client.
type GeminiProvider struct {
	endpoint string
	apiKey   string
	modelID  string
}

// NewGeminiProvider creates a provider for modelID. An empty apiKey falls back
// to GEMINI_API_KEY; an empty endpoint uses the public Gemini API.
func NewGeminiProvider(endpoint, apiKey, modelID string) *GeminiProvider {
	if apiKey == "" {
		apiKey = os.Getenv(envGeminiAPIKey)
	}
	return &GeminiProvider{
		endpoint: endpoint,
		apiKey:   apiKey,
		modelID:  modelID,
	}
}

// Complete opens a client, sends prompt and returns the first text part.
func (p *GeminiProvider) Complete(ctx context.Context, prompt string) (string, error) {
	var opts []option.ClientOption
	if p.apiKey != "" {
		opts = append(opts, option.WithAPIKey(p.apiKey))
	}
	if p.endpoint != "" {
		opts = append(opts, option.WithEndpoint(p.endpoint))
	}

	cl, err := genai.NewClient(ctx, opts...)
	if err != nil {
		return "", &model.ProviderError{Provider: providerGemini, Err: fmt.Errorf("create client: %w", err)}
	}
	defer cl.Close()

	m := cl.GenerativeModel(p.modelID)
	m.GenerationConfig = genai.GenerationConfig{
		Temperature:      ptrFloat32(0),
		ResponseMIMEType: "application/json",
	}
	m.SystemInstruction = &genai.Content{
		Parts: []genai.Part{genai.Text(systemPrompt)},
	}

	resp, err := m.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		var apiErr *googleapi.Error
		if errors.As(err, &apiErr) {
			return "", &model.ProviderError{Provider: providerGemini, StatusCode: apiErr.Code, Err: err}
		}
		return "", &model.ProviderError{Provider: providerGemini, Err: err}
	}

	txt := firstText(resp)
	if txt == "" {
		return "", &model.ProviderError{Provider: providerGemini, Err: errors.New("empty response")}
	}
	return txt, nil
}

func firstText(resp *genai.GenerateContentResponse) string {
	if resp == nil || len(resp.Candidates) == 0 {
		return ""
	}
	for _, c := range resp.Candidates {
		if c.Content == nil {
			continue
		}
		for _, p := range c.Content.Parts {
			if t, ok := p.(genai.Text); ok {
				return string(t)
			}
		}
	}
	return ""
}

func ptrFloat32(v float32) *float32 { return &v }
