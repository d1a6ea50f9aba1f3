package ai

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"

	"github.com/amishk599/isntthatodd/internal/model"
)

func TestProviderFor(t *testing.T) {
	tests := []struct {
		modelID      string
		wantProvider string
		wantName     string
	}{
		{"gpt-3.5-turbo", "openai", "gpt-3.5-turbo"},
		{"openai/gpt-4", "openai", "gpt-4"},
		{"llama3", "openai", "llama3"},
		{"gemini-1.5-flash", "gemini", "gemini-1.5-flash"},
		{"gemini/gemini-2.5-pro", "gemini", "gemini-2.5-pro"},
	}
	for _, tt := range tests {
		provider, name := ProviderFor(tt.modelID)
		if provider != tt.wantProvider || name != tt.wantName {
			t.Errorf("ProviderFor(%q) = (%q, %q), want (%q, %q)",
				tt.modelID, provider, name, tt.wantProvider, tt.wantName)
		}
	}
}

func TestClientIsEven_OpenAICompatibleEndpoint(t *testing.T) {
	var gotPrompt, gotRequestID string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotRequestID = r.Header.Get("X-Client-Request-Id")
		var req struct {
			Messages []struct {
				Content string `json:"content"`
			} `json:"messages"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Errorf("decode request: %v", err)
		}
		if len(req.Messages) > 0 {
			gotPrompt = req.Messages[len(req.Messages)-1].Content
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(chatCompletion("```json\n{\"even\": false}\n```"))
	}))
	defer srv.Close()

	client := NewClient(nil)
	even, err := client.IsEven(context.Background(), model.ParityRequest{
		Value:   "43",
		Model:   "local-model",
		APIKey:  "key",
		BaseURL: srv.URL,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if even {
		t.Error("expected odd")
	}
	if !strings.Contains(gotPrompt, "<value>43</value>") {
		t.Errorf("prompt does not contain the value:\n%s", gotPrompt)
	}
	if _, err := uuid.Parse(gotRequestID); err != nil {
		t.Errorf("X-Client-Request-Id = %q, want a UUID", gotRequestID)
	}
}

func TestClientIsEven_CancelledContext(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewClient(nil).IsEven(ctx, model.ParityRequest{
		Value:   "42",
		Model:   "gpt-3.5-turbo",
		APIKey:  "key",
		BaseURL: srv.URL,
	})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("err = %v, want context.Canceled in chain", err)
	}
}
