package model

import "context"

// DefaultModel is the model identifier used when nothing else is configured.
const DefaultModel = "gpt-3.5-turbo"

// OracleConfig carries everything the oracle needs besides the number itself.
// Empty APIKey or BaseURL means "not supplied"; the inference client then
// falls back to its own resolution.
type OracleConfig struct {
	Model   string
	APIKey  string
	BaseURL string
}

// ParityRequest is a single parity question handed to a ParityClient.
type ParityRequest struct {
	Value   string // normalized value rendered as text
	Model   string
	APIKey  string
	BaseURL string
}

// ParityClient asks an external inference service whether a value is even.
type ParityClient interface {
	IsEven(ctx context.Context, req ParityRequest) (bool, error)
}
