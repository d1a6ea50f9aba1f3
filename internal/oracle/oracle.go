// Package oracle asks a ParityClient about a normalized number and sorts the
// outcome into success, cancellation or a generic invocation failure.
package oracle

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/amishk599/isntthatodd/internal/model"
)

// Invoker sends exactly one parity question per call; it never retries.
type Invoker struct {
	client model.ParityClient
	logger *slog.Logger
}

// NewInvoker creates an Invoker backed by client. A nil logger discards output.
func NewInvoker(client model.ParityClient, logger *slog.Logger) *Invoker {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Invoker{client: client, logger: logger}
}

// Invoke asks whether n is even under cfg. Errors are either model.ErrCancelled
// or a *model.InvocationError wrapping the underlying cause.
func (inv *Invoker) Invoke(ctx context.Context, n model.Number, cfg model.OracleConfig) (bool, error) {
	req := model.ParityRequest{
		Value:   n.String(),
		Model:   cfg.Model,
		APIKey:  cfg.APIKey,
		BaseURL: cfg.BaseURL,
	}
	inv.logger.Debug("invoking parity oracle", "value", req.Value, "kind", n.Kind().String(), "model", req.Model)

	even, err := inv.client.IsEven(ctx, req)
	if err != nil {
		if errors.Is(ctx.Err(), context.Canceled) || errors.Is(err, context.Canceled) {
			return false, fmt.Errorf("%w: %w", model.ErrCancelled, err)
		}
		return false, &model.InvocationError{Model: cfg.Model, Err: err}
	}
	if errors.Is(ctx.Err(), context.Canceled) {
		return false, model.ErrCancelled
	}
	return even, nil
}
