package service

import "context"

// TextGenerator sends a prompt to a text-generation model and returns the raw
// reply. Implementations perform a single attempt; failed calls are never
// retried here, callers decide whether to abort or degrade.
type TextGenerator interface {
	GenerateText(ctx context.Context, prompt string) (string, error)
}
