package sheetgen

import (
	"context"

	"sheetwise/internal/worksheet"
)

// Generator produces a complete worksheet using an LLM provider.
type Generator interface {
	// Generate produces a full worksheet document for the given input.
	// Returns a validated Document or an error.
	// All configured validators are run before returning.
	Generate(ctx context.Context, input GenerateInput) (*worksheet.Document, error)
}
