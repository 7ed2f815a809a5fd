package sheetgen

import (
	"fmt"

	"sheetwise/internal/worksheet"
)

// Validator checks a generated worksheet for correctness.
// Implementations should be stateless and safe for concurrent use.
type Validator interface {
	// Name returns a short identifier for this validator (for error
	// messages and logging), e.g. "structural", "document".
	Name() string

	// Validate checks the document and returns nil if it passes.
	// The validator receives the full GenerateInput for context.
	Validate(doc *worksheet.Document, input GenerateInput) *ValidationError
}

// ValidationError describes why a generated worksheet failed validation.
type ValidationError struct {
	Validator string // Name of the validator that failed
	Message   string // Human-readable description of the failure
	Retryable bool   // Whether regeneration is likely to fix this
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validator %q: %s", e.Validator, e.Message)
}
