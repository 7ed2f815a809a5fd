package sheetgen

import (
	"context"
	"encoding/json"
	"fmt"

	"sheetwise/internal/llm"
	"sheetwise/internal/worksheet"
)

// LLMGenerator implements Generator using the LLM provider.
type LLMGenerator struct {
	provider llm.Provider
	config   Config
}

// New creates a new LLMGenerator with the given provider and config.
func New(provider llm.Provider, cfg Config) *LLMGenerator {
	return &LLMGenerator{provider: provider, config: cfg}
}

// worksheetOutput is the raw LLM response before validation.
type worksheetOutput struct {
	Title     string           `json:"title"`
	Questions []questionOutput `json:"questions"`
}

type questionOutput struct {
	Kind          string   `json:"kind"`
	Question      string   `json:"question"`
	Options       []string `json:"options"`
	CorrectAnswer string   `json:"correct_answer"`
	Explanation   string   `json:"explanation"`
	IsChallenge   bool     `json:"is_challenge"`
}

// Generate produces a full worksheet for the given input.
func (g *LLMGenerator) Generate(ctx context.Context, input GenerateInput) (*worksheet.Document, error) {
	ctx = llm.WithPurpose(ctx, "worksheet-gen")

	req := llm.Request{
		System: systemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildUserMessage(input)},
		},
		Schema:      WorksheetSchema,
		MaxTokens:   g.config.MaxTokens,
		Temperature: g.config.Temperature,
	}

	resp, err := g.provider.Generate(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("LLM generation failed: %w", err)
	}

	var raw worksheetOutput
	if err := json.Unmarshal(resp.Content, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse LLM response: %w", err)
	}

	doc := &worksheet.Document{
		ID:               worksheet.NewID(),
		Title:            raw.Title,
		Topic:            input.Topic,
		EducationalLevel: input.EducationalLevel,
	}
	if input.Title != "" {
		doc.Title = input.Title
	}
	for _, q := range raw.Questions {
		doc.Questions = append(doc.Questions, worksheet.Question{
			ID:            worksheet.NewID(),
			Kind:          worksheet.Kind(q.Kind),
			Text:          q.Question,
			Options:       q.Options,
			CorrectAnswer: q.CorrectAnswer,
			Explanation:   q.Explanation,
			IsChallenge:   q.IsChallenge,
		})
	}

	// Run validators in order.
	for _, v := range g.config.Validators {
		if verr := v.Validate(doc, input); verr != nil {
			return nil, verr
		}
	}

	return doc, nil
}
