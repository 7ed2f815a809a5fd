package sheetgen

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"sheetwise/internal/llm"
	"sheetwise/internal/worksheet"
)

func testInput() GenerateInput {
	return GenerateInput{
		Topic:            "European capitals",
		EducationalLevel: "5th Grade",
		KindCounts: map[worksheet.Kind]int{
			worksheet.KindMCQ:       1,
			worksheet.KindTrueFalse: 1,
		},
	}
}

func validWorksheetJSON() json.RawMessage {
	return json.RawMessage(`{
		"title": "European Capitals",
		"questions": [
			{
				"kind": "mcq",
				"question": "What is the capital of France?",
				"options": ["Paris", "Lyon", "Marseille", "Nice"],
				"correct_answer": "Paris",
				"explanation": "Paris has been the capital of France since the 10th century.",
				"is_challenge": false
			},
			{
				"kind": "true_false",
				"question": "Berlin is the capital of Germany.",
				"options": [],
				"correct_answer": "True",
				"explanation": "Berlin became the capital of reunified Germany in 1990.",
				"is_challenge": false
			}
		]
	}`)
}

func TestGenerate(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: validWorksheetJSON()})
	gen := New(mock, DefaultConfig())

	doc, err := gen.Generate(context.Background(), testInput())
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}

	if doc.Title != "European Capitals" {
		t.Errorf("Title = %q, want %q", doc.Title, "European Capitals")
	}
	if doc.Topic != "European capitals" {
		t.Errorf("Topic = %q, want the input topic", doc.Topic)
	}
	if doc.ID == "" {
		t.Error("document id was not assigned")
	}
	if len(doc.Questions) != 2 {
		t.Fatalf("got %d questions, want 2", len(doc.Questions))
	}

	seen := map[string]bool{}
	for _, q := range doc.Questions {
		if q.ID == "" {
			t.Error("question id was not assigned")
		}
		if seen[q.ID] {
			t.Errorf("duplicate question id %s", q.ID)
		}
		seen[q.ID] = true
	}

	if doc.Questions[0].Kind != worksheet.KindMCQ {
		t.Errorf("first question kind = %q, want mcq", doc.Questions[0].Kind)
	}
	if doc.Questions[0].CorrectAnswer != "Paris" {
		t.Errorf("CorrectAnswer = %q, want Paris", doc.Questions[0].CorrectAnswer)
	}
}

func TestGenerate_TitleOverride(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: validWorksheetJSON()})
	gen := New(mock, DefaultConfig())

	input := testInput()
	input.Title = "Unit 3 Review"

	doc, err := gen.Generate(context.Background(), input)
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	if doc.Title != "Unit 3 Review" {
		t.Errorf("Title = %q, want the override", doc.Title)
	}
}

func TestGenerate_ProviderError(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Err: &llm.ErrProviderUnavailable{Err: errors.New("boom")},
	})
	gen := New(mock, DefaultConfig())

	_, err := gen.Generate(context.Background(), testInput())
	if err == nil {
		t.Fatal("expected error from provider failure")
	}
	var unavailable *llm.ErrProviderUnavailable
	if !errors.As(err, &unavailable) {
		t.Errorf("error %v does not wrap ErrProviderUnavailable", err)
	}
}

func TestGenerate_MalformedJSON(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`{"title": "Broken`),
	})
	gen := New(mock, DefaultConfig())

	_, err := gen.Generate(context.Background(), testInput())
	if err == nil {
		t.Fatal("expected parse error")
	}
	if !strings.Contains(err.Error(), "parse") {
		t.Errorf("error = %v, want a parse failure", err)
	}
}

func TestGenerate_CountMismatchFailsValidation(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: validWorksheetJSON()})
	gen := New(mock, DefaultConfig())

	input := testInput()
	input.KindCounts[worksheet.KindMCQ] = 3

	_, err := gen.Generate(context.Background(), input)
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("error = %v, want a ValidationError", err)
	}
	if verr.Validator != "structural" {
		t.Errorf("failing validator = %q, want structural", verr.Validator)
	}
}

func TestGenerate_BrokenCorrectAnswerFailsValidation(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`{
			"title": "Capitals",
			"questions": [
				{
					"kind": "mcq",
					"question": "What is the capital of France?",
					"options": ["Paris", "Lyon", "Marseille", "Nice"],
					"correct_answer": "London",
					"explanation": "",
					"is_challenge": false
				}
			]
		}`),
	})
	gen := New(mock, DefaultConfig())

	input := GenerateInput{
		Topic:            "Capitals",
		EducationalLevel: "5th Grade",
		KindCounts:       map[worksheet.Kind]int{worksheet.KindMCQ: 1},
	}

	_, err := gen.Generate(context.Background(), input)
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("error = %v, want a ValidationError", err)
	}
	if verr.Validator != "document" {
		t.Errorf("failing validator = %q, want document", verr.Validator)
	}
}

func TestGenerate_RequestShape(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: validWorksheetJSON()})
	gen := New(mock, DefaultConfig())

	if _, err := gen.Generate(context.Background(), testInput()); err != nil {
		t.Fatalf("Generate() error = %v", err)
	}

	if mock.CallCount() != 1 {
		t.Fatalf("CallCount = %d, want 1", mock.CallCount())
	}
	req := mock.Calls[0]
	if req.Schema != WorksheetSchema {
		t.Error("request did not carry the worksheet schema")
	}
	if len(req.Messages) != 1 || req.Messages[0].Role != llm.RoleUser {
		t.Error("request should carry a single user message")
	}
	if !strings.Contains(req.Messages[0].Content, "European capitals") {
		t.Error("user message does not mention the topic")
	}
}
