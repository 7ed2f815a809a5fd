package worksheet

import "testing"

func TestScoreable(t *testing.T) {
	tests := []struct {
		kind Kind
		want bool
	}{
		{KindMCQ, true},
		{KindTrueFalse, true},
		{KindShortAnswer, true},
		{KindVocabulary, false},
		{KindCharacterDrill, false},
		{KindSymbolDrill, false},
		{KindSentenceDrill, false},
		{KindPageBreak, false},
	}
	for _, tt := range tests {
		t.Run(string(tt.kind), func(t *testing.T) {
			q := Question{Kind: tt.kind}
			if got := q.Scoreable(); got != tt.want {
				t.Errorf("Scoreable() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestQuestionByID(t *testing.T) {
	doc := &Document{
		Questions: []Question{
			{ID: "a", Kind: KindMCQ},
			{ID: "b", Kind: KindTrueFalse},
		},
	}

	if q := doc.QuestionByID("b"); q == nil || q.Kind != KindTrueFalse {
		t.Errorf("QuestionByID(b) = %+v, want the true/false question", q)
	}
	if q := doc.QuestionByID("missing"); q != nil {
		t.Errorf("QuestionByID(missing) = %+v, want nil", q)
	}
}

func TestCloneIsDeep(t *testing.T) {
	doc := &Document{
		ID:    "doc-1",
		Title: "Fractions",
		Questions: []Question{
			{ID: "a", Kind: KindMCQ, Text: "Pick one", Options: []string{"1", "2"}, CorrectAnswer: "1"},
			{ID: "b", Kind: KindShortAnswer, Text: "Explain", CorrectAnswer: "Because"},
		},
	}

	clone := doc.Clone()
	clone.Title = "Changed"
	clone.Questions[0].Text = "Mutated"
	clone.Questions[0].Options[0] = "99"
	clone.Questions = append(clone.Questions, Question{ID: "c", Kind: KindPageBreak})

	if doc.Title != "Fractions" {
		t.Errorf("original title mutated: %q", doc.Title)
	}
	if doc.Questions[0].Text != "Pick one" {
		t.Errorf("original question text mutated: %q", doc.Questions[0].Text)
	}
	if doc.Questions[0].Options[0] != "1" {
		t.Errorf("original options mutated: %q", doc.Questions[0].Options[0])
	}
	if len(doc.Questions) != 2 {
		t.Errorf("original question count changed: %d", len(doc.Questions))
	}
}

func TestNewIDUnique(t *testing.T) {
	a, b := NewID(), NewID()
	if a == "" || a == b {
		t.Errorf("NewID returned %q and %q, want distinct non-empty ids", a, b)
	}
}
