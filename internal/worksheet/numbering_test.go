package worksheet

import "testing"

func TestDisplayNumbers(t *testing.T) {
	tests := []struct {
		name      string
		questions []Question
		want      []int
	}{
		{
			name: "sequential without breaks",
			questions: []Question{
				{ID: "a", Kind: KindMCQ},
				{ID: "b", Kind: KindShortAnswer},
				{ID: "c", Kind: KindTrueFalse},
			},
			want: []int{1, 2, 3},
		},
		{
			name: "page break is skipped and unnumbered",
			questions: []Question{
				{ID: "a", Kind: KindMCQ},
				{ID: "b", Kind: KindPageBreak},
				{ID: "c", Kind: KindShortAnswer},
			},
			want: []int{1, 0, 2},
		},
		{
			name: "drills are numbered",
			questions: []Question{
				{ID: "a", Kind: KindCharacterDrill},
				{ID: "b", Kind: KindSentenceDrill},
			},
			want: []int{1, 2},
		},
		{
			name:      "empty",
			questions: nil,
			want:      []int{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DisplayNumbers(tt.questions)
			if len(got) != len(tt.want) {
				t.Fatalf("got %d numbers, want %d", len(got), len(tt.want))
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("number[%d] = %d, want %d", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestNumberedCount(t *testing.T) {
	questions := []Question{
		{ID: "a", Kind: KindMCQ},
		{ID: "b", Kind: KindPageBreak},
		{ID: "c", Kind: KindCharacterDrill},
		{ID: "d", Kind: KindPageBreak},
	}
	if got := NumberedCount(questions); got != 2 {
		t.Errorf("NumberedCount = %d, want 2", got)
	}
}

func TestScoreableQuestions(t *testing.T) {
	questions := []Question{
		{ID: "a", Kind: KindMCQ},
		{ID: "b", Kind: KindCharacterDrill},
		{ID: "c", Kind: KindTrueFalse},
		{ID: "d", Kind: KindPageBreak},
		{ID: "e", Kind: KindShortAnswer},
		{ID: "f", Kind: KindVocabulary},
	}

	got := ScoreableQuestions(questions)
	wantIDs := []string{"a", "c", "e"}
	if len(got) != len(wantIDs) {
		t.Fatalf("got %d scoreable questions, want %d", len(got), len(wantIDs))
	}
	for i, id := range wantIDs {
		if got[i].ID != id {
			t.Errorf("scoreable[%d].ID = %s, want %s", i, got[i].ID, id)
		}
	}
}
