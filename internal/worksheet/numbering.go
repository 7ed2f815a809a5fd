package worksheet

// DisplayNumbers assigns 1-based display numbers by position among
// non-page-break questions. Page breaks get 0. Numbers are recomputed on
// every call and never stored on the Document.
func DisplayNumbers(questions []Question) []int {
	nums := make([]int, len(questions))
	n := 0
	for i, q := range questions {
		if q.Kind == KindPageBreak {
			continue
		}
		n++
		nums[i] = n
	}
	return nums
}

// NumberedCount returns the count of display-numbered questions, i.e.
// every question that is not a page break.
func NumberedCount(questions []Question) int {
	n := 0
	for _, q := range questions {
		if q.Kind != KindPageBreak {
			n++
		}
	}
	return n
}

// ScoreableQuestions returns the subset of questions a quiz session
// grades, in document order.
func ScoreableQuestions(questions []Question) []Question {
	var out []Question
	for _, q := range questions {
		if q.Scoreable() {
			out = append(out, q)
		}
	}
	return out
}
