package draft

import "fmt"

const (
	defaultCount = 3
	maxCount     = 10
)

const systemPrompt = `
You write multiple-choice exam questions for teachers.

Rules:
1. Every question has exactly one correct option.
2. Give 4 plausible options of similar length and structure; the correct one must not stand out.
3. Use plausible distractors: wrong but reasonable answers.
4. Never reveal the answer in the question text.
5. "correctIndex" is the zero-based position of the correct option in "options".
6. "marks" is an integer weight from 1 to 5, higher for harder questions.

Reply with pure, valid JSON and nothing else, in this shape:

[
  {
    "text": "<question>",
    "options": ["<option>", "<option>", "<option>", "<option>"],
    "correctIndex": 2,
    "marks": 1
  }
]
`

// ClampCount applies the default and the upper bound to a requested number
// of drafts.
func ClampCount(n int) int {
	if n <= 0 {
		return defaultCount
	}
	if n > maxCount {
		return maxCount
	}
	return n
}

func BuildUserPrompt(req DraftRequest) string {
	difficulty := req.Difficulty
	if difficulty == "" {
		difficulty = "medium"
	}

	extra := ""
	if req.Context != "" {
		extra = fmt.Sprintf("Base the questions on this material: %s. ", req.Context)
	}

	return fmt.Sprintf(
		"Write %d multiple-choice questions about \"%s\" with %s difficulty. %s"+
			"Follow the JSON format from the instructions. Mix recall, application and analysis questions.",
		ClampCount(req.Count), req.Topic, difficulty, extra,
	)
}
