package explain

import (
	"fmt"
	"strings"

	"github.com/abhisek/dungeonquiz/internal/pack"
)

const systemPrompt = `You help parents write quiz packs for children in grades 1-3.

Rules:
- Write exactly one short sentence explaining why the given answer is correct.
- Use simple words a seven-year-old understands. Be warm and encouraging.
- Never change or question the answer. Never list the other choices.
- Answer in the same language as the question.`

// buildUserMessage describes the question for the model.
func buildUserMessage(meta pack.Meta, q pack.Question) string {
	var b strings.Builder

	if meta.Title != "" {
		fmt.Fprintf(&b, "Pack: %s\n", meta.Title)
	}
	if meta.Grade > 0 {
		fmt.Fprintf(&b, "Grade: %d\n", meta.Grade)
	}
	fmt.Fprintf(&b, "Question: %s\n", q.Prompt)
	if q.Type == pack.TypeMCQ && len(q.Choices) > 0 {
		b.WriteString("Choices:\n")
		for i, c := range q.Choices {
			fmt.Fprintf(&b, "%c. %s\n", 'A'+i, c)
		}
	}
	fmt.Fprintf(&b, "Correct answer: %s", q.Answer)

	return b.String()
}
