// Package extract turns raw worksheet text into draft questions.
//
// Extraction is heuristic and never fails: unrecognised text produces fewer
// or rougher drafts, never an error. Answers of extracted multiple-choice
// drafts are placeholders that a human must correct.
package extract

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/abhisek/dungeonquiz/internal/pack"
)

// DraftDifficulty is assigned to every extracted question.
const DraftDifficulty = 2

// delimiters may follow a question number or an option letter.
var delimiters = []string{".", ")", "、"}

// Extract segments raw text into numbered blocks and turns each block into
// a draft question. Block ids are q-001, q-002, ... in block order; a
// block that yields no question still consumes its id.
func Extract(raw string) []pack.Question {
	var drafts []pack.Question
	for i, block := range segment(cleanLines(raw)) {
		q, ok := parseBlock(block)
		if !ok {
			continue
		}
		q.ID = fmt.Sprintf("q-%03d", i+1)
		q.Difficulty = DraftDifficulty
		drafts = append(drafts, q)
	}
	return drafts
}

// cleanLines normalises line endings, trims every line and drops blank ones.
func cleanLines(raw string) []string {
	raw = strings.ReplaceAll(raw, "\r", "\n")
	var lines []string
	for _, line := range strings.Split(raw, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}

// segment groups lines into blocks. A new block starts at every line that
// opens with a question number, except the very first line.
func segment(lines []string) []string {
	var blocks []string
	var cur []string
	flush := func() {
		if b := strings.TrimSpace(strings.Join(cur, "\n")); b != "" {
			blocks = append(blocks, b)
		}
		cur = nil
	}
	for i, line := range lines {
		if i > 0 && isNumbered(line) {
			flush()
		}
		cur = append(cur, line)
	}
	flush()
	return blocks
}

// isNumbered reports whether s opens with ASCII digits and a delimiter.
func isNumbered(s string) bool {
	_, ok := numberMarker(s)
	return ok
}

// numberMarker returns the length of a leading "<digits><delim><spaces>"
// marker.
func numberMarker(s string) (int, bool) {
	i := 0
	for i < len(s) && s[i] >= '0' && s[i] <= '9' {
		i++
	}
	if i == 0 {
		return 0, false
	}
	n, ok := delimiterAt(s, i)
	if !ok {
		return 0, false
	}
	return skipSpace(s, i+n), true
}

// delimiterAt returns the byte length of the delimiter at s[i:].
func delimiterAt(s string, i int) (int, bool) {
	for _, d := range delimiters {
		if strings.HasPrefix(s[i:], d) {
			return len(d), true
		}
	}
	return 0, false
}

// skipSpace advances past Unicode white space, newlines included.
func skipSpace(s string, i int) int {
	for i < len(s) {
		r, size := utf8.DecodeRuneInString(s[i:])
		if !unicode.IsSpace(r) {
			break
		}
		i += size
	}
	return i
}

// option is a recognised answer option inside a block body.
type option struct {
	text       string
	start, end int // span removed from the prompt
}

// parseBlock classifies one block as mcq, fill or nothing.
func parseBlock(block string) (pack.Question, bool) {
	body := block
	if n, ok := numberMarker(block); ok {
		body = block[n:]
	}

	opts := findOptions(body)
	prompt := body
	if len(opts) > 0 {
		var b strings.Builder
		last := 0
		for _, o := range opts {
			b.WriteString(body[last:o.start])
			last = o.end
		}
		b.WriteString(body[last:])
		prompt = b.String()
	}
	prompt = strings.TrimSpace(prompt)

	switch {
	case len(opts) >= 2:
		choices := make([]string, len(opts))
		for i, o := range opts {
			choices[i] = o.text
		}
		return pack.Question{
			Type:    pack.TypeMCQ,
			Prompt:  prompt,
			Choices: choices,
			Answer:  choices[0],
		}, true
	case prompt != "":
		return pack.Question{Type: pack.TypeFill, Prompt: prompt, Answer: ""}, true
	}
	return pack.Question{}, false
}

// findOptions scans body for option lines. A match may begin at the start
// of the body or at any newline, and runs to the end of the option text's
// line.
func findOptions(body string) []option {
	var opts []option
	pos := 0
	for pos < len(body) {
		if pos == 0 || body[pos] == '\n' {
			if o, ok := matchOption(body, pos); ok {
				opts = append(opts, o)
				pos = o.end
				continue
			}
		}
		next := strings.IndexByte(body[min(pos+1, len(body)):], '\n')
		if next < 0 {
			break
		}
		pos = pos + 1 + next
	}
	return opts
}

// matchOption tries to read "[ws][(]X[)]<delim>[ws]text" starting at the
// line boundary at pos, where X is one of A to D.
func matchOption(body string, pos int) (option, bool) {
	i := pos
	if i < len(body) && body[i] == '\n' {
		i++
	}
	i = skipSpace(body, i)
	if i < len(body) && body[i] == '(' {
		i++
	}
	if i >= len(body) || body[i] < 'A' || body[i] > 'D' {
		return option{}, false
	}
	i++

	switch {
	case i < len(body) && body[i] == ')' && hasDelimiter(body, i+1):
		n, _ := delimiterAt(body, i+1)
		i += 1 + n
	case hasDelimiter(body, i):
		n, _ := delimiterAt(body, i)
		i += n
	default:
		return option{}, false
	}

	textStart := skipSpace(body, i)
	textEnd := textStart
	for textEnd < len(body) && body[textEnd] != '\n' {
		textEnd++
	}
	if textEnd == textStart {
		return option{}, false
	}
	return option{
		text:  strings.TrimSpace(body[textStart:textEnd]),
		start: pos,
		end:   textEnd,
	}, true
}

func hasDelimiter(s string, i int) bool {
	if i >= len(s) {
		return false
	}
	_, ok := delimiterAt(s, i)
	return ok
}
