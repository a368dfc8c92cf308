package pack

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
)

// DraftError reports a draft that could not be turned into a pack. No
// partial pack is produced.
type DraftError struct {
	Err error
}

func (e *DraftError) Error() string {
	return fmt.Sprintf("malformed draft: %v", e.Err)
}

func (e *DraftError) Unwrap() error { return e.Err }

// formDefaultGrade is used when the form leaves the grade blank.
const formDefaultGrade = 2

// draftDoc is a draft in pack shape. A zero meta field means "not set".
type draftDoc struct {
	Meta      *Meta      `json:"meta"`
	Questions []Question `json:"questions"`
}

// BuildFromDraft turns draft JSON into a publishable pack.
//
// A draft that is a JSON array is taken as the question list and gets the
// form meta. A draft object keeps its own grade, term, phase and dungeon
// when set, while a non-empty form id or title replaces the draft's. An
// empty draft is treated as an empty object.
func BuildFromDraft(draft []byte, form Meta) (*Pack, error) {
	if form.Grade == 0 {
		form.Grade = formDefaultGrade
	}

	trimmed := bytes.TrimSpace(draft)
	if len(trimmed) == 0 {
		trimmed = []byte("{}")
	}

	var raw json.RawMessage
	if err := json.Unmarshal(trimmed, &raw); err != nil {
		return nil, &DraftError{Err: err}
	}

	switch trimmed[0] {
	case '[':
		var questions []Question
		if err := json.Unmarshal(trimmed, &questions); err != nil {
			return nil, &DraftError{Err: fmt.Errorf("decode questions: %w", err)}
		}
		if questions == nil {
			questions = []Question{}
		}
		return &Pack{Meta: form, Questions: questions}, nil

	case '{':
		var doc draftDoc
		if err := json.Unmarshal(trimmed, &doc); err != nil {
			return nil, &DraftError{Err: fmt.Errorf("decode pack: %w", err)}
		}
		var meta Meta
		if doc.Meta != nil {
			meta = *doc.Meta
		}
		p := &Pack{Meta: mergeMeta(meta, form), Questions: doc.Questions}
		if p.Questions == nil {
			p.Questions = []Question{}
		}
		return p, nil
	}

	return nil, &DraftError{Err: errors.New("draft must be a question list or a pack object")}
}

func mergeMeta(draft, form Meta) Meta {
	out := draft
	if form.ID != "" {
		out.ID = form.ID
	}
	if form.Title != "" {
		out.Title = form.Title
	}
	if out.Grade == 0 {
		out.Grade = form.Grade
	}
	if out.Term == "" {
		out.Term = form.Term
	}
	if out.Phase == "" {
		out.Phase = form.Phase
	}
	if out.Dungeon == "" {
		out.Dungeon = form.Dungeon
	}
	return out
}

// NewDraftPack wraps freshly extracted questions with meta.
func NewDraftPack(meta Meta, questions []Question) *Pack {
	if questions == nil {
		questions = []Question{}
	}
	return &Pack{Meta: meta, Questions: questions}
}
