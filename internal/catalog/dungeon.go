package catalog

import (
	"fmt"
	"slices"
	"strings"
)

// Dungeon is a themed subject area shown on the dungeon board.
type Dungeon struct {
	ID          string
	Name        string
	Icon        string
	Description string
}

var dungeons = []Dungeon{
	{ID: "chinese_forest", Name: "Word Magic Forest", Icon: "🌲", Description: "Characters, words and reading"},
	{ID: "math_mine", Name: "Number Gold Mine", Icon: "⛏️", Description: "Counting, sums and shapes"},
	{ID: "social_village", Name: "Life Village", Icon: "🏘️", Description: "Community, places and daily life"},
	{ID: "english_island", Name: "English Island", Icon: "🏝️", Description: "Letters, words and phrases"},
	{ID: "science_lab", Name: "Nature Lab", Icon: "🔬", Description: "Plants, animals and how things work"},
	{ID: "idiom_theater", Name: "Idiom Theater", Icon: "🎭", Description: "Idioms and their stories"},
	{ID: "sentence_diary", Name: "Sentence Diary", Icon: "📔", Description: "Building and fixing sentences"},
}

var dungeonByID = func() map[string]Dungeon {
	m := make(map[string]Dungeon, len(dungeons))
	for _, d := range dungeons {
		m[d.ID] = d
	}
	return m
}()

// AllDungeons returns every dungeon in board order.
func AllDungeons() []Dungeon {
	return slices.Clone(dungeons)
}

// GetDungeon returns a dungeon by ID, or error if not found.
func GetDungeon(id string) (Dungeon, error) {
	d, ok := dungeonByID[id]
	if !ok {
		return Dungeon{}, fmt.Errorf("dungeon not found: %q", id)
	}
	return d, nil
}

// Validate checks the dungeon registry for structural issues.
func Validate() error {
	return validateDungeons(dungeons)
}

func validateDungeons(ds []Dungeon) error {
	var errs []string
	seen := make(map[string]bool, len(ds))
	for _, d := range ds {
		if d.ID == "" {
			errs = append(errs, fmt.Sprintf("dungeon %q has empty ID", d.Name))
			continue
		}
		if seen[d.ID] {
			errs = append(errs, fmt.Sprintf("duplicate dungeon ID: %q", d.ID))
		}
		seen[d.ID] = true
		if d.Name == "" {
			errs = append(errs, fmt.Sprintf("dungeon %q has empty name", d.ID))
		}
	}
	if len(errs) > 0 {
		return fmt.Errorf("dungeon registry validation failed:\n  %s", strings.Join(errs, "\n  "))
	}
	return nil
}
