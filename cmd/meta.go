package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/abhisek/dungeonquiz/internal/catalog"
	"github.com/abhisek/dungeonquiz/internal/pack"
)

// addMetaFlags registers the pack meta flags shared by the authoring
// commands.
func addMetaFlags(cmd *cobra.Command) {
	cmd.Flags().String("id", "", "Pack id")
	cmd.Flags().String("title", "", "Pack title")
	cmd.Flags().Int("grade", 0, "Grade (1-6)")
	cmd.Flags().String("term", "", `Term, e.g. "2-1"`)
	cmd.Flags().String("phase", "", "Phase: practice, midterm or final")
	cmd.Flags().String("dungeon", "", "Dungeon id, e.g. math_mine")
}

// metaFromFlags reads the meta flags. Unset flags stay zero.
func metaFromFlags(cmd *cobra.Command) (pack.Meta, error) {
	var m pack.Meta
	m.ID, _ = cmd.Flags().GetString("id")
	m.Title, _ = cmd.Flags().GetString("title")
	m.Grade, _ = cmd.Flags().GetInt("grade")
	m.Term, _ = cmd.Flags().GetString("term")
	m.Dungeon, _ = cmd.Flags().GetString("dungeon")

	if s, _ := cmd.Flags().GetString("phase"); s != "" {
		p, err := catalog.ParsePhase(s)
		if err != nil {
			return pack.Meta{}, err
		}
		m.Phase = p
	}
	if m.Dungeon != "" {
		if _, err := catalog.GetDungeon(m.Dungeon); err != nil {
			return pack.Meta{}, err
		}
	}
	return m, nil
}

// readInput reads a named file, or stdin when the name is empty or "-".
func readInput(cmd *cobra.Command, name string) ([]byte, error) {
	if name == "" || name == "-" {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return nil, fmt.Errorf("read stdin: %w", err)
		}
		return data, nil
	}
	data, err := os.ReadFile(name)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", name, err)
	}
	return data, nil
}

// writeOutput writes data to the named file, or stdout when the name is
// empty or "-".
func writeOutput(cmd *cobra.Command, name string, data []byte) error {
	if name == "" || name == "-" {
		_, err := cmd.OutOrStdout().Write(data)
		return err
	}
	if err := os.WriteFile(name, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", name, err)
	}
	return nil
}

// printIssues writes lint issues to stderr, one per line.
func printIssues(cmd *cobra.Command, issues []pack.Issue) {
	for _, issue := range issues {
		fmt.Fprintln(cmd.ErrOrStderr(), issue)
	}
}
