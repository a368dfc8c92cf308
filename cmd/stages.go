package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/dungeonquiz/internal/catalog"
	"github.com/abhisek/dungeonquiz/internal/pack"
)

var stagesCmd = &cobra.Command{
	Use:   "stages",
	Short: "List stage options and the dungeon board for a stage",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		src, closeSrc, err := openSource(cfg)
		if err != nil {
			return fmt.Errorf("open packs: %w", err)
		}
		defer closeSrc()

		idx, err := pack.LoadIndex(cmd.Context(), src)
		if err != nil {
			return err
		}
		opts := catalog.Options(idx.Packs)

		stage, err := stageFromFlags(cmd, opts.Default)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "Grades: %s\n", joinInts(opts.Grades))
		fmt.Fprintf(out, "Terms:  %s\n", strings.Join(opts.Terms, ", "))
		phases := make([]string, 0, len(catalog.AllPhases()))
		for _, p := range catalog.AllPhases() {
			phases = append(phases, string(p))
		}
		fmt.Fprintf(out, "Phases: %s\n\n", strings.Join(phases, ", "))

		fmt.Fprintln(out, stage)
		for _, st := range catalog.Board(idx.Packs, stage) {
			state := "locked"
			if st.Unlocked() {
				state = st.Pack.ID
			}
			fmt.Fprintf(out, "  %s %-20s %s\n", st.Dungeon.Icon, st.Dungeon.Name, state)
		}
		return nil
	},
}

// stageFromFlags overrides def with any stage flags that were set.
func stageFromFlags(cmd *cobra.Command, def catalog.Stage) (catalog.Stage, error) {
	stage := def
	if g, _ := cmd.Flags().GetInt("grade"); g != 0 {
		stage.Grade = g
	}
	if t, _ := cmd.Flags().GetString("term"); t != "" {
		stage.Term = t
	}
	if s, _ := cmd.Flags().GetString("phase"); s != "" {
		p, err := catalog.ParsePhase(s)
		if err != nil {
			return catalog.Stage{}, err
		}
		stage.Phase = p
	}
	if err := stage.Validate(); err != nil {
		return catalog.Stage{}, err
	}
	return stage, nil
}

func joinInts(ns []int) string {
	parts := make([]string, len(ns))
	for i, n := range ns {
		parts[i] = fmt.Sprint(n)
	}
	return strings.Join(parts, ", ")
}

func init() {
	stagesCmd.Flags().Int("grade", 0, "Grade to show the board for")
	stagesCmd.Flags().String("term", "", "Term to show the board for")
	stagesCmd.Flags().String("phase", "", "Phase to show the board for")
}
