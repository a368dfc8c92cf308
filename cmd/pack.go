package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"

	"github.com/spf13/cobra"

	"github.com/abhisek/dungeonquiz/internal/explain"
	"github.com/abhisek/dungeonquiz/internal/llm"
	"github.com/abhisek/dungeonquiz/internal/pack"
	"github.com/abhisek/dungeonquiz/internal/store"
)

var packCmd = &cobra.Command{
	Use:   "pack",
	Short: "Build, check and enrich question packs",
}

var packBuildCmd = &cobra.Command{
	Use:   "build DRAFT",
	Short: "Build a publishable pack from a draft",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		form, err := metaFromFlags(cmd)
		if err != nil {
			return err
		}
		draft, err := readInput(cmd, args[0])
		if err != nil {
			return err
		}
		p, err := pack.BuildFromDraft(draft, form)
		if err != nil {
			return err
		}
		if p.Meta.ID == "" {
			return errors.New("pack id is required: set it in the draft or with --id")
		}

		printIssues(cmd, pack.Lint(p))

		data, err := pack.Marshal(p)
		if err != nil {
			return err
		}
		out, _ := cmd.Flags().GetString("output")
		if out == "" {
			out = pack.IndexEntry(p.Meta).File
		}
		if err := writeOutput(cmd, out, data); err != nil {
			return err
		}
		fmt.Fprintf(cmd.ErrOrStderr(), "built %s with %d questions\n", p.Meta.ID, len(p.Questions))
		return nil
	},
}

var packEntryCmd = &cobra.Command{
	Use:   "entry",
	Short: "Print the index entry for a pack",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		meta, err := metaFromFlags(cmd)
		if err != nil {
			return err
		}
		if meta.ID == "" {
			return errors.New("--id is required")
		}
		data, err := json.MarshalIndent(pack.IndexEntry(meta), "", "  ")
		if err != nil {
			return fmt.Errorf("marshal entry: %w", err)
		}
		return writeOutput(cmd, "", append(data, '\n'))
	},
}

var packLintCmd = &cobra.Command{
	Use:   "lint FILE",
	Short: "Check a pack for problems",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := readInput(cmd, args[0])
		if err != nil {
			return err
		}
		p, err := pack.Parse(data)
		if err != nil {
			return err
		}
		issues := pack.Lint(p)
		if len(issues) == 0 {
			fmt.Fprintf(cmd.OutOrStdout(), "%s: %d questions, no issues\n", p.Meta.ID, len(p.Questions))
			return nil
		}
		for _, issue := range issues {
			fmt.Fprintln(cmd.OutOrStdout(), issue)
		}
		return fmt.Errorf("%d issues found", len(issues))
	},
}

var packExplainCmd = &cobra.Command{
	Use:   "explain FILE",
	Short: "Write missing explanations with an LLM",
	Long: `Asks the configured LLM provider for a short explanation of every
question that has an answer but no explanation. Answers, choices and
difficulty are never changed.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		data, err := readInput(cmd, args[0])
		if err != nil {
			return err
		}
		p, err := pack.Parse(data)
		if err != nil {
			return err
		}

		cfg, err := llm.ResolveConfig()
		if err != nil {
			return fmt.Errorf("LLM provider not configured: %w", err)
		}

		// Requests are recorded in the library when it can be opened.
		var requests store.RequestLog
		if st, err := openStore(cmd); err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "warning: LLM requests will not be recorded: %v\n", err)
		} else {
			defer st.Close()
			requests = st
		}

		provider, err := llm.NewProvider(ctx, cfg, log.New(cmd.ErrOrStderr(), "", log.LstdFlags), requests)
		if err != nil {
			return fmt.Errorf("create LLM provider: %w", err)
		}

		filled, fillErr := explain.New(provider, explain.DefaultConfig()).FillMissing(ctx, p)
		if fillErr != nil && filled == 0 {
			return fillErr
		}

		out, err := pack.Marshal(p)
		if err != nil {
			return err
		}
		dest, _ := cmd.Flags().GetString("output")
		if err := writeOutput(cmd, dest, out); err != nil {
			return err
		}
		fmt.Fprintf(cmd.ErrOrStderr(), "filled %d explanations\n", filled)
		return fillErr
	},
}

func init() {
	addMetaFlags(packBuildCmd)
	packBuildCmd.Flags().StringP("output", "o", "", "Output file (default <id>.json, - for stdout)")

	addMetaFlags(packEntryCmd)

	packExplainCmd.Flags().StringP("output", "o", "", "Write the enriched pack here instead of stdout")

	packCmd.AddCommand(packBuildCmd)
	packCmd.AddCommand(packEntryCmd)
	packCmd.AddCommand(packLintCmd)
	packCmd.AddCommand(packExplainCmd)
}
