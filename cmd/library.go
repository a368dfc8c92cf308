package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/dungeonquiz/internal/pack"
)

var libraryCmd = &cobra.Command{
	Use:   "library",
	Short: "Manage the local pack library",
}

var libraryPublishCmd = &cobra.Command{
	Use:   "publish FILE...",
	Short: "Add or replace packs in the library",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()
		lib := st.Library()

		for _, name := range args {
			data, err := readInput(cmd, name)
			if err != nil {
				return err
			}
			p, err := pack.Parse(data)
			if err != nil {
				return fmt.Errorf("%s: %w", name, err)
			}
			issues := pack.Lint(p)
			printIssues(cmd, issues)
			if pack.HasErrors(issues) {
				return fmt.Errorf("%s: pack has errors, not published", name)
			}
			if err := lib.Publish(ctx, pack.IndexEntry(p.Meta), data); err != nil {
				return fmt.Errorf("%s: %w", name, err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "published %s (%s)\n", p.Meta.ID, p.Meta.Stage())
		}
		return nil
	},
}

var libraryListCmd = &cobra.Command{
	Use:   "list",
	Short: "List published packs",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		idx, err := st.Library().Index(cmd.Context())
		if err != nil {
			return fmt.Errorf("list packs: %w", err)
		}
		out := cmd.OutOrStdout()
		if len(idx.Packs) == 0 {
			fmt.Fprintln(out, "No packs published.")
			return nil
		}

		fmt.Fprintf(out, "%-24s  %-5s  %-6s  %-9s  %-16s  %s\n", "ID", "Grade", "Term", "Phase", "Dungeon", "Title")
		fmt.Fprintln(out, strings.Repeat("─", 90))
		for _, d := range idx.Packs {
			fmt.Fprintf(out, "%-24s  %-5d  %-6s  %-9s  %-16s  %s\n", d.ID, d.Grade, d.Term, d.Phase, d.Dungeon, d.Title)
		}
		return nil
	},
}

var libraryRemoveCmd = &cobra.Command{
	Use:   "rm ID",
	Short: "Remove a pack from the library",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		if err := st.Library().Remove(cmd.Context(), args[0]); err != nil {
			return fmt.Errorf("remove %s: %w", args[0], err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "removed %s\n", args[0])
		return nil
	},
}

var libraryUsageCmd = &cobra.Command{
	Use:   "usage",
	Short: "Show LLM usage recorded while authoring packs",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		u, err := st.LLMUsage(cmd.Context())
		if err != nil {
			return fmt.Errorf("read usage: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "requests: %d (%d failed)\ntokens:   %d in / %d out\n",
			u.Requests, u.Failures, u.InputTokens, u.OutputTokens)
		return nil
	},
}

func init() {
	libraryCmd.AddCommand(libraryPublishCmd)
	libraryCmd.AddCommand(libraryListCmd)
	libraryCmd.AddCommand(libraryRemoveCmd)
	libraryCmd.AddCommand(libraryUsageCmd)
}
