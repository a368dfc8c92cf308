package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/dungeonquiz/internal/catalog"
	"github.com/abhisek/dungeonquiz/internal/config"
	"github.com/abhisek/dungeonquiz/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "dungeonquiz",
	Short: "Quiz dungeons for kids",
	Long:  "DungeonQuiz — terminal quiz game where children answer worksheet questions to collect parts and build houses.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("packs", "", "Directory holding index.json and pack files (overrides DUNGEONQUIZ_PACKS)")
	rootCmd.PersistentFlags().String("library", "", "Path to the SQLite pack library (overrides DUNGEONQUIZ_LIBRARY)")
	rootCmd.PersistentFlags().Int("count", 0, "Questions per run (overrides DUNGEONQUIZ_COUNT)")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(extractCmd)
	rootCmd.AddCommand(packCmd)
	rootCmd.AddCommand(libraryCmd)
	rootCmd.AddCommand(stagesCmd)
	rootCmd.AddCommand(versionCmd)
}

// loadConfig reads the environment and applies flag overrides.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return config.Config{}, fmt.Errorf("load config: %w", err)
	}
	if p, _ := cmd.Flags().GetString("packs"); p != "" {
		cfg.PacksDir = p
	}
	if p, _ := cmd.Flags().GetString("library"); p != "" {
		cfg.Library = p
	}
	if n, _ := cmd.Flags().GetInt("count"); n > 0 {
		cfg.Count = n
	}
	return cfg, nil
}

// resolveDBPath returns the library path using --library flag (highest
// priority), then DUNGEONQUIZ_LIBRARY env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("library"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}

// openSource returns the pack source the game reads from: the library when
// one is configured, otherwise the packs directory. The returned close
// func is never nil.
func openSource(cfg config.Config) (catalog.Source, func() error, error) {
	if cfg.Library == "" {
		return catalog.NewCached(catalog.NewDirSource(cfg.PacksDir)), func() error { return nil }, nil
	}
	if err := store.EnsureDir(cfg.Library); err != nil {
		return nil, nil, err
	}
	st, err := store.Open(cfg.Library)
	if err != nil {
		return nil, nil, fmt.Errorf("open library: %w", err)
	}
	return catalog.NewCached(st.Library()), st.Close, nil
}

// openStore opens the pack library for the library subcommands.
func openStore(cmd *cobra.Command) (*store.Store, error) {
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return nil, fmt.Errorf("resolve library path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return nil, fmt.Errorf("open library: %w", err)
	}
	return st, nil
}
