package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/dungeonquiz/internal/app"
)

// runApp resolves the pack source and launches the TUI.
func runApp(cmd *cobra.Command) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	src, closeSrc, err := openSource(cfg)
	if err != nil {
		return fmt.Errorf("open packs: %w", err)
	}
	defer closeSrc()

	return app.Run(app.Options{
		Source: src,
		Kids:   cfg.KidProfiles(),
		Count:  cfg.Count,
	})
}
