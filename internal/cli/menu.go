package cli

import (
	"fmt"
	"log"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/emptrack/internal/menu"
	"github.com/mesh-intelligence/emptrack/internal/prompt"
	"github.com/mesh-intelligence/emptrack/internal/render"
	"github.com/mesh-intelligence/emptrack/internal/store"
)

const banner = "EMPLOYEE MANAGEMENT SYSTEM"

// runMenu opens the store, runs the interactive menu, and closes the store
// when the user exits.
func runMenu(cmd *cobra.Command, args []string) error {
	_, cfg, err := loadSettings()
	if err != nil {
		return err
	}

	logger := log.New(cmd.ErrOrStderr(), "emptrack: ", 0)
	ctx := cmd.Context()

	s, err := store.Open(ctx, cfg)
	if err != nil {
		return sysError(fmt.Errorf("open store: %w", err))
	}
	defer s.Close()
	if flags.verbose {
		logger.Printf("connected to %s", cfg.Driver)
		if s.Seeded() {
			logger.Printf("database seeded with sample data")
		}
	}

	term, err := prompt.NewTerminal(cmd.OutOrStdout())
	if err != nil {
		return sysError(err)
	}
	defer term.Close()

	out := render.New(cmd.OutOrStdout(), cfg.Output, cfg.Color)
	out.Title(banner)

	if err := menu.New(s, term, out, logger).Run(ctx); err != nil {
		return sysError(err)
	}
	if err := s.Close(); err != nil {
		return sysError(fmt.Errorf("close store: %w", err))
	}
	return nil
}
