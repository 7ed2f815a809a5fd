package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"sheetwise/internal/app"
	"sheetwise/internal/config"
	"sheetwise/internal/llm"
	"sheetwise/internal/sheetgen"
	"sheetwise/internal/store"
)

// runApp opens the store, builds dependencies, and launches the TUI.
func runApp(cmd *cobra.Command) error {
	ctx := cmd.Context()
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	cfg, err := config.LoadDefault()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Ignoring config file:", err)
	}

	opts := app.Options{
		Worksheets: st.Worksheets(),
		Attempts:   st.Attempts(),
		Config:     cfg,
	}

	hints := llm.Hints{Provider: cfg.LLM.Provider, Model: cfg.LLM.Model}
	provider, err := llm.NewProviderFromEnv(ctx, hints, st.Events())
	if err != nil {
		fmt.Fprintln(os.Stderr, "LLM provider not configured:", err)
		fmt.Fprintln(os.Stderr, "Worksheet generation will be unavailable.")
	} else {
		opts.Generator = sheetgen.New(provider, sheetgen.DefaultConfig())
	}

	return app.Run(opts)
}
