package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"sheetwise/internal/layout"
	"sheetwise/internal/render"
	"sheetwise/internal/store"
)

var previewCmd = &cobra.Command{
	Use:   "preview <worksheet-id>",
	Short: "Print a saved worksheet to stdout",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		showKey, _ := cmd.Flags().GetBool("key")
		themeName, _ := cmd.Flags().GetString("theme")
		mathMode, _ := cmd.Flags().GetBool("math")
		doodles, _ := cmd.Flags().GetBool("doodles")
		width, _ := cmd.Flags().GetInt("width")

		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve database path: %w", err)
		}

		s, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer s.Close()

		doc, err := s.Worksheets().Get(context.Background(), args[0])
		if err != nil {
			return fmt.Errorf("load worksheet: %w", err)
		}

		plan := layout.Resolve(layout.Request{
			EducationalLevel: doc.EducationalLevel,
			Theme:            layout.Theme(themeName),
			MathMode:         mathMode,
			Doodles:          doodles,
		})

		fmt.Println(render.Document(doc, plan, render.Options{
			ShowKey: showKey,
			Width:   width,
		}))
		return nil
	},
}

func init() {
	previewCmd.Flags().BoolP("key", "k", false, "Overlay the answer key")
	previewCmd.Flags().StringP("theme", "t", "classic", "Theme: classic or creative")
	previewCmd.Flags().BoolP("math", "m", false, "Math mode (monospace alignment, working space)")
	previewCmd.Flags().BoolP("doodles", "d", false, "Doodle decorations")
	previewCmd.Flags().IntP("width", "w", 80, "Render width in cells")
}
