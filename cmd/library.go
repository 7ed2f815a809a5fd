package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"sheetwise/internal/store"
)

var libraryCmd = &cobra.Command{
	Use:   "library",
	Short: "List saved worksheets",
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")

		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve database path: %w", err)
		}

		s, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer s.Close()

		summaries, err := s.Worksheets().List(context.Background(), limit)
		if err != nil {
			return fmt.Errorf("list worksheets: %w", err)
		}

		if len(summaries) == 0 {
			fmt.Println("No saved worksheets.")
			return nil
		}

		fmt.Printf("%-36s  %-30s  %-20s  %s\n", "ID", "Title", "Level", "Saved")
		fmt.Println(strings.Repeat("─", 100))
		for _, ws := range summaries {
			fmt.Printf("%-36s  %-30s  %-20s  %s\n",
				ws.ID,
				truncate(ws.Title, 30),
				truncate(ws.EducationalLevel, 20),
				ws.SavedAt.Local().Format("2006-01-02 15:04"),
			)
		}
		return nil
	},
}

func init() {
	libraryCmd.Flags().IntP("limit", "n", 0, "Limit number of worksheets shown (0 for all)")
}
