package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/solvo/internal/store"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List recently solved problems",
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")
		full, _ := cmd.Flags().GetBool("full")

		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve database path: %w", err)
		}

		s, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer s.Close()

		records, err := s.SolveRepo().RecentSolves(context.Background(), limit)
		if err != nil {
			return fmt.Errorf("query solves: %w", err)
		}

		if len(records) == 0 {
			fmt.Println("No solved problems yet.")
			return nil
		}

		for i, rec := range records {
			fmt.Printf("%s  %s\n",
				rec.Timestamp.Local().Format("2006-01-02 15:04"),
				oneLine(rec.Problem, 80))

			if full {
				sep := strings.Repeat("─", 60)
				fmt.Println(sep)
				fmt.Println("SOLUTION")
				fmt.Println(rec.Solution)
				fmt.Println()
				fmt.Println("FEEDBACK")
				fmt.Println(rec.Feedback)
				if i < len(records)-1 {
					fmt.Println(sep)
				}
				fmt.Println()
			}
		}
		return nil
	},
}

// oneLine collapses text to a single truncated line.
func oneLine(text string, limit int) string {
	line := strings.Join(strings.Fields(text), " ")
	if len(line) > limit {
		line = line[:limit-1] + "…"
	}
	return line
}

func init() {
	historyCmd.Flags().IntP("limit", "n", 20, "Number of solves to show")
	historyCmd.Flags().BoolP("full", "f", false, "Print full solution and feedback")
}
