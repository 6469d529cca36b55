package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"ytlist/internal/config"
	"ytlist/internal/history"
)

var flagClearHistory bool

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List past playlist fetches",
	Args:  cobra.NoArgs,
	RunE:  historyRun,
}

func init() {
	historyCmd.Flags().BoolVar(&flagClearHistory, "clear", false, "Remove all history entries")
}

func historyRun(cmd *cobra.Command, args []string) error {
	path, err := config.HistoryPath()
	if err != nil {
		return fmt.Errorf("resolving history path: %w", err)
	}
	store, err := history.Open(path)
	if err != nil {
		return fmt.Errorf("opening history: %w", err)
	}
	defer store.Close()

	if flagClearHistory {
		return store.Clear()
	}

	entries, err := store.Entries()
	if err != nil {
		return fmt.Errorf("loading history: %w", err)
	}

	if len(entries) == 0 {
		fmt.Println("No history entries found.")
		return nil
	}

	for _, e := range entries {
		fmt.Printf("%s  %4d videos  %s\n", e.FetchedAt.Local().Format("2006-01-02 15:04"), e.Videos, e.URL)
	}
	return nil
}
