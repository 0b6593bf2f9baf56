package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sandeepkv93/habitd/internal/clock"
	"github.com/sandeepkv93/habitd/internal/model"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List archived daily summaries",
	RunE:  runHistory,
}

func init() {
	historyCmd.Flags().Int("limit", model.HistoryLimit, "Number of days to show, newest first")
}

func runHistory(cmd *cobra.Command, args []string) error {
	limit, _ := cmd.Flags().GetInt("limit")

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	tr, store, err := openTracker(cmd.Context(), cfg, clock.SystemClock{})
	if err != nil {
		return err
	}
	defer func() { _ = store.Close() }()

	history := tr.History()
	if len(history) == 0 {
		fmt.Println("No archived days yet.")
		return nil
	}

	shown := 0
	fmt.Printf("%-12s %-8s %-6s %s\n", "DATE", "TASKS", "WATER", "WEIGHT")
	for i := len(history) - 1; i >= 0 && shown < limit; i-- {
		rec := history[i]
		weight := "-"
		if rec.Progress.Weight != nil {
			weight = fmt.Sprintf("%gkg", *rec.Progress.Weight)
		}
		fmt.Printf("%-12s %2d/%-5d %d/%-4d %s\n",
			rec.Date, rec.TasksDone, rec.TotalTasks, rec.WaterGlasses, model.MaxWaterGlasses, weight)
		shown++
	}
	return nil
}
