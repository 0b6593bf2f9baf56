package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sandeepkv93/habitd/internal/clock"
	"github.com/sandeepkv93/habitd/internal/model"
	"github.com/sandeepkv93/habitd/internal/views"
)

var streaksCmd = &cobra.Command{
	Use:   "streaks",
	Short: "Show the 90-day challenge streaks",
	RunE:  runStreaks,
}

func runStreaks(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	tr, store, err := openTracker(cmd.Context(), cfg, clock.SystemClock{})
	if err != nil {
		return err
	}
	defer func() { _ = store.Close() }()

	state := tr.State()
	fmt.Println(views.RenderStreaksPanel(views.StreaksPanelData{
		CurrentStreak:  state.CurrentStreak,
		LongestStreak:  state.LongestStreak,
		CompletedDays:  state.ChallengeCompletedCount(),
		ChallengeTotal: model.ChallengeDayCount,
	}))
	return nil
}
