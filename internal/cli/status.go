package cli

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/limbo/engagement/pkg/entity"
	"github.com/spf13/cobra"
)

var calendarDays int

func init() {
	calendarCmd.Flags().IntVarP(&calendarDays, "days", "d", 14, "number of days, today included")
	rootCmd.AddCommand(statusCmd, calendarCmd)
}

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Recalculate and show the streak",
	Args:  cobra.NoArgs,
	RunE:  runStatus,
}

var calendarCmd = &cobra.Command{
	Use:   "calendar",
	Short: "Show qualifying days of the last days",
	Args:  cobra.NoArgs,
	RunE:  runCalendar,
}

func runStatus(cmd *cobra.Command, args []string) error {
	e, err := openEngine()
	if err != nil {
		return err
	}
	defer e.Close()

	snapshot, err := e.streaks.Recalculate(cmd.Context(), opts.userID, streamOr(entity.DefaultStreakKey))
	if err != nil {
		return err
	}
	if opts.jsonOutput {
		return printJSON(os.Stdout, snapshot)
	}
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "Streak\t%s\n", snapshot.StreakKey)
	fmt.Fprintf(w, "Status\t%s\n", snapshot.Status)
	fmt.Fprintf(w, "Current\t%d\n", snapshot.CurrentStreak)
	fmt.Fprintf(w, "Longest\t%d\n", snapshot.LongestStreak)
	fmt.Fprintf(w, "Today\t%d/%d events\n", snapshot.TodayEventCount, snapshot.EventsRequiredPerDay)
	fmt.Fprintf(w, "Total events\t%d\n", snapshot.TotalEvents)
	fmt.Fprintf(w, "Last event\t%s\n", formatTime(snapshot.DateLastEvent))
	fmt.Fprintf(w, "Freezes\t%d\n", snapshot.FreezesAvailableCount)
	if snapshot.ApplyManualStreakFreezeStatus.CanSave() {
		fmt.Fprintf(w, "Can save\twith %d freezes, run 'streakctl freeze use'\n", snapshot.ApplyManualStreakFreezeStatus.Count)
	} else if snapshot.FreezesNeeded > 0 {
		fmt.Fprintf(w, "Needs\t%d freezes to save\n", snapshot.FreezesNeeded)
	}
	return w.Flush()
}

func runCalendar(cmd *cobra.Command, args []string) error {
	e, err := openEngine()
	if err != nil {
		return err
	}
	defer e.Close()

	buckets, err := e.streaks.Calendar(cmd.Context(), opts.userID, streamOr(entity.DefaultStreakKey), calendarDays)
	if err != nil {
		return err
	}
	if opts.jsonOutput {
		return printJSON(os.Stdout, buckets)
	}
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "DAY\tEVENTS\tMARK")
	for _, b := range buckets {
		mark := "."
		switch {
		case b.FreezeApplied:
			mark = "*"
		case b.Qualifying:
			mark = "x"
		}
		fmt.Fprintf(w, "%s\t%d\t%s\n", b.Day, b.EventCount, mark)
	}
	return w.Flush()
}
