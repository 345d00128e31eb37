package cli

import (
	"fmt"
	"os"
	"strconv"

	"github.com/limbo/engagement/internal/service"
	"github.com/limbo/engagement/pkg/entity"
	"github.com/spf13/cobra"
)

var xpFlags struct {
	id       string
	at       string
	metadata []string
}

func init() {
	xpAddCmd.Flags().StringVar(&xpFlags.id, "id", "", "event id, generated when empty")
	xpAddCmd.Flags().StringVar(&xpFlags.at, "at", "", "when the points were earned, now when empty")
	xpAddCmd.Flags().StringArrayVarP(&xpFlags.metadata, "meta", "m", nil, "metadata key=value, repeatable")

	xpCmd.AddCommand(xpAddCmd, xpStatusCmd)
	rootCmd.AddCommand(xpCmd)
}

var xpCmd = &cobra.Command{
	Use:   "xp",
	Short: "Record and sum experience points",
}

var xpAddCmd = &cobra.Command{
	Use:   "add <points>",
	Short: "Add experience points",
	Args:  cobra.ExactArgs(1),
	RunE:  runXPAdd,
}

var xpStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show experience totals",
	Args:  cobra.NoArgs,
	RunE:  runXPStatus,
}

func runXPAdd(cmd *cobra.Command, args []string) error {
	points, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("points %q: %w", args[0], err)
	}
	metadata, err := parseMetadata(xpFlags.metadata)
	if err != nil {
		return err
	}
	at, err := parseWhen(xpFlags.at)
	if err != nil {
		return err
	}
	e, err := openEngine()
	if err != nil {
		return err
	}
	defer e.Close()

	event, err := e.xp.AddXP(cmd.Context(), opts.userID, streamOr(entity.DefaultExperienceKey), &service.AddXPRequest{
		ID:         xpFlags.id,
		Points:     points,
		OccurredAt: at,
		Metadata:   metadata,
	})
	if err != nil {
		return err
	}
	if opts.jsonOutput {
		return printJSON(os.Stdout, event)
	}
	fmt.Printf("Added %d points (%s)\n", event.Points, event.ID)
	return nil
}

func runXPStatus(cmd *cobra.Command, args []string) error {
	e, err := openEngine()
	if err != nil {
		return err
	}
	defer e.Close()

	snapshot, err := e.xp.Recalculate(cmd.Context(), opts.userID, streamOr(entity.DefaultExperienceKey))
	if err != nil {
		return err
	}
	if opts.jsonOutput {
		return printJSON(os.Stdout, snapshot)
	}
	fmt.Printf("All time: %d\nToday: %d in %d events\nLast: %s\n",
		snapshot.PointsAllTime, snapshot.PointsToday, snapshot.EventsTodayCount, formatTime(snapshot.DateLastEvent))
	return nil
}
