package cli

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/limbo/engagement/internal/service"
	"github.com/limbo/engagement/pkg/entity"
	"github.com/spf13/cobra"
)

var eventFlags struct {
	id       string
	at       string
	metadata []string
	field    string
	equals   string
}

func init() {
	eventAddCmd.Flags().StringVar(&eventFlags.id, "id", "", "event id, generated when empty")
	eventAddCmd.Flags().StringVar(&eventFlags.at, "at", "", "when the event happened, now when empty")
	eventAddCmd.Flags().StringArrayVarP(&eventFlags.metadata, "meta", "m", nil, "metadata key=value, repeatable")
	eventListCmd.Flags().StringVar(&eventFlags.field, "field", "", "metadata field to filter on")
	eventListCmd.Flags().StringVar(&eventFlags.equals, "equals", "", "value the metadata field must equal")

	eventCmd.AddCommand(eventAddCmd, eventListCmd, eventClearCmd)
	rootCmd.AddCommand(eventCmd)
}

var eventCmd = &cobra.Command{
	Use:   "event",
	Short: "Manage the event log of a streak",
}

var eventAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Append an engagement event",
	Args:  cobra.NoArgs,
	RunE:  runEventAdd,
}

var eventListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List events in insertion order",
	Args:    cobra.NoArgs,
	RunE:    runEventList,
}

var eventClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Delete every event of the streak, freezes are kept",
	Args:  cobra.NoArgs,
	RunE:  runEventClear,
}

func runEventAdd(cmd *cobra.Command, args []string) error {
	metadata, err := parseMetadata(eventFlags.metadata)
	if err != nil {
		return err
	}
	at, err := parseWhen(eventFlags.at)
	if err != nil {
		return err
	}
	e, err := openEngine()
	if err != nil {
		return err
	}
	defer e.Close()

	key := streamOr(entity.DefaultStreakKey)
	event, err := e.streaks.AddEvent(cmd.Context(), opts.userID, key, &service.AddEventRequest{
		ID:         eventFlags.id,
		OccurredAt: at,
		Metadata:   metadata,
	})
	if err != nil {
		return err
	}
	snapshot, err := e.streaks.Recalculate(cmd.Context(), opts.userID, key)
	if err != nil {
		return err
	}
	if opts.jsonOutput {
		return printJSON(os.Stdout, map[string]any{"event": event, "streak": snapshot})
	}
	fmt.Printf("Added %s. Current streak: %d (%s)\n", event.ID, snapshot.CurrentStreak, snapshot.Status)
	return nil
}

func runEventList(cmd *cobra.Command, args []string) error {
	e, err := openEngine()
	if err != nil {
		return err
	}
	defer e.Close()

	var equals any
	if eventFlags.field != "" {
		equals = eventFlags.equals
	}
	events, err := e.streaks.GetEvents(cmd.Context(), opts.userID, streamOr(entity.DefaultStreakKey), eventFlags.field, equals)
	if err != nil {
		return err
	}
	if opts.jsonOutput {
		return printJSON(os.Stdout, events)
	}
	if len(events) == 0 {
		fmt.Println("No events yet. Run 'streakctl event add' to record one.")
		return nil
	}
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tOCCURRED\tFREEZE\tMETADATA")
	for _, ev := range events {
		freeze := "-"
		if ev.IsFreezeConsumption {
			freeze = ev.FreezeID
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%v\n", ev.ID, formatTime(&ev.OccurredAt), freeze, map[string]any(ev.Metadata))
	}
	return w.Flush()
}

func runEventClear(cmd *cobra.Command, args []string) error {
	e, err := openEngine()
	if err != nil {
		return err
	}
	defer e.Close()

	n, err := e.streaks.DeleteAllEvents(cmd.Context(), opts.userID, streamOr(entity.DefaultStreakKey))
	if err != nil {
		return err
	}
	fmt.Printf("Deleted %d events\n", n)
	return nil
}
