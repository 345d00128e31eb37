package cli

import (
	"fmt"
	"os"
	"strconv"
	"text/tabwriter"

	"github.com/limbo/engagement/internal/service"
	"github.com/limbo/engagement/pkg/entity"
	"github.com/spf13/cobra"
)

var progressFlags struct {
	metadata []string
	field    string
	equals   string
	all      bool
}

func init() {
	progressSetCmd.Flags().StringArrayVarP(&progressFlags.metadata, "meta", "m", nil, "metadata key=value, repeatable")
	progressMaxCmd.Flags().StringVar(&progressFlags.field, "field", "", "metadata field to filter on")
	progressMaxCmd.Flags().StringVar(&progressFlags.equals, "equals", "", "value the metadata field must equal")
	progressDeleteCmd.Flags().BoolVar(&progressFlags.all, "all", false, "delete every item of the key")

	progressCmd.AddCommand(progressSetCmd, progressGetCmd, progressListCmd, progressMaxCmd, progressDeleteCmd)
	rootCmd.AddCommand(progressCmd)
}

var progressCmd = &cobra.Command{
	Use:   "progress",
	Short: "Track per-item progress between 0 and 1",
}

var progressSetCmd = &cobra.Command{
	Use:   "set <id> <value>",
	Short: "Set progress of an item, clamped into [0, 1]",
	Args:  cobra.ExactArgs(2),
	RunE:  runProgressSet,
}

var progressGetCmd = &cobra.Command{
	Use:   "get <id>",
	Short: "Show progress of an item",
	Args:  cobra.ExactArgs(1),
	RunE:  runProgressGet,
}

var progressListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List progress items",
	Args:    cobra.NoArgs,
	RunE:    runProgressList,
}

var progressMaxCmd = &cobra.Command{
	Use:   "max",
	Short: "Highest progress among items matching a metadata filter",
	Args:  cobra.NoArgs,
	RunE:  runProgressMax,
}

var progressDeleteCmd = &cobra.Command{
	Use:   "delete [id]",
	Short: "Delete one item, or all of them with --all",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runProgressDelete,
}

func runProgressSet(cmd *cobra.Command, args []string) error {
	value, err := strconv.ParseFloat(args[1], 64)
	if err != nil {
		return fmt.Errorf("value %q: %w", args[1], err)
	}
	metadata, err := parseMetadata(progressFlags.metadata)
	if err != nil {
		return err
	}
	e, err := openEngine()
	if err != nil {
		return err
	}
	defer e.Close()

	item, err := e.progress.SetProgress(cmd.Context(), opts.userID, streamOr(entity.DefaultProgressKey), &service.SetProgressRequest{
		ID:       args[0],
		Value:    value,
		Metadata: metadata,
	})
	if err != nil {
		return err
	}
	if opts.jsonOutput {
		return printJSON(os.Stdout, item)
	}
	fmt.Printf("%s: %g\n", item.ID, item.Value)
	return nil
}

func runProgressGet(cmd *cobra.Command, args []string) error {
	e, err := openEngine()
	if err != nil {
		return err
	}
	defer e.Close()

	item, err := e.progress.GetProgress(cmd.Context(), opts.userID, streamOr(entity.DefaultProgressKey), args[0])
	if err != nil {
		return err
	}
	if opts.jsonOutput {
		return printJSON(os.Stdout, item)
	}
	fmt.Printf("%s: %g\n", item.ID, item.Value)
	return nil
}

func runProgressList(cmd *cobra.Command, args []string) error {
	e, err := openEngine()
	if err != nil {
		return err
	}
	defer e.Close()

	items, err := e.progress.ListProgress(cmd.Context(), opts.userID, streamOr(entity.DefaultProgressKey))
	if err != nil {
		return err
	}
	if opts.jsonOutput {
		return printJSON(os.Stdout, items)
	}
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tVALUE\tMODIFIED\tMETADATA")
	for _, item := range items {
		fmt.Fprintf(w, "%s\t%g\t%s\t%v\n", item.ID, item.Value, formatTime(&item.DateModified), map[string]any(item.Metadata))
	}
	return w.Flush()
}

func runProgressMax(cmd *cobra.Command, args []string) error {
	e, err := openEngine()
	if err != nil {
		return err
	}
	defer e.Close()

	var equals any
	if progressFlags.field != "" {
		equals = progressFlags.equals
	}
	best, err := e.progress.MaxProgress(cmd.Context(), opts.userID, streamOr(entity.DefaultProgressKey), progressFlags.field, equals)
	if err != nil {
		return err
	}
	if opts.jsonOutput {
		return printJSON(os.Stdout, map[string]float64{"max": best})
	}
	fmt.Printf("%g\n", best)
	return nil
}

func runProgressDelete(cmd *cobra.Command, args []string) error {
	if progressFlags.all == (len(args) == 1) {
		return fmt.Errorf("pass an item id or --all")
	}
	e, err := openEngine()
	if err != nil {
		return err
	}
	defer e.Close()

	key := streamOr(entity.DefaultProgressKey)
	if progressFlags.all {
		n, err := e.progress.DeleteAllProgress(cmd.Context(), opts.userID, key)
		if err != nil {
			return err
		}
		fmt.Printf("Deleted %d items\n", n)
		return nil
	}
	if err := e.progress.DeleteProgress(cmd.Context(), opts.userID, key, args[0]); err != nil {
		return err
	}
	fmt.Printf("Deleted %s\n", args[0])
	return nil
}
