package cli

import (
	"errors"
	"fmt"
	"os"
	"text/tabwriter"

	errorvalues "github.com/limbo/engagement/internal/error_values"
	"github.com/limbo/engagement/internal/service"
	"github.com/limbo/engagement/pkg/entity"
	"github.com/spf13/cobra"
)

var freezeFlags struct {
	id      string
	expires string
}

func init() {
	freezeAddCmd.Flags().StringVar(&freezeFlags.id, "id", "", "freeze id, generated when empty")
	freezeAddCmd.Flags().StringVar(&freezeFlags.expires, "expires", "", "expiry instant, never when empty")

	freezeCmd.AddCommand(freezeAddCmd, freezeListCmd, freezeUseCmd)
	rootCmd.AddCommand(freezeCmd)
}

var freezeCmd = &cobra.Command{
	Use:   "freeze",
	Short: "Manage streak freezes",
}

var freezeAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a freeze to the inventory",
	Args:  cobra.NoArgs,
	RunE:  runFreezeAdd,
}

var freezeListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List freezes oldest first",
	Args:    cobra.NoArgs,
	RunE:    runFreezeList,
}

var freezeUseCmd = &cobra.Command{
	Use:   "use",
	Short: "Spend freezes to bridge the gap that broke the streak",
	Args:  cobra.NoArgs,
	RunE:  runFreezeUse,
}

func runFreezeAdd(cmd *cobra.Command, args []string) error {
	expires, err := parseWhen(freezeFlags.expires)
	if err != nil {
		return err
	}
	e, err := openEngine()
	if err != nil {
		return err
	}
	defer e.Close()

	freeze, err := e.streaks.AddFreeze(cmd.Context(), opts.userID, streamOr(entity.DefaultStreakKey), &service.AddFreezeRequest{
		ID:          freezeFlags.id,
		DateExpires: expires,
	})
	if err != nil {
		return err
	}
	if opts.jsonOutput {
		return printJSON(os.Stdout, freeze)
	}
	fmt.Printf("Added freeze %s\n", freeze.ID)
	return nil
}

func runFreezeList(cmd *cobra.Command, args []string) error {
	e, err := openEngine()
	if err != nil {
		return err
	}
	defer e.Close()

	freezes, err := e.streaks.ListFreezes(cmd.Context(), opts.userID, streamOr(entity.DefaultStreakKey))
	if err != nil {
		return err
	}
	if opts.jsonOutput {
		return printJSON(os.Stdout, freezes)
	}
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tCREATED\tEXPIRES\tCONSUMED")
	for _, f := range freezes {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", f.ID, formatTime(&f.DateCreated), formatTime(f.DateExpires), formatTime(f.DateConsumed))
	}
	return w.Flush()
}

func runFreezeUse(cmd *cobra.Command, args []string) error {
	e, err := openEngine()
	if err != nil {
		return err
	}
	defer e.Close()

	snapshot, err := e.streaks.UseFreezes(cmd.Context(), opts.userID, streamOr(entity.DefaultStreakKey))
	if errors.Is(err, errorvalues.ErrNothingToBridge) {
		fmt.Println("Nothing to save, the streak has no gap.")
		return nil
	}
	if err != nil {
		return err
	}
	if opts.jsonOutput {
		return printJSON(os.Stdout, snapshot)
	}
	fmt.Printf("Streak saved: %d days, %d freezes left\n", snapshot.CurrentStreak, snapshot.FreezesAvailableCount)
	return nil
}
