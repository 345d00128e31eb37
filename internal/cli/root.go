// Package cli implements streakctl, a local engagement ledger on top of the
// SQLite store.
package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/bytedance/sonic"
	"github.com/limbo/engagement/internal/repository/sqlitestore"
	"github.com/limbo/engagement/internal/service"
	"github.com/limbo/engagement/pkg/config"
	"github.com/spf13/cobra"
)

type options struct {
	dataDir     string
	streamsPath string
	userID      string
	stream      string
	jsonOutput  bool
}

var opts options

var rootCmd = &cobra.Command{
	Use:   "streakctl",
	Short: "streakctl: inspect and edit a local engagement ledger",
	Long: `streakctl records engagement events, freezes, experience points and
progress for a user in a local SQLite database and derives streaks from them.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&opts.dataDir, "data-dir", "./data", "directory of the SQLite database, \":memory:\" for a throwaway ledger")
	flags.StringVar(&opts.streamsPath, "streams", "", "stream definitions (.toml, .yaml), defaults when empty")
	flags.StringVarP(&opts.userID, "user", "u", "local", "user id")
	flags.StringVarP(&opts.stream, "stream", "s", "", "stream key, the default key of the command's kind when empty")
	flags.BoolVar(&opts.jsonOutput, "json", false, "print results as JSON")
}

// Execute runs the root command. Called from main.go.
func Execute(version string) {
	rootCmd.Version = version
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

// engine is the wiring one command invocation needs.
type engine struct {
	db       *sqlitestore.DB
	streaks  *service.StreakService
	xp       *service.XPService
	progress *service.ProgressService
}

func openEngine() (*engine, error) {
	streams := config.DefaultStreams()
	if opts.streamsPath != "" {
		loaded, err := config.LoadStreams(opts.streamsPath)
		if err != nil {
			return nil, err
		}
		streams = loaded
	}
	db, err := sqlitestore.Open(opts.dataDir)
	if err != nil {
		return nil, err
	}
	e := &engine{db: db}
	if e.streaks, err = service.NewStreakService(db.Events(), db.Freezes(), streams.Streaks); err != nil {
		db.Close()
		return nil, err
	}
	if e.xp, err = service.NewXPService(db.XP(), streams.Experiences); err != nil {
		db.Close()
		return nil, err
	}
	if e.progress, err = service.NewProgressService(db.Progress(), streams.Progress); err != nil {
		db.Close()
		return nil, err
	}
	return e, nil
}

func (e *engine) Close() error {
	return e.db.Close()
}

func streamOr(def string) string {
	if opts.stream != "" {
		return opts.stream
	}
	return def
}

// printJSON writes v indented, used by --json and for structured values.
func printJSON(w io.Writer, v any) error {
	raw, err := sonic.ConfigStd.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, string(raw))
	return err
}
