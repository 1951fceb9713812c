package cli

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"

	"sdkshell/internal/tui"
	"sdkshell/internal/ui"
	"sdkshell/pkg/sdk"
)

var licensesCmd = &cobra.Command{
	Use:   "licenses",
	Short: "Accept SDK licenses",
	Long: `Ask once, then answer yes to every license prompt sdkmanager shows.

Examples:
  sdkshell licenses         # Ask before accepting
  sdkshell licenses -y      # Accept without asking`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := commandContext(cmd)
		defer stop()
		return runCommand(ctx, &licensesCommand{app: app}, nil)
	},
}

var systemCmd = &cobra.Command{
	Use:   "system",
	Short: "Show system information",
	Long: `Display the detected platform and the sdkmanager executable in use.

Examples:
  sdkshell system`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runCommand(cmd.Context(), &systemCommand{app: app}, nil)
	},
}

var (
	historyLimit int
	historyClear bool
	historyPrune time.Duration
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show operation history",
	Long: `Display the install, uninstall and license operations run by sdkshell.

Examples:
  sdkshell history              # Show recent history
  sdkshell history -l 20        # Show last 20 operations
  sdkshell history --prune 720h # Delete entries older than 30 days
  sdkshell history --clear      # Delete all entries`,
	Args: cobra.NoArgs,
	RunE: runHistory,
}

func init() {
	historyCmd.Flags().IntVarP(&historyLimit, "limit", "l", defaultHistoryLimit, "number of entries to show")
	historyCmd.Flags().BoolVar(&historyClear, "clear", false, "delete all history entries")
	historyCmd.Flags().DurationVar(&historyPrune, "prune", 0, "delete entries older than this age")
	historyCmd.MarkFlagsMutuallyExclusive("clear", "prune")
}

func runHistory(cmd *cobra.Command, args []string) error {
	if cmd.Flags().Changed("prune") {
		return app.pruneHistory(historyPrune)
	}
	if !historyClear {
		return app.showHistory(historyLimit)
	}

	if app.openHistory == nil {
		return ErrHistoryDisabled
	}
	if !cfg.General.AutoConfirm {
		confirmed, err := ui.Confirm("Delete all history entries?", false)
		if err != nil {
			return err
		}
		if !confirmed {
			return ErrAborted
		}
	}

	store, err := app.openHistory()
	if err != nil {
		return err
	}
	defer store.Close()

	if err := store.Clear(); err != nil {
		return err
	}
	ui.SuccessMsg("History cleared")
	return nil
}

// pruneHistory deletes entries older than maxAge.
func (a *App) pruneHistory(maxAge time.Duration) error {
	if a.openHistory == nil {
		return ErrHistoryDisabled
	}
	if maxAge <= 0 {
		return fmt.Errorf("prune age must be positive, got %s", maxAge)
	}

	store, err := a.openHistory()
	if err != nil {
		return fmt.Errorf("failed to open history: %w", err)
	}
	defer store.Close()

	deleted, err := store.Prune(maxAge)
	if err != nil {
		return fmt.Errorf("failed to prune history: %w", err)
	}
	ui.SuccessMsg("Removed %d entries older than %s", deleted, maxAge)
	return nil
}

var browseCmd = &cobra.Command{
	Use:   "browse [all|buildtools]",
	Short: "Browse packages in a full-screen view",
	Long: `Launch a full-screen package browser.

Keys:
  1/2 or left/right   switch between available and installed
  up/down or j/k      move
  i / u               install / uninstall the selected package
  r                   list again
  ?                   help
  q                   quit`,
	Args: cobra.MaximumNArgs(1),
	RunE: runBrowse,
}

func runBrowse(cmd *cobra.Command, args []string) error {
	family := sdk.FamilyBuildTools
	if len(args) == 1 {
		var err error
		if family, err = sdk.ParseFamily(args[0]); err != nil {
			return err
		}
	}

	record := func(args []string, result *sdk.Result, err error) {
		pkg := ""
		if result != nil {
			pkg = result.Package
		}
		app.recordSelection(family, args, pkg, result, err)
	}

	// Nothing but the view may draw while it owns the screen.
	if app.runner != nil {
		app.runner.SetOutput(io.Discard, io.Discard)
		defer app.runner.SetOutput(os.Stdout, os.Stderr)
	}
	app.logger.SetOutput(io.Discard)
	defer app.logger.SetOutput(os.Stderr)

	return tui.Run(cmd.Context(), app.Selector(family), record)
}

// newStubCmd creates a command that exists but is not implemented yet.
func newStubCmd(name, short string) *cobra.Command {
	stub := &stubCommand{name: name, help: short}
	return &cobra.Command{
		Use:   name,
		Short: short + " (not implemented)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCommand(cmd.Context(), stub, args)
		},
	}
}
