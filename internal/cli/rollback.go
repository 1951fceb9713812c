package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"sdkshell/internal/history"
	"sdkshell/internal/ui"
	"sdkshell/pkg/sdk"
)

var rollbackCmd = &cobra.Command{
	Use:   "rollback",
	Short: "Undo the last install or uninstall",
	Long: `Undo the most recent successful install or uninstall recorded in history.

The package is addressed by its identifier, so no listing is needed.
License acceptance cannot be rolled back.

Examples:
  sdkshell rollback         # Ask, then reverse the last operation
  sdkshell rollback -y      # Reverse without asking`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := commandContext(cmd)
		defer stop()
		return runCommand(ctx, &rollbackCommand{app: app}, nil)
	},
}

// rollbackCommand reverses the most recent successful install or uninstall.
type rollbackCommand struct {
	app *App
}

func (c *rollbackCommand) Name() string { return "rollback" }

func (c *rollbackCommand) Help() string {
	return "Undo the last install or uninstall\n\nUsage: rollback"
}

func (c *rollbackCommand) Validate(args []string) error {
	if len(args) != 0 {
		return fmt.Errorf("%w: rollback", sdk.ErrUsage)
	}
	return nil
}

func (c *rollbackCommand) Execute(ctx context.Context, args []string) error {
	a := c.app

	entry, err := a.lastReversible()
	if err != nil {
		return err
	}

	op := entry.ReverseOp()
	ui.HeaderMsg("Rolling back: %s", entry.Summary())
	ui.InfoMsg("Reverse operation: %s %s", op, entry.Package)

	if !a.cfg.General.AutoConfirm {
		confirmed, err := a.confirm("Proceed with rollback?")
		if err != nil {
			return err
		}
		if !confirmed {
			return ErrAborted
		}
	}

	action := sdk.ActionInstall
	if op == history.OpUninstall {
		action = sdk.ActionUninstall
	}
	result, err := sdk.Apply(ctx, a.manager, action, entry.Package)

	reversed := history.NewEntry(op, entry.Family, entry.Package)
	if err != nil {
		reversed.MarkFailed(err)
	} else {
		reversed.MarkOutcome(result.Outcome.String(), result.Outcome.Success())
	}
	a.record(reversed)

	if err != nil {
		return err
	}
	if a.cfg.General.DryRun {
		ui.MutedMsg("Dry run, nothing was changed")
		return nil
	}
	ui.PrintOutcome(ui.Out, result)
	return nil
}

// lastReversible looks up the entry to roll back. The store is closed again
// before anything is recorded.
func (a *App) lastReversible() (*history.Entry, error) {
	if a.openHistory == nil {
		return nil, ErrHistoryDisabled
	}

	store, err := a.openHistory()
	if err != nil {
		return nil, fmt.Errorf("failed to open history: %w", err)
	}
	defer store.Close()

	entry, err := store.LastReversible()
	if err != nil {
		return nil, fmt.Errorf("failed to read history: %w", err)
	}
	if entry == nil {
		return nil, ErrNothingToRollback
	}
	return entry, nil
}
