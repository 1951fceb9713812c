package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"sdkshell/internal/history"
	"sdkshell/internal/ui"
	"sdkshell/pkg/sdk"
)

// Command is one shell command. Validate is always called before Execute,
// and Execute is only called when Validate accepted the arguments.
type Command interface {
	Name() string
	Help() string
	Validate(args []string) error
	Execute(ctx context.Context, args []string) error
}

// ParseArgs splits an argument line on whitespace. An empty line gives no
// arguments.
func ParseArgs(line string) []string {
	return strings.Fields(line)
}

// runCommand validates args and, if they are accepted, executes the command.
func runCommand(ctx context.Context, cmd Command, args []string) error {
	if err := cmd.Validate(args); err != nil {
		return err
	}
	return cmd.Execute(ctx, args)
}

// packageCommand lists one package family, or installs or uninstalls by index
// from its last listing.
type packageCommand struct {
	app      *App
	selector *sdk.Selector
	help     string
}

func (c *packageCommand) Name() string { return c.selector.Family().String() }

func (c *packageCommand) Help() string {
	return c.help + "\n\nUsage: " + c.selector.Usage()
}

func (c *packageCommand) Validate(args []string) error {
	return c.selector.Validate(args)
}

func (c *packageCommand) Execute(ctx context.Context, args []string) error {
	if len(args) == 0 {
		catalog, err := c.list(ctx)
		if err != nil {
			return err
		}
		ui.PrintCatalog(ui.Out, catalog, c.Name())
		return nil
	}

	descriptor, err := c.selector.Catalog().Lookup(args[0], args[1])
	if err != nil {
		return err
	}
	pkg := sdk.Identifier(descriptor)

	verb := "Installing"
	if args[0] == sdk.FlagUninstall {
		verb = "Uninstalling"
	}
	ui.SuccessMsg("%s package: %s", verb, pkg)

	result, err := c.selector.Execute(ctx, args)
	c.app.recordSelection(c.selector.Family(), args, pkg, result, err)
	if err != nil {
		return err
	}

	if c.app.cfg.General.DryRun {
		ui.MutedMsg("Dry run, nothing was changed")
		return nil
	}
	ui.PrintOutcome(ui.Out, result)
	return nil
}

// list runs a fresh listing behind a spinner.
func (c *packageCommand) list(ctx context.Context) (*sdk.Catalog, error) {
	var result *sdk.Result
	err := ui.WithSpinner("Listing packages...", func() error {
		var err error
		result, err = c.selector.Execute(ctx, nil)
		return err
	})
	if err != nil {
		return nil, err
	}
	return result.Catalog, nil
}

// licensesCommand accepts every pending SDK license after asking.
type licensesCommand struct {
	app *App
}

func (c *licensesCommand) Name() string { return "licenses" }
func (c *licensesCommand) Help() string { return "Accept licenses" }

// Validate accepts any arguments; they are ignored.
func (c *licensesCommand) Validate(args []string) error { return nil }

func (c *licensesCommand) Execute(ctx context.Context, args []string) error {
	acceptor := sdk.NewLicenseAcceptor(c.app.manager, c.app.confirm, c.app.cfg.General.AutoConfirm)

	report, err := acceptor.Execute(ctx)
	if report == nil {
		return err
	}

	entry := history.NewEntry(history.OpLicenses, "", "")
	switch report.Result {
	case sdk.LicensesDeclined:
		ui.SuccessMsg("Licenses are not accepted")
		return nil
	case sdk.LicensesFailed:
		entry.MarkFailed(err)
		c.app.record(entry)
		return err
	}

	entry.MarkOutcome("accepted", true)
	c.app.record(entry)

	if out := strings.TrimSpace(report.Output); out != "" {
		ui.Println("%s", out)
	}
	return nil
}

// stubCommand is a command the shell knows about but cannot do yet.
type stubCommand struct {
	name string
	help string
}

func (c *stubCommand) Name() string                 { return c.name }
func (c *stubCommand) Help() string                 { return c.help }
func (c *stubCommand) Validate(args []string) error { return nil }

func (c *stubCommand) Execute(ctx context.Context, args []string) error {
	ui.Println("Not implemented yet")
	return nil
}

// systemCommand prints the platform and the sdkmanager in use.
type systemCommand struct {
	app *App
}

func (c *systemCommand) Name() string { return "system" }
func (c *systemCommand) Help() string { return "Show platform details and the sdkmanager in use" }

func (c *systemCommand) Validate(args []string) error {
	if len(args) != 0 {
		return fmt.Errorf("%w: system", sdk.ErrUsage)
	}
	return nil
}

func (c *systemCommand) Execute(ctx context.Context, args []string) error {
	ui.PrintSystemInfo(ui.Out, c.app.system, c.app.binary)
	return nil
}

// historyCommand shows recent install, uninstall and license operations.
type historyCommand struct {
	app *App
}

const defaultHistoryLimit = 10

func (c *historyCommand) Name() string { return "history" }

func (c *historyCommand) Help() string {
	return "Show recent operations\n\nUsage: history [<count>]"
}

func (c *historyCommand) Validate(args []string) error {
	switch len(args) {
	case 0:
		return nil
	case 1:
		if n, err := strconv.Atoi(args[0]); err != nil || n < 1 {
			return fmt.Errorf("%w: %q", ErrInvalidCount, args[0])
		}
		return nil
	}
	return fmt.Errorf("%w: history [<count>]", sdk.ErrUsage)
}

func (c *historyCommand) Execute(ctx context.Context, args []string) error {
	limit := defaultHistoryLimit
	if len(args) == 1 {
		limit, _ = strconv.Atoi(args[0])
	}
	return c.app.showHistory(limit)
}

// showHistory prints up to limit entries, newest first.
func (a *App) showHistory(limit int) error {
	if a.openHistory == nil {
		return ErrHistoryDisabled
	}

	store, err := a.openHistory()
	if err != nil {
		return fmt.Errorf("failed to open history: %w", err)
	}
	defer store.Close()

	entries, err := store.List(limit)
	if err != nil {
		return fmt.Errorf("failed to read history: %w", err)
	}

	if len(entries) == 0 {
		ui.MutedMsg("No history entries found")
		return nil
	}

	ui.HeaderMsg("Operation History")

	for i, entry := range entries {
		status := ui.Green("success")
		if !entry.Success {
			status = ui.Red("failed")
		}

		ui.Println("%2d. %s (%s)", i+1, entry.Summary(), status)

		if entry.Error != "" {
			ui.MutedMsg("    Error: %s", entry.Error)
		}
	}

	total, _ := store.Count()
	ui.MutedMsg("\nShowing %d of %d total entries", len(entries), total)

	return nil
}
