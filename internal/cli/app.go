package cli

import (
	"github.com/charmbracelet/log"

	"sdkshell/internal/config"
	"sdkshell/internal/executor"
	"sdkshell/internal/history"
	"sdkshell/internal/ui"
	"sdkshell/pkg/sdk"
	"sdkshell/pkg/sdk/platform"
)

// App is the state shared by every command for one process: the SDK tool,
// one selector per package family, and where history goes.
type App struct {
	cfg     *config.Config
	logger  *log.Logger
	system  *platform.SystemInfo
	binary  string
	manager sdk.Manager

	// runner is the process runner behind manager, nil in tests.
	runner *executor.Executor

	all        *sdk.Selector
	buildTools *sdk.Selector

	// confirm answers the license question. The shell replaces it so the
	// question is read through its own line editor.
	confirm sdk.ConfirmFunc

	// openHistory opens the history store; nil disables history.
	openHistory func() (*history.Store, error)
}

// NewApp creates the application state around a Manager.
func NewApp(cfg *config.Config, logger *log.Logger, system *platform.SystemInfo, binary string, manager sdk.Manager) *App {
	app := &App{
		cfg:        cfg,
		logger:     logger,
		system:     system,
		binary:     binary,
		manager:    manager,
		all:        sdk.NewSelector(manager, sdk.FamilyAll),
		buildTools: sdk.NewSelector(manager, sdk.FamilyBuildTools),
		confirm: func(prompt string) (bool, error) {
			return ui.Confirm(prompt, false)
		},
	}

	if cfg.General.History {
		app.openHistory = history.Open
	}

	return app
}

// Selector returns the session selector for a family.
func (a *App) Selector(family sdk.Family) *sdk.Selector {
	if family == sdk.FamilyBuildTools {
		return a.buildTools
	}
	return a.all
}

// Commands returns the commands available in the shell, in help order.
func (a *App) Commands() []Command {
	return []Command{
		&packageCommand{app: a, selector: a.all, help: "List all installed and available packages"},
		&packageCommand{app: a, selector: a.buildTools, help: "List all installed and available build-tools"},
		&licensesCommand{app: a},
		&stubCommand{name: "init", help: "Download Android SDK command line tools"},
		&stubCommand{name: "destroy", help: "Remove SDK"},
		&systemCommand{app: a},
		&historyCommand{app: a},
		&rollbackCommand{app: a},
	}
}

// record stores a history entry. Failures are logged and otherwise ignored.
func (a *App) record(entry *history.Entry) {
	if a.openHistory == nil || a.cfg.General.DryRun {
		return
	}

	store, err := a.openHistory()
	if err != nil {
		a.logger.Warn("could not open history", "err", err)
		return
	}
	defer store.Close()

	if err := store.Record(entry); err != nil {
		a.logger.Warn("could not record history", "err", err)
	}
}

// recordSelection stores the outcome of an install or uninstall.
func (a *App) recordSelection(family sdk.Family, args []string, pkg string, result *sdk.Result, err error) {
	op := history.OpInstall
	if args[0] == sdk.FlagUninstall {
		op = history.OpUninstall
	}

	entry := history.NewEntry(op, family.String(), pkg)
	if err != nil {
		entry.MarkFailed(err)
	} else {
		entry.MarkOutcome(result.Outcome.String(), result.Outcome.Success())
	}
	a.record(entry)
}
