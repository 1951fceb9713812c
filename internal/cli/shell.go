package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"

	"github.com/chzyer/readline"
	"github.com/spf13/cobra"

	"sdkshell/internal/config"
	"sdkshell/internal/ui"
	"sdkshell/pkg/sdk"
)

const shellPrompt = "(sdk) "

const shellIntro = `sdkshell, an interactive front end for the Android sdkmanager.
Type help to list commands, exit to leave.`

var shellCmd = &cobra.Command{
	Use:   "shell",
	Short: "Start the interactive shell (default)",
	Long: `Start an interactive session. Listings are remembered for the rest of
the session so packages can be installed or uninstalled by index.

Example session:
  (sdk) buildtools
  (sdk) buildtools -i 3
  (sdk) licenses
  (sdk) exit`,
	Args: cobra.NoArgs,
	RunE: runShell,
}

func runShell(cmd *cobra.Command, args []string) error {
	return NewShell(app).Run(cmd.Context())
}

// Shell is the interactive read-eval loop. It holds one App for the whole
// session so listings persist between commands.
type Shell struct {
	app      *App
	commands []Command
	byName   map[string]Command
	rl       *readline.Instance
}

// NewShell creates a shell over the commands of app.
func NewShell(app *App) *Shell {
	s := &Shell{
		app:      app,
		commands: app.Commands(),
		byName:   make(map[string]Command),
	}
	for _, c := range s.commands {
		s.byName[c.Name()] = c
	}
	return s
}

// Run reads lines until exit, quit or end of input.
func (s *Shell) Run(ctx context.Context) error {
	historyFile := config.ShellHistoryPath()
	if err := config.EnsureDataDir(); err != nil {
		s.app.logger.Warn("shell history disabled", "err", err)
		historyFile = ""
	}

	rl, err := readline.NewEx(&readline.Config{
		Prompt:                 shellPrompt,
		HistoryFile:            historyFile,
		AutoComplete:           s.completer(),
		InterruptPrompt:        "^C",
		EOFPrompt:              "exit",
		HistorySearchFold:      true,
		DisableAutoSaveHistory: true,
	})
	if err != nil {
		return fmt.Errorf("failed to start shell: %w", err)
	}
	defer rl.Close()

	s.rl = rl
	s.app.confirm = s.confirm

	ui.Println(shellIntro)

	for {
		line, err := rl.Readline()
		if errors.Is(err, readline.ErrInterrupt) {
			continue
		}
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}

		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if err := rl.SaveHistory(line); err != nil {
			s.app.logger.Debug("could not save shell history", "err", err)
		}

		// Ctrl-C while a command runs stops that command, not the shell.
		cmdCtx, stop := signal.NotifyContext(ctx, os.Interrupt)
		exit := s.Dispatch(cmdCtx, line)
		stop()

		if exit || ctx.Err() != nil {
			return nil
		}
	}
}

// Dispatch runs one input line and reports whether the shell should exit.
// Errors are printed as a single line and never end the session.
func (s *Shell) Dispatch(ctx context.Context, line string) bool {
	fields := ParseArgs(line)
	if len(fields) == 0 {
		return false
	}
	name, args := fields[0], fields[1:]

	switch name {
	case "exit", "quit":
		return true
	case "help", "?":
		s.help(args)
		return false
	}

	cmd, ok := s.byName[name]
	if !ok {
		ui.ErrorMsg("Unknown command: %s", name)
		return false
	}

	if err := runCommand(ctx, cmd, args); err != nil {
		ui.ErrorMsg("%s", err)
	}
	return false
}

// help prints the command list, or the help of one command.
func (s *Shell) help(args []string) {
	if len(args) > 0 {
		cmd, ok := s.byName[args[0]]
		if !ok {
			ui.ErrorMsg("No help on %s", args[0])
			return
		}
		ui.Println("%s", cmd.Help())
		return
	}

	ui.HeaderMsg("Commands (type help <command>):")
	for _, cmd := range s.commands {
		summary, _, _ := strings.Cut(cmd.Help(), "\n")
		ui.Println("  %-12s %s", cmd.Name(), summary)
	}
	ui.Println("  %-12s %s", "help", "Show this list")
	ui.Println("  %-12s %s", "exit", "Leave the shell")
}

// confirm asks a yes/no question through the shell's line editor so only one
// reader ever consumes stdin.
func (s *Shell) confirm(prompt string) (bool, error) {
	s.rl.SetPrompt(fmt.Sprintf("%s %s y/n: ", ui.SymbolSuccess, prompt))
	defer s.rl.SetPrompt(shellPrompt)

	line, err := s.rl.Readline()
	if errors.Is(err, readline.ErrInterrupt) || errors.Is(err, io.EOF) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return sdk.Affirmative(line), nil
}

// completer completes command names and the flags of package commands.
func (s *Shell) completer() *readline.PrefixCompleter {
	var items []readline.PrefixCompleterInterface
	for _, cmd := range s.commands {
		if _, ok := cmd.(*packageCommand); ok {
			items = append(items, readline.PcItem(cmd.Name(),
				readline.PcItem(sdk.FlagInstall),
				readline.PcItem(sdk.FlagUninstall),
			))
			continue
		}
		items = append(items, readline.PcItem(cmd.Name()))
	}
	items = append(items, readline.PcItem("help"), readline.PcItem("exit"), readline.PcItem("quit"))
	return readline.NewPrefixCompleter(items...)
}
