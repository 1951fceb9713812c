// Package cli implements the sdkshell command line and interactive shell.
package cli

import (
	"context"
	"os"
	"os/exec"
	"os/signal"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"sdkshell/internal/config"
	"sdkshell/internal/executor"
	"sdkshell/internal/logging"
	"sdkshell/internal/ui"
	"sdkshell/pkg/sdk"
	"sdkshell/pkg/sdk/platform"
)

var (
	// Global flags
	cfgFile  string
	sdkTools string
	dryRun   bool
	yes      bool
	verbose  bool
	noColor  bool

	// Global state
	cfg *config.Config
	app *App
)

// Build metadata - set at build time via ldflags
var (
	Version   = "0.1.0-dev"
	Commit    = "unknown"
	BuildTime = "unknown"
)

var rootCmd = &cobra.Command{
	Use:   "sdkshell",
	Short: "Interactive shell for the Android SDK manager",
	Long: `sdkshell wraps the Android sdkmanager tool. It lists installed and
available packages as numbered rows, installs or uninstalls a package
by its number, and accepts SDK licenses.

Without a subcommand an interactive shell is started.

Examples:
  sdkshell                        # Start the interactive shell
  sdkshell buildtools             # List build-tools
  sdkshell buildtools -i 2        # Install the second available build-tools
  sdkshell all -u 1               # Uninstall the first installed package
  sdkshell licenses -y            # Accept all licenses without asking`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return initializeApp()
	},
	RunE: runShell,
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file path")
	rootCmd.PersistentFlags().StringVar(&sdkTools, "sdk-tools", "", "directory containing sdkmanager")
	rootCmd.PersistentFlags().BoolVarP(&dryRun, "dry-run", "n", false, "show what would run without executing")
	rootCmd.PersistentFlags().BoolVarP(&yes, "yes", "y", false, "assume yes to all prompts")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored output")

	// Add subcommands
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(shellCmd)
	rootCmd.AddCommand(newPackageCmd(sdk.FamilyAll, "List all installed and available packages"))
	rootCmd.AddCommand(newPackageCmd(sdk.FamilyBuildTools, "List all installed and available build-tools"))
	rootCmd.AddCommand(licensesCmd)
	rootCmd.AddCommand(systemCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(rollbackCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(browseCmd)
	rootCmd.AddCommand(newStubCmd("init", "Download Android SDK command line tools"))
	rootCmd.AddCommand(newStubCmd("destroy", "Remove SDK"))
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.ExecuteContext(context.Background())
}

// initializeApp sets up the application state.
func initializeApp() error {
	// Load configuration
	var err error
	if cfgFile != "" {
		cfg, err = config.LoadFrom(cfgFile)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		return err
	}

	// Apply global flag overrides
	if yes {
		cfg.General.AutoConfirm = true
	}
	if dryRun {
		cfg.General.DryRun = true
	}
	if verbose {
		cfg.Output.Verbose = true
	}
	if noColor {
		cfg.Output.Color = false
	}
	if sdkTools != "" {
		cfg.SDK.ToolsDir = sdkTools
		cfg.SDK.Binary = ""
	}

	ui.Init(cfg.ShouldUseColor(), cfg.Output.Unicode)
	logger := logging.New(os.Stderr, cfg.Output.Verbose)

	system := platform.Detect()
	runner := executor.New(cfg.General.DryRun, logger)
	binary, manager := resolveManager(cfg, system, runner, logger)

	app = NewApp(cfg, logger, system, binary, manager)
	app.runner = runner

	return nil
}

// resolveManager picks the sdkmanager binary for the host. When none can be
// resolved the returned Manager fails every call with the reason, so commands
// that never run sdkmanager still work.
func resolveManager(cfg *config.Config, system *platform.SystemInfo, runner sdk.Runner, logger *log.Logger) (string, sdk.Manager) {
	binary := cfg.SDK.Binary
	if binary == "" {
		var err error
		binary, err = platform.ResolveTool(system.OS, cfg.SDK.ToolsDir, os.Getenv)
		if err != nil {
			logger.Debug("sdkmanager unavailable", "os", system.OS, "err", err)
			return "", sdk.Unavailable(err)
		}
	}

	// Non-fatal: system and history still work without the tool.
	if _, err := exec.LookPath(binary); err != nil {
		logger.Warn("sdkmanager not found; set sdk.tools_dir, ANDROID_SDK_ROOT or --sdk-tools", "path", binary)
	}
	logger.Debug("using sdkmanager", "path", binary, "os", system.OS, "dry_run", cfg.General.DryRun)

	return binary, sdk.NewSDKManager(binary, runner)
}

// commandContext returns a context cancelled by Ctrl-C for one-shot commands.
func commandContext(cmd *cobra.Command) (context.Context, context.CancelFunc) {
	return signal.NotifyContext(cmd.Context(), os.Interrupt)
}

// Version command
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print sdkshell version",
	Run: func(cmd *cobra.Command, args []string) {
		ui.InfoMsg("sdkshell version %s", Version)
		if Commit != "unknown" {
			ui.MutedMsg("  Commit: %s", Commit)
		}
		if BuildTime != "unknown" {
			ui.MutedMsg("  Built:  %s", BuildTime)
		}
	},
}
