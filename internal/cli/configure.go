package cli

import (
	"github.com/spf13/cobra"

	"sdkshell/internal/config"
	"sdkshell/internal/ui"
)

var configSave bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show or save the configuration",
	Long: `Print the configuration in effect, with global flags applied.

With --save it is written to the config file, so flags given on the same
command line become the new defaults.

Examples:
  sdkshell config                                       # Show settings
  sdkshell --sdk-tools ~/Android/cmdline-tools/latest/bin config --save`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&configSave, "save", false, "write the settings to the config file")
}

func runConfig(cmd *cobra.Command, args []string) error {
	if configSave {
		if err := app.saveConfig(cfgFile); err != nil {
			return err
		}
	}
	return app.showConfig(cfgFile)
}

// saveConfig writes the settings in effect to path, or to the default
// config file when path is empty.
func (a *App) saveConfig(path string) error {
	if path == "" {
		if err := a.cfg.Save(); err != nil {
			return err
		}
		path = config.ConfigPath()
	} else if err := a.cfg.SaveTo(path); err != nil {
		return err
	}

	ui.SuccessMsg("Configuration saved to %s", path)
	return nil
}

// showConfig prints the settings in effect and where they are read from.
func (a *App) showConfig(path string) error {
	if path == "" {
		path = config.ConfigPath()
	}
	ui.HeaderMsg("Configuration")
	ui.MutedMsg("File: %s", path)
	ui.Println("")
	return a.cfg.Encode(ui.Out)
}
