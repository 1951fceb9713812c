package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"sdkshell/internal/ui"
	"sdkshell/pkg/sdk"
)

// newPackageCmd creates the one-shot command for a package family.
func newPackageCmd(family sdk.Family, short string) *cobra.Command {
	var install, uninstall string

	cmd := &cobra.Command{
		Use:   family.String(),
		Short: short,
		Long: fmt.Sprintf(`%s.

Without flags the packages are listed with their indices. With -i or -u a
fresh listing is taken first and the package at that index is installed
or uninstalled. With --dry-run the listing still runs and only the
install or uninstall is skipped.

Examples:
  sdkshell %[2]s             # List packages
  sdkshell %[2]s -i 2        # Install the second available package
  sdkshell %[2]s -u 1        # Uninstall the first installed package`, short, family),
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runPackageCmd(cmd, family, short, install, uninstall)
		},
	}

	cmd.Flags().StringVarP(&install, "install", "i", "", "install the package at this index")
	cmd.Flags().StringVarP(&uninstall, "uninstall", "u", "", "uninstall the package at this index")
	cmd.MarkFlagsMutuallyExclusive("install", "uninstall")

	return cmd
}

func runPackageCmd(cmd *cobra.Command, family sdk.Family, help, install, uninstall string) error {
	ctx, stop := commandContext(cmd)
	defer stop()

	var args []string
	switch {
	case cmd.Flags().Changed("install"):
		args = []string{sdk.FlagInstall, install}
	case cmd.Flags().Changed("uninstall"):
		args = []string{sdk.FlagUninstall, uninstall}
	}

	selector := app.Selector(family)
	pc := &packageCommand{app: app, selector: selector, help: help}

	// A new process has no earlier listing to resolve the index against.
	if len(args) > 0 {
		err := ui.WithSpinner("Listing packages...", func() error {
			_, err := selector.Refresh(ctx)
			return err
		})
		if err != nil {
			return err
		}
	}

	return runCommand(ctx, pc, args)
}
