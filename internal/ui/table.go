package ui

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"sdkshell/pkg/sdk"
	"sdkshell/pkg/sdk/platform"
)

// PrintCatalog prints both sections of a listing as 1-based numbered rows,
// followed by a hint showing how command installs or uninstalls by index.
// The numbers are the indices accepted by -i and -u.
func PrintCatalog(w io.Writer, catalog *sdk.Catalog, command string) {
	printSection(w, "Available Packages", catalog.Available)
	Hint.Fprintf(w, "%s You can install with %s %s <index>\n\n", SymbolHint, command, sdk.FlagInstall)

	printSection(w, "Installed Packages", catalog.Installed)
	Hint.Fprintf(w, "%s You can uninstall with %s %s <index>\n\n", SymbolHint, command, sdk.FlagUninstall)

	if catalog.Empty() {
		Muted.Fprintf(w, "No packages matched %s\n", command)
	}
}

func printSection(w io.Writer, title string, descriptors []string) {
	Success.Fprintf(w, "%s %s\n", SymbolSuccess, title)

	tw := tabwriter.NewWriter(w, 0, 0, 1, ' ', 0)
	for i, descriptor := range descriptors {
		fmt.Fprintf(tw, "%s\t%s\n", Index.Sprintf("[%d]", i+1), Descriptor.Sprint(descriptor))
	}
	tw.Flush()
}

// PrintOutcome prints the line reporting an install or uninstall result.
func PrintOutcome(w io.Writer, result *sdk.Result) {
	pkg := result.Package

	switch result.Outcome {
	case sdk.OutcomeLicenseRequired:
		Error.Fprintf(w, "%s Accept licenses with command licenses\n", SymbolError)
	case sdk.OutcomeUpdated:
		Success.Fprintf(w, "%s Package updated: %s\n", SymbolSuccess, pkg)
	case sdk.OutcomeInstalled:
		Success.Fprintf(w, "%s Package installed: %s\n", SymbolSuccess, pkg)
	case sdk.OutcomeUninstalled:
		Success.Fprintf(w, "%s Package uninstalled: %s\n", SymbolSuccess, pkg)
	case sdk.OutcomeNotFound:
		Error.Fprintf(w, "%s Could not find package: %s\n", SymbolError, pkg)
	default:
		Warning.Fprintf(w, "%s sdkmanager did not report success for %s\n", SymbolWarning, pkg)
		if tail := lastLines(result.Output, 5); tail != "" {
			Muted.Fprintln(w, tail)
		}
	}
}

// lastLines returns the final n non-empty lines of s.
func lastLines(s string, n int) string {
	var lines []string
	for _, line := range strings.Split(strings.ReplaceAll(s, "\r\n", "\n"), "\n") {
		if strings.TrimSpace(line) != "" {
			lines = append(lines, "    "+strings.TrimSpace(line))
		}
	}
	if len(lines) > n {
		lines = lines[len(lines)-n:]
	}
	return strings.Join(lines, "\n")
}

// PrintSystemInfo prints the detected platform and the sdkmanager binary in use.
func PrintSystemInfo(w io.Writer, info *platform.SystemInfo, binary string) {
	Header.Fprintf(w, "\nSystem Information\n")

	printField(w, "Platform", info.PrettyName)
	printField(w, "Operating System", string(info.OS))
	printField(w, "Machine", info.Arch)

	if info.Distribution != "" {
		printField(w, "Distribution", info.Distribution)
	}
	if info.VersionID != "" {
		printField(w, "Version", info.VersionID)
	}

	if binary == "" {
		binary = "not available on this platform"
	}
	printField(w, "sdkmanager", binary)
}

// printField prints a single field with formatting.
func printField(w io.Writer, label, value string) {
	fmt.Fprintf(w, "  %s: %s\n", Cyan(label), value)
}
