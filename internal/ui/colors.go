// Package ui provides terminal output helpers for sdkshell.
package ui

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
)

var (
	// Colors for different message types
	Success = color.New(color.FgGreen, color.Bold)
	Error   = color.New(color.FgRed, color.Bold)
	Warning = color.New(color.FgYellow, color.Bold)
	Info    = color.New(color.FgCyan)
	Hint    = color.New(color.FgBlue)
	Header  = color.New(color.FgMagenta, color.Bold)
	Muted   = color.New(color.FgHiBlack)

	// Colors for catalog rows
	Index      = color.New(color.FgCyan, color.Bold)
	Descriptor = color.New(color.FgWhite)
)

// Out is where message helpers write. Tests swap it for a buffer.
var Out io.Writer = color.Output

// UseColors represents whether colors should be used.
var UseColors = true

// UseUnicode represents whether unicode glyphs (spinner frames, TUI
// markers) should be used.
var UseUnicode = true

// Symbols prefixing every status line.
const (
	SymbolSuccess = "[+]"
	SymbolError   = "[-]"
	SymbolWarning = "[!]"
	SymbolHint    = "[?]"
	SymbolInfo    = "[*]"
)

// Init initializes the UI settings based on configuration.
func Init(useColors, useUnicode bool) {
	UseColors = useColors
	UseUnicode = useUnicode

	if !useColors || os.Getenv("NO_COLOR") != "" {
		color.NoColor = true
		UseColors = false
	}
}

func printMsg(c *color.Color, symbol, format string, args ...interface{}) {
	c.Fprintf(Out, symbol+" "+format+"\n", args...)
}

// SuccessMsg prints a success message.
func SuccessMsg(format string, args ...interface{}) {
	printMsg(Success, SymbolSuccess, format, args...)
}

// ErrorMsg prints an error message.
func ErrorMsg(format string, args ...interface{}) {
	printMsg(Error, SymbolError, format, args...)
}

// WarningMsg prints a warning message.
func WarningMsg(format string, args ...interface{}) {
	printMsg(Warning, SymbolWarning, format, args...)
}

// HintMsg prints a hint, such as how to act on a listing.
func HintMsg(format string, args ...interface{}) {
	printMsg(Hint, SymbolHint, format, args...)
}

// InfoMsg prints an info message.
func InfoMsg(format string, args ...interface{}) {
	printMsg(Info, SymbolInfo, format, args...)
}

// HeaderMsg prints a header message.
func HeaderMsg(format string, args ...interface{}) {
	Header.Fprintf(Out, "\n"+format+"\n", args...)
}

// MutedMsg prints a muted (dim) message.
func MutedMsg(format string, args ...interface{}) {
	Muted.Fprintf(Out, format+"\n", args...)
}

// Println prints a plain line with formatting.
func Println(format string, args ...interface{}) {
	fmt.Fprintf(Out, format+"\n", args...)
}

// Bold returns a bold string.
func Bold(s string) string {
	return color.New(color.Bold).Sprint(s)
}

// Green returns a green string.
func Green(s string) string {
	return color.GreenString(s)
}

// Red returns a red string.
func Red(s string) string {
	return color.RedString(s)
}

// Yellow returns a yellow string.
func Yellow(s string) string {
	return color.YellowString(s)
}

// Cyan returns a cyan string.
func Cyan(s string) string {
	return color.CyanString(s)
}
