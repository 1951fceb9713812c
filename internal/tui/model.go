// Package tui provides a full-screen package browser for sdkshell.
package tui

import (
	"context"
	"strconv"

	"sdkshell/pkg/sdk"
)

// Selector is the part of a package selector the browser drives.
// *sdk.Selector satisfies it.
type Selector interface {
	Family() sdk.Family
	Catalog() *sdk.Catalog
	Validate(args []string) error
	Execute(ctx context.Context, args []string) (*sdk.Result, error)
}

// RecordFunc is called after every install or uninstall the browser runs.
type RecordFunc func(args []string, result *sdk.Result, err error)

// View represents different views in the TUI
type View int

const (
	ViewAvailable View = iota
	ViewInstalled
	ViewHelp
)

// Tab represents a navigable tab
type Tab struct {
	Name string
	View View
}

// DefaultTabs returns the default tab configuration
func DefaultTabs() []Tab {
	return []Tab{
		{Name: "Available", View: ViewAvailable},
		{Name: "Installed", View: ViewInstalled},
	}
}

// Model holds the application state
type Model struct {
	// Core state
	ready    bool
	quitting bool

	// Dimensions
	width  int
	height int

	// Navigation
	tabs       []Tab
	activeTab  int
	activeView View
	prevView   View

	// Data
	selector Selector
	catalog  *sdk.Catalog

	// UI state
	busy       bool
	busyMsg    string
	errorMsg   string
	successMsg string

	// Cursor positions and scroll offsets per view
	cursors map[View]int
	scrolls map[View]int

	// Styles and keys
	styles *Styles
	keys   KeyMap

	// Confirmation dialog
	showConfirm  bool
	confirmTitle string
	pendingArgs  []string
}

// NewModel creates a new TUI model over a selector.
func NewModel(selector Selector) *Model {
	return &Model{
		tabs:       DefaultTabs(),
		activeView: ViewAvailable,
		selector:   selector,
		catalog:    selector.Catalog(),
		cursors:    make(map[View]int),
		scrolls:    make(map[View]int),
		styles:     DefaultStyles(),
		keys:       DefaultKeyMap(),
	}
}

// SetSize sets the terminal size
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// Cursor returns the cursor position for the current view
func (m *Model) Cursor() int {
	return m.cursors[m.activeView]
}

// SetCursor sets the cursor position for the current view
func (m *Model) SetCursor(pos int) {
	m.cursors[m.activeView] = pos
}

// Scroll returns the scroll offset for the current view
func (m *Model) Scroll() int {
	return m.scrolls[m.activeView]
}

// SetScroll sets the scroll offset for the current view
func (m *Model) SetScroll(offset int) {
	m.scrolls[m.activeView] = offset
}

// VisibleHeight returns the height available for list content
func (m *Model) VisibleHeight() int {
	// Account for header (1), tabs (1), title (2), footer (2)
	h := m.height - 6
	if h < 1 {
		return 1
	}
	return h
}

// Items returns the descriptors shown by the current view
func (m *Model) Items() []string {
	switch m.activeView {
	case ViewAvailable:
		return m.catalog.Available
	case ViewInstalled:
		return m.catalog.Installed
	}
	return nil
}

// SetCatalog replaces the listing and clamps the cursors to it.
func (m *Model) SetCatalog(catalog *sdk.Catalog) {
	m.catalog = catalog

	sizes := map[View]int{
		ViewAvailable: len(catalog.Available),
		ViewInstalled: len(catalog.Installed),
	}
	for view, n := range sizes {
		if m.cursors[view] >= n {
			m.cursors[view] = max(n-1, 0)
		}
		if m.scrolls[view] > m.cursors[view] {
			m.scrolls[view] = m.cursors[view]
		}
	}
}

// MoveCursor moves the cursor by delta, clamping to valid range
func (m *Model) MoveCursor(delta int) {
	items := m.Items()
	if len(items) == 0 {
		return
	}

	newPos := m.Cursor() + delta
	if newPos < 0 {
		newPos = 0
	}
	if newPos >= len(items) {
		newPos = len(items) - 1
	}
	m.SetCursor(newPos)

	// Adjust scroll to keep cursor visible
	visibleHeight := m.VisibleHeight()
	scroll := m.Scroll()

	if newPos < scroll {
		m.SetScroll(newPos)
	} else if newPos >= scroll+visibleHeight {
		m.SetScroll(newPos - visibleHeight + 1)
	}
}

// GoToTop moves cursor to the top
func (m *Model) GoToTop() {
	m.SetCursor(0)
	m.SetScroll(0)
}

// GoToBottom moves cursor to the bottom
func (m *Model) GoToBottom() {
	items := m.Items()
	if len(items) == 0 {
		return
	}
	m.SetCursor(len(items) - 1)

	visibleHeight := m.VisibleHeight()
	if len(items) > visibleHeight {
		m.SetScroll(len(items) - visibleHeight)
	}
}

// NextTab switches to the next tab
func (m *Model) NextTab() {
	m.SetTab((m.activeTab + 1) % len(m.tabs))
}

// PrevTab switches to the previous tab
func (m *Model) PrevTab() {
	m.SetTab((m.activeTab + len(m.tabs) - 1) % len(m.tabs))
}

// SetTab switches to a specific tab by index
func (m *Model) SetTab(index int) {
	if index >= 0 && index < len(m.tabs) {
		m.activeTab = index
		m.activeView = m.tabs[m.activeTab].View
	}
}

// ToggleHelp shows or hides the help view
func (m *Model) ToggleHelp() {
	if m.activeView == ViewHelp {
		m.activeView = m.prevView
		return
	}
	m.prevView = m.activeView
	m.activeView = ViewHelp
}

// SelectionArgs returns the command arguments acting on the selected row
// with flag, using the same 1-based index a listing prints. It returns nil
// when the current view has no selectable rows.
func (m *Model) SelectionArgs(flag string) []string {
	var view View
	switch flag {
	case sdk.FlagInstall:
		view = ViewAvailable
	case sdk.FlagUninstall:
		view = ViewInstalled
	default:
		return nil
	}
	if m.activeView != view || len(m.Items()) == 0 {
		return nil
	}
	return []string{flag, strconv.Itoa(m.Cursor() + 1)}
}

// SetBusy marks a command as running. Actions are ignored while busy.
func (m *Model) SetBusy(busy bool, msg string) {
	m.busy = busy
	m.busyMsg = msg
}

// SetError sets an error message
func (m *Model) SetError(msg string) {
	m.errorMsg = msg
	m.successMsg = ""
}

// SetSuccess sets a success message
func (m *Model) SetSuccess(msg string) {
	m.successMsg = msg
	m.errorMsg = ""
}

// ClearMessages clears all messages
func (m *Model) ClearMessages() {
	m.errorMsg = ""
	m.successMsg = ""
}

// ShowConfirm shows a confirmation dialog for running args
func (m *Model) ShowConfirm(title string, args []string) {
	m.showConfirm = true
	m.confirmTitle = title
	m.pendingArgs = args
}

// ConfirmYes closes the dialog and returns the confirmed arguments
func (m *Model) ConfirmYes() []string {
	args := m.pendingArgs
	m.ConfirmNo()
	return args
}

// ConfirmNo cancels the confirmation
func (m *Model) ConfirmNo() {
	m.showConfirm = false
	m.confirmTitle = ""
	m.pendingArgs = nil
}
