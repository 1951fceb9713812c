package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"sdkshell/pkg/sdk"
)

// Messages for async operations
type (
	catalogLoadedMsg struct {
		catalog *sdk.Catalog
		err     error
	}

	operationCompleteMsg struct {
		result *sdk.Result
		err    error
	}
)

// App wraps the Model with bubbletea components
type App struct {
	*Model
	ctx     context.Context
	record  RecordFunc
	spinner spinner.Model
}

// NewApp creates a new TUI application. record may be nil.
func NewApp(ctx context.Context, selector Selector, record RecordFunc) *App {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(ColorPrimary)

	return &App{
		Model:   NewModel(selector),
		ctx:     ctx,
		record:  record,
		spinner: sp,
	}
}

// Init implements tea.Model
func (a *App) Init() tea.Cmd {
	a.SetBusy(true, "Listing packages...")
	return tea.Batch(
		a.spinner.Tick,
		a.loadCatalog(),
	)
}

// Update implements tea.Model
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.SetSize(msg.Width, msg.Height)
		a.ready = true

	case tea.KeyMsg:
		// Handle confirmation dialog first
		if a.showConfirm {
			switch msg.String() {
			case "y", "Y", "enter":
				args := a.ConfirmYes()
				a.SetBusy(true, "Running sdkmanager...")
				return a, a.runSelection(args)
			case "n", "N", "esc", "q":
				a.ConfirmNo()
			}
			return a, nil
		}

		switch {
		case key.Matches(msg, a.keys.Quit):
			a.quitting = true
			return a, tea.Quit

		case key.Matches(msg, a.keys.Help):
			a.ToggleHelp()

		case key.Matches(msg, a.keys.TabAvailable):
			a.SetTab(0)
		case key.Matches(msg, a.keys.TabInstalled):
			a.SetTab(1)
		case key.Matches(msg, a.keys.Left):
			a.PrevTab()
		case key.Matches(msg, a.keys.Right):
			a.NextTab()

		// Navigation
		case key.Matches(msg, a.keys.Up), key.Matches(msg, a.keys.VimUp):
			a.MoveCursor(-1)
		case key.Matches(msg, a.keys.Down), key.Matches(msg, a.keys.VimDown):
			a.MoveCursor(1)
		case key.Matches(msg, a.keys.PageUp):
			a.MoveCursor(-a.VisibleHeight())
		case key.Matches(msg, a.keys.PageDown):
			a.MoveCursor(a.VisibleHeight())
		case key.Matches(msg, a.keys.Home), key.Matches(msg, a.keys.VimTop):
			a.GoToTop()
		case key.Matches(msg, a.keys.End), key.Matches(msg, a.keys.VimBot):
			a.GoToBottom()

		// Actions
		case key.Matches(msg, a.keys.Install):
			a.confirmSelection(sdk.FlagInstall, "Install")
		case key.Matches(msg, a.keys.Uninstall):
			a.confirmSelection(sdk.FlagUninstall, "Uninstall")
		case key.Matches(msg, a.keys.Refresh):
			if !a.busy {
				a.ClearMessages()
				a.SetBusy(true, "Listing packages...")
				cmds = append(cmds, a.loadCatalog())
			}
		}

	case catalogLoadedMsg:
		a.SetBusy(false, "")
		if msg.err != nil {
			a.SetError(msg.err.Error())
		} else {
			a.SetCatalog(msg.catalog)
		}

	case operationCompleteMsg:
		a.SetBusy(false, "")
		switch {
		case msg.err != nil:
			a.SetError(msg.err.Error())
		case msg.result.Outcome.Success():
			a.SetSuccess(fmt.Sprintf("%s: %s", msg.result.Outcome, msg.result.Package))
			a.SetBusy(true, "Listing packages...")
			cmds = append(cmds, a.loadCatalog())
		case msg.result.Outcome == sdk.OutcomeLicenseRequired:
			a.SetError("Accept licenses with command licenses")
		default:
			a.SetError(fmt.Sprintf("%s: %s", msg.result.Outcome, msg.result.Package))
		}

	case spinner.TickMsg:
		var cmd tea.Cmd
		a.spinner, cmd = a.spinner.Update(msg)
		cmds = append(cmds, cmd)
	}

	return a, tea.Batch(cmds...)
}

// confirmSelection opens the confirmation dialog for the selected row.
func (a *App) confirmSelection(flag, verb string) {
	if a.busy {
		return
	}
	args := a.SelectionArgs(flag)
	if args == nil {
		return
	}
	if err := a.selector.Validate(args); err != nil {
		a.SetError(err.Error())
		return
	}

	index := a.Cursor()
	a.ShowConfirm(fmt.Sprintf("%s %s?", verb, sdk.Identifier(a.Items()[index])), args)
}

// View implements tea.Model
func (a *App) View() string {
	if !a.ready {
		return "Loading..."
	}

	if a.quitting {
		return ""
	}

	if a.showConfirm {
		return a.renderDialog()
	}

	var b strings.Builder

	b.WriteString(a.renderHeader())
	b.WriteString("\n")
	b.WriteString(a.renderTabs())
	b.WriteString("\n")
	b.WriteString(a.renderContent())
	b.WriteString(a.renderFooter())

	return b.String()
}

// renderHeader renders the header bar
func (a *App) renderHeader() string {
	title := a.styles.Header.Render(" sdkshell ") + " " + Badge(a.selector.Family().String(), ColorPrimary)

	// Right side: busy indicator or status
	var right string
	switch {
	case a.busy:
		right = a.spinner.View() + " " + a.busyMsg
	case a.errorMsg != "":
		right = a.styles.Error.Render(a.errorMsg)
	case a.successMsg != "":
		right = a.styles.Success.Render(a.successMsg)
	}

	padding := a.width - lipgloss.Width(title) - lipgloss.Width(right) - 2
	if padding < 0 {
		padding = 0
	}

	return title + strings.Repeat(" ", padding) + right
}

// renderTabs renders the tab bar
func (a *App) renderTabs() string {
	var tabs []string
	for i, tab := range a.tabs {
		style := a.styles.TabInactive
		if i == a.activeTab && a.activeView != ViewHelp {
			style = a.styles.TabActive
		}
		tabs = append(tabs, style.Render(fmt.Sprintf("[%d] %s", i+1, tab.Name)))
	}

	return lipgloss.NewStyle().
		Width(a.width).
		Background(ColorBgAlt).
		Render(strings.Join(tabs, " "))
}

// renderContent renders the main content area
func (a *App) renderContent() string {
	var content string
	switch a.activeView {
	case ViewAvailable:
		content = a.renderList("Available Packages", "i to install")
	case ViewInstalled:
		content = a.renderList("Installed Packages", "u to uninstall")
	case ViewHelp:
		content = a.renderHelpView()
	}

	return lipgloss.NewStyle().
		Width(a.width).
		Height(a.height - 3).
		Render(content)
}

// renderList renders the numbered descriptors of the current view.
func (a *App) renderList(title, hint string) string {
	var b strings.Builder
	items := a.Items()

	b.WriteString(a.styles.Title.Render(fmt.Sprintf("%s (%d)", title, len(items))))
	b.WriteString("\n")

	if len(items) == 0 {
		b.WriteString(a.styles.Description.Render("  No packages. Press r to list again."))
		return b.String()
	}

	start := a.Scroll()
	end := min(start+a.VisibleHeight(), len(items))
	for i := start; i < end; i++ {
		b.WriteString(a.renderLine(i, items[i], i == a.Cursor()))
		b.WriteString("\n")
	}

	b.WriteString(a.styles.Description.Render("  " + hint))
	return b.String()
}

// renderLine renders a single descriptor with its 1-based index
func (a *App) renderLine(i int, descriptor string, selected bool) string {
	cursor := "  "
	style := a.styles.ListItem
	if selected {
		cursor = a.styles.ListItemSelected.Render("> ")
		style = a.styles.ListItemSelected
	}

	index := a.styles.Index.Render(fmt.Sprintf("[%d]", i+1))

	maxWidth := a.width - lipgloss.Width(cursor) - lipgloss.Width(index) - 2
	if len(descriptor) > maxWidth && maxWidth > 3 {
		descriptor = descriptor[:maxWidth-3] + "..."
	}

	return fmt.Sprintf("%s%s %s", cursor, index, style.Render(descriptor))
}

// renderHelpView renders the key binding reference
func (a *App) renderHelpView() string {
	var b strings.Builder

	b.WriteString(a.styles.Title.Render("Keys"))
	b.WriteString("\n")

	for _, group := range a.keys.FullHelp() {
		for _, binding := range group {
			h := binding.Help()
			b.WriteString(fmt.Sprintf("  %-10s%s%s\n",
				a.styles.HelpKey.Render(h.Key),
				a.styles.HelpSep.String(),
				a.styles.HelpDesc.Render(h.Desc)))
		}
		b.WriteString("\n")
	}

	return b.String()
}

// renderFooter renders the footer bar
func (a *App) renderFooter() string {
	var hints []string
	for _, binding := range a.keys.ShortHelp() {
		h := binding.Help()
		hints = append(hints, h.Key+":"+h.Desc)
	}

	return a.styles.Footer.
		Width(a.width).
		Render(strings.Join(hints, "  "))
}

// renderDialog renders the confirmation dialog centered on screen
func (a *App) renderDialog() string {
	dialog := a.styles.Dialog.Render(
		a.styles.DialogTitle.Render(a.confirmTitle) + "\n\n" +
			a.styles.DialogButton.Render("[Y]es") + " " +
			lipgloss.NewStyle().Foreground(ColorMuted).Render("[N]o"),
	)

	return lipgloss.Place(a.width, a.height, lipgloss.Center, lipgloss.Center, dialog,
		lipgloss.WithWhitespaceChars(" "),
		lipgloss.WithWhitespaceForeground(ColorBg))
}

// Async commands

func (a *App) loadCatalog() tea.Cmd {
	return func() tea.Msg {
		result, err := a.selector.Execute(a.ctx, nil)
		if err != nil {
			return catalogLoadedMsg{err: err}
		}
		return catalogLoadedMsg{catalog: result.Catalog}
	}
}

func (a *App) runSelection(args []string) tea.Cmd {
	return func() tea.Msg {
		result, err := a.selector.Execute(a.ctx, args)
		if a.record != nil {
			a.record(args, result, err)
		}
		return operationCompleteMsg{result: result, err: err}
	}
}

// Run starts the browser over selector and blocks until the user quits.
func Run(ctx context.Context, selector Selector, record RecordFunc) error {
	app := NewApp(ctx, selector, record)
	p := tea.NewProgram(app, tea.WithAltScreen(), tea.WithContext(ctx))
	_, err := p.Run()
	return err
}
