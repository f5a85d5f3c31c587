// Package app composes the terminal FAQ view. The root model is the only
// holder of the accordion controller; child components receive snapshots of
// its state and report intent back as messages.
package app

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"tableflip.dev/faq/pkg/accordion"
	"tableflip.dev/faq/pkg/faq"
	"tableflip.dev/faq/pkg/logging"
	accordionview "tableflip.dev/faq/pkg/tui/components/accordion"
	"tableflip.dev/faq/pkg/tui/components/categorybar"
	"tableflip.dev/faq/pkg/tui/components/eventviewer"
	helpview "tableflip.dev/faq/pkg/tui/components/help"
	"tableflip.dev/faq/pkg/tui/components/stats"
	"tableflip.dev/faq/pkg/tui/events"
	"tableflip.dev/faq/pkg/tui/theme"
)

const (
	// Title and Subtitle head the view.
	Title    = "FAQ Accordion"
	Subtitle = "Interactive Frequently Asked Questions"

	accordionID events.ComponentID = "accordion"
	categoryID  events.ComponentID = "categories"
	rootID      events.ComponentID = "root"
)

// Options configures a terminal session.
type Options struct {
	Policy accordion.Policy
	Logger *zap.Logger
	// Debug opens the event log on start.
	Debug bool
}

// KeyMap holds the root-level bindings.
type KeyMap struct {
	ExpandAll   key.Binding
	CollapseAll key.Binding
	Policy      key.Binding
	Help        key.Binding
	Debug       key.Binding
	Quit        key.Binding
}

// DefaultKeyMap returns the stock root bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		ExpandAll: key.NewBinding(
			key.WithKeys("e"),
			key.WithHelp("e", "expand all"),
		),
		CollapseAll: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "collapse all"),
		),
		Policy: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "single/multi"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Debug: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "events"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// Model is the root Bubble Tea model.
type Model struct {
	ctrl     *accordion.Controller
	logger   *zap.Logger
	logEvent accordion.Observer
	theme    theme.Theme
	keys     KeyMap

	stats      stats.Model
	categories *categorybar.Model
	rows       *accordionview.Model
	help       help.Model

	helpOverlay  *helpview.Model
	helpVisible  bool
	debugEnabled bool
	eventViewer  *eventviewer.Model

	width  int
	height int
}

// New constructs the root model over catalog.
func New(catalog *faq.Catalog, opts Options) *Model {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	th := theme.Default()
	m := &Model{
		logger:     logger,
		logEvent:   logging.Observer(logger),
		theme:      th,
		keys:       DefaultKeyMap(),
		stats:      stats.New(th.Stats),
		categories: categorybar.New(categoryID, catalog.CategoryOptions(), th.Category),
		rows:       accordionview.New(accordionID, th.Accordion),
		help:       help.New(),
		width:      80,
		height:     24,
	}
	m.ctrl = accordion.New(catalog,
		accordion.WithPolicy(opts.Policy),
		accordion.WithObserver(m.observe),
	)
	if opts.Debug {
		m.toggleDebug()
	}
	m.sync()
	m.layout()
	return m
}

// Run launches the Bubble Tea program.
func Run(catalog *faq.Catalog, opts Options) error {
	p := tea.NewProgram(New(catalog, opts), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

// Controller exposes the view state, mainly for tests.
func (m *Model) Controller() *accordion.Controller { return m.ctrl }

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd { return nil }

// Update routes Bubble Tea messages to the controller and child components.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	m.noteEvent(msg)

	switch v := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = v.Width
		m.height = v.Height
		m.layout()
		return m, nil

	case events.ToggleMsg:
		if v.Component == accordionID && !m.ctrl.Toggle(v.Position) {
			m.logger.Warn("toggle ignored", zap.Int("position", v.Position))
			m.warn("toggle ignored", v.Describe())
		}
		m.sync()
		return m, nil

	case events.CategorySelectMsg:
		if !m.ctrl.SelectCategory(v.Category) {
			m.logger.Warn("unknown category ignored", zap.String("category", v.Category))
			m.warn("unknown category ignored", v.Describe())
		}
		m.sync()
		m.layout()
		return m, nil

	case events.BulkMsg:
		switch v.Action {
		case events.BulkExpand:
			m.ctrl.ExpandAll()
		case events.BulkCollapse:
			m.ctrl.CollapseAll()
		}
		m.sync()
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(v)
	}

	if m.helpVisible {
		_, cmd := m.helpOverlay.Update(msg)
		return m, cmd
	}
	_, cmd := m.rows.Update(msg)
	return m, cmd
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}
	if m.helpVisible {
		switch {
		case key.Matches(msg, m.keys.Help), msg.String() == "esc", key.Matches(msg, m.keys.Quit):
			m.helpVisible = false
			return m, nil
		}
		_, cmd := m.helpOverlay.Update(msg)
		return m, cmd
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.helpVisible = true
		m.layout()
		return m, nil
	case key.Matches(msg, m.keys.Debug):
		m.toggleDebug()
		return m, nil
	case key.Matches(msg, m.keys.ExpandAll):
		return m, bulkCmd(events.BulkExpand)
	case key.Matches(msg, m.keys.CollapseAll):
		return m, bulkCmd(events.BulkCollapse)
	case key.Matches(msg, m.keys.Policy):
		next := accordion.MultiPolicy
		if m.ctrl.Policy() == accordion.MultiPolicy {
			next = accordion.SinglePolicy
		}
		m.ctrl.SetPolicy(next)
		m.sync()
		return m, nil
	}

	var cmds []tea.Cmd
	if _, cmd := m.categories.Update(msg); cmd != nil {
		cmds = append(cmds, cmd)
	}
	if _, cmd := m.rows.Update(msg); cmd != nil {
		cmds = append(cmds, cmd)
	}
	return m, tea.Batch(cmds...)
}

func bulkCmd(action events.BulkAction) tea.Cmd {
	return func() tea.Msg {
		return events.BulkMsg{Component: rootID, Action: action}
	}
}

// sync pushes controller state into the child components.
func (m *Model) sync() {
	m.rows.SetState(m.ctrl.Filtered(), m.ctrl.ExpandedPositions())
	m.categories.SetActive(m.ctrl.Category())
	m.stats.SetStats(m.ctrl.Stats())
}

// View renders the composed UI.
func (m *Model) View() string {
	sections := []string{m.top()}
	if m.helpVisible && m.helpOverlay != nil {
		sections = append(sections, m.helpOverlay.View())
	} else {
		sections = append(sections, m.rows.View())
	}
	if m.debugEnabled && m.eventViewer != nil {
		sections = append(sections, m.eventViewer.View())
	}
	sections = append(sections, m.footer())
	return strings.Join(sections, "\n")
}

func (m *Model) top() string {
	header := lipgloss.JoinVertical(lipgloss.Left,
		m.theme.Header.Title.Render(Title),
		m.theme.Header.Subtitle.Render(Subtitle),
	)
	actions := m.theme.Category.Button.Render("[e] Expand All") +
		m.theme.Category.Button.Render("[c] Collapse All") +
		m.theme.Footer.Status.Render(" policy: "+m.ctrl.Policy().String())
	return lipgloss.JoinVertical(lipgloss.Left,
		header,
		m.stats.View(),
		m.categories.View(),
		actions,
		"",
	)
}

// Status is the footer summary line.
func (m *Model) Status() string {
	expanded := "None"
	if _, ok := m.ctrl.ExpandedIndex(); ok {
		expanded = "Yes"
	}
	category := m.ctrl.Category()
	if category == faq.AllCategories {
		category = categorybar.AllLabel
	}
	return fmt.Sprintf("Total Questions: %d · Active Category: %s · Expanded: %s",
		m.ctrl.Stats().Total, category, expanded)
}

func (m *Model) footer() string {
	bindings := []key.Binding{
		m.rows.Keys().Down, m.rows.Keys().Toggle, m.categories.Keys().Next,
		m.keys.ExpandAll, m.keys.CollapseAll, m.keys.Policy, m.keys.Help, m.keys.Quit,
	}
	return lipgloss.JoinVertical(lipgloss.Left,
		m.theme.Footer.Status.Render(m.Status()),
		m.help.ShortHelpView(bindings),
	)
}

func (m *Model) layout() {
	if m.width <= 0 {
		m.width = 1
	}
	if m.height <= 0 {
		m.height = 1
	}
	m.stats.SetWidth(m.width)
	m.categories.SetSize(m.width, 0)
	m.help.Width = m.width

	debugRows := 0
	if m.debugEnabled && m.eventViewer != nil {
		debugRows = m.computeDebugHeight()
		m.eventViewer.SetSize(m.width, debugRows)
	}
	used := lipgloss.Height(m.top()) + lipgloss.Height(m.footer()) + debugRows
	body := max(m.height-used, 1)
	m.rows.SetSize(m.width, body)
	if m.helpVisible {
		if m.helpOverlay == nil {
			m.helpOverlay = helpview.New(m.width, body)
		}
		m.helpOverlay.SetSize(m.width, body)
	}
}

func (m *Model) computeDebugHeight() int {
	rows := m.height / 3
	return min(max(rows, 3), 12)
}

func (m *Model) toggleDebug() {
	m.debugEnabled = !m.debugEnabled
	if !m.debugEnabled {
		m.eventViewer = nil
		m.layout()
		return
	}
	if m.eventViewer == nil {
		m.eventViewer = eventviewer.NewModel(400)
	}
	m.eventViewer.Append(eventviewer.Entry{Source: "ui", Summary: "debug", Detail: "event log enabled"})
	m.layout()
}

// observe receives controller changes.
func (m *Model) observe(ev accordion.Event) {
	m.logEvent(ev)
	m.appendEvent(eventviewer.Entry{Source: "controller", Summary: string(ev.Kind), Detail: ev.Describe()})
}

func (m *Model) noteEvent(msg tea.Msg) {
	d, ok := msg.(events.Describer)
	if !ok {
		return
	}
	m.appendEvent(eventviewer.Entry{Source: "tea", Summary: fmt.Sprintf("%T", msg), Detail: d.Describe()})
}

func (m *Model) warn(summary, detail string) {
	m.appendEvent(eventviewer.Entry{Source: "controller", Summary: summary, Detail: detail, Level: eventviewer.LevelWarn})
}

func (m *Model) appendEvent(entry eventviewer.Entry) {
	if m.eventViewer == nil {
		return
	}
	m.eventViewer.Append(entry)
}
