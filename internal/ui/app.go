package ui

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/hiremap/internal/hiring"
	"github.com/five82/hiremap/internal/lights"
	"github.com/five82/hiremap/internal/panes"
	"github.com/five82/hiremap/internal/prefs"
	"github.com/five82/hiremap/internal/state"
)

var errNoLoader = errors.New("no document source configured")

// Loader produces the flat records for the hiring map.
type Loader interface {
	Load(ctx context.Context) ([]hiring.Record, error)
}

// Options configures the UI.
type Options struct {
	Context     context.Context
	Loader      Loader
	Store       *state.Store
	StartPane   panes.ID
	SourceLabel string
	ThemeName   string
	KindFilter  hiring.Kind
	PrefsPath   string
	Watching    bool
}

// Model is the root application state for Bubble Tea.
type Model struct {
	// Configuration
	ctx         context.Context
	loader      Loader
	store       *state.Store
	prefsPath   string
	sourceLabel string
	watching    bool

	// UI state
	theme    Theme
	keys     keyMap
	help     help.Model
	panes    *panes.Controller
	width    int
	height   int
	ready    bool
	showHelp bool

	// Signals pane
	light    lights.Light
	lightGen int

	// Hiring map
	snapshot  state.Snapshot
	visible   []hiring.Record
	kind      hiring.Kind
	search    textinput.Model
	searching bool
	spinner   spinner.Model
	cards     viewport.Model
}

// New creates a new Bubble Tea model.
func New(opts Options) Model {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}

	store := opts.Store
	if store == nil {
		store = &state.Store{}
	}

	controller, err := panes.New(panes.Default(), opts.StartPane)
	if err != nil {
		log.Printf("start pane: %v", err)
		controller, _ = panes.New(panes.Default(), panes.Overview)
	}

	themeName := opts.ThemeName
	if themeName == "" {
		themeName = ThemeNames()[0]
	}

	prefsPath := opts.PrefsPath
	if prefsPath == "" {
		prefsPath = prefs.DefaultPath()
	}

	ti := textinput.New()
	ti.Placeholder = "Search companies, jobs, promises, vouches..."
	ti.Prompt = "/ "
	ti.CharLimit = 200

	sp := spinner.New()
	sp.Spinner = spinner.Dot

	return Model{
		ctx:         ctx,
		loader:      opts.Loader,
		store:       store,
		prefsPath:   prefsPath,
		sourceLabel: opts.SourceLabel,
		watching:    opts.Watching,
		theme:       GetTheme(themeName),
		keys:        DefaultKeyMap(),
		help:        help.New(),
		panes:       controller,
		kind:        opts.KindFilter,
		search:      ti,
		spinner:     sp,
		snapshot:    store.Snapshot(),
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	active := m.panes.Active().ID
	return func() tea.Msg { return paneEnteredMsg{id: active} }
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		m.help.Width = msg.Width
		m.layout()
		return m, nil

	case paneEnteredMsg:
		return m, m.enter(msg.id)

	case lightTickMsg:
		return m.handleLightTick(msg)

	case recordsLoadedMsg:
		if msg.err != nil {
			log.Printf("document load failed: %v", msg.err)
		} else {
			log.Printf("document loaded: %d records", len(msg.records))
		}
		m.store.Complete(msg.records, msg.err)
		m.refresh()
		return m, nil

	case ReloadMsg:
		return m, m.reload()

	case spinner.TickMsg:
		if m.snapshot.Phase != state.PhaseLoading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}

	if m.showHelp {
		return m.renderHelp()
	}

	var b strings.Builder
	b.WriteString(m.renderHeader())
	b.WriteString("\n")
	b.WriteString(m.renderContent())
	b.WriteString("\n")
	b.WriteString(m.renderFooter())
	return b.String()
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.showHelp {
		// Any key closes help
		m.showHelp = false
		return m, nil
	}

	if m.searching {
		return m.handleSearchInput(msg)
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.showHelp = true
		return m, nil

	case key.Matches(msg, m.keys.CycleTheme):
		m.theme = GetTheme(NextTheme(m.theme.Name))
		m.savePrefs()
		m.refresh()
		return m, nil

	case key.Matches(msg, m.keys.Tab):
		return m, m.enterTransition(m.panes.Next())

	case key.Matches(msg, m.keys.ShiftTab):
		return m, m.enterTransition(m.panes.Prev())

	case key.Matches(msg, m.keys.ViewOverview):
		return m, m.activate(panes.Overview)

	case key.Matches(msg, m.keys.ViewSignals):
		return m, m.activate(panes.Signals)

	case key.Matches(msg, m.keys.ViewHiring):
		return m, m.activate(panes.Hiring)
	}

	if m.panes.IsActive(panes.Hiring) {
		return m.handleHiringKey(msg)
	}
	return m, nil
}

// activate switches to id and runs its entry side effects.
func (m *Model) activate(id panes.ID) tea.Cmd {
	tr, err := m.panes.Activate(id)
	if err != nil {
		log.Printf("activate pane: %v", err)
		return nil
	}
	return m.enterTransition(tr)
}

func (m *Model) enterTransition(tr panes.Transition) tea.Cmd {
	if !tr.Changed() {
		return nil
	}
	if tr.From == panes.Signals {
		// Orphan the pending tick so it is dropped on arrival.
		m.lightGen++
	}
	return m.enter(tr.To)
}

// enter runs the activation side effects of a pane that just became active.
func (m *Model) enter(id panes.ID) tea.Cmd {
	if !m.panes.IsActive(id) {
		return nil
	}
	switch id {
	case panes.Signals:
		m.light.Step()
		m.lightGen++
		return lightTickCmd(m.lightGen)
	case panes.Hiring:
		if m.store.Begin() {
			m.refresh()
			return m.startLoad()
		}
		m.refresh()
	}
	return nil
}

// reload drops the cached records and loads them again. It is a no-op while a
// load is in flight or before the hiring map was ever loaded.
func (m *Model) reload() tea.Cmd {
	if m.store.Snapshot().Phase == state.PhaseEmpty {
		return nil
	}
	if !m.store.Reload() {
		return nil
	}
	m.refresh()
	return m.startLoad()
}

func (m *Model) startLoad() tea.Cmd {
	return tea.Batch(loadCmd(m.ctx, m.loader), m.spinner.Tick)
}

// handleLightTick advances the light if the tick belongs to the current
// activation and the Signals pane is still showing.
func (m Model) handleLightTick(msg lightTickMsg) (tea.Model, tea.Cmd) {
	if msg.gen != m.lightGen || !m.panes.IsActive(panes.Signals) {
		return m, nil
	}
	m.light.Step()
	return m, lightTickCmd(m.lightGen)
}

// refresh re-reads the store and re-applies the search and type filter.
func (m *Model) refresh() {
	m.snapshot = m.store.Snapshot()
	m.visible = hiring.Filter(m.snapshot.Records, m.search.Value(), m.kind)
	m.updateCards()
}

func (m *Model) savePrefs() {
	p := prefs.Prefs{Theme: m.theme.Name, KindFilter: string(m.kind)}
	if err := prefs.Save(m.prefsPath, p); err != nil {
		log.Printf("save prefs: %v", err)
	}
}

// Messages

// ReloadMsg asks the model to drop its cached records and load them again.
type ReloadMsg struct{}

type paneEnteredMsg struct {
	id panes.ID
}

type lightTickMsg struct {
	gen int
}

type recordsLoadedMsg struct {
	records []hiring.Record
	err     error
}

// Commands

func lightTickCmd(gen int) tea.Cmd {
	return tea.Tick(lights.Interval, func(time.Time) tea.Msg {
		return lightTickMsg{gen: gen}
	})
}

func loadCmd(ctx context.Context, loader Loader) tea.Cmd {
	return func() tea.Msg {
		if loader == nil {
			return recordsLoadedMsg{err: errNoLoader}
		}
		records, err := loader.Load(ctx)
		return recordsLoadedMsg{records: records, err: err}
	}
}

// NewProgram builds the Bubble Tea program without starting it, so callers can
// deliver messages such as ReloadMsg with Send.
func NewProgram(opts Options, programOpts ...tea.ProgramOption) *tea.Program {
	m := New(opts)
	all := append([]tea.ProgramOption{tea.WithAltScreen()}, programOpts...)
	if opts.Context != nil {
		all = append(all, tea.WithContext(opts.Context))
	}
	return tea.NewProgram(m, all...)
}
