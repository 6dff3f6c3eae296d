package ui

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/five82/missionboard/internal/render"
	"github.com/five82/missionboard/internal/state"
	"github.com/five82/missionboard/internal/viewstate"
)

// Options configures the UI.
type Options struct {
	Context context.Context
	Store   *state.Store
	// Refresh runs one fetch through Store. It returns state.ErrFetchPending
	// when a fetch is already in flight.
	Refresh   func(context.Context) error
	Logger    *zap.Logger
	ThemeName string
	Endpoint  string
}

// Model is the root application state for Bubble Tea.
type Model struct {
	// Configuration
	ctx      context.Context
	store    *state.Store
	refresh  func(context.Context) error
	logger   *zap.Logger
	endpoint string
	keys     keyMap
	copy     func(string) error
	now      func() time.Time

	// UI state
	theme  Theme
	width  int
	height int
	ready  bool

	// Data state
	view      *viewstate.Controller
	snapshot  state.Snapshot
	loadedGen uint64
	fetching  bool
	notice    string

	// Panes
	spinner  spinner.Model
	table    table.Model
	viewport viewport.Model

	// Overlays
	showHelp bool
	modal    Modal
}

// New creates a new Bubble Tea model.
func New(opts Options) Model {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	store := opts.Store
	if store == nil {
		store = &state.Store{}
	}
	theme := GetTheme(opts.ThemeName)

	sp := spinner.New()
	sp.Spinner = spinner.MiniDot

	tbl := table.New(
		table.WithColumns(tableColumns(0)),
		table.WithFocused(true),
		table.WithStyles(theme.TableStyles()),
	)

	return Model{
		ctx:      ctx,
		store:    store,
		refresh:  opts.Refresh,
		logger:   logger,
		endpoint: opts.Endpoint,
		keys:     DefaultKeyMap(),
		copy:     clipboard.WriteAll,
		now:      time.Now,
		theme:    theme,
		view:     viewstate.New(),
		snapshot: store.Snapshot(),
		fetching: opts.Refresh != nil,
		spinner:  sp,
		table:    tbl,
		viewport: viewport.New(0, 0),
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	if !m.fetching {
		return nil
	}
	return tea.Batch(m.spinner.Tick, m.refreshCmd())
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
		m.syncContent()
		return m, nil

	case spinner.TickMsg:
		if !m.fetching {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case fetchDoneMsg:
		return m.handleFetchDone(msg)

	case filterSubmittedMsg:
		if err := m.view.SetFilter(msg.field, msg.query); err != nil {
			m.notice = err.Error()
			return m, nil
		}
		m.notice = ""
		m.logger.Debug("filter applied",
			zap.Stringer("field", msg.field),
			zap.String("query", msg.query),
			zap.Int("displayed", m.view.Len()))
		m.syncContent()
		return m, nil
	}

	if m.modal != nil {
		return m.updateModal(msg)
	}
	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return render.LoadingText
	}
	if m.showHelp {
		return m.renderHelp()
	}
	if m.modal != nil {
		return m.modal.View(m.theme, m.width, m.height)
	}
	return m.renderMain()
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.showHelp {
		// Any key closes help
		m.showHelp = false
		return m, nil
	}
	if m.modal != nil {
		return m.updateModal(msg)
	}

	k := m.keys
	switch {
	case key.Matches(msg, k.Quit):
		return m, tea.Quit

	case key.Matches(msg, k.Help):
		m.showHelp = true
		return m, nil

	case key.Matches(msg, k.CycleTheme):
		m.theme = GetTheme(NextTheme(m.theme.Name))
		m.table.SetStyles(m.theme.TableStyles())
		m.syncContent()
		return m, nil

	case key.Matches(msg, k.ModeCard):
		return m.setMode(viewstate.ModeCard)
	case key.Matches(msg, k.ModeTable):
		return m.setMode(viewstate.ModeTable)
	case key.Matches(msg, k.ModeRaw):
		return m.setMode(viewstate.ModeRaw)
	case key.Matches(msg, k.CycleMode):
		return m.setMode(m.view.Preferences().Mode.Next())

	case key.Matches(msg, k.CycleSort):
		next := m.view.Preferences().Sort.Next()
		if err := m.view.SetSortKey(next); err != nil {
			m.notice = err.Error()
			return m, nil
		}
		m.logger.Debug("sort changed", zap.Stringer("field", next))
		m.syncContent()
		return m, nil

	case key.Matches(msg, k.CycleFilter):
		// Switching the field starts a fresh query.
		next := m.view.Preferences().Filter.Field.Next()
		if err := m.view.SetFilter(next, ""); err != nil {
			m.notice = err.Error()
			return m, nil
		}
		m.syncContent()
		return m, nil

	case key.Matches(msg, k.EditFilter):
		filter := m.view.Preferences().Filter
		if !filter.Active() {
			filter.Field = viewstate.FieldName
		}
		m.modal = newFilterModal(filter.Field, filter.Query)
		return m, nil

	case key.Matches(msg, k.ResetView):
		m.view.ResetView()
		m.notice = ""
		m.syncContent()
		return m, nil

	case key.Matches(msg, k.Refresh):
		if m.fetching {
			m.notice = state.ErrFetchPending.Error()
			return m, nil
		}
		m.fetching = true
		m.notice = ""
		return m, tea.Batch(m.spinner.Tick, m.refreshCmd())

	case key.Matches(msg, k.CopyRaw):
		return m.copyRaw()
	}

	for _, nav := range k.navigation() {
		if key.Matches(msg, nav) {
			return m.navigate(msg)
		}
	}
	return m, nil
}

func (m Model) updateModal(msg tea.Msg) (tea.Model, tea.Cmd) {
	modal, cmd, closed := m.modal.Update(msg, m.keys)
	if closed {
		m.modal = nil
	} else {
		m.modal = modal
	}
	return m, cmd
}

func (m Model) setMode(mode viewstate.DisplayMode) (tea.Model, tea.Cmd) {
	if err := m.view.SetDisplayMode(mode); err != nil {
		m.notice = err.Error()
		return m, nil
	}
	m.syncContent()
	return m, nil
}

func (m Model) navigate(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	if m.view.Preferences().Mode == viewstate.ModeTable {
		m.table, cmd = m.table.Update(msg)
		return m, cmd
	}
	switch {
	case key.Matches(msg, m.keys.Top):
		m.viewport.GotoTop()
	case key.Matches(msg, m.keys.Bottom):
		m.viewport.GotoBottom()
	default:
		m.viewport, cmd = m.viewport.Update(msg)
	}
	return m, cmd
}

func (m Model) copyRaw() (tea.Model, tea.Cmd) {
	out, err := render.Raw(m.view.DisplayedSet())
	if err != nil {
		m.notice = err.Error()
		return m, nil
	}
	if err := m.copy(string(out)); err != nil {
		m.logger.Warn("clipboard copy failed", zap.Error(err))
		m.notice = "clipboard unavailable"
		return m, nil
	}
	m.notice = fmt.Sprintf("copied %d missions", m.view.Len())
	return m, nil
}

func (m Model) handleFetchDone(msg fetchDoneMsg) (tea.Model, tea.Cmd) {
	if errors.Is(msg.err, state.ErrFetchPending) {
		// The fetch already in flight will report its own outcome.
		return m, nil
	}
	m.fetching = false
	m.snapshot = msg.snapshot
	if m.snapshot.Phase == state.PhaseSucceeded && m.snapshot.Generation != m.loadedGen {
		m.view.LoadAuthoritative(m.snapshot.Result.Data)
		m.loadedGen = m.snapshot.Generation
		m.table.GotoTop()
		m.viewport.GotoTop()
	}
	m.syncContent()
	return m, nil
}

// loading reports whether the loading presentation replaces the content.
func (m Model) loading() bool {
	return m.fetching || m.snapshot.Phase == state.PhaseIdle || m.snapshot.Phase == state.PhasePending
}

// Messages

type fetchDoneMsg struct {
	snapshot state.Snapshot
	err      error
}

// Commands

func (m Model) refreshCmd() tea.Cmd {
	if m.refresh == nil {
		return nil
	}
	ctx, refresh, store := m.ctx, m.refresh, m.store
	return func() tea.Msg {
		err := refresh(ctx)
		return fetchDoneMsg{snapshot: store.Snapshot(), err: err}
	}
}

// Run starts the Bubble Tea program and blocks until it exits or ctx is
// cancelled.
func Run(ctx context.Context, opts Options) error {
	if opts.Context == nil {
		opts.Context = ctx
	}
	m := New(opts)
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx))
	_, err := p.Run()
	if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		return nil
	}
	return err
}
