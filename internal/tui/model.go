package tui

import (
	"io"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"recipfit/internal/config"
	"recipfit/internal/constants"
	"recipfit/internal/fit"
	"recipfit/internal/hover"
	"recipfit/internal/logger"
	"recipfit/internal/measure"
)

type focusArea int

const (
	focusEditor focusArea = iota
	focusCell
)

func (f focusArea) String() string {
	switch f {
	case focusEditor:
		return "editor"
	case focusCell:
		return "cell"
	default:
		return "unknown"
	}
}

// Screen rows occupied by the recipients cell; see View.
const (
	cellTop    = 4
	cellHeight = 3
)

type Model struct {
	cfg *config.Config

	svc    measure.Service
	engine *fit.Engine
	root   *measure.Element
	cell   *measure.Element
	hover  *hover.Machine

	editor textinput.Model
	meter  progress.Model
	help   help.Model
	keys   keyMap
	events *EventLog

	focus focusArea
	// override is the fixed width budget in the active unit; 0 follows the
	// window.
	override    float64
	pointerOver bool
	quitting    bool
	width       int
	height      int
}

// NewModel builds the interactive host. The cell is mounted once the first
// window size arrives.
func NewModel(cfg *config.Config, source string) *Model {
	m := &Model{
		cfg:    cfg,
		svc:    measure.New(cfg.Unit),
		keys:   newKeyMap(),
		events: NewEventLog(),
		help:   help.New(),
		meter: progress.New(
			progress.WithDefaultGradient(),
			progress.WithWidth(30),
			progress.WithoutPercentage(),
		),
	}

	m.editor = textinput.New()
	m.editor.Prompt = "To: "
	m.editor.Placeholder = "a@example.com, b@example.com"
	m.editor.SetValue(source)
	m.editor.Focus()
	m.keys.setCellFocus(false)

	m.root = measure.NewElement(nil)
	m.root.ApplyDescriptor(cfg.FontDescriptor())
	m.cell = measure.NewElement(m.root)

	m.override = cfg.AvailableWidth

	m.hover = hover.New(cfg.HoverShowDelay, cfg.HoverHideDelay)
	m.hover.OnShow(func() {
		hidden := m.engine.Result().Hidden
		m.events.Add("tooltip shown: %d hidden", hidden)
		logger.Debug("tooltip shown", "hidden", hidden)
	})
	m.hover.OnHide(func() {
		m.events.Add("tooltip hidden")
		logger.Debug("tooltip hidden")
	})

	m.engine = fit.NewEngine(m.svc, m.fitConfig())
	m.engine.OnTruncate(func(hidden, total int) {
		m.events.Add("truncated: %d of %d hidden", hidden, total)
		logger.Info("recipients truncated", "hidden", hidden, "total", total)
	})
	m.engine.SetSource(source)

	return m
}

func (m *Model) Init() tea.Cmd {
	return tea.Batch(
		textinput.Blink,
		tea.WindowSize(),
	)
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m, m.handleKey(msg)

	case tea.MouseMsg:
		return m, m.handleMouse(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.editor.Width = max(10, msg.Width-len(m.editor.Prompt)-1)
		m.events.SetSize(msg.Width, msg.Height)
		m.help.Width = msg.Width
		width := measure.ColumnsWidth(m.cfg.Unit, m.windowColumns())
		if m.engine.Target() == nil {
			m.cell.SetWidth(width)
			m.engine.Mount(m.cell)
		} else {
			m.engine.Resize(width)
		}
		return m, m.syncHover()

	case hover.TickMsg:
		return m, m.hover.Update(msg)
	}

	var cmd tea.Cmd
	if m.focus == focusEditor {
		m.editor, cmd = m.editor.Update(msg)
	}
	return m, cmd
}

// Close unmounts the cell and releases measurement resources.
func (m *Model) Close() error {
	m.hover.Reset()
	m.engine.Unmount()
	if c, ok := m.svc.(io.Closer); ok {
		return c.Close()
	}
	return nil
}

// Result returns the engine's latest published result.
func (m *Model) Result() fit.Result {
	return m.engine.Result()
}

// windowColumns is the content width the cell gets when it follows the window.
func (m *Model) windowColumns() int {
	return max(0, m.width-constants.CellChromeWidth)
}

// overrideColumns is the number of whole columns the override budget covers.
func (m *Model) overrideColumns() int {
	if m.override <= 0 {
		return 0
	}
	return max(1, int(m.override/measure.ColumnsWidth(m.cfg.Unit, 1)))
}

// cellColumns is the content width the cell is drawn with.
func (m *Model) cellColumns() int {
	if m.override > 0 {
		return m.overrideColumns()
	}
	return m.windowColumns()
}

func (m *Model) fitConfig() fit.Config {
	c := m.cfg.FitConfig()
	c.AvailableWidth = m.override
	return c
}

// setOverride fixes the cell at columns wide, or follows the window again
// when columns is zero.
func (m *Model) setOverride(columns int) tea.Cmd {
	if columns < 0 {
		columns = 1
	}
	if columns > 0 && m.width > 0 {
		columns = max(1, min(columns, m.windowColumns()))
	}
	width := measure.ColumnsWidth(m.cfg.Unit, columns)
	if width == m.override {
		return nil
	}
	m.override = width
	m.engine.SetConfig(m.fitConfig())
	return m.syncHover()
}

func (m *Model) toggleOverflow() tea.Cmd {
	m.cfg.AllowSingleOverflow = !m.cfg.AllowSingleOverflow
	m.engine.SetConfig(m.fitConfig())
	m.events.Add("single overflow %s", onOff(m.cfg.AllowSingleOverflow))
	return m.syncHover()
}

// syncHover keeps the tooltip in step with the result: it opens while the
// cell is engaged and something is hidden, and closes once nothing is.
func (m *Model) syncHover() tea.Cmd {
	if !m.engine.Result().Truncated() {
		if m.hover.State() != hover.Hidden {
			m.hover.Reset()
		}
		return nil
	}
	engaged := m.pointerOver || m.focus == focusCell
	if engaged && m.hover.State() == hover.Hidden {
		return m.hover.Enter()
	}
	return nil
}

// enterHover starts the show delay when there is something to show.
func (m *Model) enterHover() tea.Cmd {
	if !m.engine.Result().Truncated() {
		return nil
	}
	return m.hover.Enter()
}

func onOff(b bool) string {
	if b {
		return "on"
	}
	return "off"
}
