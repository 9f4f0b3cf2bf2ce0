package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"recipfit/internal/constants"
)

type keyMap struct {
	Focus    key.Binding
	Narrow   key.Binding
	Widen    key.Binding
	Follow   key.Binding
	Overflow key.Binding
	Quit     key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		Focus: key.NewBinding(
			key.WithKeys("tab", "shift+tab"),
			key.WithHelp("tab", "editor/cell"),
		),
		Narrow: key.NewBinding(
			key.WithKeys("["),
			key.WithHelp("[", "narrow"),
		),
		Widen: key.NewBinding(
			key.WithKeys("]"),
			key.WithHelp("]", "widen"),
		),
		Follow: key.NewBinding(
			key.WithKeys("0"),
			key.WithHelp("0", "follow window"),
		),
		Overflow: key.NewBinding(
			key.WithKeys("o"),
			key.WithHelp("o", "overflow"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Focus, k.Narrow, k.Widen, k.Follow, k.Overflow, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

// setCellFocus enables or disables the cell-only bindings. While the editor
// has focus the same keys are plain text.
func (k *keyMap) setCellFocus(on bool) {
	k.Narrow.SetEnabled(on)
	k.Widen.SetEnabled(on)
	k.Follow.SetEnabled(on)
	k.Overflow.SetEnabled(on)
}

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	if msg.String() == "ctrl+c" {
		return m.quit()
	}

	switch {
	case key.Matches(msg, m.keys.Focus):
		return m.toggleFocus()
	case m.focus == focusCell && key.Matches(msg, m.keys.Quit):
		return m.quit()
	case key.Matches(msg, m.keys.Narrow):
		return m.setOverride(max(1, m.cellColumns()-constants.CellWidthStep))
	case key.Matches(msg, m.keys.Widen):
		return m.setOverride(m.cellColumns() + constants.CellWidthStep)
	case key.Matches(msg, m.keys.Follow):
		return m.setOverride(0)
	case key.Matches(msg, m.keys.Overflow):
		return m.toggleOverflow()
	}

	if m.focus != focusEditor {
		return nil
	}

	prev := m.editor.Value()
	var cmd tea.Cmd
	m.editor, cmd = m.editor.Update(msg)
	if v := m.editor.Value(); v != prev {
		m.engine.SetSource(v)
		return tea.Batch(cmd, m.syncHover())
	}
	return cmd
}

func (m *Model) handleMouse(msg tea.MouseMsg) tea.Cmd {
	over := inBounds(msg.X, msg.Y, 0, cellTop, m.cellColumns()+constants.CellChromeWidth, cellHeight)
	if over == m.pointerOver {
		return nil
	}
	m.pointerOver = over
	if m.focus == focusCell {
		return nil
	}
	if over {
		return m.enterHover()
	}
	return m.hover.Leave()
}

func (m *Model) toggleFocus() tea.Cmd {
	if m.focus == focusEditor {
		m.focus = focusCell
		m.editor.Blur()
		m.keys.setCellFocus(true)
		if m.pointerOver {
			return nil
		}
		return m.enterHover()
	}

	m.focus = focusEditor
	m.keys.setCellFocus(false)
	cmd := m.editor.Focus()
	if m.pointerOver {
		return cmd
	}
	return tea.Batch(cmd, m.hover.Leave())
}

func (m *Model) quit() tea.Cmd {
	m.quitting = true
	return tea.Quit
}
