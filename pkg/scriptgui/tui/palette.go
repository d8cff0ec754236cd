package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/highorder/scriptgui/pkg/scriptgui"
	"github.com/highorder/scriptgui/pkg/scriptgui/constants"
	"github.com/highorder/scriptgui/pkg/scriptgui/search"
)

const paletteLimit = 8

// palette is the go-to overlay: a query line and the registered screens
// ranked against it.
type palette struct {
	query   string
	cursor  int
	matches []search.Match[*scriptgui.Screen]
}

// paletteText is what the query is matched against. Nested screens are often
// titled like a primary screen, so their key is added when it differs.
func paletteText(s *scriptgui.Screen) string {
	if s.NavigationKey() != s.Title() {
		return s.Title() + " (" + s.NavigationKey() + ")"
	}
	return s.Title()
}

func (m *Model) openPalette() {
	m.palette = &palette{}
	m.refreshPalette()
}

func (m *Model) refreshPalette() {
	ranker := search.Ranker[*scriptgui.Screen]{
		ToString:   paletteText,
		IsFavorite: (*scriptgui.Screen).IsPrimary,
		Limit:      paletteLimit,
		MinScore:   search.DefaultMinScore,
	}
	m.palette.matches = ranker.Rank(m.palette.query, m.scope.Navigation().Screens())
	if m.palette.cursor >= len(m.palette.matches) {
		m.palette.cursor = max(len(m.palette.matches)-1, 0)
	}
}

func (m *Model) handlePaletteKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.Type {
	case tea.KeyCtrlC:
		m.scope.Cancel()
		return tea.Quit
	case tea.KeyEsc:
		m.palette = nil
	case tea.KeyEnter:
		m.selectPaletteMatch()
	case tea.KeyUp:
		m.handlePaletteButton(constants.VirtualButtonUp)
	case tea.KeyDown:
		m.handlePaletteButton(constants.VirtualButtonDown)
	case tea.KeyBackspace:
		if runes := []rune(m.palette.query); len(runes) > 0 {
			m.palette.query = string(runes[:len(runes)-1])
			m.refreshPalette()
		}
	case tea.KeyRunes:
		m.typePalette(string(msg.Runes))
	case tea.KeySpace:
		m.typePalette(" ")
	}
	return nil
}

func (m *Model) typePalette(text string) {
	m.palette.query += text
	m.palette.cursor = 0
	m.refreshPalette()
}

func (m *Model) handlePaletteButton(button constants.VirtualButton) {
	switch button {
	case constants.VirtualButtonUp:
		if m.palette.cursor > 0 {
			m.palette.cursor--
		}
	case constants.VirtualButtonDown:
		if m.palette.cursor < len(m.palette.matches)-1 {
			m.palette.cursor++
		}
	case constants.VirtualButtonA, constants.VirtualButtonStart:
		m.selectPaletteMatch()
	case constants.VirtualButtonB, constants.VirtualButtonSelect:
		m.palette = nil
	}
}

func (m *Model) selectPaletteMatch() {
	p := m.palette
	m.palette = nil
	if len(p.matches) == 0 {
		return
	}
	m.scope.Navigate(p.matches[p.cursor].Item)
}
