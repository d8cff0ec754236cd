package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/highorder/scriptgui/pkg/scriptgui"
	"github.com/highorder/scriptgui/pkg/scriptgui/constants"
	"github.com/highorder/scriptgui/pkg/scriptgui/icon"
	"github.com/highorder/scriptgui/pkg/scriptgui/internal"
)

// Size used until the first tea.WindowSizeMsg arrives.
const (
	defaultWidth  = 80
	defaultHeight = 24
)

func (m *Model) size() (int, int) {
	w, h := m.width, m.height
	if w <= 0 {
		w = defaultWidth
	}
	if h <= 0 {
		h = defaultHeight
	}
	return w, h
}

func (m *Model) View() string {
	width, height := m.size()

	header := m.renderHeader(width)
	footer := m.renderFooter(width)
	bodyHeight := max(height-lipgloss.Height(header)-lipgloss.Height(footer), 3)

	var body string
	switch {
	case m.hasAlert():
		body = lipgloss.Place(width, bodyHeight, lipgloss.Center, lipgloss.Center, m.renderAlert())
	case m.palette != nil:
		body = lipgloss.Place(width, bodyHeight, lipgloss.Center, lipgloss.Top, m.renderPalette(width))
	default:
		body = m.renderBody(width, bodyHeight)
	}

	return lipgloss.JoinVertical(lipgloss.Left, header, body, footer)
}

func (m *Model) hasAlert() bool {
	_, ok := m.scope.Alert()
	return ok
}

// renderHeader draws the title bar and the breadcrumb trail:
//
//	▀▀ My Script │ running
//	← Page One › Page One Settings
func (m *Model) renderHeader(width int) string {
	gui := m.scope.Gui()
	state := internal.T("state." + m.scope.State().String())

	title := thumbnail(gui.Icon, constants.GlyphAction) + " " + gui.Title +
		m.styles.state.Render(" │ "+state)
	bar := m.styles.titleBar.Width(width).MaxWidth(width).Render(title)

	trail := m.scope.Navigation().Trail()
	crumbs := make([]string, len(trail))
	for i, screen := range trail {
		if i == len(trail)-1 {
			crumbs[i] = m.styles.crumbActive.Render(screen.Title())
		} else {
			crumbs[i] = m.styles.crumb.Render(screen.Title())
		}
	}
	line := strings.Join(crumbs, m.styles.crumb.Render(" "+constants.GlyphCrumb+" "))
	if m.scope.Navigation().CanGoBack() {
		line = m.styles.crumb.Render(constants.GlyphBack+" ") + line
	}

	return lipgloss.JoinVertical(lipgloss.Left, bar, lipgloss.NewStyle().MaxWidth(width).Render(line))
}

// thumbnail renders a one-row icon, or fallback if the icon is missing.
func thumbnail(name, fallback string) string {
	s, err := icon.Thumbnail(name, 2, 1)
	if err != nil {
		return fallback + " "
	}
	return s
}

func (m *Model) renderBody(width, height int) string {
	drawer := m.renderDrawer(height)
	avail := max(width-lipgloss.Width(drawer), 10)

	screen := m.scope.CurrentScreen()
	leftWidth, rightWidth := 0, 0
	if screen.IsLeftFrameVisible() {
		leftWidth = avail / 4
	}
	if screen.IsRightFrameVisible() {
		rightWidth = avail / 4
	}
	mainWidth := avail - leftWidth - rightWidth

	columns := []string{drawer}
	if leftWidth > 0 {
		columns = append(columns, m.renderFrame(screen, screen.LeftFrame(), leftWidth, height))
	}
	columns = append(columns, m.renderFrame(screen, screen.MainFrame(), mainWidth, height))
	if rightWidth > 0 {
		columns = append(columns, m.renderFrame(screen, screen.RightFrame(), rightWidth, height))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, columns...)
}

func (m *Model) renderDrawer(height int) string {
	textWidth := drawerWidth - cellPadding.Horizontal() - 4

	var lines []string
	for _, item := range m.scope.DrawerItems(m.drawerFocus) {
		marker := "  "
		if item.Selected {
			marker = constants.GlyphSelected + " "
		}
		text := lipgloss.NewStyle().MaxWidth(textWidth).Render(item.Text)
		line := marker + thumbnail(item.Icon, " ") + text

		switch {
		case item.Focused:
			lines = append(lines, m.styles.drawerFocused.Render(line))
		case item.Selected:
			lines = append(lines, m.styles.drawerActive.Render(line))
		default:
			lines = append(lines, m.styles.drawerItem.Render(line))
		}
	}
	return m.styles.drawer.Height(height).MaxHeight(height).Render(strings.Join(lines, "\n"))
}

func (m *Model) renderFrame(screen *scriptgui.Screen, frame *scriptgui.Frame, width, height int) string {
	innerWidth := max(width-2, 1)
	innerHeight := max(height-2, 1)

	body := frame.Body(scriptgui.FrameContext{
		Scope:  m.scope,
		Screen: screen,
		Width:  innerWidth,
		Height: innerHeight,
	})
	if frame != nil && len(frame.Buttons) > 0 {
		body += "\n\n" + m.renderButtons(frame.Buttons)
	}
	if frame == screen.MainFrame() {
		if fab := screen.FloatingAction(); fab != nil {
			body += "\n\n" + m.styles.floating.Render(constants.GlyphAction+" "+fab.Label) +
				" " + m.styles.key.Render(m.keymap.FirstKey(constants.VirtualButtonX))
		}
	}

	return m.styles.frame.
		Width(innerWidth).
		Height(innerHeight).
		MaxHeight(height).
		Render(body)
}

func (m *Model) renderButtons(buttons []scriptgui.Button) string {
	chips := make([]string, 0, len(buttons))
	for _, b := range buttons {
		chip := m.styles.button.Render(" " + b.Label + " ")
		if b.Key != "" {
			chip = m.styles.key.Render(b.Key) + " " + chip
		}
		chips = append(chips, chip)
	}
	return strings.Join(chips, "  ")
}

func (m *Model) renderAlert() string {
	alert, _ := m.scope.Alert()

	var b strings.Builder
	if alert.Title != "" {
		b.WriteString(m.styles.alertTitle.Render(alert.Title))
		b.WriteString("\n\n")
	}
	if alert.Message != "" {
		b.WriteString(alert.Message)
		b.WriteString("\n\n")
	}
	b.WriteString(m.styles.key.Render(m.keymap.FirstKey(constants.VirtualButtonA)) + " " + m.styles.confirm.Render(alert.ConfirmText))
	b.WriteString("   ")
	b.WriteString(m.styles.key.Render(m.keymap.FirstKey(constants.VirtualButtonB)) + " " + m.styles.cancel.Render(alert.CancelText))

	return m.styles.alert.Render(b.String())
}

func (m *Model) renderPalette(width int) string {
	p := m.palette
	lines := []string{internal.T("palette.prompt") + ": " + p.query + "▏", ""}

	if len(p.matches) == 0 {
		lines = append(lines, m.styles.hintDesc.Render(internal.T("palette.empty")))
	}
	for i, match := range p.matches {
		line := thumbnail(match.Item.Icon(), " ") + match.Text
		if i == p.cursor {
			line = m.styles.paletteCursor.Render(constants.GlyphSelected + " " + line)
		} else {
			line = "  " + line
		}
		lines = append(lines, line)
	}

	return m.styles.palette.Width(min(width-4, 48)).Render(strings.Join(lines, "\n"))
}

type hint struct {
	key  string
	desc string
}

func (m *Model) renderFooter(width int) string {
	var rows []string

	if snackbar, ok := m.scope.Snackbar(); ok {
		text := snackbar.Message
		if snackbar.Action != "" {
			text += "  " + m.styles.snackAction.Render(
				fmt.Sprintf("[%s] %s", m.keymap.FirstKey(constants.VirtualButtonA), snackbar.Action))
		}
		rows = append(rows, m.styles.snackbar.Width(width).MaxWidth(width).Render(text))
	}

	if m.status != "" {
		style := m.styles.status
		if m.statusError {
			style = m.styles.errText
		}
		rows = append(rows, style.MaxWidth(width).Render(m.status))
	}

	hints := []hint{
		{m.keymap.FirstKey(constants.VirtualButtonB), internal.T("footer.back")},
		{m.keymap.FirstKey(constants.VirtualButtonMenu), internal.T("footer.home")},
		{m.keymap.FirstKey(constants.VirtualButtonSelect), internal.T("footer.goto")},
		{m.keymap.FirstKey(constants.VirtualButtonL1) + m.keymap.FirstKey(constants.VirtualButtonR1), internal.T("footer.frames")},
		{m.keymap.FirstKey(constants.VirtualButtonQuit), internal.T("footer.quit")},
	}
	rows = append(rows, lipgloss.NewStyle().MaxWidth(width).Render(m.renderHints(hints)))

	return strings.Join(rows, "\n")
}

func (m *Model) renderHints(hints []hint) string {
	parts := make([]string, len(hints))
	for i, h := range hints {
		parts[i] = m.styles.hintKey.Render(h.key) + " " + m.styles.hintDesc.Render(h.desc)
	}
	return strings.Join(parts, m.styles.hintDesc.Render("  "))
}
