package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/highorder/scriptgui/pkg/scriptgui/internal"
	"github.com/highorder/scriptgui/pkg/scriptgui/theme"
)

const drawerWidth = 22

// cellPadding is the horizontal padding of drawer items and chips.
var cellPadding = internal.Padding{Left: 1, Right: 1}

type styles struct {
	titleBar    lipgloss.Style
	crumb       lipgloss.Style
	crumbActive lipgloss.Style
	state       lipgloss.Style

	drawer        lipgloss.Style
	drawerItem    lipgloss.Style
	drawerFocused lipgloss.Style
	drawerActive  lipgloss.Style

	frame    lipgloss.Style
	button   lipgloss.Style
	key      lipgloss.Style
	floating lipgloss.Style

	alert       lipgloss.Style
	alertTitle  lipgloss.Style
	confirm     lipgloss.Style
	cancel      lipgloss.Style
	snackbar    lipgloss.Style
	snackAction lipgloss.Style

	palette       lipgloss.Style
	paletteCursor lipgloss.Style

	hintKey  lipgloss.Style
	hintDesc lipgloss.Style
	status   lipgloss.Style
	errText  lipgloss.Style
}

func newStyles(t theme.Theme) styles {
	padded := cellPadding

	return styles{
		titleBar:    padded.Apply(lipgloss.NewStyle().Bold(true).Foreground(t.HighlightColor).Background(t.AccentColor)),
		crumb:       lipgloss.NewStyle().Foreground(t.HintColor),
		crumbActive: lipgloss.NewStyle().Foreground(t.TextColor).Bold(true),
		state:       lipgloss.NewStyle().Foreground(t.HintColor).Italic(true),

		drawer: lipgloss.NewStyle().
			Width(drawerWidth).
			Border(lipgloss.NormalBorder(), false, true, false, false).
			BorderForeground(t.OutlineColor),
		drawerItem:    padded.Apply(lipgloss.NewStyle().Foreground(t.TextColor)),
		drawerFocused: padded.Apply(lipgloss.NewStyle().Foreground(t.HighlightedTextColor).Background(t.HighlightColor)),
		drawerActive:  padded.Apply(lipgloss.NewStyle().Foreground(t.AccentColor).Bold(true)),

		frame: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(t.OutlineColor).
			Foreground(t.TextColor),
		button:   lipgloss.NewStyle().Foreground(t.ButtonLabelColor).Background(t.HintColor),
		key:      lipgloss.NewStyle().Foreground(t.AccentColor).Bold(true),
		floating: padded.Apply(lipgloss.NewStyle().Foreground(t.HighlightColor).Background(t.AccentColor).Bold(true)),

		alert: lipgloss.NewStyle().
			Border(lipgloss.DoubleBorder()).
			BorderForeground(t.AccentColor).
			Background(t.BackgroundColor).
			Padding(1, 2),
		alertTitle:  lipgloss.NewStyle().Bold(true).Foreground(t.TextColor),
		confirm:     padded.Apply(lipgloss.NewStyle().Foreground(t.HighlightColor).Background(t.AccentColor)),
		cancel:      padded.Apply(lipgloss.NewStyle().Foreground(t.HighlightColor).Background(t.ErrorColor)),
		snackbar:    padded.Apply(lipgloss.NewStyle().Foreground(t.TextColor).Background(t.BackgroundColor)),
		snackAction: lipgloss.NewStyle().Foreground(t.AccentColor).Bold(true),

		palette: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(t.AccentColor).
			Padding(0, 1),
		paletteCursor: lipgloss.NewStyle().Foreground(t.HighlightedTextColor).Background(t.HighlightColor),

		hintKey:  lipgloss.NewStyle().Foreground(t.AccentColor).Bold(true),
		hintDesc: lipgloss.NewStyle().Foreground(t.HintColor),
		status:   lipgloss.NewStyle().Foreground(t.TextColor),
		errText:  lipgloss.NewStyle().Foreground(t.ErrorColor),
	}
}
