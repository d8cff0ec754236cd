package internal

import "github.com/charmbracelet/lipgloss"

// Padding defines spacing on all four sides of an element, in cells.
type Padding struct {
	Top    int
	Right  int
	Bottom int
	Left   int
}

// UniformPadding creates a Padding with the same value on all sides.
func UniformPadding(value int) Padding {
	return Padding{
		Top:    value,
		Right:  value,
		Bottom: value,
		Left:   value,
	}
}

// Apply sets the padding on style.
func (p Padding) Apply(style lipgloss.Style) lipgloss.Style {
	return style.Padding(p.Top, p.Right, p.Bottom, p.Left)
}

// Horizontal returns the cells taken up by the left and right padding.
func (p Padding) Horizontal() int {
	return p.Left + p.Right
}

// Vertical returns the rows taken up by the top and bottom padding.
func (p Padding) Vertical() int {
	return p.Top + p.Bottom
}
