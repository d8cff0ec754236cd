package scriptgui

// DrawerItem is one entry of the side navigation drawer.
type DrawerItem struct {
	Text     string  // Display text for the item
	Icon     string  // Icon name drawn before the text
	Key      string  // Navigation key of the screen
	Selected bool    // The current screen belongs to this section
	Focused  bool    // The drawer cursor is on this item
	Screen   *Screen // The primary screen the item opens
}

// DrawerItems lists the GUI's primary screens. focus is the index of the
// item under the drawer cursor; out of range means no item is focused.
func (s *Scope) DrawerItems(focus int) []DrawerItem {
	section := s.Section()

	items := make([]DrawerItem, len(s.gui.screens))
	for i, screen := range s.gui.screens {
		items[i] = DrawerItem{
			Text:     screen.Title(),
			Icon:     screen.Icon(),
			Key:      screen.NavigationKey(),
			Selected: screen == section,
			Focused:  i == focus,
			Screen:   screen,
		}
	}
	return items
}

// Section returns the primary screen the user is currently under: the
// oldest screen on the trail. Detail screens opened directly, without a
// primary screen behind them, have no section and return nil.
func (s *Scope) Section() *Screen {
	trail := s.nav.Trail()
	if root := trail[0]; root.IsPrimary() {
		return root
	}
	return nil
}
