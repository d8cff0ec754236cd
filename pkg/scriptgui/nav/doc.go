// Package nav tracks which screen of a GUI is displayed and how to get back.
//
// A Controller is created per window from a start screen and the root screens
// of the GUI. Every screen reachable from the roots is flattened into a
// Registry so it can be reached by navigation key, nested detail screens
// included.
//
// # Primary and detail screens
//
// Primary screens are top-level destinations. Navigating to one clears the
// back-stack: there is no way "back" into the detail screens of another
// section.
//
// Detail screens build up the back-stack. Moving forward pushes the screen
// being left; moving to a screen that is already on the stack cuts the stack
// back to just before it, so the stack always describes one linear path to
// the most recent primary screen.
//
//	c, err := nav.New(home, []*Screen{home, settings})
//	if err != nil {
//	    return err
//	}
//
//	c.Navigate(detail1)   // back-stack [home]
//	c.Navigate(detail2)   // back-stack [home, detail1]
//	c.NavigateBack()      // current detail1, back-stack [home]
//	c.Navigate(settings)  // back-stack []
//
// # Observing changes
//
// The controller holds plain fields. Renderers that need to redraw subscribe
// with Subscribe and receive an Event after each Navigate and each
// NavigateBack that moved.
//
// # Unknown keys
//
// NavigateByKey never panics on a missing key. It logs a warning listing the
// valid keys and returns a *KeyNotFoundError that callers are free to ignore.
package nav
