// Package tui renders a scriptgui GUI in the terminal with bubbletea.
//
// The window is laid out top to bottom as:
//
//	title bar     GUI icon, title and lifecycle state
//	breadcrumbs   the navigation trail, oldest first
//	body          drawer │ left frame │ main frame │ right frame
//	footer        snackbar, status line and key help
//
// Alerts and the go-to palette are drawn over the body.
//
// Every change to the navigation state happens inside Model.Update on the
// bubbletea goroutine. Code running elsewhere (signal handlers, the evdev
// reader, the config watcher) talks to the model with Program.Send and the
// message types in this package.
package tui
