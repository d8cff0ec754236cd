// Package internal contains the core infrastructure for the scriptgui framework.
// This includes logging, localisation, theming and layout helpers.
// Types and functions in this package are not part of the public API.
package internal
