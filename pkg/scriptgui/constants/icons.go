package constants

// Names of the icons embedded in the icon package.
const (
	IconHome     = "home"
	IconSettings = "settings"
	IconOne      = "one"
	IconTwo      = "two"
	IconBuild    = "build"
	IconClose    = "close"
	IconLogo     = "logo"
)

// Glyphs drawn in place of an icon when the terminal is too small for a thumbnail.
const (
	GlyphBack     = "←"
	GlyphSelected = "▸"
	GlyphCrumb    = "›"
	GlyphAction   = "✚"
	GlyphClose    = "✕"
)
