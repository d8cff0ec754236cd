package scriptgui

import (
	"github.com/highorder/scriptgui/pkg/scriptgui/constants"
	"github.com/highorder/scriptgui/pkg/scriptgui/internal"
)

// Gui is the built description of a script's control panel: its title,
// icon, and primary screens. The built-in Home screen always comes first
// and the built-in Settings screen always comes last.
type Gui struct {
	Title string
	Icon  string

	screens []*Screen
	home    *Screen

	onLoad  func(scope *Scope)
	onClose func()
}

// Screens returns the primary screens in drawer order.
func (g *Gui) Screens() []*Screen {
	out := make([]*Screen, len(g.screens))
	copy(out, g.screens)
	return out
}

// Home returns the built-in start screen.
func (g *Gui) Home() *Screen {
	return g.home
}

// Builder assembles a Gui.
//
//	gui := scriptgui.New("My Script", constants.IconLogo)
//	gui.Screen("Page One", constants.IconOne, func(s *scriptgui.ScreenBuilder) {
//	    s.Main(render)
//	    s.Screen("Settings", "Page One Settings", func(s *scriptgui.ScreenBuilder) { ... })
//	})
//	built := gui.Build()
type Builder struct {
	title   string
	icon    string
	screens []*Screen
	onLoad  func(scope *Scope)
	onClose func()
}

// New starts a Builder for a GUI with the given window title and icon name.
func New(title, icon string) *Builder {
	if icon == "" {
		icon = constants.IconLogo
	}
	return &Builder{title: title, icon: icon}
}

// OnLoad registers a hook run once when the GUI opens.
func (b *Builder) OnLoad(fn func(scope *Scope)) *Builder {
	b.onLoad = fn
	return b
}

// OnClose registers a hook run once when the GUI closes, after every screen's own hook.
func (b *Builder) OnClose(fn func()) *Builder {
	b.onClose = fn
	return b
}

// Screen adds a primary screen whose navigation key is its title.
func (b *Builder) Screen(title, icon string, init func(s *ScreenBuilder)) *Screen {
	return b.ScreenWithKey(title, icon, title, init)
}

// ScreenWithKey adds a primary screen with an explicit navigation key.
func (b *Builder) ScreenWithKey(title, icon, key string, init func(s *ScreenBuilder)) *Screen {
	return b.AddScreen(NewScreen(title, icon, true, key, init))
}

// AddScreen adds an already built screen.
func (b *Builder) AddScreen(screen *Screen) *Screen {
	b.screens = append(b.screens, screen)
	return screen
}

// Build returns the Gui. The Builder may be reused afterwards.
func (b *Builder) Build() *Gui {
	home := homeScreen()
	screens := make([]*Screen, 0, len(b.screens)+2)
	screens = append(screens, home)
	screens = append(screens, b.screens...)
	screens = append(screens, settingsScreen())

	return &Gui{
		Title:   b.title,
		Icon:    b.icon,
		screens: screens,
		home:    home,
		onLoad:  b.onLoad,
		onClose: b.onClose,
	}
}

// ScreenBuilder configures the frames and nested screens of one screen.
type ScreenBuilder struct {
	screen *Screen
}

// NewScreen builds a standalone screen. An empty key defaults to the title.
func NewScreen(title, icon string, primary bool, key string, init func(s *ScreenBuilder)) *Screen {
	sb := &ScreenBuilder{
		screen: &Screen{
			title:         title,
			navigationKey: key,
			primary:       primary,
			icon:          icon,
		},
	}
	if init != nil {
		init(sb)
	}
	return sb.screen
}

// Main sets the main frame.
func (sb *ScreenBuilder) Main(render RenderFunc, buttons ...Button) {
	sb.screen.main = &Frame{Render: render, Buttons: buttons}
}

// Left sets the left side frame. It starts hidden.
func (sb *ScreenBuilder) Left(render RenderFunc, buttons ...Button) {
	sb.screen.left = &Frame{Render: render, Buttons: buttons}
}

// Right sets the right side frame. It starts hidden.
func (sb *ScreenBuilder) Right(render RenderFunc, buttons ...Button) {
	sb.screen.right = &Frame{Render: render, Buttons: buttons}
}

// PinLeftFrame keeps the left frame on screen from the first render. Hide
// and toggle calls do not affect a pinned frame.
func (sb *ScreenBuilder) PinLeftFrame() {
	sb.screen.leftFramePinned = true
}

func (sb *ScreenBuilder) FloatingAction(button Button) {
	sb.screen.floatingAction = &button
}

func (sb *ScreenBuilder) OnGuiClosed(fn func()) {
	sb.screen.onGuiClosed = fn
}

// Screen nests a detail (non-primary) screen under this one. It inherits the
// parent's icon and is reachable by key but not listed in the drawer.
func (sb *ScreenBuilder) Screen(title, key string, init func(s *ScreenBuilder)) *Screen {
	child := NewScreen(title, sb.screen.icon, false, key, init)
	sb.screen.children = append(sb.screen.children, child)
	return child
}

func homeScreen() *Screen {
	return NewScreen(internal.T("screen.home"), constants.IconHome, true, constants.HomeScreenKey, func(s *ScreenBuilder) {
		s.Main(func(ctx FrameContext) string {
			return internal.Localize("home.welcome", map[string]any{"Title": ctx.Scope.Gui().Title})
		})
	})
}

func settingsScreen() *Screen {
	return NewScreen(internal.T("screen.settings"), constants.IconSettings, true, constants.SettingsScreenKey, func(s *ScreenBuilder) {
		s.Main(func(ctx FrameContext) string {
			return internal.Localize("settings.summary", map[string]any{
				"Session": ctx.Scope.ID(),
				"Screens": len(ctx.Scope.Navigation().Keys()),
				"Locale":  internal.Locale().String(),
			})
		})
	})
}
