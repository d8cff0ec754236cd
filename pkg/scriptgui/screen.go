package scriptgui

// RenderFunc draws the body of a frame. It receives the scope explicitly
// rather than reaching for any global GUI state.
type RenderFunc func(ctx FrameContext) string

// FrameContext is passed to every RenderFunc.
type FrameContext struct {
	Scope  *Scope
	Screen *Screen
	Width  int
	Height int
}

// Button is an action a frame offers. Key is the terminal key that presses it.
type Button struct {
	Label   string
	Key     string
	OnPress func(scope *Scope)
}

// Frame is one region of a screen: its body and the buttons shown under it.
type Frame struct {
	Render  RenderFunc
	Buttons []Button
}

// Body renders the frame, or returns "" if it has no RenderFunc.
func (f *Frame) Body(ctx FrameContext) string {
	if f == nil || f.Render == nil {
		return ""
	}
	return f.Render(ctx)
}

// Screen is a navigable destination of a GUI.
//
// Primary screens are top-level sections listed in the drawer; non-primary
// screens are detail pages nested under another screen. Screens compare by
// pointer identity.
type Screen struct {
	title         string
	navigationKey string
	primary       bool
	icon          string
	children      []*Screen

	main           *Frame
	left           *Frame
	right          *Frame
	floatingAction *Button

	leftFrameVisible  bool
	rightFrameVisible bool
	leftFramePinned   bool

	onGuiClosed func()
}

func (s *Screen) Title() string { return s.title }

// NavigationKey defaults to the title when no explicit key was given.
func (s *Screen) NavigationKey() string {
	if s.navigationKey == "" {
		return s.title
	}
	return s.navigationKey
}

func (s *Screen) IsPrimary() bool { return s.primary }

func (s *Screen) Children() []*Screen { return s.children }

func (s *Screen) Icon() string { return s.icon }

func (s *Screen) String() string { return s.title }

func (s *Screen) MainFrame() *Frame { return s.main }
func (s *Screen) LeftFrame() *Frame { return s.left }
func (s *Screen) RightFrame() *Frame { return s.right }

// FloatingAction returns the screen's floating action button, or nil.
func (s *Screen) FloatingAction() *Button { return s.floatingAction }

// IsLeftFrameVisible is always true for a pinned left frame.
func (s *Screen) IsLeftFrameVisible() bool {
	return s.left != nil && (s.leftFramePinned || s.leftFrameVisible)
}

func (s *Screen) IsLeftFramePinned() bool { return s.left != nil && s.leftFramePinned }
func (s *Screen) IsRightFrameVisible() bool { return s.right != nil && s.rightFrameVisible }

func (s *Screen) ShowLeftFrame() { s.leftFrameVisible = true }
func (s *Screen) HideLeftFrame() { s.leftFrameVisible = false }
func (s *Screen) ShowRightFrame() { s.rightFrameVisible = true }
func (s *Screen) HideRightFrame() { s.rightFrameVisible = false }

func (s *Screen) ToggleLeftFrame() {
	s.leftFrameVisible = !s.leftFrameVisible
}

func (s *Screen) ToggleRightFrame() {
	s.rightFrameVisible = !s.rightFrameVisible
}

// OnGuiClosed replaces the hook run when the GUI window closes.
func (s *Screen) OnGuiClosed(fn func()) {
	s.onGuiClosed = fn
}

// Buttons returns the buttons of every frame currently on screen,
// floating action last.
func (s *Screen) Buttons() []Button {
	var buttons []Button
	if s.IsLeftFrameVisible() {
		buttons = append(buttons, s.left.Buttons...)
	}
	if s.main != nil {
		buttons = append(buttons, s.main.Buttons...)
	}
	if s.IsRightFrameVisible() {
		buttons = append(buttons, s.right.Buttons...)
	}
	if s.floatingAction != nil {
		buttons = append(buttons, *s.floatingAction)
	}
	return buttons
}

func (s *Screen) closed() {
	if s.onGuiClosed != nil {
		s.onGuiClosed()
	}
}
