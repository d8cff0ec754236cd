package nav

// Stack holds the screens visited since the last primary screen,
// oldest first. The zero value is an empty stack ready to use.
type Stack[S comparable] struct {
	entries []S
}

// NewStack creates a new empty navigation stack.
func NewStack[S comparable]() *Stack[S] {
	return &Stack[S]{
		entries: make([]S, 0),
	}
}

// Push appends a screen to the top of the stack.
// Called when navigating forward to a detail screen.
func (s *Stack[S]) Push(screen S) {
	s.entries = append(s.entries, screen)
}

// Pop removes and returns the top screen.
// The second return value is false if the stack was empty.
func (s *Stack[S]) Pop() (S, bool) {
	var zero S
	if len(s.entries) == 0 {
		return zero, false
	}
	top := s.entries[len(s.entries)-1]
	s.entries[len(s.entries)-1] = zero
	s.entries = s.entries[:len(s.entries)-1]
	return top, true
}

// Peek returns the top screen without removing it.
func (s *Stack[S]) Peek() (S, bool) {
	if len(s.entries) == 0 {
		var zero S
		return zero, false
	}
	return s.entries[len(s.entries)-1], true
}

// IndexOf returns the position of the first occurrence of screen, or -1.
func (s *Stack[S]) IndexOf(screen S) int {
	for i, entry := range s.entries {
		if entry == screen {
			return i
		}
	}
	return -1
}

// Contains reports whether screen is anywhere on the stack.
func (s *Stack[S]) Contains(screen S) bool {
	return s.IndexOf(screen) >= 0
}

// TruncateAt drops the entry at index and everything above it,
// keeping only the prefix strictly before index.
// Out of range indexes leave the stack untouched.
func (s *Stack[S]) TruncateAt(index int) {
	if index < 0 || index >= len(s.entries) {
		return
	}
	var zero S
	for i := index; i < len(s.entries); i++ {
		s.entries[i] = zero
	}
	s.entries = s.entries[:index]
}

// IsEmpty returns true if the stack has no entries.
func (s *Stack[S]) IsEmpty() bool {
	return len(s.entries) == 0
}

// Len returns the number of entries in the stack.
func (s *Stack[S]) Len() int {
	return len(s.entries)
}

// Clear removes all entries from the stack.
func (s *Stack[S]) Clear() {
	clear(s.entries)
	s.entries = s.entries[:0]
}

// Entries returns a copy of the stack, oldest first.
func (s *Stack[S]) Entries() []S {
	out := make([]S, len(s.entries))
	copy(out, s.entries)
	return out
}
