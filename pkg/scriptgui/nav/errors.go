package nav

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrKeyNotFound is matched by every *KeyNotFoundError.
	ErrKeyNotFound = errors.New("navigation key not found")

	// ErrDuplicateKey indicates two distinct screens in the registry share a navigation key.
	ErrDuplicateKey = errors.New("duplicate navigation key")

	// ErrEmptyKey indicates a screen in the registry has no navigation key.
	ErrEmptyKey = errors.New("empty navigation key")
)

// KeyNotFoundError is returned by NavigateByKey when the key is not in the registry.
// It is a soft failure: the controller state is left untouched.
type KeyNotFoundError struct {
	Key         string
	ValidKeys   []string // every registered key, sorted
	Suggestions []string // closest registered keys, best first
}

func (e *KeyNotFoundError) Error() string {
	msg := fmt.Sprintf("nav: screen key [%s] not found", e.Key)
	if len(e.Suggestions) > 0 {
		msg += fmt.Sprintf(" (did you mean %s?)", strings.Join(e.Suggestions, ", "))
	}
	return msg
}

func (e *KeyNotFoundError) Is(target error) bool {
	return target == ErrKeyNotFound
}

// IsKeyNotFound reports whether err is, or wraps, a missing-key error.
func IsKeyNotFound(err error) bool {
	return errors.Is(err, ErrKeyNotFound)
}
