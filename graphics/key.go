package graphics

import (
	"fmt"
	"strings"
)

// Key identifies a keyboard key. Values are the GLFW key codes.
type Key int

const (
	KeyUnknown Key = -1
	KeySpace   Key = 32
	KeyQ       Key = 81
	KeyEscape  Key = 256
	KeyEnter   Key = 257
)

var keyNames = map[string]Key{
	"space":  KeySpace,
	"q":      KeyQ,
	"escape": KeyEscape,
	"esc":    KeyEscape,
	"enter":  KeyEnter,
}

// ParseKey maps a case-insensitive key name to a Key.
func ParseKey(name string) (Key, error) {
	if k, ok := keyNames[strings.ToLower(strings.TrimSpace(name))]; ok {
		return k, nil
	}
	return KeyUnknown, fmt.Errorf("unknown key %q", name)
}

func (k Key) String() string {
	switch k {
	case KeySpace:
		return "space"
	case KeyQ:
		return "q"
	case KeyEscape:
		return "escape"
	case KeyEnter:
		return "enter"
	default:
		return fmt.Sprintf("key(%d)", int(k))
	}
}
