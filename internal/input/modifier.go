package input

import "strings"

// Modifier represents held modifier keys as a bitset.
type Modifier uint8

const (
	// ModNone indicates no modifier is held.
	ModNone Modifier = 0
	// ModShift indicates either Shift key is held.
	ModShift Modifier = 1 << 0
	// ModControl indicates either Control key is held.
	ModControl Modifier = 1 << 1
	// ModAlt indicates either Alt key is held.
	ModAlt Modifier = 1 << 2
	// ModSuper indicates either Super key is held.
	ModSuper Modifier = 1 << 3
)

// modifierKeys pairs each modifier bit with the keys that set it.
var modifierKeys = [...]struct {
	mod         Modifier
	left, right Identifier
}{
	{ModShift, KeyLeftShift, KeyRightShift},
	{ModControl, KeyLeftControl, KeyRightControl},
	{ModAlt, KeyLeftAlt, KeyRightAlt},
	{ModSuper, KeyLeftSuper, KeyRightSuper},
}

var modifierByName = map[string]Modifier{
	"SHIFT":   ModShift,
	"CONTROL": ModControl,
	"CTRL":    ModControl,
	"ALT":     ModAlt,
	"SUPER":   ModSuper,
}

// Matches reports whether the live mask holds every bit of required.
// Extra held modifiers do not prevent a match; a zero requirement always matches.
func (m Modifier) Matches(required Modifier) bool {
	return m&required == required
}

// String renders the mask as SHIFT|CONTROL, or "none".
func (m Modifier) String() string {
	if m == ModNone {
		return "none"
	}
	parts := make([]string, 0, len(modifierKeys))
	for _, mk := range modifierKeys {
		if m&mk.mod != 0 {
			parts = append(parts, modifierName(mk.mod))
		}
	}
	return strings.Join(parts, "|")
}

func modifierName(m Modifier) string {
	switch m {
	case ModShift:
		return "SHIFT"
	case ModControl:
		return "CONTROL"
	case ModAlt:
		return "ALT"
	case ModSuper:
		return "SUPER"
	default:
		return ""
	}
}

// LookupModifier resolves a modifier name to its bit. Besides SHIFT, CONTROL,
// ALT and SUPER it accepts the left/right modifier key names
// (e.g. KEY_LEFT_SHIFT), which documents written for older builds used.
func LookupModifier(name string) (Modifier, bool) {
	key := normalizeName(name)
	if mod, ok := modifierByName[key]; ok {
		return mod, true
	}
	id, ok := identifierByName[key]
	if !ok {
		return ModNone, false
	}
	for _, mk := range modifierKeys {
		if id == mk.left || id == mk.right {
			return mk.mod, true
		}
	}
	return ModNone, false
}

// liveModifiers samples the window's key state into a modifier mask.
func liveModifiers(w Window) Modifier {
	var mods Modifier
	for _, mk := range modifierKeys {
		if w.KeyDown(mk.left) || w.KeyDown(mk.right) {
			mods |= mk.mod
		}
	}
	return mods
}
