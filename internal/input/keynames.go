package input

import (
	"fmt"
	"sort"
	"strings"
)

const (
	// NoopCallback marks a binding entry as explicitly unbound.
	NoopCallback = "empty"

	// legacy prefixes accepted in front of canonical names
	prefixGLFW  = "GLFW_"
	prefixLunar = "LUNAR_"
)

// identifierByName is the static name table. It is a bijection: every
// identifier appears under exactly one canonical name.
var identifierByName = buildNameTable()

var nameByIdentifier = invertNameTable(identifierByName)

func buildNameTable() map[string]Identifier {
	names := map[string]Identifier{
		"KEY_SPACE":         KeySpace,
		"KEY_APOSTROPHE":    KeyApostrophe,
		"KEY_COMMA":         KeyComma,
		"KEY_MINUS":         KeyMinus,
		"KEY_PERIOD":        KeyPeriod,
		"KEY_SLASH":         KeySlash,
		"KEY_SEMICOLON":     KeySemicolon,
		"KEY_EQUAL":         KeyEqual,
		"KEY_LEFT_BRACKET":  KeyLeftBracket,
		"KEY_BACKSLASH":     KeyBackslash,
		"KEY_RIGHT_BRACKET": KeyRightBracket,
		"KEY_GRAVE_ACCENT":  KeyGraveAccent,

		"KEY_ESCAPE":       KeyEscape,
		"KEY_ENTER":        KeyEnter,
		"KEY_TAB":          KeyTab,
		"KEY_BACKSPACE":    KeyBackspace,
		"KEY_INSERT":       KeyInsert,
		"KEY_DELETE":       KeyDelete,
		"KEY_RIGHT":        KeyRight,
		"KEY_LEFT":         KeyLeft,
		"KEY_DOWN":         KeyDown,
		"KEY_UP":           KeyUp,
		"KEY_PAGE_UP":      KeyPageUp,
		"KEY_PAGE_DOWN":    KeyPageDown,
		"KEY_HOME":         KeyHome,
		"KEY_END":          KeyEnd,
		"KEY_CAPS_LOCK":    KeyCapsLock,
		"KEY_SCROLL_LOCK":  KeyScrollLock,
		"KEY_NUM_LOCK":     KeyNumLock,
		"KEY_PRINT_SCREEN": KeyPrintScreen,
		"KEY_PAUSE":        KeyPause,

		"KEY_KP_DECIMAL":  KeyKPDecimal,
		"KEY_KP_DIVIDE":   KeyKPDivide,
		"KEY_KP_MULTIPLY": KeyKPMultiply,
		"KEY_KP_SUBTRACT": KeyKPSubtract,
		"KEY_KP_ADD":      KeyKPAdd,
		"KEY_KP_ENTER":    KeyKPEnter,
		"KEY_KP_EQUAL":    KeyKPEqual,

		"KEY_LEFT_SHIFT":    KeyLeftShift,
		"KEY_LEFT_CONTROL":  KeyLeftControl,
		"KEY_LEFT_ALT":      KeyLeftAlt,
		"KEY_LEFT_SUPER":    KeyLeftSuper,
		"KEY_RIGHT_SHIFT":   KeyRightShift,
		"KEY_RIGHT_CONTROL": KeyRightControl,
		"KEY_RIGHT_ALT":     KeyRightAlt,
		"KEY_RIGHT_SUPER":   KeyRightSuper,
		"KEY_MENU":          KeyMenu,

		"MOUSE_BUTTON_LEFT":   MouseButtonLeft,
		"MOUSE_BUTTON_RIGHT":  MouseButtonRight,
		"MOUSE_BUTTON_MIDDLE": MouseButtonMiddle,

		"MOUSE_SCROLL": IdentifierScroll,
		"MOUSE_MOVE":   IdentifierMove,
	}

	for id := Key0; id <= Key9; id++ {
		names[fmt.Sprintf("KEY_%c", rune('0'+id-Key0))] = id
	}
	for id := KeyA; id <= KeyZ; id++ {
		names[fmt.Sprintf("KEY_%c", rune('A'+id-KeyA))] = id
	}
	for id := KeyF1; id <= KeyF25; id++ {
		names[fmt.Sprintf("KEY_F%d", id-KeyF1+1)] = id
	}
	for id := KeyKP0; id <= KeyKP9; id++ {
		names[fmt.Sprintf("KEY_KP_%d", id-KeyKP0)] = id
	}
	// Buttons 4..8 keep their ordinal names; 1..3 are left/right/middle.
	for id := MouseButton4; id <= MouseButton8; id++ {
		names[fmt.Sprintf("MOUSE_BUTTON_%d", id+1)] = id
	}

	return names
}

func invertNameTable(names map[string]Identifier) map[Identifier]string {
	inverted := make(map[Identifier]string, len(names))
	for name, id := range names {
		if prev, dup := inverted[id]; dup {
			panic(fmt.Sprintf("input: identifier %d named twice (%s, %s)", id, prev, name))
		}
		inverted[id] = name
	}
	return inverted
}

// normalizeName upper-cases a configured name and strips a legacy prefix.
func normalizeName(name string) string {
	key := strings.ToUpper(strings.TrimSpace(name))
	key = strings.TrimPrefix(key, prefixGLFW)
	key = strings.TrimPrefix(key, prefixLunar)
	return key
}

// LookupInput resolves a symbolic input name to its identifier. Names are
// case-insensitive and may carry a GLFW_ or LUNAR_ prefix. It never fails
// loudly; callers decide how to report a miss.
func LookupInput(name string) (Identifier, bool) {
	id, ok := identifierByName[normalizeName(name)]
	return id, ok
}

// InputName describes one entry of the static name table.
type InputName struct {
	Name string
	ID   Identifier
}

// InputNames returns every canonical input name ordered by identifier.
func InputNames() []InputName {
	out := make([]InputName, 0, len(identifierByName))
	for name, id := range identifierByName {
		out = append(out, InputName{Name: name, ID: id})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func canonicalNames() []string {
	names := make([]string, 0, len(identifierByName))
	for name := range identifierByName {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
