package input

import "fmt"

// Identifier names the source of an event (which key, which button, or one of
// the synthetic scroll/move sources), independent of what happened to it.
//
// Hardware codes follow the GLFW numbering used by the windowing layer:
// pointer buttons occupy 0..7 and keys occupy 32..KeyLast.
type Identifier uint16

// Pointer buttons.
const (
	MouseButtonLeft   Identifier = 0
	MouseButtonRight  Identifier = 1
	MouseButtonMiddle Identifier = 2
	MouseButton4      Identifier = 3
	MouseButton5      Identifier = 4
	MouseButton6      Identifier = 5
	MouseButton7      Identifier = 6
	MouseButton8      Identifier = 7
	MouseButtonLast              = MouseButton8
)

// Printable keys.
const (
	KeySpace        Identifier = 32
	KeyApostrophe   Identifier = 39
	KeyComma        Identifier = 44
	KeyMinus        Identifier = 45
	KeyPeriod       Identifier = 46
	KeySlash        Identifier = 47
	Key0            Identifier = 48
	Key9            Identifier = 57
	KeySemicolon    Identifier = 59
	KeyEqual        Identifier = 61
	KeyA            Identifier = 65
	KeyZ            Identifier = 90
	KeyLeftBracket  Identifier = 91
	KeyBackslash    Identifier = 92
	KeyRightBracket Identifier = 93
	KeyGraveAccent  Identifier = 96
)

// Function, navigation and keypad keys.
const (
	KeyEscape      Identifier = 256
	KeyEnter       Identifier = 257
	KeyTab         Identifier = 258
	KeyBackspace   Identifier = 259
	KeyInsert      Identifier = 260
	KeyDelete      Identifier = 261
	KeyRight       Identifier = 262
	KeyLeft        Identifier = 263
	KeyDown        Identifier = 264
	KeyUp          Identifier = 265
	KeyPageUp      Identifier = 266
	KeyPageDown    Identifier = 267
	KeyHome        Identifier = 268
	KeyEnd         Identifier = 269
	KeyCapsLock    Identifier = 280
	KeyScrollLock  Identifier = 281
	KeyNumLock     Identifier = 282
	KeyPrintScreen Identifier = 283
	KeyPause       Identifier = 284
	KeyF1          Identifier = 290
	KeyF25         Identifier = 314
	KeyKP0         Identifier = 320
	KeyKP9         Identifier = 329
	KeyKPDecimal   Identifier = 330
	KeyKPDivide    Identifier = 331
	KeyKPMultiply  Identifier = 332
	KeyKPSubtract  Identifier = 333
	KeyKPAdd       Identifier = 334
	KeyKPEnter     Identifier = 335
	KeyKPEqual     Identifier = 336
)

// Modifier keys.
const (
	KeyLeftShift    Identifier = 340
	KeyLeftControl  Identifier = 341
	KeyLeftAlt      Identifier = 342
	KeyLeftSuper    Identifier = 343
	KeyRightShift   Identifier = 344
	KeyRightControl Identifier = 345
	KeyRightAlt     Identifier = 346
	KeyRightSuper   Identifier = 347
	KeyMenu         Identifier = 348

	// KeyLast is the highest hardware code the windowing layer reports.
	KeyLast = KeyMenu
)

// Synthetic identifiers for event kinds without a discrete code. They sit
// just above KeyLast so they can never collide with a hardware code.
const (
	IdentifierScroll Identifier = KeyLast + 1
	IdentifierMove   Identifier = KeyLast + 2
)

// IsSynthetic reports whether id is one of the reserved non-hardware identifiers.
func (id Identifier) IsSynthetic() bool {
	return id > KeyLast
}

// String returns the canonical input name, or UNKNOWN(n) for unnamed codes.
func (id Identifier) String() string {
	if name, ok := nameByIdentifier[id]; ok {
		return name
	}
	return fmt.Sprintf("UNKNOWN(%d)", uint16(id))
}

// hardwareIdentifier converts a raw windowing-layer code into an Identifier.
// Negative codes (the windowing layer's "unknown key") and codes above
// KeyLast are rejected.
func hardwareIdentifier(code int) (Identifier, bool) {
	if code < 0 || code > int(KeyLast) {
		return 0, false
	}
	return Identifier(code), true
}
