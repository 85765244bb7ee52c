package window

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/bnema/lunar/internal/input"
)

// unknownKey is reported for ebiten keys with no input identifier.
const unknownKey = -1

var letterKeys = [...]ebiten.Key{
	ebiten.KeyA, ebiten.KeyB, ebiten.KeyC, ebiten.KeyD, ebiten.KeyE, ebiten.KeyF,
	ebiten.KeyG, ebiten.KeyH, ebiten.KeyI, ebiten.KeyJ, ebiten.KeyK, ebiten.KeyL,
	ebiten.KeyM, ebiten.KeyN, ebiten.KeyO, ebiten.KeyP, ebiten.KeyQ, ebiten.KeyR,
	ebiten.KeyS, ebiten.KeyT, ebiten.KeyU, ebiten.KeyV, ebiten.KeyW, ebiten.KeyX,
	ebiten.KeyY, ebiten.KeyZ,
}

var digitKeys = [...]ebiten.Key{
	ebiten.KeyDigit0, ebiten.KeyDigit1, ebiten.KeyDigit2, ebiten.KeyDigit3, ebiten.KeyDigit4,
	ebiten.KeyDigit5, ebiten.KeyDigit6, ebiten.KeyDigit7, ebiten.KeyDigit8, ebiten.KeyDigit9,
}

var numpadKeys = [...]ebiten.Key{
	ebiten.KeyNumpad0, ebiten.KeyNumpad1, ebiten.KeyNumpad2, ebiten.KeyNumpad3, ebiten.KeyNumpad4,
	ebiten.KeyNumpad5, ebiten.KeyNumpad6, ebiten.KeyNumpad7, ebiten.KeyNumpad8, ebiten.KeyNumpad9,
}

var functionKeys = [...]ebiten.Key{
	ebiten.KeyF1, ebiten.KeyF2, ebiten.KeyF3, ebiten.KeyF4, ebiten.KeyF5, ebiten.KeyF6,
	ebiten.KeyF7, ebiten.KeyF8, ebiten.KeyF9, ebiten.KeyF10, ebiten.KeyF11, ebiten.KeyF12,
	ebiten.KeyF13, ebiten.KeyF14, ebiten.KeyF15, ebiten.KeyF16, ebiten.KeyF17, ebiten.KeyF18,
	ebiten.KeyF19, ebiten.KeyF20, ebiten.KeyF21, ebiten.KeyF22, ebiten.KeyF23, ebiten.KeyF24,
}

var namedKeys = map[ebiten.Key]input.Identifier{
	ebiten.KeySpace:          input.KeySpace,
	ebiten.KeyQuote:          input.KeyApostrophe,
	ebiten.KeyComma:          input.KeyComma,
	ebiten.KeyMinus:          input.KeyMinus,
	ebiten.KeyPeriod:         input.KeyPeriod,
	ebiten.KeySlash:          input.KeySlash,
	ebiten.KeySemicolon:      input.KeySemicolon,
	ebiten.KeyEqual:          input.KeyEqual,
	ebiten.KeyBracketLeft:    input.KeyLeftBracket,
	ebiten.KeyBackslash:      input.KeyBackslash,
	ebiten.KeyBracketRight:   input.KeyRightBracket,
	ebiten.KeyBackquote:      input.KeyGraveAccent,
	ebiten.KeyEscape:         input.KeyEscape,
	ebiten.KeyEnter:          input.KeyEnter,
	ebiten.KeyTab:            input.KeyTab,
	ebiten.KeyBackspace:      input.KeyBackspace,
	ebiten.KeyInsert:         input.KeyInsert,
	ebiten.KeyDelete:         input.KeyDelete,
	ebiten.KeyArrowRight:     input.KeyRight,
	ebiten.KeyArrowLeft:      input.KeyLeft,
	ebiten.KeyArrowDown:      input.KeyDown,
	ebiten.KeyArrowUp:        input.KeyUp,
	ebiten.KeyPageUp:         input.KeyPageUp,
	ebiten.KeyPageDown:       input.KeyPageDown,
	ebiten.KeyHome:           input.KeyHome,
	ebiten.KeyEnd:            input.KeyEnd,
	ebiten.KeyCapsLock:       input.KeyCapsLock,
	ebiten.KeyScrollLock:     input.KeyScrollLock,
	ebiten.KeyNumLock:        input.KeyNumLock,
	ebiten.KeyPrintScreen:    input.KeyPrintScreen,
	ebiten.KeyPause:          input.KeyPause,
	ebiten.KeyNumpadDecimal:  input.KeyKPDecimal,
	ebiten.KeyNumpadDivide:   input.KeyKPDivide,
	ebiten.KeyNumpadMultiply: input.KeyKPMultiply,
	ebiten.KeyNumpadSubtract: input.KeyKPSubtract,
	ebiten.KeyNumpadAdd:      input.KeyKPAdd,
	ebiten.KeyNumpadEnter:    input.KeyKPEnter,
	ebiten.KeyNumpadEqual:    input.KeyKPEqual,
	ebiten.KeyShiftLeft:      input.KeyLeftShift,
	ebiten.KeyControlLeft:    input.KeyLeftControl,
	ebiten.KeyAltLeft:        input.KeyLeftAlt,
	ebiten.KeyMetaLeft:       input.KeyLeftSuper,
	ebiten.KeyShiftRight:     input.KeyRightShift,
	ebiten.KeyControlRight:   input.KeyRightControl,
	ebiten.KeyAltRight:       input.KeyRightAlt,
	ebiten.KeyMetaRight:      input.KeyRightSuper,
	ebiten.KeyContextMenu:    input.KeyMenu,
}

var (
	identifierByKey = buildKeyMap()
	keyByIdentifier = invert(identifierByKey)
)

func buildKeyMap() map[ebiten.Key]input.Identifier {
	m := make(map[ebiten.Key]input.Identifier, len(namedKeys)+len(letterKeys)+len(digitKeys)+len(numpadKeys)+len(functionKeys))
	for k, id := range namedKeys {
		m[k] = id
	}
	for i, k := range letterKeys {
		m[k] = input.KeyA + input.Identifier(i)
	}
	for i, k := range digitKeys {
		m[k] = input.Key0 + input.Identifier(i)
	}
	for i, k := range numpadKeys {
		m[k] = input.KeyKP0 + input.Identifier(i)
	}
	for i, k := range functionKeys {
		m[k] = input.KeyF1 + input.Identifier(i)
	}
	return m
}

// buttonMap pairs ebiten's pointer buttons with input identifiers.
var buttonMap = [...]struct {
	button ebiten.MouseButton
	id     input.Identifier
}{
	{ebiten.MouseButtonLeft, input.MouseButtonLeft},
	{ebiten.MouseButtonRight, input.MouseButtonRight},
	{ebiten.MouseButtonMiddle, input.MouseButtonMiddle},
	{ebiten.MouseButton3, input.MouseButton4},
	{ebiten.MouseButton4, input.MouseButton5},
}

func invert[K, V comparable](m map[K]V) map[V]K {
	out := make(map[V]K, len(m))
	for k, v := range m {
		out[v] = k
	}
	return out
}

// keyCode returns the raw code reported to the sink for k.
func keyCode(k ebiten.Key) int {
	if id, ok := identifierByKey[k]; ok {
		return int(id)
	}
	return unknownKey
}

func buttonKey(id input.Identifier) (ebiten.MouseButton, bool) {
	for _, b := range buttonMap {
		if b.id == id {
			return b.button, true
		}
	}
	return 0, false
}
