package styles

// Nerd Font icons (requires a Nerd Font to display correctly)
const (
	IconCheck   = "\uf00c" // check
	IconX       = "\uf00d" // x
	IconWarning = "\uf071" // warning
	IconInfo    = "\uf05a" // info
	IconArrow   = "\uf061" // arrow right

	// Inputs
	IconKeyboard = "\uf11c" // keyboard
	IconPointer  = "\uf245" // mouse-pointer

	// Files
	IconFile = "\uf15b" // file
	IconCode = "\uf121" // code
)
