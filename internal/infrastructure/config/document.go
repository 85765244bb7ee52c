// Package config loads, writes and watches input binding documents.
package config

// Document is a bindings document as found on disk.
type Document struct {
	Bindings []BindingEntry `mapstructure:"keyboard_and_mouse_bindings" json:"keyboard_and_mouse_bindings" yaml:"keyboard_and_mouse_bindings" toml:"keyboard_and_mouse_bindings" jsonschema:"description=Input bindings resolved in order; later entries for the same input replace earlier ones"`
	Settings Settings       `mapstructure:"keyboard_and_mouse_settings" json:"keyboard_and_mouse_settings" yaml:"keyboard_and_mouse_settings" toml:"keyboard_and_mouse_settings" jsonschema:"description=Global input settings"`
}

// BindingEntry binds one input to one registered callback.
type BindingEntry struct {
	// Input is a key, pointer button, MOUSE_SCROLL or MOUSE_MOVE name.
	Input string `mapstructure:"key" json:"key" yaml:"key" toml:"key" jsonschema:"required,description=Input name such as KEY_W or MOUSE_BUTTON_LEFT or MOUSE_SCROLL or MOUSE_MOVE"`
	// Callback is a registered action name, or "empty" to leave the input unbound.
	Callback string `mapstructure:"callback" json:"callback" yaml:"callback" toml:"callback" jsonschema:"required,description=Registered callback name or empty"`
	// Modifiers must all be held for the binding to fire.
	Modifiers []string `mapstructure:"mod" json:"mod,omitempty" yaml:"mod,omitempty" toml:"mod,omitempty" jsonschema:"description=Required modifiers: SHIFT CONTROL ALT SUPER"`
}

// Settings holds the global input settings section.
type Settings struct {
	// ResetPointerOnEnter re-samples the pointer baseline when the cursor
	// re-enters the window, so the first move after re-entry has no jump.
	// Nil when the document leaves it unset.
	ResetPointerOnEnter *bool `mapstructure:"reset_pointer_position_on_window_enter" json:"reset_pointer_position_on_window_enter,omitempty" yaml:"reset_pointer_position_on_window_enter,omitempty" toml:"reset_pointer_position_on_window_enter,omitempty" jsonschema:"description=Re-sample the cursor position when it enters the window"`
}

// Key name used by documents written for the original engine.
const legacyKeyResetPointerOnEnter = "keyboard_and_mouse_settings.reset_mouse_position_upon_enter_window"

// Bool returns a pointer to v, for optional settings.
func Bool(v bool) *bool {
	return &v
}
