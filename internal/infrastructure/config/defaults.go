package config

// DefaultDocument returns the bindings shipped with the camera demo.
func DefaultDocument() *Document {
	return &Document{
		Bindings: []BindingEntry{
			{Input: "KEY_ESCAPE", Callback: "window_close"},
			{Input: "KEY_F11", Callback: "window_fullscreen"},
			{Input: "KEY_F10", Callback: "window_windowed", Modifiers: []string{"SHIFT"}},
			{Input: "KEY_W", Callback: "camera_move_forward"},
			{Input: "KEY_S", Callback: "camera_move_backward"},
			{Input: "KEY_A", Callback: "camera_move_left"},
			{Input: "KEY_D", Callback: "camera_move_right"},
			{Input: "KEY_SPACE", Callback: "camera_move_up"},
			{Input: "KEY_C", Callback: "camera_move_down"},
			{Input: "MOUSE_MOVE", Callback: "camera_rotate"},
			{Input: "MOUSE_SCROLL", Callback: "camera_zoom"},
			{Input: "MOUSE_BUTTON_MIDDLE", Callback: "camera_reset_zoom"},
			{Input: "KEY_F12", Callback: "debug", Modifiers: []string{"CONTROL"}},
			{Input: "KEY_TAB", Callback: "empty"},
		},
		Settings: Settings{
			ResetPointerOnEnter: Bool(true),
		},
	}
}
