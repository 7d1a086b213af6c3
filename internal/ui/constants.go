package ui

// UI-wide constants to avoid magic numbers/strings scattered across the codebase.

// Icons (emojis/symbols)
const (
	IconSettings = "⚙"
)

// Text fragments
const (
	DashPlaceholder   = "—"
	StatusReadyFormat = "%d image(s) ready"
)

// Layout sizing (gallery grid)
const (
	CellWidth  float32 = 200
	CellHeight float32 = 200

	PreviewWidth  float32 = 512
	PreviewHeight float32 = 512
)

// Dialog sizing
const (
	SettingsDialogWidth  float32 = 460
	SettingsDialogHeight float32 = 520
)
