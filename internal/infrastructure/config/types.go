package config

// GameSettings is the root config for game.json
type GameSettings struct {
	Display DisplayConfig `json:"display"`
	Input   InputConfig   `json:"input"`
	Logging LoggingConfig `json:"logging"`
	Assets  AssetsConfig  `json:"assets"`
}

type DisplayConfig struct {
	Title        string   `json:"title"`
	ScreenWidth  int      `json:"screenWidth"`
	ScreenHeight int      `json:"screenHeight"`
	Scale        int      `json:"scale"`
	Framerate    int      `json:"framerate"`
	Background   HexColor `json:"background"`
}

type InputConfig struct {
	// Cursor speed in pixels/sec at full stick deflection
	CursorSensitivityX float64 `json:"cursorSensitivityX"`
	CursorSensitivityY float64 `json:"cursorSensitivityY"`
	// Stick values inside the deadzone read as zero
	StickDeadzone float64 `json:"stickDeadzone"`
	// Deflection past which a stick direction is a virtual button press
	StickButtonThreshold float64 `json:"stickButtonThreshold"`
}

type LoggingConfig struct {
	Level string `json:"level"` // debug, info, warn, error
}

type AssetsConfig struct {
	Dir       string `json:"dir"`       // relative to the config dir
	Manifest  string `json:"manifest"`  // sprite manifest file name
	HotReload bool   `json:"hotReload"` // watch Dir for changed sheets
}

// Defaults fills zero values with working defaults
func (s *GameSettings) Defaults() {
	d := &s.Display
	if d.Title == "" {
		d.Title = "pewpew"
	}
	if d.ScreenWidth == 0 {
		d.ScreenWidth = 320
	}
	if d.ScreenHeight == 0 {
		d.ScreenHeight = 240
	}
	if d.Scale == 0 {
		d.Scale = 2
	}
	if d.Framerate == 0 {
		d.Framerate = 60
	}
	if d.Background.IsZero() {
		d.Background = HexColor{R: 0x10, G: 0x10, B: 0x20, A: 0xff}
	}

	in := &s.Input
	if in.CursorSensitivityX == 0 {
		in.CursorSensitivityX = 300
	}
	if in.CursorSensitivityY == 0 {
		in.CursorSensitivityY = 300
	}
	if in.StickDeadzone == 0 {
		in.StickDeadzone = 0.15
	}
	if in.StickButtonThreshold == 0 {
		in.StickButtonThreshold = 0.5
	}

	if s.Logging.Level == "" {
		s.Logging.Level = "info"
	}
	if s.Assets.Dir == "" {
		s.Assets.Dir = "assets"
	}
	if s.Assets.Manifest == "" {
		s.Assets.Manifest = "sprites.yaml"
	}
}

// Validate reports the first invalid setting
func (s *GameSettings) Validate() error {
	d := s.Display
	switch {
	case d.ScreenWidth <= 0 || d.ScreenHeight <= 0:
		return invalid("display", "screen size must be positive, got %dx%d", d.ScreenWidth, d.ScreenHeight)
	case d.Scale <= 0:
		return invalid("display", "scale must be positive, got %d", d.Scale)
	case d.Framerate <= 0:
		return invalid("display", "framerate must be positive, got %d", d.Framerate)
	}

	in := s.Input
	switch {
	case in.CursorSensitivityX < 0 || in.CursorSensitivityY < 0:
		return invalid("input", "cursor sensitivity must not be negative")
	case in.StickDeadzone < 0 || in.StickDeadzone >= 1:
		return invalid("input", "stick deadzone must be in [0,1), got %v", in.StickDeadzone)
	case in.StickButtonThreshold <= 0 || in.StickButtonThreshold > 1:
		return invalid("input", "stick button threshold must be in (0,1], got %v", in.StickButtonThreshold)
	}

	switch s.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return invalid("logging", "unknown level %q", s.Logging.Level)
	}
	return nil
}
