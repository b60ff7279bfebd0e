package zealdoc

// Color modes for Config.Color.
const (
	ColorModeAuto   = "auto"
	ColorModeAlways = "always"
	ColorModeNever  = "never"
)

// Config holds user settings read from the configuration file.
// Zero values mean "not set"; command-line flags and environment
// variables take precedence over every field.
type Config struct {
	DocsetsDir string
	Icons      bool
	ColorMode  string
	Viewer     string
	Glyphs     map[Kind]Glyph
}

// Validate returns an error if the config contains invalid fields.
func (c *Config) Validate() error {
	switch c.ColorMode {
	case "", ColorModeAuto, ColorModeAlways, ColorModeNever:
	default:
		return Errorf(EINVALID, "color must be one of auto, always, never: got %q", c.ColorMode)
	}
	for k := range c.Glyphs {
		if k == KindUnknown {
			return Errorf(EINVALID, "glyph overrides require a known kind")
		}
	}
	return nil
}
