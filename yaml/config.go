// Package yaml loads the zealdoc configuration file.
package yaml

import (
	"bytes"
	"errors"
	"io"
	"os"
	"path/filepath"

	"github.com/fwojciec/zealdoc"
	"gopkg.in/yaml.v3"
)

// fileConfig mirrors the layout of the configuration file.
type fileConfig struct {
	DocsetsDir string               `yaml:"docsets_dir"`
	Icons      bool                 `yaml:"icons"`
	Color      string               `yaml:"color"`
	Viewer     string               `yaml:"viewer"`
	Glyphs     map[string]fileGlyph `yaml:"glyphs"`
}

type fileGlyph struct {
	Symbol string `yaml:"symbol"`
	Color  string `yaml:"color"`
}

// DefaultConfigPath returns the per-user configuration file location,
// e.g. ~/.config/zealdoc/config.yaml on Linux.
func DefaultConfigPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "zealdoc", "config.yaml"), nil
}

// LoadConfig reads the configuration file at path. A missing file or an
// empty path yields an empty Config.
// Returns EINVALID for malformed files, unknown keys, kinds or colours.
func LoadConfig(path string) (*zealdoc.Config, error) {
	if path == "" {
		return &zealdoc.Config{}, nil
	}
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return &zealdoc.Config{}, nil
	}
	if err != nil {
		return nil, err
	}
	return ParseConfig(data)
}

// ParseConfig parses configuration file contents.
func ParseConfig(data []byte) (*zealdoc.Config, error) {
	var fc fileConfig
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&fc); err != nil && !errors.Is(err, io.EOF) {
		return nil, zealdoc.Errorf(zealdoc.EINVALID, "parsing config: %v", err)
	}

	cfg := &zealdoc.Config{
		DocsetsDir: fc.DocsetsDir,
		Icons:      fc.Icons,
		ColorMode:  fc.Color,
		Viewer:     fc.Viewer,
	}

	if len(fc.Glyphs) > 0 {
		defaults := zealdoc.NewGlyphTable(nil)
		cfg.Glyphs = make(map[zealdoc.Kind]zealdoc.Glyph, len(fc.Glyphs))
		for name, g := range fc.Glyphs {
			kind := zealdoc.ParseKind(name)
			if kind == zealdoc.KindUnknown {
				return nil, zealdoc.Errorf(zealdoc.EINVALID, "glyphs: unknown kind %q", name)
			}
			if g.Symbol == "" {
				return nil, zealdoc.Errorf(zealdoc.EINVALID, "glyphs: %s: symbol required", name)
			}
			glyph, _ := defaults.Lookup(kind.String())
			glyph.Symbol = g.Symbol
			if g.Color != "" {
				c, err := zealdoc.ParseColor(g.Color)
				if err != nil {
					return nil, zealdoc.Errorf(zealdoc.EINVALID, "glyphs: %s: %s", name, zealdoc.ErrorMessage(err))
				}
				glyph.Color = c
			}
			cfg.Glyphs[kind] = glyph
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
