package editor

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Palette holds the SGR color numbers used for each highlight attribute,
// per the mapping table in spec §4.8. It exists so a user can retheme the
// editor without touching code; the mapping from Highlight to a palette
// slot is fixed by the spec, only the numbers themselves are overridable.
type Palette struct {
	Comment  int
	Number   int
	String   int
	Match    int
	Keyword1 int
	Keyword2 int
	// Normal is not read by the renderer: Normal text is always drawn after
	// the default-foreground reset (SGR 39), so overriding it has no effect.
	Normal int
}

// defaultPalette matches spec §4.8's color table exactly.
var defaultPalette = Palette{
	Comment:  36,
	Number:   31,
	String:   35,
	Match:    34,
	Keyword1: 33,
	Keyword2: 32,
	Normal:   37,
}

// Config is the optional ambient configuration this editor reads from a
// TOML file. Every field is optional; an absent file, or one missing a
// field, falls back to the spec's hardcoded defaults.
type Config struct {
	TabStop   int    `toml:"tab_stop"`
	QuitTimes int    `toml:"quit_times"`
	Colors    Colors `toml:"colors"`
}

// Colors is the TOML-facing shape of Palette (kept separate so the config
// file's key names — "comment", "number", ... — don't have to track Go
// field names).
type Colors struct {
	Comment  *int `toml:"comment"`
	Number   *int `toml:"number"`
	String   *int `toml:"string"`
	Match    *int `toml:"match"`
	Keyword1 *int `toml:"keyword1"`
	Keyword2 *int `toml:"keyword2"`
	Normal   *int `toml:"normal"`
}

// configCandidatePaths returns, in priority order, the locations checked
// for an optional config file: alongside the opened file, then $HOME.
func configCandidatePaths(filename string) []string {
	var paths []string
	if filename != "" {
		paths = append(paths, filepath.Join(filepath.Dir(filename), ".kilogo.toml"))
	}
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, ".kilogo.toml"))
	}
	return paths
}

// loadConfig reads the first config file found among configCandidatePaths,
// returning the spec defaults on any absence or parse error. A parse
// error is reported through warn (typically Editor.SetStatusMessage) but
// is never fatal: a broken config degrades to defaults, it does not stop
// the editor from starting.
func loadConfig(filename string, warn func(format string, args ...any)) (tabStop, quitTimes int, palette Palette) {
	tabStop, quitTimes, palette = defaultTabStop, defaultQuitTimes, defaultPalette

	for _, path := range configCandidatePaths(filename) {
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		var cfg Config
		if _, err := toml.Decode(string(data), &cfg); err != nil {
			if warn != nil {
				warn("ignoring %s: %v", path, err)
			}
			return tabStop, quitTimes, palette
		}
		if cfg.TabStop > 0 {
			tabStop = cfg.TabStop
		}
		if cfg.QuitTimes > 0 {
			quitTimes = cfg.QuitTimes
		}
		applyColorOverrides(&palette, cfg.Colors)
		return tabStop, quitTimes, palette
	}
	return tabStop, quitTimes, palette
}

func applyColorOverrides(p *Palette, c Colors) {
	if c.Comment != nil {
		p.Comment = *c.Comment
	}
	if c.Number != nil {
		p.Number = *c.Number
	}
	if c.String != nil {
		p.String = *c.String
	}
	if c.Match != nil {
		p.Match = *c.Match
	}
	if c.Keyword1 != nil {
		p.Keyword1 = *c.Keyword1
	}
	if c.Keyword2 != nil {
		p.Keyword2 = *c.Keyword2
	}
	if c.Normal != nil {
		p.Normal = *c.Normal
	}
}
