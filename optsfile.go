package glint

/*
Options file loader: a YAML profile that deployments can ship next to the
binary. Levels and theme entries are referenced by level name; colors come
from a small named palette mapped onto fatih/color attributes. Absent
fields stay unset and fall through the usual resolution layers.

Example profile:

	silent: false
	emojis: true
	colors: true
	highlight: true
	levels: [info, success, warn, error]
	theme:
	  error:
	    emoji: "🔥"
	    color: hi-red
	    dim: red
*/

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"gopkg.in/yaml.v3"
)

// fileOptions is the YAML shape of an options profile.
type fileOptions struct {
	Silent    *bool                     `yaml:"silent"`
	Emojis    *bool                     `yaml:"emojis"`
	Colors    *bool                     `yaml:"colors"`
	Highlight *bool                     `yaml:"highlight"`
	DevOnly   *bool                     `yaml:"dev_only"`
	Levels    []string                  `yaml:"levels"`
	Theme     map[string]fileThemeEntry `yaml:"theme"`
}

// fileThemeEntry is one per-level theme override in a profile.
type fileThemeEntry struct {
	Emoji string `yaml:"emoji"`
	Color string `yaml:"color"`
	Dim   string `yaml:"dim"`
}

// namedColorAttrs is the color palette accepted in options files.
var namedColorAttrs = map[string]color.Attribute{
	"black":      color.FgBlack,
	"red":        color.FgRed,
	"green":      color.FgGreen,
	"yellow":     color.FgYellow,
	"blue":       color.FgBlue,
	"magenta":    color.FgMagenta,
	"cyan":       color.FgCyan,
	"white":      color.FgWhite,
	"gray":       color.FgHiBlack,
	"hi-red":     color.FgHiRed,
	"hi-green":   color.FgHiGreen,
	"hi-yellow":  color.FgHiYellow,
	"hi-blue":    color.FgHiBlue,
	"hi-magenta": color.FgHiMagenta,
	"hi-cyan":    color.FgHiCyan,
	"hi-white":   color.FgHiWhite,
}

// LoadOptions reads a YAML options profile. Unknown level or color names
// are errors (a silently dropped override would defeat the profile's
// purpose); fields missing from the file stay unset.
func LoadOptions(path string) (Options, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Options{}, fmt.Errorf("%s: %w", _ERROR_MESSAGE_READ_OPTIONS, err)
	}
	var raw fileOptions
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return Options{}, fmt.Errorf("%s: %w", _ERROR_MESSAGE_PARSE_OPTIONS, err)
	}

	opts := Options{
		Silent:                   raw.Silent,
		EnableEmojis:             raw.Emojis,
		EnableColors:             raw.Colors,
		EnableSyntaxHighlighting: raw.Highlight,
		DevOnly:                  raw.DevOnly,
	}
	for _, name := range raw.Levels {
		lvl, err := ParseLevel(name)
		if err != nil {
			return Options{}, err
		}
		opts.Levels = append(opts.Levels, lvl)
	}
	if len(raw.Theme) > 0 {
		override, err := themeOverrideFromFile(raw.Theme)
		if err != nil {
			return Options{}, err
		}
		opts.Theme = override
	}
	return opts, nil
}

// themeOverrideFromFile converts profile theme entries into a partial
// theme override.
func themeOverrideFromFile(entries map[string]fileThemeEntry) (*ThemeOverride, error) {
	override := &ThemeOverride{
		Emojis:    map[LogLevel]string{},
		Colors:    map[LogLevel]ColorFunc{},
		DimColors: map[LogLevel]ColorFunc{},
	}
	for name, entry := range entries {
		lvl, err := ParseLevel(name)
		if err != nil {
			return nil, err
		}
		if entry.Emoji != "" {
			override.Emojis[lvl] = entry.Emoji
		}
		if entry.Color != "" {
			attr, ok := namedColorAttrs[entry.Color]
			if !ok {
				return nil, fmt.Errorf("%s: %q", _ERROR_MESSAGE_UNKNOWN_COLOR, entry.Color)
			}
			override.Colors[lvl] = Colorize(attr)
		}
		if entry.Dim != "" {
			attr, ok := namedColorAttrs[entry.Dim]
			if !ok {
				return nil, fmt.Errorf("%s: %q", _ERROR_MESSAGE_UNKNOWN_COLOR, entry.Dim)
			}
			override.DimColors[lvl] = Colorize(attr, color.Faint)
		}
	}
	return override, nil
}
