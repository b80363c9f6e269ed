package glint

/*
Theme registry: the built-in default theme and the merge used to apply
partial overrides. Color functions are built over github.com/fatih/color
with per-color EnableColor(), so emission is controlled by the resolved
logger configuration rather than by the package-global TTY sniffing.
*/

import "github.com/fatih/color"

// Colorize builds a ColorFunc from fatih/color attributes. The returned
// function always emits escape codes; whether it is applied at all is the
// effective configuration's decision.
func Colorize(attrs ...color.Attribute) ColorFunc {
	c := color.New(attrs...)
	c.EnableColor()
	return func(s string) string { return c.Sprint(s) }
}

// Per-level tag colors of the built-in theme. The dim (message body)
// variant is the same attribute with Faint added.
var defaultLevelAttrs = [_LVL_MAX_for_checks_only]color.Attribute{
	LVL_TRACE:   color.FgHiBlack,
	LVL_DEBUG:   color.FgCyan,
	LVL_VERBOSE: color.FgMagenta,
	LVL_INFO:    color.FgBlue,
	LVL_SUCCESS: color.FgGreen,
	LVL_WARN:    color.FgYellow,
	LVL_ERROR:   color.FgRed,
}

// defaultTheme builds the built-in theme: the default emoji per level, a
// regular color for the level tag and a Faint variant for the message body.
func defaultTheme() Theme {
	t := Theme{emojis: *DefaultEmojis}
	for lvl, attr := range defaultLevelAttrs {
		t.colors[lvl] = Colorize(attr)
		t.dims[lvl] = Colorize(attr, color.Faint)
	}
	return t
}

// Emoji returns the theme's emoji marker for a level.
func (t *Theme) Emoji(level LogLevel) string { return t.emojis[normLevel(level)] }

// Color returns the theme's tag color function for a level.
func (t *Theme) Color(level LogLevel) ColorFunc { return t.colors[normLevel(level)] }

// DimColor returns the theme's body color function for a level.
func (t *Theme) DimColor(level LogLevel) ColorFunc { return t.dims[normLevel(level)] }

// MergeTheme returns a complete theme where, for each of the three mappings
// and each level, the override's entry is used if present and the base's
// entry otherwise. Missing override entries are omissions, not errors; the
// result stays total over all levels. Pure, no side effects.
func MergeTheme(base Theme, override *ThemeOverride) Theme {
	if override == nil {
		return base
	}
	out := base
	for lvl, emoji := range override.Emojis {
		if lvl < _LVL_MAX_for_checks_only {
			out.emojis[lvl] = emoji
		}
	}
	for lvl, f := range override.Colors {
		if lvl < _LVL_MAX_for_checks_only && f != nil {
			out.colors[lvl] = f
		}
	}
	for lvl, f := range override.DimColors {
		if lvl < _LVL_MAX_for_checks_only && f != nil {
			out.dims[lvl] = f
		}
	}
	return out
}
