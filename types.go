package glint

/*
Defines the core data types used by the formatter:
  - basetype and a typed alias for byte-sized enums
  - LogLevel and the fixed-size per-level map types (LevelMap, ColorMap)
  - Theme / ThemeOverride: total resp. partial per-level decoration maps
  - CapabilityProbe: the injected environment interface
  - Options: the caller-facing construction surface (pointer fields keep
    "not set" distinguishable from an explicit false)
  - effectiveConfig and levelSet: the immutable resolved configuration
  - Logger: the immutable facade value {config, theme, context}
*/

import "io"

// basetype is the underlying byte-sized representation used for enums.
type basetype byte

// LogLevel identifies a message severity category (alias for byte).
type LogLevel basetype

// ColorFunc wraps text in ANSI escape codes. A nil ColorFunc leaves the
// text unwrapped.
type ColorFunc func(s string) string

// LevelMap is a fixed-size array with one string entry per log level. Used
// for level names and emoji markers.
type LevelMap [_LVL_MAX_for_checks_only]string

// ColorMap is a fixed-size array with one color function per log level.
type ColorMap [_LVL_MAX_for_checks_only]ColorFunc

// Theme holds the per-level decorations: an emoji marker, a regular color
// for the level tag and a dim color for the message body. All three maps
// are total by construction, so every level stays resolvable even after
// merging partial overrides.
type Theme struct {
	emojis LevelMap
	colors ColorMap
	dims   ColorMap
}

// ThemeOverride is a partial theme carrying entries for a subset of levels
// only. Missing entries fall back to the base theme on merge.
type ThemeOverride struct {
	Emojis    map[LogLevel]string
	Colors    map[LogLevel]ColorFunc
	DimColors map[LogLevel]ColorFunc
}

// CapabilityProbe reports what the runtime environment supports. Color and
// emoji support are consulted once at logger construction; development mode
// is consulted live on every gated call, since the process environment can
// change after construction.
type CapabilityProbe interface {
	SupportsColor() bool
	SupportsEmoji() bool
	IsDevelopmentMode() bool
}

// Options is the caller-facing construction surface. Every field is
// optional; nil fields fall through to the preset layer and then to the
// hardcoded defaults.
type Options struct {
	Silent                   *bool
	EnableEmojis             *bool
	EnableColors             *bool
	EnableSyntaxHighlighting *bool
	Levels                   []LogLevel
	DevOnly                  *bool
	Theme                    *ThemeOverride
	Output                   io.Writer       // sink; os.Stdout when nil
	Probe                    CapabilityProbe // environment probe; envProbe when nil
}

// levelSet is the resolved enabled-levels set, value-copyable like the rest
// of the effective configuration.
type levelSet [_LVL_MAX_for_checks_only]bool

// effectiveConfig is the resolved configuration attached to exactly one
// Logger value. Never mutated after construction; "changing" it produces a
// new Logger with a new copy.
type effectiveConfig struct {
	silent        bool
	enableEmojis  bool
	enableColors  bool
	enableSyntax  bool
	enabledLevels levelSet
	devOnly       bool
}

// Logger is the immutable facade value. Builder methods copy the value and
// never mutate the receiver, so a parent stays independently usable after
// deriving children and values are safe to share across goroutines
// (provided the sink itself tolerates concurrent writes).
type Logger struct {
	config  effectiveConfig
	theme   Theme
	context map[string]any // persistent fields; never mutated after construction
	output  io.Writer
	probe   CapabilityProbe
}
