package glint

/*
Package-wide constants, enums and helpers:
  - log level values and the sentinel used for range checks
  - level name maps and the default emoji map
  - environment variable names consulted by the defaults layer and probe
  - normalization and level-name parsing helpers
*/

import (
	"fmt"
	"strings"
)

const (
	// Log level values in ascending severity. The trailing
	// _LVL_MAX_for_checks_only is used as an exclusive upper bound for
	// normalization checks and sizes the per-level map types.
	LVL_TRACE LogLevel = iota
	LVL_DEBUG
	LVL_VERBOSE
	LVL_INFO
	LVL_SUCCESS
	LVL_WARN
	LVL_ERROR
	_LVL_MAX_for_checks_only
)

const (
	// Environment variables consulted by the formatter.
	ENV_LEVELS        = "GLINT_LEVELS" // comma-separated level names for the defaults layer
	ENV_MODE          = "GLINT_ENV"    // development/production mode override
	ENV_MODE_FALLBACK = "GO_ENV"       // consulted when GLINT_ENV is empty

	// Value of ENV_MODE / ENV_MODE_FALLBACK that turns development mode off.
	MODE_PRODUCTION = "production"
)

const (
	// Named presets seeding different defaults before user overrides.
	PRESET_SERVER = "server" // developer-facing server logs: rich decorations
	PRESET_CI     = "ci"     // non-interactive pipelines: plain output
)

const (
	// Error messages used across formatter operations (used for testing).
	_ERROR_MESSAGE_UNKNOWN_LEVEL  = "unknown log level"
	_ERROR_MESSAGE_UNKNOWN_PRESET = "unknown preset"
	_ERROR_MESSAGE_UNKNOWN_COLOR  = "unknown color name"
	_ERROR_MESSAGE_READ_OPTIONS   = "cannot read options file"
	_ERROR_MESSAGE_PARSE_OPTIONS  = "cannot parse options file"
)

// Upper-case level names used for the message tag and for parsing.
var LevelUpperNames = &LevelMap{
	"TRACE",   //LVL_TRACE
	"DEBUG",   //LVL_DEBUG
	"VERBOSE", //LVL_VERBOSE
	"INFO",    //LVL_INFO
	"SUCCESS", //LVL_SUCCESS
	"WARN",    //LVL_WARN
	"ERROR",   //LVL_ERROR
}

// Default emoji markers, one per level (for Theme.emojis).
var DefaultEmojis = &LevelMap{
	"🔍", //LVL_TRACE
	"🐛", //LVL_DEBUG
	"🔬", //LVL_VERBOSE
	"ℹ️", //LVL_INFO
	"✅", //LVL_SUCCESS
	"⚠️", //LVL_WARN
	"❌", //LVL_ERROR
}

// Generic byte normalization helper.
func norm_byte[T ~byte](val, overlimit, def T) T {
	if val < overlimit {
		return val
	} else {
		return def
	}
}

// Ensures a provided LogLevel is within the valid range. An out-of-range
// level is a programming bug, not a user-facing error path; it normalizes
// to LVL_INFO instead of panicking so lookups into the per-level maps stay
// total.
func normLevel(level LogLevel) LogLevel {
	return norm_byte(level, _LVL_MAX_for_checks_only, LVL_INFO)
}

// String returns the upper-case level name.
func (l LogLevel) String() string {
	return LevelUpperNames[normLevel(l)]
}

// ParseLevel resolves a level by name, case-insensitively.
func ParseLevel(name string) (LogLevel, error) {
	n := strings.ToUpper(strings.TrimSpace(name))
	for i, s := range LevelUpperNames {
		if s == n {
			return LogLevel(i), nil
		}
	}
	return LVL_INFO, fmt.Errorf("%s: %q", _ERROR_MESSAGE_UNKNOWN_LEVEL, name)
}

// parseLevels parses a comma-separated list of level names. Unknown names
// are skipped; an empty or all-unknown list yields nil, which callers treat
// as "not set".
func parseLevels(s string) []LogLevel {
	var levels []LogLevel
	for _, part := range strings.Split(s, ",") {
		if lvl, err := ParseLevel(part); err == nil {
			levels = append(levels, lvl)
		}
	}
	return levels
}

// levelSetOf builds the enabled-levels set from a slice. A nil slice means
// every level (the hardcoded default); an empty non-nil slice means none.
func levelSetOf(levels []LogLevel) levelSet {
	var set levelSet
	if levels == nil {
		for i := range set {
			set[i] = true
		}
		return set
	}
	for _, lvl := range levels {
		if lvl < _LVL_MAX_for_checks_only {
			set[lvl] = true
		}
	}
	return set
}
