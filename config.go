package glint

/*
Configuration resolver. Four layers combine into one immutable effective
configuration per logger:
 1. hardcoded defaults (everything on, nothing silent)
 2. a named preset, when the logger was built through a preset factory
 3. explicit caller options
 4. the capability probe, which only restricts the two capability-sensitive
    fields (colors, emojis) when no earlier layer set them explicitly

Most of the configuration is fixed at construction time; only the
development-mode half of the dev-only gate is re-read on every call (see
shouldLog), so flipping the environment after construction is honored.
*/

import (
	"fmt"
	"os"
)

const (
	// Hardcoded defaults for the capability-sensitive fields. Probing can
	// only restrict these, never grant a capability the defaults did not
	// already request.
	_DEFAULT_ENABLE_COLORS = true
	_DEFAULT_ENABLE_EMOJIS = true
)

// defaultOptions is the hardcoded defaults layer. Levels stay nil ("all")
// unless GLINT_LEVELS narrows them.
func defaultOptions() Options {
	opts := Options{}
	if env := os.Getenv(ENV_LEVELS); env != "" {
		opts.Levels = parseLevels(env)
	}
	return opts
}

// presetOptions returns the options seeded by a named preset. Presets
// differ from each other and from the raw defaults only in field values,
// not in resolution mechanics.
func presetOptions(name string) (Options, error) {
	switch name {
	case PRESET_SERVER:
		// Developer-facing server logs: decorations requested explicitly,
		// so a probe that reports no TTY does not strip them.
		return Options{
			EnableEmojis: Bool(true),
			EnableColors: Bool(true),
		}, nil
	case PRESET_CI:
		// Non-interactive pipelines: plain text, chatter levels off.
		return Options{
			EnableEmojis: Bool(false),
			EnableColors: Bool(false),
			Levels:       []LogLevel{LVL_DEBUG, LVL_INFO, LVL_SUCCESS, LVL_WARN, LVL_ERROR},
		}, nil
	}
	return Options{}, fmt.Errorf("%s: %q", _ERROR_MESSAGE_UNKNOWN_PRESET, name)
}

// overlayOptions returns base with every field that is set in over
// replacing the base value; unset fields fall through to base. The theme
// override is handled separately by the constructor because theme layers
// compose by merging instead of replacing wholesale.
func overlayOptions(base, over Options) Options {
	if over.Silent != nil {
		base.Silent = over.Silent
	}
	if over.EnableEmojis != nil {
		base.EnableEmojis = over.EnableEmojis
	}
	if over.EnableColors != nil {
		base.EnableColors = over.EnableColors
	}
	if over.EnableSyntaxHighlighting != nil {
		base.EnableSyntaxHighlighting = over.EnableSyntaxHighlighting
	}
	if over.Levels != nil {
		base.Levels = over.Levels
	}
	if over.DevOnly != nil {
		base.DevOnly = over.DevOnly
	}
	if over.Output != nil {
		base.Output = over.Output
	}
	if over.Probe != nil {
		base.Probe = over.Probe
	}
	return base
}

// resolveConfig produces the effective configuration from the merged
// options and the probe. The probe's development answer is captured here
// once for the devOnly default; the live re-check happens in shouldLog.
func resolveConfig(opts Options, probe CapabilityProbe) effectiveConfig {
	cfg := effectiveConfig{
		enableSyntax:  true,
		enabledLevels: levelSetOf(opts.Levels),
	}
	if opts.Silent != nil {
		cfg.silent = *opts.Silent
	}
	if opts.EnableSyntaxHighlighting != nil {
		cfg.enableSyntax = *opts.EnableSyntaxHighlighting
	}
	if opts.EnableColors != nil {
		cfg.enableColors = *opts.EnableColors
	} else {
		cfg.enableColors = _DEFAULT_ENABLE_COLORS && probe.SupportsColor()
	}
	if opts.EnableEmojis != nil {
		cfg.enableEmojis = *opts.EnableEmojis
	} else {
		cfg.enableEmojis = _DEFAULT_ENABLE_EMOJIS && probe.SupportsEmoji()
	}
	if opts.DevOnly != nil {
		cfg.devOnly = *opts.DevOnly
	} else {
		cfg.devOnly = probe.IsDevelopmentMode()
	}
	return cfg
}

// shouldLog is the level gate, evaluated on every log call. Silent wins,
// then the dev-only check (live: the environment can change after
// construction, e.g. in tests that flip it), then enabled-levels
// membership. Out-of-range levels never pass.
func (l *Logger) shouldLog(level LogLevel) bool {
	if l.config.silent {
		return false
	}
	if l.config.devOnly && !l.probe.IsDevelopmentMode() {
		return false
	}
	if level >= _LVL_MAX_for_checks_only {
		return false
	}
	return l.config.enabledLevels[level]
}
