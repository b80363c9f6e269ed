// A decorative console-output formatter for Go. Classifies messages into
// severity levels, gates them on configuration and environment, and renders
// each message with optional emoji markers, ANSI color and a recursive
// syntax highlighter for structured arguments.
package glint

/*
Logger facade. A Logger is an immutable value {effective configuration,
theme, context}; every builder method copies the value and every level
method runs the same pipeline:

	gate check -> context merge -> value rendering -> formatting -> sink

Construction merges the option layers (defaults, optional preset, explicit
options), resolves the configuration against the capability probe once, and
never touches it again.
*/

import (
	"io"
	"maps"
	"os"
	"sync"
)

// Bool returns a pointer to v, for use in Options fields where "not set"
// must stay distinguishable from an explicit false.
func Bool(v bool) *bool { return &v }

// New constructs a root logger: hardcoded defaults overlaid with the
// provided options, capability-restricted per the probe.
//
// Preferred usage example:
//
//	log := glint.New(glint.Options{})
//	log.Info("server listening", map[string]any{"port": 8080})
func New(opts Options) *Logger {
	return newLogger(defaultOptions(), nil, opts)
}

// NewWithPreset seeds the named preset between the defaults and the caller
// options. Unknown preset names return an error.
func NewWithPreset(preset string, opts Options) (*Logger, error) {
	p, err := presetOptions(preset)
	if err != nil {
		return nil, err
	}
	return newLogger(defaultOptions(), &p, opts), nil
}

// NewServer builds a logger with the server preset: developer-facing logs
// with emoji and color requested explicitly.
func NewServer(opts Options) *Logger {
	l, _ := NewWithPreset(PRESET_SERVER, opts)
	return l
}

// NewCI builds a logger with the ci preset: plain output with the chatter
// levels disabled.
func NewCI(opts Options) *Logger {
	l, _ := NewWithPreset(PRESET_CI, opts)
	return l
}

// newLogger merges the option layers in order (later wins per field) and
// resolves the effective configuration. Theme overrides compose by merging
// over the previous layer instead of replacing it wholesale.
func newLogger(base Options, preset *Options, user Options) *Logger {
	merged := base
	theme := defaultTheme()
	if preset != nil {
		merged = overlayOptions(merged, *preset)
		theme = MergeTheme(theme, preset.Theme)
	}
	merged = overlayOptions(merged, user)
	theme = MergeTheme(theme, user.Theme)

	out := merged.Output
	if out == nil {
		out = os.Stdout
	}
	probe := merged.Probe
	if probe == nil {
		probe = NewEnvProbe(out)
	}
	return &Logger{
		config: resolveConfig(merged, probe),
		theme:  theme,
		output: out,
		probe:  probe,
	}
}

/////////////////////////////////////////////////////////////////////////////////////////
// Builder methods. Each returns a new Logger value; the receiver is never
// mutated and remains independently usable.

// derive copies the receiver and applies f to the copy.
func (l *Logger) derive(f func(*Logger)) *Logger {
	clone := *l
	f(&clone)
	return &clone
}

// Silent returns a logger that emits nothing.
func (l *Logger) Silent() *Logger {
	return l.derive(func(c *Logger) { c.config.silent = true })
}

// WithEmojis returns a logger with the emoji marker toggled.
func (l *Logger) WithEmojis(enabled bool) *Logger {
	return l.derive(func(c *Logger) { c.config.enableEmojis = enabled })
}

// WithColors returns a logger with ANSI color output toggled.
func (l *Logger) WithColors(enabled bool) *Logger {
	return l.derive(func(c *Logger) { c.config.enableColors = enabled })
}

// WithSyntaxHighlighting returns a logger with structured-argument
// highlighting toggled. Highlighting is only applied when colors are also
// enabled.
func (l *Logger) WithSyntaxHighlighting(enabled bool) *Logger {
	return l.derive(func(c *Logger) { c.config.enableSyntax = enabled })
}

// WithTheme returns a logger whose theme is the override merged over the
// current instance's theme, so successive overrides compose.
func (l *Logger) WithTheme(override *ThemeOverride) *Logger {
	return l.derive(func(c *Logger) { c.theme = MergeTheme(l.theme, override) })
}

// Levels returns a logger with the enabled-levels set replaced wholesale
// (not additive). Calling with no arguments disables every level.
func (l *Logger) Levels(levels ...LogLevel) *Logger {
	var set levelSet
	for _, lvl := range levels {
		if lvl < _LVL_MAX_for_checks_only {
			set[lvl] = true
		}
	}
	return l.derive(func(c *Logger) { c.config.enabledLevels = set })
}

// WithOutput returns a logger writing to the given sink.
func (l *Logger) WithOutput(w io.Writer) *Logger {
	return l.derive(func(c *Logger) {
		if w != nil {
			c.output = w
		}
	})
}

// WithContext returns a logger whose context map is the shallow merge of
// the current context and ctx, with ctx keys winning on conflict. The
// parent's map is never shared with the child.
func (l *Logger) WithContext(ctx map[string]any) *Logger {
	merged := make(map[string]any, len(l.context)+len(ctx))
	maps.Copy(merged, l.context)
	maps.Copy(merged, ctx)
	return l.derive(func(c *Logger) { c.context = merged })
}

/////////////////////////////////////////////////////////////////////////////////////////
// Level methods. Each runs the gate check first and performs no rendering
// work for gated-out calls.

// Log is the generic entry point the named level methods wrap.
func (l *Logger) Log(level LogLevel, args ...any) {
	if !l.shouldLog(level) {
		return
	}
	args = l.mergeContext(args)
	highlight := l.config.enableSyntax && l.config.enableColors
	rendered := make([]string, len(args))
	for i, a := range args {
		rendered[i] = renderValue(a, highlight)
	}
	line := formatMessage(level, rendered, &l.theme, l.config.enableEmojis, l.config.enableColors)
	// Sink failures are the sink's concern; the formatter makes no retry
	// or suppression decision.
	_, _ = l.output.Write([]byte(line + "\n"))
}

// Trace logs at TRACE level.
func (l *Logger) Trace(args ...any) { l.Log(LVL_TRACE, args...) }

// Debug logs at DEBUG level.
func (l *Logger) Debug(args ...any) { l.Log(LVL_DEBUG, args...) }

// Verbose logs at VERBOSE level.
func (l *Logger) Verbose(args ...any) { l.Log(LVL_VERBOSE, args...) }

// Info logs at INFO level.
func (l *Logger) Info(args ...any) { l.Log(LVL_INFO, args...) }

// Success logs at SUCCESS level.
func (l *Logger) Success(args ...any) { l.Log(LVL_SUCCESS, args...) }

// Warn logs at WARN level.
func (l *Logger) Warn(args ...any) { l.Log(LVL_WARN, args...) }

// Error logs at ERROR level.
func (l *Logger) Error(args ...any) { l.Log(LVL_ERROR, args...) }

/////////////////////////////////////////////////////////////////////////////////////////
// Process-wide default instance: lazily initialized, read-only afterwards,
// otherwise an ordinary Logger value.

var (
	defaultLogger *Logger
	defaultOnce   sync.Once
)

// Default returns the process-wide logger, created once with default
// options on first use.
func Default() *Logger {
	defaultOnce.Do(func() { defaultLogger = New(Options{}) })
	return defaultLogger
}

// Package-level convenience wrappers over Default().

// Trace logs at TRACE level on the default logger.
func Trace(args ...any) { Default().Trace(args...) }

// Debug logs at DEBUG level on the default logger.
func Debug(args ...any) { Default().Debug(args...) }

// Verbose logs at VERBOSE level on the default logger.
func Verbose(args ...any) { Default().Verbose(args...) }

// Info logs at INFO level on the default logger.
func Info(args ...any) { Default().Info(args...) }

// Success logs at SUCCESS level on the default logger.
func Success(args ...any) { Default().Success(args...) }

// Warn logs at WARN level on the default logger.
func Warn(args ...any) { Default().Warn(args...) }

// Error logs at ERROR level on the default logger.
func Error(args ...any) { Default().Error(args...) }
