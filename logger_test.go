package glint

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// plainOpts disables decorations so emitted lines can be compared exactly.
func plainOpts() Options {
	return Options{EnableColors: Bool(false), EnableEmojis: Bool(false)}
}

func Test_Logger_LevelGating(t *testing.T) {
	t.Run("disabled_levels_write_nothing", func(t *testing.T) {
		opts := plainOpts()
		opts.Levels = []LogLevel{LVL_ERROR}
		l, fw := newTestLogger(t, opts)
		l.Trace("x")
		l.Debug("x")
		l.Verbose("x")
		l.Info("x")
		l.Success("x")
		l.Warn("x")
		assert.Empty(t, fw.String())
	})
	t.Run("enabled_level_writes_exactly_once", func(t *testing.T) {
		l, fw := newTestLogger(t, plainOpts())
		l.Info("one line")
		require.Len(t, fw.Lines(), 1)
		assert.Equal(t, "[INFO] one line", fw.Lines()[0])
	})
	t.Run("scenario_error_only", func(t *testing.T) {
		opts := plainOpts()
		opts.Levels = []LogLevel{LVL_ERROR}
		l, fw := newTestLogger(t, opts)
		l.Warn("x")
		assert.Empty(t, fw.String())
		l.Error("y")
		assert.Equal(t, "[ERROR] y\n", fw.String())
	})
	t.Run("silent_builder", func(t *testing.T) {
		l, fw := newTestLogger(t, plainOpts())
		l.Silent().Error("swallowed")
		assert.Empty(t, fw.String())
	})
	t.Run("dev_only_gates_outside_development", func(t *testing.T) {
		probe := &fakeProbe{dev: false}
		opts := plainOpts()
		opts.DevOnly = Bool(true)
		opts.Probe = probe
		l, fw := newTestLogger(t, opts)
		l.Error("dropped")
		assert.Empty(t, fw.String())
		probe.dev = true
		l.Error("kept")
		assert.Equal(t, "[ERROR] kept\n", fw.String())
	})
}

func Test_Logger_Immutability(t *testing.T) {
	t.Run("with_colors_leaves_parent_colored", func(t *testing.T) {
		opts := Options{EnableColors: Bool(true), EnableEmojis: Bool(false)}
		a, fw := newTestLogger(t, opts)
		b := a.WithColors(false)
		a.Info("x")
		assert.Contains(t, fw.String(), "\x1b[", "parent lost its colors")
		fw.Clear()
		b.Info("x")
		assert.NotContains(t, fw.String(), "\x1b[")
	})
	t.Run("levels_leaves_parent_untouched", func(t *testing.T) {
		a, fw := newTestLogger(t, plainOpts())
		_ = a.Levels(LVL_ERROR)
		a.Info("still flows")
		assert.Equal(t, []string{"[INFO] still flows"}, fw.Lines())
	})
	t.Run("silent_leaves_parent_audible", func(t *testing.T) {
		a, fw := newTestLogger(t, plainOpts())
		_ = a.Silent()
		a.Warn("still flows")
		assert.Len(t, fw.Lines(), 1)
	})
	t.Run("with_context_leaves_parent_contextless", func(t *testing.T) {
		a, fw := newTestLogger(t, plainOpts())
		_ = a.WithContext(map[string]any{"req": 1})
		a.Info("bare")
		assert.Equal(t, []string{"[INFO] bare"}, fw.Lines())
	})
	t.Run("with_theme_composes_over_current", func(t *testing.T) {
		opts := Options{EnableColors: Bool(false), EnableEmojis: Bool(true)}
		a, fw := newTestLogger(t, opts)
		b := a.WithTheme(&ThemeOverride{Emojis: map[LogLevel]string{LVL_INFO: "📦"}})
		c := b.WithTheme(&ThemeOverride{Emojis: map[LogLevel]string{LVL_WARN: "🚧"}})
		c.Info("x")
		c.Warn("y")
		assert.Equal(t, []string{"📦 [INFO] x", "🚧 [WARN] y"}, fw.Lines())
		fw.Clear()
		a.Info("x")
		assert.Equal(t, []string{DefaultEmojis[LVL_INFO] + " [INFO] x"}, fw.Lines())
	})
}

func Test_Logger_ContextMerge(t *testing.T) {
	t.Run("object_case_merges_under_last_argument", func(t *testing.T) {
		l, fw := newTestLogger(t, plainOpts())
		l.WithContext(map[string]any{"a": 1}).Info("msg", map[string]any{"b": 2})
		assert.Equal(t, "[INFO] msg {\n  a: 1,\n  b: 2\n}\n", fw.String())
	})
	t.Run("argument_wins_on_conflict", func(t *testing.T) {
		l, fw := newTestLogger(t, plainOpts())
		l.WithContext(map[string]any{"a": 1}).Info("msg", map[string]any{"a": 2})
		assert.Equal(t, "[INFO] msg {\n  a: 2\n}\n", fw.String())
	})
	t.Run("non_object_case_appends_context", func(t *testing.T) {
		l, fw := newTestLogger(t, plainOpts())
		l.WithContext(map[string]any{"a": 1}).Info("msg", 42)
		assert.Equal(t, "[INFO] msg 42 {\n  a: 1\n}\n", fw.String())
	})
	t.Run("array_last_argument_is_not_a_record", func(t *testing.T) {
		l, fw := newTestLogger(t, plainOpts())
		l.WithContext(map[string]any{"a": 1}).Info("msg", []any{1})
		assert.Equal(t, "[INFO] msg [\n  1\n] {\n  a: 1\n}\n", fw.String())
	})
	t.Run("no_arguments_still_attaches_context", func(t *testing.T) {
		l, fw := newTestLogger(t, plainOpts())
		l.WithContext(map[string]any{"a": 1}).Info()
		assert.Equal(t, "[INFO] {\n  a: 1\n}\n", fw.String())
	})
	t.Run("child_context_extends_and_overrides_parent", func(t *testing.T) {
		l, fw := newTestLogger(t, plainOpts())
		parent := l.WithContext(map[string]any{"a": 1, "b": 1})
		child := parent.WithContext(map[string]any{"b": 2})
		child.Info("msg")
		assert.Equal(t, "[INFO] msg {\n  a: 1,\n  b: 2\n}\n", fw.String())
		fw.Clear()
		parent.Info("msg")
		assert.Equal(t, "[INFO] msg {\n  a: 1,\n  b: 1\n}\n", fw.String())
	})
	t.Run("caller_arguments_not_mutated", func(t *testing.T) {
		l, _ := newTestLogger(t, plainOpts())
		arg := map[string]any{"b": 2}
		l.WithContext(map[string]any{"a": 1}).Info("msg", arg)
		assert.Equal(t, map[string]any{"b": 2}, arg)
	})
}

func Test_Logger_Highlighting(t *testing.T) {
	t.Run("applied_when_colors_and_highlighting_enabled", func(t *testing.T) {
		opts := Options{EnableColors: Bool(true), EnableEmojis: Bool(false)}
		l, fw := newTestLogger(t, opts)
		l.WithColors(true).Info("msg", map[string]any{"a": 1})
		assert.Contains(t, fw.String(), highlightPalette.key("a"))
	})
	t.Run("suppressed_without_colors", func(t *testing.T) {
		l, fw := newTestLogger(t, plainOpts())
		l.Info("msg", map[string]any{"a": 1})
		assert.NotContains(t, fw.String(), "\x1b[")
	})
	t.Run("suppressed_when_toggled_off", func(t *testing.T) {
		opts := Options{EnableColors: Bool(true), EnableEmojis: Bool(false)}
		l, fw := newTestLogger(t, opts)
		l.WithSyntaxHighlighting(false).Info("msg", map[string]any{"a": 1})
		assert.NotContains(t, fw.String(), highlightPalette.key("a"))
	})
}

func Test_Logger_Writer(t *testing.T) {
	l, fw := newTestLogger(t, plainOpts())
	n, err := fmt.Fprintf(l.Writer(LVL_WARN), "disk low: %d%%\n", 93)
	require.NoError(t, err)
	assert.Equal(t, len("disk low: 93%\n"), n)
	assert.Equal(t, []string{"[WARN] disk low: 93%"}, fw.Lines())

	t.Run("gated_write_reports_success", func(t *testing.T) {
		fw.Clear()
		n, err := l.Silent().Writer(LVL_WARN).Write([]byte("dropped"))
		require.NoError(t, err)
		assert.Equal(t, len("dropped"), n)
		assert.Empty(t, fw.String())
	})
	t.Run("empty_write_is_a_no_op", func(t *testing.T) {
		fw.Clear()
		n, err := l.Writer(LVL_WARN).Write(nil)
		require.NoError(t, err)
		assert.Zero(t, n)
		assert.Empty(t, fw.String())
	})
}

func Test_Default_Singleton(t *testing.T) {
	a := Default()
	b := Default()
	assert.Same(t, a, b)
	// Deriving from the default must not touch the shared instance.
	c := a.Silent()
	assert.NotSame(t, a, c)
	assert.Same(t, a, Default())
}
