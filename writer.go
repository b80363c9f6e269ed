package glint

/*********************************************************************************
io.Writer adapter

A Logger can hand out io.Writer views pinned to a level, so it plugs into
fmt and other formatting helpers. This allows patterns like:

	fmt.Fprintf(log.Writer(glint.LVL_WARN), "disk low: %d%%", percent)

Each Write becomes exactly one gated log call; trailing newlines are
trimmed because the formatter terminates lines itself.
*/

import (
	"io"
	"strings"
)

// levelWriter forwards writes as log calls at a fixed level.
type levelWriter struct {
	logger *Logger
	level  LogLevel
}

// Writer returns an io.Writer that logs each Write as one message at the
// given level.
func (l *Logger) Writer(level LogLevel) io.Writer {
	return &levelWriter{logger: l, level: normLevel(level)}
}

// Write implements io.Writer. It always reports len(p) consumed: a
// gated-out message is an intentional drop, not a write failure.
func (w *levelWriter) Write(p []byte) (n int, err error) {
	if len(p) == 0 {
		return 0, nil
	}
	w.logger.Log(w.level, strings.TrimRight(string(p), "\n"))
	return len(p), nil
}
