package glint

/*
Context merge. A logger can carry a persistent key/value context attached
to every call from that instance or its descendants. Context maps flow
downward only: each WithContext derivation owns its own snapshot and
nothing is ever merged back into a parent.
*/

import "maps"

// mergeContext attaches the persistent context to the call arguments. When
// the last argument is a plain data record (exactly map[string]any) the
// context is shallow-merged underneath it, so same-named argument fields
// win over context fields. Any other last argument — arrays, primitives,
// typed structs — leaves the argument list intact and appends the context
// itself as one trailing argument. The record check is deliberately
// narrow: slices of records, custom map types and struct values do not
// qualify.
func (l *Logger) mergeContext(args []any) []any {
	if len(l.context) == 0 {
		return args
	}
	if n := len(args); n > 0 {
		if last, ok := args[n-1].(map[string]any); ok {
			merged := make(map[string]any, len(l.context)+len(last))
			maps.Copy(merged, l.context)
			maps.Copy(merged, last)
			out := append([]any{}, args...)
			out[n-1] = merged
			return out
		}
	}
	return append(append([]any{}, args...), l.context)
}
