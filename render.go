package glint

/*
Value renderer: converts an arbitrary log argument into display text.
Strings pass through verbatim (they are the message prose); everything else
goes through a recursive JSON-like pretty printer that optionally colorizes
tokens. Token categories (object keys, string values, numbers, booleans,
null, structural punctuation) map to a fixed palette independent of the log
level. Recursion is guarded against cycles: a container already on the
current path renders as CYCLE_PLACEHOLDER instead of recursing forever.
*/

import (
	"fmt"
	"reflect"
	"sort"
	"strconv"
	"strings"

	"github.com/fatih/color"
)

const (
	// CYCLE_PLACEHOLDER replaces a container that references itself.
	CYCLE_PLACEHOLDER = "[Circular]"
	// NULL_TOKEN is rendered for nil values of any shape.
	NULL_TOKEN = "null"

	_RENDER_INDENT = "  "
)

// tokenPalette maps token categories to color functions. Nil functions
// leave tokens unwrapped, which is the whole of the plain palette.
type tokenPalette struct {
	key     ColorFunc
	str     ColorFunc
	num     ColorFunc
	boolean ColorFunc
	null    ColorFunc
	punct   ColorFunc
}

var plainPalette = tokenPalette{}

var highlightPalette = tokenPalette{
	key:     Colorize(color.FgCyan),
	str:     Colorize(color.FgGreen),
	num:     Colorize(color.FgYellow),
	boolean: Colorize(color.FgMagenta),
	null:    Colorize(color.FgHiBlack),
	punct:   Colorize(color.FgWhite),
}

func (p *tokenPalette) wrap(f ColorFunc, s string) string {
	if f == nil {
		return s
	}
	return f(s)
}

// renderValue converts one log argument to display text. Strings are
// returned verbatim; other values are pretty-printed, colorized when
// highlight is set.
func renderValue(v any, highlight bool) string {
	if s, ok := v.(string); ok {
		return s
	}
	pal := &plainPalette
	if highlight {
		pal = &highlightPalette
	}
	var b strings.Builder
	writeValue(&b, reflect.ValueOf(v), pal, 0, map[uintptr]bool{})
	return b.String()
}

// writeValue renders a single value at the given indent depth. visited
// holds the container pointers on the current recursion path; entries are
// removed on the way back up so shared (non-cyclic) substructures still
// render in full.
func writeValue(b *strings.Builder, v reflect.Value, pal *tokenPalette, depth int, visited map[uintptr]bool) {
	if !v.IsValid() {
		b.WriteString(pal.wrap(pal.null, NULL_TOKEN))
		return
	}
	switch v.Kind() {
	case reflect.Interface:
		if v.IsNil() {
			b.WriteString(pal.wrap(pal.null, NULL_TOKEN))
			return
		}
		writeValue(b, v.Elem(), pal, depth, visited)
	case reflect.Pointer:
		if v.IsNil() {
			b.WriteString(pal.wrap(pal.null, NULL_TOKEN))
			return
		}
		ptr := v.Pointer()
		if visited[ptr] {
			b.WriteString(pal.wrap(pal.punct, CYCLE_PLACEHOLDER))
			return
		}
		visited[ptr] = true
		writeValue(b, v.Elem(), pal, depth, visited)
		delete(visited, ptr)
	case reflect.String:
		// Nested strings are values, not prose: quoted and colorized.
		b.WriteString(pal.wrap(pal.str, strconv.Quote(v.String())))
	case reflect.Bool:
		b.WriteString(pal.wrap(pal.boolean, strconv.FormatBool(v.Bool())))
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64, reflect.Complex64, reflect.Complex128:
		// Host-language default conversion, no custom precision rules.
		b.WriteString(pal.wrap(pal.num, fmt.Sprint(v.Interface())))
	case reflect.Slice, reflect.Array:
		writeSeq(b, v, pal, depth, visited)
	case reflect.Map:
		writeMap(b, v, pal, depth, visited)
	default:
		// Structs, funcs, channels and other shapes render opaquely via the
		// host default conversion, treated as a string-ish token.
		b.WriteString(pal.wrap(pal.str, fmt.Sprint(v.Interface())))
	}
}

// writeSeq renders a slice or array across multiple indented lines.
func writeSeq(b *strings.Builder, v reflect.Value, pal *tokenPalette, depth int, visited map[uintptr]bool) {
	if v.Kind() == reflect.Slice {
		if v.IsNil() {
			b.WriteString(pal.wrap(pal.null, NULL_TOKEN))
			return
		}
		ptr := v.Pointer()
		if visited[ptr] {
			b.WriteString(pal.wrap(pal.punct, CYCLE_PLACEHOLDER))
			return
		}
		visited[ptr] = true
		defer delete(visited, ptr)
	}
	n := v.Len()
	if n == 0 {
		b.WriteString(pal.wrap(pal.punct, "[]"))
		return
	}
	b.WriteString(pal.wrap(pal.punct, "["))
	for i := 0; i < n; i++ {
		b.WriteString("\n")
		b.WriteString(strings.Repeat(_RENDER_INDENT, depth+1))
		writeValue(b, v.Index(i), pal, depth+1, visited)
		if i != n-1 {
			b.WriteString(pal.wrap(pal.punct, ","))
		}
	}
	b.WriteString("\n")
	b.WriteString(strings.Repeat(_RENDER_INDENT, depth))
	b.WriteString(pal.wrap(pal.punct, "]"))
}

// writeMap renders a mapping across multiple indented lines. Go maps carry
// no insertion order, so keys are sorted by their rendered form to keep the
// output deterministic.
func writeMap(b *strings.Builder, v reflect.Value, pal *tokenPalette, depth int, visited map[uintptr]bool) {
	if v.IsNil() {
		b.WriteString(pal.wrap(pal.null, NULL_TOKEN))
		return
	}
	ptr := v.Pointer()
	if visited[ptr] {
		b.WriteString(pal.wrap(pal.punct, CYCLE_PLACEHOLDER))
		return
	}
	visited[ptr] = true
	defer delete(visited, ptr)

	if v.Len() == 0 {
		b.WriteString(pal.wrap(pal.punct, "{}"))
		return
	}
	keys := v.MapKeys()
	names := make([]string, len(keys))
	byName := make(map[string]reflect.Value, len(keys))
	for i, k := range keys {
		names[i] = fmt.Sprint(k.Interface())
		byName[names[i]] = k
	}
	sort.Strings(names)

	b.WriteString(pal.wrap(pal.punct, "{"))
	for i, name := range names {
		b.WriteString("\n")
		b.WriteString(strings.Repeat(_RENDER_INDENT, depth+1))
		b.WriteString(pal.wrap(pal.key, name))
		b.WriteString(pal.wrap(pal.punct, ":"))
		b.WriteString(" ")
		writeValue(b, v.MapIndex(byName[name]), pal, depth+1, visited)
		if i != len(names)-1 {
			b.WriteString(pal.wrap(pal.punct, ","))
		}
	}
	b.WriteString("\n")
	b.WriteString(strings.Repeat(_RENDER_INDENT, depth))
	b.WriteString(pal.wrap(pal.punct, "}"))
}
