package glint

/*
Message formatter: joins the already-rendered arguments into the message
body, prefixes the optional emoji marker and the upper-case level tag, and
applies the level's regular color to the tag and the dim variant to the
body.
*/

import "strings"

// formatMessage builds the final output line (without trailing newline).
// With colors disabled the result is "{tag} {body}" unmodified. A missing
// color function degrades to the unwrapped segment; the merge invariant
// makes that unreachable for themes built through MergeTheme.
func formatMessage(level LogLevel, renderedArgs []string, theme *Theme, enableEmojis, enableColors bool) string {
	lvl := normLevel(level)
	body := strings.Join(renderedArgs, " ")
	tag := "[" + LevelUpperNames[lvl] + "]"
	if enableEmojis && theme.emojis[lvl] != "" {
		tag = theme.emojis[lvl] + " " + tag
	}
	if enableColors {
		if f := theme.colors[lvl]; f != nil {
			tag = f(tag)
		}
		if f := theme.dims[lvl]; f != nil && body != "" {
			body = f(body)
		}
	}
	if body == "" {
		return tag
	}
	return tag + " " + body
}
