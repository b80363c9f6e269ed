package glint

/*
Capability probe: terminal and environment inspection kept behind the
CapabilityProbe interface so tests can fake it. The shipped envProbe
snapshots the decoration-related variables (NO_COLOR, FORCE_COLOR, TERM,
CI) through cleanenv at construction, detects a terminal on the sink file
descriptor with go-isatty, and answers the development-mode query live from
the process environment.
*/

import (
	"io"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/mattn/go-isatty"
)

// probeEnv is the environment snapshot read by cleanenv at probe
// construction.
type probeEnv struct {
	NoColor    string `env:"NO_COLOR"`
	ForceColor string `env:"FORCE_COLOR"`
	Term       string `env:"TERM"`
	CI         string `env:"CI"`
}

type envProbe struct {
	env   probeEnv
	isTTY bool
}

// NewEnvProbe builds the default probe for the given sink. A nil sink or a
// sink that is not an *os.File counts as a non-terminal.
func NewEnvProbe(out io.Writer) CapabilityProbe {
	p := &envProbe{}
	// Plain string fields over the process environment cannot fail.
	_ = cleanenv.ReadEnv(&p.env)
	if f, ok := out.(*os.File); ok {
		fd := f.Fd()
		p.isTTY = isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
	}
	return p
}

// SupportsColor honors the NO_COLOR convention first, then FORCE_COLOR,
// then falls back to terminal detection.
func (p *envProbe) SupportsColor() bool {
	if p.env.NoColor != "" {
		return false
	}
	if p.env.ForceColor != "" {
		return true
	}
	if p.env.Term == "dumb" {
		return false
	}
	return p.isTTY
}

// SupportsEmoji assumes CI collectors and bare consoles cannot render
// emoji glyphs; everything else with a terminal can.
func (p *envProbe) SupportsEmoji() bool {
	if p.env.CI != "" {
		return false
	}
	if p.env.Term == "dumb" || p.env.Term == "linux" {
		return false
	}
	return p.isTTY
}

// IsDevelopmentMode answers live, unlike the two capability queries: the
// process is in development unless GLINT_ENV (or GO_ENV when GLINT_ENV is
// empty) says "production".
func (p *envProbe) IsDevelopmentMode() bool {
	mode := os.Getenv(ENV_MODE)
	if mode == "" {
		mode = os.Getenv(ENV_MODE_FALLBACK)
	}
	return mode != MODE_PRODUCTION
}
