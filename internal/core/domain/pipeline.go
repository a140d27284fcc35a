package domain

import (
	"strings"

	"go.trai.ch/zerr"
)

// Command is one program invocation: element 0 names the executable, the rest are its arguments.
type Command []string

// Name returns the executable or built-in name.
func (c Command) Name() string {
	if len(c) == 0 {
		return ""
	}
	return c[0]
}

// Args returns the arguments following the name.
func (c Command) Args() []string {
	if len(c) < 2 {
		return nil
	}
	return c[1:]
}

// String renders the command as it would be typed.
func (c Command) String() string {
	return strings.Join(c, " ")
}

// Pipeline is a parsed command line: commands connected by pipes, with optional
// redirections that apply to the first stage (Input) and the last stage (Output).
type Pipeline struct {
	// Seq holds the stages in order.
	Seq []Command
	// Input is the file that replaces stdin of stage 0. Empty means none.
	Input string
	// Output is the file that replaces stdout of the last stage. Empty means none.
	Output string
	// Background requests a non-blocking execution.
	Background bool
	// Err is the parse error, if any. A pipeline with Err set is never executed.
	Err string
}

// Stages returns the number of commands in the pipeline.
func (p *Pipeline) Stages() int {
	return len(p.Seq)
}

// Empty reports whether the line contained no command at all.
func (p *Pipeline) Empty() bool {
	return p.Err == "" && len(p.Seq) == 0
}

// Validate checks that the pipeline may be executed.
func (p *Pipeline) Validate() error {
	if p.Err != "" {
		return zerr.Wrap(ErrParse, p.Err)
	}
	if len(p.Seq) == 0 {
		return ErrEmptyPipeline
	}
	for i, cmd := range p.Seq {
		if len(cmd) == 0 || cmd[0] == "" {
			return zerr.With(zerr.Wrap(ErrEmptyCommand, "invalid stage"), "stage", i)
		}
	}
	return nil
}

// String renders the pipeline back into shell syntax.
func (p *Pipeline) String() string {
	parts := make([]string, 0, len(p.Seq))
	for _, cmd := range p.Seq {
		parts = append(parts, cmd.String())
	}
	s := strings.Join(parts, " | ")
	if p.Input != "" {
		s += " < " + p.Input
	}
	if p.Output != "" {
		s += " > " + p.Output
	}
	if p.Background {
		s += " &"
	}
	return s
}
