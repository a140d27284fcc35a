// Package logger implements ports.Logger on log/slog.
package logger

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/SalimYassine/Minishell/internal/ui/output"
	"github.com/SalimYassine/Minishell/internal/ui/style"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// jobKeys locate a record among the shell's jobs. They are rendered as a tag in
// front of the message, in this order.
var jobKeys = []string{"pid", "stage", "command"}

// PrettyHandler is a slog.Handler for the terminal. A record reads
//
//	✗ [pid 42 stage 1] message key=value
//
// with the job attributes gathered in the tag and every other attribute after
// the message.
type PrettyHandler struct {
	out   *termenv.Output
	level slog.Leveler
	attrs []slog.Attr
	group string
}

// NewPrettyHandler creates a PrettyHandler writing to w, stderr when nil.
func NewPrettyHandler(w io.Writer, opts *slog.HandlerOptions) *PrettyHandler {
	if w == nil {
		w = os.Stderr
	}

	var level slog.Leveler = slog.LevelInfo
	if opts != nil && opts.Level != nil {
		level = opts.Level
	}

	return &PrettyHandler{out: output.New(w), level: level}
}

// Enabled reports whether the handler handles records at the given level.
func (h *PrettyHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level.Level()
}

// Handle writes one line per record; multi-line messages are written as is.
//
//nolint:gocritic // slog.Handler interface requires slog.Record by value
func (h *PrettyHandler) Handle(_ context.Context, r slog.Record) error {
	attrs := make([]slog.Attr, 0, len(h.attrs)+r.NumAttrs())
	attrs = append(attrs, h.attrs...)
	r.Attrs(func(attr slog.Attr) bool {
		attrs = append(attrs, h.qualify(attr))
		return true
	})

	tag, rest := splitJobAttrs(attrs)
	icon, color := levelStyle(r.Level)

	var b strings.Builder
	if icon != "" {
		b.WriteString(icon + " ")
	}
	if tag != "" {
		b.WriteString(tag + " ")
	}
	b.WriteString(r.Message)
	for _, attr := range rest {
		b.WriteString(" " + attr.Key + "=" + attr.Value.String())
	}

	styled := h.out.String(b.String()).Foreground(h.out.Color(string(color)))
	_, err := h.out.WriteString(styled.String() + "\n")
	return err
}

// WithAttrs returns a Handler that adds attrs to every record, under the current group.
func (h *PrettyHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	merged := make([]slog.Attr, 0, len(h.attrs)+len(attrs))
	merged = append(merged, h.attrs...)
	for _, attr := range attrs {
		merged = append(merged, h.qualify(attr))
	}

	return &PrettyHandler{out: h.out, level: h.level, attrs: merged, group: h.group}
}

// WithGroup returns a Handler that prefixes later attribute keys with name.
func (h *PrettyHandler) WithGroup(name string) slog.Handler {
	group := name
	if h.group != "" {
		group = h.group + "." + name
	}
	return &PrettyHandler{out: h.out, level: h.level, attrs: h.attrs, group: group}
}

func (h *PrettyHandler) qualify(attr slog.Attr) slog.Attr {
	if h.group == "" {
		return attr
	}
	return slog.Attr{Key: h.group + "." + attr.Key, Value: attr.Value}
}

// splitJobAttrs renders the job attributes as a tag such as "[pid 42 stage 1]"
// and returns the remaining attributes in their original order. A grouped key
// is never a job attribute.
func splitJobAttrs(attrs []slog.Attr) (string, []slog.Attr) {
	job := make(map[string]string, len(jobKeys))
	rest := make([]slog.Attr, 0, len(attrs))

	for _, attr := range attrs {
		if isJobKey(attr.Key) {
			job[attr.Key] = attr.Value.String()
			continue
		}
		rest = append(rest, attr)
	}

	parts := make([]string, 0, len(job))
	for _, key := range jobKeys {
		if v, ok := job[key]; ok {
			parts = append(parts, fmt.Sprintf("%s %s", key, v))
		}
	}
	if len(parts) == 0 {
		return "", rest
	}
	return "[" + strings.Join(parts, " ") + "]", rest
}

func isJobKey(key string) bool {
	for _, k := range jobKeys {
		if k == key {
			return true
		}
	}
	return false
}

func levelStyle(level slog.Level) (string, lipgloss.Color) {
	switch {
	case level >= slog.LevelError:
		return style.Cross, style.Red
	case level >= slog.LevelWarn:
		return style.Warning, style.Yellow
	default:
		return "", style.Slate
	}
}
