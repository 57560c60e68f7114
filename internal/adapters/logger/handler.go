package logger

import (
	"context"
	"io"
	"log/slog"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"go.trai.ch/xcbatch/internal/ui/output"
	"go.trai.ch/xcbatch/internal/ui/style"
)

// PrettyHandler is a slog.Handler producing colored, human-readable lines: an icon for
// warnings and errors, the message, then key=value attributes.
type PrettyHandler struct {
	out   *termenv.Output
	level slog.Leveler

	// attrs are rendered once when added; prefix is the dotted group path for record attrs.
	attrs  []string
	prefix string
}

// NewPrettyHandler creates a PrettyHandler writing to w.
func NewPrettyHandler(w io.Writer, opts *slog.HandlerOptions) *PrettyHandler {
	var level slog.Leveler = slog.LevelInfo
	if opts != nil && opts.Level != nil {
		level = opts.Level
	}

	return &PrettyHandler{
		out:   output.New(w),
		level: level,
	}
}

// Enabled reports whether the handler handles records at the given level.
func (h *PrettyHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level.Level()
}

// Handle formats and writes the record.
//
//nolint:gocritic // slog.Handler interface requires slog.Record by value
func (h *PrettyHandler) Handle(_ context.Context, r slog.Record) error {
	icon, color := levelStyle(r.Level)

	var b strings.Builder
	if icon != "" {
		b.WriteString(icon)
		b.WriteByte(' ')
	}
	b.WriteString(r.Message)

	parts := append([]string(nil), h.attrs...)
	r.Attrs(func(attr slog.Attr) bool {
		parts = appendAttr(parts, h.prefix, attr)
		return true
	})
	for _, p := range parts {
		b.WriteByte(' ')
		b.WriteString(p)
	}

	line := h.out.String(b.String()).Foreground(h.out.Color(string(color))).String()
	_, err := h.out.WriteString(line + "\n")
	return err
}

// WithAttrs returns a handler that appends attrs, qualified by the current group, to every record.
func (h *PrettyHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	if len(attrs) == 0 {
		return h
	}

	next := *h
	next.attrs = append([]string(nil), h.attrs...)
	for _, attr := range attrs {
		next.attrs = appendAttr(next.attrs, h.prefix, attr)
	}
	return &next
}

// WithGroup returns a handler that qualifies later attribute keys with name.
func (h *PrettyHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}

	next := *h
	next.prefix = h.prefix + name + "."
	return &next
}

// levelStyle maps a level to its icon and color.
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

// appendAttr renders attr as key=value pairs. Group values are flattened into dotted keys
// and empty attributes are dropped.
func appendAttr(parts []string, prefix string, attr slog.Attr) []string {
	attr.Value = attr.Value.Resolve()
	if attr.Equal(slog.Attr{}) {
		return parts
	}

	if attr.Value.Kind() == slog.KindGroup {
		groupPrefix := prefix
		if attr.Key != "" {
			groupPrefix += attr.Key + "."
		}
		for _, member := range attr.Value.Group() {
			parts = appendAttr(parts, groupPrefix, member)
		}
		return parts
	}

	return append(parts, prefix+attr.Key+"="+attr.Value.String())
}
