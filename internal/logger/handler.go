package logger

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"sync"

	"github.com/fatih/color"
)

// PrettyHandler is a slog.Handler for human-friendly CLI output
type PrettyHandler struct {
	opts   *slog.HandlerOptions
	mu     *sync.Mutex
	w      io.Writer
	attrs  []string
	prefix string
}

func NewPrettyHandler(w io.Writer, opts *slog.HandlerOptions) *PrettyHandler {
	if opts == nil {
		opts = &slog.HandlerOptions{}
	}
	return &PrettyHandler{
		opts: opts,
		mu:   &sync.Mutex{},
		w:    w,
	}
}

func (h *PrettyHandler) Enabled(_ context.Context, level slog.Level) bool {
	minLevel := slog.LevelWarn
	if h.opts.Level != nil {
		minLevel = h.opts.Level.Level()
	}
	return level >= minLevel
}

func (h *PrettyHandler) Handle(_ context.Context, r slog.Record) error {
	var buf strings.Builder

	buf.WriteString(formatLevel(r.Level))
	buf.WriteString(" ")
	buf.WriteString(r.Message)

	attrs := make([]string, 0, r.NumAttrs()+len(h.attrs))
	attrs = append(attrs, h.attrs...)
	r.Attrs(func(a slog.Attr) bool {
		attrs = append(attrs, formatAttr(h.prefix, a))
		return true
	})

	if len(attrs) > 0 {
		buf.WriteString(" ")
		buf.WriteString(strings.Join(attrs, " "))
	}
	buf.WriteString("\n")

	h.mu.Lock()
	defer h.mu.Unlock()
	_, err := io.WriteString(h.w, buf.String())
	return err
}

func (h *PrettyHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	formatted := make([]string, len(h.attrs), len(h.attrs)+len(attrs))
	copy(formatted, h.attrs)
	for _, a := range attrs {
		formatted = append(formatted, formatAttr(h.prefix, a))
	}

	return &PrettyHandler{
		opts:   h.opts,
		mu:     h.mu,
		w:      h.w,
		attrs:  formatted,
		prefix: h.prefix,
	}
}

func (h *PrettyHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	return &PrettyHandler{
		opts:   h.opts,
		mu:     h.mu,
		w:      h.w,
		attrs:  h.attrs,
		prefix: h.prefix + name + ".",
	}
}

func formatLevel(level slog.Level) string {
	switch level {
	case slog.LevelDebug:
		return color.HiBlackString("[DEBUG]")
	case slog.LevelInfo:
		return color.CyanString("[INFO] ")
	case slog.LevelWarn:
		return color.YellowString("[WARN] ")
	case slog.LevelError:
		return color.RedString("[ERROR]")
	default:
		return fmt.Sprintf("[%s]", level.String())
	}
}

func formatAttr(prefix string, a slog.Attr) string {
	key := prefix + a.Key
	val := a.Value.String()

	switch a.Key {
	case "error", "err":
		return color.RedString("%s=%s", key, val)
	case "url", "path":
		return color.BlueString("%s=%s", key, val)
	case "entries", "issues", "pages", "count":
		return color.GreenString("%s=%s", key, val)
	default:
		return color.HiBlackString("%s=%s", key, val)
	}
}
