// Package slogutil provides the slog handler and helpers for mcshader logging.
package slogutil

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"sync"
	"time"
)

// Handler writes records as single lines:
// TIMESTAMP [level] Message | key=value key=value
// Groups flatten into dotted key prefixes instead of nesting.
type Handler struct {
	out    io.Writer
	level  slog.Leveler
	prefix string      // accumulated group path, "" or "a.b."
	preset []slog.Attr // attrs bound via WithAttrs, keys already prefixed
	mu     *sync.Mutex
}

// NewHandler creates a new log handler.
func NewHandler(w io.Writer, opts *slog.HandlerOptions) *Handler {
	h := &Handler{out: w, level: slog.LevelInfo, mu: &sync.Mutex{}}
	if opts != nil && opts.Level != nil {
		h.level = opts.Level
	}
	return h
}

// Enabled reports whether the handler handles records at the given level.
func (h *Handler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level.Level()
}

// Handle renders the record into a single line and writes it. The line is
// assembled outside the lock; only the write is serialized.
func (h *Handler) Handle(_ context.Context, r slog.Record) error {
	line := make([]byte, 0, 128)
	line = r.Time.UTC().AppendFormat(line, time.RFC3339)
	line = append(line, " ["...)
	line = append(line, levelString(r.Level)...)
	line = append(line, "] "...)
	line = append(line, r.Message...)

	sep := " |"
	for _, a := range h.preset {
		line, sep = appendAttr(line, sep, a)
	}
	r.Attrs(func(a slog.Attr) bool {
		line, sep = appendAttr(line, sep, h.qualify(a))
		return true
	})
	line = append(line, '\n')

	h.mu.Lock()
	defer h.mu.Unlock()
	_, err := h.out.Write(line)
	return err
}

// WithAttrs returns a new handler with the given attributes added.
func (h *Handler) WithAttrs(attrs []slog.Attr) slog.Handler {
	if len(attrs) == 0 {
		return h
	}
	nh := h.clone()
	for _, a := range attrs {
		nh.preset = append(nh.preset, nh.qualify(a))
	}
	return nh
}

// WithGroup returns a new handler with the given group name added.
func (h *Handler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	nh := h.clone()
	nh.prefix = h.prefix + name + "."
	return nh
}

// clone copies the handler, sharing the writer and its lock.
func (h *Handler) clone() *Handler {
	return &Handler{
		out:    h.out,
		level:  h.level,
		prefix: h.prefix,
		preset: append([]slog.Attr(nil), h.preset...),
		mu:     h.mu,
	}
}

// qualify prepends the open group path to an attribute key.
func (h *Handler) qualify(a slog.Attr) slog.Attr {
	if h.prefix == "" {
		return a
	}
	return slog.Attr{Key: h.prefix + a.Key, Value: a.Value}
}

// appendAttr writes " | key=value" for the first attribute and " key=value"
// for the rest; sep carries the remaining separator between calls.
func appendAttr(line []byte, sep string, a slog.Attr) ([]byte, string) {
	if a.Key == "" {
		return line, sep
	}
	line = append(line, sep...)
	line = append(line, ' ')
	line = append(line, a.Key...)
	line = append(line, '=')
	line = appendValue(line, a.Value.Resolve())
	return line, ""
}

// appendValue renders a slog.Value without intermediate strings for the
// common kinds.
func appendValue(line []byte, v slog.Value) []byte {
	switch v.Kind() {
	case slog.KindString:
		return append(line, v.String()...)
	case slog.KindInt64:
		return strconv.AppendInt(line, v.Int64(), 10)
	case slog.KindUint64:
		return strconv.AppendUint(line, v.Uint64(), 10)
	case slog.KindBool:
		return strconv.AppendBool(line, v.Bool())
	case slog.KindDuration:
		return append(line, v.Duration().String()...)
	case slog.KindTime:
		return v.Time().UTC().AppendFormat(line, time.RFC3339)
	default:
		return fmt.Append(line, v.Any())
	}
}

// levelString returns a lowercase string for the log level.
func levelString(level slog.Level) string {
	switch {
	case level < slog.LevelInfo:
		return "debug"
	case level < slog.LevelWarn:
		return "info"
	case level < slog.LevelError:
		return "warn"
	default:
		return "error"
	}
}
