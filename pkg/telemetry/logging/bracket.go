package logging

import (
	"context"
	"io"
	"log/slog"
	"strconv"
	"strings"
	"sync"
	"unicode"
)

// BracketHandler is a slog.Handler producing the run-log line format:
//
//	[2006-01-02 15:04:05] [LEVEL] message key=value key=value
//
// Attribute values containing spaces, equals signs, or quotes are quoted.
// Grouped attributes are flattened with dotted keys.
type BracketHandler struct {
	opts   slog.HandlerOptions
	mu     *sync.Mutex
	w      io.Writer
	attrs  []slog.Attr
	groups []string
}

// NewBracketHandler creates a BracketHandler writing to w. Only the Level
// option is honored; nil opts defaults to info.
func NewBracketHandler(w io.Writer, opts *slog.HandlerOptions) *BracketHandler {
	h := &BracketHandler{
		w:  w,
		mu: &sync.Mutex{},
	}
	if opts != nil {
		h.opts = *opts
	}
	if h.opts.Level == nil {
		h.opts.Level = slog.LevelInfo
	}
	return h
}

// Enabled reports whether records at the given level are emitted.
func (h *BracketHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.opts.Level.Level()
}

// Handle formats and writes a single record.
func (h *BracketHandler) Handle(_ context.Context, r slog.Record) error {
	buf := make([]byte, 0, 256)

	buf = append(buf, '[')
	buf = r.Time.AppendFormat(buf, "2006-01-02 15:04:05")
	buf = append(buf, "] ["...)
	buf = append(buf, r.Level.String()...)
	buf = append(buf, "] "...)
	buf = append(buf, r.Message...)

	for _, a := range h.attrs {
		buf = appendAttr(buf, a, "")
	}
	prefix := strings.Join(h.groups, ".")
	r.Attrs(func(a slog.Attr) bool {
		buf = appendAttr(buf, a, prefix)
		return true
	})

	buf = append(buf, '\n')

	h.mu.Lock()
	defer h.mu.Unlock()
	_, err := h.w.Write(buf)
	return err
}

// WithAttrs returns a handler whose records carry the given attributes.
func (h *BracketHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	if len(attrs) == 0 {
		return h
	}
	h2 := h.clone()
	prefix := strings.Join(h.groups, ".")
	for _, a := range attrs {
		if prefix != "" {
			a.Key = prefix + "." + a.Key
		}
		h2.attrs = append(h2.attrs, a)
	}
	return h2
}

// WithGroup returns a handler that qualifies subsequent attribute keys with
// the group name.
func (h *BracketHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	h2 := h.clone()
	h2.groups = append(h2.groups, name)
	return h2
}

// clone copies the handler; the mutex and writer are shared so all clones
// serialize writes to the same destination.
func (h *BracketHandler) clone() *BracketHandler {
	c := *h
	c.attrs = append([]slog.Attr(nil), h.attrs...)
	c.groups = append([]string(nil), h.groups...)
	return &c
}

// appendAttr appends " key=value" to buf, flattening groups with dotted
// keys. Empty attributes are dropped per the slog handler contract.
func appendAttr(buf []byte, a slog.Attr, prefix string) []byte {
	a.Value = a.Value.Resolve()
	if a.Equal(slog.Attr{}) {
		return buf
	}

	key := a.Key
	if prefix != "" {
		key = prefix + "." + key
	}

	if a.Value.Kind() == slog.KindGroup {
		for _, ga := range a.Value.Group() {
			buf = appendAttr(buf, ga, key)
		}
		return buf
	}

	buf = append(buf, ' ')
	buf = append(buf, key...)
	buf = append(buf, '=')

	val := a.Value.String()
	if needsQuoting(val) {
		val = strconv.Quote(val)
	}
	buf = append(buf, val...)
	return buf
}

// needsQuoting reports whether a value must be quoted to keep the line
// parseable.
func needsQuoting(s string) bool {
	if s == "" {
		return true
	}
	for _, r := range s {
		if r == ' ' || r == '=' || r == '"' || !unicode.IsPrint(r) {
			return true
		}
	}
	return false
}
