package ui

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
)

// TUILogHandler is a slog.Handler that forwards log records to a Bubble Tea
// program via Send(). Only records at or above the configured level are sent.
// When a tee handler is set, every record it accepts is also passed to it.
type TUILogHandler struct {
	target sender     // tea.Program (Send-capable)
	level  slog.Level // minimum level to forward
	tee    slog.Handler
	attrs  []slog.Attr
	group  string
}

// LogOption is a functional option for configuring a TUILogHandler.
type LogOption func(*TUILogHandler)

// WithTee also hands every record to h, typically a file handler.
func WithTee(h slog.Handler) LogOption {
	return func(t *TUILogHandler) {
		t.tee = h
	}
}

// NewTUILogHandler creates a handler that sends slogMsg to the given sender.
func NewTUILogHandler(target sender, level slog.Level, opts ...LogOption) *TUILogHandler {
	h := &TUILogHandler{
		target: target,
		level:  level,
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Enabled reports whether the handler handles records at the given level.
func (h *TUILogHandler) Enabled(ctx context.Context, level slog.Level) bool {
	if level >= h.level {
		return true
	}
	return h.tee != nil && h.tee.Enabled(ctx, level)
}

// Handle formats the record and sends it to the TUI as a slogMsg.
func (h *TUILogHandler) Handle(ctx context.Context, r slog.Record) error {
	if h.tee != nil && h.tee.Enabled(ctx, r.Level) {
		if err := h.tee.Handle(ctx, r); err != nil {
			return err
		}
	}
	if r.Level < h.level {
		return nil
	}

	var b strings.Builder
	b.WriteString(r.Message)

	// Append handler-level attrs
	for _, a := range h.attrs {
		fmt.Fprintf(&b, " %s=%q", h.qualifiedKey(a.Key), a.Value)
	}

	// Append record-level attrs
	r.Attrs(func(a slog.Attr) bool {
		fmt.Fprintf(&b, " %s=%q", h.qualifiedKey(a.Key), a.Value)
		return true
	})

	h.target.Send(slogMsg{
		level:   r.Level,
		message: b.String(),
	})
	return nil
}

// WithAttrs returns a new handler with the given attributes.
func (h *TUILogHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	newAttrs := make([]slog.Attr, len(h.attrs)+len(attrs))
	copy(newAttrs, h.attrs)
	copy(newAttrs[len(h.attrs):], attrs)
	c := h.clone()
	c.attrs = newAttrs
	if h.tee != nil {
		c.tee = h.tee.WithAttrs(attrs)
	}
	return c
}

// WithGroup returns a new handler with the given group name.
func (h *TUILogHandler) WithGroup(name string) slog.Handler {
	c := h.clone()
	c.group = name
	if h.group != "" {
		c.group = h.group + "." + name
	}
	if h.tee != nil {
		c.tee = h.tee.WithGroup(name)
	}
	return c
}

func (h *TUILogHandler) clone() *TUILogHandler {
	return &TUILogHandler{
		target: h.target,
		level:  h.level,
		tee:    h.tee,
		attrs:  h.attrs,
		group:  h.group,
	}
}

// qualifiedKey prepends the group prefix to a key.
func (h *TUILogHandler) qualifiedKey(key string) string {
	if h.group == "" {
		return key
	}
	return h.group + "." + key
}
