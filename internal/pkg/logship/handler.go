package logship

import (
	"context"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"hotel-platform/internal/domain/logevent"
)

// ComponentKey tags records emitted by the delivery path itself; records whose
// component is one of quietComponents never reach the shipper.
const ComponentKey = "component"

var quietComponents = map[string]struct{}{
	"queue": {},
	"kafka": {},
}

// Benign startup notices that are not worth shipping.
var noisyMessages = []string{
	"bcrypt version",
}

// Sink accepts payloads without blocking. Shipper is the production Sink.
type Sink interface {
	Enqueue(p logevent.Payload) bool
}

// Handler writes every record to the wrapped handler and forwards a copy to
// the sink.
type Handler struct {
	inner   slog.Handler
	sink    Sink
	service string
	attrs   []slog.Attr
	prefix  string
	quiet   bool
}

func NewHandler(inner slog.Handler, sink Sink, serviceName string) *Handler {
	return &Handler{inner: inner, sink: sink, service: serviceName}
}

func (h *Handler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.inner.Enabled(ctx, level)
}

func (h *Handler) Handle(ctx context.Context, r slog.Record) error {
	err := h.inner.Handle(ctx, r)

	if h.quiet || isNoise(r) {
		return err
	}

	ts := r.Time
	if ts.IsZero() {
		ts = time.Now()
	}
	h.sink.Enqueue(logevent.NewPayload(logevent.FromSlog(r.Level), h.render(r), h.service, ts))
	return err
}

func (h *Handler) WithAttrs(attrs []slog.Attr) slog.Handler {
	if len(attrs) == 0 {
		return h
	}
	clone := h.clone()
	clone.inner = h.inner.WithAttrs(attrs)
	for _, a := range attrs {
		if h.prefix == "" && isQuietComponent(a) {
			clone.quiet = true
		}
		clone.attrs = append(clone.attrs, prefixed(h.prefix, a))
	}
	return clone
}

func (h *Handler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	clone := h.clone()
	clone.inner = h.inner.WithGroup(name)
	clone.prefix = h.prefix + name + "."
	return clone
}

func (h *Handler) clone() *Handler {
	c := *h
	c.attrs = append([]slog.Attr(nil), h.attrs...)
	return &c
}

// render appends bound and record attributes to the message as key=value pairs.
func (h *Handler) render(r slog.Record) string {
	var b strings.Builder
	b.WriteString(r.Message)
	for _, a := range h.attrs {
		writeAttr(&b, "", a)
	}
	r.Attrs(func(a slog.Attr) bool {
		writeAttr(&b, h.prefix, a)
		return true
	})
	return b.String()
}

func writeAttr(b *strings.Builder, prefix string, a slog.Attr) {
	a.Value = a.Value.Resolve()
	if a.Equal(slog.Attr{}) {
		return
	}
	if a.Value.Kind() == slog.KindGroup {
		next := prefix
		if a.Key != "" {
			next = prefix + a.Key + "."
		}
		for _, ga := range a.Value.Group() {
			writeAttr(b, next, ga)
		}
		return
	}
	b.WriteByte(' ')
	b.WriteString(prefix)
	b.WriteString(a.Key)
	b.WriteByte('=')
	b.WriteString(formatValue(a.Value))
}

func formatValue(v slog.Value) string {
	var s string
	if v.Kind() == slog.KindTime {
		s = v.Time().UTC().Format(time.RFC3339Nano)
	} else {
		s = v.String()
	}
	if s == "" || strings.ContainsAny(s, " =\"\n\t") {
		return strconv.Quote(s)
	}
	return s
}

func prefixed(prefix string, a slog.Attr) slog.Attr {
	if prefix == "" {
		return a
	}
	a.Key = prefix + a.Key
	return a
}

func isNoise(r slog.Record) bool {
	for _, m := range noisyMessages {
		if strings.Contains(r.Message, m) {
			return true
		}
	}
	noise := false
	r.Attrs(func(a slog.Attr) bool {
		if isQuietComponent(a) {
			noise = true
			return false
		}
		return true
	})
	return noise
}

func isQuietComponent(a slog.Attr) bool {
	if a.Key != ComponentKey {
		return false
	}
	_, ok := quietComponents[a.Value.Resolve().String()]
	return ok
}
