package logger

import (
	"context"
	"errors"
	log "log/slog"
)

// TeeHandler 将日志分发到多个 Handler，每个 Handler 按自己的级别过滤
type TeeHandler struct {
	handlers []log.Handler
}

func NewTeeHandler(handlers ...log.Handler) *TeeHandler {
	return &TeeHandler{handlers: handlers}
}

// Enabled 任一 Handler 接受即可
func (s *TeeHandler) Enabled(ctx context.Context, level log.Level) bool {
	for _, h := range s.handlers {
		if h.Enabled(ctx, level) {
			return true
		}
	}
	return false
}

// Handle 单个 Handler 失败不影响其它 Handler
func (s *TeeHandler) Handle(ctx context.Context, r log.Record) error {
	var errs []error
	for _, h := range s.handlers {
		if !h.Enabled(ctx, r.Level) {
			continue
		}
		if err := h.Handle(ctx, r.Clone()); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func (s *TeeHandler) WithAttrs(attrs []log.Attr) log.Handler {
	return s.each(func(h log.Handler) log.Handler { return h.WithAttrs(attrs) })
}

func (s *TeeHandler) WithGroup(name string) log.Handler {
	return s.each(func(h log.Handler) log.Handler { return h.WithGroup(name) })
}

func (s *TeeHandler) each(fn func(log.Handler) log.Handler) *TeeHandler {
	next := make([]log.Handler, len(s.handlers))
	for i, h := range s.handlers {
		next[i] = fn(h)
	}
	return &TeeHandler{handlers: next}
}

// RemoteFilterHandler 只放行带 trace_id 的记录，trace_id 可来自记录本身或 With 预置的属性
type RemoteFilterHandler struct {
	next   log.Handler
	traced bool
}

func NewRemoteFilterHandler(next log.Handler) *RemoteFilterHandler {
	return &RemoteFilterHandler{next: next}
}

func (s *RemoteFilterHandler) Enabled(ctx context.Context, level log.Level) bool {
	return s.next.Enabled(ctx, level)
}

func (s *RemoteFilterHandler) Handle(ctx context.Context, r log.Record) error {
	if !s.traced && !hasTraceID(r) {
		return nil
	}
	return s.next.Handle(ctx, r)
}

func (s *RemoteFilterHandler) WithAttrs(attrs []log.Attr) log.Handler {
	traced := s.traced
	for _, a := range attrs {
		if isTraceID(a) {
			traced = true
		}
	}
	return &RemoteFilterHandler{next: s.next.WithAttrs(attrs), traced: traced}
}

func (s *RemoteFilterHandler) WithGroup(name string) log.Handler {
	return &RemoteFilterHandler{next: s.next.WithGroup(name), traced: s.traced}
}

func hasTraceID(r log.Record) bool {
	found := false
	r.Attrs(func(a log.Attr) bool {
		found = isTraceID(a)
		return !found
	})
	return found
}

func isTraceID(a log.Attr) bool {
	return a.Key == TraceIDKey && a.Value.String() != ""
}
