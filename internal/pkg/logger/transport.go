package logger

import (
	log "log/slog"
	"net/http"
	"time"
)

// StorageTransport 记录对象存储的 HTTP 调用，视频请求体不做采集
type StorageTransport struct {
	Transport http.RoundTripper
}

func NewStorageTransport(next http.RoundTripper) *StorageTransport {
	if next == nil {
		next = http.DefaultTransport
	}
	return &StorageTransport{Transport: next}
}

func (t *StorageTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	start := time.Now()

	resp, err := t.Transport.RoundTrip(req)
	elapsed := time.Since(start)

	fields := []any{
		log.String("method", req.Method),
		log.String("path", req.URL.Path),
		log.Int64("content_length", req.ContentLength),
		log.Duration("latency", elapsed),
	}

	if err != nil {
		log.ErrorContext(req.Context(), "STORAGE_REQUEST_ERROR", append(fields, log.Any("err", err))...)
		return nil, err
	}

	fields = append(fields, log.Int("status", resp.StatusCode))

	if elapsed > 2*time.Second {
		log.WarnContext(req.Context(), "STORAGE_REQUEST_SLOW", fields...)
	} else {
		log.InfoContext(req.Context(), "STORAGE_REQUEST", fields...)
	}

	return resp, nil
}
