package middleware

import (
	"bytes"
	"io"
	log "log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
)

type responseBodyWriter struct {
	gin.ResponseWriter
	body *bytes.Buffer
}

func (r *responseBodyWriter) Write(b []byte) (int, error) {
	if r.body.Len() < 16384 {
		r.body.Write(b)
	}
	return r.ResponseWriter.Write(b)
}

func (r *responseBodyWriter) Flush() {
	if flusher, ok := r.ResponseWriter.(http.Flusher); ok {
		flusher.Flush()
	}
}

// 这些路径的请求与响应包含密码或令牌，只记录元信息
var sensitivePaths = []string{"/api/auth/"}

const omitted = "[omitted]"

// AuditMiddleware 记录请求与响应体，multipart 与敏感路径的内容不记录
func AuditMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		sensitive := isSensitive(c.Request.URL.Path)

		var reqBody []byte
		if strings.HasPrefix(c.ContentType(), "multipart/") {
			reqBody = []byte(omitted)
		} else if c.Request.Body != nil {
			reqBody, _ = io.ReadAll(c.Request.Body)
			c.Request.Body = io.NopCloser(bytes.NewBuffer(reqBody))
		}
		loggedReq := string(reqBody)
		if sensitive {
			loggedReq = omitted
		}

		rawQuery := c.Request.URL.RawQuery
		decodedQuery, err := url.QueryUnescape(rawQuery)
		if err != nil {
			decodedQuery = rawQuery
		}

		log.InfoContext(ctx, "Recv Request",
			log.String("method", c.Request.Method),
			log.String("path", c.Request.URL.Path),
			log.String("query", decodedQuery),
			log.String("req_body", loggedReq),
		)

		w := &responseBodyWriter{body: &bytes.Buffer{}, ResponseWriter: c.Writer}
		c.Writer = w
		startTime := time.Now()

		c.Next()

		loggedRes := w.body.String()
		if sensitive {
			loggedRes = omitted
		}
		log.InfoContext(ctx, "Send Response",
			log.Int("status", c.Writer.Status()),
			log.Duration("latency", time.Since(startTime)),
			log.String("res_body", loggedRes),
		)
	}
}

func isSensitive(path string) bool {
	for _, prefix := range sensitivePaths {
		if strings.HasPrefix(path, prefix) {
			return true
		}
	}
	return false
}
