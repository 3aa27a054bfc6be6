package cache

import (
	"bytes"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

type responseWriter struct {
	gin.ResponseWriter
	body *bytes.Buffer
}

func (w *responseWriter) Write(b []byte) (int, error) {
	w.body.Write(b)
	return w.ResponseWriter.Write(b)
}

// Middleware caches successful JSON responses of the given GET paths,
// keyed by the full request URI. The community aggregation endpoints are
// expensive and identical for every caller, so a short TTL takes the load
// off the database without making the numbers visibly stale.
func Middleware(namespace string, maxAge time.Duration, paths ...string) gin.HandlerFunc {
	cacheable := make(map[string]bool, len(paths))
	for _, path := range paths {
		cacheable[path] = true
	}

	return func(c *gin.Context) {
		if c.Request.Method != http.MethodGet || !cacheable[c.Request.URL.Path] {
			c.Next()
			return
		}

		key := c.Request.URL.RequestURI()

		if cached, found := Read(namespace, key, maxAge); found {
			c.Header("X-Cache", "HIT")
			c.Data(http.StatusOK, "application/json; charset=utf-8", cached)
			c.Abort()
			return
		}

		c.Header("X-Cache", "MISS")

		writer := &responseWriter{
			ResponseWriter: c.Writer,
			body:           bytes.NewBuffer(nil),
		}
		c.Writer = writer

		c.Next()

		if c.Writer.Status() == http.StatusOK {
			Write(namespace, key, writer.body.Bytes())
		}
	}
}
