package middleware

import (
	"bytes"
	"io"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// maxDumpBody caps how much of a request body is logged.
const maxDumpBody = 4 << 10

func RequestDumpMiddleware(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var bodyBytes []byte
		if c.Request.Body != nil {
			bodyBytes, _ = io.ReadAll(c.Request.Body)
		}
		c.Request.Body = io.NopCloser(bytes.NewBuffer(bodyBytes))

		dumped := bodyBytes
		if len(dumped) > maxDumpBody {
			dumped = dumped[:maxDumpBody]
		}
		header := c.Request.Header.Clone()
		if header.Get("Authorization") != "" {
			header.Set("Authorization", "[redacted]")
		}

		logger.Debug("request",
			zap.String("method", c.Request.Method),
			zap.String("url", c.Request.URL.String()),
			zap.Any("headers", header),
			zap.Any("params", c.Params),
			zap.ByteString("body", dumped),
		)

		c.Next()
	}
}
