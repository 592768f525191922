package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"hris/backend/pkg/response"
)

// BodyLimit 限制请求体大小，防止超大 ICS 上传打爆内存
func BodyLimit(maxBytes int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.ContentLength > maxBytes {
			response.Error(c, http.StatusRequestEntityTooLarge, 41300, "请求体过大")
			c.Abort()
			return
		}
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBytes)
		c.Next()
	}
}
