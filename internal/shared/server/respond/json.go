package respond

import (
	"mime"
	"net/http"

	"github.com/gin-gonic/gin"
)

const HTMLContentType = "text/html; charset=utf-8"

// JSON writes a JSON response with the given status.
func JSON(c *gin.Context, status int, payload interface{}) {
	c.JSON(status, payload)
}

// OK writes a 200 OK JSON response.
func OK(c *gin.Context, payload interface{}) {
	JSON(c, http.StatusOK, payload)
}

// HTML writes a rendered page.
func HTML(c *gin.Context, status int, page string) {
	c.Data(status, HTMLContentType, []byte(page))
}

// Attachment writes data as a download named fileName.
func Attachment(c *gin.Context, fileName, contentType string, data []byte) {
	c.Header("Content-Disposition", ContentDisposition(fileName))
	c.Data(http.StatusOK, contentType, data)
}

// ContentDisposition formats an attachment header; non-ASCII names are
// encoded per RFC 2231.
func ContentDisposition(fileName string) string {
	return mime.FormatMediaType("attachment", map[string]string{"filename": fileName})
}
