package response

import (
	"net/http"

	"github.com/gin-gonic/gin"

	appErrors "github.com/noah-isme/school-records/pkg/errors"
)

// Envelope represents the JSON error contract for non-HTML clients.
type Envelope struct {
	Data  interface{}      `json:"data,omitempty"`
	Error *appErrors.Error `json:"error,omitempty"`
}

// HTML renders the named template with no-store caching headers.
func HTML(c *gin.Context, status int, name string, data gin.H) {
	c.Header("Cache-Control", "no-store")
	c.Header("Pragma", "no-cache")
	c.HTML(status, name, data)
}

// Redirect sends the browser to location with a GET (303 See Other), so
// a refreshed page never re-submits a form.
func Redirect(c *gin.Context, location string) {
	c.Redirect(http.StatusSeeOther, location)
}

// Error renders err as an error page, or as a JSON envelope when the
// client prefers JSON. The error is attached to the context for logging.
func Error(c *gin.Context, err error) {
	appErr := appErrors.FromError(err)
	_ = c.Error(err)
	c.Header("Cache-Control", "no-store")
	c.Header("Pragma", "no-cache")

	switch c.NegotiateFormat(gin.MIMEHTML, gin.MIMEJSON) {
	case gin.MIMEJSON:
		c.JSON(appErr.Status, Envelope{Error: appErr})
	default:
		c.HTML(appErr.Status, "error.html", gin.H{
			"Title":   http.StatusText(appErr.Status),
			"Message": appErr.Message,
		})
	}
}

// JSON sends a data envelope.
func JSON(c *gin.Context, status int, data interface{}) {
	c.Header("Cache-Control", "no-store")
	c.JSON(status, Envelope{Data: data})
}
