// Package errors renders error responses for the HTML surface.
package errors

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// NotFound sends a 404 response. Records that exist but belong to another
// user get the same response as records that do not exist, so a 404 never
// discloses whether an id is in use.
func NotFound(c *gin.Context) {
	c.HTML(http.StatusNotFound, "error.html", gin.H{
		"status":  http.StatusNotFound,
		"message": "Not found",
	})
}

// InternalError sends a 500 response.
func InternalError(c *gin.Context) {
	c.HTML(http.StatusInternalServerError, "error.html", gin.H{
		"status":  http.StatusInternalServerError,
		"message": "Something went wrong",
	})
}
