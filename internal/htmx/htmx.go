// Package htmx implements the dual full-page/incremental response contract.
// An incremental-update request is marked by the HX-Request header; on such
// requests mutating handlers answer with a small markup fragment for the
// affected record(s) instead of a redirect, optionally naming a client-side
// event in the HX-Trigger header so page script can react without parsing
// the fragment.
package htmx

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Client-side events signalled on successful mutations.
const (
	EventProjectCreated = "projectCreated"
	EventProjectUpdated = "projectUpdated"
	EventTaskUpdated    = "taskUpdated"
)

// IsRequest reports whether the request came from htmx and expects a
// fragment rather than a full page.
func IsRequest(c *gin.Context) bool {
	return c.GetHeader("HX-Request") == "true"
}

// Fragment describes a partial response for an incremental request.
type Fragment struct {
	Template string
	Data     any
	// Event is sent in HX-Trigger so client script can react to the
	// mutation by name.
	Event string
	// Retarget redirects the swap to the given CSS selector and forces
	// outerHTML replacement, used to swap a task item in place.
	Retarget string
}

// Render writes the fragment with its out-of-band headers.
func Render(c *gin.Context, f Fragment) {
	if f.Event != "" {
		c.Header("HX-Trigger", f.Event)
	}
	if f.Retarget != "" {
		c.Header("HX-Retarget", f.Retarget)
		c.Header("HX-Reswap", "outerHTML")
	}
	c.HTML(http.StatusOK, f.Template, f.Data)
}

// Empty writes an empty 200 fragment, telling the client to remove the
// swapped element from the DOM.
func Empty(c *gin.Context) {
	c.String(http.StatusOK, "")
}
