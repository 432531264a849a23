// Package forms parses POST bodies for the server-rendered views and
// collects per-field error messages. Submitted values are kept on the form
// so an invalid submission re-renders with the user's input intact.
package forms

import (
	"strings"

	"github.com/gin-gonic/gin"
)

// ProjectForm holds the submitted fields for creating or updating a project.
type ProjectForm struct {
	Name        string
	Description string
	Errors      map[string]string
}

// ParseProjectForm reads the project fields from the request body.
func ParseProjectForm(c *gin.Context) *ProjectForm {
	return &ProjectForm{
		Name:        c.PostForm("name"),
		Description: c.PostForm("description"),
		Errors:      map[string]string{},
	}
}

// Validate checks the field-level rules and records messages for any that
// fail. Returns true when the form is clean.
func (f *ProjectForm) Validate() bool {
	if strings.TrimSpace(f.Name) == "" {
		f.Errors["name"] = "Project name is required."
	}
	return len(f.Errors) == 0
}

// SetError records a message against a field.
func (f *ProjectForm) SetError(field, message string) {
	f.Errors[field] = message
}

// HasErrors reports whether any field failed validation.
func (f *ProjectForm) HasErrors() bool {
	return len(f.Errors) > 0
}
