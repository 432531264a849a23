package forms

import (
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"todoweb/internal/models"
)

// deadlineLayouts accepted from the deadline field. Browsers submit
// datetime-local values without seconds; some keep them.
var deadlineLayouts = []string{
	"2006-01-02T15:04",
	"2006-01-02T15:04:05",
}

// TaskForm holds the submitted fields for creating or updating a task.
// DeadlineRaw and PriorityRaw keep the original strings for re-rendering.
type TaskForm struct {
	Title       string
	Description string
	DeadlineRaw string
	PriorityRaw string
	Inline      bool

	Deadline *time.Time
	Priority models.Priority
	Errors   map[string]string
}

// ParseTaskForm reads the task fields from the request body. The "inline"
// field is the explicit marker for quick-add submissions from the task list;
// it replaces guessing from the number of submitted fields.
func ParseTaskForm(c *gin.Context) *TaskForm {
	f := &TaskForm{
		Title:       c.PostForm("title"),
		Description: c.PostForm("description"),
		DeadlineRaw: c.PostForm("deadline"),
		PriorityRaw: c.PostForm("priority"),
		Inline:      c.PostForm("inline") == "1",
		Errors:      map[string]string{},
	}

	if f.DeadlineRaw != "" {
		parsed := false
		for _, layout := range deadlineLayouts {
			if t, err := time.ParseInLocation(layout, f.DeadlineRaw, time.Local); err == nil {
				f.Deadline = &t
				parsed = true
				break
			}
		}
		if !parsed {
			f.Errors["deadline"] = "Enter a valid date and time."
		}
	}

	f.Priority = models.PriorityMedium
	if f.PriorityRaw != "" {
		n, err := strconv.Atoi(f.PriorityRaw)
		if err != nil || !models.Priority(n).Valid() {
			f.Errors["priority"] = "Select a valid priority."
		} else {
			f.Priority = models.Priority(n)
		}
	}

	return f
}

// Validate checks the field-level rules on top of any parse errors already
// recorded. The past-deadline rule is not checked here: it depends on the
// stored record and belongs to the task service.
func (f *TaskForm) Validate() bool {
	if strings.TrimSpace(f.Title) == "" {
		f.Errors["title"] = "Task title is required."
	}
	return len(f.Errors) == 0
}

// SetError records a message against a field.
func (f *TaskForm) SetError(field, message string) {
	f.Errors[field] = message
}

// HasErrors reports whether any field failed validation.
func (f *TaskForm) HasErrors() bool {
	return len(f.Errors) > 0
}
