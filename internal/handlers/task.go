package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	weberrors "todoweb/internal/errors"
	"todoweb/internal/forms"
	"todoweb/internal/htmx"
	"todoweb/internal/middleware"
	"todoweb/internal/models"
	"todoweb/internal/services"
)

// TaskHandler serves the task mutations and their fragments.
type TaskHandler struct {
	taskService    *services.TaskService
	projectService *services.ProjectService
}

// NewTaskHandler creates a new TaskHandler.
func NewTaskHandler(taskService *services.TaskService, projectService *services.ProjectService) *TaskHandler {
	return &TaskHandler{
		taskService:    taskService,
		projectService: projectService,
	}
}

// CreateForm renders the empty task form for a project.
func (h *TaskHandler) CreateForm(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		c.Redirect(http.StatusFound, "/login")
		return
	}

	project, ok := h.resolveProject(c, userID)
	if !ok {
		return
	}

	c.HTML(http.StatusOK, "task_form.html", gin.H{
		"form":      &forms.TaskForm{Priority: models.PriorityMedium},
		"project":   project,
		"is_update": false,
	})
}

// Create adds a task to a project the user owns. The "inline" form field
// marks quick-add submissions, which answer with just the new task item.
func (h *TaskHandler) Create(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		c.Redirect(http.StatusFound, "/login")
		return
	}

	project, ok := h.resolveProject(c, userID)
	if !ok {
		return
	}

	form := forms.ParseTaskForm(c)
	if !form.Validate() {
		h.renderTaskForm(c, form, project, false)
		return
	}

	task, err := h.taskService.Create(project, services.TaskInput{
		Title:       form.Title,
		Description: form.Description,
		Deadline:    form.Deadline,
		Priority:    form.Priority,
	})
	if err != nil {
		if applyTaskError(form, err) {
			h.renderTaskForm(c, form, project, false)
			return
		}
		weberrors.InternalError(c)
		return
	}

	if htmx.IsRequest(c) {
		if form.Inline {
			htmx.Render(c, htmx.Fragment{
				Template: "task_item.html",
				Data:     task,
			})
			return
		}
		c.Redirect(http.StatusSeeOther, "/projects/")
		return
	}

	c.Redirect(http.StatusSeeOther, "/projects/"+project.ID.String()+"/")
}

// UpdateForm renders the task form pre-filled with the stored values.
func (h *TaskHandler) UpdateForm(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		c.Redirect(http.StatusFound, "/login")
		return
	}

	taskID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		weberrors.NotFound(c)
		return
	}

	task, err := h.taskService.Get(userID, taskID, "Project")
	if err != nil {
		if errors.Is(err, services.ErrTaskNotFound) {
			weberrors.NotFound(c)
			return
		}
		weberrors.InternalError(c)
		return
	}

	form := &forms.TaskForm{
		Title:       task.Title,
		Description: task.Description,
		Priority:    task.Priority,
	}
	if task.Deadline != nil {
		form.DeadlineRaw = task.Deadline.Format("2006-01-02T15:04")
		form.Deadline = task.Deadline
	}

	c.HTML(http.StatusOK, "task_form.html", gin.H{
		"form":      form,
		"project":   &task.Project,
		"task":      task,
		"is_update": true,
	})
}

// Update edits a task in both response contexts. The incremental response
// swaps the existing task element in place.
func (h *TaskHandler) Update(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		c.Redirect(http.StatusFound, "/login")
		return
	}

	taskID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		weberrors.NotFound(c)
		return
	}

	// Resolve through the owner scope before looking at the payload, so a
	// non-owner gets 404 no matter what they posted.
	existing, err := h.taskService.Get(userID, taskID, "Project")
	if err != nil {
		if errors.Is(err, services.ErrTaskNotFound) {
			weberrors.NotFound(c)
			return
		}
		weberrors.InternalError(c)
		return
	}

	form := forms.ParseTaskForm(c)
	if !form.Validate() {
		h.renderTaskForm(c, form, &existing.Project, true)
		return
	}

	task, err := h.taskService.Update(userID, taskID, services.TaskInput{
		Title:       form.Title,
		Description: form.Description,
		Deadline:    form.Deadline,
		Priority:    form.Priority,
	})
	if err != nil {
		if errors.Is(err, services.ErrTaskNotFound) {
			weberrors.NotFound(c)
			return
		}
		if applyTaskError(form, err) {
			h.renderTaskForm(c, form, &existing.Project, true)
			return
		}
		weberrors.InternalError(c)
		return
	}

	if htmx.IsRequest(c) {
		htmx.Render(c, htmx.Fragment{
			Template: "task_item.html",
			Data:     task,
			Event:    htmx.EventTaskUpdated,
			Retarget: "#task-" + task.ID.String(),
		})
		return
	}

	c.Redirect(http.StatusSeeOther, "/projects/"+task.ProjectID.String()+"/")
}

// Delete removes a single task.
func (h *TaskHandler) Delete(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		c.Redirect(http.StatusFound, "/login")
		return
	}

	taskID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		weberrors.NotFound(c)
		return
	}

	task, err := h.taskService.Get(userID, taskID)
	if err != nil {
		if errors.Is(err, services.ErrTaskNotFound) {
			weberrors.NotFound(c)
			return
		}
		weberrors.InternalError(c)
		return
	}

	if err := h.taskService.Delete(userID, taskID); err != nil {
		if errors.Is(err, services.ErrTaskNotFound) {
			weberrors.NotFound(c)
			return
		}
		weberrors.InternalError(c)
		return
	}

	if htmx.IsRequest(c) {
		htmx.Empty(c)
		return
	}

	c.Redirect(http.StatusSeeOther, "/projects/"+task.ProjectID.String()+"/")
}

// Toggle flips a task's done flag and answers with the re-rendered item.
func (h *TaskHandler) Toggle(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		c.Redirect(http.StatusFound, "/login")
		return
	}

	taskID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		weberrors.NotFound(c)
		return
	}

	task, err := h.taskService.ToggleDone(userID, taskID)
	if err != nil {
		if errors.Is(err, services.ErrTaskNotFound) {
			weberrors.NotFound(c)
			return
		}
		weberrors.InternalError(c)
		return
	}

	if htmx.IsRequest(c) {
		htmx.Render(c, htmx.Fragment{
			Template: "task_item.html",
			Data:     task,
		})
		return
	}

	c.Redirect(http.StatusSeeOther, "/projects/"+task.ProjectID.String()+"/")
}

// resolveProject loads the project from the id route parameter through the
// owner-scoped service, answering 404 on a miss.
func (h *TaskHandler) resolveProject(c *gin.Context, userID uuid.UUID) (*models.Project, bool) {
	projectID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		weberrors.NotFound(c)
		return nil, false
	}

	project, err := h.projectService.Get(userID, projectID)
	if err != nil {
		if errors.Is(err, services.ErrProjectNotFound) {
			weberrors.NotFound(c)
			return nil, false
		}
		weberrors.InternalError(c)
		return nil, false
	}

	return project, true
}

func (h *TaskHandler) renderTaskForm(c *gin.Context, form *forms.TaskForm, project *models.Project, isUpdate bool) {
	data := gin.H{
		"form":      form,
		"is_update": isUpdate,
	}
	if project != nil {
		data["project"] = project
	}
	c.HTML(http.StatusOK, "task_form.html", data)
}

// applyTaskError records a service validation error against the matching
// form field. Returns false for errors that are not validation failures.
func applyTaskError(form *forms.TaskForm, err error) bool {
	switch {
	case errors.Is(err, services.ErrTitleRequired):
		form.SetError("title", "Task title is required.")
	case errors.Is(err, services.ErrDeadlineInPast):
		form.SetError("deadline", "Deadline cannot be in the past.")
	case errors.Is(err, services.ErrInvalidPriority):
		form.SetError("priority", "Select a valid priority.")
	default:
		return false
	}
	return true
}
