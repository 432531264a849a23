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
	"todoweb/internal/services"
)

// ProjectHandler serves the project pages and fragments.
type ProjectHandler struct {
	projectService *services.ProjectService
	taskService    *services.TaskService
}

// NewProjectHandler creates a new ProjectHandler.
func NewProjectHandler(projectService *services.ProjectService, taskService *services.TaskService) *ProjectHandler {
	return &ProjectHandler{
		projectService: projectService,
		taskService:    taskService,
	}
}

// List renders the project list page with nested tasks.
func (h *ProjectHandler) List(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		c.Redirect(http.StatusFound, "/login")
		return
	}

	projects, err := h.projectService.List(userID)
	if err != nil {
		weberrors.InternalError(c)
		return
	}

	c.HTML(http.StatusOK, "project_list.html", gin.H{"projects": projects})
}

// All returns the full projects-with-tasks fragment.
func (h *ProjectHandler) All(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		c.Redirect(http.StatusFound, "/login")
		return
	}

	projects, err := h.projectService.List(userID)
	if err != nil {
		weberrors.InternalError(c)
		return
	}

	htmx.Render(c, htmx.Fragment{
		Template: "projects_all.html",
		Data:     gin.H{"projects": projects},
	})
}

// ListPartial returns the sidebar project list fragment.
func (h *ProjectHandler) ListPartial(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		c.Redirect(http.StatusFound, "/login")
		return
	}

	projects, err := h.projectService.List(userID)
	if err != nil {
		weberrors.InternalError(c)
		return
	}

	htmx.Render(c, htmx.Fragment{
		Template: "project_list_partial.html",
		Data:     gin.H{"projects": projects},
	})
}

// CreateForm renders the empty project form.
func (h *ProjectHandler) CreateForm(c *gin.Context) {
	c.HTML(http.StatusOK, "project_form.html", gin.H{
		"form":      &forms.ProjectForm{},
		"is_update": false,
	})
}

// Create handles project creation in both response contexts.
func (h *ProjectHandler) Create(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		c.Redirect(http.StatusFound, "/login")
		return
	}

	form := forms.ParseProjectForm(c)
	if !form.Validate() {
		c.HTML(http.StatusOK, "project_form.html", gin.H{
			"form":      form,
			"is_update": false,
		})
		return
	}

	_, err := h.projectService.Create(userID, services.ProjectInput{
		Name:        form.Name,
		Description: form.Description,
	})
	if err != nil {
		if errors.Is(err, services.ErrNameRequired) {
			form.SetError("name", "Project name is required.")
			c.HTML(http.StatusOK, "project_form.html", gin.H{
				"form":      form,
				"is_update": false,
			})
			return
		}
		weberrors.InternalError(c)
		return
	}

	if htmx.IsRequest(c) {
		h.renderProjectsAll(c, userID, htmx.EventProjectCreated)
		return
	}

	c.Redirect(http.StatusSeeOther, "/projects/")
}

// Detail renders a project's task list page.
func (h *ProjectHandler) Detail(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		c.Redirect(http.StatusFound, "/login")
		return
	}

	projectID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		weberrors.NotFound(c)
		return
	}

	project, err := h.projectService.Get(userID, projectID, "Owner")
	if err != nil {
		if errors.Is(err, services.ErrProjectNotFound) {
			weberrors.NotFound(c)
			return
		}
		weberrors.InternalError(c)
		return
	}

	tasks, err := h.taskService.ListForProject(userID, project.ID)
	if err != nil {
		weberrors.InternalError(c)
		return
	}

	c.HTML(http.StatusOK, "project_detail.html", gin.H{
		"project": project,
		"tasks":   tasks,
	})
}

// UpdateForm renders the project form pre-filled with the stored values.
func (h *ProjectHandler) UpdateForm(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		c.Redirect(http.StatusFound, "/login")
		return
	}

	projectID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		weberrors.NotFound(c)
		return
	}

	project, err := h.projectService.Get(userID, projectID)
	if err != nil {
		if errors.Is(err, services.ErrProjectNotFound) {
			weberrors.NotFound(c)
			return
		}
		weberrors.InternalError(c)
		return
	}

	form := &forms.ProjectForm{
		Name:        project.Name,
		Description: project.Description,
	}

	c.HTML(http.StatusOK, "project_form.html", gin.H{
		"form":      form,
		"project":   project,
		"is_update": true,
	})
}

// Update handles project edits in both response contexts.
func (h *ProjectHandler) Update(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		c.Redirect(http.StatusFound, "/login")
		return
	}

	projectID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		weberrors.NotFound(c)
		return
	}

	// Resolve through the owner scope before looking at the payload, so a
	// non-owner gets 404 no matter what they posted.
	if _, err := h.projectService.Get(userID, projectID); err != nil {
		if errors.Is(err, services.ErrProjectNotFound) {
			weberrors.NotFound(c)
			return
		}
		weberrors.InternalError(c)
		return
	}

	form := forms.ParseProjectForm(c)
	if !form.Validate() {
		c.HTML(http.StatusOK, "project_form.html", gin.H{
			"form":      form,
			"is_update": true,
		})
		return
	}

	project, err := h.projectService.Update(userID, projectID, services.ProjectInput{
		Name:        form.Name,
		Description: form.Description,
	})
	if err != nil {
		switch {
		case errors.Is(err, services.ErrProjectNotFound):
			weberrors.NotFound(c)
		case errors.Is(err, services.ErrNameRequired):
			form.SetError("name", "Project name is required.")
			c.HTML(http.StatusOK, "project_form.html", gin.H{
				"form":      form,
				"is_update": true,
			})
		default:
			weberrors.InternalError(c)
		}
		return
	}

	if htmx.IsRequest(c) {
		h.renderProjectsAll(c, userID, htmx.EventProjectUpdated)
		return
	}

	c.Redirect(http.StatusSeeOther, "/projects/"+project.ID.String()+"/")
}

// Delete removes a project and its tasks.
func (h *ProjectHandler) Delete(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		c.Redirect(http.StatusFound, "/login")
		return
	}

	projectID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		weberrors.NotFound(c)
		return
	}

	if err := h.projectService.Delete(userID, projectID); err != nil {
		if errors.Is(err, services.ErrProjectNotFound) {
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

	c.Redirect(http.StatusSeeOther, "/projects/")
}

// renderProjectsAll re-renders the whole projects fragment after a project
// mutation: ordering may have changed, so one item is not enough.
func (h *ProjectHandler) renderProjectsAll(c *gin.Context, userID uuid.UUID, event string) {
	projects, err := h.projectService.List(userID)
	if err != nil {
		weberrors.InternalError(c)
		return
	}

	htmx.Render(c, htmx.Fragment{
		Template: "projects_all.html",
		Data:     gin.H{"projects": projects},
		Event:    event,
	})
}
