package handlers

import (
	"net/http"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"todoweb/internal/htmx"
)

func TestProjectList_RendersOwnProjectsOnly(t *testing.T) {
	env := setupHandlerTest(t)
	alice := env.createUser(t, "alice")
	bob := env.createUser(t, "bob")
	env.createProject(t, alice, "Alice Launch")
	env.createProject(t, bob, "Bob Secret")

	c, w := newTestContext(t, "GET", "/projects/", nil)
	authenticate(c, alice.ID)

	env.projectHandler.List(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Alice Launch")
	assert.NotContains(t, w.Body.String(), "Bob Secret")
}

func TestProjectList_Unauthenticated(t *testing.T) {
	env := setupHandlerTest(t)

	c, w := newTestContext(t, "GET", "/projects/", nil)

	env.projectHandler.List(c)

	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/login", w.Header().Get("Location"))
}

func TestProjectCreate_FullPageRedirects(t *testing.T) {
	env := setupHandlerTest(t)
	alice := env.createUser(t, "alice")

	c, w := newTestContext(t, "POST", "/projects/create/", url.Values{
		"name":        {"Launch"},
		"description": {"Q3 site refresh"},
	})
	authenticate(c, alice.ID)

	env.projectHandler.Create(c)
	// A redirect without a body leaves gin's deferred status unflushed when
	// the handler is invoked directly; flush it so the recorder sees it.
	c.Writer.WriteHeaderNow()

	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/projects/", w.Header().Get("Location"))

	projects, err := env.projectService.List(alice.ID)
	require.NoError(t, err)
	require.Len(t, projects, 1)
	assert.Equal(t, "Launch", projects[0].Name)
}

func TestProjectCreate_IncrementalReturnsListFragmentAndEvent(t *testing.T) {
	env := setupHandlerTest(t)
	alice := env.createUser(t, "alice")
	env.createProject(t, alice, "Existing")

	c, w := newTestContext(t, "POST", "/projects/create/", url.Values{
		"name": {"Launch"},
	})
	authenticate(c, alice.ID)
	markHTMX(c)

	env.projectHandler.Create(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, htmx.EventProjectCreated, w.Header().Get("HX-Trigger"))
	// The whole list comes back: ordering may have changed.
	assert.Contains(t, w.Body.String(), "Launch")
	assert.Contains(t, w.Body.String(), "Existing")
}

func TestProjectCreate_EmptyNameRerendersForm(t *testing.T) {
	env := setupHandlerTest(t)
	alice := env.createUser(t, "alice")

	c, w := newTestContext(t, "POST", "/projects/create/", url.Values{
		"name":        {""},
		"description": {"kept for correction"},
	})
	authenticate(c, alice.ID)

	env.projectHandler.Create(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Project name is required.")
	assert.Contains(t, w.Body.String(), "kept for correction")
}

func TestProjectUpdate_CrossUserIs404(t *testing.T) {
	env := setupHandlerTest(t)
	alice := env.createUser(t, "alice")
	bob := env.createUser(t, "bob")
	project := env.createProject(t, alice, "Launch")

	// Payload is perfectly valid; scoping must still answer 404.
	c, w := newTestContext(t, "POST", "/projects/"+project.ID.String()+"/update/", url.Values{
		"name": {"Hijacked"},
	})
	authenticate(c, bob.ID)
	setParam(c, "id", project.ID.String())

	env.projectHandler.Update(c)

	assert.Equal(t, http.StatusNotFound, w.Code)

	stored, err := env.projectService.Get(alice.ID, project.ID)
	require.NoError(t, err)
	assert.Equal(t, "Launch", stored.Name)
}

func TestProjectUpdate_CrossUserInvalidPayloadIs404(t *testing.T) {
	env := setupHandlerTest(t)
	alice := env.createUser(t, "alice")
	bob := env.createUser(t, "bob")
	project := env.createProject(t, alice, "Launch")

	// An invalid payload must not downgrade the ownership check to a form
	// re-render.
	c, w := newTestContext(t, "POST", "/projects/"+project.ID.String()+"/update/", url.Values{
		"name": {""},
	})
	authenticate(c, bob.ID)
	setParam(c, "id", project.ID.String())

	env.projectHandler.Update(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.NotContains(t, w.Body.String(), "Project name is required.")
}

func TestProjectUpdate_IncrementalEvent(t *testing.T) {
	env := setupHandlerTest(t)
	alice := env.createUser(t, "alice")
	project := env.createProject(t, alice, "Launch")

	c, w := newTestContext(t, "POST", "/projects/"+project.ID.String()+"/update/", url.Values{
		"name": {"Launch v2"},
	})
	authenticate(c, alice.ID)
	markHTMX(c)
	setParam(c, "id", project.ID.String())

	env.projectHandler.Update(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, htmx.EventProjectUpdated, w.Header().Get("HX-Trigger"))
	assert.Contains(t, w.Body.String(), "Launch v2")
}

func TestProjectDelete_IncrementalReturnsEmptyFragment(t *testing.T) {
	env := setupHandlerTest(t)
	alice := env.createUser(t, "alice")
	project := env.createProject(t, alice, "Launch")
	env.createTask(t, project, "Write copy")

	c, w := newTestContext(t, "DELETE", "/projects/"+project.ID.String()+"/delete/", nil)
	authenticate(c, alice.ID)
	markHTMX(c)
	setParam(c, "id", project.ID.String())

	env.projectHandler.Delete(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, w.Body.String())

	projects, err := env.projectService.List(alice.ID)
	require.NoError(t, err)
	assert.Empty(t, projects)
}

func TestProjectDelete_CrossUserIs404(t *testing.T) {
	env := setupHandlerTest(t)
	alice := env.createUser(t, "alice")
	bob := env.createUser(t, "bob")
	project := env.createProject(t, alice, "Launch")

	c, w := newTestContext(t, "DELETE", "/projects/"+project.ID.String()+"/delete/", nil)
	authenticate(c, bob.ID)
	setParam(c, "id", project.ID.String())

	env.projectHandler.Delete(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestProjectDetail_RendersTasksInOrder(t *testing.T) {
	env := setupHandlerTest(t)
	alice := env.createUser(t, "alice")
	project := env.createProject(t, alice, "Launch")
	env.createTask(t, project, "Write copy")

	c, w := newTestContext(t, "GET", "/projects/"+project.ID.String()+"/", nil)
	authenticate(c, alice.ID)
	setParam(c, "id", project.ID.String())

	env.projectHandler.Detail(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Launch")
	assert.Contains(t, w.Body.String(), "Write copy")
}

func TestProjectDetail_CrossUserIs404(t *testing.T) {
	env := setupHandlerTest(t)
	alice := env.createUser(t, "alice")
	bob := env.createUser(t, "bob")
	project := env.createProject(t, alice, "Launch")

	c, w := newTestContext(t, "GET", "/projects/"+project.ID.String()+"/", nil)
	authenticate(c, bob.ID)
	setParam(c, "id", project.ID.String())

	env.projectHandler.Detail(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
}
