package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProjectService_Create_EmptyName(t *testing.T) {
	env := setupTaskServiceTest(t)
	alice := env.createUser(t, "alice")

	_, err := env.projectService.Create(alice.ID, ProjectInput{Name: ""})
	assert.ErrorIs(t, err, ErrNameRequired)

	_, err = env.projectService.Create(alice.ID, ProjectInput{Name: "  "})
	assert.ErrorIs(t, err, ErrNameRequired)
}

func TestProjectService_List_OnlyOwn(t *testing.T) {
	env := setupTaskServiceTest(t)
	alice := env.createUser(t, "alice")
	bob := env.createUser(t, "bob")

	env.createProject(t, alice, "Alice's")
	env.createProject(t, bob, "Bob's")

	projects, err := env.projectService.List(alice.ID)
	require.NoError(t, err)
	require.Len(t, projects, 1)
	assert.Equal(t, "Alice's", projects[0].Name)
}

func TestProjectService_Update_CrossUserIsNotFound(t *testing.T) {
	env := setupTaskServiceTest(t)
	alice := env.createUser(t, "alice")
	bob := env.createUser(t, "bob")
	project := env.createProject(t, alice, "Launch")

	// Payload validity is irrelevant: the scoped lookup misses first.
	_, err := env.projectService.Update(bob.ID, project.ID, ProjectInput{Name: "Perfectly valid"})
	assert.ErrorIs(t, err, ErrProjectNotFound)

	stored, err := env.projectService.Get(alice.ID, project.ID)
	require.NoError(t, err)
	assert.Equal(t, "Launch", stored.Name)
}

func TestProjectService_Update_EmptyName(t *testing.T) {
	env := setupTaskServiceTest(t)
	alice := env.createUser(t, "alice")
	project := env.createProject(t, alice, "Launch")

	_, err := env.projectService.Update(alice.ID, project.ID, ProjectInput{Name: ""})
	assert.ErrorIs(t, err, ErrNameRequired)
}

func TestProjectService_Delete_CascadesToTasks(t *testing.T) {
	env := setupTaskServiceTest(t)
	alice := env.createUser(t, "alice")
	project := env.createProject(t, alice, "Launch")
	other := env.createProject(t, alice, "Other")

	task, err := env.taskService.Create(project, TaskInput{Title: "Write copy"})
	require.NoError(t, err)

	require.NoError(t, env.projectService.Delete(alice.ID, project.ID))

	_, err = env.taskService.Get(alice.ID, task.ID)
	assert.ErrorIs(t, err, ErrTaskNotFound)

	tasks, err := env.taskService.ListForProject(alice.ID, other.ID)
	require.NoError(t, err)
	assert.Empty(t, tasks)
}

func TestProjectService_Delete_CrossUserIsNotFound(t *testing.T) {
	env := setupTaskServiceTest(t)
	alice := env.createUser(t, "alice")
	bob := env.createUser(t, "bob")
	project := env.createProject(t, alice, "Launch")

	assert.ErrorIs(t, env.projectService.Delete(bob.ID, project.ID), ErrProjectNotFound)
}
