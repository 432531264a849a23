package handlers

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"todoweb/internal/constants"
	"todoweb/internal/models"
	"todoweb/internal/repository"
	"todoweb/internal/services"
	"todoweb/internal/testutil"
)

type handlerTestEnv struct {
	db             *gorm.DB
	projectHandler *ProjectHandler
	taskHandler    *TaskHandler
	authHandler    *AuthHandler
	projectService *services.ProjectService
	taskService    *services.TaskService
}

func setupHandlerTest(t *testing.T) handlerTestEnv {
	t.Helper()

	gin.SetMode(gin.TestMode)

	db, err := testutil.NewInMemoryDB()
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() {
		sqlDB.Close()
	})

	projectService := services.NewProjectService(repository.NewProjectRepository(db))
	taskService := services.NewTaskService(repository.NewTaskRepository(db))
	authService := services.NewAuthService(repository.NewUserRepository(db))

	return handlerTestEnv{
		db:             db,
		projectHandler: NewProjectHandler(projectService, taskService),
		taskHandler:    NewTaskHandler(taskService, projectService),
		authHandler:    NewAuthHandler(authService),
		projectService: projectService,
		taskService:    taskService,
	}
}

// newTestContext builds a gin context with templates loaded. Form values may
// be nil for GET-style requests.
func newTestContext(t *testing.T, method, target string, form url.Values) (*gin.Context, *httptest.ResponseRecorder) {
	t.Helper()

	w := httptest.NewRecorder()
	c, r := gin.CreateTestContext(w)
	r.LoadHTMLGlob("../../web/templates/*.html")

	var req *http.Request
	if form != nil {
		req = httptest.NewRequest(method, target, strings.NewReader(form.Encode()))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	c.Request = req

	return c, w
}

func authenticate(c *gin.Context, userID uuid.UUID) {
	c.Set(constants.ContextKeyUserID, userID)
}

func markHTMX(c *gin.Context) {
	c.Request.Header.Set("HX-Request", "true")
}

func setParam(c *gin.Context, key, value string) {
	c.Params = append(c.Params, gin.Param{Key: key, Value: value})
}

func (env handlerTestEnv) createUser(t *testing.T, username string) *models.User {
	t.Helper()

	user := &models.User{
		Email:        username + "@example.com",
		Username:     username,
		PasswordHash: "hashed",
	}
	require.NoError(t, env.db.Create(user).Error)
	return user
}

func (env handlerTestEnv) createProject(t *testing.T, owner *models.User, name string) *models.Project {
	t.Helper()

	project, err := env.projectService.Create(owner.ID, services.ProjectInput{Name: name})
	require.NoError(t, err)
	return project
}

func (env handlerTestEnv) createTask(t *testing.T, project *models.Project, title string) *models.Task {
	t.Helper()

	task, err := env.taskService.Create(project, services.TaskInput{Title: title})
	require.NoError(t, err)
	return task
}
