package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"

	"todoweb/internal/constants"
	weberrors "todoweb/internal/errors"
	"todoweb/internal/services"
)

// AuthHandler coordinates the session login/signup pages.
type AuthHandler struct {
	authService *services.AuthService
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(authService *services.AuthService) *AuthHandler {
	return &AuthHandler{
		authService: authService,
	}
}

// LoginPage renders the login form.
func (h *AuthHandler) LoginPage(c *gin.Context) {
	c.HTML(http.StatusOK, "login.html", gin.H{})
}

// Login authenticates a user and initializes the session.
func (h *AuthHandler) Login(c *gin.Context) {
	username := c.PostForm("username")
	password := c.PostForm("password")

	user, err := h.authService.Login(services.LoginInput{
		Username: username,
		Password: password,
	})
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			c.HTML(http.StatusOK, "login.html", gin.H{
				"error":    "Invalid username or password.",
				"username": username,
			})
			return
		}
		weberrors.InternalError(c)
		return
	}

	session := sessions.Default(c)
	session.Set(constants.ContextKeyUserID, user.ID.String())
	if err := session.Save(); err != nil {
		weberrors.InternalError(c)
		return
	}

	c.Redirect(http.StatusSeeOther, "/projects/")
}

// SignupPage renders the registration form.
func (h *AuthHandler) SignupPage(c *gin.Context) {
	c.HTML(http.StatusOK, "signup.html", gin.H{})
}

// Signup registers a new user and logs them in.
func (h *AuthHandler) Signup(c *gin.Context) {
	input := services.SignupInput{
		Email:    c.PostForm("email"),
		Username: c.PostForm("username"),
		Password: c.PostForm("password"),
	}

	user, err := h.authService.Signup(input)
	if err != nil {
		msg, known := signupErrorMessage(err)
		if !known {
			weberrors.InternalError(c)
			return
		}
		c.HTML(http.StatusOK, "signup.html", gin.H{
			"error":    msg,
			"email":    input.Email,
			"username": input.Username,
		})
		return
	}

	session := sessions.Default(c)
	session.Set(constants.ContextKeyUserID, user.ID.String())
	if err := session.Save(); err != nil {
		weberrors.InternalError(c)
		return
	}

	c.Redirect(http.StatusSeeOther, "/projects/")
}

// Logout removes the authentication session.
func (h *AuthHandler) Logout(c *gin.Context) {
	session := sessions.Default(c)
	session.Clear()
	if err := session.Save(); err != nil {
		weberrors.InternalError(c)
		return
	}

	c.Redirect(http.StatusSeeOther, "/login")
}

func signupErrorMessage(err error) (string, bool) {
	switch {
	case errors.Is(err, services.ErrEmailRequired):
		return "Email is required.", true
	case errors.Is(err, services.ErrUsernameRequired):
		return "Username is required.", true
	case errors.Is(err, services.ErrPasswordTooShort):
		return fmt.Sprintf("Password must be at least %d characters.", constants.MinPasswordLength), true
	case errors.Is(err, services.ErrUsernameTaken):
		return "That username is taken.", true
	case errors.Is(err, services.ErrEmailTaken):
		return "That email is already registered.", true
	default:
		return "", false
	}
}
