package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/tkhs0604/task-api/internal/dto"
	apierrors "github.com/tkhs0604/task-api/internal/errors"
	"github.com/tkhs0604/task-api/internal/services"
)

// AuthHandler coordinates registration and login HTTP handlers.
type AuthHandler struct {
	userService *services.UserService
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(userService *services.UserService) *AuthHandler {
	return &AuthHandler{
		userService: userService,
	}
}

// Register creates a new user account.
func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	if errs := req.Validate(); len(errs) > 0 {
		apierrors.ValidationFailed(c, errs)
		return
	}

	if _, err := h.userService.Register(services.RegisterInput{
		Name:                 req.Name,
		Email:                req.Email,
		Password:             req.Password,
		PasswordConfirmation: req.PasswordConfirmation,
	}); err != nil {
		respondAuthError(c, err)
		return
	}

	c.String(http.StatusCreated, "User registered successfully")
}

// Login authenticates a user and issues a bearer token.
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	if errs := req.Validate(); len(errs) > 0 {
		apierrors.ValidationFailed(c, errs)
		return
	}

	user, token, err := h.userService.Login(services.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		respondAuthError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Login successful",
		"token":   token,
		"user":    dto.ToLoginUserDTO(*user),
	})
}

func respondAuthError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrPasswordMismatch):
		apierrors.DomainFailure(c, "password and password_confirmation do not match")
	case errors.Is(err, services.ErrEmailExists):
		apierrors.DomainFailure(c, "email already exists")
	case errors.Is(err, services.ErrInvalidCredentials):
		// Unknown email and wrong password are deliberately indistinguishable.
		apierrors.DomainFailure(c, "Invalid email or password")
	default:
		apierrors.InternalError(c, "")
	}
}
