// Package controllers maps HTTP requests onto the service layer and service
// errors onto the response envelope.
package controllers

import (
	"errors"
	"net/http"

	"github.com/artcocktail/artcocktail/app/services"
	"github.com/artcocktail/artcocktail/pkg/bind"
	"github.com/artcocktail/artcocktail/pkg/logger"
	"github.com/artcocktail/artcocktail/pkg/middleware"
	"github.com/artcocktail/artcocktail/pkg/response"
)

// AuthController serves /api/auth.
type AuthController struct {
	service *services.AuthService
}

func NewAuthController(service *services.AuthService) *AuthController {
	return &AuthController{service: service}
}

type registerInput struct {
	Name     string `json:"name" validate:"required,max=100"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

type loginInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type authPayload struct {
	Token string      `json:"token"`
	User  interface{} `json:"user"`
}

// Register handles POST /api/auth/register.
func (c *AuthController) Register(w http.ResponseWriter, r *http.Request) {
	var in registerInput
	if !bindJSON(w, r, &in) {
		return
	}

	user, token, err := c.service.Register(in.Name, in.Email, in.Password)
	if err != nil {
		if errors.Is(err, services.ErrEmailTaken) {
			response.Error(w, http.StatusBadRequest, err.Error())
			return
		}
		logger.WithCtx(r.Context()).Error("register failed", "error", err)
		response.Internal(w, "Server error during registration")
		return
	}

	response.Created(w, authPayload{Token: token, User: user.Summary()})
}

// Login handles POST /api/auth/login.
func (c *AuthController) Login(w http.ResponseWriter, r *http.Request) {
	var in loginInput
	if !bindJSON(w, r, &in) {
		return
	}

	user, token, err := c.service.Login(in.Email, in.Password)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			response.Unauthorized(w, err.Error())
			return
		}
		logger.WithCtx(r.Context()).Error("login failed", "error", err)
		response.Internal(w, "Server error during login")
		return
	}

	response.Success(w, authPayload{Token: token, User: user.Summary()})
}

// Profile handles GET /api/auth/profile.
func (c *AuthController) Profile(w http.ResponseWriter, r *http.Request) {
	authUser, ok := middleware.UserFromCtx(r.Context())
	if !ok {
		response.Unauthorized(w, "")
		return
	}

	user, err := c.service.Profile(authUser.ID)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			response.Unauthorized(w, "User not found")
			return
		}
		logger.WithCtx(r.Context()).Error("profile failed", "error", err)
		response.Internal(w, "")
		return
	}

	response.Success(w, map[string]interface{}{"user": user})
}

// bindJSON decodes and validates the body, writing the 400 itself on failure.
func bindJSON(w http.ResponseWriter, r *http.Request, dest interface{}) bool {
	errs, err := bind.JSON(r, dest)
	if err != nil {
		response.Error(w, http.StatusBadRequest, err.Error())
		return false
	}
	if len(errs) > 0 {
		response.ValidationError(w, errs)
		return false
	}
	return true
}
