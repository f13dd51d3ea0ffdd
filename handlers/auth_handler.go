package handlers

import (
	"tunecheck/helper"
	"tunecheck/middleware"
	"tunecheck/models"
	"tunecheck/services"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	authService services.AuthService
	Helper      *helper.HTTPHelper
}

func NewAuthHandler(authService services.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

func (h *AuthHandler) Register(c *gin.Context) {
	var req models.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Helper.SendBadRequest(c, "Error ", err.Error())
		return
	}

	user, err := h.authService.Register(req)
	if err != nil {
		h.Helper.SendOperationError(c, err)
		return
	}

	h.Helper.SendSuccess(c, "Register success", user)
}

// Login exchanges form-encoded credentials for a bearer token, OAuth2
// password-flow style.
func (h *AuthHandler) Login(c *gin.Context) {
	username := c.PostForm("username")
	password := c.PostForm("password")
	if username == "" || password == "" {
		h.Helper.SendBadRequest(c, "username and password required", h.Helper.EmptyJsonMap())
		return
	}

	token, err := h.authService.Login(username, password)
	if err != nil {
		h.Helper.SendOperationError(c, err)
		return
	}

	h.Helper.SendSuccess(c, "Login success", token)
}

func (h *AuthHandler) GetProfile(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		h.Helper.SendUnauthorizedError(c, "User not found in context", h.Helper.EmptyJsonMap())
		return
	}

	h.Helper.SendSuccess(c, "Profile loaded", user)
}
