package handlers

import (
	"net/http"

	"hdmonks/middleware"
	"hdmonks/models"
	"hdmonks/services/auth"
	"hdmonks/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AuthHandler serves login, verify and logout for one role.
type AuthHandler struct {
	Svc  auth.AuthService
	Role models.Role
}

func NewAuthHandler(svc auth.AuthService, role models.Role) *AuthHandler {
	return &AuthHandler{Svc: svc, Role: role}
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req models.LoginRequest
	if !bindJSON(c, &req) {
		return
	}
	resp, err := h.Svc.Authenticate(c.Request.Context(), h.Role, req.Username, req.Password)
	if err != nil {
		getLogger(c).Info("Login failed", zap.String("role", string(h.Role)), zap.String("username", req.Username))
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success":   true,
		"token":     resp.Token,
		"principal": resp.Principal,
		"data":      resp,
	})
}

func (h *AuthHandler) Verify(c *gin.Context) {
	session, ok := middleware.CurrentSession(c)
	if !ok {
		utils.JSONError(c, http.StatusUnauthorized, "Invalid token")
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success":   true,
		"principal": session,
		"data":      session,
	})
}

func (h *AuthHandler) Logout(c *gin.Context) {
	session, ok := middleware.CurrentSession(c)
	if !ok {
		utils.JSONError(c, http.StatusUnauthorized, "Invalid token")
		return
	}
	if err := h.Svc.Logout(c.Request.Context(), session, c.GetString(middleware.TokenKey)); err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, nil, "Logged out")
}

func (h *AuthHandler) RegisterPartner(c *gin.Context) {
	var req models.PartnerRegistration
	if !bindJSON(c, &req) {
		return
	}
	p, err := h.Svc.RegisterPartner(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, p, "Partner registered")
}
