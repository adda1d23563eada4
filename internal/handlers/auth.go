package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/EliandyDumortier/Cycling-App/internal/audit"
	"github.com/EliandyDumortier/Cycling-App/internal/metrics"
	"github.com/EliandyDumortier/Cycling-App/internal/middleware"
	"github.com/EliandyDumortier/Cycling-App/internal/repository"
	"github.com/EliandyDumortier/Cycling-App/internal/service"
)

// AuthHandler handles authentication HTTP requests.
type AuthHandler struct {
	authService   service.AuthService
	actionLogRepo repository.ActionLogRepository
}

// NewAuthHandler creates a new AuthHandler instance.
func NewAuthHandler(authService service.AuthService, actionLogRepo repository.ActionLogRepository) *AuthHandler {
	return &AuthHandler{
		authService:   authService,
		actionLogRepo: actionLogRepo,
	}
}

// LoginRequest represents the form-encoded login payload.
type LoginRequest struct {
	Email    string `form:"email" binding:"required,email"`
	Password string `form:"password" binding:"required"`
}

// Login godoc
// @Summary User login
// @Description Authenticate with email and password and return a bearer token
// @Tags auth
// @Accept x-www-form-urlencoded
// @Produce json
// @Param email formData string true "Email"
// @Param password formData string true "Password"
// @Success 200 {object} service.LoginResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBind(&req); err != nil {
		RespondError(c, http.StatusBadRequest, err.Error())
		return
	}

	response, err := h.authService.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		metrics.LoginAttempts.WithLabelValues("failure").Inc()
		_ = audit.LogAction(c.Request.Context(), h.actionLogRepo, audit.ActionLoginFailure, nil, map[string]any{
			"email": req.Email,
		})
		if errors.Is(err, service.ErrInvalidCredentials) {
			// One message for unknown email and wrong password.
			RespondError(c, http.StatusUnauthorized, "incorrect email or password")
			return
		}
		LogAndRespondError(c, http.StatusInternalServerError, err, "internal server error")
		return
	}

	metrics.LoginAttempts.WithLabelValues("success").Inc()
	_ = audit.LogAction(c.Request.Context(), h.actionLogRepo, audit.ActionLoginSuccess, &response.UserID, nil)

	c.JSON(http.StatusOK, response)
}

// Me godoc
// @Summary Current user
// @Description Return the account resolved from the bearer token
// @Tags auth
// @Security BearerAuth
// @Produce json
// @Success 200 {object} models.User
// @Failure 401 {object} map[string]string
// @Router /users/me [get]
func (h *AuthHandler) Me(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		RespondError(c, http.StatusUnauthorized, "unauthorized")
		return
	}
	c.JSON(http.StatusOK, user)
}
