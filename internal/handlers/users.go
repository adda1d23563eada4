package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/EliandyDumortier/Cycling-App/internal/audit"
	"github.com/EliandyDumortier/Cycling-App/internal/authz"
	"github.com/EliandyDumortier/Cycling-App/internal/metrics"
	"github.com/EliandyDumortier/Cycling-App/internal/middleware"
	"github.com/EliandyDumortier/Cycling-App/internal/models"
	"github.com/EliandyDumortier/Cycling-App/internal/repository"
	"github.com/EliandyDumortier/Cycling-App/internal/service"
)

// UserHandler handles account registration requests.
type UserHandler struct {
	accountService service.AccountService
	actionLogRepo  repository.ActionLogRepository
}

// NewUserHandler creates a new UserHandler instance.
func NewUserHandler(accountService service.AccountService, actionLogRepo repository.ActionLogRepository) *UserHandler {
	return &UserHandler{
		accountService: accountService,
		actionLogRepo:  actionLogRepo,
	}
}

// CreateUserRequest represents the registration payload.
type CreateUserRequest struct {
	Name                 string `json:"name" binding:"required"`
	Email                string `json:"email" binding:"required,email"`
	Password             string `json:"password" binding:"required,min=8"`
	PasswordConfirmation string `json:"password_confirmation" binding:"required"`
	Role                 string `json:"role" binding:"required"`
}

// Create godoc
// @Summary Register an account
// @Description Create a user account. Anonymous callers may register athlete accounts; coaches may create athletes; admins may create coaches.
// @Tags users
// @Accept json
// @Produce json
// @Param request body CreateUserRequest true "Account details"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /users [post]
func (h *UserHandler) Create(c *gin.Context) {
	var req CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, err.Error())
		return
	}

	caller, _ := middleware.CurrentUser(c)
	user, err := h.accountService.Register(c.Request.Context(), caller, service.RegisterRequest{
		Name:                 req.Name,
		Email:                req.Email,
		Password:             req.Password,
		PasswordConfirmation: req.PasswordConfirmation,
		Role:                 models.Role(req.Role),
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrPasswordMismatch):
			RespondError(c, http.StatusBadRequest, "passwords do not match")
		case errors.Is(err, service.ErrInvalidRole):
			RespondError(c, http.StatusBadRequest, "role must be athlete or coach")
		case errors.Is(err, authz.ErrForbidden):
			RespondError(c, http.StatusForbidden, "you are not allowed to create this account")
		case errors.Is(err, service.ErrDuplicateEmail):
			RespondError(c, http.StatusConflict, "email already registered")
		default:
			LogAndRespondError(c, http.StatusInternalServerError, err, "internal server error")
		}
		return
	}

	metrics.RegistrationsCreated.WithLabelValues(string(user.Role)).Inc()
	var creatorID *int64
	if caller != nil {
		creatorID = &caller.ID
	}
	_ = audit.LogAction(c.Request.Context(), h.actionLogRepo, audit.ActionUserCreated, creatorID, map[string]any{
		"created_user_id": user.ID,
		"role":            string(user.Role),
	})

	c.JSON(http.StatusOK, gin.H{
		"message": "user " + user.Name + " created successfully",
		"user":    user,
	})
}
