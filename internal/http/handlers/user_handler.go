package handlers

import (
	"net/http"
	"strconv"

	"avagostar-product-api/internal/http/middleware"
	"avagostar-product-api/internal/models"
	"avagostar-product-api/internal/services"
	"avagostar-product-api/internal/utils"
	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	users *services.UserService
}

type ProfileUpdateRequest struct {
	Email     *string `json:"email" binding:"omitempty,email,max=255"`
	Username  *string `json:"username" binding:"omitempty,max=100"`
	FirstName *string `json:"first_name" binding:"omitempty,max=100"`
	LastName  *string `json:"last_name" binding:"omitempty,max=100"`
}

type AdminUserUpdateRequest struct {
	ProfileUpdateRequest
	Role       *models.Role `json:"role" binding:"omitempty,oneof=admin moderator user"`
	IsActive   *bool        `json:"is_active"`
	IsVerified *bool        `json:"is_verified"`
}

func NewUserHandler(users *services.UserService) *UserHandler {
	return &UserHandler{users: users}
}

func userIDParam(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		utils.RespondValidationError(c, "invalid user id")
		return 0, false
	}
	return id, true
}

func (h *UserHandler) List(c *gin.Context) {
	skip, _ := strconv.Atoi(c.DefaultQuery("skip", "0"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "100"))

	users, total, err := h.users.List(c.Request.Context(), skip, limit)
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	utils.RespondList(c, "users", users, gin.H{"total": total, "skip": skip, "limit": limit})
}

func (h *UserHandler) GetByID(c *gin.Context) {
	id, ok := userIDParam(c)
	if !ok {
		return
	}

	user, err := h.users.GetByID(c.Request.Context(), id)
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	utils.RespondOK(c, "user", user)
}

func (h *UserHandler) GetMe(c *gin.Context) {
	user := middleware.CurrentUser(c)
	if user == nil {
		utils.RespondError(c, utils.ErrUnauthorized("missing user"))
		return
	}
	utils.RespondOK(c, "current user", user)
}

func (h *UserHandler) UpdateMe(c *gin.Context) {
	user := middleware.CurrentUser(c)
	if user == nil {
		utils.RespondError(c, utils.ErrUnauthorized("missing user"))
		return
	}

	var req ProfileUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondValidationError(c, err.Error())
		return
	}

	updated, err := h.users.UpdateProfile(c.Request.Context(), user, services.ProfileUpdateInput{
		Email:     req.Email,
		Username:  req.Username,
		FirstName: req.FirstName,
		LastName:  req.LastName,
	})
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	utils.RespondOK(c, "profile updated", updated)
}

func (h *UserHandler) Update(c *gin.Context) {
	actor := middleware.CurrentUser(c)
	if actor == nil {
		utils.RespondError(c, utils.ErrUnauthorized("missing user"))
		return
	}

	id, ok := userIDParam(c)
	if !ok {
		return
	}

	var req AdminUserUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondValidationError(c, err.Error())
		return
	}

	updated, err := h.users.AdminUpdate(c.Request.Context(), actor, id, services.AdminUserUpdateInput{
		ProfileUpdateInput: services.ProfileUpdateInput{
			Email:     req.Email,
			Username:  req.Username,
			FirstName: req.FirstName,
			LastName:  req.LastName,
		},
		Role:       req.Role,
		IsActive:   req.IsActive,
		IsVerified: req.IsVerified,
	})
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	utils.RespondOK(c, "user updated", updated)
}

func (h *UserHandler) Delete(c *gin.Context) {
	actor := middleware.CurrentUser(c)
	if actor == nil {
		utils.RespondError(c, utils.ErrUnauthorized("missing user"))
		return
	}

	id, ok := userIDParam(c)
	if !ok {
		return
	}

	if err := h.users.Delete(c.Request.Context(), actor, id); err != nil {
		utils.RespondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *UserHandler) Activate(c *gin.Context) {
	h.setActive(c, true, "user activated")
}

func (h *UserHandler) Deactivate(c *gin.Context) {
	h.setActive(c, false, "user deactivated")
}

func (h *UserHandler) setActive(c *gin.Context, active bool, message string) {
	actor := middleware.CurrentUser(c)
	if actor == nil {
		utils.RespondError(c, utils.ErrUnauthorized("missing user"))
		return
	}

	id, ok := userIDParam(c)
	if !ok {
		return
	}

	updated, err := h.users.SetActive(c.Request.Context(), actor, id, active)
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	utils.RespondOK(c, message, updated)
}

func (h *UserHandler) Verify(c *gin.Context) {
	id, ok := userIDParam(c)
	if !ok {
		return
	}

	updated, err := h.users.Verify(c.Request.Context(), id)
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	utils.RespondOK(c, "user verified", updated)
}

func (h *UserHandler) Stats(c *gin.Context) {
	stats, err := h.users.Stats(c.Request.Context())
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	utils.RespondOK(c, "user stats", stats)
}
