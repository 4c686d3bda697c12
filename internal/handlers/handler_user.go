package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/workspace_finance_app/internal/core/ports/services"
	"github.com/SscSPs/workspace_finance_app/internal/dto"
	"github.com/SscSPs/workspace_finance_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// userHandler serves the caller's own profile.
type userHandler struct {
	userService portssvc.UserSvcFacade
}

func newUserHandler(us portssvc.UserSvcFacade) *userHandler {
	return &userHandler{userService: us}
}

func registerUserRoutes(rg *gin.RouterGroup, userService portssvc.UserSvcFacade) {
	h := newUserHandler(userService)

	user := rg.Group("/user")
	{
		user.GET("/profile", h.getProfile)
		user.PUT("/profile", h.updateProfile)
		user.PUT("/avatar", h.updateAvatar)
	}
}

// getProfile godoc
// @Summary Get the caller's profile
// @Tags user
// @Produce  json
// @Success 200 {object} dto.UserResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Security BearerAuth
// @Router /user/profile [get]
func (h *userHandler) getProfile(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	user, err := h.userService.GetProfile(c.Request.Context(), userID)
	if err != nil {
		respondWithError(c, err, "Failed to retrieve profile")
		return
	}
	c.JSON(http.StatusOK, dto.ToUserResponse(user))
}

// updateProfile godoc
// @Summary Update the caller's name and phone
// @Tags user
// @Accept  json
// @Produce  json
// @Param   profile body dto.UpdateProfileRequest true "Profile fields"
// @Success 200 {object} dto.UserResponse
// @Failure 400 {object} map[string]string "Validation error"
// @Security BearerAuth
// @Router /user/profile [put]
func (h *userHandler) updateProfile(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	var req dto.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	user, err := h.userService.UpdateProfile(c.Request.Context(), userID, req)
	if err != nil {
		respondWithError(c, err, "Failed to update profile")
		return
	}
	middleware.GetLoggerFromContext(c).Info("Profile updated", slog.String("user_id", userID))
	c.JSON(http.StatusOK, dto.ToUserResponse(user))
}

// updateAvatar godoc
// @Summary Replace the caller's avatar
// @Description Accepts a base-64 PNG, JPEG, GIF or WebP data URI
// @Tags user
// @Accept  json
// @Produce  json
// @Param   avatar body dto.UpdateAvatarRequest true "Avatar data URI"
// @Success 200 {object} dto.UserResponse
// @Failure 400 {object} map[string]string "Unsupported or oversized image"
// @Security BearerAuth
// @Router /user/avatar [put]
func (h *userHandler) updateAvatar(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	var req dto.UpdateAvatarRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	user, err := h.userService.UpdateAvatar(c.Request.Context(), userID, req)
	if err != nil {
		respondWithError(c, err, "Failed to update avatar")
		return
	}
	c.JSON(http.StatusOK, dto.ToUserResponse(user))
}
