package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/abivignesh701/fittrack/services"
)

// UserController handles profile and progress endpoints.
type UserController struct {
	users    *services.UserService
	progress *services.ProgressService
}

func NewUserController(users *services.UserService, progress *services.ProgressService) *UserController {
	return &UserController{users: users, progress: progress}
}

func (uc *UserController) GetProfile() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := getUserID(c)
		if userID == "" {
			return
		}
		user, err := uc.users.FindByUserID(c.Request.Context(), userID)
		if errors.Is(err, services.ErrUserNotFound) {
			respondError(c, http.StatusNotFound, "User not found", nil)
			return
		}
		if err != nil {
			respondError(c, http.StatusInternalServerError, "Error fetching profile", err)
			return
		}

		user.Password = nil
		user.Token = nil
		user.Refresh_token = nil
		respondOK(c, user, "")
	}
}

func (uc *UserController) UpdateProfile() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := getUserID(c)
		if userID == "" {
			return
		}
		var in services.ProfileUpdate
		if err := c.BindJSON(&in); err != nil {
			respondError(c, http.StatusBadRequest, "Invalid request body", err)
			return
		}

		user, err := uc.users.UpdateProfile(c.Request.Context(), userID, in)
		if errors.Is(err, services.ErrUserNotFound) {
			respondError(c, http.StatusNotFound, "User not found", nil)
			return
		}
		if err != nil {
			respondError(c, http.StatusInternalServerError, "Error updating profile", err)
			return
		}

		user.Password = nil
		user.Token = nil
		user.Refresh_token = nil
		respondOK(c, user, "Profile updated successfully")
	}
}

// GetProgress returns summary statistics for a trailing window of days
// (default 7).
func (uc *UserController) GetProgress() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := getUserID(c)
		if userID == "" {
			return
		}
		days := 7
		if d := c.Query("days"); d != "" {
			if n, err := strconv.Atoi(d); err == nil && n > 0 {
				days = n
			}
		}

		summary, err := uc.progress.Summary(c.Request.Context(), userID, days)
		if err != nil {
			respondError(c, http.StatusInternalServerError, "Error fetching progress", err)
			return
		}
		respondOK(c, summary, "")
	}
}
