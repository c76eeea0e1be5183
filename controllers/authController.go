package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/abivignesh701/fittrack/helpers"
	"github.com/abivignesh701/fittrack/models"
	"github.com/abivignesh701/fittrack/services"
)

var validate = validator.New()

// AuthController handles signup, login and the password-reset flow.
type AuthController struct {
	users *services.UserService
}

func NewAuthController(users *services.UserService) *AuthController {
	return &AuthController{users: users}
}

func (ac *AuthController) Signup() gin.HandlerFunc {
	return func(c *gin.Context) {
		var user models.User
		if err := c.BindJSON(&user); err != nil {
			respondError(c, http.StatusBadRequest, "Invalid request body", err)
			return
		}

		if validationErr := validate.Struct(user); validationErr != nil {
			respondError(c, http.StatusBadRequest, "Validation failed", validationErr)
			return
		}

		count, err := ac.users.CountByEmail(c.Request.Context(), *user.Email)
		if err != nil {
			respondError(c, http.StatusInternalServerError, "Error checking existing users", err)
			return
		}
		if count > 0 {
			respondError(c, http.StatusBadRequest, "Email already exists", nil)
			return
		}

		user.Password = helpers.HashPassword(user.Password)
		user.Created_at = time.Now()
		user.Updated_at = time.Now()
		user.ID = primitive.NewObjectID()
		user.User_id = user.ID.Hex()

		accessToken, refreshToken, err := helpers.GenerateTokens(*user.Email, user.User_id)
		if err != nil {
			respondError(c, http.StatusInternalServerError, "Error generating tokens", err)
			return
		}
		user.Token = &accessToken
		user.Refresh_token = &refreshToken

		if err := ac.users.Create(c.Request.Context(), &user); err != nil {
			respondError(c, http.StatusInternalServerError, "Error creating user", err)
			return
		}

		user.Password = nil
		user.Token = nil
		user.Refresh_token = nil
		respondOK(c, gin.H{
			"token":         accessToken,
			"refresh_token": refreshToken,
			"user":          user,
		}, "User created successfully")
	}
}

func (ac *AuthController) Login() gin.HandlerFunc {
	return func(c *gin.Context) {
		var loginInput models.User
		if err := c.BindJSON(&loginInput); err != nil {
			respondError(c, http.StatusBadRequest, "Invalid request body", err)
			return
		}
		if loginInput.Email == nil || loginInput.Password == nil {
			respondError(c, http.StatusBadRequest, "Email and password are required", nil)
			return
		}

		foundUser, err := ac.users.FindByEmail(c.Request.Context(), *loginInput.Email)
		if err != nil {
			respondError(c, http.StatusUnauthorized, "Invalid email or password", nil)
			return
		}

		passwordIsValid, _ := helpers.VerifyPassword(*foundUser.Password, *loginInput.Password)
		if !passwordIsValid {
			respondError(c, http.StatusUnauthorized, "Invalid email or password", nil)
			return
		}

		token, refreshToken, err := helpers.GenerateTokens(*foundUser.Email, foundUser.User_id)
		if err != nil {
			respondError(c, http.StatusInternalServerError, "Error generating tokens", err)
			return
		}
		if err := ac.users.UpdateTokens(c.Request.Context(), foundUser.User_id, token, refreshToken); err != nil {
			respondError(c, http.StatusInternalServerError, "Error updating tokens", err)
			return
		}

		foundUser.Password = nil
		foundUser.Token = nil
		foundUser.Refresh_token = nil
		respondOK(c, gin.H{
			"token":         token,
			"refresh_token": refreshToken,
			"user":          foundUser,
		}, "Login successful")
	}
}

func (ac *AuthController) ForgotPassword() gin.HandlerFunc {
	return func(c *gin.Context) {
		var body struct {
			Email *string `json:"email" binding:"required"`
		}
		if err := c.BindJSON(&body); err != nil {
			respondError(c, http.StatusBadRequest, "Email is required", nil)
			return
		}

		// Don't reveal whether the email exists.
		neutral := "If an account exists with this email, you will receive reset instructions."

		foundUser, err := ac.users.FindByEmail(c.Request.Context(), *body.Email)
		if err != nil {
			respondOK(c, nil, neutral)
			return
		}

		resetToken, err := helpers.GenerateResetToken()
		if err != nil {
			respondError(c, http.StatusInternalServerError, "Failed to generate reset token", err)
			return
		}
		expires := time.Now().Add(1 * time.Hour)
		if err := ac.users.SetResetToken(c.Request.Context(), foundUser.User_id, resetToken, expires); err != nil {
			respondError(c, http.StatusInternalServerError, "Failed to set reset token", err)
			return
		}

		// In dev the token comes back so the frontend can open the reset page.
		// In production, send email only.
		respondOK(c, gin.H{"reset_token": resetToken}, neutral)
	}
}

func (ac *AuthController) ResetPassword() gin.HandlerFunc {
	return func(c *gin.Context) {
		var body struct {
			Token       string  `json:"token" binding:"required"`
			NewPassword *string `json:"new_password" binding:"required,min=6"`
		}
		if err := c.BindJSON(&body); err != nil {
			respondError(c, http.StatusBadRequest, "Token and new_password (min 6 chars) are required", nil)
			return
		}

		foundUser, err := ac.users.FindByResetToken(c.Request.Context(), body.Token)
		if err != nil {
			respondError(c, http.StatusBadRequest, "Invalid or expired reset link", nil)
			return
		}
		if foundUser.Reset_expires == nil || foundUser.Reset_expires.Before(time.Now()) {
			respondError(c, http.StatusBadRequest, "Reset link has expired", nil)
			return
		}

		hashed := helpers.HashPassword(body.NewPassword)
		if err := ac.users.ResetPassword(c.Request.Context(), foundUser.User_id, *hashed); err != nil {
			respondError(c, http.StatusInternalServerError, "Failed to update password", err)
			return
		}

		respondOK(c, nil, "Password reset successfully")
	}
}
