package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/abivignesh701/fittrack/helpers"
)

// Response is the uniform envelope every endpoint answers with.
type Response struct {
	Success bool   `json:"success"`
	Data    any    `json:"data,omitempty"`
	Message string `json:"message,omitempty"`
	Error   string `json:"error,omitempty"`
	Count   *int   `json:"count,omitempty"`
}

func respondOK(c *gin.Context, data any, message string) {
	c.JSON(http.StatusOK, Response{Success: true, Data: data, Message: message})
}

// respondList is respondOK plus the count field history endpoints carry.
func respondList(c *gin.Context, data any, count int) {
	c.JSON(http.StatusOK, Response{Success: true, Data: data, Count: &count})
}

func respondError(c *gin.Context, status int, message string, err error) {
	resp := Response{Success: false, Message: message}
	if err != nil {
		resp.Error = err.Error()
	}
	c.JSON(status, resp)
}

// getUserID reads the authenticated caller's id stashed by the auth
// middleware. Writes the 401 itself and returns "" when missing.
func getUserID(c *gin.Context) string {
	claimsVal, ok := c.Get("claims")
	if !ok {
		respondError(c, http.StatusUnauthorized, "Unauthorized", nil)
		return ""
	}
	claims, ok := claimsVal.(*helpers.Claims)
	if !ok {
		respondError(c, http.StatusUnauthorized, "Invalid claims", nil)
		return ""
	}
	return claims.UserID
}

// parseDate accepts the two date shapes the frontend sends.
func parseDate(s string) (time.Time, bool) {
	for _, layout := range []string{time.RFC3339, "2006-01-02"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
