package handlers

import (
	"net/http"
	"time"

	"backend/internal/config"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

// AuthHandler issues short-lived admin tokens when admin credentials are
// configured through the environment.
type AuthHandler struct {
	Env config.Env
}

type tokenRequest struct {
	Password string `json:"password" binding:"required"`
}

// POST /api/auth/token
func (h AuthHandler) Token(c *gin.Context) {
	if h.Env.JWTSecret == "" || h.Env.AdminPasswordHash == "" {
		respondError(c, http.StatusServiceUnavailable, "not_configured", "admin auth is not configured")
		return
	}

	var req tokenRequest
	if !BindJSONOrError(c, &req) {
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(h.Env.AdminPasswordHash), []byte(req.Password)); err != nil {
		respondError(c, http.StatusUnauthorized, "unauthorized", "invalid password")
		return
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"role": "admin",
		"exp":  time.Now().Add(24 * time.Hour).Unix(),
	})
	signed, err := token.SignedString([]byte(h.Env.JWTSecret))
	if err != nil {
		respondError(c, http.StatusInternalServerError, "internal_error", "failed to sign token")
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": signed})
}
