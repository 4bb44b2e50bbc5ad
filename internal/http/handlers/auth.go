package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

type loginRequest struct {
	Password string `json:"password"`
}

// POST /api/auth/login
// Admin login untuk endpoint arsip. Hash password diambil dari env.
func Login(c *gin.Context) {
	var req loginRequest
	if !BindJSONOrError(c, &req) {
		return
	}

	if appEnv.AdminPasswordHash == "" {
		respondError(c, http.StatusServiceUnavailable, "admin_disabled", "admin login belum dikonfigurasi", nil)
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(appEnv.AdminPasswordHash), []byte(req.Password)); err != nil {
		respondError(c, http.StatusUnauthorized, "invalid_credentials", "password salah", nil)
		return
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"role": "admin",
		"iat":  time.Now().Unix(),
		"exp":  time.Now().Add(24 * time.Hour).Unix(),
	})
	tokenString, err := token.SignedString([]byte(appEnv.SessionSecret))
	if err != nil {
		respondError(c, http.StatusInternalServerError, "token_sign_failed", "gagal membuat token", nil)
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": tokenString})
}
