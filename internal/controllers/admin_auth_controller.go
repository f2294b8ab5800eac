package controllers

import (
    "net/http"
    "time"

    "github.com/gin-gonic/gin"
    "github.com/golang-jwt/jwt/v5"

    "github.com/aftral/kiosk_backend_v1/internal/kiosk"
    "github.com/aftral/kiosk_backend_v1/internal/middleware"
    "github.com/aftral/kiosk_backend_v1/internal/ws"
)

type AdminAuthController struct {
    Gate      *kiosk.Gate
    Hub       *ws.KioskHub
    JWTSecret string
    TokenTTL  time.Duration
}

type adminLoginRequest struct {
    Pin       string `json:"pin" binding:"required"`
    SessionID string `json:"session_id"`
}

// Login checks the candidate PIN against the stored one and on success
// issues a short-lived admin bearer token. The PIN is re-read from the
// settings store on every attempt, so a PIN change applies immediately.
// Failed attempts are unlimited; the gate is a kiosk convenience, not a
// security boundary.
func (a *AdminAuthController) Login(c *gin.Context) {
    var req adminLoginRequest
    if err := c.ShouldBindJSON(&req); err != nil {
        c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
        return
    }

    if !a.Gate.Check(req.Pin) {
        c.JSON(http.StatusUnauthorized, gin.H{"error": "incorrect code"})
        return
    }

    now := time.Now().UTC()
    claims := middleware.Claims{
        SessionID: req.SessionID,
        Role:      "admin",
        RegisteredClaims: jwt.RegisteredClaims{
            Issuer:    "kiosk_backend_v1",
            IssuedAt:  jwt.NewNumericDate(now),
            ExpiresAt: jwt.NewNumericDate(now.Add(a.TokenTTL)),
        },
    }
    token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
    signed, err := token.SignedString([]byte(a.JWTSecret))
    if err != nil {
        c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to sign token"})
        return
    }

    a.Hub.SetAdmin(req.SessionID, true)

    c.JSON(http.StatusOK, gin.H{
        "access_token": signed,
        "token_type":   "Bearer",
        "expires_in":   int(a.TokenTTL.Seconds()),
    })
}

// Logout drops the admin flag on the display session. The bearer token
// itself simply expires.
func (a *AdminAuthController) Logout(c *gin.Context) {
    if id := c.GetString("admin_session_id"); id != "" {
        a.Hub.SetAdmin(id, false)
    }
    c.JSON(http.StatusOK, gin.H{"message": "logged out"})
}
