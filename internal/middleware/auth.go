package middleware

import (
    "net/http"
    "strings"

    "github.com/gin-gonic/gin"
    "github.com/golang-jwt/jwt/v5"
)

// Claims carried by the admin bearer token issued after a PIN login.
type Claims struct {
    SessionID string `json:"session_id"`
    Role      string `json:"role"`
    jwt.RegisteredClaims
}

// AdminAuth guards the admin API group. The token is short-lived and only
// ever issued by the PIN login endpoint; there are no users or roles beyond
// "admin".
func AdminAuth(secret string) gin.HandlerFunc {
    return func(c *gin.Context) {
        auth := c.GetHeader("Authorization")
        if auth == "" || !strings.HasPrefix(strings.ToLower(auth), "bearer ") {
            c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing or invalid authorization header"})
            return
        }
        tokenStr := strings.TrimSpace(auth[len("Bearer "):])

        claims := &Claims{}
        token, err := jwt.ParseWithClaims(tokenStr, claims, func(token *jwt.Token) (interface{}, error) {
            return []byte(secret), nil
        })
        if err != nil || !token.Valid || claims.Role != "admin" {
            c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
            return
        }

        c.Set("admin_session_id", claims.SessionID)
        c.Next()
    }
}
