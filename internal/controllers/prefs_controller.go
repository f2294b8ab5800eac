package controllers

import (
    "net/http"

    "github.com/gin-gonic/gin"

    "github.com/aftral/kiosk_backend_v1/internal/content"
    "github.com/aftral/kiosk_backend_v1/internal/models"
)

type PrefsController struct {
    Svc *content.Service
}

type accessibilityRequest struct {
    FontSize     string `json:"fontSize" binding:"required,oneof=normal large xlarge"`
    HighContrast bool   `json:"highContrast"`
}

func (p *PrefsController) UpdateAccessibility(c *gin.Context) {
    var req accessibilityRequest
    if err := c.ShouldBindJSON(&req); err != nil {
        c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
        return
    }
    prefs := models.AccessibilityPrefs{FontSize: req.FontSize, HighContrast: req.HighContrast}
    p.Svc.SetAccessibility(prefs)
    c.JSON(http.StatusOK, prefs)
}

// CycleFontSize steps the font size the way the accessibility toolbar
// button does: normal, large, xlarge, back to normal.
func (p *PrefsController) CycleFontSize(c *gin.Context) {
    c.JSON(http.StatusOK, p.Svc.CycleFontSize())
}

type localeRequest struct {
    Locale string `json:"locale" binding:"required"`
}

func (p *PrefsController) UpdateLocale(c *gin.Context) {
    var req localeRequest
    if err := c.ShouldBindJSON(&req); err != nil {
        c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
        return
    }
    if !p.Svc.SetLocale(req.Locale) {
        c.JSON(http.StatusBadRequest, gin.H{"error": "unsupported locale"})
        return
    }
    c.JSON(http.StatusOK, gin.H{"locale": p.Svc.Locale()})
}
