package controllers

import (
    "net/http"

    "github.com/gin-gonic/gin"

    "github.com/aftral/kiosk_backend_v1/internal/config"
    "github.com/aftral/kiosk_backend_v1/internal/content"
)

type ContentController struct {
    Svc *content.Service
    Cfg *config.Config
}

// Get returns the merged content document (baseline plus any admin
// overrides).
func (cc *ContentController) Get(c *gin.Context) {
    c.JSON(http.StatusOK, cc.Svc.Data())
}

// PublicConfig returns everything a display needs before it renders:
// screensaver timeout, locale and accessibility preferences.
func (cc *ContentController) PublicConfig(c *gin.Context) {
    settings := cc.Svc.AdminSettings()
    c.JSON(http.StatusOK, gin.H{
        "screensaver_timeout": settings.ScreensaverTimeout,
        "locale":              cc.Svc.Locale(),
        "accessibility":       cc.Svc.Accessibility(),
        "layout_version":      cc.Cfg.LayoutVersion,
        "schema_version":      1,
    })
}
