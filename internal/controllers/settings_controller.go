package controllers

import (
    "net/http"

    "github.com/gin-gonic/gin"

    "github.com/aftral/kiosk_backend_v1/internal/content"
    "github.com/aftral/kiosk_backend_v1/internal/ws"
)

type SettingsController struct {
    Svc *content.Service
    Hub *ws.KioskHub
}

func (s *SettingsController) Get(c *gin.Context) {
    c.JSON(http.StatusOK, s.Svc.AdminSettings())
}

type settingsUpdateRequest struct {
    PinCode            *string      `json:"pinCode" binding:"omitempty,len=4,numeric"`
    ScreensaverTimeout *FlexibleInt `json:"screensaverTimeout"`
}

// Update applies a partial settings edit. A PIN change takes effect on the
// next login attempt with no confirmation of the old PIN (kept as the
// kiosk always behaved). A timeout change retimes every connected display.
func (s *SettingsController) Update(c *gin.Context) {
    var req settingsUpdateRequest
    if err := c.ShouldBindJSON(&req); err != nil {
        c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
        return
    }
    if req.ScreensaverTimeout != nil && req.ScreensaverTimeout.Int() <= 0 {
        c.JSON(http.StatusBadRequest, gin.H{"error": "screensaverTimeout must be positive"})
        return
    }

    upd := content.SettingsUpdate{PinCode: req.PinCode}
    if req.ScreensaverTimeout != nil {
        timeout := req.ScreensaverTimeout.Int()
        upd.ScreensaverTimeout = &timeout
    }
    settings := s.Svc.UpdateAdminSettings(upd)
    s.Hub.NotifySettingsChanged(settings)
    c.JSON(http.StatusOK, settings)
}

// Reset restores the baseline content and default settings, clearing all
// stored overrides.
func (s *SettingsController) Reset(c *gin.Context) {
    s.Svc.ResetToDefaults()
    s.Hub.NotifyContentChanged()
    s.Hub.NotifySettingsChanged(s.Svc.AdminSettings())
    c.JSON(http.StatusOK, gin.H{"message": "reset to defaults"})
}
