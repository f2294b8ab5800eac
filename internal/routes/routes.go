package routes

import (
    "time"

    "github.com/gin-gonic/gin"

    "github.com/aftral/kiosk_backend_v1/internal/config"
    "github.com/aftral/kiosk_backend_v1/internal/content"
    "github.com/aftral/kiosk_backend_v1/internal/controllers"
    "github.com/aftral/kiosk_backend_v1/internal/kiosk"
    "github.com/aftral/kiosk_backend_v1/internal/middleware"
    "github.com/aftral/kiosk_backend_v1/internal/ws"
)

func Register(r *gin.Engine, svc *content.Service, tracker *content.Tracker, hub *ws.KioskHub, cfg *config.Config) {
    tokenTTL, err := time.ParseDuration(cfg.AdminTokenTTLMinutes + "m")
    if err != nil || tokenTTL == 0 {
        tokenTTL = 30 * time.Minute
    }

    contentCtrl := &controllers.ContentController{Svc: svc, Cfg: cfg}
    authCtrl := &controllers.AdminAuthController{
        Gate:      &kiosk.Gate{Pins: svc},
        Hub:       hub,
        JWTSecret: cfg.JWTSecret,
        TokenTTL:  tokenTTL,
    }
    newsCtrl := &controllers.NewsController{Svc: svc, Hub: hub}
    settingsCtrl := &controllers.SettingsController{Svc: svc, Hub: hub}
    analyticsCtrl := &controllers.AnalyticsController{Tracker: tracker}
    prefsCtrl := &controllers.PrefsController{Svc: svc}

    r.GET("/healthz", func(c *gin.Context) {
        c.JSON(200, gin.H{"status": "ok"})
    })

    // Kiosk display realtime session
    r.GET("/ws/kiosk", ws.KioskHandler(hub, svc, tracker))

    // Public
    api := r.Group("/api/v1")
    {
        api.GET("/content", contentCtrl.Get)
        api.GET("/config/public", contentCtrl.PublicConfig)

        api.POST("/track/screen-view", analyticsCtrl.TrackScreenView)
        api.POST("/track/profile-select", analyticsCtrl.TrackProfileSelect)
        api.POST("/track/qr-scan", analyticsCtrl.TrackQrScan)
        api.POST("/track/help-request", analyticsCtrl.TrackHelpRequest)

        api.PUT("/prefs/accessibility", prefsCtrl.UpdateAccessibility)
        api.POST("/prefs/accessibility/cycle-font", prefsCtrl.CycleFontSize)
        api.PUT("/prefs/locale", prefsCtrl.UpdateLocale)

        api.POST("/admin/login", authCtrl.Login)
    }

    // Admin (PIN login -> bearer token)
    admin := api.Group("/admin", middleware.AdminAuth(cfg.JWTSecret))
    {
        admin.POST("/logout", authCtrl.Logout)

        admin.GET("/news", newsCtrl.List)
        admin.POST("/news", newsCtrl.Create)
        admin.PUT("/news/:id", newsCtrl.Update)
        admin.DELETE("/news/:id", newsCtrl.Delete)

        admin.GET("/settings", settingsCtrl.Get)
        admin.PUT("/settings", settingsCtrl.Update)
        admin.POST("/reset", settingsCtrl.Reset)

        admin.GET("/analytics", analyticsCtrl.Snapshot)
        admin.POST("/analytics/reset", analyticsCtrl.Reset)
    }
}
