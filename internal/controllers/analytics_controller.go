package controllers

import (
    "net/http"

    "github.com/gin-gonic/gin"

    "github.com/aftral/kiosk_backend_v1/internal/content"
    "github.com/aftral/kiosk_backend_v1/internal/kiosk"
)

type AnalyticsController struct {
    Tracker *content.Tracker
}

// Snapshot returns the current counters for the admin dashboard.
func (a *AnalyticsController) Snapshot(c *gin.Context) {
    c.JSON(http.StatusOK, a.Tracker.Snapshot())
}

func (a *AnalyticsController) Reset(c *gin.Context) {
    a.Tracker.Reset()
    c.JSON(http.StatusOK, gin.H{"message": "analytics reset"})
}

type trackScreenRequest struct {
    Screen string `json:"screen" binding:"required"`
}

// TrackScreenView counts a screen view reported over REST (displays driven
// through the websocket are counted there instead).
func (a *AnalyticsController) TrackScreenView(c *gin.Context) {
    var req trackScreenRequest
    if err := c.ShouldBindJSON(&req); err != nil {
        c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
        return
    }
    screen := kiosk.Screen(req.Screen)
    if !screen.Valid() {
        c.JSON(http.StatusBadRequest, gin.H{"error": "unknown screen"})
        return
    }
    a.Tracker.TrackScreenView(screen)
    c.JSON(http.StatusOK, gin.H{"message": "tracked"})
}

type trackProfileRequest struct {
    Profile string `json:"profile" binding:"required"`
}

func (a *AnalyticsController) TrackProfileSelect(c *gin.Context) {
    var req trackProfileRequest
    if err := c.ShouldBindJSON(&req); err != nil {
        c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
        return
    }
    profile := kiosk.UserProfile(req.Profile)
    if !profile.Valid() {
        c.JSON(http.StatusBadRequest, gin.H{"error": "unknown profile"})
        return
    }
    a.Tracker.TrackProfileSelect(profile)
    c.JSON(http.StatusOK, gin.H{"message": "tracked"})
}

func (a *AnalyticsController) TrackQrScan(c *gin.Context) {
    a.Tracker.TrackQrScan()
    c.JSON(http.StatusOK, gin.H{"message": "tracked"})
}

func (a *AnalyticsController) TrackHelpRequest(c *gin.Context) {
    a.Tracker.TrackHelpRequest()
    c.JSON(http.StatusOK, gin.H{"message": "tracked"})
}
