package ws

import (
    "net/http"
    "time"

    "github.com/gin-gonic/gin"
    "github.com/google/uuid"
    "github.com/gorilla/websocket"

    "github.com/aftral/kiosk_backend_v1/internal/content"
    "github.com/aftral/kiosk_backend_v1/internal/kiosk"
)

var upgrader = websocket.Upgrader{
    ReadBufferSize:  1024,
    WriteBufferSize: 1024,
    // Displays run on the kiosk itself or the local network.
    CheckOrigin: func(r *http.Request) bool { return true },
}

// KioskHandler upgrades a display connection and binds a fresh kiosk
// session to it. Each connection counts once in the session analytics.
func KioskHandler(hub *KioskHub, svc *content.Service, tracker *content.Tracker) gin.HandlerFunc {
    return func(c *gin.Context) {
        if hub == nil {
            c.AbortWithStatusJSON(http.StatusServiceUnavailable, gin.H{"error": "realtime not available"})
            return
        }
        conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
        if err != nil {
            return
        }

        session := kiosk.NewSession(uuid.NewString())
        timeout := time.Duration(svc.AdminSettings().ScreensaverTimeout) * time.Millisecond
        client := newKioskClient(hub, conn, session, tracker, timeout)
        hub.register <- client
        tracker.StartSession()

        go client.writePump()
        client.pushState()
        client.idle.Start()
        client.readPump()
    }
}
