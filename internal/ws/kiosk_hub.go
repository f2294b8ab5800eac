package ws

import (
    "encoding/json"
    "time"

    "github.com/aftral/kiosk_backend_v1/internal/kiosk"
    "github.com/aftral/kiosk_backend_v1/internal/models"
)

const (
    writeWait      = 10 * time.Second
    pongWait       = 60 * time.Second
    pingPeriod     = (pongWait * 9) / 10
    sendBufferSize = 64
)

// ServerMessage is the envelope pushed to kiosk displays.
type ServerMessage struct {
    Type        string                `json:"type"` // state | screensaver | content_changed | settings_changed
    State       *kiosk.State          `json:"state,omitempty"`
    Screensaver bool                  `json:"screensaver,omitempty"`
    Settings    *models.AdminSettings `json:"settings,omitempty"`
}

type adminUpdate struct {
    sessionID string
    active    bool
}

// KioskHub tracks connected kiosk displays. Each display owns its own
// navigation, profile and idle state; the hub routes admin-session updates
// to the right display and fans out content/settings change notifications.
type KioskHub struct {
    register   chan *kioskClient
    unregister chan *kioskClient
    broadcast  chan []byte
    admin      chan adminUpdate
    timeout    chan time.Duration
    clients    map[string]*kioskClient
}

func NewKioskHub() *KioskHub {
    return &KioskHub{
        register:   make(chan *kioskClient),
        unregister: make(chan *kioskClient),
        broadcast:  make(chan []byte, 256),
        admin:      make(chan adminUpdate, 16),
        timeout:    make(chan time.Duration, 16),
        clients:    make(map[string]*kioskClient),
    }
}

func (h *KioskHub) Run() {
    for {
        select {
        case client := <-h.register:
            if existing, ok := h.clients[client.session.ID]; ok {
                existing.conn.Close()
            }
            h.clients[client.session.ID] = client
        case client := <-h.unregister:
            if stored, ok := h.clients[client.session.ID]; ok && stored == client {
                delete(h.clients, client.session.ID)
            }
        case msg := <-h.broadcast:
            for id, client := range h.clients {
                select {
                case client.send <- msg:
                default:
                    client.conn.Close()
                    delete(h.clients, id)
                }
            }
        case upd := <-h.admin:
            if client, ok := h.clients[upd.sessionID]; ok {
                client.setAdmin(upd.active)
            }
        case d := <-h.timeout:
            for _, client := range h.clients {
                client.idle.SetTimeout(d)
            }
        }
    }
}

// SetAdmin flags one display session as admin-authenticated (or not).
func (h *KioskHub) SetAdmin(sessionID string, active bool) {
    if h == nil {
        return
    }
    h.admin <- adminUpdate{sessionID: sessionID, active: active}
}

// NotifyContentChanged tells every display to refetch the content document.
func (h *KioskHub) NotifyContentChanged() {
    h.send(ServerMessage{Type: "content_changed"})
}

// NotifySettingsChanged pushes the new settings and retimes every idle
// monitor to the new screensaver timeout.
func (h *KioskHub) NotifySettingsChanged(settings models.AdminSettings) {
    if h == nil {
        return
    }
    h.timeout <- time.Duration(settings.ScreensaverTimeout) * time.Millisecond
    h.send(ServerMessage{Type: "settings_changed", Settings: &settings})
}

func (h *KioskHub) send(msg ServerMessage) {
    if h == nil {
        return
    }
    data, err := json.Marshal(msg)
    if err != nil {
        return
    }
    h.broadcast <- data
}
