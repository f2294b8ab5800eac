package ws

import (
    "encoding/json"
    "time"

    "github.com/gorilla/websocket"

    "github.com/aftral/kiosk_backend_v1/internal/content"
    "github.com/aftral/kiosk_backend_v1/internal/kiosk"
)

// DisplayEvent is an inbound message from a kiosk display. Every event
// counts as user activity for the idle monitor.
type DisplayEvent struct {
    Type    string `json:"type"` // activity | navigate | back | reset | profile | wake | qr_scan | help
    Screen  string `json:"screen,omitempty"`
    Profile string `json:"profile,omitempty"`
}

type kioskClient struct {
    hub     *KioskHub
    conn    *websocket.Conn
    send    chan []byte
    session *kiosk.Session
    idle    *kiosk.IdleMonitor
    tracker *content.Tracker
}

func newKioskClient(hub *KioskHub, conn *websocket.Conn, session *kiosk.Session, tracker *content.Tracker, timeout time.Duration) *kioskClient {
    c := &kioskClient{
        hub:     hub,
        conn:    conn,
        send:    make(chan []byte, sendBufferSize),
        session: session,
        tracker: tracker,
    }
    c.idle = kiosk.NewIdleMonitor(timeout, c.onIdle)
    return c
}

// onIdle runs the idle policy for this display and pushes the outcome.
func (c *kioskClient) onIdle() {
    activated := c.session.Idle()
    c.pushState()
    if activated {
        c.push(ServerMessage{Type: "screensaver", Screensaver: true})
    }
}

// setAdmin is invoked from the hub loop after a PIN login or logout. Losing
// admin while on an admin screen forces the navigation back to HOME.
func (c *kioskClient) setAdmin(active bool) {
    c.session.SetAdmin(active)
    c.enforceAdminGuard()
    c.pushState()
}

// enforceAdminGuard resets navigation whenever an admin screen is current
// without an authenticated admin session. Runs after every transition:
// back can pop an admin screen left in the history from before a logout.
func (c *kioskClient) enforceAdminGuard() {
    if c.session.Nav.Current().Admin() && !c.session.IsAdmin() {
        c.session.Nav.Reset()
    }
}

func (c *kioskClient) handleEvent(ev DisplayEvent) {
    c.idle.Activity()
    if c.session.ScreensaverActive() {
        c.session.Wake()
    }
    switch ev.Type {
    case "activity", "wake":
        // nothing beyond the idle reset and wake above
    case "navigate":
        screen := kiosk.Screen(ev.Screen)
        if !screen.Valid() {
            break
        }
        if screen.Admin() && !c.session.IsAdmin() {
            c.session.Nav.Reset()
            break
        }
        if c.session.Nav.Navigate(screen) {
            c.tracker.TrackScreenView(screen)
        }
    case "back":
        c.session.Nav.GoBack()
    case "reset":
        c.session.Nav.Reset()
        c.session.ClearProfile()
    case "profile":
        profile := kiosk.UserProfile(ev.Profile)
        if !profile.Valid() {
            break
        }
        c.session.SelectProfile(profile)
        c.tracker.TrackProfileSelect(profile)
    case "qr_scan":
        c.tracker.TrackQrScan()
    case "help":
        c.tracker.TrackHelpRequest()
    }
    c.enforceAdminGuard()
    c.pushState()
}

func (c *kioskClient) pushState() {
    state := c.session.Snapshot()
    c.push(ServerMessage{Type: "state", State: &state})
}

func (c *kioskClient) push(msg ServerMessage) {
    data, err := json.Marshal(msg)
    if err != nil {
        return
    }
    select {
    case c.send <- data:
    default:
    }
}

func (c *kioskClient) readPump() {
    defer func() {
        c.idle.Stop()
        c.hub.unregister <- c
        c.conn.Close()
    }()
    c.conn.SetReadLimit(1024)
    c.conn.SetReadDeadline(time.Now().Add(pongWait))
    c.conn.SetPongHandler(func(string) error {
        c.conn.SetReadDeadline(time.Now().Add(pongWait))
        return nil
    })
    for {
        _, data, err := c.conn.ReadMessage()
        if err != nil {
            break
        }
        var ev DisplayEvent
        if err := json.Unmarshal(data, &ev); err != nil {
            continue
        }
        c.handleEvent(ev)
    }
}

func (c *kioskClient) writePump() {
    ticker := time.NewTicker(pingPeriod)
    defer func() {
        ticker.Stop()
        c.conn.Close()
    }()
    for {
        select {
        case msg, ok := <-c.send:
            c.conn.SetWriteDeadline(time.Now().Add(writeWait))
            if !ok {
                c.conn.WriteMessage(websocket.CloseMessage, []byte{})
                return
            }
            w, err := c.conn.NextWriter(websocket.TextMessage)
            if err != nil {
                return
            }
            if _, err := w.Write(msg); err != nil {
                return
            }
            if err := w.Close(); err != nil {
                return
            }
        case <-ticker.C:
            c.conn.SetWriteDeadline(time.Now().Add(writeWait))
            if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
                return
            }
        }
    }
}
