package ws_test

import (
    "net/http/httptest"
    "path/filepath"
    "strings"
    "testing"
    "time"

    "github.com/gin-gonic/gin"
    "github.com/gorilla/websocket"

    "github.com/aftral/kiosk_backend_v1/internal/content"
    "github.com/aftral/kiosk_backend_v1/internal/kiosk"
    "github.com/aftral/kiosk_backend_v1/internal/store"
    "github.com/aftral/kiosk_backend_v1/internal/ws"
)

func newKioskServer(t *testing.T) (*httptest.Server, *content.Service, *content.Tracker, *ws.KioskHub) {
    t.Helper()
    gin.SetMode(gin.TestMode)

    repo, err := store.NewJSONStore(filepath.Join(t.TempDir(), "store.json"))
    if err != nil {
        t.Fatalf("NewJSONStore() error = %v", err)
    }
    svc := content.NewService(repo, content.DefaultBaseline())
    tracker := content.NewTracker(repo)
    hub := ws.NewKioskHub()
    go hub.Run()

    r := gin.New()
    r.GET("/ws/kiosk", ws.KioskHandler(hub, svc, tracker))
    srv := httptest.NewServer(r)
    t.Cleanup(srv.Close)
    return srv, svc, tracker, hub
}

func dialKiosk(t *testing.T, srv *httptest.Server) *websocket.Conn {
    t.Helper()
    url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws/kiosk"
    conn, _, err := websocket.DefaultDialer.Dial(url, nil)
    if err != nil {
        t.Fatalf("dial %s: %v", url, err)
    }
    t.Cleanup(func() { conn.Close() })
    return conn
}

func readMessage(t *testing.T, conn *websocket.Conn) ws.ServerMessage {
    t.Helper()
    conn.SetReadDeadline(time.Now().Add(3 * time.Second))
    var msg ws.ServerMessage
    if err := conn.ReadJSON(&msg); err != nil {
        t.Fatalf("read message: %v", err)
    }
    return msg
}

// waitForState reads messages until a state snapshot satisfies the
// predicate, skipping unrelated pushes.
func waitForState(t *testing.T, conn *websocket.Conn, match func(kiosk.State) bool) kiosk.State {
    t.Helper()
    deadline := time.Now().Add(3 * time.Second)
    for time.Now().Before(deadline) {
        msg := readMessage(t, conn)
        if msg.Type == "state" && msg.State != nil && match(*msg.State) {
            return *msg.State
        }
    }
    t.Fatal("no matching state push before deadline")
    return kiosk.State{}
}

func sendEvent(t *testing.T, conn *websocket.Conn, ev ws.DisplayEvent) {
    t.Helper()
    conn.SetWriteDeadline(time.Now().Add(time.Second))
    if err := conn.WriteJSON(ev); err != nil {
        t.Fatalf("send event: %v", err)
    }
}

func TestKioskDisplaySession(t *testing.T) {
    srv, _, tracker, _ := newKioskServer(t)
    conn := dialKiosk(t, srv)

    hello := waitForState(t, conn, func(s kiosk.State) bool { return true })
    if hello.Current != kiosk.ScreenHome {
        t.Fatalf("expected initial HOME, got %q", hello.Current)
    }
    if hello.SessionID == "" {
        t.Fatal("expected a session id in the hello state")
    }
    if got := tracker.Snapshot().SessionCount; got != 1 {
        t.Fatalf("expected one counted session, got %d", got)
    }

    sendEvent(t, conn, ws.DisplayEvent{Type: "navigate", Screen: "CATALOG"})
    state := waitForState(t, conn, func(s kiosk.State) bool { return s.Current == kiosk.ScreenCatalog })
    if len(state.History) != 1 || state.History[0] != kiosk.ScreenHome {
        t.Fatalf("expected history [HOME], got %v", state.History)
    }

    sendEvent(t, conn, ws.DisplayEvent{Type: "profile", Profile: "STUDENT"})
    waitForState(t, conn, func(s kiosk.State) bool { return s.Profile == kiosk.ProfileStudent })

    sendEvent(t, conn, ws.DisplayEvent{Type: "back"})
    state = waitForState(t, conn, func(s kiosk.State) bool { return s.Current == kiosk.ScreenHome })
    if len(state.History) != 0 {
        t.Fatalf("expected empty history after back, got %v", state.History)
    }

    snap := tracker.Snapshot()
    if got := snap.ScreenViews["CATALOG"]; got != 1 {
        t.Fatalf("expected 1 CATALOG view, got %d", got)
    }
    if got := snap.ProfileSelections["STUDENT"]; got != 1 {
        t.Fatalf("expected 1 STUDENT selection, got %d", got)
    }
}

func TestAdminScreenGuard(t *testing.T) {
    srv, _, _, hub := newKioskServer(t)
    conn := dialKiosk(t, srv)

    hello := waitForState(t, conn, func(s kiosk.State) bool { return true })

    // Direct navigation to an admin screen without authentication forces a
    // reset back to HOME.
    sendEvent(t, conn, ws.DisplayEvent{Type: "navigate", Screen: "CATALOG"})
    waitForState(t, conn, func(s kiosk.State) bool { return s.Current == kiosk.ScreenCatalog })
    sendEvent(t, conn, ws.DisplayEvent{Type: "navigate", Screen: "ADMIN_DASHBOARD"})
    state := waitForState(t, conn, func(s kiosk.State) bool { return s.Current == kiosk.ScreenHome })
    if len(state.History) != 0 {
        t.Fatalf("guard must reset history, got %v", state.History)
    }

    hub.SetAdmin(hello.SessionID, true)
    waitForState(t, conn, func(s kiosk.State) bool { return s.Admin })

    sendEvent(t, conn, ws.DisplayEvent{Type: "navigate", Screen: "ADMIN_DASHBOARD"})
    waitForState(t, conn, func(s kiosk.State) bool { return s.Current == kiosk.ScreenAdminDashboard })

    // Losing the admin session while on an admin screen redirects home.
    hub.SetAdmin(hello.SessionID, false)
    state = waitForState(t, conn, func(s kiosk.State) bool { return !s.Admin })
    if state.Current != kiosk.ScreenHome {
        t.Fatalf("expected redirect to HOME after admin logout, got %q", state.Current)
    }
}

func TestBackCannotReenterAdminAfterLogout(t *testing.T) {
    srv, _, _, hub := newKioskServer(t)
    conn := dialKiosk(t, srv)

    hello := waitForState(t, conn, func(s kiosk.State) bool { return true })

    hub.SetAdmin(hello.SessionID, true)
    waitForState(t, conn, func(s kiosk.State) bool { return s.Admin })

    sendEvent(t, conn, ws.DisplayEvent{Type: "navigate", Screen: "ADMIN_DASHBOARD"})
    waitForState(t, conn, func(s kiosk.State) bool { return s.Current == kiosk.ScreenAdminDashboard })
    sendEvent(t, conn, ws.DisplayEvent{Type: "navigate", Screen: "CATALOG"})
    waitForState(t, conn, func(s kiosk.State) bool { return s.Current == kiosk.ScreenCatalog })

    hub.SetAdmin(hello.SessionID, false)
    waitForState(t, conn, func(s kiosk.State) bool { return !s.Admin })

    // The back-stack still holds ADMIN_DASHBOARD from before the logout;
    // popping it must not expose the admin screen.
    sendEvent(t, conn, ws.DisplayEvent{Type: "back"})
    state := waitForState(t, conn, func(s kiosk.State) bool { return s.Current != kiosk.ScreenCatalog })
    if state.Current != kiosk.ScreenHome {
        t.Fatalf("expected HOME after back without an admin session, got %q", state.Current)
    }
    if len(state.History) != 0 {
        t.Fatalf("expected empty history after the guard reset, got %v", state.History)
    }
}

func TestRepeatedNavigateCountsOneView(t *testing.T) {
    srv, _, tracker, _ := newKioskServer(t)
    conn := dialKiosk(t, srv)

    waitForState(t, conn, func(s kiosk.State) bool { return true })

    sendEvent(t, conn, ws.DisplayEvent{Type: "navigate", Screen: "CATALOG"})
    waitForState(t, conn, func(s kiosk.State) bool { return s.Current == kiosk.ScreenCatalog })
    sendEvent(t, conn, ws.DisplayEvent{Type: "navigate", Screen: "CATALOG"})
    waitForState(t, conn, func(s kiosk.State) bool { return s.Current == kiosk.ScreenCatalog })

    if got := tracker.Snapshot().ScreenViews["CATALOG"]; got != 1 {
        t.Fatalf("expected a single CATALOG view for repeated navigation, got %d", got)
    }
}

func TestScreensaverAfterIdle(t *testing.T) {
    srv, svc, _, _ := newKioskServer(t)

    timeout := 100 // milliseconds
    svc.UpdateAdminSettings(content.SettingsUpdate{ScreensaverTimeout: &timeout})

    conn := dialKiosk(t, srv)
    waitForState(t, conn, func(s kiosk.State) bool { return true })

    deadline := time.Now().Add(3 * time.Second)
    sawScreensaver := false
    for time.Now().Before(deadline) {
        msg := readMessage(t, conn)
        if msg.Type == "screensaver" && msg.Screensaver {
            sawScreensaver = true
            break
        }
        if msg.Type == "state" && msg.State != nil && msg.State.Screensaver {
            sawScreensaver = true
            break
        }
    }
    if !sawScreensaver {
        t.Fatal("expected a screensaver push after the idle timeout")
    }

    // Any activity wakes the display.
    sendEvent(t, conn, ws.DisplayEvent{Type: "activity"})
    waitForState(t, conn, func(s kiosk.State) bool { return !s.Screensaver })
}
