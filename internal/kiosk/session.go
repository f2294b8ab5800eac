package kiosk

import "sync"

// Session is the in-memory state of one connected kiosk display: selected
// user profile, admin flag, screensaver state and the navigation machine.
// Nothing here is persisted; a reconnecting display starts fresh.
type Session struct {
    ID  string
    Nav *Navigator

    mu          sync.Mutex
    profile     UserProfile
    admin       bool
    screensaver bool
}

func NewSession(id string) *Session {
    return &Session{ID: id, Nav: NewNavigator()}
}

func (s *Session) SelectProfile(p UserProfile) {
    s.mu.Lock()
    defer s.mu.Unlock()
    s.profile = p
}

func (s *Session) ClearProfile() {
    s.mu.Lock()
    defer s.mu.Unlock()
    s.profile = ProfileNone
}

func (s *Session) Profile() UserProfile {
    s.mu.Lock()
    defer s.mu.Unlock()
    return s.profile
}

func (s *Session) SetAdmin(admin bool) {
    s.mu.Lock()
    defer s.mu.Unlock()
    s.admin = admin
}

func (s *Session) IsAdmin() bool {
    s.mu.Lock()
    defer s.mu.Unlock()
    return s.admin
}

// Idle applies the idle policy: navigation resets, the profile clears, and
// outside admin mode the screensaver comes on. Reports whether the
// screensaver was activated.
func (s *Session) Idle() bool {
    s.Nav.Reset()
    s.mu.Lock()
    defer s.mu.Unlock()
    s.profile = ProfileNone
    if s.admin {
        return false
    }
    s.screensaver = true
    return true
}

// Wake clears the screensaver on the first activity after an idle period.
func (s *Session) Wake() {
    s.mu.Lock()
    defer s.mu.Unlock()
    s.screensaver = false
}

func (s *Session) ScreensaverActive() bool {
    s.mu.Lock()
    defer s.mu.Unlock()
    return s.screensaver
}

// State is the snapshot pushed to the display after every transition.
type State struct {
    SessionID   string      `json:"session_id"`
    Current     Screen      `json:"current"`
    History     []Screen    `json:"history"`
    Profile     UserProfile `json:"profile,omitempty"`
    Admin       bool        `json:"admin"`
    Screensaver bool        `json:"screensaver"`
}

func (s *Session) Snapshot() State {
    s.mu.Lock()
    profile := s.profile
    admin := s.admin
    screensaver := s.screensaver
    s.mu.Unlock()
    return State{
        SessionID:   s.ID,
        Current:     s.Nav.Current(),
        History:     s.Nav.History(),
        Profile:     profile,
        Admin:       admin,
        Screensaver: screensaver,
    }
}
