package content

import (
    "encoding/json"
    "log"
    "sync"
    "time"

    "github.com/aftral/kiosk_backend_v1/internal/kiosk"
    "github.com/aftral/kiosk_backend_v1/internal/models"
    "github.com/aftral/kiosk_backend_v1/internal/store"
)

// Tracker maintains the increment-only usage counters, persisting the whole
// snapshot after every increment. Like the content store, persistence is
// best-effort.
type Tracker struct {
    repo store.Repository

    mu   sync.Mutex
    snap models.AnalyticsSnapshot
}

func NewTracker(repo store.Repository) *Tracker {
    t := &Tracker{
        repo: repo,
        snap: models.NewAnalyticsSnapshot(),
    }
    raw, ok, err := repo.Get(store.KeyAnalytics)
    if err == nil && ok {
        merged := models.NewAnalyticsSnapshot()
        if err := json.Unmarshal(raw, &merged); err == nil {
            if merged.ScreenViews == nil {
                merged.ScreenViews = make(map[string]int)
            }
            if merged.ProfileSelections == nil {
                merged.ProfileSelections = make(map[string]int)
            }
            t.snap = merged
        }
    }
    return t
}

// StartSession counts one kiosk display session. Called once per display
// connection, before the first state push.
func (t *Tracker) StartSession() {
    t.mu.Lock()
    defer t.mu.Unlock()
    t.snap.SessionCount++
    t.persistLocked()
}

func (t *Tracker) TrackScreenView(screen kiosk.Screen) {
    t.mu.Lock()
    defer t.mu.Unlock()
    t.snap.ScreenViews[string(screen)]++
    t.persistLocked()
}

func (t *Tracker) TrackProfileSelect(profile kiosk.UserProfile) {
    t.mu.Lock()
    defer t.mu.Unlock()
    t.snap.ProfileSelections[string(profile)]++
    t.persistLocked()
}

func (t *Tracker) TrackQrScan() {
    t.mu.Lock()
    defer t.mu.Unlock()
    t.snap.QrScans++
    t.persistLocked()
}

func (t *Tracker) TrackHelpRequest() {
    t.mu.Lock()
    defer t.mu.Unlock()
    t.snap.HelpRequests++
    t.persistLocked()
}

func (t *Tracker) Snapshot() models.AnalyticsSnapshot {
    t.mu.Lock()
    defer t.mu.Unlock()
    snap := t.snap
    snap.ScreenViews = copyCounts(t.snap.ScreenViews)
    snap.ProfileSelections = copyCounts(t.snap.ProfileSelections)
    return snap
}

// Reset zeroes every counter and stamps the reset time. Content and
// settings are unaffected.
func (t *Tracker) Reset() {
    t.mu.Lock()
    defer t.mu.Unlock()
    t.snap = models.NewAnalyticsSnapshot()
    t.snap.LastReset = time.Now().UTC()
    t.persistLocked()
}

func (t *Tracker) persistLocked() {
    raw, err := json.Marshal(t.snap)
    if err != nil {
        log.Printf("encode %s failed: %v", store.KeyAnalytics, err)
        return
    }
    if err := t.repo.Put(store.KeyAnalytics, raw); err != nil {
        log.Printf("persist %s failed: %v", store.KeyAnalytics, err)
    }
}

func copyCounts(in map[string]int) map[string]int {
    out := make(map[string]int, len(in))
    for k, v := range in {
        out[k] = v
    }
    return out
}
