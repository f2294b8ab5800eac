package content

import (
    "encoding/json"
    "log"
    "sync"

    "github.com/google/uuid"

    "github.com/aftral/kiosk_backend_v1/internal/models"
    "github.com/aftral/kiosk_backend_v1/internal/store"
)

// Service owns the kiosk content document, admin settings, accessibility
// preferences and locale. The baseline document is kept untouched so a
// factory reset can restore it without re-reading it. Admin edits are
// persisted as an override blob merged over the baseline at load time.
//
// Writes to the repository are best-effort: a failed persist is logged and
// the in-memory state keeps the new value.
type Service struct {
    repo store.Repository

    mu       sync.RWMutex
    baseline models.AppData
    data     models.AppData
    settings models.AdminSettings
    prefs    models.AccessibilityPrefs
    locale   string
}

func NewService(repo store.Repository, baseline models.AppData) *Service {
    s := &Service{
        repo:     repo,
        baseline: baseline,
        data:     baseline,
        settings: models.DefaultAdminSettings(),
        prefs:    models.DefaultAccessibilityPrefs(),
        locale:   models.DefaultLocale,
    }
    s.loadOverride()
    s.loadSettings()
    s.loadPrefs()
    s.loadLocale()
    return s
}

// loadOverride shallow-merges a stored override over the baseline: fields
// present in the override replace baseline fields wholesale, arrays
// included. A malformed blob is discarded.
func (s *Service) loadOverride() {
    raw, ok, err := s.repo.Get(store.KeyContent)
    if err != nil || !ok {
        return
    }
    merged := s.baseline
    if err := json.Unmarshal(raw, &merged); err != nil {
        return
    }
    s.data = merged
}

func (s *Service) loadSettings() {
    raw, ok, err := s.repo.Get(store.KeySettings)
    if err != nil || !ok {
        return
    }
    merged := models.DefaultAdminSettings()
    if err := json.Unmarshal(raw, &merged); err != nil {
        return
    }
    s.settings = merged
}

func (s *Service) loadPrefs() {
    raw, ok, err := s.repo.Get(store.KeyAccessibility)
    if err != nil || !ok {
        return
    }
    merged := models.DefaultAccessibilityPrefs()
    if err := json.Unmarshal(raw, &merged); err != nil {
        return
    }
    s.prefs = merged
}

func (s *Service) loadLocale() {
    raw, ok, err := s.repo.Get(store.KeyLocale)
    if err != nil || !ok {
        return
    }
    var locale string
    if err := json.Unmarshal(raw, &locale); err != nil {
        return
    }
    if models.ValidLocale(locale) {
        s.locale = locale
    }
}

func (s *Service) Data() models.AppData {
    s.mu.RLock()
    defer s.mu.RUnlock()
    return s.data
}

// AddNewsItem appends a news item, assigning an id when none is given, and
// returns the stored item.
func (s *Service) AddNewsItem(item models.NewsItem) models.NewsItem {
    s.mu.Lock()
    defer s.mu.Unlock()
    if item.ID == "" {
        item.ID = uuid.NewString()
    }
    items := make([]models.NewsItem, 0, len(s.data.NewsItems)+1)
    items = append(items, s.data.NewsItems...)
    items = append(items, item)
    s.data.NewsItems = items
    s.persistDataLocked()
    return item
}

// NewsUpdate carries a partial news edit; nil fields are left unchanged.
type NewsUpdate struct {
    Type      *string `json:"type"`
    Title     *string `json:"title"`
    Summary   *string `json:"summary"`
    Body      *string `json:"body"`
    StartDate *string `json:"startDate"`
    EndDate   *string `json:"endDate"`
    Image     *string `json:"image"`
    Priority  *int    `json:"priority"`
    CtaLabel  *string `json:"ctaLabel"`
    CtaTarget *string `json:"ctaTarget"`
}

// UpdateNewsItem merges the partial update into the matching item. Unknown
// ids are a no-op; the return value reports whether anything matched.
func (s *Service) UpdateNewsItem(id string, upd NewsUpdate) bool {
    s.mu.Lock()
    defer s.mu.Unlock()
    items := make([]models.NewsItem, len(s.data.NewsItems))
    copy(items, s.data.NewsItems)
    found := false
    for i := range items {
        if items[i].ID != id {
            continue
        }
        found = true
        applyNewsUpdate(&items[i], upd)
        break
    }
    if !found {
        return false
    }
    s.data.NewsItems = items
    s.persistDataLocked()
    return true
}

func applyNewsUpdate(item *models.NewsItem, upd NewsUpdate) {
    if upd.Type != nil {
        item.Type = *upd.Type
    }
    if upd.Title != nil {
        item.Title = *upd.Title
    }
    if upd.Summary != nil {
        item.Summary = *upd.Summary
    }
    if upd.Body != nil {
        item.Body = *upd.Body
    }
    if upd.StartDate != nil {
        item.StartDate = *upd.StartDate
    }
    if upd.EndDate != nil {
        item.EndDate = *upd.EndDate
    }
    if upd.Image != nil {
        item.Image = *upd.Image
    }
    if upd.Priority != nil {
        item.Priority = *upd.Priority
    }
    if upd.CtaLabel != nil {
        item.CtaLabel = *upd.CtaLabel
    }
    if upd.CtaTarget != nil {
        item.CtaTarget = *upd.CtaTarget
    }
}

// DeleteNewsItem removes the item with the given id, reporting whether it
// existed.
func (s *Service) DeleteNewsItem(id string) bool {
    s.mu.Lock()
    defer s.mu.Unlock()
    items := make([]models.NewsItem, 0, len(s.data.NewsItems))
    found := false
    for _, item := range s.data.NewsItems {
        if item.ID == id {
            found = true
            continue
        }
        items = append(items, item)
    }
    if !found {
        return false
    }
    s.data.NewsItems = items
    s.persistDataLocked()
    return true
}

func (s *Service) AdminSettings() models.AdminSettings {
    s.mu.RLock()
    defer s.mu.RUnlock()
    return s.settings
}

// AdminPin satisfies kiosk.PinReader; the gate reads the PIN fresh on every
// attempt so a change takes effect immediately.
func (s *Service) AdminPin() string {
    s.mu.RLock()
    defer s.mu.RUnlock()
    return s.settings.PinCode
}

// SettingsUpdate carries a partial settings edit.
type SettingsUpdate struct {
    PinCode            *string
    ScreensaverTimeout *int
}

func (s *Service) UpdateAdminSettings(upd SettingsUpdate) models.AdminSettings {
    s.mu.Lock()
    defer s.mu.Unlock()
    if upd.PinCode != nil {
        s.settings.PinCode = *upd.PinCode
    }
    if upd.ScreensaverTimeout != nil {
        s.settings.ScreensaverTimeout = *upd.ScreensaverTimeout
    }
    s.persistLocked(store.KeySettings, s.settings)
    return s.settings
}

func (s *Service) Accessibility() models.AccessibilityPrefs {
    s.mu.RLock()
    defer s.mu.RUnlock()
    return s.prefs
}

func (s *Service) SetAccessibility(prefs models.AccessibilityPrefs) {
    s.mu.Lock()
    defer s.mu.Unlock()
    s.prefs = prefs
    s.persistLocked(store.KeyAccessibility, s.prefs)
}

// CycleFontSize advances the font size through normal, large, xlarge and
// back, returning the new preferences.
func (s *Service) CycleFontSize() models.AccessibilityPrefs {
    s.mu.Lock()
    defer s.mu.Unlock()
    next := models.FontSizes[0]
    for i, size := range models.FontSizes {
        if size == s.prefs.FontSize {
            next = models.FontSizes[(i+1)%len(models.FontSizes)]
            break
        }
    }
    s.prefs.FontSize = next
    s.persistLocked(store.KeyAccessibility, s.prefs)
    return s.prefs
}

func (s *Service) Locale() string {
    s.mu.RLock()
    defer s.mu.RUnlock()
    return s.locale
}

// SetLocale stores the locale preference; invalid locales are ignored and
// the previous value kept.
func (s *Service) SetLocale(locale string) bool {
    if !models.ValidLocale(locale) {
        return false
    }
    s.mu.Lock()
    defer s.mu.Unlock()
    s.locale = locale
    s.persistLocked(store.KeyLocale, s.locale)
    return true
}

// ResetToDefaults discards all overrides: content returns to the baseline
// loaded at startup, settings to the hardcoded defaults, and both blobs are
// cleared from durable storage. Preferences and analytics are untouched.
func (s *Service) ResetToDefaults() {
    s.mu.Lock()
    defer s.mu.Unlock()
    s.data = s.baseline
    s.settings = models.DefaultAdminSettings()
    if err := s.repo.Delete(store.KeyContent); err != nil {
        log.Printf("clear %s failed: %v", store.KeyContent, err)
    }
    if err := s.repo.Delete(store.KeySettings); err != nil {
        log.Printf("clear %s failed: %v", store.KeySettings, err)
    }
}

func (s *Service) persistDataLocked() {
    s.persistLocked(store.KeyContent, s.data)
}

func (s *Service) persistLocked(key string, v any) {
    raw, err := json.Marshal(v)
    if err != nil {
        log.Printf("encode %s failed: %v", key, err)
        return
    }
    if err := s.repo.Put(key, raw); err != nil {
        log.Printf("persist %s failed: %v", key, err)
    }
}
