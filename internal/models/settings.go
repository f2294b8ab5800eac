package models

import "time"

// AdminSettings is persisted as its own blob and merged with defaults on
// load so missing fields fall back.
type AdminSettings struct {
    PinCode            string `json:"pinCode"`
    ScreensaverTimeout int    `json:"screensaverTimeout"` // milliseconds
}

func DefaultAdminSettings() AdminSettings {
    return AdminSettings{
        PinCode:            "0000",
        ScreensaverTimeout: 90000,
    }
}

// AccessibilityPrefs mirrors the display-side accessibility toggles.
type AccessibilityPrefs struct {
    FontSize     string `json:"fontSize"` // normal | large | xlarge
    HighContrast bool   `json:"highContrast"`
}

func DefaultAccessibilityPrefs() AccessibilityPrefs {
    return AccessibilityPrefs{FontSize: "normal"}
}

// FontSizes is the cycle order used by the accessibility toolbar.
var FontSizes = []string{"normal", "large", "xlarge"}

const DefaultLocale = "fr"

func ValidLocale(locale string) bool {
    return locale == "fr" || locale == "en"
}

// AnalyticsSnapshot holds the increment-only usage counters. Persisted after
// every increment; reset stamps LastReset.
type AnalyticsSnapshot struct {
    ScreenViews       map[string]int `json:"screenViews"`
    ProfileSelections map[string]int `json:"profileSelections"`
    QrScans           int            `json:"qrScans"`
    SessionCount      int            `json:"sessionCount"`
    HelpRequests      int            `json:"helpRequests"`
    LastReset         time.Time      `json:"lastReset"`
}

func NewAnalyticsSnapshot() AnalyticsSnapshot {
    return AnalyticsSnapshot{
        ScreenViews:       make(map[string]int),
        ProfileSelections: make(map[string]int),
        LastReset:         time.Now().UTC(),
    }
}
