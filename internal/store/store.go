package store

// Storage keys. One blob per concern; each is read defensively so missing
// or malformed data falls back to defaults.
const (
    KeyContent       = "aftral_kiosk_data"
    KeySettings      = "aftral_admin_settings"
    KeyAccessibility = "aftral_accessibility"
    KeyLocale        = "aftral_language"
    KeyAnalytics     = "aftral_analytics"
)

// Repository is the durable key/blob store behind content overrides,
// settings, preferences and analytics. Implementations must be safe for
// concurrent use.
type Repository interface {
    Get(key string) ([]byte, bool, error)
    Put(key string, value []byte) error
    Delete(key string) error
    Close() error
}
