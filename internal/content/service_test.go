package content_test

import (
    "path/filepath"
    "reflect"
    "testing"

    "github.com/aftral/kiosk_backend_v1/internal/content"
    "github.com/aftral/kiosk_backend_v1/internal/models"
    "github.com/aftral/kiosk_backend_v1/internal/store"
)

func newTestRepo(t *testing.T) store.Repository {
    t.Helper()
    st, err := store.NewJSONStore(filepath.Join(t.TempDir(), "store.json"))
    if err != nil {
        t.Fatalf("NewJSONStore() error = %v", err)
    }
    return st
}

// stubRepo is an in-memory Repository that accepts arbitrary bytes,
// including blobs that are not valid JSON, so tests can seed corruption
// that JSONStore structurally cannot hold.
type stubRepo struct {
    blobs map[string][]byte
}

func newStubRepo() *stubRepo {
    return &stubRepo{blobs: make(map[string][]byte)}
}

func (s *stubRepo) Get(key string) ([]byte, bool, error) {
    raw, ok := s.blobs[key]
    return raw, ok, nil
}

func (s *stubRepo) Put(key string, value []byte) error {
    s.blobs[key] = value
    return nil
}

func (s *stubRepo) Delete(key string) error {
    delete(s.blobs, key)
    return nil
}

func (s *stubRepo) Close() error { return nil }

func testBaseline() models.AppData {
    return models.AppData{
        NewsItems: []models.NewsItem{
            {ID: "news-1", Type: "NEWS", Title: "Première actu", Priority: 1},
        },
        Events: []models.EventItem{
            {ID: "ev-1", Title: "JPO", Date: "2025-03-15", Type: "JPO"},
        },
    }
}

func TestFreshLoadEqualsBaselineAndDefaults(t *testing.T) {
    t.Parallel()

    svc := content.NewService(newTestRepo(t), testBaseline())

    if !reflect.DeepEqual(svc.Data(), testBaseline()) {
        t.Fatal("fresh load must serve the baseline unchanged")
    }
    if got := svc.AdminSettings(); got != models.DefaultAdminSettings() {
        t.Fatalf("expected default settings, got %+v", got)
    }
    if got := svc.AdminSettings().PinCode; got != "0000" {
        t.Fatalf("expected default pin 0000, got %q", got)
    }
    if got := svc.AdminSettings().ScreensaverTimeout; got != 90000 {
        t.Fatalf("expected default timeout 90000, got %d", got)
    }
}

func TestNewsAddDeleteRoundTrip(t *testing.T) {
    t.Parallel()

    svc := content.NewService(newTestRepo(t), testBaseline())
    before := svc.Data().NewsItems

    added := svc.AddNewsItem(models.NewsItem{Type: "PROMOTION", Title: "Offre"})
    if added.ID == "" {
        t.Fatal("expected an id to be assigned")
    }
    if got := len(svc.Data().NewsItems); got != len(before)+1 {
        t.Fatalf("expected %d items after add, got %d", len(before)+1, got)
    }

    if !svc.DeleteNewsItem(added.ID) {
        t.Fatal("expected delete to find the item")
    }
    if !reflect.DeepEqual(svc.Data().NewsItems, before) {
        t.Fatal("add then delete must restore the pre-add collection")
    }
}

func TestUpdateNewsItem(t *testing.T) {
    t.Parallel()

    svc := content.NewService(newTestRepo(t), testBaseline())

    title := "Actu modifiée"
    priority := 2
    if !svc.UpdateNewsItem("news-1", content.NewsUpdate{Title: &title, Priority: &priority}) {
        t.Fatal("expected update to match news-1")
    }
    got := svc.Data().NewsItems[0]
    if got.Title != title || got.Priority != priority {
        t.Fatalf("partial update not applied: %+v", got)
    }
    if got.Type != "NEWS" {
        t.Fatalf("untouched field must survive, got type %q", got.Type)
    }
}

func TestUpdateUnknownNewsItemIsNoOp(t *testing.T) {
    t.Parallel()

    svc := content.NewService(newTestRepo(t), testBaseline())
    before := svc.Data()

    title := "fantôme"
    if svc.UpdateNewsItem("missing-id", content.NewsUpdate{Title: &title}) {
        t.Fatal("expected update of unknown id to report no match")
    }
    if !reflect.DeepEqual(svc.Data(), before) {
        t.Fatal("update of unknown id must not mutate anything")
    }
}

func TestOverridesSurviveReload(t *testing.T) {
    t.Parallel()

    repo := newTestRepo(t)
    svc := content.NewService(repo, testBaseline())

    svc.AddNewsItem(models.NewsItem{ID: "news-2", Type: "NEWS", Title: "Deuxième"})
    timeout := 30000
    svc.UpdateAdminSettings(content.SettingsUpdate{ScreensaverTimeout: &timeout})

    reloaded := content.NewService(repo, testBaseline())
    if got := len(reloaded.Data().NewsItems); got != 2 {
        t.Fatalf("expected news override to survive reload, got %d items", got)
    }
    if got := reloaded.AdminSettings().ScreensaverTimeout; got != 30000 {
        t.Fatalf("expected timeout 30000 after reload, got %d", got)
    }
    if got := reloaded.AdminSettings().PinCode; got != "0000" {
        t.Fatalf("missing settings fields must fall back to defaults, got pin %q", got)
    }
}

func TestMalformedBlobsFallBackToDefaults(t *testing.T) {
    t.Parallel()

    repo := newStubRepo()
    if err := repo.Put(store.KeyContent, []byte("{broken")); err != nil {
        t.Fatalf("Put() error = %v", err)
    }
    if err := repo.Put(store.KeySettings, []byte("broken too")); err != nil {
        t.Fatalf("Put() error = %v", err)
    }
    if err := repo.Put(store.KeyLocale, []byte(`"de"`)); err != nil {
        t.Fatalf("Put() error = %v", err)
    }

    svc := content.NewService(repo, testBaseline())
    if !reflect.DeepEqual(svc.Data(), testBaseline()) {
        t.Fatal("malformed content blob must be discarded")
    }
    if got := svc.AdminSettings(); got != models.DefaultAdminSettings() {
        t.Fatalf("malformed settings blob must fall back to defaults, got %+v", got)
    }
    if got := svc.Locale(); got != "fr" {
        t.Fatalf("unsupported stored locale must fall back to fr, got %q", got)
    }
}

func TestResetToDefaults(t *testing.T) {
    t.Parallel()

    repo := newTestRepo(t)
    svc := content.NewService(repo, testBaseline())

    svc.AddNewsItem(models.NewsItem{Type: "NEWS", Title: "À jeter"})
    svc.DeleteNewsItem("news-1")
    pin := "9876"
    timeout := 15000
    svc.UpdateAdminSettings(content.SettingsUpdate{PinCode: &pin, ScreensaverTimeout: &timeout})

    svc.ResetToDefaults()

    if !reflect.DeepEqual(svc.Data(), testBaseline()) {
        t.Fatal("reset must restore the originally loaded baseline exactly")
    }
    if got := svc.AdminSettings(); got != (models.AdminSettings{PinCode: "0000", ScreensaverTimeout: 90000}) {
        t.Fatalf("reset must restore default settings, got %+v", got)
    }
    if _, ok, _ := repo.Get(store.KeyContent); ok {
        t.Fatal("reset must clear the stored content override")
    }
    if _, ok, _ := repo.Get(store.KeySettings); ok {
        t.Fatal("reset must clear the stored settings")
    }

    // A reload after reset sees pristine state.
    reloaded := content.NewService(repo, testBaseline())
    if !reflect.DeepEqual(reloaded.Data(), testBaseline()) {
        t.Fatal("reload after reset must serve the baseline")
    }
}

func TestAccessibilityAndLocalePrefs(t *testing.T) {
    t.Parallel()

    repo := newTestRepo(t)
    svc := content.NewService(repo, testBaseline())

    if got := svc.Accessibility(); got != models.DefaultAccessibilityPrefs() {
        t.Fatalf("expected default prefs, got %+v", got)
    }

    got := svc.CycleFontSize()
    if got.FontSize != "large" {
        t.Fatalf("expected large after one cycle, got %q", got.FontSize)
    }
    svc.CycleFontSize()
    if got := svc.CycleFontSize(); got.FontSize != "normal" {
        t.Fatalf("expected cycle to wrap to normal, got %q", got.FontSize)
    }

    svc.SetAccessibility(models.AccessibilityPrefs{FontSize: "xlarge", HighContrast: true})
    if !svc.SetLocale("en") {
        t.Fatal("expected en to be accepted")
    }
    if svc.SetLocale("de") {
        t.Fatal("expected unsupported locale to be rejected")
    }

    reloaded := content.NewService(repo, testBaseline())
    if got := reloaded.Accessibility(); got.FontSize != "xlarge" || !got.HighContrast {
        t.Fatalf("prefs must survive reload, got %+v", got)
    }
    if got := reloaded.Locale(); got != "en" {
        t.Fatalf("locale must survive reload, got %q", got)
    }
}

func TestAdminPinReadsCurrentValue(t *testing.T) {
    t.Parallel()

    svc := content.NewService(newTestRepo(t), testBaseline())
    if got := svc.AdminPin(); got != "0000" {
        t.Fatalf("expected default pin, got %q", got)
    }
    pin := "4321"
    svc.UpdateAdminSettings(content.SettingsUpdate{PinCode: &pin})
    if got := svc.AdminPin(); got != "4321" {
        t.Fatalf("pin change must be visible immediately, got %q", got)
    }
}
