package content

import (
    "encoding/json"
    "errors"
    "fmt"
    "os"
    "path/filepath"

    "github.com/aftral/kiosk_backend_v1/internal/models"
)

// LoadBaseline reads the baseline content document. A missing or malformed
// document is a startup failure: the kiosk has nothing to display without
// it and no retry is attempted.
func LoadBaseline(path string) (models.AppData, error) {
    var data models.AppData
    raw, err := os.ReadFile(path)
    if err != nil {
        return data, fmt.Errorf("read baseline content: %w", err)
    }
    if err := json.Unmarshal(raw, &data); err != nil {
        return data, fmt.Errorf("parse baseline content: %w", err)
    }
    return data, nil
}

// EnsureBaseline writes the seed document when no baseline exists yet, so a
// first run comes up with realistic demo content.
func EnsureBaseline(path string) error {
    if _, err := os.Stat(path); err == nil {
        return nil
    } else if !errors.Is(err, os.ErrNotExist) {
        return err
    }
    if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
        return err
    }
    raw, err := json.MarshalIndent(DefaultBaseline(), "", "  ")
    if err != nil {
        return err
    }
    return os.WriteFile(path, raw, 0o644)
}
