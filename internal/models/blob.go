package models

import (
    "time"

    "gorm.io/datatypes"
)

// KioskBlob stores one persisted key/value blob (content override, admin
// settings, accessibility prefs, locale, analytics snapshot).
type KioskBlob struct {
    Key       string         `gorm:"size:128;primaryKey"`
    Value     datatypes.JSON `gorm:"type:jsonb"`
    CreatedAt time.Time
    UpdatedAt time.Time
}
