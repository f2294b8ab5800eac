package store

import (
    "errors"
    "fmt"

    "gorm.io/datatypes"
    "gorm.io/driver/postgres"
    "gorm.io/gorm"
    "gorm.io/gorm/clause"

    "github.com/aftral/kiosk_backend_v1/internal/models"
)

// GormStore persists blobs in a key/value table, one row per storage key.
type GormStore struct {
    db *gorm.DB
}

// PostgresDSN builds the connection string from discrete settings.
func PostgresDSN(host, user, password, dbname, port, sslmode string) string {
    return fmt.Sprintf(
        "host=%s user=%s password=%s dbname=%s port=%s sslmode=%s TimeZone=UTC",
        host, user, password, dbname, port, sslmode,
    )
}

func NewGormStore(dsn string) (*GormStore, error) {
    db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
    if err != nil {
        return nil, err
    }
    if err := db.AutoMigrate(&models.KioskBlob{}); err != nil {
        return nil, err
    }
    return &GormStore{db: db}, nil
}

func (s *GormStore) Get(key string) ([]byte, bool, error) {
    var blob models.KioskBlob
    if err := s.db.First(&blob, "key = ?", key).Error; err != nil {
        if errors.Is(err, gorm.ErrRecordNotFound) {
            return nil, false, nil
        }
        return nil, false, err
    }
    return []byte(blob.Value), true, nil
}

func (s *GormStore) Put(key string, value []byte) error {
    blob := models.KioskBlob{Key: key, Value: datatypes.JSON(value)}
    return s.db.Clauses(clause.OnConflict{
        Columns:   []clause.Column{{Name: "key"}},
        DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
    }).Create(&blob).Error
}

func (s *GormStore) Delete(key string) error {
    return s.db.Delete(&models.KioskBlob{}, "key = ?", key).Error
}

func (s *GormStore) Close() error {
    sqlDB, err := s.db.DB()
    if err != nil {
        return err
    }
    return sqlDB.Close()
}
