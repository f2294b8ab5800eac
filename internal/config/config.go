package config

import (
    "os"
)

type Config struct {
    Port string

    // Durable storage: "json" (single file) or "postgres".
    StoreEngine string
    StorePath   string
    DBHost      string
    DBPort      string
    DBUser      string
    DBPassword  string
    DBName      string
    DBSSLMode   string

    // Baseline content document.
    DataFile string

    // Admin bearer tokens.
    JWTSecret            string
    AdminTokenTTLMinutes string

    LayoutVersion string
}

func Load() *Config {
    return &Config{
        Port:        getenv("PORT", "8080"),
        StoreEngine: getenv("STORE_ENGINE", "json"),
        StorePath:   getenv("STORE_PATH", "data/kiosk_store.json"),
        DBHost:      getenv("DB_HOST", "localhost"),
        DBPort:      getenv("DB_PORT", "5432"),
        DBUser:      getenv("DB_USER", "postgres"),
        DBPassword:  getenv("DB_PASSWORD", "postgres"),
        DBName:      getenv("DB_NAME", "kiosk_db"),
        DBSSLMode:   getenv("DB_SSLMODE", "disable"),

        DataFile: getenv("DATA_FILE", "data/data.json"),

        JWTSecret:            getenv("JWT_SECRET", "supersecret_change_me"),
        AdminTokenTTLMinutes: getenv("ADMIN_TOKEN_TTL_MINUTES", "30"),

        LayoutVersion: getenv("LAYOUT_VERSION", "1"),
    }
}

func getenv(key, fallback string) string {
    v := os.Getenv(key)
    if v == "" {
        return fallback
    }
    return v
}
