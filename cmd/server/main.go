package main

import (
    "log"
    "os"

    "github.com/joho/godotenv"

    "github.com/gin-gonic/gin"

    "github.com/aftral/kiosk_backend_v1/internal/config"
    "github.com/aftral/kiosk_backend_v1/internal/content"
    "github.com/aftral/kiosk_backend_v1/internal/routes"
    "github.com/aftral/kiosk_backend_v1/internal/store"
    "github.com/aftral/kiosk_backend_v1/internal/ws"
)

func main() {
    // Load .env (non-fatal if missing in production)
    _ = godotenv.Load()

    cfg := config.Load()

    target := cfg.StorePath
    if cfg.StoreEngine == store.EnginePostgres {
        target = store.PostgresDSN(cfg.DBHost, cfg.DBUser, cfg.DBPassword, cfg.DBName, cfg.DBPort, cfg.DBSSLMode)
    }
    repo, err := store.NewByEngine(cfg.StoreEngine, target)
    if err != nil {
        log.Fatalf("storage open failed: %v", err)
    }
    defer repo.Close()

    if err := content.EnsureBaseline(cfg.DataFile); err != nil {
        log.Fatalf("baseline seed failed: %v", err)
    }
    baseline, err := content.LoadBaseline(cfg.DataFile)
    if err != nil {
        log.Fatalf("baseline load failed: %v", err)
    }

    svc := content.NewService(repo, baseline)
    tracker := content.NewTracker(repo)

    hub := ws.NewKioskHub()
    go hub.Run()

    r := gin.Default()
    routes.Register(r, svc, tracker, hub, cfg)

    port := cfg.Port
    if port == "" {
        port = "8080"
    }

    if err := r.Run(":" + port); err != nil {
        log.Println("server exited with error:", err)
        os.Exit(1)
    }
}
