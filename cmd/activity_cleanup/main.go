package main

import (
	"context"
	"log"
	"time"

	"portfolio/internal/config"
	"portfolio/internal/database"
	"portfolio/internal/modules/activity"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("db connect failed: %v", err)
	}
	defer database.Close(db)

	xdb, err := database.SQLX(db)
	if err != nil {
		log.Fatalf("sqlx: %v", err)
	}

	cutoff := time.Now().UTC().Add(-cfg.ActivityRetention)
	n, err := activity.NewStore(xdb).DeleteOlderThan(context.Background(), cutoff)
	if err != nil {
		log.Fatalf("cleanup activity_log failed: %v", err)
	}

	log.Printf("activity cleanup completed: activity_log=%d cutoff=%s", n, cutoff.Format(time.RFC3339))
}
