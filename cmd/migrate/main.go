// Command migrate creates or updates the database schema for the service.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"profilehub/config"
	logs "profilehub/internal/infra/log"
	"profilehub/internal/infra/persistence/model"

	pgdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	cfg, err := config.New()
	if err != nil {
		fmt.Fprintln(os.Stderr, "load config:", err)
		os.Exit(1)
	}

	logger, err := logs.New(logs.Params{Config: cfg})
	if err != nil {
		fmt.Fprintln(os.Stderr, "init logger:", err)
		os.Exit(1)
	}

	db, err := gorm.Open(pgdriver.Open(cfg.Postgres.DSN()), &gorm.Config{})
	if err != nil {
		logger.Error("Failed to connect to PostgreSQL", slog.Any("error", err))
		os.Exit(1)
	}

	// Credential rows must go when their profile goes, so the profile model
	// (which owns the FK constraint) migrates together with the credential.
	if err := db.AutoMigrate(
		&model.UserProfileModel{},
		&model.CredentialModel{},
	); err != nil {
		logger.Error("Migration failed", slog.Any("error", err))
		os.Exit(1)
	}

	logger.Info("Migration completed")
}
