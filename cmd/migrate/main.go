package main

import (
	"fmt"
	"os"

	"github.com/garment-erp/backend/internal/infrastructure/config"
	"github.com/garment-erp/backend/internal/infrastructure/logger"
	"github.com/garment-erp/backend/internal/infrastructure/persistence"
	"go.uber.org/zap"
)

// Applies the ledger schema to the configured database and exits. Useful for
// container init jobs where the server should not run DDL itself.
func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.New(&logger.Config{
		Level:      cfg.Log.Level,
		Format:     "console",
		Output:     "stdout",
		TimeFormat: "2006-01-02 15:04:05",
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer func() {
		_ = logger.Sync(log)
	}()

	db, err := persistence.NewDatabase(&cfg.Database)
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer func() {
		_ = db.Close()
	}()

	log.Info("Applying ledger schema",
		zap.String("driver", cfg.Database.Driver),
		zap.String("dbname", cfg.Database.DBName),
	)

	if err := db.AutoMigrate(); err != nil {
		log.Fatal("Migration failed", zap.Error(err))
	}

	log.Info("Migration completed successfully")
}
