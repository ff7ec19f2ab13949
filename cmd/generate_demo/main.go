// Command generate_demo creates a demo database with sample data from public domain books.
// Usage: go run cmd/generate_demo/main.go [-db path/to/demo.db]
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/mrlokans/bookshelf/internal/config"
	"github.com/mrlokans/bookshelf/internal/database"
	"github.com/mrlokans/bookshelf/internal/database/books"
	"github.com/mrlokans/bookshelf/internal/demo"
)

const defaultDemoDatabasePath = "./demo/demo.db"

func main() {
	dbPath := flag.String("db", defaultDemoDatabasePath, "path to the demo database file")
	flag.Parse()

	logger, err := zap.NewDevelopment()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to create logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	if err := run(*dbPath, logger); err != nil {
		logger.Fatal("demo database generation failed", zap.Error(err))
	}
}

func run(dbPath string, logger *zap.Logger) error {
	logger.Info("generating demo database", zap.String("path", dbPath))

	// Start fresh
	if err := os.Remove(dbPath); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("remove existing demo database: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return fmt.Errorf("create demo directory: %w", err)
	}

	db, err := database.Open(config.Database{Driver: config.DriverSQLite, Path: dbPath}, logger)
	if err != nil {
		return err
	}
	defer db.Close()

	result, err := demo.Seed(context.Background(), books.NewRepository(db), logger)
	if err != nil {
		return fmt.Errorf("seed demo database: %w", err)
	}

	logger.Info("demo database generated",
		zap.Int("books", result.Books),
		zap.Int("reviews", result.Reviews),
	)
	return nil
}
