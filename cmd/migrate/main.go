package main

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	_ "github.com/lib/pq"

	"weather-spots-api/pkg/log"
	"weather-spots-api/pkg/resource"
)

const migrationsDir = "migrations"

// main applies every .sql file under migrations/ in lexical order, recording
// applied files in schema_migrations so reruns are no-ops.
func main() {
	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable search_path=%s",
		resource.GetString("app.db.host"),
		resource.GetString("app.db.username"),
		resource.GetString("app.db.password"),
		resource.GetString("app.db.database"),
		resource.GetString("app.db.port"),
		resource.GetString("app.db.schema"))

	db, err := sql.Open("postgres", dsn)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	defer func() { _ = db.Close() }()

	if err := db.Ping(); err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if _, err := db.Exec(`CREATE TABLE IF NOT EXISTS schema_migrations (
		filename TEXT PRIMARY KEY,
		applied_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`); err != nil {
		log.Fatalf("Failed to create schema_migrations table: %v", err)
	}

	files, err := listMigrations(migrationsDir)
	if err != nil {
		log.Fatalf("Failed to list migrations: %v", err)
	}

	applied := 0
	for _, file := range files {
		done, err := isApplied(db, file)
		if err != nil {
			log.Fatalf("Failed to check migration %s: %v", file, err)
		}
		if done {
			continue
		}

		if err := applyMigration(db, file); err != nil {
			log.Fatalf("Failed to apply migration %s: %v", file, err)
		}
		log.Infof("Applied migration: %s", file)
		applied++
	}

	log.Infof("Migrations complete, %d applied, %d total", applied, len(files))
}

func listMigrations(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	var files []string
	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != ".sql" {
			continue
		}
		files = append(files, entry.Name())
	}
	sort.Strings(files)
	return files, nil
}

func isApplied(db *sql.DB, filename string) (bool, error) {
	var count int
	err := db.QueryRow("SELECT COUNT(*) FROM schema_migrations WHERE filename = $1", filename).Scan(&count)
	return count > 0, err
}

func applyMigration(db *sql.DB, filename string) error {
	contents, err := os.ReadFile(filepath.Join(migrationsDir, filename))
	if err != nil {
		return err
	}

	tx, err := db.Begin()
	if err != nil {
		return err
	}

	if _, err := tx.Exec(string(contents)); err != nil {
		_ = tx.Rollback()
		return err
	}
	if _, err := tx.Exec("INSERT INTO schema_migrations (filename) VALUES ($1)", filename); err != nil {
		_ = tx.Rollback()
		return err
	}

	return tx.Commit()
}
