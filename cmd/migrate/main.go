package main

import (
	"database/sql"
	"fmt"
	"log"

	"github.com/Bullfrogs2000/webdev-rest/internal/config"
	"github.com/Bullfrogs2000/webdev-rest/internal/database/migrations"
	_ "github.com/mattn/go-sqlite3"
)

func main() {
	cfg := config.Load()

	db, err := sql.Open("sqlite3", cfg.DBPath)
	if err != nil {
		log.Fatal("failed to open database:", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Printf("failed to close database: %v", err)
		}
	}()

	if err := db.Ping(); err != nil {
		log.Fatal("failed to ping database:", err)
	}

	sqlBytes, err := migrations.Files.ReadFile("schema.sql")
	if err != nil {
		log.Fatal("failed to read embedded schema:", err)
	}

	fmt.Printf("Running migration against %s\n", cfg.DBPath)

	if _, err := db.Exec(string(sqlBytes)); err != nil {
		log.Fatal("failed to run migration:", err)
	}

	// List what exists now, as a quick sanity check.
	rows, err := db.Query(`
		SELECT name
		FROM sqlite_master
		WHERE type = 'table' AND name IN ('Codes', 'Neighborhoods', 'Incidents')
		ORDER BY name
	`)
	if err != nil {
		log.Fatal("failed to list tables:", err)
	}
	defer func() {
		if err := rows.Close(); err != nil {
			log.Printf("failed to close rows: %v", err)
		}
	}()

	fmt.Println("Tables:")
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			log.Printf("failed to scan table name: %v", err)
			continue
		}
		var count int
		if err := db.QueryRow(fmt.Sprintf("SELECT COUNT(*) FROM %q", name)).Scan(&count); err != nil {
			log.Printf("failed to count %s: %v", name, err)
			continue
		}
		fmt.Printf("  %s (%d rows)\n", name, count)
	}
	if err := rows.Err(); err != nil {
		log.Fatal("failed while listing tables:", err)
	}

	fmt.Println("Migration complete.")
}
