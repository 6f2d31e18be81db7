package database

import (
	"database/sql"
	"fmt"
)

func RunMigrations(db *sql.DB) error {
	moviesTableSQL := `
	CREATE TABLE IF NOT EXISTS movies (
		id SERIAL PRIMARY KEY,
		title VARCHAR(255) NOT NULL,
		year INTEGER NOT NULL DEFAULT 0,
		description TEXT NOT NULL DEFAULT '',
		rating DOUBLE PRECISION NOT NULL DEFAULT 0,
		review TEXT NOT NULL DEFAULT '',
		img_url TEXT NOT NULL DEFAULT '',
		created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
		updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	);
	`
	if _, err := db.Exec(moviesTableSQL); err != nil {
		return fmt.Errorf("failed to run movies migration: %w", err)
	}

	// Migration for existing movies table
	columnSQL := `
	DO $$
	BEGIN
		IF NOT EXISTS (SELECT 1 FROM information_schema.columns WHERE table_name='movies' AND column_name='img_url') THEN
			ALTER TABLE movies ADD COLUMN img_url TEXT NOT NULL DEFAULT '';
		END IF;
		IF NOT EXISTS (SELECT 1 FROM information_schema.columns WHERE table_name='movies' AND column_name='review') THEN
			ALTER TABLE movies ADD COLUMN review TEXT NOT NULL DEFAULT '';
		END IF;
	END $$;
	`
	if _, err := db.Exec(columnSQL); err != nil {
		return fmt.Errorf("failed to run movies column migration: %w", err)
	}

	return nil
}
