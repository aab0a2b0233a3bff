package db

import (
	"fmt"

	"gorm.io/gorm"
)

var migrationStatements = []string{
	`CREATE EXTENSION IF NOT EXISTS "uuid-ossp";`,
	`CREATE TABLE IF NOT EXISTS users (
		id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
		name VARCHAR(100) NOT NULL,
		phone VARCHAR(20)
	);`,
	`CREATE TABLE IF NOT EXISTS trains (
		id SERIAL PRIMARY KEY,
		train_name VARCHAR(100) NOT NULL,
		source VARCHAR(100) NOT NULL,
		destination VARCHAR(100) NOT NULL,
		timing VARCHAR(10) NOT NULL,
		platform VARCHAR(10)
	);`,
	`CREATE INDEX IF NOT EXISTS idx_trains_source ON trains (source);`,
	`CREATE INDEX IF NOT EXISTS idx_trains_destination ON trains (destination);`,
	`CREATE TABLE IF NOT EXISTS coaches (
		id SERIAL PRIMARY KEY,
		train_id INTEGER NOT NULL REFERENCES trains(id) ON DELETE CASCADE,
		coach_name VARCHAR(10) NOT NULL
	);`,
	`CREATE INDEX IF NOT EXISTS idx_coaches_train_id ON coaches (train_id);`,
	`CREATE TABLE IF NOT EXISTS crowd_reports (
		id SERIAL PRIMARY KEY,
		coach_id INTEGER NOT NULL REFERENCES coaches(id) ON DELETE CASCADE,
		reporter_name VARCHAR(100) NOT NULL,
		status VARCHAR(20) NOT NULL,
		timestamp TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);`,
	`CREATE INDEX IF NOT EXISTS idx_crowd_reports_coach_id ON crowd_reports (coach_id);`,
	`CREATE INDEX IF NOT EXISTS idx_crowd_reports_timestamp ON crowd_reports (timestamp);`,
	`CREATE TABLE IF NOT EXISTS sos_reports (
		id SERIAL PRIMARY KEY,
		reporter_name VARCHAR(100) NOT NULL,
		train_id INTEGER REFERENCES trains(id) ON DELETE SET NULL,
		coach_id INTEGER REFERENCES coaches(id) ON DELETE SET NULL,
		latitude DOUBLE PRECISION,
		longitude DOUBLE PRECISION,
		message VARCHAR(500),
		timestamp TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);`,
	`CREATE INDEX IF NOT EXISTS idx_sos_reports_train_id ON sos_reports (train_id);`,
	`CREATE INDEX IF NOT EXISTS idx_sos_reports_coach_id ON sos_reports (coach_id);`,
	`CREATE INDEX IF NOT EXISTS idx_sos_reports_timestamp ON sos_reports (timestamp);`,
}

func runMigrations(db *gorm.DB) error {
	for i, stmt := range migrationStatements {
		if err := db.Exec(stmt).Error; err != nil {
			return fmt.Errorf("migration %d failed: %w", i+1, err)
		}
	}
	return nil
}
