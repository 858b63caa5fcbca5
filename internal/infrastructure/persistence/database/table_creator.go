package database

import (
	"database/sql"
	"fmt"
)

// TableCreator handles creation of the storage schema on first start.
type TableCreator struct{}

// NewTableCreator creates a new TableCreator.
func NewTableCreator() *TableCreator {
	return &TableCreator{}
}

// CreateSchema executes all necessary queries to build the tables and indexes.
// Every statement is idempotent, so startup can run it unconditionally.
func (tc *TableCreator) CreateSchema(db *sql.DB) error {
	for _, tableSQL := range tables {
		if _, err := db.Exec(tableSQL); err != nil {
			return fmt.Errorf("failed to create table for query [%s]: %w", tableSQL, err)
		}
	}

	for _, indexSQL := range indexes {
		if _, err := db.Exec(indexSQL); err != nil {
			return fmt.Errorf("failed to create index for query [%s]: %w", indexSQL, err)
		}
	}
	return nil
}

var tables = []string{
	`CREATE TABLE IF NOT EXISTS generated_pages (
		id TEXT PRIMARY KEY,
		title TEXT NOT NULL,
		filename TEXT NOT NULL UNIQUE,
		source_document TEXT NOT NULL,
		rendered_html TEXT NOT NULL,
		created TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
		changed TIMESTAMP
	)`,
	`CREATE TABLE IF NOT EXISTS assets (
		id TEXT PRIMARY KEY,
		filename TEXT NOT NULL,
		alt_description TEXT NOT NULL,
		url TEXT NOT NULL,
		src_set TEXT,
		created TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
	)`,
	`CREATE TABLE IF NOT EXISTS page_shares (
		id TEXT PRIMARY KEY,
		page_id TEXT NOT NULL REFERENCES generated_pages(id),
		recipient TEXT NOT NULL,
		created TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
	)`,
}

var indexes = []string{
	`CREATE INDEX IF NOT EXISTS idx_generated_pages_filename ON generated_pages(filename)`,
	`CREATE INDEX IF NOT EXISTS idx_generated_pages_created ON generated_pages(created)`,
	`CREATE INDEX IF NOT EXISTS idx_page_shares_page_id ON page_shares(page_id)`,
}
