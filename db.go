package main

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/glebarez/go-sqlite"
)

// selectionStore appends landing-page country selections to sqlite.
type selectionStore struct {
	db *sql.DB
}

type countryCount struct {
	Country    string
	Selections int64
	Visitors   int64
}

func openSelectionStore(path string) (*selectionStore, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	// sqlite allows a single writer.
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(`
    CREATE TABLE IF NOT EXISTS country_selections (
        id INTEGER PRIMARY KEY AUTOINCREMENT,
        visitor_id TEXT NOT NULL,
        country TEXT NOT NULL,
        created_at DATETIME DEFAULT CURRENT_TIMESTAMP
    );`); err != nil {
		db.Close()
		return nil, fmt.Errorf("create country_selections: %w", err)
	}

	if _, err := db.Exec(`
    CREATE INDEX IF NOT EXISTS idx_country_selections_country
        ON country_selections (country);`); err != nil {
		db.Close()
		return nil, fmt.Errorf("create index: %w", err)
	}

	return &selectionStore{db: db}, nil
}

func (s *selectionStore) Record(ctx context.Context, visitorID, country string) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO country_selections (visitor_id, country) VALUES (?, ?)`,
		visitorID, country)
	if err != nil {
		return fmt.Errorf("record selection of %s: %w", country, err)
	}
	return nil
}

// TopCountries returns the most selected countries, most popular first.
func (s *selectionStore) TopCountries(ctx context.Context, limit int) ([]countryCount, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT country, COUNT(*) AS selections, COUNT(DISTINCT visitor_id) AS visitors
		FROM country_selections
		GROUP BY country
		ORDER BY selections DESC, country ASC
		LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("query top countries: %w", err)
	}
	defer rows.Close()

	var out []countryCount
	for rows.Next() {
		var c countryCount
		if err := rows.Scan(&c.Country, &c.Selections, &c.Visitors); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func (s *selectionStore) Close() error {
	return s.db.Close()
}
