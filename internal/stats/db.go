// Package stats records per-run conversion summaries in a sqlite sidecar.
// The emitted GrISU stream never depends on it; the sidecar only exists
// so a run can be inspected after the fact.
package stats

import (
	"database/sql"
	"fmt"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"
)

// DB wraps the summary database. One Session tags all rows written by a
// single converter invocation.
type DB struct {
	*sql.DB
	Session string
}

// Open opens (creating if needed) the summary database at path.
func Open(path string) (*DB, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open stats database: %w", err)
	}

	_, err = db.Exec(`
		CREATE TABLE IF NOT EXISTS showers (
			session           TEXT,
			run_number        BIGINT,
			shower_id         BIGINT,
			energy_tev        DOUBLE,
			first_interaction DOUBLE,
			photon_count      BIGINT,
			timestamp         TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		);
	`)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create stats schema: %w", err)
	}

	return &DB{DB: db, Session: uuid.NewString()}, nil
}

// RecordShower stores the summary row for one converted shower.
func (db *DB) RecordShower(runNumber, showerID int, energyTeV, firstInt float64, photonCount int) error {
	_, err := db.Exec(
		`INSERT INTO showers (session, run_number, shower_id, energy_tev, first_interaction, photon_count)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		db.Session, runNumber, showerID, energyTeV, firstInt, photonCount,
	)
	if err != nil {
		return fmt.Errorf("failed to record shower summary: %w", err)
	}
	return nil
}

// Summary aggregates the current session.
type Summary struct {
	Showers   int
	Photons   int
	EnergyMin float64
	EnergyMax float64
}

// SessionSummary returns the aggregate over everything recorded by this
// session so far.
func (db *DB) SessionSummary() (Summary, error) {
	row := db.QueryRow(
		`SELECT COUNT(*),
		        COALESCE(SUM(photon_count), 0),
		        COALESCE(MIN(energy_tev), 0),
		        COALESCE(MAX(energy_tev), 0)
		 FROM showers WHERE session = ?`,
		db.Session,
	)
	var s Summary
	if err := row.Scan(&s.Showers, &s.Photons, &s.EnergyMin, &s.EnergyMax); err != nil {
		return Summary{}, fmt.Errorf("failed to summarise session: %w", err)
	}
	return s, nil
}
