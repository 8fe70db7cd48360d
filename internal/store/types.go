package store

import "time"

// Entry is a persisted carbon calculation record. Entries are append-only:
// once written they are never mutated, and they are removed only by an
// explicit user delete.
type Entry struct {
	ID         string
	Category   string
	CO2eTonnes float64
	Timestamp  time.Time
	Notes      string
}
