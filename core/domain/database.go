package domain

import "time"

// DatabaseStatus describes the last known state of the store database.
type DatabaseStatus struct {
	URI       string    `json:"uri"`
	Connected bool      `json:"connected"`
	Error     string    `json:"error,omitempty"`
	CheckedAt time.Time `json:"checked_at"`
}
