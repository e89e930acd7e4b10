package entity

import (
	"time"
)

// Seed run status
const (
	RunStatusRunning   = "RUNNING"
	RunStatusCompleted = "COMPLETED"
	RunStatusFailed    = "FAILED"
)

// SeedRun is the report of one seeding run
type SeedRun struct {
	RunID         string         `bson:"_id"`
	AppVersion    string         `bson:"appVersion"`
	Seed          uint64         `bson:"seed"`
	Locale        string         `bson:"locale"`
	ClaimIDScheme string         `bson:"claimIdScheme"`
	NumCustomers  int            `bson:"numCustomers"`
	Status        string         `bson:"status"`
	Generated     map[string]int `bson:"generated"`
	Submitted     map[string]int `bson:"submitted"` // rows sent per table, not rows inserted
	ErrorDetail   string         `bson:"errorDetail,omitempty"`
	StartedAt     time.Time      `bson:"startedAt"`
	FinishedAt    time.Time      `bson:"finishedAt"`
}

// Duration returns how long the run took
func (r SeedRun) Duration() time.Duration {
	return r.FinishedAt.Sub(r.StartedAt)
}
