package models

import "time"

// Result orderings
const (
	OrderByVotes = "votes"
	OrderByName  = "name"
)

// Health status values
const (
	HealthOK    = "OK"
	HealthError = "ERROR"

	DatabaseConnected    = "connected"
	DatabaseDisconnected = "disconnected"
)

// MaxProjectNameLen matches the VARCHAR(255) column on Postgres.
const MaxProjectNameLen = 255

// Domain types

type Project struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

type Vote struct {
	ID        int64     `json:"id"`
	ProjectID int64     `json:"project_id"`
	VoterID   string    `json:"-"` // Never expose in JSON
	CastAt    time.Time `json:"cast_at"`
}

// ProjectResult is a project with its current vote count
type ProjectResult struct {
	Project
	Votes int `json:"votes"`
	// Share of all votes, 0-100. Only filled in by reports.
	Percent float64 `json:"percent"`
}

type Report struct {
	Results     []ProjectResult `json:"results"`
	TotalVotes  int             `json:"total_votes"`
	Leader      *ProjectResult  `json:"leader,omitempty"`
	GeneratedAt time.Time       `json:"generated_at"`
}

// Response types

type HealthResponse struct {
	Status    string     `json:"status"`
	Database  string     `json:"database"`
	Timestamp *time.Time `json:"timestamp,omitempty"`
	Error     string     `json:"error,omitempty"`
}
