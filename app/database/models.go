package database

import (
	"time"
)

// Run records one pipeline execution.
type Run struct {
	ID          string
	ProductName string
	CreatedAt   time.Time
}

// Document is one generated page body stored for a run.
type Document struct {
	ID        string
	RunID     string
	PageType  string
	Body      string // serialized JSON document
	CreatedAt time.Time
}
