package domain

import "time"

// ParsedEntry is one status line recognised in a post, before enrichment.
type ParsedEntry struct {
	RemoteID         MediaID
	RequirementTitle string
	DeclaredStatus   Status
	StartDate        string
	EndDate          string
}

// AddResult reports the outcome of turning a post into a challenge.
type AddResult struct {
	Challenge Challenge
	Warnings  []string
	Errors    []string
}

// RefreshStats holds statistics about a reconciliation run.
type RefreshStats struct {
	Handle        string
	Challenges    int
	Entries       int
	Complete      int
	Ongoing       int
	Incomplete    int
	Discrepancies int
	Duration      time.Duration
}

// ImportResult reports a restored backup and the refresh that followed it.
type ImportResult struct {
	Snapshot  Snapshot
	Refreshed *RefreshStats
	Warnings  []string
}
