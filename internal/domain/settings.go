package domain

// Snapshot is the complete persisted state of the tracker.
type Snapshot struct {
	Handle          string
	Theme           string
	TitlePreference TitlePreference
	Legend          Legend
	Challenges      []Challenge
	GlobalViewMode  string
	GlobalFilter    string
	GlobalSort      string
}
