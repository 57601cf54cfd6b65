// Package reconcile maps remote list membership onto challenge entries.
package reconcile

import "awc_tracker/internal/domain"

// Apply returns a copy of entries with RemoteStatus recomputed from set.
// Entries without an id are copied unchanged. Order is preserved.
func Apply(entries []domain.Entry, set domain.RemoteStatusSet) []domain.Entry {
	out := make([]domain.Entry, len(entries))
	for i, e := range entries {
		if e.Filled() {
			e.RemoteStatus = set.StatusOf(e.RemoteID)
		}
		out[i] = e
	}
	return out
}

// Challenge applies set to one challenge.
func Challenge(c domain.Challenge, set domain.RemoteStatusSet) domain.Challenge {
	c.Entries = Apply(c.Entries, set)
	return c
}

// All applies one status set to every challenge and tallies the result.
func All(challenges []domain.Challenge, set domain.RemoteStatusSet) ([]domain.Challenge, domain.RefreshStats) {
	out := make([]domain.Challenge, len(challenges))
	var stats domain.RefreshStats
	for i, c := range challenges {
		out[i] = Challenge(c, set)
		tally(&stats, out[i])
	}
	stats.Challenges = len(out)
	return out, stats
}

// Tally counts statuses and discrepancies across challenges.
func Tally(challenges ...domain.Challenge) domain.RefreshStats {
	var stats domain.RefreshStats
	for _, c := range challenges {
		tally(&stats, c)
	}
	stats.Challenges = len(challenges)
	return stats
}

func tally(stats *domain.RefreshStats, c domain.Challenge) {
	for _, e := range c.Entries {
		if !e.Filled() {
			continue
		}
		stats.Entries++
		switch e.RemoteStatus {
		case domain.StatusComplete:
			stats.Complete++
		case domain.StatusOngoing:
			stats.Ongoing++
		default:
			stats.Incomplete++
		}
		if (e.RemoteStatus == domain.StatusComplete) != (e.DeclaredStatus == domain.StatusComplete) {
			stats.Discrepancies++
		}
	}
}
