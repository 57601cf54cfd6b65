// Package aggregate builds the cross-challenge view of every anime.
package aggregate

import (
	"awc_tracker/internal/domain"
)

// Aggregate deduplicates filled entries by id, in challenge-then-entry
// order. The first entry seen for an id supplies the display fields.
func Aggregate(challenges []domain.Challenge) []domain.GlobalRecord {
	index := make(map[domain.MediaID]int)
	var records []domain.GlobalRecord

	for _, c := range challenges {
		for _, e := range c.Entries {
			if !e.Filled() {
				continue
			}
			if i, ok := index[e.RemoteID]; ok {
				records[i].Count++
				records[i].ChallengeStatuses = append(records[i].ChallengeStatuses, e.DeclaredStatus)
				continue
			}
			index[e.RemoteID] = len(records)
			records = append(records, domain.GlobalRecord{
				Entry:             e,
				Count:             1,
				ChallengeStatuses: []domain.Status{e.DeclaredStatus},
			})
		}
	}
	return records
}

// EffectiveStatus merges the declared statuses of a record: complete if any
// challenge declares it complete, else ongoing if any declares ongoing.
func EffectiveStatus(r domain.GlobalRecord) domain.Status {
	effective := domain.StatusIncomplete
	for _, s := range r.ChallengeStatuses {
		switch s {
		case domain.StatusComplete:
			return domain.StatusComplete
		case domain.StatusOngoing:
			effective = domain.StatusOngoing
		}
	}
	return effective
}
