package aggregate

import (
	"fmt"
	"math"
	"sort"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"awc_tracker/internal/domain"
)

// ChallengeFilter selects challenges by overall progress.
type ChallengeFilter string

const (
	ChallengesAll           ChallengeFilter = "all"
	ChallengesOngoing       ChallengeFilter = "ongoing"
	ChallengesCompleted     ChallengeFilter = "completed"
	ChallengesDiscrepancies ChallengeFilter = "discrepancies"
)

// ChallengeSort orders challenges.
type ChallengeSort string

const (
	ChallengesDateDesc     ChallengeSort = "date-desc"
	ChallengesDateAsc      ChallengeSort = "date-asc"
	ChallengesTitleAsc     ChallengeSort = "title-asc"
	ChallengesTitleDesc    ChallengeSort = "title-desc"
	ChallengesProgressAsc  ChallengeSort = "progress-asc"
	ChallengesProgressDesc ChallengeSort = "progress-desc"
)

func ParseChallengeFilter(s string) (ChallengeFilter, error) {
	switch f := ChallengeFilter(s); f {
	case "":
		return ChallengesAll, nil
	case ChallengesAll, ChallengesOngoing, ChallengesCompleted, ChallengesDiscrepancies:
		return f, nil
	}
	return "", fmt.Errorf("unknown challenge filter %q", s)
}

func ParseChallengeSort(s string) (ChallengeSort, error) {
	switch o := ChallengeSort(s); o {
	case "":
		return ChallengesDateDesc, nil
	case ChallengesDateDesc, ChallengesDateAsc, ChallengesTitleAsc, ChallengesTitleDesc,
		ChallengesProgressAsc, ChallengesProgressDesc:
		return o, nil
	}
	return "", fmt.Errorf("unknown challenge sort %q", s)
}

// Progress is the fraction of filled entries complete on the remote list.
// ok is false when the challenge has no filled entries.
func Progress(c domain.Challenge) (ratio float64, ok bool) {
	filled, completed := c.Counts()
	if filled == 0 {
		return 0, false
	}
	return float64(completed) / float64(filled), true
}

// FilterChallenges returns the challenges matching f.
func FilterChallenges(challenges []domain.Challenge, f ChallengeFilter) []domain.Challenge {
	out := make([]domain.Challenge, 0, len(challenges))
	for _, c := range challenges {
		if f == ChallengesAll || f == "" {
			out = append(out, c)
			continue
		}
		total := len(c.Entries)
		if total == 0 {
			continue
		}
		filled, completed := c.Counts()

		var keep bool
		switch f {
		case ChallengesOngoing:
			keep = filled < total || (filled > 0 && completed < filled)
		case ChallengesCompleted:
			keep = filled == total && completed == filled
		case ChallengesDiscrepancies:
			for _, e := range c.Entries {
				if e.Filled() && e.RemoteStatus == domain.StatusComplete && e.DeclaredStatus != domain.StatusComplete {
					keep = true
					break
				}
			}
		}
		if keep {
			out = append(out, c)
		}
	}
	return out
}

// SortChallenges sorts in place. Ties keep input order.
func SortChallenges(challenges []domain.Challenge, s ChallengeSort) {
	var less func(a, b domain.Challenge) bool

	switch s {
	case ChallengesDateAsc:
		less = func(a, b domain.Challenge) bool { return a.ID < b.ID }
	case ChallengesTitleAsc, ChallengesTitleDesc:
		col := collate.New(language.Und)
		sign := 1
		if s == ChallengesTitleDesc {
			sign = -1
		}
		less = func(a, b domain.Challenge) bool { return sign*col.CompareString(a.Title, b.Title) < 0 }
	case ChallengesProgressDesc:
		less = func(a, b domain.Challenge) bool { return progressOr(a, -1) > progressOr(b, -1) }
	case ChallengesProgressAsc:
		less = func(a, b domain.Challenge) bool { return progressOr(a, math.Inf(1)) < progressOr(b, math.Inf(1)) }
	default:
		less = func(a, b domain.Challenge) bool { return a.ID > b.ID }
	}

	sort.SliceStable(challenges, func(i, j int) bool { return less(challenges[i], challenges[j]) })
}

func progressOr(c domain.Challenge, none float64) float64 {
	if p, ok := Progress(c); ok {
		return p
	}
	return none
}
