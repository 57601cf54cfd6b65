package aggregate

import (
	"fmt"
	"sort"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"awc_tracker/internal/domain"
)

// Filter selects global records by status.
type Filter string

const (
	FilterAll                Filter = "all"
	FilterRemoteComplete     Filter = "anilist_complete"
	FilterRemoteOngoing      Filter = "anilist_ongoing"
	FilterRemoteIncomplete   Filter = "anilist_incomplete"
	FilterDeclaredComplete   Filter = "challenge_all_complete"
	FilterDeclaredOngoing    Filter = "challenge_any_ongoing"
	FilterDeclaredIncomplete Filter = "challenge_incomplete"
	// FilterUpdatePost: complete on the remote list but not in any post.
	FilterUpdatePost Filter = "discrepancy_update_post"
	// FilterUpdateRemote: complete in a post but not on the remote list.
	FilterUpdateRemote Filter = "discrepancy_update_anilist"
	FilterDiscrepancy  Filter = "discrepancy"
)

var filters = []Filter{
	FilterAll, FilterRemoteComplete, FilterRemoteOngoing, FilterRemoteIncomplete,
	FilterDeclaredComplete, FilterDeclaredOngoing, FilterDeclaredIncomplete,
	FilterUpdatePost, FilterUpdateRemote, FilterDiscrepancy,
}

// Sort orders global records.
type Sort string

const (
	SortTitleAsc        Sort = "title-asc"
	SortTitleDesc       Sort = "title-desc"
	SortCountAsc        Sort = "count-asc"
	SortCountDesc       Sort = "count-desc"
	SortRemoteStatus    Sort = "anilist-status"
	SortChallengeStatus Sort = "challenge-status"
)

var sorts = []Sort{SortTitleAsc, SortTitleDesc, SortCountAsc, SortCountDesc, SortRemoteStatus, SortChallengeStatus}

func ParseFilter(s string) (Filter, error) {
	if s == "" {
		return FilterAll, nil
	}
	for _, f := range filters {
		if string(f) == s {
			return f, nil
		}
	}
	return "", fmt.Errorf("unknown filter %q", s)
}

func ParseSort(s string) (Sort, error) {
	if s == "" {
		return SortTitleAsc, nil
	}
	for _, o := range sorts {
		if string(o) == s {
			return o, nil
		}
	}
	return "", fmt.Errorf("unknown sort %q", s)
}

// Query is a filter/sort request over the global view.
type Query struct {
	Filter     Filter
	Tag        string
	Genre      string
	Sort       Sort
	Preference domain.TitlePreference
}

// View aggregates challenges and applies q.
func View(challenges []domain.Challenge, q Query) []domain.GlobalRecord {
	records := Aggregate(challenges)
	records = Apply(records, q.Filter, q.Tag, q.Genre)
	SortRecords(records, q.Sort, q.Preference)
	return records
}

// Apply keeps the records matching f and, when set, the tag and genre
// substrings (case-insensitive).
func Apply(records []domain.GlobalRecord, f Filter, tag, genre string) []domain.GlobalRecord {
	tag = strings.ToLower(strings.TrimSpace(tag))
	genre = strings.ToLower(strings.TrimSpace(genre))

	out := make([]domain.GlobalRecord, 0, len(records))
	for _, r := range records {
		if !r.Filled() || !matches(r, f) {
			continue
		}
		if tag != "" && !anyContains(tagNames(r.Tags), tag) {
			continue
		}
		if genre != "" && !anyContains(r.Genres, genre) {
			continue
		}
		out = append(out, r)
	}
	return out
}

func matches(r domain.GlobalRecord, f Filter) bool {
	eff := EffectiveStatus(r)
	remote := r.RemoteStatus
	switch f {
	case FilterRemoteComplete:
		return remote == domain.StatusComplete
	case FilterRemoteOngoing:
		return remote == domain.StatusOngoing
	case FilterRemoteIncomplete:
		return remote == domain.StatusIncomplete
	case FilterDeclaredComplete:
		return eff == domain.StatusComplete
	case FilterDeclaredOngoing:
		return eff == domain.StatusOngoing
	case FilterDeclaredIncomplete:
		return eff == domain.StatusIncomplete
	case FilterUpdatePost:
		return remote == domain.StatusComplete && eff != domain.StatusComplete
	case FilterUpdateRemote:
		return remote != domain.StatusComplete && eff == domain.StatusComplete
	case FilterDiscrepancy:
		return (remote == domain.StatusComplete) != (eff == domain.StatusComplete)
	default:
		return true
	}
}

// SortRecords sorts in place. Ties keep input order.
func SortRecords(records []domain.GlobalRecord, s Sort, pref domain.TitlePreference) {
	var less func(a, b domain.GlobalRecord) bool

	switch s {
	case SortTitleAsc, SortTitleDesc:
		col := collate.New(language.Und)
		sign := 1
		if s == SortTitleDesc {
			sign = -1
		}
		less = func(a, b domain.GlobalRecord) bool {
			return sign*col.CompareString(domain.DisplayTitle(a.Entry, pref), domain.DisplayTitle(b.Entry, pref)) < 0
		}
	case SortCountAsc:
		less = func(a, b domain.GlobalRecord) bool { return a.Count < b.Count }
	case SortCountDesc:
		less = func(a, b domain.GlobalRecord) bool { return a.Count > b.Count }
	case SortRemoteStatus:
		less = func(a, b domain.GlobalRecord) bool { return a.RemoteStatus.Rank() < b.RemoteStatus.Rank() }
	case SortChallengeStatus:
		less = func(a, b domain.GlobalRecord) bool { return EffectiveStatus(a).Rank() < EffectiveStatus(b).Rank() }
	default:
		return
	}

	sort.SliceStable(records, func(i, j int) bool { return less(records[i], records[j]) })
}

func tagNames(tags []domain.Tag) []string {
	out := make([]string, len(tags))
	for i, t := range tags {
		out[i] = t.Name
	}
	return out
}

func anyContains(values []string, lowerNeedle string) bool {
	for _, v := range values {
		if strings.Contains(strings.ToLower(v), lowerNeedle) {
			return true
		}
	}
	return false
}
