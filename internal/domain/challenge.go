package domain

const UnnamedRequirement = "Unnamed Requirement"

// Entry is one requirement inside a challenge. JSON keys match the
// browser tracker's storage format so that existing backups import.
type Entry struct {
	RemoteID         MediaID  `json:"animeId,omitempty"`
	RequirementTitle string   `json:"title"`
	TitleRomaji      string   `json:"romajiTitle,omitempty"`
	TitleEnglish     string   `json:"englishTitle,omitempty"`
	CoverImageURL    string   `json:"image,omitempty"`
	Genres           []string `json:"genres,omitempty"`
	Tags             []Tag    `json:"tags,omitempty"`
	DeclaredStatus   Status   `json:"statusChallenge"`
	RemoteStatus     Status   `json:"statusAniList"`
	StartDate        string   `json:"startDate,omitempty"`
	EndDate          string   `json:"endDate,omitempty"`
}

// Filled reports whether the entry is tied to a remote media id.
func (e Entry) Filled() bool { return !e.RemoteID.IsZero() }

// ApplyMedia copies enrichment fields onto the entry.
func (e *Entry) ApplyMedia(m *Media) {
	e.TitleRomaji = m.TitleRomaji
	e.TitleEnglish = m.TitleEnglish
	e.CoverImageURL = m.CoverImageURL
	e.Genres = append([]string(nil), m.Genres...)
	e.Tags = append([]Tag(nil), m.Tags...)
}

type Challenge struct {
	ID      int64   `json:"id"`
	Title   string  `json:"title"`
	PostURL string  `json:"postUrl,omitempty"`
	Entries []Entry `json:"entries"`
}

// Counts returns the number of filled entries and how many of those are
// complete on the remote list.
func (c Challenge) Counts() (filled, completed int) {
	for _, e := range c.Entries {
		if !e.Filled() {
			continue
		}
		filled++
		if e.RemoteStatus == StatusComplete {
			completed++
		}
	}
	return filled, completed
}

// GlobalRecord is one distinct media id across all challenges. Display
// fields come from the first entry seen.
type GlobalRecord struct {
	Entry
	Count             int      `json:"count"`
	ChallengeStatuses []Status `json:"challengeStatuses"`
}

type TitlePreference string

const (
	TitleRomaji  TitlePreference = "romaji"
	TitleEnglish TitlePreference = "english"
)

func ParseTitlePreference(s string) TitlePreference {
	if TitlePreference(s) == TitleEnglish {
		return TitleEnglish
	}
	return TitleRomaji
}

// DisplayTitle picks the title shown for an entry.
func DisplayTitle(e Entry, pref TitlePreference) string {
	if pref == TitleEnglish && e.TitleEnglish != "" {
		return e.TitleEnglish
	}
	if e.TitleRomaji != "" {
		return e.TitleRomaji
	}
	if e.RequirementTitle != "" {
		return e.RequirementTitle
	}
	return UnnamedRequirement
}
