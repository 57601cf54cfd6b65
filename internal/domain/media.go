package domain

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// MediaID is an AniList media identifier. Zero means the entry is an
// unfilled placeholder.
type MediaID int64

func (id MediaID) IsZero() bool { return id == 0 }

func (id MediaID) String() string { return strconv.FormatInt(int64(id), 10) }

// ParseMediaID parses the digits captured from a post. Ids that parse to
// zero (e.g. "00000") are placeholders.
func ParseMediaID(s string) MediaID {
	n, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil || n < 0 {
		return 0
	}
	return MediaID(n)
}

// UnmarshalJSON accepts a number, a numeric string or null. Older backups
// store ids as strings.
func (id *MediaID) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, []byte("null")) {
		*id = 0
		return nil
	}
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		if s == "" {
			*id = 0
			return nil
		}
		n, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			return fmt.Errorf("media id %q: %w", s, err)
		}
		*id = MediaID(n)
		return nil
	}
	var n int64
	if err := json.Unmarshal(b, &n); err != nil {
		return fmt.Errorf("media id: %w", err)
	}
	*id = MediaID(n)
	return nil
}

type Tag struct {
	Name string `json:"name"`
}

// Media is the metadata returned by a single-item lookup.
type Media struct {
	ID            MediaID
	TitleRomaji   string
	TitleEnglish  string
	CoverImageURL string
	Genres        []string
	Tags          []Tag
}

// Profile is the public, cosmetic part of a remote user.
type Profile struct {
	Name      string
	AvatarURL string
	BannerURL string
}

// RemoteStatusSet holds the ids found on a user's list, split by the two
// statuses the tracker cares about.
type RemoteStatusSet struct {
	Completed map[MediaID]struct{}
	Current   map[MediaID]struct{}
}

func NewRemoteStatusSet() RemoteStatusSet {
	return RemoteStatusSet{
		Completed: make(map[MediaID]struct{}),
		Current:   make(map[MediaID]struct{}),
	}
}

// StatusOf maps an id to its remote status.
func (s RemoteStatusSet) StatusOf(id MediaID) Status {
	if _, ok := s.Completed[id]; ok {
		return StatusComplete
	}
	if _, ok := s.Current[id]; ok {
		return StatusOngoing
	}
	return StatusIncomplete
}
