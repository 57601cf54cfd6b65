// Package backup encodes and validates the export document.
package backup

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/go-playground/validator/v10"

	"awc_tracker/internal/domain"
	"awc_tracker/internal/legend"
)

var ErrInvalidDocument = errors.New("invalid or corrupted import file")

// Document is the export file. Keys match the browser tracker's export so
// either can import the other's files.
type Document struct {
	AnilistUsername *string             `json:"anilistUsername" validate:"required"`
	Theme           *string             `json:"theme" validate:"required"`
	PreferredTitle  *string             `json:"preferredTitle" validate:"required"`
	UserLegend      *legendDocument     `json:"userLegend" validate:"required"`
	Challenges      *[]domain.Challenge `json:"challenges" validate:"required"`
	AppVersion      string              `json:"appVersion,omitempty"`
	GlobalViewMode  string              `json:"globalViewMode,omitempty"`
	GlobalFilter    string              `json:"globalFilter,omitempty"`
	GlobalSort      string              `json:"globalSort,omitempty"`
}

type legendDocument struct {
	Complete   *[]string `json:"complete" validate:"required"`
	Ongoing    *[]string `json:"ongoing" validate:"required"`
	Incomplete *[]string `json:"incomplete" validate:"required"`
}

var validate = validator.New()

// Encode writes snap as an indented export document.
func Encode(w io.Writer, snap domain.Snapshot, version string) error {
	l := snap.Legend.Clone()
	challenges := snap.Challenges
	if challenges == nil {
		challenges = []domain.Challenge{}
	}
	pref := string(snap.TitlePreference)

	doc := Document{
		AnilistUsername: &snap.Handle,
		Theme:           &snap.Theme,
		PreferredTitle:  &pref,
		UserLegend: &legendDocument{
			Complete:   nonNil(l.Complete),
			Ongoing:    nonNil(l.Ongoing),
			Incomplete: nonNil(l.Incomplete),
		},
		Challenges:     &challenges,
		AppVersion:     version,
		GlobalViewMode: snap.GlobalViewMode,
		GlobalFilter:   snap.GlobalFilter,
		GlobalSort:     snap.GlobalSort,
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("encode backup: %w", err)
	}
	return nil
}

// Decode reads and validates an export document. Any missing or
// mistyped field rejects the whole document.
func Decode(r io.Reader) (domain.Snapshot, error) {
	var doc Document
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return domain.Snapshot{}, fmt.Errorf("%w: %v", ErrInvalidDocument, err)
	}
	if err := validate.Struct(doc); err != nil {
		return domain.Snapshot{}, fmt.Errorf("%w: %v", ErrInvalidDocument, err)
	}

	snap := domain.Snapshot{
		Handle:          *doc.AnilistUsername,
		Theme:           orDefault(*doc.Theme, "dark"),
		TitlePreference: domain.ParseTitlePreference(*doc.PreferredTitle),
		Legend: legend.Normalize(domain.Legend{
			Complete:   *doc.UserLegend.Complete,
			Ongoing:    *doc.UserLegend.Ongoing,
			Incomplete: *doc.UserLegend.Incomplete,
		}),
		Challenges:     *doc.Challenges,
		GlobalViewMode: orDefault(doc.GlobalViewMode, "list"),
		GlobalFilter:   orDefault(doc.GlobalFilter, "all"),
		GlobalSort:     orDefault(doc.GlobalSort, "title-asc"),
	}
	for i := range snap.Challenges {
		for j := range snap.Challenges[i].Entries {
			e := &snap.Challenges[i].Entries[j]
			e.DeclaredStatus = domain.ParseStatus(string(e.DeclaredStatus))
			e.RemoteStatus = domain.ParseStatus(string(e.RemoteStatus))
		}
	}
	return snap, nil
}

func nonNil(s []string) *[]string {
	if s == nil {
		s = []string{}
	}
	return &s
}

func orDefault(v, def string) string {
	if v == "" {
		return def
	}
	return v
}
