package storage

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/suite"

	"awc_tracker/internal/domain"
	"awc_tracker/internal/legend"
	"awc_tracker/internal/storage/diskkv"
)

type StateSuite struct {
	suite.Suite
	ctx   context.Context
	kv    *diskkv.Store
	state *State
}

func (s *StateSuite) SetupTest() {
	s.ctx = context.Background()
	s.kv = diskkv.New(s.T().TempDir())
	s.state = NewState(s.kv, diskkv.NewTransactionManager(), slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestStateSuite(t *testing.T) {
	suite.Run(t, new(StateSuite))
}

func (s *StateSuite) TestDefaults() {
	challenges, err := s.state.Challenges(s.ctx)
	s.NoError(err)
	s.NotNil(challenges)
	s.Empty(challenges)

	l, err := s.state.Legend(s.ctx)
	s.NoError(err)
	s.Equal(legend.Default(), l)

	pref, err := s.state.TitlePreference(s.ctx)
	s.NoError(err)
	s.Equal(domain.TitleRomaji, pref)

	filter, sort, err := s.state.GlobalView(s.ctx)
	s.NoError(err)
	s.Equal("all", filter)
	s.Equal("title-asc", sort)
}

func (s *StateSuite) TestCorruptValueIsCleared() {
	s.Require().NoError(s.kv.Set(s.ctx, KeyChallenges, "{not json"))
	s.Require().NoError(s.kv.Set(s.ctx, KeyLegend, "[1,2"))

	challenges, err := s.state.Challenges(s.ctx)
	s.NoError(err)
	s.Empty(challenges)

	l, err := s.state.Legend(s.ctx)
	s.NoError(err)
	s.Equal(legend.Default(), l)

	_, ok, err := s.kv.Get(s.ctx, KeyChallenges)
	s.NoError(err)
	s.False(ok)
	_, ok, err = s.kv.Get(s.ctx, KeyLegend)
	s.NoError(err)
	s.False(ok)
}

func (s *StateSuite) TestChallengesRoundTrip() {
	challenges := []domain.Challenge{{
		ID:    1,
		Title: "Seasonal",
		Entries: []domain.Entry{
			{RemoteID: 5, RequirementTitle: "Spring", DeclaredStatus: domain.StatusOngoing, RemoteStatus: domain.StatusOngoing},
			{RequirementTitle: "Summer", DeclaredStatus: domain.StatusIncomplete, RemoteStatus: domain.StatusIncomplete},
		},
	}}
	s.Require().NoError(s.state.SaveChallenges(s.ctx, challenges))

	got, err := s.state.Challenges(s.ctx)
	s.NoError(err)
	s.Equal(challenges, got)
}

func (s *StateSuite) TestSetHandle_EmptyRemoves() {
	s.Require().NoError(s.state.SetHandle(s.ctx, "Meheu"))
	h, err := s.state.Handle(s.ctx)
	s.NoError(err)
	s.Equal("Meheu", h)

	s.Require().NoError(s.state.SetHandle(s.ctx, ""))
	_, ok, err := s.kv.Get(s.ctx, KeyHandle)
	s.NoError(err)
	s.False(ok)
}

func (s *StateSuite) TestSnapshotRestore() {
	snap := domain.Snapshot{
		Handle:          "Meheu",
		Theme:           "light",
		TitlePreference: domain.TitleEnglish,
		Legend:          domain.Legend{Complete: []string{"C"}, Ongoing: []string{"W"}, Incomplete: []string{"N"}},
		Challenges:      []domain.Challenge{{ID: 2, Title: "Studio", Entries: []domain.Entry{}}},
		GlobalViewMode:  "grid",
		GlobalFilter:    "discrepancy",
		GlobalSort:      "count-desc",
	}
	s.Require().NoError(s.state.Restore(s.ctx, snap))

	got, err := s.state.Snapshot(s.ctx)
	s.NoError(err)
	s.Equal(snap, got)
}

func (s *StateSuite) TestClearAll() {
	s.Require().NoError(s.state.SetHandle(s.ctx, "Meheu"))
	s.Require().NoError(s.state.SaveChallenges(s.ctx, []domain.Challenge{{ID: 1, Title: "x"}}))
	s.Require().NoError(s.kv.Set(s.ctx, "unrelated", "kept"))

	removed, err := s.state.ClearAll(s.ctx)
	s.Require().NoError(err)
	s.Equal([]string{KeyChallenges, KeyHandle}, removed)

	keys, err := s.kv.Keys(s.ctx)
	s.NoError(err)
	s.Equal([]string{"unrelated"}, keys)

	removed, err = s.state.ClearAll(s.ctx)
	s.NoError(err)
	s.Empty(removed)
}
