package enrich

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"awc_tracker/internal/domain"
)

type call struct {
	kind string // "wait" or "lookup"
	id   domain.MediaID
	d    time.Duration
}

type fakeSource struct {
	calls  *[]call
	errs   map[domain.MediaID]error
	cancel context.CancelFunc
}

func (f *fakeSource) GetMediaByID(ctx context.Context, id domain.MediaID) (*domain.Media, error) {
	*f.calls = append(*f.calls, call{kind: "lookup", id: id})
	if f.cancel != nil {
		f.cancel()
	}
	if err, ok := f.errs[id]; ok {
		return nil, err
	}
	return &domain.Media{
		ID:           id,
		TitleRomaji:  "romaji " + id.String(),
		TitleEnglish: "english " + id.String(),
		Genres:       []string{"Drama"},
		Tags:         []domain.Tag{{Name: "Tag"}},
	}, nil
}

func newTestEnricher(src *fakeSource, delay time.Duration) *Enricher {
	e := New(src, delay, slog.New(slog.NewTextHandler(io.Discard, nil)))
	e.newPacer = func(d time.Duration) *Pacer {
		p := NewPacer(d)
		p.wait = func(ctx context.Context, d time.Duration) error {
			*src.calls = append(*src.calls, call{kind: "wait", d: d})
			return ctx.Err()
		}
		return p
	}
	return e
}

func parsed(ids ...domain.MediaID) []domain.ParsedEntry {
	out := make([]domain.ParsedEntry, len(ids))
	for i, id := range ids {
		out[i] = domain.ParsedEntry{
			RemoteID:         id,
			RequirementTitle: "req " + id.String(),
			DeclaredStatus:   domain.StatusOngoing,
			StartDate:        "2024-01-01",
		}
	}
	return out
}

func TestEnrich_SpacesLookups(t *testing.T) {
	var calls []call
	e := newTestEnricher(&fakeSource{calls: &calls}, 500*time.Millisecond)

	entries, errs, err := e.Enrich(context.Background(), parsed(1, 2, 3))
	require.NoError(t, err)
	assert.Empty(t, errs)
	require.Len(t, entries, 3)

	assert.Equal(t, []call{
		{kind: "lookup", id: 1},
		{kind: "wait", d: 500 * time.Millisecond},
		{kind: "lookup", id: 2},
		{kind: "wait", d: 500 * time.Millisecond},
		{kind: "lookup", id: 3},
	}, calls)

	assert.Equal(t, "romaji 2", entries[1].TitleRomaji)
	assert.Equal(t, "english 2", entries[1].TitleEnglish)
	assert.Equal(t, []string{"Drama"}, entries[1].Genres)
	assert.Equal(t, domain.StatusIncomplete, entries[1].RemoteStatus)
	assert.Equal(t, domain.StatusOngoing, entries[1].DeclaredStatus)
}

func TestEnrich_PlaceholdersSkipLookupAndDelay(t *testing.T) {
	var calls []call
	e := newTestEnricher(&fakeSource{calls: &calls}, time.Second)

	entries, errs, err := e.Enrich(context.Background(), parsed(0, 5, 0, 0, 6, 0))
	require.NoError(t, err)
	assert.Empty(t, errs)
	require.Len(t, entries, 6)

	assert.Equal(t, []call{
		{kind: "lookup", id: 5},
		{kind: "wait", d: time.Second},
		{kind: "lookup", id: 6},
	}, calls)
	assert.Empty(t, entries[0].TitleRomaji)
	assert.Equal(t, "req 0", entries[3].RequirementTitle)
}

func TestEnrich_FailuresClearIDAndKeepOrder(t *testing.T) {
	var calls []call
	src := &fakeSource{calls: &calls, errs: map[domain.MediaID]error{
		101: errors.New("connection refused"),
		102: &domain.NotFoundError{Detail: "Not Found."},
	}}
	e := newTestEnricher(src, 0)

	entries, errs, err := e.Enrich(context.Background(), parsed(101, 7, 102))
	require.NoError(t, err)

	require.Len(t, entries, 3)
	assert.True(t, entries[0].RemoteID.IsZero())
	assert.Equal(t, "req 101", entries[0].RequirementTitle)
	assert.Equal(t, "2024-01-01", entries[0].StartDate)
	assert.Equal(t, domain.MediaID(7), entries[1].RemoteID)
	assert.True(t, entries[2].RemoteID.IsZero())
	assert.Equal(t, "req 102", entries[2].RequirementTitle)

	assert.Equal(t, []string{
		"Network error fetching ID 101: connection refused",
		"No data for ID 102: Not Found.",
	}, errs)
}

func TestEnrich_Canceled(t *testing.T) {
	var calls []call
	ctx, cancel := context.WithCancel(context.Background())
	src := &fakeSource{calls: &calls, cancel: cancel}
	e := newTestEnricher(src, time.Second)

	entries, _, err := e.Enrich(ctx, parsed(1, 2))
	assert.ErrorIs(t, err, context.Canceled)
	assert.Nil(t, entries)
	assert.Len(t, calls, 2, "one lookup, then the wait observes cancellation")
}

func TestPacer_RealWait(t *testing.T) {
	p := NewPacer(20 * time.Millisecond)
	start := time.Now()
	for i := 0; i < 3; i++ {
		require.NoError(t, p.Do(context.Background(), func(context.Context) error { return nil }))
	}
	assert.GreaterOrEqual(t, time.Since(start), 40*time.Millisecond)
}
