package service

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"awc_tracker/internal/domain"
	"awc_tracker/internal/enrich"
	"awc_tracker/internal/source/anilist"
	"awc_tracker/internal/storage"
	"awc_tracker/internal/storage/diskkv"
)

const scenarioPost = "# __My Challenge__\n" +
	"<hr>\n" +
	"01) [✔️] __Watch something__\n" +
	"https://anilist.co/anime/101/\n" +
	"Start: 2024-01-01 Finish: 2024-02-01\n"

// newScenario wires the real client, enricher and disk state against a
// fake AniList endpoint.
func newScenario(t *testing.T, media http.HandlerFunc) (*TrackerService, *storage.State) {
	t.Helper()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Query string `json:"query"`
		}
		body, _ := io.ReadAll(r.Body)
		require.NoError(t, json.Unmarshal(body, &req))

		if strings.Contains(req.Query, "MediaListCollection") {
			_, _ = io.WriteString(w, `{"data":{"MediaListCollection":{"lists":[{"entries":[
				{"mediaId":101,"status":"COMPLETED"},{"mediaId":7,"status":"CURRENT"}]}]}}}`)
			return
		}
		media(w, r)
	}))
	t.Cleanup(srv.Close)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	client := anilist.New(anilist.Config{BaseURL: srv.URL, Timeout: 5 * time.Second}, logger)

	kv := diskkv.New(t.TempDir())
	tm := diskkv.NewTransactionManager()
	state := storage.NewState(kv, tm, logger)
	require.NoError(t, state.SetHandle(context.Background(), "Meheu"))

	svc := NewTrackerService(client, enrich.New(client, 0, logger), state, tm, nil, logger)
	return svc, state
}

func TestScenario_AddChallenge(t *testing.T) {
	svc, state := newScenario(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, `{"data":{"Media":{"id":101,
			"title":{"romaji":"Nanika","english":"Something"},
			"coverImage":{"medium":"https://img/101.jpg"},
			"genres":["Drama"],"tags":[{"name":"Iyashikei"}]}}}`)
	})
	ctx := context.Background()

	result, err := svc.AddChallenge(ctx, scenarioPost, "")
	require.NoError(t, err)
	assert.Empty(t, result.Errors)

	c := result.Challenge
	assert.Equal(t, "My Challenge", c.Title)
	require.Len(t, c.Entries, 1)

	e := c.Entries[0]
	assert.Equal(t, domain.MediaID(101), e.RemoteID)
	assert.Equal(t, "Watch something", e.RequirementTitle)
	assert.Equal(t, domain.StatusComplete, e.DeclaredStatus)
	assert.Equal(t, domain.StatusComplete, e.RemoteStatus)
	assert.Equal(t, "2024-01-01", e.StartDate)
	assert.Equal(t, "2024-02-01", e.EndDate)
	assert.Equal(t, "Something", e.TitleEnglish)
	assert.Equal(t, []domain.Tag{{Name: "Iyashikei"}}, e.Tags)

	stored, err := state.Challenges(ctx)
	require.NoError(t, err)
	assert.Equal(t, []domain.Challenge{c}, stored)

	code, err := svc.GenerateCode(ctx, c.ID)
	require.NoError(t, err)
	assert.Contains(t, code, "01) [✔️] __Watch something__\nhttps://anilist.co/anime/101/\nStart: 2024-01-01 Finish: 2024-02-01")
}

func TestScenario_FailedLookupKeepsChallenge(t *testing.T) {
	svc, state := newScenario(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = io.WriteString(w, `{"data":{"Media":null},"errors":[{"message":"Not Found.","status":404}]}`)
	})
	ctx := context.Background()

	result, err := svc.AddChallenge(ctx, scenarioPost, "")
	require.NoError(t, err)

	require.Len(t, result.Errors, 1)
	assert.Contains(t, result.Errors[0], "101")

	require.Len(t, result.Challenge.Entries, 1)
	e := result.Challenge.Entries[0]
	assert.True(t, e.RemoteID.IsZero())
	assert.Equal(t, domain.StatusComplete, e.DeclaredStatus)
	assert.Equal(t, domain.StatusIncomplete, e.RemoteStatus)
	assert.Equal(t, "2024-01-01", e.StartDate)

	stored, err := state.Challenges(ctx)
	require.NoError(t, err)
	assert.Len(t, stored, 1)
}

func TestScenario_ExportImport(t *testing.T) {
	svc, _ := newScenario(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, `{"data":{"Media":{"id":101,"title":{"romaji":"Nanika"},"coverImage":{"medium":""}}}}`)
	})
	ctx := context.Background()

	_, err := svc.AddChallenge(ctx, scenarioPost, "")
	require.NoError(t, err)

	var buf strings.Builder
	require.NoError(t, svc.Export(ctx, &buf, "test"))

	removed, err := svc.ClearAll(ctx)
	require.NoError(t, err)
	assert.Contains(t, removed, storage.KeyChallenges)
	handle, err := svc.Handle(ctx)
	require.NoError(t, err)
	assert.Empty(t, handle)

	_, err = svc.Import(ctx, strings.NewReader(`{"challenges": []}`))
	require.Error(t, err)
	handle, err = svc.Handle(ctx)
	require.NoError(t, err)
	assert.Empty(t, handle)

	result, err := svc.Import(ctx, strings.NewReader(buf.String()))
	require.NoError(t, err)
	assert.Empty(t, result.Warnings)
	assert.Equal(t, "Meheu", result.Snapshot.Handle)
	require.Len(t, result.Snapshot.Challenges, 1)
	assert.Equal(t, "My Challenge", result.Snapshot.Challenges[0].Title)
	require.NotNil(t, result.Refreshed)
	assert.Equal(t, 1, result.Refreshed.Challenges)

	handle, err = svc.Handle(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Meheu", handle)
}
