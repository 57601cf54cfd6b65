// Package enrich fills parsed entries with AniList metadata.
package enrich

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"awc_tracker/internal/domain"
)

// MediaSource looks up one anime by id.
type MediaSource interface {
	GetMediaByID(ctx context.Context, id domain.MediaID) (*domain.Media, error)
}

type Enricher struct {
	source MediaSource
	delay  time.Duration
	logger *slog.Logger

	// newPacer is replaced in tests.
	newPacer func(time.Duration) *Pacer
}

func New(source MediaSource, delay time.Duration, logger *slog.Logger) *Enricher {
	return &Enricher{
		source:   source,
		delay:    delay,
		logger:   logger.With("component", "enrich"),
		newPacer: NewPacer,
	}
}

// Enrich turns parsed entries into entries, looking up every filled id in
// order. Lookup failures clear the id and are reported as error strings;
// they never stop the run. A context error aborts the run and is returned.
func (e *Enricher) Enrich(ctx context.Context, parsed []domain.ParsedEntry) ([]domain.Entry, []string, error) {
	pacer := e.newPacer(e.delay)

	entries := make([]domain.Entry, len(parsed))
	var errs []string

	for i, p := range parsed {
		entry := domain.Entry{
			RemoteID:         p.RemoteID,
			RequirementTitle: p.RequirementTitle,
			DeclaredStatus:   p.DeclaredStatus,
			RemoteStatus:     domain.StatusIncomplete,
			StartDate:        p.StartDate,
			EndDate:          p.EndDate,
		}

		if entry.Filled() {
			var media *domain.Media
			err := pacer.Do(ctx, func(ctx context.Context) error {
				var err error
				media, err = e.source.GetMediaByID(ctx, entry.RemoteID)
				return err
			})

			switch {
			case err == nil:
				entry.ApplyMedia(media)
			case ctx.Err() != nil:
				return nil, errs, ctx.Err()
			case errors.Is(err, domain.ErrNotFound):
				errs = append(errs, fmt.Sprintf("No data for ID %d: %v", entry.RemoteID, err))
				entry.RemoteID = 0
			default:
				errs = append(errs, fmt.Sprintf("Network error fetching ID %d: %v", entry.RemoteID, err))
				entry.RemoteID = 0
			}

			if err != nil {
				e.logger.Warn("media lookup failed",
					"id", p.RemoteID,
					"requirement", p.RequirementTitle,
					"error", err,
				)
			}
		}

		entries[i] = entry
	}

	return entries, errs, nil
}
