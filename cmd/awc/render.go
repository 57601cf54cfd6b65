package main

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"awc_tracker/internal/aggregate"
	"awc_tracker/internal/domain"
)

var bold = color.New(color.Bold)

func statusText(s domain.Status) string {
	switch s {
	case domain.StatusComplete:
		return color.GreenString(string(s))
	case domain.StatusOngoing:
		return color.YellowString(string(s))
	default:
		return color.RedString(string(domain.StatusIncomplete))
	}
}

func newTable(headers ...any) *uitable.Table {
	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.MaxColWidth = 48
	for i, h := range headers {
		headers[i] = bold.Sprint(h)
	}
	tbl.AddRow(headers...)
	return tbl
}

func challengeTable(challenges []domain.Challenge) *uitable.Table {
	tbl := newTable("ID", "Title", "Created", "Progress", "Entries")
	for _, c := range challenges {
		filled, completed := c.Counts()
		progress := "-"
		if filled > 0 {
			progress = fmt.Sprintf("%d/%d", completed, filled)
		}
		tbl.AddRow(
			strconv.FormatInt(c.ID, 10),
			c.Title,
			time.UnixMilli(c.ID).Format("2006-01-02"),
			progress,
			len(c.Entries),
		)
	}
	return tbl
}

func entryTable(entries []domain.Entry, pref domain.TitlePreference) *uitable.Table {
	tbl := newTable("#", "Requirement", "Anime", "Post", "AniList", "Start", "Finish")
	for i, e := range entries {
		anime := "(unfilled)"
		if e.Filled() {
			anime = domain.DisplayTitle(e, pref)
		}
		remote := "-"
		if e.Filled() {
			remote = statusText(e.RemoteStatus)
		}
		tbl.AddRow(
			fmt.Sprintf("%02d", i+1),
			e.RequirementTitle,
			anime,
			statusText(e.DeclaredStatus),
			remote,
			orDash(e.StartDate),
			orDash(e.EndDate),
		)
	}
	return tbl
}

func globalTable(records []domain.GlobalRecord, pref domain.TitlePreference) *uitable.Table {
	tbl := newTable("ID", "Anime", "Count", "AniList", "Challenges", "Genres")
	for _, r := range records {
		tbl.AddRow(
			r.RemoteID.String(),
			domain.DisplayTitle(r.Entry, pref),
			r.Count,
			statusText(r.RemoteStatus),
			statusText(aggregate.EffectiveStatus(r)),
			strings.Join(r.Genres, ", "),
		)
	}
	return tbl
}

func legendTable(l domain.Legend) *uitable.Table {
	tbl := newTable("Status", "Symbols")
	tbl.AddRow(statusText(domain.StatusComplete), strings.Join(l.Complete, " "))
	tbl.AddRow(statusText(domain.StatusOngoing), strings.Join(l.Ongoing, " "))
	tbl.AddRow(statusText(domain.StatusIncomplete), strings.Join(l.Incomplete, " "))
	return tbl
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
