// Package postgen writes a challenge back out in forum-post form.
package postgen

import (
	"fmt"
	"strings"

	"awc_tracker/internal/domain"
	"awc_tracker/internal/legend"
)

const (
	datePlaceholder   = "YYYY-MM-DD"
	unfilledReference = "[Anime_Title](https://anilist.co/anime/00000/)"
)

// Generate renders c as post text using the canonical symbol of each
// legend category.
func Generate(c domain.Challenge, l domain.Legend) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "# __%s__\n\n", c.Title)
	fmt.Fprintf(&sb, "Challenge Start Date: %s\nChallenge Finish Date: %s\n", datePlaceholder, datePlaceholder)
	fmt.Fprintf(&sb, "Legend: [%s] = Completed [%s] = Not Completed [%s] = Ongoing\n\n<hr>\n",
		legend.Canonical(l, domain.StatusComplete),
		legend.Canonical(l, domain.StatusIncomplete),
		legend.Canonical(l, domain.StatusOngoing),
	)

	for i, e := range c.Entries {
		if i > 0 {
			sb.WriteString("\n\n")
		}
		title := e.RequirementTitle
		if title == "" {
			title = domain.UnnamedRequirement
		}
		fmt.Fprintf(&sb, "%02d) [%s] __%s__\n", i+1, legend.Canonical(l, SymbolStatus(e)), title)
		sb.WriteString(reference(e))
		fmt.Fprintf(&sb, "\nStart: %s Finish: %s", orPlaceholder(e.StartDate), orPlaceholder(e.EndDate))
	}

	return sb.String()
}

// SymbolStatus picks the status written for an entry: a complete or
// ongoing remote status wins, otherwise the declared status.
func SymbolStatus(e domain.Entry) domain.Status {
	if e.Filled() && (e.RemoteStatus == domain.StatusComplete || e.RemoteStatus == domain.StatusOngoing) {
		return e.RemoteStatus
	}
	if e.DeclaredStatus.Valid() {
		return e.DeclaredStatus
	}
	return domain.StatusIncomplete
}

func reference(e domain.Entry) string {
	if !e.Filled() {
		return unfilledReference
	}
	return fmt.Sprintf("https://anilist.co/anime/%d/", e.RemoteID)
}

func orPlaceholder(date string) string {
	if date == "" {
		return datePlaceholder
	}
	return date
}
