// Package parser turns a challenge post into requirement entries.
package parser

import (
	"fmt"
	"regexp"
	"strings"
	"time"
	"unicode/utf8"

	"awc_tracker/internal/domain"
	"awc_tracker/internal/legend"
)

const (
	WarnNoLegend       = "no legend symbols defined"
	WarnNoRequirements = "no requirements found in the post based on the legend"

	maxFallbackTitle = 50
)

var (
	markdownTitleRe = regexp.MustCompile(`^#\s*_*([^#_].*?)_*$`)
	htmlHeadingRe   = regexp.MustCompile(`(?i)<h[1-6][^>]*>(.*?)</h[1-6]>`)
	requirementRe   = regexp.MustCompile(`^\s*\d+\)\s*\[`)
	entryTitleRe    = regexp.MustCompile(`__(.+?)__`)
	animeIDRe       = regexp.MustCompile(`anime/(\d+)`)
	startRe         = regexp.MustCompile(`Start:\s*([\d-]+)`)
	finishRe        = regexp.MustCompile(`Finish:\s*([\d-]+)`)
)

// Result is the outcome of parsing one post.
type Result struct {
	Title    string
	Entries  []domain.ParsedEntry
	Warnings []string
}

// Parser parses posts, reusing compiled legend matchers between calls.
type Parser struct {
	matchers *legend.Cache
}

func New() *Parser {
	return &Parser{matchers: legend.NewCache()}
}

// Parse extracts the title and the requirement entries of raw. now is used
// to synthesise a title when the post has none.
func (p *Parser) Parse(raw string, l domain.Legend, now time.Time) Result {
	m, ok := p.matchers.Matcher(l)
	return parse(raw, l, m, ok, now)
}

// Parse is Parser.Parse without matcher caching.
func Parse(raw string, l domain.Legend, now time.Time) Result {
	m, ok := legend.BuildMatcher(l)
	return parse(raw, l, m, ok, now)
}

func parse(raw string, l domain.Legend, m *legend.Matcher, ok bool, now time.Time) Result {
	lines := splitLines(raw)

	res := Result{Title: detectTitle(lines, now)}
	if !ok {
		res.Warnings = append(res.Warnings, WarnNoLegend)
		return res
	}

	// The two context lines after a status line are read but not skipped;
	// scanning resumes at the next line.
	for i, line := range lines {
		symbol, matched := m.Match(line)
		if !matched {
			continue
		}

		entry := domain.ParsedEntry{
			RequirementTitle: domain.UnnamedRequirement,
			DeclaredStatus:   legend.Classify(symbol, l),
		}
		if sm := entryTitleRe.FindStringSubmatch(line); sm != nil {
			entry.RequirementTitle = sm[1]
		}
		if sm := animeIDRe.FindStringSubmatch(lineAt(lines, i+1)); sm != nil {
			entry.RemoteID = domain.ParseMediaID(sm[1])
		}
		dates := lineAt(lines, i+2)
		if sm := startRe.FindStringSubmatch(dates); sm != nil {
			entry.StartDate = sm[1]
		}
		if sm := finishRe.FindStringSubmatch(dates); sm != nil {
			entry.EndDate = sm[1]
		}

		res.Entries = append(res.Entries, entry)
	}

	if len(res.Entries) == 0 {
		res.Warnings = append(res.Warnings, WarnNoRequirements)
	}
	return res
}

func splitLines(raw string) []string {
	lines := strings.Split(raw, "\n")
	for i := range lines {
		lines[i] = strings.TrimSpace(lines[i])
	}
	return lines
}

func lineAt(lines []string, i int) string {
	if i < len(lines) {
		return lines[i]
	}
	return ""
}

func isTerminator(line string) bool {
	return strings.Contains(strings.ToLower(line), "<hr>") || requirementRe.MatchString(line)
}

func detectTitle(lines []string, now time.Time) string {
	for _, line := range lines {
		if sm := markdownTitleRe.FindStringSubmatch(line); sm != nil {
			if t := strings.TrimSpace(sm[1]); t != "" {
				return t
			}
		}
		if sm := htmlHeadingRe.FindStringSubmatch(line); sm != nil {
			if t := strings.TrimSpace(plainText(sm[1])); t != "" {
				return t
			}
		}
		if isTerminator(line) {
			break
		}
	}

	for _, line := range lines {
		if isTerminator(line) {
			break
		}
		if !meaningful(line) {
			continue
		}
		t := strings.TrimSpace(plainText(line))
		if utf8.RuneCountInString(t) > maxFallbackTitle {
			t = string([]rune(t)[:maxFallbackTitle]) + "..."
		}
		if t != "" {
			return t
		}
		// Only the first meaningful line is considered.
		break
	}

	return fmt.Sprintf("Challenge %d", now.UnixMilli())
}

func meaningful(line string) bool {
	if utf8.RuneCountInString(line) <= 5 || strings.TrimSpace(line) == "" {
		return false
	}
	lower := strings.ToLower(line)
	for _, s := range []string{"<img", "<center>", "</center>"} {
		if strings.Contains(lower, s) {
			return false
		}
	}
	for _, p := range []string{"legend:", "challenge start date:", "challenge finish date:"} {
		if strings.HasPrefix(lower, p) {
			return false
		}
	}
	return true
}
