package legend

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"sync"

	"awc_tracker/internal/domain"
)

var (
	ErrDuplicateSymbolAcrossCategories = errors.New("symbol used in more than one status category")
	ErrEmptyLegend                     = errors.New("legend has no symbols")
)

// Default returns the legend used until the user saves their own.
func Default() domain.Legend {
	return domain.Legend{
		Complete:   []string{"✔️", "X"},
		Ongoing:    []string{"⭐"},
		Incomplete: []string{"❌", "O"},
	}
}

// Matcher recognises a requirement status line: an optional "NN)" marker
// followed by one legend symbol in square brackets.
type Matcher struct {
	re *regexp.Regexp
}

// Match returns the bracketed symbol when line is a status line.
func (m *Matcher) Match(line string) (string, bool) {
	sm := m.re.FindStringSubmatch(line)
	if sm == nil {
		return "", false
	}
	return sm[1], true
}

// BuildMatcher compiles the legend into a Matcher. It returns false when
// the legend has no symbols at all.
func BuildMatcher(l domain.Legend) (*Matcher, bool) {
	symbols := l.Symbols()
	quoted := make([]string, 0, len(symbols))
	for _, s := range symbols {
		if s == "" {
			continue
		}
		quoted = append(quoted, regexp.QuoteMeta(s))
	}
	if len(quoted) == 0 {
		return nil, false
	}
	re := regexp.MustCompile(`^\s*(?:\d+\)\s*)?\[(` + strings.Join(quoted, "|") + `)\]`)
	return &Matcher{re: re}, true
}

// Classify maps a symbol to its status. Symbols outside the legend are
// incomplete.
func Classify(symbol string, l domain.Legend) domain.Status {
	if contains(l.Complete, symbol) {
		return domain.StatusComplete
	}
	if contains(l.Ongoing, symbol) {
		return domain.StatusOngoing
	}
	return domain.StatusIncomplete
}

// Canonical returns the symbol written for status, falling back to the
// default legend when the category is empty.
func Canonical(l domain.Legend, status domain.Status) string {
	pick := func(own, def []string) string {
		if len(own) > 0 && own[0] != "" {
			return own[0]
		}
		return def[0]
	}
	d := Default()
	switch status {
	case domain.StatusComplete:
		return pick(l.Complete, d.Complete)
	case domain.StatusOngoing:
		return pick(l.Ongoing, d.Ongoing)
	default:
		return pick(l.Incomplete, d.Incomplete)
	}
}

// ValidateForSave cleans a candidate legend and checks it can be saved.
// Empty categories in an otherwise valid legend are filled from Default,
// skipping default symbols the candidate already uses elsewhere.
func ValidateForSave(candidate domain.Legend) (domain.Legend, error) {
	cleaned := domain.Legend{
		Complete:   clean(candidate.Complete),
		Ongoing:    clean(candidate.Ongoing),
		Incomplete: clean(candidate.Incomplete),
	}

	if dups := crossCategoryDuplicates(cleaned); len(dups) > 0 {
		return domain.Legend{}, fmt.Errorf("%w: %q", ErrDuplicateSymbolAcrossCategories, dups)
	}

	if len(cleaned.Complete) == 0 && len(cleaned.Ongoing) == 0 && len(cleaned.Incomplete) == 0 {
		return domain.Legend{}, ErrEmptyLegend
	}

	used := cleaned.Symbols()
	d := Default()
	for _, f := range []struct {
		cat *[]string
		def []string
	}{
		{&cleaned.Complete, d.Complete},
		{&cleaned.Ongoing, d.Ongoing},
		{&cleaned.Incomplete, d.Incomplete},
	} {
		if len(*f.cat) > 0 {
			continue
		}
		var taken []string
		for _, s := range f.def {
			if contains(used, s) {
				taken = append(taken, s)
				continue
			}
			*f.cat = append(*f.cat, s)
		}
		if len(*f.cat) == 0 {
			return domain.Legend{}, fmt.Errorf("%w: %q", ErrDuplicateSymbolAcrossCategories, taken)
		}
	}

	if dups := crossCategoryDuplicates(cleaned); len(dups) > 0 {
		return domain.Legend{}, fmt.Errorf("%w: %q", ErrDuplicateSymbolAcrossCategories, dups)
	}
	return cleaned, nil
}

// Normalize fills missing categories of a loaded legend from Default.
func Normalize(l domain.Legend) domain.Legend {
	d := Default()
	if l.Complete == nil {
		l.Complete = d.Complete
	}
	if l.Ongoing == nil {
		l.Ongoing = d.Ongoing
	}
	if l.Incomplete == nil {
		l.Incomplete = d.Incomplete
	}
	return l
}

func clean(symbols []string) []string {
	out := make([]string, 0, len(symbols))
	for _, s := range symbols {
		s = strings.TrimSpace(s)
		if s != "" {
			out = append(out, s)
		}
	}
	return out
}

func crossCategoryDuplicates(l domain.Legend) []string {
	owners := make(map[string]int)
	var order []string
	for i, cat := range [][]string{l.Complete, l.Ongoing, l.Incomplete} {
		seen := make(map[string]bool)
		for _, s := range cat {
			if seen[s] {
				continue
			}
			seen[s] = true
			if _, ok := owners[s]; !ok {
				order = append(order, s)
			}
			owners[s] |= 1 << i
		}
	}

	var dups []string
	for _, s := range order {
		if n := owners[s]; n&(n-1) != 0 {
			dups = append(dups, s)
		}
	}
	return dups
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

// Cache memoises compiled matchers per legend value.
type Cache struct {
	mu       sync.Mutex
	matchers map[string]*Matcher
}

func NewCache() *Cache {
	return &Cache{matchers: make(map[string]*Matcher)}
}

func (c *Cache) Matcher(l domain.Legend) (*Matcher, bool) {
	key := cacheKey(l)

	c.mu.Lock()
	defer c.mu.Unlock()

	if m, ok := c.matchers[key]; ok {
		return m, m != nil
	}
	m, ok := BuildMatcher(l)
	c.matchers[key] = m
	return m, ok
}

func cacheKey(l domain.Legend) string {
	var sb strings.Builder
	for _, cat := range [][]string{l.Complete, l.Ongoing, l.Incomplete} {
		sb.WriteString(strings.Join(cat, "\x00"))
		sb.WriteString("\x01")
	}
	return sb.String()
}
