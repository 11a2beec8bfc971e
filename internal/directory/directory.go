// Package directory builds the line list page: search filtering and grouping
// of lines under the first letter of their company or service code.
package directory

import (
	"sort"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/LHMTR/haruto-information/internal/models"
	"github.com/LHMTR/haruto-information/internal/multilingual"
)

// GroupBy selects the key lines are grouped under.
type GroupBy int

const (
	ByCompany GroupBy = iota
	ByService
)

// unknownLetter heads the group of lines without a grouping key.
const unknownLetter = "?"

func (g GroupBy) String() string {
	if g == ByService {
		return "service"
	}
	return "company"
}

// ParseGroupBy maps the group query parameter onto a GroupBy. Anything other
// than "service" groups by company.
func ParseGroupBy(s string) GroupBy {
	if strings.EqualFold(strings.TrimSpace(s), "service") {
		return ByService
	}
	return ByCompany
}

func (g GroupBy) key(l models.LineSummary) string {
	if g == ByService {
		return l.ServiceType
	}
	return l.CompanyCode
}

// Group is one lettered section of the list.
type Group struct {
	Letter string                `json:"letter"`
	Lines  []models.ResolvedLine `json:"lines"`
}

// View is the resolved list page.
type View struct {
	Language string  `json:"language"`
	GroupBy  string  `json:"groupBy"`
	Query    string  `json:"query"`
	Total    int     `json:"total"`
	Matched  int     `json:"matched"`
	Groups   []Group `json:"groups"`
}

// Empty reports whether no line matched.
func (v View) Empty() bool {
	return v.Matched == 0
}

// Filter keeps the lines whose name or destination, resolved to a single text
// in lang, contains term. Matching ignores case. An empty term keeps all lines.
func Filter(lines []models.LineSummary, term string, lang multilingual.Language) []models.LineSummary {
	if term == "" {
		return lines
	}

	lower := cases.Lower(language.Und)
	needle := lower.String(term)

	matched := make([]models.LineSummary, 0, len(lines))
	for _, l := range lines {
		name := lower.String(multilingual.ResolveSingle(l.LineName, lang))
		dest := lower.String(multilingual.ResolveSingle(l.Destination, lang))
		if strings.Contains(name, needle) || strings.Contains(dest, needle) {
			matched = append(matched, l)
		}
	}
	return matched
}

// Letter returns the upper-cased first character of key, or "?" when key is
// empty.
func Letter(key string) string {
	r, size := utf8.DecodeRuneInString(key)
	if size == 0 || r == utf8.RuneError {
		return unknownLetter
	}
	return cases.Upper(language.Und).String(string(r))
}

// GroupLines resolves lines for lang and groups them by the first letter of
// their company code or service type. Groups are ordered by the collation
// rules of lang; lines keep their input order inside a group.
func GroupLines(lines []models.LineSummary, by GroupBy, lang multilingual.Language) []Group {
	index := make(map[string]int)
	groups := make([]Group, 0)

	for _, l := range lines {
		letter := Letter(by.key(l))
		i, ok := index[letter]
		if !ok {
			i = len(groups)
			index[letter] = i
			groups = append(groups, Group{Letter: letter})
		}
		groups[i].Lines = append(groups[i].Lines, models.ResolveLine(l, lang))
	}

	collator := collate.New(lang.Tag())
	sort.SliceStable(groups, func(i, j int) bool {
		return collator.CompareString(groups[i].Letter, groups[j].Letter) < 0
	})
	return groups
}

// Options controls Build.
type Options struct {
	Query    string
	GroupBy  GroupBy
	Language multilingual.Language
}

// Build filters and groups lines into a list page view.
func Build(lines []models.LineSummary, opts Options) View {
	matched := Filter(lines, opts.Query, opts.Language)
	return View{
		Language: opts.Language.Code(),
		GroupBy:  opts.GroupBy.String(),
		Query:    opts.Query,
		Total:    len(lines),
		Matched:  len(matched),
		Groups:   GroupLines(matched, opts.GroupBy, opts.Language),
	}
}
