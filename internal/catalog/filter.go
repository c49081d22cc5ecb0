package catalog

import (
	"math"
	"sort"
	"strings"

	"github.com/eventpulse/eventpulse/internal/domain"
)

// previewLimit bounds how many events a category group carries in the
// browse-by-category view.
const previewLimit = 3

// Unbounded is the PriceMax value meaning "no upper price limit".
const Unbounded = math.MaxFloat64

type FilterConfig struct {
	SearchTerm string
	Category   string
	PriceMin   float64
	PriceMax   float64
}

// DefaultFilter matches every event.
func DefaultFilter() FilterConfig {
	return FilterConfig{PriceMax: Unbounded}
}

// Filter returns the ordered subsequence of events matching all three
// predicates. It is a pure function: same inputs, same output, input order
// preserved.
func Filter(events []domain.Event, cfg FilterConfig) []domain.Event {
	res := make([]domain.Event, 0, len(events))
	for _, e := range events {
		if matchesSearch(e, cfg.SearchTerm) &&
			matchesCategory(e, cfg.Category) &&
			e.Price >= cfg.PriceMin && e.Price <= cfg.PriceMax {
			res = append(res, e)
		}
	}
	return res
}

func matchesSearch(e domain.Event, term string) bool {
	if term == "" {
		return true
	}
	term = strings.ToLower(term)
	if strings.Contains(strings.ToLower(e.Title), term) ||
		strings.Contains(strings.ToLower(e.Description), term) {
		return true
	}
	for _, tag := range e.Tags {
		if strings.Contains(strings.ToLower(tag), term) {
			return true
		}
	}
	return false
}

func matchesCategory(e domain.Event, category string) bool {
	return category == "" || e.Category == category
}

// Categories returns the distinct categories present in the catalog,
// lexicographically sorted.
func Categories(events []domain.Event) []string {
	seen := make(map[string]struct{}, len(events))
	res := make([]string, 0, len(events))
	for _, e := range events {
		if _, ok := seen[e.Category]; ok {
			continue
		}
		seen[e.Category] = struct{}{}
		res = append(res, e.Category)
	}
	sort.Strings(res)
	return res
}

type CategoryGroup struct {
	Category string         `json:"category"`
	Events   []domain.Event `json:"events"`
}

// GroupByCategory partitions the full catalog by category, each group
// truncated to a bounded preview, groups ordered the same way Categories
// sorts them.
func GroupByCategory(events []domain.Event) []CategoryGroup {
	categories := Categories(events)

	groups := make([]CategoryGroup, 0, len(categories))
	for _, c := range categories {
		group := CategoryGroup{Category: c}
		for _, e := range events {
			if e.Category != c {
				continue
			}
			group.Events = append(group.Events, e)
			if len(group.Events) == previewLimit {
				break
			}
		}
		groups = append(groups, group)
	}
	return groups
}
