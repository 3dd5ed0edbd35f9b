// Package catalog turns the fetched item list into the page a user sees:
// text, platform and tag filters, one of the sort orders, then pagination.
package catalog

import (
	"math/rand/v2"
	"slices"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/meur/gamevault/internal/models"
)

// DefaultLocale is used for alphabetical ordering when none is configured
var DefaultLocale = language.Spanish

// Options tunes the parts of the pipeline that depend on the environment
type Options struct {
	// Locale drives alphabetical collation
	Locale language.Tag
	// Rand feeds the random order. Nil uses the auto-seeded global source.
	Rand *rand.Rand
}

// Apply runs the whole pipeline over items. The input slice is never
// modified; the result is a fresh slice.
func Apply(items []models.Item, query string, f models.Filters, opts Options) []models.Item {
	lower := cases.Lower(language.Und)

	out := FilterByTitle(items, query, lower)
	out = FilterByPlatforms(out, f.Platforms)
	out = FilterByTags(out, f.Tags, lower)
	Sort(out, f.Order, opts)
	return out
}

// FilterByTitle keeps items whose title contains query, ignoring case
func FilterByTitle(items []models.Item, query string, lower cases.Caser) []models.Item {
	q := lower.String(query)
	return keep(items, func(it *models.Item) bool {
		return strings.Contains(lower.String(it.Title), q)
	})
}

// FilterByPlatforms keeps items available on at least one of platforms.
// An empty set keeps everything.
func FilterByPlatforms(items []models.Item, platforms []models.Platform) []models.Item {
	if len(platforms) == 0 {
		return keep(items, nil)
	}
	return keep(items, func(it *models.Item) bool {
		return slices.ContainsFunc(platforms, it.Available)
	})
}

// FilterByTags keeps items whose detail text contains every tag.
// An empty set keeps everything.
func FilterByTags(items []models.Item, tags []string, lower cases.Caser) []models.Item {
	if len(tags) == 0 {
		return keep(items, nil)
	}
	want := make([]string, len(tags))
	for i, t := range tags {
		want[i] = lower.String(t)
	}
	return keep(items, func(it *models.Item) bool {
		text := lower.String(it.DetailText())
		for _, t := range want {
			if !strings.Contains(text, t) {
				return false
			}
		}
		return true
	})
}

func keep(items []models.Item, pred func(*models.Item) bool) []models.Item {
	out := make([]models.Item, 0, len(items))
	for i := range items {
		if pred == nil || pred(&items[i]) {
			out = append(out, items[i])
		}
	}
	return out
}

// Sort orders items in place. Keyed orders are stable; random draws a
// fresh permutation on every call.
func Sort(items []models.Item, order models.Order, opts Options) {
	switch models.ParseOrder(string(order)) {
	case models.OrderNewest:
		slices.SortStableFunc(items, func(a, b models.Item) int {
			return b.CreatedAt.Compare(a.CreatedAt)
		})
	case models.OrderOldest:
		slices.SortStableFunc(items, func(a, b models.Item) int {
			return a.CreatedAt.Compare(b.CreatedAt)
		})
	case models.OrderAlphabetical:
		locale := opts.Locale
		if locale == language.Und {
			locale = DefaultLocale
		}
		c := collate.New(locale)
		slices.SortStableFunc(items, func(a, b models.Item) int {
			return c.CompareString(a.Title, b.Title)
		})
	case models.OrderLikes:
		slices.SortStableFunc(items, func(a, b models.Item) int {
			return b.Likes - a.Likes
		})
	default:
		shuffle(items, opts.Rand)
	}
}

func shuffle(items []models.Item, r *rand.Rand) {
	swap := func(i, j int) { items[i], items[j] = items[j], items[i] }
	if r == nil {
		rand.Shuffle(len(items), swap)
		return
	}
	r.Shuffle(len(items), swap)
}
