package models

import "strings"

// Order selects how the catalog is sorted
type Order string

const (
	OrderRandom       Order = "random"
	OrderNewest       Order = "newest"
	OrderOldest       Order = "oldest"
	OrderAlphabetical Order = "alphabetical"
	OrderLikes        Order = "likes"
)

// Orders lists the selectable orders, random first
func Orders() []Order {
	return []Order{OrderRandom, OrderNewest, OrderOldest, OrderAlphabetical, OrderLikes}
}

// ParseOrder never fails: anything unrecognized is random.
func ParseOrder(s string) Order {
	o := Order(strings.ToLower(strings.TrimSpace(s)))
	switch o {
	case OrderNewest, OrderOldest, OrderAlphabetical, OrderLikes:
		return o
	default:
		return OrderRandom
	}
}

// Label is the text shown in the sidebar for an order
func (o Order) Label() string {
	switch ParseOrder(string(o)) {
	case OrderNewest:
		return "Newest"
	case OrderOldest:
		return "Oldest"
	case OrderAlphabetical:
		return "Alphabetical"
	case OrderLikes:
		return "Most liked"
	default:
		return "Random"
	}
}

// Filters is the sidebar configuration applied to the catalog
type Filters struct {
	Order     Order      `json:"order"`
	Tags      []string   `json:"tags"`
	Platforms []Platform `json:"platforms"`
}

// ToggleTag adds the tag when absent and removes it otherwise
func (f Filters) ToggleTag(tag string) Filters {
	tags, removed := without(f.Tags, func(t string) bool { return strings.EqualFold(t, tag) })
	if !removed {
		tags = append(tags, tag)
	}
	f.Tags = tags
	return f
}

// TogglePlatform adds the platform when absent and removes it otherwise
func (f Filters) TogglePlatform(p Platform) Filters {
	ps, removed := without(f.Platforms, func(q Platform) bool { return q == p })
	if !removed {
		ps = append(ps, p)
	}
	f.Platforms = ps
	return f
}

func without[T any](in []T, match func(T) bool) ([]T, bool) {
	out := make([]T, 0, len(in))
	removed := false
	for _, v := range in {
		if match(v) {
			removed = true
			continue
		}
		out = append(out, v)
	}
	return out, removed
}
