package catalog

import "github.com/meur/gamevault/internal/models"

const (
	// PageSize is the number of items shown per page
	PageSize = 12
	// MaxLabels is the largest page count shown without ellipses
	MaxLabels = 7
)

// TotalPages returns ceil(n / PageSize)
func TotalPages(n int) int {
	if n <= 0 {
		return 0
	}
	return (n + PageSize - 1) / PageSize
}

// PageSlice returns the items of the 1-indexed page. Out-of-range pages
// yield an empty slice.
func PageSlice(items []models.Item, page int) []models.Item {
	start := (page - 1) * PageSize
	if page < 1 || start >= len(items) {
		return nil
	}
	end := min(start+PageSize, len(items))
	return items[start:end]
}

// Label is one entry of the pager: a page number or an ellipsis
type Label struct {
	Page     int
	Ellipsis bool
}

// Labels builds the pager for current out of total pages.
//
// Up to MaxLabels pages are listed in full. Beyond that the first and last
// pages are always shown, with a window of up to two pages on either side
// of current and an ellipsis for each gap. current is clamped into
// [1, total], so it always falls inside the window or on an end.
func Labels(current, total int) []Label {
	if total <= 0 {
		return nil
	}
	current = max(1, min(current, total))

	var out []Label
	if total <= MaxLabels {
		for p := 1; p <= total; p++ {
			out = append(out, Label{Page: p})
		}
		return out
	}

	half := MaxLabels / 2
	start := max(2, current-half+1)
	end := min(total-1, current+half-1)

	out = append(out, Label{Page: 1})
	if start > 2 {
		out = append(out, Label{Ellipsis: true})
	}
	for p := start; p <= end; p++ {
		out = append(out, Label{Page: p})
	}
	if end < total-1 {
		out = append(out, Label{Ellipsis: true})
	}
	return append(out, Label{Page: total})
}
