package catalog

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"slices"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/meur/gamevault/internal/models"
)

func manyItems(n int) []models.Item {
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	items := make([]models.Item, n)
	for i := range items {
		items[i] = models.Item{
			ID:        fmt.Sprint(i),
			Title:     fmt.Sprintf("Game %02d", i),
			Likes:     i,
			CreatedAt: base.Add(time.Duration(i) * time.Hour),
		}
		if i%2 == 0 {
			items[i].Details = []string{"RPG"}
		}
	}
	return items
}

func TestViewStartsLoading(t *testing.T) {
	v := NewView(Options{})
	if v.State() != StateLoading || v.Message() != MsgLoading {
		t.Fatalf("state = %v, message = %q", v.State(), v.Message())
	}
}

func TestViewFailShowsMessage(t *testing.T) {
	v := NewView(Options{})
	v.Fail(errors.New("connection refused"))
	if v.Message() != MsgLoadFailed {
		t.Errorf("message = %q", v.Message())
	}
	if len(v.Visible()) != 0 || v.TotalPages() != 0 {
		t.Error("failed view should show nothing")
	}
}

func TestViewNavigation(t *testing.T) {
	v := NewView(Options{})
	var scrolled []int
	v.OnNavigate = func(p int) { scrolled = append(scrolled, p) }
	v.SetFilters(models.Filters{Order: models.OrderOldest})
	v.SetItems(manyItems(30))

	if v.TotalPages() != 3 || v.CurrentPage() != 1 {
		t.Fatalf("pages = %d, current = %d", v.TotalPages(), v.CurrentPage())
	}
	if v.GoTo(0) || v.GoTo(4) || v.Prev() {
		t.Error("out-of-range navigation should be a no-op")
	}
	if !v.GoTo(3) || v.CurrentPage() != 3 {
		t.Fatalf("GoTo(3) failed, current = %d", v.CurrentPage())
	}
	if got := v.Visible(); len(got) != 6 || got[0].ID != "24" {
		t.Errorf("page 3 = %v", ids(got))
	}
	if v.Next() || v.HasNext() {
		t.Error("cannot move past the last page")
	}
	if !v.Prev() || v.CurrentPage() != 2 {
		t.Errorf("Prev failed, current = %d", v.CurrentPage())
	}
	if len(scrolled) != 2 || scrolled[0] != 3 || scrolled[1] != 2 {
		t.Errorf("scroll hook calls = %v", scrolled)
	}
}

func TestViewResetsPageWhenResultSizeChanges(t *testing.T) {
	v := NewView(Options{})
	v.SetFilters(models.Filters{Order: models.OrderNewest})
	v.SetItems(manyItems(40))
	v.GoTo(3)

	// Same result size: the page survives.
	v.SetFilters(models.Filters{Order: models.OrderLikes})
	if v.CurrentPage() != 3 {
		t.Fatalf("page reset on reorder, current = %d", v.CurrentPage())
	}

	v.SetFilters(models.Filters{Order: models.OrderLikes, Tags: []string{"rpg"}})
	if v.CurrentPage() != 1 {
		t.Errorf("page not reset after filtering, current = %d", v.CurrentPage())
	}
	if len(v.Result()) != 20 {
		t.Errorf("result = %d items, want 20", len(v.Result()))
	}

	v.GoTo(2)
	v.SetQuery("game 0")
	if v.CurrentPage() != 1 {
		t.Errorf("page not reset after query, current = %d", v.CurrentPage())
	}
}

func TestViewEmptyResult(t *testing.T) {
	v := NewView(Options{})
	v.SetItems(manyItems(5))
	v.SetQuery("nothing matches")
	if !v.Empty() || v.Message() != MsgNoResults {
		t.Errorf("empty = %v, message = %q", v.Empty(), v.Message())
	}
	if v.Labels() != nil {
		t.Errorf("labels = %v", v.Labels())
	}
}

func TestViewRandomReshufflesOnEveryRecompute(t *testing.T) {
	v := NewView(Options{Rand: rand.New(rand.NewPCG(3, 4))})
	v.SetItems(manyItems(30))

	seen := map[string]bool{strings.Join(ids(v.Result()), ","): true}
	for range 5 {
		// Same query each time: nothing about the input really changes.
		v.SetQuery("game")
		got := ids(v.Result())
		if len(got) != 30 || v.CurrentPage() != 1 {
			t.Fatalf("result = %d items, page %d", len(got), v.CurrentPage())
		}
		nums := make([]int, len(got))
		for i, id := range got {
			nums[i], _ = strconv.Atoi(id)
		}
		slices.Sort(nums)
		for i, n := range nums {
			if n != i {
				t.Fatalf("result is not a permutation of the input: %v", got)
			}
		}
		seen[strings.Join(got, ",")] = true
	}
	if len(seen) < 2 {
		t.Error("random order was not redrawn when the view recomputed")
	}
}
