package paginate

import (
	"strings"
	"testing"
)

func rows(weights ...int) []Weighted[int] {
	out := make([]Weighted[int], len(weights))
	for i, w := range weights {
		out[i] = Weighted[int]{Content: i, Weight: w}
	}
	return out
}

func flatten(pages [][]int) []int {
	var all []int
	for _, p := range pages {
		all = append(all, p...)
	}
	return all
}

func TestSplitEmpty(t *testing.T) {
	if got := Split[int](nil, 10, 3); got != nil {
		t.Errorf("expected no pages for no rows, got %v", got)
	}
}

func TestSplitSinglePage(t *testing.T) {
	pages := Split(rows(3, 3, 3), 15, 5)
	if len(pages) != 1 {
		t.Fatalf("expected 1 page, got %d", len(pages))
	}
	if len(pages[0]) != 3 {
		t.Errorf("expected 3 rows on page, got %d", len(pages[0]))
	}
}

func TestSplitReservedTailPushesLastRow(t *testing.T) {
	// Three rows of combined weight 20 against capacity 15: the first
	// page fills under the plain capacity rule, the last row must also
	// leave room for the 5-line summary block.
	pages := Split(rows(7, 7, 6), 15, 5)
	if len(pages) != 2 {
		t.Fatalf("expected 2 pages, got %d", len(pages))
	}
	if len(pages[0]) != 2 || len(pages[1]) != 1 {
		t.Errorf("expected split [2 1], got [%d %d]", len(pages[0]), len(pages[1]))
	}
}

func TestSplitTailOnlyAppliesToLastRow(t *testing.T) {
	// 8+6=14 <= 15 for non-last rows, but the last row (weight 1) would
	// need 14+1+5 > 15, so it moves to its own page.
	pages := Split(rows(8, 6, 1), 15, 5)
	if len(pages) != 2 {
		t.Fatalf("expected 2 pages, got %d", len(pages))
	}
}

func TestSplitOversizeRowStaysAlone(t *testing.T) {
	// A row heavier than the whole budget is still placed; rows are
	// never split or dropped.
	pages := Split(rows(3, 40, 3), 15, 5)
	if len(pages) != 3 {
		t.Fatalf("expected 3 pages, got %d", len(pages))
	}
	if len(pages[1]) != 1 || pages[1][0] != 1 {
		t.Errorf("expected oversize row alone on page 2, got %v", pages[1])
	}
}

func TestSplitPreservesOrderAndCompleteness(t *testing.T) {
	weights := []int{1, 5, 3, 9, 2, 2, 7, 1, 4, 6, 8, 1}
	pages := Split(rows(weights...), 10, 4)

	got := flatten(pages)
	if len(got) != len(weights) {
		t.Fatalf("row count changed: got %d, want %d", len(got), len(weights))
	}
	for i, v := range got {
		if v != i {
			t.Fatalf("order broken at position %d: got row %d", i, v)
		}
	}

	// Every page respects its budget: plain capacity for all but the
	// last, capacity minus the reserved tail for the last.
	for p, page := range pages {
		sum := 0
		for _, idx := range page {
			sum += weights[idx]
		}
		limit := 10
		if p == len(pages)-1 {
			limit = 10 - 4
		}
		if sum > limit && len(page) > 1 {
			t.Errorf("page %d weight %d exceeds limit %d", p+1, sum, limit)
		}
	}
}

func TestWeightOf(t *testing.T) {
	tests := []struct {
		desc         string
		charsPerLine int
		want         int
	}{
		{"", 48, 1},
		{"short", 48, 1},
		{strings.Repeat("x", 48), 48, 1},
		{strings.Repeat("x", 49), 48, 2},
		{strings.Repeat("x", 200), 48, 5},
		{"anything", 0, 1},
	}
	for _, tt := range tests {
		if got := WeightOf(tt.desc, tt.charsPerLine); got != tt.want {
			t.Errorf("WeightOf(len %d, %d) = %d, want %d", len(tt.desc), tt.charsPerLine, got, tt.want)
		}
	}
}
