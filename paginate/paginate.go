// Package paginate splits weighted rows into pages bounded by a content
// budget, reserving room on the final page for a trailing summary block.
package paginate

// Weighted pairs a row's content with its weight, the share of a page's
// capacity the row consumes when rendered.
type Weighted[T any] struct {
	Content T
	Weight  int
}

// Split greedily packs rows into pages. A row joins the current page while
// the accumulated weight stays within capacity; the last row of the whole
// sequence must additionally leave reservedTail free, since the final page
// carries the totals/signature block. A single row that alone exceeds the
// budget still gets its own page; rows are never split.
func Split[T any](rows []Weighted[T], capacity, reservedTail int) [][]T {
	if len(rows) == 0 {
		return nil
	}

	var pages [][]T
	var page []T
	used := 0

	for i, row := range rows {
		limit := capacity
		if i == len(rows)-1 {
			limit = capacity - reservedTail
		}
		if len(page) > 0 && used+row.Weight > limit {
			pages = append(pages, page)
			page = nil
			used = 0
		}
		page = append(page, row.Content)
		used += row.Weight
	}
	return append(pages, page)
}

// WeightOf computes a row's weight from its description length: the number
// of display lines the text occupies when wrapped at charsPerLine, with a
// minimum of one. Long descriptions consume proportionally more of a page.
func WeightOf(description string, charsPerLine int) int {
	if charsPerLine <= 0 {
		return 1
	}
	lines := (len(description) + charsPerLine - 1) / charsPerLine
	if lines < 1 {
		return 1
	}
	return lines
}
