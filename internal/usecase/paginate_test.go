package usecase

import "testing"

func TestPaginateReturnsRequestedSlice(t *testing.T) {
	items := []int{1, 2, 3, 4, 5, 6, 7}

	page, pageNum, total := Paginate(items, 2, 5)
	if total != 2 || pageNum != 2 {
		t.Fatalf("expected page 2 of 2, got page %d of %d", pageNum, total)
	}
	if len(page) != 2 || page[0] != 6 || page[1] != 7 {
		t.Fatalf("unexpected page contents %v", page)
	}
}

func TestPaginateClampsOutOfRangePages(t *testing.T) {
	items := []int{1, 2, 3}

	page, pageNum, _ := Paginate(items, 99, 2)
	if pageNum != 2 {
		t.Fatalf("expected clamp to last page, got %d", pageNum)
	}
	if len(page) != 1 || page[0] != 3 {
		t.Fatalf("unexpected page contents %v", page)
	}

	page, pageNum, _ = Paginate(items, -5, 2)
	if pageNum != 1 || page[0] != 1 {
		t.Fatalf("expected clamp to first page, got page %d %v", pageNum, page)
	}
}

func TestPaginateEmptyInput(t *testing.T) {
	page, pageNum, total := Paginate([]int(nil), 3, 5)
	if len(page) != 0 || pageNum != 1 || total != 0 {
		t.Fatalf("unexpected result for empty input: %v page %d total %d", page, pageNum, total)
	}
}

func TestPaginateConcatenationCoversAllItems(t *testing.T) {
	items := make([]int, 23)
	for i := range items {
		items[i] = i
	}

	var joined []int
	total := TotalPages(len(items), 5)
	for p := 1; p <= total; p++ {
		page, _, _ := Paginate(items, p, 5)
		joined = append(joined, page...)
	}

	if len(joined) != len(items) {
		t.Fatalf("pages concatenate to %d items, want %d", len(joined), len(items))
	}
	for i := range items {
		if joined[i] != items[i] {
			t.Fatalf("item %d lost or reordered by pagination", i)
		}
	}
}

func TestNextPrevPageDoNotWrap(t *testing.T) {
	if got := NextPage(2, 2); got != 2 {
		t.Fatalf("expected next page pinned at last, got %d", got)
	}
	if got := PrevPage(1, 2); got != 1 {
		t.Fatalf("expected prev page pinned at first, got %d", got)
	}
	if got := NextPage(1, 3); got != 2 {
		t.Fatalf("expected page advance, got %d", got)
	}
}
