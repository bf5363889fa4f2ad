package utils

import "testing"

func TestPaginateMiddlePage(t *testing.T) {
	items := make([]int, 25)
	for i := range items {
		items[i] = i + 1
	}

	page, info := Paginate(items, 3, 10)

	if len(page) != 5 {
		t.Fatalf("page length = %d, want 5", len(page))
	}
	if page[0] != 21 || page[4] != 25 {
		t.Fatalf("page contents = %v, want 21..25", page)
	}
	if info.Total != 25 || info.TotalPages != 3 {
		t.Fatalf("info = %+v, want total 25 totalPages 3", info)
	}
}

func TestPaginatePastEnd(t *testing.T) {
	items := []string{"a", "b", "c"}

	page, info := Paginate(items, 5, 10)

	if len(page) != 0 {
		t.Fatalf("page length = %d, want 0", len(page))
	}
	if info.Page != 5 || info.TotalPages != 1 {
		t.Fatalf("info = %+v, want page 5 totalPages 1", info)
	}
}

func TestPaginateEmpty(t *testing.T) {
	page, info := Paginate([]int{}, 1, 10)

	if len(page) != 0 || info.Total != 0 || info.TotalPages != 0 {
		t.Fatalf("got page %v info %+v, want empty", page, info)
	}
}

func TestPaginateExactBoundary(t *testing.T) {
	items := make([]int, 20)
	_, info := Paginate(items, 2, 10)

	if info.TotalPages != 2 {
		t.Fatalf("totalPages = %d, want 2", info.TotalPages)
	}
}
