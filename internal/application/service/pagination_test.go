package service

import "testing"

func TestPaginate(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name                 string
		total                int64
		index, size          int
		first, last          bool
		hasNext, hasPrevious bool
		totalPages           int
		previousIdx, nextIdx int // -1 when absent
	}{
		{name: "empty", total: 0, index: 0, size: 10, first: true, last: true, totalPages: 0, previousIdx: -1, nextIdx: -1},
		{name: "first of many", total: 99, index: 0, size: 10, first: true, hasNext: true, totalPages: 10, previousIdx: -1, nextIdx: 1},
		{name: "middle", total: 99, index: 4, size: 10, hasNext: true, hasPrevious: true, totalPages: 10, previousIdx: 3, nextIdx: 5},
		{name: "last partial", total: 99, index: 9, size: 10, last: true, hasPrevious: true, totalPages: 10, previousIdx: 8, nextIdx: -1},
		{name: "exact fit last", total: 100, index: 9, size: 10, last: true, hasPrevious: true, totalPages: 10, previousIdx: 8, nextIdx: -1},
		{name: "single page", total: 3, index: 0, size: 25, first: true, last: true, totalPages: 1, previousIdx: -1, nextIdx: -1},
		{name: "size one", total: 2, index: 1, size: 1, last: true, hasPrevious: true, totalPages: 2, previousIdx: 0, nextIdx: -1},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			p := paginate(tt.total, tt.index, tt.size)
			if p.first != tt.first || p.last != tt.last || p.hasNext != tt.hasNext || p.hasPrevious != tt.hasPrevious {
				t.Fatalf("flags = first:%v last:%v next:%v prev:%v, want first:%v last:%v next:%v prev:%v",
					p.first, p.last, p.hasNext, p.hasPrevious, tt.first, tt.last, tt.hasNext, tt.hasPrevious)
			}
			if p.totalPages != tt.totalPages {
				t.Fatalf("totalPages = %d, want %d", p.totalPages, tt.totalPages)
			}
			assertIndex(t, "previous", p.previous, tt.previousIdx)
			assertIndex(t, "next", p.next, tt.nextIdx)
		})
	}
}

func assertIndex(t *testing.T, name string, got *int, want int) {
	t.Helper()
	if want < 0 {
		if got != nil {
			t.Fatalf("%s index = %d, want none", name, *got)
		}
		return
	}
	if got == nil || *got != want {
		t.Fatalf("%s index = %v, want %d", name, got, want)
	}
}
