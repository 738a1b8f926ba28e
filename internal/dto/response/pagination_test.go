package response

import "testing"

func TestNewPaginatedResponse(t *testing.T) {
	tests := []struct {
		name        string
		page        int
		perPage     int
		total       int64
		wantPages   int
		wantHasNext bool
		wantHasPrev bool
	}{
		{"empty", 1, 10, 0, 0, false, false},
		{"single page", 1, 10, 7, 1, false, false},
		{"first of three", 1, 10, 25, 3, true, false},
		{"middle page", 2, 10, 25, 3, true, true},
		{"last page", 3, 10, 25, 3, false, true},
		{"exact boundary", 2, 10, 20, 2, false, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := NewPaginatedResponse([]string{}, tt.page, tt.perPage, tt.total)

			meta := resp.Pagination
			if meta.CurrentPage != tt.page {
				t.Errorf("current_page = %d, want %d", meta.CurrentPage, tt.page)
			}
			if meta.TotalPages != tt.wantPages {
				t.Errorf("total_pages = %d, want %d", meta.TotalPages, tt.wantPages)
			}
			if meta.TotalCount != tt.total {
				t.Errorf("total_count = %d, want %d", meta.TotalCount, tt.total)
			}
			if meta.HasNext != tt.wantHasNext {
				t.Errorf("has_next = %v, want %v", meta.HasNext, tt.wantHasNext)
			}
			if meta.HasPrev != tt.wantHasPrev {
				t.Errorf("has_prev = %v, want %v", meta.HasPrev, tt.wantHasPrev)
			}
		})
	}
}
