package repository

import "testing"

// orderClause builds SQL from client input, so anything outside the
// whitelist must fall back to the default rather than pass through.
func TestOrderClause(t *testing.T) {
	tests := []struct {
		sortBy    string
		sortOrder string
		want      string
	}{
		{"", "", "ORDER BY created_at DESC"},
		{"created_at", "asc", "ORDER BY created_at ASC"},
		{"createdAt", "desc", "ORDER BY created_at DESC"},
		{"show_date", "asc", "ORDER BY show_date ASC"},
		{"date", "", "ORDER BY show_date DESC"},
		{"total_price", "asc", "ORDER BY total_price ASC"},
		{"totalPrice", "desc", "ORDER BY total_price DESC"},
		{"id; DROP TABLE bookings", "asc", "ORDER BY created_at ASC"},
		{"created_at", "sideways", "ORDER BY created_at DESC"},
	}

	for _, tt := range tests {
		if got := orderClause(tt.sortBy, tt.sortOrder); got != tt.want {
			t.Errorf("orderClause(%q, %q) = %q, want %q", tt.sortBy, tt.sortOrder, got, tt.want)
		}
	}
}
