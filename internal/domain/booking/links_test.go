package booking

import "testing"

func TestDirectory_LinkFor(t *testing.T) {
	d := NewDirectory("https://book.example.com/clearview/")

	cases := []struct {
		total int64
		band  string
		url   string
	}{
		{total: 0, band: "under_150", url: "https://book.example.com/clearview/under-150"},
		{total: 149, band: "under_150", url: "https://book.example.com/clearview/under-150"},
		{total: 150, band: "under_200", url: "https://book.example.com/clearview/150-to-200"},
		{total: 299, band: "under_300", url: "https://book.example.com/clearview/200-to-300"},
		{total: 300, band: "under_400", url: "https://book.example.com/clearview/300-to-400"},
		{total: 499, band: "under_500", url: "https://book.example.com/clearview/400-to-500"},
		{total: 500, band: "500_plus", url: "https://book.example.com/clearview/500-plus"},
		{total: 12000, band: "500_plus", url: "https://book.example.com/clearview/500-plus"},
	}

	for _, tc := range cases {
		got := d.LinkFor(tc.total)
		if got.Band != tc.band || got.URL != tc.url {
			t.Fatalf("total %d: expected %s %s, got %+v", tc.total, tc.band, tc.url, got)
		}
	}
}

func TestBands_AreDistinct(t *testing.T) {
	seen := map[string]bool{}
	for _, b := range Bands() {
		if seen[b.Slug] {
			t.Fatalf("duplicate slug %s", b.Slug)
		}
		seen[b.Slug] = true
	}
	if len(seen) != 6 {
		t.Fatalf("expected 6 bands, got %d", len(seen))
	}
}
