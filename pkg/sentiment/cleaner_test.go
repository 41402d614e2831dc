package sentiment

import "testing"

func TestClean(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"lowercases", "Kopi GAYO Enak", "kopi gayo enak"},
		{"strips url", "lihat http://example.com/x?y=1 sekarang", "lihat sekarang"},
		{"strips mention", "terima kasih @budaya_aceh atas infonya", "terima kasih atas infonya"},
		{"strips hashtag", "liburan ke sabang #wonderful #aceh2024", "liburan ke sabang"},
		{"strips punctuation", "enak banget!!! (serius?)", "enak banget serius"},
		{"collapses whitespace", "kopi \t  gayo \n enak", "kopi gayo enak"},
		{"empty input", "", ""},
		{"only noise", "!!! @x #y http://z.co", ""},
		{"keeps digits", "harga 15000 rupiah", "harga 15000 rupiah"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Clean(tt.in); got != tt.want {
				t.Errorf("Clean(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}
