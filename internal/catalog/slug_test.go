package catalog

import "testing"

func TestSlugify(t *testing.T) {
	cases := []struct {
		manufacturer string
		name         string
		want         string
	}{
		{"Aristo", "Paracetamol 500mg", "aristo-paracetamol-500mg"},
		{"Sun Pharma", "Pantoprazole 40 MG", "sun-pharma-pantoprazole-40-mg"},
		{"Cipla", "Cetirizine (10mg)", "cipla-cetirizine-10mg"},
		{"  Alkem  ", "--Amoxy--", "alkem-amoxy"},
		{"", "", ""},
	}
	for _, tc := range cases {
		if got := Slugify(tc.manufacturer, tc.name); got != tc.want {
			t.Fatalf("Slugify(%q, %q) = %q, want %q", tc.manufacturer, tc.name, got, tc.want)
		}
	}
}
