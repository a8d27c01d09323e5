package model

import "testing"

func TestQuartierFromZipcode(t *testing.T) {
	cases := []struct {
		zipcode string
		want    Quartier
	}{
		{"75005", QuartierRiveGauche},
		{"75014", QuartierRiveGauche},
		{"75001", QuartierRiveDroite},
		{"75018", QuartierRiveDroite},
		{"93100", QuartierExtramuros},
		{"92200", QuartierExtramuros},
		{"", QuartierExtramuros},
		{"7500", QuartierExtramuros}, // malformed
	}
	for _, c := range cases {
		if got := QuartierFromZipcode(c.zipcode); got != c.want {
			t.Fatalf("QuartierFromZipcode(%q) = %q, want %q", c.zipcode, got, c.want)
		}
	}
}

func TestParseQuartier(t *testing.T) {
	for _, q := range AllQuartiers {
		got, ok := ParseQuartier(string(q))
		if !ok || got != q {
			t.Fatalf("ParseQuartier(%q) = %q, %t", q, got, ok)
		}
	}
	if _, ok := ParseQuartier("centre"); ok {
		t.Fatal("unknown quartier must not parse")
	}
}
