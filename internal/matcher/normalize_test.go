package matcher

import "testing"

func TestNormalizeName(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"plain ascii", "Jon", "jon"},
		{"trims and lowercases", "  JONES  ", "jones"},
		{"collapses inner whitespace", "Jose   Maria", "jose maria"},
		{"combining diacritics", "José", "jose"},
		{"stroked l", "Błachowicz", "blachowicz"},
		{"slashed o", "Søren", "soren"},
		{"ae ligature", "Cæsar", "caesar"},
		{"sharp s", "Groß", "gross"},
		{"eth", "Guðmundsson", "gudmundsson"},
		{"empty", "   ", ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := NormalizeName(tc.in); got != tc.want {
				t.Fatalf("NormalizeName(%q) = %q, want %q", tc.in, got, tc.want)
			}
		})
	}
}

func TestStripNameSuffix(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"jose aldo jr", "jose aldo"},
		{"jose aldo jr.", "jose aldo"},
		{"frank mir iii", "frank mir"},
		{"jon jones", "jon jones"},
		// "v" stays: it can be a real name part.
		{"rodrigo v", "rodrigo v"},
		// A lone suffix word is not stripped to nothing.
		{"jr", "jr"},
	}

	for _, tc := range cases {
		if got := stripNameSuffix(tc.in); got != tc.want {
			t.Fatalf("stripNameSuffix(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
