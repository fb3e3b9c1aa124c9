// Package category contains category-related use cases.
package category

import "testing"

func TestSlugify(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"lowercases", "Pets", "pets"},
		{"strips diacritics", "Ótica", "otica"},
		{"collapses separators", "Pets & Co.", "pets-co"},
		{"spaces become hyphens", "Cartão de Crédito", "cartao-de-credito"},
		{"digits survive", "Meta 2026", "meta-2026"},
		{"trims edge separators", "  viagem  ", "viagem"},
		{"empty name", "", ""},
		{"only separators", "---", ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Slugify(tc.in); got != tc.want {
				t.Errorf("Slugify(%q) = %q, want %q", tc.in, got, tc.want)
			}
		})
	}
}
