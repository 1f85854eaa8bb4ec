package stats

import (
	"sort"
	"testing"
)

func TestCollationDigraphCH(t *testing.T) {
	// "ch" is its own letter between "h" and "i".
	names := []string{"Ivan", "Chren", "Hudák"}
	sort.Slice(names, func(i, j int) bool { return Less(names[i], names[j]) })

	want := []string{"Hudák", "Chren", "Ivan"}
	for i := range want {
		if names[i] != want[i] {
			t.Fatalf("order = %v, want %v", names, want)
		}
	}
}

func TestCollationDiacritics(t *testing.T) {
	cases := []struct{ before, after string }{
		{"Saloň", "Šimek"},
		{"Cibula", "Čapek"},
		{"Zeman", "Žák"},
	}
	for _, c := range cases {
		if !Less(c.before, c.after) {
			t.Errorf("want %q < %q", c.before, c.after)
		}
	}
}

func TestCollationCaseInsensitive(t *testing.T) {
	if Compare("novak", "NOVAK") != 0 {
		t.Error("case must not affect ordering")
	}
}
