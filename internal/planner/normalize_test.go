package planner

import "testing"

func TestNormalize(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"Milk", "milk"},
		{"  milk ", "milk"},
		{"  OAT Flakes ", "oat flakes"},
		{"", ""},
		{"   ", ""},
	}
	for _, c := range cases {
		if got := Normalize(c.in); got != c.want {
			t.Errorf("Normalize(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestNormalize_EquivalenceRelation(t *testing.T) {
	a, b, c := "Milk", " milk", "MILK  "

	// reflexive, symmetric, transitive over the normalized key
	if Normalize(a) != Normalize(a) {
		t.Error("normalization is not reflexive")
	}
	if (Normalize(a) == Normalize(b)) != (Normalize(b) == Normalize(a)) {
		t.Error("normalization is not symmetric")
	}
	if Normalize(a) == Normalize(b) && Normalize(b) == Normalize(c) && Normalize(a) != Normalize(c) {
		t.Error("normalization is not transitive")
	}
}
