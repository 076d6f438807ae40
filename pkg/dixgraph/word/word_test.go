package word

import "testing"

func tags(atoms ...string) Tags { return Tags(atoms) }

func TestTagsSubset(t *testing.T) {
	cases := []struct {
		name     string
		a, b     Tags
		subset   bool
		proper   bool
		setEqual bool
	}{
		{"equal sets", tags("n", "m"), tags("m", "n"), true, false, true},
		{"proper subset", tags("n"), tags("n", "m"), true, true, false},
		{"incomparable", tags("n", "m"), tags("n", "f"), false, false, false},
		{"empty subset of anything", tags(), tags("n", "m"), true, true, false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := c.a.Subset(c.b); got != c.subset {
				t.Errorf("Subset = %v, want %v", got, c.subset)
			}
			if got := c.a.ProperSubset(c.b); got != c.proper {
				t.Errorf("ProperSubset = %v, want %v", got, c.proper)
			}
			if got := c.a.SetEqual(c.b); got != c.setEqual {
				t.Errorf("SetEqual = %v, want %v", got, c.setEqual)
			}
		})
	}
}

func TestWordEqualLooseMatch(t *testing.T) {
	// Scenario 2: lexicon has Word("rus","stol",[[n-m,n-m-sg]]);
	// query (rus,stol,n) must equal the stored word.
	stored := New("rus", "stol", []TagGroup{{tags("n", "m"), tags("n", "m", "sg")}})
	query := New("rus", "stol", []TagGroup{{tags("n")}})

	if !stored.Equal(query) {
		t.Fatal("expected loose match between under-specified query and stored word")
	}
	if !query.Equal(stored) {
		t.Fatal("Equal should be symmetric for this case")
	}
}

func TestWordEqualRejectsIncomparable(t *testing.T) {
	stored := New("rus", "stol", []TagGroup{{tags("n", "m")}})
	query := New("rus", "stol", []TagGroup{{tags("n", "f")}})
	if stored.Equal(query) {
		t.Fatal("incomparable tags must not be considered equal")
	}
}

func TestWordEqualDifferentLemma(t *testing.T) {
	a := New("rus", "stol", []TagGroup{{tags("n")}})
	b := New("rus", "stul", []TagGroup{{tags("n")}})
	if a.Equal(b) {
		t.Fatal("different lemma must never be equal")
	}
}

func TestWordLess(t *testing.T) {
	a := New("rus", "stol", []TagGroup{{tags("n", "m")}})
	b := New("rus", "stol", []TagGroup{{tags("n", "m")}, {tags("n", "f", "sg")}})
	if !a.Less(b) {
		t.Fatal("a's single variant set should be a proper subset of b's two-variant set")
	}
	if b.Less(a) {
		t.Fatal("b should not be less than a")
	}
}

func TestWordKeyStableAcrossAtomOrder(t *testing.T) {
	a := New("eng", "cat", []TagGroup{{tags("n", "sg")}})
	b := New("eng", "cat", []TagGroup{{tags("sg", "n")}})
	if a.Key() != b.Key() {
		t.Fatalf("Key should be order-independent: %q vs %q", a.Key(), b.Key())
	}
}

func TestWordKeyDistinguishesLemma(t *testing.T) {
	a := New("eng", "cat", []TagGroup{{tags("n")}})
	b := New("eng", "dog", []TagGroup{{tags("n")}})
	if a.Key() == b.Key() {
		t.Fatal("different lemma must produce different Key")
	}
}
