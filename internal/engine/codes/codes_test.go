package codes

import "testing"

func TestWeightTakesMaxOfTables(t *testing.T) {
	c := Default()

	// DEFENSIVE TRANSITION weighs more from our own perspective.
	if got := c.Weight("DEFENSIVE TRANSITION"); got != 26 {
		t.Fatalf("Weight(DEFENSIVE TRANSITION) = %v, want 26", got)
	}
	// CREATING CHANCES weighs more from the opponent's.
	if got := c.Weight("CREATING CHANCES"); got != 32 {
		t.Fatalf("Weight(CREATING CHANCES) = %v, want 32", got)
	}
	if got := c.Weight("NO SUCH CODE"); got != 0 {
		t.Fatalf("Weight of unknown code = %v, want 0", got)
	}
}

func TestPerspectiveWeights(t *testing.T) {
	c := Default()
	if opp, own := c.OpponentWeight("LOSSES"), c.OwnWeight("LOSSES"); opp != 8 || own != 24 {
		t.Fatalf("LOSSES weights = (%v, %v), want (8, 24)", opp, own)
	}
}

func TestStopwordsAndCauses(t *testing.T) {
	c := Default()

	for _, code := range DefaultStopwords() {
		if !c.IsStopword(code) {
			t.Fatalf("%q should be a stopword", code)
		}
	}
	if c.IsStopword("ATTACKING TRANSITION") {
		t.Fatal("ATTACKING TRANSITION must not be a stopword")
	}

	for _, code := range DefaultCauseCodes() {
		if !c.IsCause(code) {
			t.Fatalf("%q should be a cause code", code)
		}
	}
	if c.IsCause("CROSSES") {
		t.Fatal("CROSSES must not be a cause code")
	}
}

func TestHasCause(t *testing.T) {
	c := Default()
	if !c.HasCause([]string{"CROSSES", "PROGRESSION"}) {
		t.Fatal("sequence with PROGRESSION should have a cause")
	}
	if c.HasCause([]string{"CROSSES", "HIGH PRESS"}) {
		t.Fatal("sequence without offense-phase codes should have no cause")
	}
	if c.HasCause(nil) {
		t.Fatal("empty sequence should have no cause")
	}
}

func TestCategory(t *testing.T) {
	c := Default()
	if got := c.Category("SET PIECES"); got != CategoryRestart {
		t.Fatalf("Category(SET PIECES) = %q, want %q", got, CategoryRestart)
	}
	if got := c.Category("NO SUCH CODE"); got != "" {
		t.Fatalf("Category of unknown code = %q, want empty", got)
	}
}

func TestCustomCatalogOverrides(t *testing.T) {
	c := New(DefaultGroups(), DefaultOpponentWeights(), DefaultOwnWeights(),
		[]string{"CROSSES"}, []string{"HIGH PRESS"})

	if !c.IsStopword("CROSSES") || c.IsStopword("BUILD UP") {
		t.Fatal("custom stopword set must replace the default, not extend it")
	}
	if !c.IsCause("HIGH PRESS") || c.IsCause("PROGRESSION") {
		t.Fatal("custom cause set must replace the default, not extend it")
	}
}
