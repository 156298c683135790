package catalog

import (
	"strings"
	"testing"
)

func TestValidate_SeedCatalogPasses(t *testing.T) {
	if err := Validate(); err != nil {
		t.Fatalf("seed catalog validation failed: %v", err)
	}
}

func TestLen(t *testing.T) {
	if Len() != 21 {
		t.Errorf("Len() = %d, want 21", Len())
	}
}

func TestAll_PresentationOrder(t *testing.T) {
	qs := All()
	if qs[0].ID != "interest_1" {
		t.Errorf("first question = %q, want interest_1", qs[0].ID)
	}
	if qs[len(qs)-1].ID != "wiscar_real_world_1" {
		t.Errorf("last question = %q, want wiscar_real_world_1", qs[len(qs)-1].ID)
	}
}

func TestAll_ReturnsCopy(t *testing.T) {
	qs := All()
	qs[0].ID = "mutated"
	if got := All()[0].ID; got != "interest_1" {
		t.Errorf("mutating All() result changed catalog: got %q", got)
	}
}

func TestAccessors_CopyOptions(t *testing.T) {
	want := All()[0].Options[0]

	q, _ := ByID("interest_1")
	q.Options[0] = "mutated"
	All()[0].Options[1] = "mutated"
	ByCategory(CategoryPsychometric)[1].Options[2] = "mutated"

	for _, q := range ByCategory(CategoryPsychometric) {
		for _, opt := range q.Options {
			if opt == "mutated" {
				t.Fatalf("%s: option slice shared with caller", q.ID)
			}
		}
	}
	if got := All()[0].Options[0]; got != want {
		t.Errorf("first option = %q, want %q", got, want)
	}
}

func TestByID(t *testing.T) {
	q, ok := ByID("aptitude_2")
	if !ok {
		t.Fatal("aptitude_2 not found")
	}
	if q.Category != CategoryTechnical || q.Kind != KindAptitude {
		t.Errorf("aptitude_2 = %+v", q)
	}
	if _, ok := ByID("nope"); ok {
		t.Error("unknown ID should not be found")
	}
}

func TestByCategory_Counts(t *testing.T) {
	tests := []struct {
		cat  Category
		want int
	}{
		{CategoryPsychometric, 8},
		{CategoryTechnical, 7},
		{CategoryWiscar, 6},
	}
	total := 0
	for _, tt := range tests {
		got := len(ByCategory(tt.cat))
		total += got
		if got != tt.want {
			t.Errorf("ByCategory(%s) = %d, want %d", tt.cat, got, tt.want)
		}
	}
	if total != Len() {
		t.Errorf("categories cover %d questions, want %d", total, Len())
	}
}

func TestAnswerKey(t *testing.T) {
	want := map[string]int{
		"aptitude_1": 1,
		"aptitude_2": 0,
		"prereq_1":   1,
		"prereq_2":   1,
		"prereq_3":   1,
		"domain_1":   1,
		"domain_2":   1,
	}
	for id, idx := range want {
		got, ok := CorrectIndex(id)
		if !ok {
			t.Errorf("%s has no key", id)
			continue
		}
		if got != idx {
			t.Errorf("CorrectIndex(%s) = %d, want %d", id, got, idx)
		}
	}
	if _, ok := CorrectIndex("interest_1"); ok {
		t.Error("interest_1 should not be graded")
	}
}

func TestScoringGroups(t *testing.T) {
	if got := strings.Join(PsychometricIDs(), ","); got != "interest_1,interest_2,personality_1,personality_2,motivation_1" {
		t.Errorf("PsychometricIDs = %s", got)
	}
	if len(TechnicalIDs()) != 7 {
		t.Errorf("TechnicalIDs has %d entries, want 7", len(TechnicalIDs()))
	}
	if ids := FactorIDs(FactorRealWorld); len(ids) != 1 || ids[0] != "wiscar_real_world_1" {
		t.Errorf("FactorIDs(realWorld) = %v", ids)
	}
	if len(AllFactors()) != 6 {
		t.Errorf("AllFactors has %d entries, want 6", len(AllFactors()))
	}
}

func TestAnswerSet_Clone(t *testing.T) {
	a := AnswerSet{"interest_1": 2}
	b := a.Clone()
	b["interest_1"] = 4
	if i, _ := a.Get("interest_1"); i != 2 {
		t.Errorf("clone shares storage with original: got %d", i)
	}
	if _, ok := a.Get("interest_2"); ok {
		t.Error("unanswered question reported as answered")
	}
}

func TestFactorDisplayName(t *testing.T) {
	if FactorRealWorld.DisplayName() != "Real-World Alignment" {
		t.Errorf("DisplayName = %q", FactorRealWorld.DisplayName())
	}
}
