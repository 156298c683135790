package scoring

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/vrfit/internal/catalog"
)

func allAnswered(idx int) catalog.AnswerSet {
	set := catalog.AnswerSet{}
	for _, q := range catalog.All() {
		set[q.ID] = idx
	}
	return set
}

func technicalKeyed() catalog.AnswerSet {
	set := catalog.AnswerSet{}
	for _, id := range catalog.TechnicalIDs() {
		idx, _ := catalog.CorrectIndex(id)
		set[id] = idx
	}
	return set
}

func TestEvaluate_EmptyAnswers(t *testing.T) {
	r := Evaluate(catalog.AnswerSet{})

	assert.Equal(t, 0, r.Psychometric.Score)
	assert.Equal(t, 0, r.Technical.Score)
	for _, f := range catalog.AllFactors() {
		assert.Equal(t, 0, r.Wiscar[f], "factor %s", f)
	}
	assert.Equal(t, 0, r.Overall)
	assert.Equal(t, 0, r.Confidence)
	assert.Equal(t, TierNo, r.Tier)
	assert.Equal(t, "No - Consider alternative paths", r.Recommendation)
	assert.Equal(t, []string{
		"Explore general software development",
		"Consider UI/UX design for tech products",
		"Look into 2D game development",
		"Investigate web development or mobile apps",
		"Focus on your strongest areas of interest",
	}, r.NextSteps)
}

func TestEvaluate_NilAnswers(t *testing.T) {
	r := Evaluate(nil)
	assert.Equal(t, 0, r.Overall)
	assert.Equal(t, TierNo, r.Tier)
}

func TestPsychometric_MaxAnswers(t *testing.T) {
	set := catalog.AnswerSet{}
	for _, id := range catalog.PsychometricIDs() {
		set[id] = 4
	}
	r := Psychometric(set)

	assert.Equal(t, 100, r.Score)
	assert.Equal(t, BandHigh, r.Band)
	assert.Equal(t, "Highly aligned personality and motivation for VR Simulation", r.Interpretation)
	assert.Contains(t, r.Details, "strongly align")
}

func TestPsychometric_IgnoresUnscoredQuestions(t *testing.T) {
	set := catalog.AnswerSet{
		"interest_1":    0,
		"interest_3":    4,
		"personality_3": 4,
		"motivation_2":  4,
	}
	assert.Equal(t, 20, Psychometric(set).Score)
}

func TestPsychometric_Bands(t *testing.T) {
	tests := []struct {
		name   string
		set    catalog.AnswerSet
		score  int
		band   Band
		prefix string
	}{
		{
			name:   "high boundary 85",
			set:    catalog.AnswerSet{"interest_1": 4, "interest_2": 3, "personality_1": 3, "personality_2": 3},
			score:  85,
			band:   BandHigh,
			prefix: "Highly aligned",
		},
		{
			name:   "medium",
			set:    catalog.AnswerSet{"interest_1": 3, "interest_2": 3, "motivation_1": 3},
			score:  80,
			band:   BandMedium,
			prefix: "Moderate alignment",
		},
		{
			name:   "medium boundary 50",
			set:    catalog.AnswerSet{"interest_1": 1, "interest_2": 2},
			score:  50,
			band:   BandMedium,
			prefix: "Moderate alignment",
		},
		{
			name:   "low",
			set:    catalog.AnswerSet{"interest_1": 0, "interest_2": 2},
			score:  40,
			band:   BandLow,
			prefix: "Lower alignment",
		},
		{
			name:   "rounded average",
			set:    catalog.AnswerSet{"interest_1": 0, "interest_2": 0, "personality_1": 1},
			score:  27,
			band:   BandLow,
			prefix: "Lower alignment",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := Psychometric(tt.set)
			assert.Equal(t, tt.score, r.Score)
			assert.Equal(t, tt.band, r.Band)
			assert.Contains(t, r.Interpretation, tt.prefix)
		})
	}
}

func TestTechnical_AllCorrect(t *testing.T) {
	r := Technical(technicalKeyed())

	assert.Equal(t, 100, r.Score)
	assert.Equal(t, "Strong technical foundation, ready for advanced learning", r.Interpretation)
}

func TestTechnical_NoneCorrect(t *testing.T) {
	set := catalog.AnswerSet{}
	for _, id := range catalog.TechnicalIDs() {
		set[id] = 4
	}
	r := Technical(set)

	assert.Equal(t, 0, r.Score)
	assert.Equal(t, BandLow, r.Band)
	assert.Equal(t, "Beginner level, needs foundational courses", r.Interpretation)
}

func TestTechnical_DenominatorIsAnsweredCount(t *testing.T) {
	r := Technical(catalog.AnswerSet{"aptitude_1": 1})
	assert.Equal(t, 100, r.Score)

	r = Technical(catalog.AnswerSet{"aptitude_1": 1, "aptitude_2": 3})
	assert.Equal(t, 50, r.Score)
	assert.Equal(t, BandMedium, r.Band)
	assert.Equal(t, "Basic foundation present, further study recommended", r.Interpretation)
}

func TestTechnical_RoundsPercentage(t *testing.T) {
	set := technicalKeyed()
	set["domain_1"] = 0
	set["domain_2"] = 0
	// 5 of 7 correct = 71.43
	assert.Equal(t, 71, Technical(set).Score)
}

func TestWiscar_SingleFactor(t *testing.T) {
	w := Wiscar(catalog.AnswerSet{"wiscar_will_1": 2})

	require.Len(t, w, 6)
	assert.Equal(t, 60, w[catalog.FactorWill])
	assert.Equal(t, 0, w[catalog.FactorRealWorld])
}

func TestWiscar_AllFactors(t *testing.T) {
	w := Wiscar(allAnswered(4))
	for _, f := range catalog.AllFactors() {
		assert.Equal(t, 100, w[f], "factor %s", f)
	}
}

func TestOverall_ExcludesWiscar(t *testing.T) {
	set := technicalKeyed()
	for _, f := range catalog.AllFactors() {
		for _, id := range catalog.FactorIDs(f) {
			set[id] = 4
		}
	}
	r := Evaluate(set)

	assert.Equal(t, 0, r.Psychometric.Score)
	assert.Equal(t, 100, r.Technical.Score)
	assert.Equal(t, 50, r.Overall)
	assert.Equal(t, TierMaybe, r.Tier)
	assert.Equal(t, 67, r.Confidence)
}

func TestOverall_YesBoundary(t *testing.T) {
	overall := Overall(80, 70)
	assert.Equal(t, 75, overall)
	assert.Equal(t, TierYes, TierFor(overall))
	assert.Equal(t, "Yes - Pursue VR Simulation Engineering", TierFor(overall).Label())
}

func TestTierFor(t *testing.T) {
	tests := []struct {
		overall int
		want    Tier
	}{
		{0, TierNo},
		{49, TierNo},
		{50, TierMaybe},
		{74, TierMaybe},
		{75, TierYes},
		{100, TierYes},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, TierFor(tt.overall), "TierFor(%d)", tt.overall)
	}
}

func TestEvaluate_PsychometricEightyTechnicalSeventyOne(t *testing.T) {
	set := technicalKeyed()
	set["domain_1"] = 0
	set["domain_2"] = 0
	for _, id := range catalog.PsychometricIDs() {
		set[id] = 3
	}
	r := Evaluate(set)

	assert.Equal(t, 80, r.Psychometric.Score)
	assert.Equal(t, 71, r.Technical.Score)
	assert.Equal(t, 76, r.Overall)
	assert.Equal(t, TierYes, r.Tier)
	assert.Len(t, r.NextSteps, 5)
	assert.Equal(t, "Start with Unity or Unreal Engine tutorials", r.NextSteps[0])
}

func TestConfidence_DividesBySixRegardless(t *testing.T) {
	w := map[catalog.Factor]int{catalog.FactorWill: 100}
	// (100 + 0 + 100/6) / 3 = 38.89
	assert.Equal(t, 39, Confidence(100, 0, w))
	assert.Equal(t, 100, Confidence(100, 100, Wiscar(allAnswered(4))))
}

func TestEvaluate_Idempotent(t *testing.T) {
	set := catalog.AnswerSet{"interest_1": 3, "aptitude_1": 1, "wiscar_skill_1": 2}
	first := Evaluate(set)
	second := Evaluate(set)
	assert.Equal(t, first, second)
}

func TestEvaluate_NextStepsAreCopies(t *testing.T) {
	r := Evaluate(catalog.AnswerSet{})
	r.NextSteps[0] = "changed"
	assert.NotEqual(t, "changed", Evaluate(catalog.AnswerSet{}).NextSteps[0])
}

func TestEvaluate_OutOfRangeIndexTreatedAsUnanswered(t *testing.T) {
	r := Evaluate(catalog.AnswerSet{"interest_1": 9, "interest_2": -1, "aptitude_1": 7})
	assert.Equal(t, 0, r.Psychometric.Score)
	assert.Equal(t, 0, r.Technical.Score)
}

func TestEvaluate_ScoresStayInRange(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	questions := catalog.All()

	for i := 0; i < 500; i++ {
		set := catalog.AnswerSet{}
		for _, q := range questions {
			if rng.Intn(3) == 0 {
				continue
			}
			set[q.ID] = rng.Intn(len(q.Options))
		}
		r := Evaluate(set)

		scores := []int{r.Psychometric.Score, r.Technical.Score, r.Overall, r.Confidence}
		for _, v := range r.Wiscar {
			scores = append(scores, v)
		}
		for _, s := range scores {
			require.GreaterOrEqual(t, s, 0)
			require.LessOrEqual(t, s, 100)
		}
		require.Len(t, r.NextSteps, 5)
	}
}

func TestBandString(t *testing.T) {
	assert.Equal(t, "high", BandHigh.String())
	assert.Equal(t, "medium", BandMedium.String())
	assert.Equal(t, "low", BandLow.String())
	assert.Equal(t, "maybe", TierMaybe.String())
}
