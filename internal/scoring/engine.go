// Package scoring turns a questionnaire answer set into readiness scores,
// interpretations and a recommendation. Every function is pure: the same
// answer set always produces the same Result.
package scoring

import (
	"math"

	"github.com/abhisek/vrfit/internal/catalog"
)

// pointsPerStep converts a 0-based option index to a 20..100 scale.
// It assumes five options per rescaled question; catalog validation enforces that.
const pointsPerStep = 20

// wiscarDivisor is fixed at the factor count, answered or not.
const wiscarDivisor = 6

// ScoreResult is a category score with its canned interpretation.
type ScoreResult struct {
	Score          int
	Band           Band
	Interpretation string
	Details        string
}

// Result is the full outcome of one questionnaire.
type Result struct {
	Psychometric   ScoreResult
	Technical      ScoreResult
	Wiscar         map[catalog.Factor]int
	Overall        int
	Confidence     int
	Tier           Tier
	Recommendation string
	NextSteps      []string
}

// Evaluate scores an answer set. Questions missing from answers are excluded
// from every score that references them.
func Evaluate(answers catalog.AnswerSet) Result {
	psy := Psychometric(answers)
	tech := Technical(answers)
	wiscar := Wiscar(answers)

	overall := Overall(psy.Score, tech.Score)
	tier := TierFor(overall)

	return Result{
		Psychometric:   psy,
		Technical:      tech,
		Wiscar:         wiscar,
		Overall:        overall,
		Confidence:     Confidence(psy.Score, tech.Score, wiscar),
		Tier:           tier,
		Recommendation: tier.Label(),
		NextSteps:      tier.NextSteps(),
	}
}

// Psychometric averages the rescaled answers of the psychometric subset.
func Psychometric(answers catalog.AnswerSet) ScoreResult {
	score := rescaledAverage(answers, catalog.PsychometricIDs())
	band := BandFor(score)
	text := psychometricText[band]
	return ScoreResult{
		Score:          score,
		Band:           band,
		Interpretation: text.label,
		Details:        text.details,
	}
}

// Technical grades answered technical questions against the answer key.
// The denominator is the number of answered questions, not the catalog size.
func Technical(answers catalog.AnswerSet) ScoreResult {
	var answered, correct int
	for _, id := range catalog.TechnicalIDs() {
		idx, ok := lookup(answers, id)
		if !ok {
			continue
		}
		answered++
		if want, keyed := catalog.CorrectIndex(id); keyed && idx == want {
			correct++
		}
	}

	score := 0
	if answered > 0 {
		score = roundInt(float64(correct) / float64(answered) * 100)
	}

	band := BandFor(score)
	text := technicalText[band]
	return ScoreResult{
		Score:          score,
		Band:           band,
		Interpretation: text.label,
		Details:        text.details,
	}
}

// Wiscar returns a 0-100 score for each of the six factors.
func Wiscar(answers catalog.AnswerSet) map[catalog.Factor]int {
	out := make(map[catalog.Factor]int, wiscarDivisor)
	for _, f := range catalog.AllFactors() {
		out[f] = rescaledAverage(answers, catalog.FactorIDs(f))
	}
	return out
}

// Overall averages the psychometric and technical scores. WISCAR does not
// contribute.
func Overall(psychometric, technical int) int {
	return roundInt(float64(psychometric+technical) / 2)
}

// Confidence blends both category scores with the mean WISCAR score. The
// WISCAR mean always divides by six.
func Confidence(psychometric, technical int, wiscar map[catalog.Factor]int) int {
	sum := 0
	for _, v := range wiscar {
		sum += v
	}
	wiscarMean := float64(sum) / wiscarDivisor
	return roundInt((float64(psychometric+technical) + wiscarMean) / 3)
}

// rescaledAverage maps each answered index i to (i+1)*20 and averages.
// Returns 0 when none of ids were answered.
func rescaledAverage(answers catalog.AnswerSet, ids []string) int {
	var total, count int
	for _, id := range ids {
		idx, ok := lookup(answers, id)
		if !ok {
			continue
		}
		total += (idx + 1) * pointsPerStep
		count++
	}
	if count == 0 {
		return 0
	}
	return roundInt(float64(total) / float64(count))
}

// lookup returns the answer for id, treating indices outside the question's
// option range as unanswered so every score stays within 0-100.
func lookup(answers catalog.AnswerSet, id string) (int, bool) {
	idx, ok := answers.Get(id)
	if !ok {
		return 0, false
	}
	q, known := catalog.ByID(id)
	if !known || !q.ValidIndex(idx) {
		return 0, false
	}
	return idx, true
}

func roundInt(v float64) int {
	return int(math.Round(v))
}
