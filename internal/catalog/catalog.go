package catalog

import (
	"fmt"
	"slices"
)

// Question IDs that feed the psychometric score. interest_3, personality_3
// and motivation_2 are presented but never scored.
var psychometricIDs = []string{
	"interest_1", "interest_2",
	"personality_1", "personality_2",
	"motivation_1",
}

// Question IDs graded against the answer key, in scoring order.
var technicalIDs = []string{
	"aptitude_1", "aptitude_2",
	"prereq_1", "prereq_2", "prereq_3",
	"domain_1", "domain_2",
}

// Factor is one of the six WISCAR readiness factors.
type Factor string

const (
	FactorWill      Factor = "will"
	FactorInterest  Factor = "interest"
	FactorSkill     Factor = "skill"
	FactorCognitive Factor = "cognitive"
	FactorAbility   Factor = "ability"
	FactorRealWorld Factor = "realWorld"
)

// AllFactors returns the WISCAR factors in display order.
func AllFactors() []Factor {
	return []Factor{
		FactorWill,
		FactorInterest,
		FactorSkill,
		FactorCognitive,
		FactorAbility,
		FactorRealWorld,
	}
}

// DisplayName returns a human-readable label for a factor.
func (f Factor) DisplayName() string {
	switch f {
	case FactorWill:
		return "Will"
	case FactorInterest:
		return "Interest"
	case FactorSkill:
		return "Skill"
	case FactorCognitive:
		return "Cognitive"
	case FactorAbility:
		return "Ability"
	case FactorRealWorld:
		return "Real-World Alignment"
	default:
		return string(f)
	}
}

var factorIDs = map[Factor][]string{
	FactorWill:      {"wiscar_will_1"},
	FactorInterest:  {"wiscar_interest_1"},
	FactorSkill:     {"wiscar_skill_1"},
	FactorCognitive: {"wiscar_cognitive_1"},
	FactorAbility:   {"wiscar_ability_1"},
	FactorRealWorld: {"wiscar_real_world_1"},
}

// catalog holds the questionnaire with precomputed indices.
type catalog struct {
	questions  []Question
	byID       map[string]*Question
	byCategory map[Category][]Question
	answerKey  map[string]int
}

// c is the package-level catalog, built once by init().
var c *catalog

func init() {
	c = buildCatalog(seedQuestions(), seedAnswerKey())
	if err := validateCatalog(c.questions, c.answerKey); err != nil {
		panic(fmt.Sprintf("catalog: %v", err))
	}
}

func buildCatalog(questions []Question, key map[string]int) *catalog {
	cat := &catalog{
		questions:  questions,
		byID:       make(map[string]*Question, len(questions)),
		byCategory: make(map[Category][]Question),
		answerKey:  key,
	}
	for i := range cat.questions {
		q := &cat.questions[i]
		cat.byID[q.ID] = q
		cat.byCategory[q.Category] = append(cat.byCategory[q.Category], *q)
	}
	return cat
}

// All returns every question in presentation order.
func All() []Question {
	return cloneAll(c.questions)
}

// Len returns the number of questions in the catalog.
func Len() int {
	return len(c.questions)
}

// ByID returns the question with the given ID.
func ByID(id string) (Question, bool) {
	q, ok := c.byID[id]
	if !ok {
		return Question{}, false
	}
	return q.clone(), true
}

// ByCategory returns the questions in a category, in presentation order.
func ByCategory(cat Category) []Question {
	return cloneAll(c.byCategory[cat])
}

func cloneAll(qs []Question) []Question {
	out := make([]Question, len(qs))
	for i, q := range qs {
		out[i] = q.clone()
	}
	return out
}

// PsychometricIDs returns the question IDs averaged into the psychometric score.
func PsychometricIDs() []string {
	return slices.Clone(psychometricIDs)
}

// TechnicalIDs returns the question IDs graded for the technical score.
func TechnicalIDs() []string {
	return slices.Clone(technicalIDs)
}

// FactorIDs returns the question IDs that feed a WISCAR factor.
func FactorIDs(f Factor) []string {
	return slices.Clone(factorIDs[f])
}

// CorrectIndex returns the keyed option index for a graded question.
func CorrectIndex(id string) (int, bool) {
	i, ok := c.answerKey[id]
	return i, ok
}

// Validate runs the structural checks against the built-in catalog.
func Validate() error {
	return validateCatalog(c.questions, c.answerKey)
}
