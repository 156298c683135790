package catalog

import "slices"

// Category groups questions by the score they feed.
type Category string

const (
	CategoryPsychometric Category = "psychometric"
	CategoryTechnical    Category = "technical"
	CategoryWiscar       Category = "wiscar"
)

// AllCategories returns all categories in presentation order.
func AllCategories() []Category {
	return []Category{
		CategoryPsychometric,
		CategoryTechnical,
		CategoryWiscar,
	}
}

// DisplayName returns a human-readable name for a category.
func (c Category) DisplayName() string {
	switch c {
	case CategoryPsychometric:
		return "Psychological Fit"
	case CategoryTechnical:
		return "Technical Readiness"
	case CategoryWiscar:
		return "WISCAR Framework"
	default:
		return string(c)
	}
}

// Kind is the response format of a question.
type Kind string

const (
	KindLikert         Kind = "likert"
	KindMultipleChoice Kind = "multiple-choice"
	KindAptitude       Kind = "aptitude"
)

// Question is a single immutable catalog entry.
type Question struct {
	ID          string
	Category    Category
	Subcategory string
	Prompt      string
	Options     []string
	Kind        Kind
}

// clone returns q with its own copy of Options. Several questions share one
// option scale in the seed data.
func (q Question) clone() Question {
	q.Options = slices.Clone(q.Options)
	return q
}

// ValidIndex reports whether i selects one of the question's options.
func (q Question) ValidIndex(i int) bool {
	return i >= 0 && i < len(q.Options)
}

// AnswerSet maps question IDs to a selected 0-based option index.
type AnswerSet map[string]int

// Get returns the selected index for id and whether it was answered.
func (a AnswerSet) Get(id string) (int, bool) {
	i, ok := a[id]
	return i, ok
}

// Clone returns an independent copy of the answer set.
func (a AnswerSet) Clone() AnswerSet {
	out := make(AnswerSet, len(a))
	for k, v := range a {
		out[k] = v
	}
	return out
}
