package scoring

// Band is a three-way score classification.
type Band int

const (
	BandLow Band = iota
	BandMedium
	BandHigh
)

// String returns the lowercase band name.
func (b Band) String() string {
	switch b {
	case BandHigh:
		return "high"
	case BandMedium:
		return "medium"
	default:
		return "low"
	}
}

// Category score thresholds.
const (
	highScoreThreshold   = 85
	mediumScoreThreshold = 50
)

// BandFor classifies a psychometric or technical score.
func BandFor(score int) Band {
	switch {
	case score >= highScoreThreshold:
		return BandHigh
	case score >= mediumScoreThreshold:
		return BandMedium
	default:
		return BandLow
	}
}

type interpretation struct {
	label   string
	details string
}

var psychometricText = map[Band]interpretation{
	BandHigh: {
		label:   "Highly aligned personality and motivation for VR Simulation",
		details: "Your personality traits and motivation strongly align with success in VR simulation engineering. You show high interest, openness to new experiences, and strong motivation for technical challenges.",
	},
	BandMedium: {
		label:   "Moderate alignment; potential with skill development",
		details: "You have a good foundation of personality traits for VR engineering. With focused skill development and experience, you could thrive in this field.",
	},
	BandLow: {
		label:   "Lower alignment; consider exploring other tech fields",
		details: "While VR simulation engineering might not be the perfect fit based on personality alignment, consider related fields like general software development or UI/UX design.",
	},
}

var technicalText = map[Band]interpretation{
	BandHigh: {
		label:   "Strong technical foundation, ready for advanced learning",
		details: "You demonstrate excellent technical knowledge and aptitude. You're well-prepared to dive into advanced VR development concepts and tools.",
	},
	BandMedium: {
		label:   "Basic foundation present, further study recommended",
		details: "You have a solid starting point for VR development. Focus on strengthening your programming fundamentals and 3D graphics concepts.",
	},
	BandLow: {
		label:   "Beginner level, needs foundational courses",
		details: "Consider starting with programming fundamentals, basic 3D graphics concepts, and introductory game development before specializing in VR.",
	},
}

// Tier is the overall recommendation bucket.
type Tier int

const (
	TierNo Tier = iota
	TierMaybe
	TierYes
)

// Overall score thresholds.
const (
	yesThreshold   = 75
	maybeThreshold = 50
)

// TierFor classifies an overall score.
func TierFor(overall int) Tier {
	switch {
	case overall >= yesThreshold:
		return TierYes
	case overall >= maybeThreshold:
		return TierMaybe
	default:
		return TierNo
	}
}

// String returns the short tier name.
func (t Tier) String() string {
	switch t {
	case TierYes:
		return "yes"
	case TierMaybe:
		return "maybe"
	default:
		return "no"
	}
}

// Label returns the recommendation text for the tier.
func (t Tier) Label() string {
	return recommendations[t].label
}

// NextSteps returns a fresh copy of the tier's ordered action plan.
func (t Tier) NextSteps() []string {
	steps := recommendations[t].steps
	out := make([]string, len(steps))
	copy(out, steps)
	return out
}

type recommendation struct {
	label string
	steps []string
}

var recommendations = map[Tier]recommendation{
	TierYes: {
		label: "Yes - Pursue VR Simulation Engineering",
		steps: []string{
			"Start with Unity or Unreal Engine tutorials",
			"Practice C# programming fundamentals",
			"Join VR development communities online",
			"Build simple VR projects to create a portfolio",
			"Consider formal education or bootcamps in game development",
		},
	},
	TierMaybe: {
		label: "Maybe - Develop skills first, then reassess",
		steps: []string{
			"Strengthen programming fundamentals",
			"Learn 3D graphics and mathematics basics",
			"Explore VR experiences to build interest",
			"Take introductory courses in game development",
			"Reassess after 6 months of skill building",
		},
	},
	TierNo: {
		label: "No - Consider alternative paths",
		steps: []string{
			"Explore general software development",
			"Consider UI/UX design for tech products",
			"Look into 2D game development",
			"Investigate web development or mobile apps",
			"Focus on your strongest areas of interest",
		},
	},
}
