package catalog

import (
	"fmt"
	"strings"
)

// likertOptionCount is the option count the (index+1)*20 rescale assumes.
const likertOptionCount = 5

// validateCatalog performs all structural checks on the given questions and key.
// Returns a combined error describing all problems found, or nil if valid.
func validateCatalog(questions []Question, key map[string]int) error {
	var errs []string

	byID := make(map[string]Question, len(questions))
	for _, q := range questions {
		if _, dup := byID[q.ID]; dup {
			errs = append(errs, fmt.Sprintf("duplicate question ID: %q", q.ID))
		}
		byID[q.ID] = q

		if strings.TrimSpace(q.Prompt) == "" {
			errs = append(errs, fmt.Sprintf("question %q has an empty prompt", q.ID))
		}
		if len(q.Options) < 2 {
			errs = append(errs, fmt.Sprintf("question %q needs at least 2 options, got %d", q.ID, len(q.Options)))
		}
		switch q.Category {
		case CategoryPsychometric, CategoryTechnical, CategoryWiscar:
		default:
			errs = append(errs, fmt.Sprintf("question %q has unknown category %q", q.ID, q.Category))
		}
	}

	// Rescaled questions must have exactly five options.
	rescaled := append([]string{}, psychometricIDs...)
	for _, f := range AllFactors() {
		rescaled = append(rescaled, factorIDs[f]...)
	}
	for _, id := range rescaled {
		q, ok := byID[id]
		if !ok {
			errs = append(errs, fmt.Sprintf("scored question %q is not in the catalog", id))
			continue
		}
		if len(q.Options) != likertOptionCount {
			errs = append(errs, fmt.Sprintf("scored question %q must have %d options, got %d", id, likertOptionCount, len(q.Options)))
		}
	}

	for _, id := range technicalIDs {
		q, ok := byID[id]
		if !ok {
			errs = append(errs, fmt.Sprintf("technical question %q is not in the catalog", id))
			continue
		}
		idx, keyed := key[id]
		if !keyed {
			errs = append(errs, fmt.Sprintf("technical question %q has no answer key", id))
			continue
		}
		if !q.ValidIndex(idx) {
			errs = append(errs, fmt.Sprintf("answer key for %q is out of range: %d", id, idx))
		}
	}

	for id := range key {
		if _, ok := byID[id]; !ok {
			errs = append(errs, fmt.Sprintf("answer key references nonexistent question %q", id))
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("catalog validation failed:\n  %s", strings.Join(errs, "\n  "))
	}
	return nil
}
