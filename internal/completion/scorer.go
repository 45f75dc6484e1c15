// Package completion scores how complete a user profile is.
//
// Scoring is a pure function of a ProfileSnapshot and a Cohort: every
// checklist item is worth one unit, the cohort fixes the checklist and its
// length, and the percentage is floored. The package never fails and never
// modifies its input, so it is safe to call concurrently and repeatedly
// while edits stream in.
package completion

// ItemVerdict is the outcome of one checklist item
type ItemVerdict struct {
	Item    Item `json:"item"`
	Present bool `json:"present"`
}

// Result is the completeness of one snapshot
type Result struct {
	Cohort         Cohort        `json:"cohort"`
	CompletedCount int           `json:"completed_count"`
	TotalCount     int           `json:"total_count"`
	Percentage     int           `json:"percentage"`
	HasImage       bool          `json:"has_image"`
	Items          []ItemVerdict `json:"items"`
	Missing        []Item        `json:"missing"`
}

// Observer receives every computed result. Implementations must not modify
// the snapshot.
type Observer interface {
	ObserveCompletion(snapshot *ProfileSnapshot, result Result)
}

// Scorer computes completion results and reports them to an optional observer
type Scorer struct {
	observer Observer
}

// NewScorer creates a scorer. observer may be nil.
func NewScorer(observer Observer) *Scorer {
	return &Scorer{observer: observer}
}

// Score computes the completion of profile for cohort
func (s *Scorer) Score(profile ProfileSnapshot, cohort Cohort) Result {
	result := Score(profile, cohort)
	if s != nil && s.observer != nil {
		s.observer.ObserveCompletion(&profile, result)
	}
	return result
}

// Score computes the completion of profile for cohort
func Score(profile ProfileSnapshot, cohort Cohort) Result {
	checks := checklistFor(cohort)

	result := Result{
		Cohort:     cohort,
		TotalCount: len(checks),
		HasImage:   HasImage(profile.Images),
		Items:      make([]ItemVerdict, 0, len(checks)),
		Missing:    []Item{},
	}

	for _, ch := range checks {
		present := ch.present(&profile)
		result.Items = append(result.Items, ItemVerdict{Item: ch.item, Present: present})
		if present {
			result.CompletedCount++
		} else {
			result.Missing = append(result.Missing, ch.item)
		}
	}

	result.Percentage = percentage(result.CompletedCount, result.TotalCount)
	return result
}

func percentage(completed, total int) int {
	if total <= 0 {
		return 0
	}
	// integer division floors for non-negative operands
	return completed * 100 / total
}
