package completion

import (
	"strings"

	scoring "github.com/bulatminnakhmetov/tsunagu-backend/internal/completion"
)

const genderMale = "male"

// Classifier decides which checklist a user is scored against.
// Foreign male members fill in travel plans (cohort-B); everybody else
// fills in where they live (cohort-A).
type Classifier struct {
	homeNationality string
}

// NewClassifier creates a classifier for the platform's home country
func NewClassifier(homeNationality string) *Classifier {
	return &Classifier{homeNationality: strings.TrimSpace(homeNationality)}
}

// Classify returns the cohort for the given gender and nationality
func (c *Classifier) Classify(gender, nationality string) scoring.Cohort {
	if !strings.EqualFold(strings.TrimSpace(gender), genderMale) {
		return scoring.CohortA
	}
	nationality = strings.TrimSpace(nationality)
	if scoring.IsSentinel(nationality, scoring.NationalitySentinels) {
		return scoring.CohortA
	}
	if strings.EqualFold(nationality, c.homeNationality) {
		return scoring.CohortA
	}
	return scoring.CohortB
}
