package completion

import "fmt"

// Cohort selects the checklist a profile is scored against
type Cohort string

const (
	CohortA Cohort = "cohort-A"
	CohortB Cohort = "cohort-B"
)

// Cohorts lists every known cohort
var Cohorts = []Cohort{CohortA, CohortB}

// ParseCohort converts a raw tag into a Cohort
func ParseCohort(s string) (Cohort, error) {
	switch Cohort(s) {
	case CohortA, CohortB:
		return Cohort(s), nil
	default:
		return "", fmt.Errorf("unknown cohort %q", s)
	}
}

func (c Cohort) String() string {
	return string(c)
}

// Item names one checklist entry
type Item string

const (
	ItemNickname         Item = "nickname"
	ItemGender           Item = "gender"
	ItemAge              Item = "age"
	ItemBirthDate        Item = "birth_date"
	ItemNationality      Item = "nationality"
	ItemResidence        Item = "residence"
	ItemLanguageSkills   Item = "language_skills"
	ItemHobbies          Item = "hobbies"
	ItemPersonality      Item = "personality"
	ItemSelfIntroduction Item = "self_introduction"
	ItemOccupation       Item = "occupation"
	ItemHeight           Item = "height"
	ItemBodyType         Item = "body_type"
	ItemMaritalStatus    Item = "marital_status"
	ItemPlannedRegions   Item = "planned_regions"
	ItemVisitSchedule    Item = "visit_schedule"
	ItemTravelCompanion  Item = "travel_companion"
	ItemImages           Item = "images"
)

type check struct {
	item    Item
	present func(*ProfileSnapshot) bool
}

// The checklists are fixed: their lengths are the score denominators.
var (
	cohortAChecklist = []check{
		{ItemNickname, hasNickname},
		{ItemGender, hasGender},
		{ItemAge, hasAge},
		{ItemBirthDate, hasBirthDate},
		{ItemResidence, hasResidence},
		{ItemLanguageSkills, hasLanguageSkills},
		{ItemHobbies, hasHobbies},
		{ItemPersonality, hasPersonality},
		{ItemSelfIntroduction, hasSelfIntroduction},
		{ItemOccupation, hasOccupation},
		{ItemHeight, hasHeight},
		{ItemBodyType, hasBodyType},
		{ItemMaritalStatus, hasMaritalStatus},
		{ItemImages, hasImages},
	}

	cohortBChecklist = []check{
		{ItemNickname, hasNickname},
		{ItemGender, hasGender},
		{ItemAge, hasAge},
		{ItemBirthDate, hasBirthDate},
		{ItemNationality, hasNationality},
		{ItemLanguageSkills, hasLanguageSkills},
		{ItemHobbies, hasHobbies},
		{ItemPersonality, hasPersonality},
		{ItemSelfIntroduction, hasSelfIntroduction},
		{ItemOccupation, hasOccupation},
		{ItemHeight, hasHeight},
		{ItemBodyType, hasBodyType},
		{ItemMaritalStatus, hasMaritalStatus},
		{ItemPlannedRegions, hasPlannedRegions},
		{ItemVisitSchedule, hasVisitSchedule},
		{ItemTravelCompanion, hasTravelCompanion},
		{ItemImages, hasImages},
	}
)

const (
	CohortATotal = 14
	CohortBTotal = 17
)

func checklistFor(c Cohort) []check {
	switch c {
	case CohortA:
		return cohortAChecklist
	case CohortB:
		return cohortBChecklist
	default:
		return nil
	}
}

// Checklist returns the ordered item names of a cohort
func Checklist(c Cohort) []Item {
	checks := checklistFor(c)
	items := make([]Item, len(checks))
	for i, ch := range checks {
		items[i] = ch.item
	}
	return items
}

// TotalItems returns the denominator for a cohort, 0 for an unknown one
func TotalItems(c Cohort) int {
	return len(checklistFor(c))
}
