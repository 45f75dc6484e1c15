package completion

// LanguageSkill is one language/level row of a profile
type LanguageSkill struct {
	Language string `json:"language"`
	Level    string `json:"level"`
}

// ImageRef describes one entry of the profile image list.
//
// An image may be mid-upload when a profile is scored, so a reference can
// be in one of three states: a resolvable URL (stored or a local preview),
// a pending local file, or a reserved storage path whose upload has not
// been committed yet.
type ImageRef struct {
	URL                string `json:"url,omitempty"`
	PendingFile        bool   `json:"pending_file,omitempty"`
	PendingStoragePath string `json:"pending_storage_path,omitempty"`
}

// ProfileSnapshot is what is currently known about a profile.
// Empty strings, zero numbers and empty lists mean "absent".
type ProfileSnapshot struct {
	Nickname         string          `json:"nickname,omitempty"`
	Gender           string          `json:"gender,omitempty"`
	Age              int             `json:"age,omitempty"`
	BirthDate        string          `json:"birth_date,omitempty"`
	Nationality      string          `json:"nationality,omitempty"`
	Residence        string          `json:"residence,omitempty"`
	SelfIntroduction string          `json:"self_introduction,omitempty"`
	Hobbies          []string        `json:"hobbies,omitempty"`
	Personality      []string        `json:"personality,omitempty"`
	LanguageSkills   []LanguageSkill `json:"language_skills,omitempty"`
	PlannedRegions   []string        `json:"planned_regions,omitempty"`
	Occupation       string          `json:"occupation,omitempty"`
	Height           float64         `json:"height,omitempty"`
	BodyType         string          `json:"body_type,omitempty"`
	MaritalStatus    string          `json:"marital_status,omitempty"`
	VisitSchedule    string          `json:"visit_schedule,omitempty"`
	TravelCompanion  string          `json:"travel_companion,omitempty"`
	Images           []ImageRef      `json:"images,omitempty"`
}
