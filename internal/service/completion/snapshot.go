package completion

import (
	"bytes"
	"encoding/json"
	"strings"

	scoring "github.com/bulatminnakhmetov/tsunagu-backend/internal/completion"
	mediarepo "github.com/bulatminnakhmetov/tsunagu-backend/internal/repository/media"
	profilerepo "github.com/bulatminnakhmetov/tsunagu-backend/internal/repository/profile"
)

// ImageInput is an image list entry sent by a client that is still editing
type ImageInput struct {
	URL                string `json:"url,omitempty"`
	PendingFile        bool   `json:"pending_file,omitempty"`
	PendingStoragePath string `json:"pending_storage_path,omitempty"`
}

// EditBuffer holds unsaved edits. A nil field was not edited and keeps the
// persisted value; a non-nil field, even an empty one, replaces it. In JSON
// an omitted key is not edited while an explicit null clears the field.
type EditBuffer struct {
	Nickname         *string                  `json:"nickname,omitempty"`
	Gender           *string                  `json:"gender,omitempty"`
	Age              *int                     `json:"age,omitempty"`
	BirthDate        *string                  `json:"birth_date,omitempty"`
	Nationality      *string                  `json:"nationality,omitempty"`
	Residence        *string                  `json:"residence,omitempty"`
	SelfIntroduction *string                  `json:"self_introduction,omitempty"`
	Hobbies          *[]string                `json:"hobbies,omitempty"`
	Personality      *[]string                `json:"personality,omitempty"`
	LanguageSkills   *[]scoring.LanguageSkill `json:"language_skills,omitempty"`
	PlannedRegions   *[]string                `json:"planned_regions,omitempty"`
	Occupation       *string                  `json:"occupation,omitempty"`
	Height           *float64                 `json:"height,omitempty"`
	BodyType         *string                  `json:"body_type,omitempty"`
	MaritalStatus    *string                  `json:"marital_status,omitempty"`
	VisitSchedule    *string                  `json:"visit_schedule,omitempty"`
	TravelCompanion  *string                  `json:"travel_companion,omitempty"`
	Images           *[]ImageInput            `json:"images,omitempty"`
}

// UnmarshalJSON decodes edits keeping omitted keys apart from null ones
func (e *EditBuffer) UnmarshalJSON(data []byte) error {
	type plain EditBuffer
	var p plain
	if err := json.Unmarshal(data, &p); err != nil {
		return err
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	*e = EditBuffer(p)
	for key, value := range raw {
		if bytes.Equal(bytes.TrimSpace(value), []byte("null")) {
			e.clear(strings.ToLower(key))
		}
	}
	return nil
}

// clear marks a field as edited to its empty value
func (e *EditBuffer) clear(key string) {
	switch key {
	case "nickname":
		e.Nickname = new(string)
	case "gender":
		e.Gender = new(string)
	case "age":
		e.Age = new(int)
	case "birth_date":
		e.BirthDate = new(string)
	case "nationality":
		e.Nationality = new(string)
	case "residence":
		e.Residence = new(string)
	case "self_introduction":
		e.SelfIntroduction = new(string)
	case "hobbies":
		e.Hobbies = &[]string{}
	case "personality":
		e.Personality = &[]string{}
	case "language_skills":
		e.LanguageSkills = &[]scoring.LanguageSkill{}
	case "planned_regions":
		e.PlannedRegions = &[]string{}
	case "occupation":
		e.Occupation = new(string)
	case "height":
		e.Height = new(float64)
	case "body_type":
		e.BodyType = new(string)
	case "marital_status":
		e.MaritalStatus = new(string)
	case "visit_schedule":
		e.VisitSchedule = new(string)
	case "travel_companion":
		e.TravelCompanion = new(string)
	case "images":
		e.Images = &[]ImageInput{}
	}
}

// Stored is what the repositories returned for a user. Record is nil for a
// user who has not saved a profile yet.
type Stored struct {
	Record *profilerepo.Record
	Skills []profilerepo.LanguageSkill
	Images []scoring.ImageRef
}

// draft is the merged, not yet cohort-mapped profile
type draft struct {
	snapshot scoring.ProfileSnapshot
	// residence is kept aside until the cohort is known
	residence string
}

func mergeDraft(stored Stored, edits *EditBuffer) draft {
	var d draft
	p := &d.snapshot

	if rec := stored.Record; rec != nil {
		p.Nickname = rec.Nickname.String
		p.Gender = rec.Gender.String
		p.Age = int(rec.Age.Int64)
		p.BirthDate = rec.BirthDateString()
		p.Nationality = rec.Nationality.String
		p.SelfIntroduction = rec.SelfIntroduction.String
		p.Hobbies = rec.Hobbies
		p.Personality = rec.Personality
		p.PlannedRegions = rec.PlannedRegions
		p.Occupation = rec.Occupation.String
		p.Height = rec.Height.Float64
		p.BodyType = rec.BodyType.String
		p.MaritalStatus = rec.MaritalStatus.String
		p.VisitSchedule = rec.VisitSchedule.String
		p.TravelCompanion = rec.TravelCompanion.String
		d.residence = rec.HomeRegion.String
	}

	p.LanguageSkills = make([]scoring.LanguageSkill, 0, len(stored.Skills))
	for _, s := range stored.Skills {
		p.LanguageSkills = append(p.LanguageSkills, scoring.LanguageSkill{
			Language: s.Language.String,
			Level:    s.Level.String,
		})
	}
	p.Images = stored.Images

	if edits != nil {
		applyEdits(&d, edits)
	}

	normalize(p)
	d.residence = strings.TrimSpace(d.residence)
	return d
}

func applyEdits(d *draft, e *EditBuffer) {
	p := &d.snapshot

	setString(&p.Nickname, e.Nickname)
	setString(&p.Gender, e.Gender)
	setString(&p.BirthDate, e.BirthDate)
	setString(&p.Nationality, e.Nationality)
	setString(&d.residence, e.Residence)
	setString(&p.SelfIntroduction, e.SelfIntroduction)
	setString(&p.Occupation, e.Occupation)
	setString(&p.BodyType, e.BodyType)
	setString(&p.MaritalStatus, e.MaritalStatus)
	setString(&p.VisitSchedule, e.VisitSchedule)
	setString(&p.TravelCompanion, e.TravelCompanion)
	setList(&p.Hobbies, e.Hobbies)
	setList(&p.Personality, e.Personality)
	setList(&p.PlannedRegions, e.PlannedRegions)

	if e.Age != nil {
		p.Age = *e.Age
	}
	if e.Height != nil {
		p.Height = *e.Height
	}
	if e.LanguageSkills != nil {
		p.LanguageSkills = *e.LanguageSkills
	}
	if e.Images != nil {
		images := make([]scoring.ImageRef, len(*e.Images))
		for i, img := range *e.Images {
			images[i] = scoring.ImageRef(img)
		}
		p.Images = images
	}
}

func setString(dst *string, v *string) {
	if v != nil {
		*dst = *v
	}
}

func setList(dst *[]string, v *[]string) {
	if v != nil {
		*dst = *v
	}
}

// normalize trims free text and turns missing lists into empty ones.
// Sentinel values are left in place: recognising them is the scorer's job.
func normalize(p *scoring.ProfileSnapshot) {
	p.Nickname = strings.TrimSpace(p.Nickname)
	p.Gender = strings.TrimSpace(p.Gender)
	p.BirthDate = strings.TrimSpace(p.BirthDate)
	p.Nationality = strings.TrimSpace(p.Nationality)
	p.SelfIntroduction = strings.TrimSpace(p.SelfIntroduction)
	p.Occupation = strings.TrimSpace(p.Occupation)
	p.BodyType = strings.TrimSpace(p.BodyType)
	p.MaritalStatus = strings.TrimSpace(p.MaritalStatus)
	p.VisitSchedule = strings.TrimSpace(p.VisitSchedule)
	p.TravelCompanion = strings.TrimSpace(p.TravelCompanion)

	p.Hobbies = compactList(p.Hobbies)
	p.Personality = compactList(p.Personality)
	p.PlannedRegions = compactList(p.PlannedRegions)

	if p.LanguageSkills == nil {
		p.LanguageSkills = []scoring.LanguageSkill{}
	}
	if p.Images == nil {
		p.Images = []scoring.ImageRef{}
	}
	if p.Age < 0 {
		p.Age = 0
	}
	if p.Height < 0 {
		p.Height = 0
	}
}

// compactList returns a new list without blank entries
func compactList(list []string) []string {
	out := make([]string, 0, len(list))
	for _, v := range list {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	return out
}

// snapshotFor finishes a draft for a cohort. The stored home region is
// the residence of cohort-A users only.
func (d draft) snapshotFor(cohort scoring.Cohort) scoring.ProfileSnapshot {
	p := d.snapshot
	if cohort == scoring.CohortA {
		p.Residence = d.residence
	}
	return p
}

// BuildSnapshot merges edits over the stored profile and normalizes the
// result into the shape the scorer expects
func BuildSnapshot(stored Stored, edits *EditBuffer, cohort scoring.Cohort) scoring.ProfileSnapshot {
	return mergeDraft(stored, edits).snapshotFor(cohort)
}

// imagesFromRows converts stored image rows into scorer references
func imagesFromRows(rows []mediarepo.Image, storage URLResolver) []scoring.ImageRef {
	images := make([]scoring.ImageRef, 0, len(rows))
	for _, row := range rows {
		var img scoring.ImageRef
		switch row.Status {
		case mediarepo.StatusUploaded:
			img.URL = row.URL.String
			if img.URL == "" && row.StoragePath.String != "" {
				if storage != nil {
					img.URL = storage.GetFileURL(row.StoragePath.String)
				} else {
					// без резолвера объект всё равно лежит в хранилище
					img.PendingStoragePath = row.StoragePath.String
				}
			}
		case mediarepo.StatusPending:
			img.PendingStoragePath = row.StoragePath.String
		default:
			continue
		}
		images = append(images, img)
	}
	return images
}
