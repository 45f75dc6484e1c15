package completion

import "strings"

// Presence rules, one per semantic field. Each rule reads a single field.

func hasNickname(p *ProfileSnapshot) bool {
	return strings.TrimSpace(p.Nickname) != ""
}

func hasGender(p *ProfileSnapshot) bool {
	return strings.TrimSpace(p.Gender) != ""
}

func hasAge(p *ProfileSnapshot) bool {
	return p.Age > 0
}

func hasBirthDate(p *ProfileSnapshot) bool {
	return strings.TrimSpace(p.BirthDate) != ""
}

func hasNationality(p *ProfileSnapshot) bool {
	return hasValue(p.Nationality, NationalitySentinels)
}

func hasResidence(p *ProfileSnapshot) bool {
	return strings.TrimSpace(p.Residence) != ""
}

func hasSelfIntroduction(p *ProfileSnapshot) bool {
	return hasValue(p.SelfIntroduction, SelfIntroductionTemplates)
}

func hasHobbies(p *ProfileSnapshot) bool {
	return len(p.Hobbies) > 0
}

func hasPersonality(p *ProfileSnapshot) bool {
	return len(p.Personality) > 0
}

func hasPlannedRegions(p *ProfileSnapshot) bool {
	return len(p.PlannedRegions) > 0
}

func hasOccupation(p *ProfileSnapshot) bool {
	return hasValue(p.Occupation, OccupationSentinels)
}

func hasHeight(p *ProfileSnapshot) bool {
	return p.Height > 0
}

func hasBodyType(p *ProfileSnapshot) bool {
	return hasValue(p.BodyType, BodyTypeSentinels)
}

func hasMaritalStatus(p *ProfileSnapshot) bool {
	return hasValue(p.MaritalStatus, MaritalStatusSentinels)
}

func hasVisitSchedule(p *ProfileSnapshot) bool {
	return hasValue(p.VisitSchedule, VisitScheduleSentinels)
}

func hasTravelCompanion(p *ProfileSnapshot) bool {
	return hasValue(p.TravelCompanion, TravelCompanionSentinels)
}

// ValidLanguageSkill reports whether both sides of the pair are filled in
func ValidLanguageSkill(skill LanguageSkill) bool {
	return hasValue(skill.Language, LanguageSentinels) && hasValue(skill.Level, LanguageSentinels)
}

func hasLanguageSkills(p *ProfileSnapshot) bool {
	for _, skill := range p.LanguageSkills {
		if ValidLanguageSkill(skill) {
			return true
		}
	}
	return false
}

// HasStoredURL reports whether the reference carries a URL that can be
// displayed. Inline base64 payloads are a transitional form, not a stored image.
func (img ImageRef) HasStoredURL() bool {
	url := strings.TrimSpace(img.URL)
	if url == "" {
		return false
	}
	if strings.HasPrefix(url, inlineImagePrefix) {
		return false
	}
	return !isOneOf(url, PlaceholderImageURLs)
}

// Present reports whether the image counts towards completion
func (img ImageRef) Present() bool {
	return img.HasStoredURL() || img.PendingFile || strings.TrimSpace(img.PendingStoragePath) != ""
}

// HasImage reports whether at least one image reference is present
func HasImage(images []ImageRef) bool {
	for _, img := range images {
		if img.Present() {
			return true
		}
	}
	return false
}

func hasImages(p *ProfileSnapshot) bool {
	return HasImage(p.Images)
}
