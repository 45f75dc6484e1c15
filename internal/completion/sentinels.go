package completion

import "strings"

// NoneValue is the default option of most profile selects
const NoneValue = "none"

// Values that select inputs submit before the user picks anything.
// They mean "absent" and are compared by equality after trimming.
var (
	NationalitySentinels = []string{
		"",
		NoneValue,
		"選択してください",
		"国籍を選択",
		"Select nationality",
		"Please select",
	}

	OccupationSentinels    = []string{"", NoneValue}
	BodyTypeSentinels      = []string{"", NoneValue}
	MaritalStatusSentinels = []string{"", NoneValue}
	LanguageSentinels      = []string{"", NoneValue}

	VisitScheduleSentinels = []string{
		"",
		NoneValue,
		"no-entry",
		"not-specified",
	}

	TravelCompanionSentinels = []string{
		"",
		NoneValue,
		"no-entry",
		"not-specified",
		"undecided",
	}
)

// SelfIntroductionTemplates are pre-filled by the sign-up flow so the form
// can be submitted before the user writes anything.
var SelfIntroductionTemplates = []string{
	"はじめまして。プロフィールをご覧いただきありがとうございます。よろしくお願いします。",
	"後ほどプロフィールを更新します。",
	"Nice to meet you! Thank you for visiting my profile.",
	"I will update my profile soon.",
}

// PlaceholderImageURLs are default images rendered for profiles without a photo
var PlaceholderImageURLs = []string{
	"/images/placeholder.png",
	"/images/no-image.png",
	"/placeholder-avatar.svg",
}

const inlineImagePrefix = "data:"

func isOneOf(value string, set []string) bool {
	for _, s := range set {
		if value == s {
			return true
		}
	}
	return false
}

// hasValue reports whether a trimmed value is filled and not a sentinel
func hasValue(value string, sentinels []string) bool {
	v := strings.TrimSpace(value)
	if v == "" {
		return false
	}
	return !isOneOf(v, sentinels)
}

// IsSentinel reports whether value is one of the given sentinels after trimming
func IsSentinel(value string, sentinels []string) bool {
	return isOneOf(strings.TrimSpace(value), sentinels)
}
