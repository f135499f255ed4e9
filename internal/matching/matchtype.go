package matching

// MatchType is the discrete tier a score falls into.
type MatchType string

const (
	MatchPerfect MatchType = "perfect"
	MatchGood    MatchType = "good"
	MatchNeutral MatchType = "neutral"
	MatchWarning MatchType = "warning"
)

const (
	dietaryMismatchText = "This item does not match your dietary preferences"
	lowScoreWarningText = "This item may not match your preferences well"
	perfectMatchText    = "Perfect match for your preferences"
	goodMatchText       = "Good match for your preferences"
)

// ResolveMatchType maps a score to its tier and canned text. Fixed,
// total, monotonic step function. A score of exactly 0 gets the
// dedicated dietary-mismatch text, distinct from the generic low-score
// warning.
func ResolveMatchType(score int) (MatchType, string) {
	switch {
	case score == 0:
		return MatchWarning, dietaryMismatchText
	case score >= 90:
		return MatchPerfect, perfectMatchText
	case score >= 75:
		return MatchGood, goodMatchText
	case score >= 50:
		return MatchNeutral, ""
	default:
		return MatchWarning, lowScoreWarningText
	}
}
