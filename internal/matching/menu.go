package matching

import (
	"sort"
	"strings"

	"foodielink/internal/preferences"
)

// ItemMatch is the resolved per-item result surfaced to the menu UI.
type ItemMatch struct {
	Score     int       `json:"score"`
	MatchType MatchType `json:"match_type"`
	Reason    string    `json:"reason,omitempty"`
	Warning   string    `json:"warning,omitempty"`
}

// MenuAnalysis is the full menu result: items ranked best-first, the
// per-id detail map, and the single top-scoring item.
type MenuAnalysis struct {
	SortedItems []MenuItem           `json:"sorted_items"`
	DetailsByID map[string]ItemMatch `json:"details_by_id"`
	TopMatchID  string               `json:"top_match_id,omitempty"`
}

// Score gaps under this are treated as ties and broken by description
// length, so richer content wins.
const tieBreakGap = 10

// AnalyzeMenu scores every item, resolves its tier, and ranks the menu.
// Recomputation is full; nothing is cached here.
func AnalyzeMenu(items []MenuItem, p preferences.Profile) MenuAnalysis {
	details := make(map[string]ItemMatch, len(items))
	scores := make(map[string]int, len(items))

	for _, item := range items {
		raw := ScoreMenuItem(item, p)
		matchType, text := ResolveMatchType(raw.Score)

		result := ItemMatch{Score: raw.Score, MatchType: matchType}
		if matchType == MatchWarning {
			// Scorer warnings name the conflicting restriction or
			// ingredient; fall back to the resolver's generic text.
			result.Warning = raw.Warning
			if result.Warning == "" {
				result.Warning = text
			}
		} else if len(raw.Factors) > 0 {
			result.Reason = strings.Join(raw.Factors, ". ")
		} else {
			result.Reason = text
		}

		details[item.ID] = result
		scores[item.ID] = raw.Score
	}

	sorted := make([]MenuItem, len(items))
	copy(sorted, items)
	sort.SliceStable(sorted, func(i, j int) bool {
		si, sj := scores[sorted[i].ID], scores[sorted[j].ID]
		diff := si - sj
		if diff < 0 {
			diff = -diff
		}
		if diff < tieBreakGap {
			return len(sorted[i].Description) > len(sorted[j].Description)
		}
		return si > sj
	})

	topMatchID := ""
	if len(sorted) > 0 {
		topMatchID = sorted[0].ID
	}

	return MenuAnalysis{
		SortedItems: sorted,
		DetailsByID: details,
		TopMatchID:  topMatchID,
	}
}
