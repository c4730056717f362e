package domain

import (
	"sort"
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"
)

// maxSuggestDistance bounds the edit distance of a typo suggestion.
const maxSuggestDistance = 2

// suggestTarget finds the known name closest to name. Names that contain the
// query as a subsequence are preferred; otherwise names that are a
// subsequence of the query or within a small edit distance of it are
// considered. It returns "" when nothing is close.
func suggestTarget(name string, known []string) string {
	if name == "" || len(known) == 0 {
		return ""
	}

	ranks := fuzzy.RankFindFold(name, known)
	if len(ranks) == 0 {
		query := strings.ToLower(name)

		for i, candidate := range known {
			distance := fuzzy.LevenshteinDistance(query, strings.ToLower(candidate))
			if distance > maxSuggestDistance && !fuzzy.MatchFold(candidate, name) {
				continue
			}

			ranks = append(ranks, fuzzy.Rank{
				Source:        name,
				Target:        candidate,
				Distance:      distance,
				OriginalIndex: i,
			})
		}
	}

	if len(ranks) == 0 {
		return ""
	}

	sort.Stable(ranks)

	return ranks[0].Target
}
