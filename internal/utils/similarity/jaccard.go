package similarity

import "strings"

// Named is anything with an id and a display name that can be grouped.
type Named struct {
	ID   string
	Name string
}

// NameSimilarity is the Jaccard similarity of the lowercase whitespace tokens of two names.
// Identical names (after normalization) score 1.
func NameSimilarity(a, b string) float64 {
	a = strings.ToLower(strings.TrimSpace(a))
	b = strings.ToLower(strings.TrimSpace(b))
	if a == b {
		return 1
	}

	tokensA := tokenSet(a)
	tokensB := tokenSet(b)
	if len(tokensA) == 0 || len(tokensB) == 0 {
		return 0
	}

	intersection := 0
	for t := range tokensA {
		if _, ok := tokensB[t]; ok {
			intersection++
		}
	}
	union := len(tokensA) + len(tokensB) - intersection
	return float64(intersection) / float64(union)
}

func tokenSet(s string) map[string]struct{} {
	set := make(map[string]struct{})
	for _, f := range strings.Fields(s) {
		set[f] = struct{}{}
	}
	return set
}

// Group clusters items whose name similarity to a group's first member is at least threshold.
// Only groups with two or more members are returned, in input order.
func Group(items []Named, threshold float64) [][]Named {
	var groups [][]Named
	processed := make(map[int]bool)

	for i, first := range items {
		if processed[i] {
			continue
		}
		group := []Named{first}
		for j := i + 1; j < len(items); j++ {
			if processed[j] {
				continue
			}
			if NameSimilarity(first.Name, items[j].Name) >= threshold {
				group = append(group, items[j])
				processed[j] = true
			}
		}
		if len(group) > 1 {
			processed[i] = true
			groups = append(groups, group)
		}
	}
	return groups
}
