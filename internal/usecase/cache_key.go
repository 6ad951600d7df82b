package usecase

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"sort"
	"strings"
)

// RecommendCacheKey derives a stable key from the caller's skill set. Skills
// are trimmed, deduplicated and sorted so that set-equal requests share an
// entry. Case is preserved: matching against the roles table is exact, so
// "node" and "Node" are different inputs with different results.
func RecommendCacheKey(skills []string) string {
	norm := normalizeSkills(skills)

	b, _ := json.Marshal(norm)
	sum := sha256.Sum256(b)
	return "career:recommend:" + hex.EncodeToString(sum[:])
}

func normalizeSkills(skills []string) []string {
	out := cleanSkills(skills)
	sort.Strings(out)
	return out
}

// cleanSkills trims whitespace and drops empties and duplicates while
// keeping the caller's order.
func cleanSkills(skills []string) []string {
	seen := make(map[string]struct{}, len(skills))
	out := make([]string, 0, len(skills))
	for _, s := range skills {
		s = strings.TrimSpace(s)
		if s == "" {
			continue
		}
		if _, ok := seen[s]; ok {
			continue
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}
	return out
}
