package career

import (
	"math"
	"sort"
)

// MaxRecommendedSkills caps how many missing skills a recommendation carries.
const MaxRecommendedSkills = 3

// Recommend picks the role whose required skills overlap most with userSkills
// and ranks that role's missing skills by score.
//
// Preconditions: userSkills is non-empty, roles is non-empty and every role
// has at least one required skill. The dataset loader enforces these; callers
// reaching this function with degenerate tables get a zero Result.
func Recommend(userSkills []string, roles []Role, skills map[string]Skill) Result {
	if len(userSkills) == 0 || len(roles) == 0 {
		return Result{}
	}

	have := make(map[string]struct{}, len(userSkills))
	for _, s := range userSkills {
		have[s] = struct{}{}
	}

	// First role in table order wins ties, so only a strictly better match
	// may replace the current best.
	best := 0
	bestCount := matchCount(roles[0], have)
	for i := 1; i < len(roles); i++ {
		if c := matchCount(roles[i], have); c > bestCount {
			best = i
			bestCount = c
		}
	}

	matched := roles[best]
	pct := 0
	if total := len(matched.RequiredSkills); total > 0 {
		pct = int(math.Round(float64(bestCount) / float64(total) * 100))
	}

	missing := make([]RankedSkill, 0, len(matched.RequiredSkills))
	for _, name := range matched.RequiredSkills {
		if _, ok := have[name]; ok {
			continue
		}
		meta := skills[name] // zero value when the skills table has no entry
		missing = append(missing, RankedSkill{
			Name:       name,
			Score:      Score(meta),
			Demand:     meta.Demand,
			GrowthRate: meta.GrowthRate,
			Trend:      meta.Trend,
			Category:   meta.Category,
			AvgSalary:  meta.AvgSalary,
		})
	}

	// Stable keeps required-skill scan order for equal scores.
	sort.SliceStable(missing, func(i, j int) bool {
		return missing[i].Score > missing[j].Score
	})
	if len(missing) > MaxRecommendedSkills {
		missing = missing[:MaxRecommendedSkills]
	}

	return Result{
		Role:              matched.Name,
		MatchPercentage:   pct,
		RecommendedSkills: missing,
	}
}

// Rank scores every named skill and orders them best-first, keeping input
// order for equal scores. Unknown names rank with zero-valued metadata.
func Rank(names []string, skills map[string]Skill) []RankedSkill {
	out := make([]RankedSkill, 0, len(names))
	for _, name := range names {
		meta := skills[name]
		out = append(out, RankedSkill{
			Name:       name,
			Score:      Score(meta),
			Demand:     meta.Demand,
			GrowthRate: meta.GrowthRate,
			Trend:      meta.Trend,
			Category:   meta.Category,
			AvgSalary:  meta.AvgSalary,
		})
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Score > out[j].Score
	})
	return out
}

func matchCount(r Role, have map[string]struct{}) int {
	n := 0
	for _, s := range r.RequiredSkills {
		if _, ok := have[s]; ok {
			n++
		}
	}
	return n
}
