package dto

// RecommendedSkillResponse carries one missing skill with its ranking score
// and the full set of metadata fields from the skills table. Fields default
// to zero values when the skill has no table entry.
type RecommendedSkillResponse struct {
	Skill      string  `json:"skill"`
	Score      float64 `json:"score"`
	Demand     int     `json:"demand"`
	GrowthRate int     `json:"growthRate"`
	Trend      string  `json:"trend"`
	Category   string  `json:"category"`
	AvgSalary  int     `json:"avgSalary"`
}

type RecommendationResponse struct {
	Role              string                     `json:"role"`
	MatchPercentage   int                        `json:"matchPercentage"`
	RecommendedSkills []RecommendedSkillResponse `json:"recommendedSkills"`
}
