package dto

type SkillRankResponse struct {
	RankedSkills []RecommendedSkillResponse `json:"rankedSkills"`
	Count        int                        `json:"count"`
}
