package career

// Role is a career role defined by the skills it requires. Roles are loaded
// once at startup and never mutated afterwards.
type Role struct {
	Name           string
	RequiredSkills []string
}

// Skill carries the market metadata for a single named skill. The zero value
// is used when a required skill has no entry in the skills table.
type Skill struct {
	Name       string
	Demand     int
	GrowthRate int
	Trend      string
	Category   string
	AvgSalary  int
}

type RankedSkill struct {
	Name       string
	Score      float64
	Demand     int
	GrowthRate int
	Trend      string
	Category   string
	AvgSalary  int
}

type Result struct {
	Role              string
	MatchPercentage   int
	RecommendedSkills []RankedSkill
}
