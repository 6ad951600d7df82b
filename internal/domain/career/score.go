package career

// Score maps a skill's market metadata to a single ranking number. Higher
// means the skill is worth learning first. The weights favor demand and
// growth, with a smaller salary component normalized against a 150k ceiling
// and a flat adjustment for the market trend. A zero-valued Skill scores 0.
func Score(s Skill) float64 {
	demand := float64(s.Demand) * 5
	growth := float64(s.GrowthRate) * 2.5
	salary := float64(s.AvgSalary) / 150000 * 10
	return demand + growth + salary + trendBonus(s.Trend)
}

func trendBonus(trend string) float64 {
	switch trend {
	case "rapidly_rising":
		return 15
	case "rising":
		return 8
	case "declining":
		return -10
	default:
		return 0
	}
}
