package career

import "testing"

func TestScore_ZeroMetadataScoresZero(t *testing.T) {
	if got := Score(Skill{}); got != 0 {
		t.Fatalf("expected 0 for zero-valued skill, got %v", got)
	}
}

func TestScore_MonotonicInDemand(t *testing.T) {
	lo := Score(Skill{Demand: 3})
	hi := Score(Skill{Demand: 8})
	if hi <= lo {
		t.Fatalf("expected higher demand to score higher: demand 8 -> %v, demand 3 -> %v", hi, lo)
	}
}

func TestScore_MonotonicInGrowth(t *testing.T) {
	lo := Score(Skill{Demand: 5, GrowthRate: 2})
	hi := Score(Skill{Demand: 5, GrowthRate: 20})
	if hi <= lo {
		t.Fatalf("expected higher growth to score higher: %v vs %v", hi, lo)
	}
}

func TestScore_TrendAdjustment(t *testing.T) {
	base := Score(Skill{Demand: 5, Trend: "stable"})
	rising := Score(Skill{Demand: 5, Trend: "rapidly_rising"})
	declining := Score(Skill{Demand: 5, Trend: "declining"})

	if rising <= base {
		t.Fatalf("expected rapidly_rising > stable: %v vs %v", rising, base)
	}
	if declining >= base {
		t.Fatalf("expected declining < stable: %v vs %v", declining, base)
	}
}

func TestScore_Deterministic(t *testing.T) {
	s := Skill{Name: "Go", Demand: 8, GrowthRate: 15, Trend: "rising", AvgSalary: 120000}
	if Score(s) != Score(s) {
		t.Fatalf("expected identical scores for identical input")
	}
}
