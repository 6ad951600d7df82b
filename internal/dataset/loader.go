package dataset

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"career-compass/internal/domain/career"
)

const (
	RolesFile  = "roles.json"
	SkillsFile = "skills.json"
)

var (
	ErrNoRoles           = errors.New("roles dataset is empty")
	ErrRoleWithoutSkills = errors.New("role has no required skills")
	ErrDuplicateName     = errors.New("duplicate name in dataset")
)

type roleRecord struct {
	Name           string   `json:"role"`
	RequiredSkills []string `json:"requiredSkills"`
}

type skillRecord struct {
	Name       string `json:"name"`
	Demand     int    `json:"demand"`
	GrowthRate int    `json:"growthRate"`
	Trend      string `json:"trend"`
	Category   string `json:"category"`
	AvgSalary  int    `json:"avgSalary"`
}

// Snapshot is one immutable view of both reference tables. Roles keep their
// file order; Skills is keyed by exact name for join lookups.
type Snapshot struct {
	Roles  []career.Role
	Skills map[string]career.Skill
}

// Load reads roles.json and skills.json from dir and validates them. A
// dataset that would make the engine misbehave (no roles, a role with no
// required skills, duplicate names) is rejected so the process refuses to
// start instead of failing per-request.
func Load(dir string) (*Snapshot, error) {
	var roleRecs []roleRecord
	if err := readJSONFile(filepath.Join(dir, RolesFile), &roleRecs); err != nil {
		return nil, err
	}
	var skillRecs []skillRecord
	if err := readJSONFile(filepath.Join(dir, SkillsFile), &skillRecs); err != nil {
		return nil, err
	}

	if len(roleRecs) == 0 {
		return nil, ErrNoRoles
	}

	roles := make([]career.Role, 0, len(roleRecs))
	seenRoles := make(map[string]struct{}, len(roleRecs))
	for i, r := range roleRecs {
		name := strings.TrimSpace(r.Name)
		if name == "" {
			return nil, fmt.Errorf("%s: role %d has empty name", RolesFile, i)
		}
		if _, ok := seenRoles[name]; ok {
			return nil, fmt.Errorf("%w: role %q", ErrDuplicateName, name)
		}
		seenRoles[name] = struct{}{}
		if len(r.RequiredSkills) == 0 {
			return nil, fmt.Errorf("%w: role %q", ErrRoleWithoutSkills, name)
		}
		roles = append(roles, career.Role{Name: name, RequiredSkills: r.RequiredSkills})
	}

	skills := make(map[string]career.Skill, len(skillRecs))
	for i, s := range skillRecs {
		name := strings.TrimSpace(s.Name)
		if name == "" {
			return nil, fmt.Errorf("%s: skill %d has empty name", SkillsFile, i)
		}
		if _, ok := skills[name]; ok {
			return nil, fmt.Errorf("%w: skill %q", ErrDuplicateName, name)
		}
		skills[name] = career.Skill{
			Name:       name,
			Demand:     s.Demand,
			GrowthRate: s.GrowthRate,
			Trend:      s.Trend,
			Category:   s.Category,
			AvgSalary:  s.AvgSalary,
		}
	}

	return &Snapshot{Roles: roles, Skills: skills}, nil
}

func readJSONFile(path string, out any) error {
	b, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read dataset: %w", err)
	}
	if err := json.Unmarshal(b, out); err != nil {
		return fmt.Errorf("parse %s: %w", filepath.Base(path), err)
	}
	return nil
}
