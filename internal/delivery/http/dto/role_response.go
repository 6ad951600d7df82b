package dto

type RoleResponse struct {
	Role           string   `json:"role"`
	RequiredSkills []string `json:"requiredSkills"`
}

type RoleListResponse struct {
	Roles []RoleResponse `json:"roles"`
	Count int            `json:"count"`
}
