package handler

import (
	"errors"

	"career-compass/internal/delivery/http/dto"
	"career-compass/internal/delivery/http/middleware"
	"career-compass/internal/domain/career"
	"career-compass/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type CareerHandler struct {
	rec     usecase.RecommendationUsecase
	rank    usecase.SkillRankUsecase
	catalog usecase.RoleCatalogUsecase
}

type skillsRequest struct {
	Skills []string `json:"skills"`
}

func NewCareerHandler(rec usecase.RecommendationUsecase, rank usecase.SkillRankUsecase, catalog usecase.RoleCatalogUsecase) *CareerHandler {
	return &CareerHandler{rec: rec, rank: rank, catalog: catalog}
}

func (h *CareerHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	grp := r.Group("/career")
	grp.Post("/recommend", h.Recommend)
	grp.Get("/roles", h.ListRoles)
	grp.Post("/skills/rank", h.RankSkills)
}

func (h *CareerHandler) Recommend(c fiber.Ctx) error {
	var req skillsRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Skills are required", err)
	}

	res, err := h.rec.Recommend(c.Context(), req.Skills)
	if err != nil {
		return mapCareerUsecaseError(err)
	}

	return c.Status(fiber.StatusOK).JSON(dto.RecommendationResponse{
		Role:              res.Role,
		MatchPercentage:   res.MatchPercentage,
		RecommendedSkills: toSkillResponses(res.RecommendedSkills),
	})
}

func (h *CareerHandler) ListRoles(c fiber.Ctx) error {
	roles, err := h.catalog.ListRoles(c.Context())
	if err != nil {
		return mapCareerUsecaseError(err)
	}

	out := make([]dto.RoleResponse, 0, len(roles))
	for _, r := range roles {
		out = append(out, dto.RoleResponse{Role: r.Name, RequiredSkills: r.RequiredSkills})
	}
	return c.Status(fiber.StatusOK).JSON(dto.RoleListResponse{Roles: out, Count: len(out)})
}

func (h *CareerHandler) RankSkills(c fiber.Ctx) error {
	var req skillsRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Skills are required", err)
	}

	ranked, err := h.rank.RankSkills(c.Context(), req.Skills)
	if err != nil {
		return mapCareerUsecaseError(err)
	}

	items := toSkillResponses(ranked)
	return c.Status(fiber.StatusOK).JSON(dto.SkillRankResponse{RankedSkills: items, Count: len(items)})
}

func toSkillResponses(in []career.RankedSkill) []dto.RecommendedSkillResponse {
	out := make([]dto.RecommendedSkillResponse, 0, len(in))
	for _, s := range in {
		out = append(out, dto.RecommendedSkillResponse{
			Skill:      s.Name,
			Score:      s.Score,
			Demand:     s.Demand,
			GrowthRate: s.GrowthRate,
			Trend:      s.Trend,
			Category:   s.Category,
			AvgSalary:  s.AvgSalary,
		})
	}
	return out
}

func mapCareerUsecaseError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, usecase.ErrSkillsRequired):
		return middleware.NewAppError(fiber.StatusBadRequest, "Skills are required", err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, "", err)
	}
}
