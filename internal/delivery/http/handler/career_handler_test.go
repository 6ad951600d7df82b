package handler_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"

	"career-compass/internal/dataset"
	"career-compass/internal/delivery/http/handler"
	"career-compass/internal/delivery/http/middleware"
	"career-compass/internal/delivery/http/routes"
	"career-compass/internal/domain/career"
	"career-compass/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

func newTestApp() *fiber.App {
	store := dataset.NewStore(&dataset.Snapshot{
		Roles: []career.Role{
			{Name: "Backend Developer", RequiredSkills: []string{"Node", "SQL", "Docker"}},
			{Name: "Frontend Developer", RequiredSkills: []string{"React", "CSS"}},
		},
		Skills: map[string]career.Skill{
			"SQL":    {Name: "SQL", Demand: 9},
			"Docker": {Name: "Docker", Demand: 7},
			"React":  {Name: "React", Demand: 9},
			"CSS":    {Name: "CSS", Demand: 7},
		},
	})

	f := fiber.New(fiber.Config{})
	f.Use(middleware.NewErrorMiddleware().Middleware())

	h := handler.NewCareerHandler(
		usecase.NewRecommendationUsecase(store, nil, 0, nil),
		usecase.NewSkillRankUsecase(store),
		usecase.NewRoleCatalogUsecase(store),
	)
	routes.NewRegistry(h).Register(f)

	return f
}

func postJSON(t *testing.T, app *fiber.App, path, body string) (int, []byte) {
	t.Helper()

	req := httptest.NewRequest("POST", path, bytes.NewReader([]byte(body)))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	defer resp.Body.Close()

	b, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read body: %v", err)
	}
	return resp.StatusCode, b
}

func TestRecommend_EmptySkillsReturns400(t *testing.T) {
	app := newTestApp()

	for _, body := range []string{`{}`, `{"skills":[]}`, `{"skills":["  "]}`} {
		status, b := postJSON(t, app, "/api/career/recommend", body)
		if status != fiber.StatusBadRequest {
			t.Fatalf("body %s: expected 400, got %d", body, status)
		}
		if got := string(b); got != `{"message":"Skills are required"}` {
			t.Fatalf("body %s: unexpected response %s", body, got)
		}
	}
}

func TestRecommend_MalformedBodyReturns400(t *testing.T) {
	app := newTestApp()

	status, b := postJSON(t, app, "/api/career/recommend", `{"skills":`)
	if status != fiber.StatusBadRequest {
		t.Fatalf("expected 400, got %d", status)
	}
	if got := string(b); got != `{"message":"Skills are required"}` {
		t.Fatalf("unexpected response %s", got)
	}
}

func TestRecommend_Success(t *testing.T) {
	app := newTestApp()

	status, b := postJSON(t, app, "/api/career/recommend", `{"skills":["Node"]}`)
	if status != fiber.StatusOK {
		t.Fatalf("expected 200, got %d: %s", status, b)
	}

	var res struct {
		Role              string `json:"role"`
		MatchPercentage   int    `json:"matchPercentage"`
		RecommendedSkills []struct {
			Skill  string  `json:"skill"`
			Score  float64 `json:"score"`
			Demand int     `json:"demand"`
		} `json:"recommendedSkills"`
	}
	if err := json.Unmarshal(b, &res); err != nil {
		t.Fatalf("decode response: %v", err)
	}

	if res.Role != "Backend Developer" {
		t.Fatalf("expected Backend Developer, got %q", res.Role)
	}
	if res.MatchPercentage != 33 {
		t.Fatalf("expected 33, got %d", res.MatchPercentage)
	}
	if len(res.RecommendedSkills) != 2 {
		t.Fatalf("expected 2 recommended skills, got %d", len(res.RecommendedSkills))
	}
	if res.RecommendedSkills[0].Skill != "SQL" || res.RecommendedSkills[0].Demand != 9 {
		t.Fatalf("expected SQL with demand 9 first, got %+v", res.RecommendedSkills[0])
	}
	if res.RecommendedSkills[0].Score < res.RecommendedSkills[1].Score {
		t.Fatalf("expected descending order, got %+v", res.RecommendedSkills)
	}
}

func TestListRoles(t *testing.T) {
	app := newTestApp()

	req := httptest.NewRequest("GET", "/api/career/roles", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}

	var res struct {
		Roles []struct {
			Role           string   `json:"role"`
			RequiredSkills []string `json:"requiredSkills"`
		} `json:"roles"`
		Count int `json:"count"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&res); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if res.Count != 2 || len(res.Roles) != 2 {
		t.Fatalf("expected 2 roles, got %+v", res)
	}
	if res.Roles[0].Role != "Backend Developer" {
		t.Fatalf("expected table order, got %+v", res.Roles)
	}
}

func TestRankSkills(t *testing.T) {
	app := newTestApp()

	status, b := postJSON(t, app, "/api/career/skills/rank", `{"skills":["Docker","SQL"]}`)
	if status != fiber.StatusOK {
		t.Fatalf("expected 200, got %d: %s", status, b)
	}

	var res struct {
		RankedSkills []struct {
			Skill string  `json:"skill"`
			Score float64 `json:"score"`
		} `json:"rankedSkills"`
		Count int `json:"count"`
	}
	if err := json.Unmarshal(b, &res); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if res.Count != 2 || res.RankedSkills[0].Skill != "SQL" {
		t.Fatalf("expected SQL ranked first, got %+v", res)
	}

	status, b = postJSON(t, app, "/api/career/skills/rank", `{"skills":[]}`)
	if status != fiber.StatusBadRequest {
		t.Fatalf("expected 400, got %d", status)
	}
	if got := string(b); got != `{"message":"Skills are required"}` {
		t.Fatalf("unexpected response %s", got)
	}
}

func TestHealth(t *testing.T) {
	app := newTestApp()

	req := httptest.NewRequest("GET", "/health", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
}
