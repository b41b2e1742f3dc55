package integration

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/folio-dev/folio/internal/chatbot"
	"github.com/folio-dev/folio/internal/httpserver/deps"
	"github.com/folio-dev/folio/internal/httpserver/handlers"
	"github.com/folio-dev/folio/internal/httpserver/routes"
	"github.com/folio-dev/folio/internal/logger"
	filestore "github.com/folio-dev/folio/internal/store/file"
	redisstore "github.com/folio-dev/folio/internal/store/redis"
)

// newAPI wires a router the way httpserver.New does, backed by a temp file.
func newAPI(t *testing.T) *chi.Mux {
	t.Helper()
	log := logger.New("error", false)
	d := deps.Deps{
		Logger:     log,
		Store:      filestore.New(filepath.Join(t.TempDir(), "db.json"), log),
		Analytics:  redisstore.NewAnalytics(nil),
		Classifier: chatbot.NewClassifier(nil),
		StartTime:  time.Now(),
		Version:    "test",
		TimeNow:    time.Now,
	}

	r := chi.NewRouter()
	r.NotFound(handlers.NotFound())
	routes.RegisterAll(r, d)
	return r
}

func do(t *testing.T, r http.Handler, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder, v any) {
	t.Helper()
	if err := json.Unmarshal(rec.Body.Bytes(), v); err != nil {
		t.Fatalf("response is not JSON: %v (body: %s)", err, rec.Body.String())
	}
}

func TestCollectionCRUDFlow(t *testing.T) {
	api := newAPI(t)

	// The default document seeds one project with id 1.
	rec := do(t, api, http.MethodPost, "/api/projects",
		`{"title": "P2", "description": "D2", "technologies": ["Go"]}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("create status = %d, want 201 (body: %s)", rec.Code, rec.Body.String())
	}
	var created map[string]any
	decode(t, rec, &created)
	if created["id"] != float64(2) {
		t.Fatalf("created id = %v, want 2", created["id"])
	}

	rec = do(t, api, http.MethodGet, "/api/projects/2", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("get status = %d (body: %s)", rec.Code, rec.Body.String())
	}
	var fetched map[string]any
	decode(t, rec, &fetched)
	if fetched["title"] != "P2" || fetched["description"] != "D2" {
		t.Errorf("fetched = %v, want request body plus id", fetched)
	}

	rec = do(t, api, http.MethodPut, "/api/projects/2", `{"description": "Updated"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("update status = %d", rec.Code)
	}
	var updated map[string]any
	decode(t, rec, &updated)
	if updated["description"] != "Updated" || updated["title"] != "P2" {
		t.Errorf("updated = %v, want merged item", updated)
	}

	rec = do(t, api, http.MethodDelete, "/api/projects/2", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("delete status = %d", rec.Code)
	}

	rec = do(t, api, http.MethodGet, "/api/projects/2", "")
	if rec.Code != http.StatusNotFound {
		t.Errorf("get after delete status = %d, want 404", rec.Code)
	}

	rec = do(t, api, http.MethodGet, "/api/projects", "")
	var list []map[string]any
	decode(t, rec, &list)
	if len(list) != 1 {
		t.Errorf("remaining projects = %d, want 1", len(list))
	}
}

func TestSummaryCounts(t *testing.T) {
	api := newAPI(t)

	// Default document: 1 of each. Add one more project and two certifications.
	do(t, api, http.MethodPost, "/api/projects", `{"title": "P2", "description": "D2"}`)
	do(t, api, http.MethodPost, "/api/certifications", `{"title": "C2"}`)
	do(t, api, http.MethodPost, "/api/certifications", `{"title": "C3"}`)

	rec := do(t, api, http.MethodGet, "/api/chatbot/summary", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("summary status = %d (body: %s)", rec.Code, rec.Body.String())
	}

	var summary struct {
		TotalProjects       int      `json:"total_projects"`
		TotalExperience     int      `json:"total_experience"`
		TotalCertifications int      `json:"total_certifications"`
		Location            string   `json:"location"`
		KeySkills           []string `json:"key_skills"`
	}
	decode(t, rec, &summary)

	if summary.TotalProjects != 2 || summary.TotalExperience != 1 || summary.TotalCertifications != 3 {
		t.Errorf("counts = {projects:%d experience:%d certifications:%d}, want {2 1 3}",
			summary.TotalProjects, summary.TotalExperience, summary.TotalCertifications)
	}
	if !strings.Contains(summary.Location, ",") {
		t.Errorf("location = %q, want \"{city}, {state}\"", summary.Location)
	}
	if len(summary.KeySkills) == 0 {
		t.Error("key_skills empty")
	}
}

func TestChatbotEndToEnd(t *testing.T) {
	api := newAPI(t)

	// Shape the document to the canonical classifier scenario.
	do(t, api, http.MethodPut, "/api/skills",
		`{"programming_languages": ["Python", "JavaScript"], "web_technologies": [], "databases": [], "tools": []}`)
	do(t, api, http.MethodPut, "/api/projects/1", `{"title": "P1", "description": "D1"}`)

	rec := do(t, api, http.MethodGet, "/chatbot?q=what+skills+do+you+have", "")
	var answer struct {
		Answer string `json:"answer"`
	}
	decode(t, rec, &answer)
	if !strings.Contains(answer.Answer, "Python") || !strings.Contains(answer.Answer, "JavaScript") {
		t.Errorf("skills answer = %q", answer.Answer)
	}

	rec = do(t, api, http.MethodGet, "/chatbot?q=tell+me+about+your+projects", "")
	decode(t, rec, &answer)
	if !strings.Contains(answer.Answer, "P1: D1") {
		t.Errorf("projects answer = %q, want it to contain P1: D1", answer.Answer)
	}

	rec = do(t, api, http.MethodGet, "/chatbot?q=", "")
	if rec.Code != http.StatusBadRequest {
		t.Errorf("empty query status = %d, want 400", rec.Code)
	}

	rec = do(t, api, http.MethodGet, "/chatbot?q=xyz", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("fallback status = %d, want 200", rec.Code)
	}
	decode(t, rec, &answer)
	if !strings.Contains(answer.Answer, "Sorry") {
		t.Errorf("fallback answer = %q", answer.Answer)
	}
}

func TestTypedQuery(t *testing.T) {
	api := newAPI(t)

	rec := do(t, api, http.MethodPost, "/api/chatbot/query", `{"type": "projects"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("typed query status = %d", rec.Code)
	}
	var payload struct {
		Projects []struct {
			Title       string `json:"title"`
			Description string `json:"description"`
		} `json:"projects"`
	}
	decode(t, rec, &payload)
	if len(payload.Projects) == 0 || payload.Projects[0].Title == "" {
		t.Errorf("typed projects payload = %+v", payload)
	}
}

func TestSuggestionsFlow(t *testing.T) {
	api := newAPI(t)

	rec := do(t, api, http.MethodGet, "/api/chatbot/suggestions", "")
	var list []map[string]any
	decode(t, rec, &list)
	if len(list) != 0 {
		t.Fatalf("fresh document already has %d suggestions", len(list))
	}

	rec = do(t, api, http.MethodPost, "/api/chatbot/suggestions",
		`{"message": "add a blog", "user_query": "do you blog?"}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("create suggestion status = %d, want 201", rec.Code)
	}

	rec = do(t, api, http.MethodGet, "/api/chatbot/suggestions", "")
	decode(t, rec, &list)
	if len(list) != 1 || list[0]["message"] != "add a blog" {
		t.Errorf("suggestions = %v", list)
	}
}

func TestPersonalInfoMerge(t *testing.T) {
	api := newAPI(t)

	rec := do(t, api, http.MethodPut, "/api/personal-info", `{"title": "Staff Engineer"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("put status = %d", rec.Code)
	}

	rec = do(t, api, http.MethodGet, "/api/personal-info", "")
	var info map[string]any
	decode(t, rec, &info)
	if info["title"] != "Staff Engineer" {
		t.Errorf("title = %v, want merged value", info["title"])
	}
	if info["name"] == nil {
		t.Error("name dropped by merge")
	}
}

func TestUnmatchedRoute(t *testing.T) {
	api := newAPI(t)

	rec := do(t, api, http.MethodGet, "/api/nope", "")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rec.Code)
	}
	var body map[string]any
	decode(t, rec, &body)
	if body["error"] != "Endpoint not found" {
		t.Errorf("error = %v, want %q", body["error"], "Endpoint not found")
	}
}

func TestRootDirectory(t *testing.T) {
	api := newAPI(t)

	rec := do(t, api, http.MethodGet, "/", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	var body struct {
		Service   string            `json:"service"`
		Endpoints map[string]string `json:"endpoints"`
	}
	decode(t, rec, &body)
	if body.Service != "folio" || len(body.Endpoints) == 0 {
		t.Errorf("directory = %+v", body)
	}
}

func TestAnalyticsDisabled(t *testing.T) {
	api := newAPI(t)

	rec := do(t, api, http.MethodGet, "/api/chatbot/analytics", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	var body struct {
		Enabled bool `json:"enabled"`
	}
	decode(t, rec, &body)
	if body.Enabled {
		t.Error("analytics should report disabled without redis")
	}
}
