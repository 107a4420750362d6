package web

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/tecaikids/website/internal/backend"
	"github.com/tecaikids/website/internal/config"
	"github.com/tecaikids/website/internal/content"
	"github.com/tecaikids/website/internal/models"
	"github.com/tecaikids/website/internal/service"
	"github.com/tecaikids/website/internal/store"
	"github.com/tecaikids/website/internal/view"
	"go.uber.org/zap"
)

type fakeBackend struct {
	mu            sync.Mutex
	down          bool
	failSubmits   bool
	consultations []models.ConsultationRequest
	enrollments   []models.EnrollmentRequest
}

func (f *fakeBackend) setFailSubmits(v bool) {
	f.mu.Lock()
	f.failSubmits = v
	f.mu.Unlock()
}

func (f *fakeBackend) setDown(v bool) {
	f.mu.Lock()
	f.down = v
	f.mu.Unlock()
}

func (f *fakeBackend) sentConsultations() []models.ConsultationRequest {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]models.ConsultationRequest(nil), f.consultations...)
}

func (f *fakeBackend) sentEnrollments() []models.EnrollmentRequest {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]models.EnrollmentRequest(nil), f.enrollments...)
}

func (f *fakeBackend) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.down {
		http.Error(w, "down", http.StatusServiceUnavailable)
		return
	}
	switch {
	case r.Method == http.MethodGet && r.URL.Path == "/api/programs":
		_ = json.NewEncoder(w).Encode([]models.Program{
			{ID: "p1", ProgramType: models.ProgramLittleLearners, Name: "Little Learners Foundation", AgeRange: "Ages 4-6", MonthlyPrice: 800, QuarterlyPrice: 2800},
			{ID: "p2", ProgramType: models.ProgramSmartKids, Name: "Smart Kids Mastery", AgeRange: "Ages 10-12", MonthlyPrice: 1500, QuarterlyPrice: 5250},
			{ID: "p3", ProgramType: models.ProgramTechTeens, Name: "Tech Teens Professional", AgeRange: "Ages 13-15", MonthlyPrice: 5000, QuarterlyPrice: 12000},
		})
	case r.Method == http.MethodGet && r.URL.Path == "/api/programs/future_leaders":
		_ = json.NewEncoder(w).Encode(models.Program{ProgramType: models.ProgramFutureLeaders, Name: "Future Leaders Mastery", MonthlyPrice: 2500, QuarterlyPrice: 8750})
	case r.Method == http.MethodGet && strings.HasPrefix(r.URL.Path, "/api/programs/"):
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"detail":"Program not found"}`))
	case r.Method == http.MethodGet && r.URL.Path == "/api/stats":
		_, _ = w.Write([]byte(`{"total_students":10042,"success_rate":"99%","expert_educators":25,"support_hours":"24/7"}`))
	case r.Method == http.MethodPost && r.URL.Path == "/api/consultation":
		if f.failSubmits {
			http.Error(w, "boom", http.StatusInternalServerError)
			return
		}
		var req models.ConsultationRequest
		_ = json.NewDecoder(r.Body).Decode(&req)
		f.consultations = append(f.consultations, req)
		_, _ = w.Write([]byte(`{"id":"c-1"}`))
	case r.Method == http.MethodPost && r.URL.Path == "/api/enrollment":
		if f.failSubmits {
			http.Error(w, "boom", http.StatusInternalServerError)
			return
		}
		var req models.EnrollmentRequest
		_ = json.NewDecoder(r.Body).Decode(&req)
		f.enrollments = append(f.enrollments, req)
		_, _ = w.Write([]byte(`{"id":"e-1","amount":12000}`))
	default:
		http.NotFound(w, r)
	}
}

type harness struct {
	t       *testing.T
	fake    *fakeBackend
	store   *store.Store
	site    *httptest.Server
	browser *http.Client
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	fake := &fakeBackend{}
	api := httptest.NewServer(fake)
	t.Cleanup(api.Close)

	cfg := &config.Config{
		BackendURL:     api.URL,
		BackendTimeout: 2 * time.Second,
		SessionSecret:  "0123456789abcdef0123456789abcdef",
		SessionDir:     t.TempDir(),
	}
	st, err := store.NewSessionStore(cfg)
	if err != nil {
		t.Fatal(err)
	}
	c, err := content.Default()
	if err != nil {
		t.Fatal(err)
	}
	rnd, err := view.NewRenderer()
	if err != nil {
		t.Fatal(err)
	}
	bc := backend.NewClient(cfg)
	log := zap.NewNop()
	site := NewSite(cfg, st, c, rnd, service.NewCatalogService(bc, log), service.NewSubmissionService(bc, log), log)
	srv := httptest.NewServer(site.Routes())
	t.Cleanup(srv.Close)

	jar, _ := cookiejar.New(nil)
	return &harness{t: t, fake: fake, store: st, site: srv, browser: &http.Client{Jar: jar}}
}

func (h *harness) get() string {
	h.t.Helper()
	resp, err := h.browser.Get(h.site.URL + "/")
	if err != nil {
		h.t.Fatalf("GET /: %v", err)
	}
	return h.body(resp)
}

// post submits a form and returns the page the redirect lands on.
func (h *harness) post(path string, form url.Values) string {
	h.t.Helper()
	resp, err := h.browser.PostForm(h.site.URL+path, form)
	if err != nil {
		h.t.Fatalf("POST %s: %v", path, err)
	}
	return h.body(resp)
}

func (h *harness) body(resp *http.Response) string {
	h.t.Helper()
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		h.t.Fatalf("%s %s: status %d", resp.Request.Method, resp.Request.URL.Path, resp.StatusCode)
	}
	b, err := io.ReadAll(resp.Body)
	if err != nil {
		h.t.Fatal(err)
	}
	return string(b)
}

func (h *harness) visitorID() string {
	h.t.Helper()
	u, _ := url.Parse(h.site.URL)
	r := httptest.NewRequest(http.MethodGet, "/", nil)
	for _, c := range h.browser.Jar.Cookies(u) {
		r.AddCookie(c)
	}
	return h.store.Visit(r).ID
}

func mustContain(t *testing.T, page string, wants ...string) {
	t.Helper()
	for _, want := range wants {
		if !strings.Contains(page, want) {
			t.Errorf("page missing %q", want)
		}
	}
}

func mustNotContain(t *testing.T, page string, unwanted ...string) {
	t.Helper()
	for _, u := range unwanted {
		if strings.Contains(page, u) {
			t.Errorf("page unexpectedly contains %q", u)
		}
	}
}
