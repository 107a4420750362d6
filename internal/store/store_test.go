package store

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/tecaikids/website/internal/config"
	"github.com/tecaikids/website/internal/forms"
	"github.com/tecaikids/website/internal/models"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := NewSessionStore(&config.Config{
		SessionSecret: "0123456789abcdef0123456789abcdef",
		SessionDir:    t.TempDir(),
	})
	if err != nil {
		t.Fatalf("NewSessionStore: %v", err)
	}
	return s
}

// roundTrip saves v and returns a request carrying the resulting cookie.
func roundTrip(t *testing.T, v *Visit, r *http.Request) *http.Request {
	t.Helper()
	rec := httptest.NewRecorder()
	if err := v.Save(r, rec); err != nil {
		t.Fatalf("save: %v", err)
	}
	next := httptest.NewRequest(http.MethodGet, "/", nil)
	for _, c := range rec.Result().Cookies() {
		next.AddCookie(c)
	}
	return next
}

func TestVisitKeepsDraftsAcrossRequests(t *testing.T) {
	s := newTestStore(t)
	r := httptest.NewRequest(http.MethodGet, "/", nil)
	v := s.Visit(r)
	if v.ID == "" {
		t.Fatal("no visitor id")
	}
	v.SetConsultation(forms.ConsultationDraft{FullName: "Nimal", LearningGoals: "robotics"})
	w := v.Wizard()
	_ = w.SelectProgram(models.ProgramTechTeens)
	_ = w.Next()
	v.SetWizard(w)

	r2 := roundTrip(t, v, r)
	v2 := s.Visit(r2)
	if v2.ID != v.ID {
		t.Fatalf("visitor id changed: %s -> %s", v.ID, v2.ID)
	}
	if got := v2.Consultation(); got.FullName != "Nimal" || got.LearningGoals != "robotics" {
		t.Fatalf("draft = %+v", got)
	}
	if w2 := v2.Wizard(); w2.Program() != models.ProgramTechTeens || w2.Step().Number() != 2 {
		t.Fatalf("wizard = %+v", w2.Snapshot())
	}
}

func TestNotificationsAreReadOnce(t *testing.T) {
	s := newTestStore(t)
	r := httptest.NewRequest(http.MethodGet, "/", nil)
	v := s.Visit(r)
	v.AddNotification(forms.ConsultationFailed())

	r2 := roundTrip(t, v, r)
	v2 := s.Visit(r2)
	got := v2.Notifications()
	if len(got) != 1 || got[0] != forms.ConsultationFailed() {
		t.Fatalf("notifications = %+v", got)
	}
	r3 := roundTrip(t, v2, r2)
	if again := s.Visit(r3).Notifications(); len(again) != 0 {
		t.Fatalf("notifications repeated: %+v", again)
	}
}

func TestClearedDraftIsRemoved(t *testing.T) {
	s := newTestStore(t)
	r := httptest.NewRequest(http.MethodGet, "/", nil)
	v := s.Visit(r)
	v.SetConsultation(forms.ConsultationDraft{FullName: "A"})
	v.SetConsultation(forms.ConsultationDraft{})
	if !v.Consultation().IsZero() {
		t.Fatal("draft not cleared")
	}
}

func TestTamperedCookieStartsFresh(t *testing.T) {
	s := newTestStore(t)
	r := httptest.NewRequest(http.MethodGet, "/", nil)
	r.AddCookie(&http.Cookie{Name: sessionName, Value: "not-a-signed-value"})
	v := s.Visit(r)
	if v.ID == "" || !v.Consultation().IsZero() {
		t.Fatalf("unexpected visit: %+v", v)
	}
}

func TestVisitMiddleware(t *testing.T) {
	s := newTestStore(t)
	var seen *Visit
	h := s.VisitMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = GetVisitFromCtx(r.Context())
	}))
	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
	if seen == nil || seen.ID == "" {
		t.Fatal("visit missing from context")
	}
}

func TestGate(t *testing.T) {
	g := NewGate()
	release, ok := g.TryAcquire("v1", "consultation")
	if !ok {
		t.Fatal("first acquire refused")
	}
	if _, ok := g.TryAcquire("v1", "consultation"); ok {
		t.Fatal("second acquire allowed while in flight")
	}
	if _, ok := g.TryAcquire("v1", "enrollment"); !ok {
		t.Fatal("other form blocked")
	}
	if _, ok := g.TryAcquire("v2", "consultation"); !ok {
		t.Fatal("other visitor blocked")
	}
	release()
	release()
	if g.InFlight("v1", "consultation") {
		t.Fatal("still in flight after release")
	}
	if _, ok := g.TryAcquire("v1", "consultation"); !ok {
		t.Fatal("acquire after release refused")
	}
}

func TestGateConcurrent(t *testing.T) {
	g := NewGate()
	var wg sync.WaitGroup
	var mu sync.Mutex
	won := 0
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, ok := g.TryAcquire("v", "enrollment"); ok {
				mu.Lock()
				won++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()
	if won != 1 {
		t.Fatalf("acquired %d times", won)
	}
}

func TestPruneRemovesExpiredSessions(t *testing.T) {
	s := newTestStore(t)
	for i := 0; i < 2; i++ {
		r := httptest.NewRequest(http.MethodGet, "/", nil)
		v := s.Visit(r)
		v.SetConsultation(forms.ConsultationDraft{FullName: "A"})
		roundTrip(t, v, r)
	}
	entries, err := os.ReadDir(s.Dir)
	if err != nil || len(entries) != 2 {
		t.Fatalf("session files = %d, err %v", len(entries), err)
	}
	old := time.Now().Add(-8 * 24 * time.Hour)
	if err := os.Chtimes(filepath.Join(s.Dir, entries[0].Name()), old, old); err != nil {
		t.Fatal(err)
	}

	n, err := s.Prune(time.Now())
	if err != nil || n != 1 {
		t.Fatalf("Prune = %d, %v", n, err)
	}
	left, _ := os.ReadDir(s.Dir)
	if len(left) != 1 || left[0].Name() != entries[1].Name() {
		t.Fatalf("left = %v", left)
	}
}

func TestFreshVisit(t *testing.T) {
	s := newTestStore(t)
	r := httptest.NewRequest(http.MethodGet, "/", nil)
	v := s.Visit(r)
	if !v.Fresh() {
		t.Fatal("cookieless visit not fresh")
	}
	v.SetConsultation(forms.ConsultationDraft{FullName: "A"})
	if s.Visit(roundTrip(t, v, r)).Fresh() {
		t.Fatal("saved visit still fresh")
	}
}
