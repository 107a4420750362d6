package store

import (
	"encoding/gob"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gorilla/sessions"
	"github.com/pkg/errors"
	"github.com/tecaikids/website/internal/config"
	"github.com/tecaikids/website/internal/forms"
	"github.com/tecaikids/website/internal/wizard"
)

const sessionName = "tecaikids"

const sessionMaxAge = 7 * 24 * time.Hour

const (
	keyVisitor      = "visitor_id"
	keyConsultation = "consultation"
	keyEnrollment   = "enrollment"
)

func init() {
	gob.Register(forms.ConsultationDraft{})
	gob.Register(forms.Notification{})
	gob.Register(wizard.Snapshot{})
}

// Store keeps per-visitor form state in server-side session files; the
// cookie only carries the signed session id.
type Store struct {
	Sessions sessions.Store
	Cfg      *config.Config
	Gate     *Gate
	// Dir holds the session files; empty when Sessions is not file backed.
	Dir string
}

func NewSessionStore(cfg *config.Config) (*Store, error) {
	dir := cfg.SessionDir
	if dir == "" {
		dir = filepath.Join(os.TempDir(), "tecaikids-sessions")
	}
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return nil, errors.Wrapf(err, "create session dir %s", dir)
	}
	fs := sessions.NewFilesystemStore(dir, []byte(cfg.SessionSecret))
	fs.MaxLength(0)
	fs.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   int(sessionMaxAge / time.Second),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
	return &Store{Sessions: fs, Cfg: cfg, Gate: NewGate(), Dir: dir}, nil
}

// Prune removes session files not written since their cookie expired and
// returns how many it deleted. FilesystemStore never deletes them itself.
func (s *Store) Prune(now time.Time) (int, error) {
	if s.Dir == "" {
		return 0, nil
	}
	entries, err := os.ReadDir(s.Dir)
	if err != nil {
		return 0, errors.Wrapf(err, "read session dir %s", s.Dir)
	}
	cutoff := now.Add(-sessionMaxAge)
	removed := 0
	for _, e := range entries {
		if e.IsDir() || !strings.HasPrefix(e.Name(), "session_") {
			continue
		}
		info, err := e.Info()
		if err != nil || !info.ModTime().Before(cutoff) {
			continue
		}
		if err := os.Remove(filepath.Join(s.Dir, e.Name())); err != nil && !os.IsNotExist(err) {
			return removed, errors.Wrapf(err, "remove %s", e.Name())
		}
		removed++
	}
	return removed, nil
}

// NewStoreWith wraps an existing sessions.Store, e.g. a CookieStore in tests.
func NewStoreWith(cfg *config.Config, s sessions.Store) *Store {
	return &Store{Sessions: s, Cfg: cfg, Gate: NewGate()}
}
