package tools

import (
	"sync"

	"go.uber.org/zap"

	"github.com/HendryAvila/facilistyles/internal/catalog"
	"github.com/HendryAvila/facilistyles/internal/quiz"
)

// Preferences is the subset of the preference store the tools use.
type Preferences interface {
	LastResultType() (string, bool, error)
	SetLastResultType(id string) error
}

// Runner owns the single quiz session behind the MCP tools. The transport
// may dispatch calls concurrently, so every access goes through its mutex.
type Runner struct {
	mu       sync.Mutex
	session  *quiz.Session
	catalog  *catalog.Catalog
	prefs    Preferences
	logger   *zap.Logger
	shareURL string
}

// NewRunner creates a Runner. prefs may be nil when preferences are disabled.
func NewRunner(session *quiz.Session, cat *catalog.Catalog, prefs Preferences, logger *zap.Logger, shareURL string) *Runner {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Runner{
		session:  session,
		catalog:  cat,
		prefs:    prefs,
		logger:   logger,
		shareURL: shareURL,
	}
}

// Do runs fn against the session under the lock and returns the resulting
// status. When fn moves the session to the result step, the result type is
// saved as the last result.
func (r *Runner) Do(fn func(s *quiz.Session) error) (quiz.Status, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	before := r.session.Step()
	err := fn(r.session)
	st := r.session.Status()
	if before != quiz.StepResult && st.Step == quiz.StepResult && st.Result != nil {
		r.remember(st.Result.Type.ID)
	}
	return st, err
}

// Status returns a snapshot of the session.
func (r *Runner) Status() quiz.Status {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.session.Status()
}

// Catalog returns the content catalog.
func (r *Runner) Catalog() *catalog.Catalog { return r.catalog }

// ShareURL returns the configured share link, possibly empty.
func (r *Runner) ShareURL() string { return r.shareURL }

// LastResultType returns the remembered result type id, or "".
// Preference failures are logged and treated as absent.
func (r *Runner) LastResultType() string {
	if r.prefs == nil {
		return ""
	}
	id, ok, err := r.prefs.LastResultType()
	if err != nil {
		r.logger.Warn("reading last result failed", zap.Error(err))
		return ""
	}
	if !ok {
		return ""
	}
	return id
}

func (r *Runner) remember(id string) {
	if r.prefs == nil {
		return
	}
	if err := r.prefs.SetLastResultType(id); err != nil {
		r.logger.Warn("saving last result failed", zap.String("type", id), zap.Error(err))
	}
}
