// Package http serves the web front end: a single session-backed page
// showing the transcript so far, with one control to advance the
// sequence and one to reset it.
package http

import (
	"context"
	"errors"
	"fmt"
	"html/template"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/404-atomic/soulmate-flow/internal/logging"
	"github.com/404-atomic/soulmate-flow/pkg/domain"
	"github.com/404-atomic/soulmate-flow/pkg/observability"
	"github.com/404-atomic/soulmate-flow/pkg/session"
)

// SessionCookie identifies the browser session. State is keyed by its
// value; the cookie itself carries no state.
const SessionCookie = "soulmate_session"

// Sequencer defines the interface the web front end needs from the core.
type Sequencer interface {
	Script() domain.Script
	HasNext(state *domain.State) bool
	Advance(ctx context.Context, state *domain.State) (string, error)
	Reset(state *domain.State)
}

// Server renders the step-by-step conversation page.
type Server struct {
	seq      Sequencer
	sessions *session.Manager
	metrics  *observability.Metrics
	logger   *slog.Logger
	tmpl     *template.Template
}

// Option configures the Server.
type Option func(*Server)

// WithLogger sets the request logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Server) {
		s.logger = logger
	}
}

// WithMetrics exposes the given metrics set on GET /metrics.
func WithMetrics(m *observability.Metrics) Option {
	return func(s *Server) {
		s.metrics = m
	}
}

// NewServer creates the web front end over a sequencer and session manager.
func NewServer(seq Sequencer, sessions *session.Manager, opts ...Option) *Server {
	s := &Server{
		seq:      seq,
		sessions: sessions,
		logger:   logging.NewNop(),
		tmpl:     template.Must(template.New("page").Parse(pageHTML)),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Handler returns the HTTP handler for the front end.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()

	r.Get("/", s.handleIndex)
	r.Post("/advance", s.handleAdvance)
	r.Post("/reset", s.handleReset)
	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		fmt.Fprintln(w, "ok")
	})
	r.Method(http.MethodGet, "/metrics", s.metrics.Handler())

	return r
}

// sessionID reads the session cookie, issuing a fresh ID when absent.
func (s *Server) sessionID(w http.ResponseWriter, r *http.Request) string {
	if c, err := r.Cookie(SessionCookie); err == nil && c.Value != "" {
		return c.Value
	}

	id := uuid.NewString()
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookie,
		Value:    id,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	s.metrics.ObserveSessionStart()
	s.logger.Info("session started", "session_id", id)
	return id
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	id := s.sessionID(w, r)
	s.renderPage(w, r, id, nil)
}

func (s *Server) handleAdvance(w http.ResponseWriter, r *http.Request) {
	id := s.sessionID(w, r)

	err := s.sessions.Update(r.Context(), id, func(state *domain.State) error {
		_, err := s.seq.Advance(r.Context(), state)
		return err
	})
	if err != nil {
		// Cursor unchanged; the user may retry by re-clicking.
		s.logger.Warn("advance failed", "session_id", id, "error", err)
		s.renderPage(w, r, id, err)
		return
	}

	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (s *Server) handleReset(w http.ResponseWriter, r *http.Request) {
	id := s.sessionID(w, r)

	err := s.sessions.Update(r.Context(), id, func(state *domain.State) error {
		s.seq.Reset(state)
		return nil
	})
	if err != nil {
		s.logger.Error("reset failed", "session_id", id, "error", err)
		s.renderPage(w, r, id, err)
		return
	}

	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// pageData is the template payload for one render.
type pageData struct {
	Transcript []domain.Turn
	Cursor     int
	Total      int
	HasNext    bool
	NextPrompt string
	Error      string
}

func (s *Server) renderPage(w http.ResponseWriter, r *http.Request, sessionID string, pageErr error) {
	state, err := s.sessions.Load(r.Context(), sessionID)
	if err != nil {
		if !errors.Is(err, domain.ErrSessionNotFound) {
			http.Error(w, fmt.Sprintf("failed to load session: %v", err), http.StatusInternalServerError)
			return
		}
		// Expired or brand-new session: same as a reset.
		state = domain.NewState()
	}

	data := pageData{
		Transcript: state.Transcript,
		Cursor:     state.Cursor,
		Total:      s.seq.Script().Len(),
		HasNext:    s.seq.HasNext(state),
	}
	if data.HasNext {
		data.NextPrompt = s.seq.Script().At(state.Cursor).Prompt
	}
	if pageErr != nil {
		data.Error = pageErr.Error()
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := s.tmpl.Execute(w, data); err != nil {
		s.logger.Error("template render failed", "error", err)
	}
}

const pageHTML = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>soulmate-flow</title>
<style>
  body { font-family: system-ui, sans-serif; max-width: 42rem; margin: 2rem auto; padding: 0 1rem; }
  .turn { margin: 0.75rem 0; padding: 0.6rem 0.9rem; border-radius: 0.5rem; white-space: pre-wrap; }
  .user { background: #eef2ff; }
  .assistant { background: #f3f4f6; }
  .role { font-size: 0.75rem; color: #6b7280; text-transform: uppercase; }
  .error { background: #fef2f2; color: #991b1b; padding: 0.6rem 0.9rem; border-radius: 0.5rem; }
  .controls { margin-top: 1.5rem; display: flex; gap: 0.5rem; }
  button { padding: 0.5rem 1.2rem; border-radius: 0.4rem; border: 1px solid #d1d5db; cursor: pointer; }
  .primary { background: #4f46e5; color: white; border: none; }
</style>
</head>
<body>
<h1>Step-by-Step Conversation</h1>
<p>Step {{.Cursor}} of {{.Total}}</p>
{{if .Error}}<div class="error">{{.Error}}</div>{{end}}
{{range .Transcript}}
<div class="turn {{.Role}}"><div class="role">{{.Role}}</div>{{.Content}}</div>
{{else}}
<p>Click Advance to begin.</p>
{{end}}
<div class="controls">
<form method="post" action="/advance">
{{if .HasNext}}<button class="primary" type="submit">Advance &mdash; send {{printf "%q" .NextPrompt}}</button>
{{else}}<button type="submit" disabled>Conversation finished</button>{{end}}
</form>
<form method="post" action="/reset"><button type="submit">Reset</button></form>
</div>
</body>
</html>
`
