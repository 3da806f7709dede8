// internal/httpserver/server.go
//
// HTTP server wiring for the Word Scramble backend.
// Responsibilities:
//   - Router + middleware (JSON, CORS, timeouts, panic recovery, request IDs).
//   - Public endpoints: "/", "/health", "/debug/words".
//   - Session endpoints (optional auth): new, get, submit word, restart.
//   - Daily challenge endpoints (optional auth): mounted under /daily.
//   - Account + stats endpoints: /auth/*, /stats/me, /sessions/mine (auth.go).
//
// Notes:
//   - Rejected words are a normal game outcome and return 200 with
//     status "rejected"; only malformed requests get 4xx.
//   - Each accepted word and each restart is mirrored into the plays table
//     (best effort; failures are logged, never surfaced).

package httpserver

import (
	"database/sql"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordscramble/internal/config"
	"github.com/robalobadob/wordscramble/internal/daily"
	"github.com/robalobadob/wordscramble/internal/game"
	"github.com/robalobadob/wordscramble/internal/store"
)

// Vocabulary is what the server needs from the word lists.
// *words.Catalog satisfies it.
type Vocabulary interface {
	game.Lexicon
	RandomRoot() string
	RootAt(i int) string
	NumRoots() int
	Stats() (rootCount int, dictionaryCount int)
}

// Server bundles router, session store, DB handle and word lists.
type Server struct {
	r     *chi.Mux
	cfg   *config.Config
	store store.Store
	db    *sql.DB
	vocab Vocabulary
	now   func() time.Time
}

// New constructs a Server, installs middleware, and registers routes.
func New(cfg *config.Config, st store.Store, db *sql.DB, vocab Vocabulary) *Server {
	s := &Server{r: chi.NewRouter(), cfg: cfg, store: st, db: db, vocab: vocab, now: time.Now}

	s.r.Use(chimw.RequestID)
	s.r.Use(chimw.RealIP)
	s.r.Use(chimw.Recoverer)
	s.r.Use(chimw.Timeout(10 * time.Second))
	s.r.Use(jsonContentType)
	s.r.Use(s.cors)

	s.r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"service":"wordscramble","endpoints":["/health","POST /session/new","POST /session/{id}/word","POST /session/{id}/restart","/daily/*","/auth/*"]}`))
	})
	s.r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"ok":true}`))
	})
	s.r.Get("/debug/words", func(w http.ResponseWriter, r *http.Request) {
		roots, dict := s.vocab.Stats()
		writeJSON(w, http.StatusOK, map[string]int{"roots": roots, "dictionary": dict, "sessions": s.store.Len()})
	})

	s.r.Group(func(r chi.Router) {
		r.Use(s.withOptionalAuth())
		r.Post("/session/new", s.handleNewSession)
		r.Get("/session/{id}", s.handleGetSession)
		r.Post("/session/{id}/word", s.handleWord)
		r.Post("/session/{id}/restart", s.handleRestart)
		s.mountDaily(r)
	})

	s.mountAuthRoutes()

	s.r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusNotFound, "not_found")
	})

	return s
}

// Start begins serving HTTP on addr.
func (s *Server) Start(addr string) error {
	srv := &http.Server{Addr: addr, Handler: s.r, ReadHeaderTimeout: 5 * time.Second}
	return srv.ListenAndServe()
}

// Router exposes the internal router (useful for tests).
func (s *Server) Router() chi.Router { return s.r }

// ----------------------------- middleware ----------------------------------

func jsonContentType(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		next.ServeHTTP(w, r)
	})
}

// cors enables credentialed CORS for the configured client origin.
func (s *Server) cors(next http.Handler) http.Handler {
	origin := s.cfg.ClientOrigin
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Vary", "Origin")
		w.Header().Set("Access-Control-Allow-Origin", origin)
		w.Header().Set("Access-Control-Allow-Credentials", "true")
		w.Header().Set("Access-Control-Allow-Methods", "GET,POST,OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// ------------------------------ SESSION ------------------------------------

type newSessionReq struct {
	Mode string `json:"mode"` // "normal" (default) | "daily"
}

// handleNewSession picks a root word and starts a session.
func (s *Server) handleNewSession(w http.ResponseWriter, r *http.Request) {
	var req newSessionReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		writeError(w, http.StatusBadRequest, "bad_json")
		return
	}
	if req.Mode == "" {
		req.Mode = game.ModeNormal
	}
	if req.Mode != game.ModeNormal && req.Mode != game.ModeDaily {
		writeError(w, http.StatusBadRequest, "unknown_mode")
		return
	}

	sess := game.NewSession(s.rootFor(req.Mode), req.Mode)
	if err := s.store.Save(r.Context(), sess); err != nil {
		log.Error().Err(err).Msg("save session")
		writeError(w, http.StatusInternalServerError, "save_failed")
		return
	}

	v := sess.Snapshot()
	s.insertPlay(r.Context(), s.ownerOf(w, r), v)
	log.Debug().Str("session", v.ID).Str("mode", v.Mode).Str("root", v.RootWord).Msg("session started")
	writeJSON(w, http.StatusOK, v)
}

func (s *Server) handleGetSession(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.lookup(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, sess.Snapshot())
}

type wordReq struct {
	Word string `json:"word"`
}

type wordRes struct {
	Status     game.Status `json:"status"` // accepted | rejected | ignored
	Word       string      `json:"word,omitempty"`
	Reason     game.Reason `json:"reason,omitempty"`
	Title      string      `json:"title,omitempty"`
	Message    string      `json:"message,omitempty"`
	ScoreDelta int         `json:"scoreDelta,omitempty"`
	Session    game.View   `json:"session"`
}

// handleWord submits a candidate word to a session.
func (s *Server) handleWord(w http.ResponseWriter, r *http.Request) {
	var req wordReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_json")
		return
	}
	sess, ok := s.lookup(w, r)
	if !ok {
		return
	}

	res := sess.Submit(req.Word, s.vocab)
	v := sess.Snapshot()

	out := wordRes{Status: res.Status, Word: res.Word, Session: v}
	switch res.Status {
	case game.StatusAccepted:
		out.ScoreDelta = res.ScoreDelta
		s.updatePlay(r.Context(), v)
	case game.StatusRejected:
		out.Reason = res.Reason
		out.Title = res.Reason.Title()
		out.Message = res.Reason.Message()
	}
	writeJSON(w, http.StatusOK, out)
}

// handleRestart picks a new root word and clears the session's words and score.
// Daily sessions restart on today's daily root word.
func (s *Server) handleRestart(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.lookup(w, r)
	if !ok {
		return
	}
	sess.Restart(s.rootFor(sess.Snapshot().Mode))

	v := sess.Snapshot()
	s.insertPlay(r.Context(), s.ownerOf(w, r), v)
	writeJSON(w, http.StatusOK, v)
}

// rootFor picks the root word for a new round in mode.
func (s *Server) rootFor(mode string) string {
	if mode == game.ModeDaily {
		_, _, root := s.dailyRoot()
		return root
	}
	return s.vocab.RandomRoot()
}

// dailyRoot returns today's date key, word index and root word.
func (s *Server) dailyRoot() (date string, idx int, root string) {
	now := s.now().UTC()
	idx = daily.RootIndex(now, s.cfg.DailySalt, s.vocab.NumRoots())
	return daily.DateKey(now), idx, s.vocab.RootAt(idx)
}

// lookup resolves {id} to a session, writing 404 when missing.
func (s *Server) lookup(w http.ResponseWriter, r *http.Request) (*game.Session, bool) {
	sess, err := s.store.Get(r.Context(), chi.URLParam(r, "id"))
	if errors.Is(err, store.ErrNotFound) {
		writeError(w, http.StatusNotFound, "session_not_found")
		return nil, false
	}
	if err != nil {
		log.Error().Err(err).Msg("load session")
		writeError(w, http.StatusInternalServerError, "load_failed")
		return nil, false
	}
	return sess, true
}

// ------------------------------- util --------------------------------------

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code string) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	writeJSON(w, status, map[string]string{"error": code})
}
