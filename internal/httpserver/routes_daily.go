// internal/httpserver/routes_daily.go
//
// HTTP routes for the daily challenge. Everyone plays the same root word on
// the same UTC date (see daily.RootIndex).
//   - GET  /daily/today       → today's date and root word
//   - POST /daily/submit      → record a daily session's score (best per player/day)
//   - GET  /daily/leaderboard → top 20 for today (or ?date=YYYY-MM-DD)
//
// Daily sessions are started with POST /session/new {"mode":"daily"}.

package httpserver

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordscramble/internal/daily"
	"github.com/robalobadob/wordscramble/internal/game"
)

type dailyServer struct {
	srv   *Server
	store *daily.Store
}

func (s *Server) mountDaily(r chi.Router) {
	dd := &dailyServer{srv: s, store: daily.NewStore(s.db)}
	r.Route("/daily", func(r chi.Router) {
		r.Get("/today", dd.handleToday)
		r.Post("/submit", dd.handleSubmit)
		r.Get("/leaderboard", dd.handleLeaderboard)
	})
}

type todayRes struct {
	Date     string `json:"date"`
	RootWord string `json:"rootWord"`
}

func (d *dailyServer) handleToday(w http.ResponseWriter, r *http.Request) {
	date, _, root := d.srv.dailyRoot()
	writeJSON(w, http.StatusOK, todayRes{Date: date, RootWord: root})
}

type dailySubmitReq struct {
	SessionID string `json:"sessionId"`
}

type dailySubmitRes struct {
	Recorded daily.Result `json:"recorded"`
	Best     daily.Result `json:"best"`
}

// handleSubmit records the current score of a daily session for today.
// The caller must own the session, and it must be in daily mode and still
// on today's root word.
func (d *dailyServer) handleSubmit(w http.ResponseWriter, r *http.Request) {
	var req dailySubmitReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.SessionID == "" {
		writeError(w, http.StatusBadRequest, "bad_request")
		return
	}
	sess, err := d.srv.store.Get(r.Context(), req.SessionID)
	if err != nil {
		writeError(w, http.StatusNotFound, "session_not_found")
		return
	}
	v := sess.Snapshot()
	player := d.srv.ownerOf(w, r)
	owned, err := d.srv.ownsPlay(r.Context(), player, v.ID, v.Round)
	if err != nil {
		log.Error().Err(err).Str("session", v.ID).Msg("check session owner")
		writeError(w, http.StatusInternalServerError, "db_error")
		return
	}
	if !owned {
		writeError(w, http.StatusForbidden, "not_your_session")
		return
	}

	date, idx, root := d.srv.dailyRoot()
	if v.Mode != game.ModeDaily || v.RootWord != root {
		writeError(w, http.StatusConflict, "not_todays_daily")
		return
	}

	res := daily.Result{
		PlayerID:  player.id(),
		Date:      date,
		WordIndex: idx,
		RootWord:  root,
		Score:     v.Score,
		Words:     len(v.UsedWords),
	}
	if err := d.store.Record(r.Context(), res); err != nil {
		log.Error().Err(err).Str("session", v.ID).Msg("record daily result")
		writeError(w, http.StatusInternalServerError, "db_error")
		return
	}
	best, _, err := d.store.Best(r.Context(), res.PlayerID, date)
	if err != nil {
		log.Error().Err(err).Msg("load daily best")
		writeError(w, http.StatusInternalServerError, "db_error")
		return
	}
	res.Player = best.Player
	writeJSON(w, http.StatusOK, dailySubmitRes{Recorded: res, Best: best})
}

type lbRes struct {
	Date string         `json:"date"`
	Top  []daily.Result `json:"top"`
}

func (d *dailyServer) handleLeaderboard(w http.ResponseWriter, r *http.Request) {
	date := r.URL.Query().Get("date")
	if date == "" {
		date, _, _ = d.srv.dailyRoot()
	}
	rows, err := d.store.Leaderboard(r.Context(), date, 20)
	if err != nil {
		log.Error().Err(err).Msg("daily leaderboard")
		writeError(w, http.StatusInternalServerError, "db_error")
		return
	}
	writeJSON(w, http.StatusOK, lbRes{Date: date, Top: rows})
}
