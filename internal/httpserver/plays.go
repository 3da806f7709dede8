// internal/httpserver/plays.go
//
// Persistence of play history. A "play" is one round of a session: it is
// inserted when the session starts or restarts and its score/word count is
// refreshed after every accepted word.
//
// Rows belong either to a user (user_id) or to a guest (anonymous_id); guest
// rows are claimed by the account on signup/login.

package httpserver

import (
	"context"
	"database/sql"
	"errors"
	"net/http"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordscramble/internal/game"
)

// owner identifies who a play belongs to. Exactly one field is set.
type owner struct {
	userID string
	anonID string
}

// id is the player key for daily results. It is never sent to clients.
func (o owner) id() string {
	if o.userID != "" {
		return o.userID
	}
	return o.anonID
}

// ownerOf returns the authenticated user or the (possibly new) guest ID.
func (s *Server) ownerOf(w http.ResponseWriter, r *http.Request) owner {
	if me := currentUser(r); me != nil {
		return owner{userID: me.ID}
	}
	return owner{anonID: s.ensureAnonID(w, r)}
}

func (s *Server) insertPlay(ctx context.Context, o owner, v game.View) {
	now := time.Now().UTC().Format(time.RFC3339)
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO plays (session_id, round, user_id, anonymous_id, mode, root_word, score, words, started_at, updated_at)
		VALUES (?,?,?,?,?,?,?,?,?,?)`,
		v.ID, v.Round, nullable(o.userID), nullable(o.anonID), v.Mode, v.RootWord,
		v.Score, len(v.UsedWords), v.StartedAt.Format(time.RFC3339), now)
	if err != nil {
		log.Warn().Err(err).Str("session", v.ID).Int("round", v.Round).Msg("insert play")
	}
}

func (s *Server) updatePlay(ctx context.Context, v game.View) {
	_, err := s.db.ExecContext(ctx, `
		UPDATE plays SET score=?, words=?, updated_at=? WHERE session_id=? AND round=?`,
		v.Score, len(v.UsedWords), time.Now().UTC().Format(time.RFC3339), v.ID, v.Round)
	if err != nil {
		log.Warn().Err(err).Str("session", v.ID).Msg("update play")
	}
}

// ownsPlay reports whether o owns the given round of a session.
func (s *Server) ownsPlay(ctx context.Context, o owner, sessionID string, round int) (bool, error) {
	var userID, anonID string
	err := s.db.QueryRowContext(ctx, `
		SELECT COALESCE(user_id,''), COALESCE(anonymous_id,'') FROM plays WHERE session_id=? AND round=?`,
		sessionID, round,
	).Scan(&userID, &anonID)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	if o.userID != "" {
		return userID == o.userID, nil
	}
	return o.anonID != "" && anonID == o.anonID, nil
}

// claimAnonPlays transfers a guest's plays to a user account after auth.
func (s *Server) claimAnonPlays(anonID, userID string) {
	if anonID == "" || userID == "" {
		return
	}
	if _, err := s.db.Exec(`UPDATE plays SET user_id=?, anonymous_id=NULL WHERE anonymous_id=?`, userID, anonID); err != nil {
		log.Warn().Err(err).Msg("claim anon plays")
	}
}

// playStats summarizes a user's history.
type playStats struct {
	Plays      int `json:"plays"`
	TotalScore int `json:"totalScore"`
	BestScore  int `json:"bestScore"`
	Words      int `json:"words"`
}

func (s *Server) userStats(ctx context.Context, userID string) (playStats, error) {
	var st playStats
	err := s.db.QueryRowContext(ctx, `
		SELECT COUNT(*), COALESCE(SUM(score),0), COALESCE(MAX(score),0), COALESCE(SUM(words),0)
		FROM plays WHERE user_id=?`, userID,
	).Scan(&st.Plays, &st.TotalScore, &st.BestScore, &st.Words)
	return st, err
}

type playRow struct {
	SessionID string `json:"sessionId"`
	Round     int    `json:"round"`
	Mode      string `json:"mode"`
	RootWord  string `json:"rootWord"`
	Score     int    `json:"score"`
	Words     int    `json:"words"`
	StartedAt string `json:"startedAt"`
}

func (s *Server) recentPlays(ctx context.Context, userID string, limit int) ([]playRow, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT session_id, round, mode, root_word, score, words, started_at
		FROM plays WHERE user_id=? ORDER BY started_at DESC, round DESC LIMIT ?`, userID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []playRow{}
	for rows.Next() {
		var p playRow
		if err := rows.Scan(&p.SessionID, &p.Round, &p.Mode, &p.RootWord, &p.Score, &p.Words, &p.StartedAt); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

// nullable maps "" to SQL NULL.
func nullable(s string) any {
	if s == "" {
		return nil
	}
	return s
}
