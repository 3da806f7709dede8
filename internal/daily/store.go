package daily

import (
	"context"
	"database/sql"
	"errors"
)

// Result is one player's daily score. PlayerID is a user ID or a guest
// cookie value and never leaves the server; Player is the public name.
type Result struct {
	PlayerID  string `json:"-"`
	Player    string `json:"player"`
	Date      string `json:"date"`
	WordIndex int    `json:"wordIndex"`
	RootWord  string `json:"rootWord"`
	Score     int    `json:"score"`
	Words     int    `json:"words"`
}

// Store reads and writes daily_results.
type Store struct{ db *sql.DB }

func NewStore(db *sql.DB) *Store { return &Store{db: db} }

// Record saves r, keeping only the best score per (player, date).
func (s *Store) Record(ctx context.Context, r Result) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO daily_results(player_id, date, word_index, root_word, score, words)
		VALUES(?,?,?,?,?,?)
		ON CONFLICT(player_id, date) DO UPDATE SET
			score = excluded.score,
			words = excluded.words
		WHERE excluded.score > daily_results.score`,
		r.PlayerID, r.Date, r.WordIndex, r.RootWord, r.Score, r.Words,
	)
	return err
}

// guestName is shown for players without an account.
const guestName = "guest"

const selectResult = `
	SELECT d.player_id, COALESCE(u.username, ?), d.date, d.word_index, d.root_word, d.score, d.words
	FROM daily_results d LEFT JOIN users u ON u.id = d.player_id`

func scanResult(sc interface{ Scan(...any) error }, r *Result) error {
	return sc.Scan(&r.PlayerID, &r.Player, &r.Date, &r.WordIndex, &r.RootWord, &r.Score, &r.Words)
}

// Best returns the stored result for a player on date. ok is false if none.
func (s *Store) Best(ctx context.Context, playerID, date string) (r Result, ok bool, err error) {
	err = scanResult(s.db.QueryRowContext(ctx,
		selectResult+` WHERE d.player_id=? AND d.date=?`, guestName, playerID, date,
	), &r)
	if errors.Is(err, sql.ErrNoRows) {
		return Result{}, false, nil
	}
	if err != nil {
		return Result{}, false, err
	}
	return r, true, nil
}

// Leaderboard lists the top results for date: score desc, then fewer words, then earliest.
func (s *Store) Leaderboard(ctx context.Context, date string, limit int) ([]Result, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := s.db.QueryContext(ctx, selectResult+`
		WHERE d.date=?
		ORDER BY d.score DESC, d.words ASC, d.created_at ASC
		LIMIT ?`, guestName, date, limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]Result, 0, limit)
	for rows.Next() {
		var r Result
		if err := scanResult(rows, &r); err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, rows.Err()
}
