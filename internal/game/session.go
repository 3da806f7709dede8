// internal/game/session.go
//
// Session state for one player.
// Responsibilities:
//   - Hold the root word, used words (newest first) and score.
//   - Apply side effects only after Validate accepts a word.
//   - Restart: new root word, cleared words and score, next round.
//
// There is no terminal state; a session plays until it is discarded.

package game

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// Session modes.
const (
	ModeNormal = "normal"
	ModeDaily  = "daily"
)

// Session is the mutable state of one play session.
// Methods are safe for concurrent use; submissions are applied one at a time.
type Session struct {
	mu sync.Mutex

	ID        string
	Mode      string
	RootWord  string   // lowercase
	UsedWords []string // newest first
	Score     int
	Round     int // 1 for the first root word, +1 per restart
	StartedAt time.Time
}

// View is a point-in-time copy of a Session, safe to encode.
type View struct {
	ID        string    `json:"id"`
	Mode      string    `json:"mode"`
	RootWord  string    `json:"rootWord"`
	UsedWords []string  `json:"usedWords"`
	Score     int       `json:"score"`
	Round     int       `json:"round"`
	StartedAt time.Time `json:"startedAt"`
}

// NewSession starts a session on root. An empty mode means ModeNormal.
func NewSession(root, mode string) *Session {
	if mode == "" {
		mode = ModeNormal
	}
	return &Session{
		ID:        uuid.NewString(),
		Mode:      mode,
		RootWord:  Normalize(root),
		UsedWords: []string{},
		Round:     1,
		StartedAt: time.Now().UTC(),
	}
}

// Submit validates candidate and, if accepted, prepends it to UsedWords and
// adds its length to Score. Rejected and blank input leave state untouched.
func (s *Session) Submit(candidate string, lex Lexicon) Result {
	s.mu.Lock()
	defer s.mu.Unlock()

	res := Validate(candidate, s.RootWord, s.UsedWords, lex)
	if res.Accepted() {
		s.UsedWords = append([]string{res.Word}, s.UsedWords...)
		s.Score += res.ScoreDelta
	}
	return res
}

// Restart switches to root and clears words and score.
// root may equal the previous root word.
func (s *Session) Restart(root string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.RootWord = Normalize(root)
	s.UsedWords = []string{}
	s.Score = 0
	s.Round++
	s.StartedAt = time.Now().UTC()
}

// Snapshot returns a copy of the current state.
func (s *Session) Snapshot() View {
	s.mu.Lock()
	defer s.mu.Unlock()

	used := make([]string, len(s.UsedWords))
	copy(used, s.UsedWords)
	return View{
		ID:        s.ID,
		Mode:      s.Mode,
		RootWord:  s.RootWord,
		UsedWords: used,
		Score:     s.Score,
		Round:     s.Round,
		StartedAt: s.StartedAt,
	}
}
