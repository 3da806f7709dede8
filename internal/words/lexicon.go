package words

import "github.com/robalobadob/wordscramble/internal/game"

// Lexicon is a bundled English word list.
type Lexicon struct {
	set map[string]struct{}
}

// NewLexicon builds a lexicon from list. Entries are normalized like candidates.
func NewLexicon(list []string) *Lexicon {
	norm := normalize(list)
	m := make(map[string]struct{}, len(norm))
	for _, w := range norm {
		m[w] = struct{}{}
	}
	return &Lexicon{set: m}
}

// IsValidWord reports whether word is in the list. Only English is supported.
func (l *Lexicon) IsValidWord(word, lang string) bool {
	if lang != game.English {
		return false
	}
	_, ok := l.set[game.Normalize(word)]
	return ok
}

// Len is the number of distinct words.
func (l *Lexicon) Len() int { return len(l.set) }
