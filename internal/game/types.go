// internal/game/types.go
//
// Core type definitions for the word scramble engine.
// Defines:
//   - Reason: why a submitted word was rejected, with its user-facing copy.
//   - Status/Result: outcome of validating a single candidate word.
//   - Lexicon: the dictionary capability the validator consults.

package game

// English is the only language the lexicon lookup is asked for.
const English = "en"

// MinWordLength is the shortest accepted word, in letters.
const MinWordLength = 4

// Lexicon reports whether word is a real word in lang.
// Implementations may be a bundled word list, an external API, etc.
type Lexicon interface {
	IsValidWord(word, lang string) bool
}

// LexiconFunc adapts a plain function to Lexicon.
type LexiconFunc func(word, lang string) bool

// IsValidWord calls f(word, lang).
func (f LexiconFunc) IsValidWord(word, lang string) bool { return f(word, lang) }

// Reason identifies a rejection. The set is closed.
type Reason string

const (
	ReasonTooShort    Reason = "too_short"
	ReasonIsRootWord  Reason = "is_root_word"
	ReasonAlreadyUsed Reason = "already_used"
	ReasonNotPossible Reason = "not_possible"
	ReasonNotRealWord Reason = "not_real_word"
)

type copyText struct{ title, message string }

var reasonText = map[Reason]copyText{
	ReasonTooShort:    {"Word is too short", "You can't add a word with less than four letters"},
	ReasonIsRootWord:  {"Word is the root word", "Nice try! The root word doesn't count"},
	ReasonAlreadyUsed: {"Word used already", "Be more original"},
	ReasonNotPossible: {"Word not possible", "You can't spell that word from the root word"},
	ReasonNotRealWord: {"Word not recognised", "You can't just make them up, you know"},
}

// Title is the short heading shown to the player.
func (r Reason) Title() string { return reasonText[r].title }

// Message is the body text shown under Title.
func (r Reason) Message() string { return reasonText[r].message }

// Status is the coarse outcome of a submission.
type Status string

const (
	StatusAccepted Status = "accepted"
	StatusRejected Status = "rejected"
	StatusIgnored  Status = "ignored" // blank input; not an error
)

// Result is what Validate returns for one candidate.
type Result struct {
	Status     Status // accepted | rejected | ignored
	Word       string // normalized candidate (trimmed, lowercased)
	Reason     Reason // set only when Status == StatusRejected
	ScoreDelta int    // set only when Status == StatusAccepted
}

// Accepted reports whether the word passed every check.
func (r Result) Accepted() bool { return r.Status == StatusAccepted }

func accepted(word string, delta int) Result {
	return Result{Status: StatusAccepted, Word: word, ScoreDelta: delta}
}

func rejected(word string, why Reason) Result {
	return Result{Status: StatusRejected, Word: word, Reason: why}
}
