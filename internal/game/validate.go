// internal/game/validate.go
//
// Word validation pipeline. Checks run in a fixed order and the first
// failure wins:
//
//  1. blank input       → ignored (no error surfaced)
//  2. shorter than 4    → too_short
//  3. equals root word  → is_root_word
//  4. already used      → already_used
//  5. letters not in root (with multiplicity) → not_possible
//  6. not in lexicon    → not_real_word
//
// Validate never mutates its inputs; the caller applies score/used-word
// updates after an accepted result (see Session.Submit).

package game

import (
	"strings"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Normalize trims surrounding whitespace and lowercases s using English
// casing rules.
func Normalize(s string) string {
	return cases.Lower(language.English).String(strings.TrimSpace(s))
}

// Validate decides whether candidate is an acceptable new word for root,
// given the words already played this session.
func Validate(candidate, root string, used []string, lex Lexicon) Result {
	word := Normalize(candidate)
	n := utf8.RuneCountInString(word)

	if n == 0 {
		return Result{Status: StatusIgnored}
	}
	if n < MinWordLength {
		return rejected(word, ReasonTooShort)
	}
	if word == Normalize(root) {
		return rejected(word, ReasonIsRootWord)
	}
	if contains(used, word) {
		return rejected(word, ReasonAlreadyUsed)
	}
	if !isPossible(word, root) {
		return rejected(word, ReasonNotPossible)
	}
	if lex == nil || !lex.IsValidWord(word, English) {
		return rejected(word, ReasonNotRealWord)
	}
	return accepted(word, n)
}

// isPossible reports whether word can be spelled from root's letters, each
// letter used at most as often as it appears in root.
//
// A working copy of the lowercased root is consumed one letter at a time:
// the first matching position is removed for every letter of word.
func isPossible(word, root string) bool {
	pool := []rune(Normalize(root))
	for _, r := range word {
		i := indexRune(pool, r)
		if i < 0 {
			return false
		}
		pool = append(pool[:i], pool[i+1:]...)
	}
	return true
}

func indexRune(rs []rune, r rune) int {
	for i, x := range rs {
		if x == r {
			return i
		}
	}
	return -1
}

func contains(list []string, w string) bool {
	for _, x := range list {
		if x == w {
			return true
		}
	}
	return false
}
