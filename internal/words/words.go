// internal/words/words.go
//
// Word list management for the game engine.
//
// Responsibilities:
//   - Load the root-word list and the English lexicon from files named in
//     config, or fall back to the lists embedded in the assets package.
//   - Pick root words uniformly at random (with replacement).
//   - Answer dictionary lookups (see lexicon.go).
//
// Initialization behavior (Init):
//   1. If startFile is set, read root words from it; otherwise use assets/start.txt.
//   2. If dictFile is set, read the lexicon from it; otherwise use assets/dictionary.txt.
//   3. An empty root-word list is an error. The caller is expected to treat it as fatal.
//
// Lists are trimmed and lowercased; blank lines and "#" comments are skipped.

package words

import (
	"bufio"
	"crypto/rand"
	"errors"
	"fmt"
	"io"
	"math/big"
	"os"
	"strings"
	"sync"
	"unicode"

	"github.com/robalobadob/wordscramble/assets"
	"github.com/robalobadob/wordscramble/internal/game"
)

// ErrEmptyList is returned when no usable root words were loaded.
var ErrEmptyList = errors.New("words: root word list is empty")

// Catalog holds the root words and the lexicon for one server.
type Catalog struct {
	roots []string
	lex   *Lexicon
}

// NewCatalog normalizes roots and dictionary and builds a Catalog.
func NewCatalog(roots, dictionary []string) (*Catalog, error) {
	r := normalize(roots)
	if len(r) == 0 {
		return nil, ErrEmptyList
	}
	return &Catalog{roots: r, lex: NewLexicon(dictionary)}, nil
}

// RandomRoot returns a cryptographically random root word.
func (c *Catalog) RandomRoot() string {
	n, _ := rand.Int(rand.Reader, big.NewInt(int64(len(c.roots))))
	return c.roots[n.Int64()]
}

// RootAt returns the root word at index i modulo the list size.
func (c *Catalog) RootAt(i int) string {
	n := len(c.roots)
	return c.roots[((i%n)+n)%n]
}

// NumRoots is the number of root words loaded.
func (c *Catalog) NumRoots() int { return len(c.roots) }

// IsValidWord implements game.Lexicon.
func (c *Catalog) IsValidWord(word, lang string) bool { return c.lex.IsValidWord(word, lang) }

// Stats returns counts of loaded words: (roots, dictionary).
func (c *Catalog) Stats() (rootCount int, dictionaryCount int) {
	return len(c.roots), c.lex.Len()
}

var (
	initOnce   sync.Once
	defaultCat *Catalog
	initErr    error
)

// Init loads the default catalog exactly once.
func Init(startFile, dictFile string) error {
	initOnce.Do(func() {
		roots, err := loadList(startFile, assets.StartWords)
		if err != nil {
			initErr = fmt.Errorf("load root words: %w", err)
			return
		}
		dict, err := loadList(dictFile, assets.Dictionary)
		if err != nil {
			initErr = fmt.Errorf("load dictionary: %w", err)
			return
		}
		defaultCat, initErr = NewCatalog(roots, dict)
	})
	return initErr
}

// Default returns the catalog loaded by Init, or nil before that.
func Default() *Catalog { return defaultCat }

// loadList reads path, or the embedded list named embedded when path is empty.
func loadList(path, embedded string) ([]string, error) {
	var (
		f   io.ReadCloser
		err error
	)
	if path == "" {
		f, err = assets.Open(embedded)
	} else {
		f, err = os.Open(path)
	}
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ReadList(f)
}

// ReadList reads one word per line from r.
func ReadList(r io.Reader) ([]string, error) {
	var out []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		s := strings.TrimSpace(sc.Text())
		if s == "" || strings.HasPrefix(s, "#") {
			continue
		}
		out = append(out, s)
	}
	return out, sc.Err()
}

// normalize lowercases every entry and drops anything that is not purely letters.
func normalize(list []string) []string {
	out := make([]string, 0, len(list))
	for _, w := range list {
		w = game.Normalize(w)
		if w != "" && isAlpha(w) {
			out = append(out, w)
		}
	}
	return out
}

func isAlpha(s string) bool {
	for _, r := range s {
		if !unicode.IsLetter(r) {
			return false
		}
	}
	return true
}
