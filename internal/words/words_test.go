package words

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robalobadob/wordscramble/assets"
	"github.com/robalobadob/wordscramble/internal/game"
)

func TestNewCatalogNormalizes(t *testing.T) {
	c, err := NewCatalog([]string{" SilkWorm ", "lap top", "Laptop", "x1"}, []string{"Silk", "worm"})
	require.NoError(t, err)

	roots, dict := c.Stats()
	assert.Equal(t, 2, roots)
	assert.Equal(t, 2, dict)
	assert.Equal(t, "silkworm", c.RootAt(0))
	assert.Equal(t, "laptop", c.RootAt(1))
	assert.Equal(t, "laptop", c.RootAt(-1))
	assert.Equal(t, "silkworm", c.RootAt(2))
}

func TestNewCatalogEmpty(t *testing.T) {
	_, err := NewCatalog([]string{"", "123"}, nil)
	assert.ErrorIs(t, err, ErrEmptyList)
}

func TestRandomRootComesFromList(t *testing.T) {
	roots := []string{"silkworm", "laptop", "keyboard"}
	c, err := NewCatalog(roots, nil)
	require.NoError(t, err)

	for i := 0; i < 50; i++ {
		assert.Contains(t, roots, c.RandomRoot())
	}
}

func TestLexicon(t *testing.T) {
	l := NewLexicon([]string{"Silk", "worm", ""})
	assert.True(t, l.IsValidWord("silk", "en"))
	assert.True(t, l.IsValidWord(" SILK ", "en"))
	assert.False(t, l.IsValidWord("wilk", "en"))
	assert.False(t, l.IsValidWord("silk", "fr"))
	assert.Equal(t, 2, l.Len())
}

func TestReadList(t *testing.T) {
	got, err := ReadList(strings.NewReader("# header\nsilkworm\n\n  laptop  \n"))
	require.NoError(t, err)
	assert.Equal(t, []string{"silkworm", "laptop"}, got)
}

func TestLoadListFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "start.txt")
	require.NoError(t, os.WriteFile(path, []byte("keyboard\nmountain\n"), 0o644))

	got, err := loadList(path, assets.StartWords)
	require.NoError(t, err)
	assert.Equal(t, []string{"keyboard", "mountain"}, got)
}

func TestLoadListMissingFile(t *testing.T) {
	_, err := loadList(filepath.Join(t.TempDir(), "nope.txt"), assets.StartWords)
	assert.Error(t, err)
}

func TestInitEmbedded(t *testing.T) {
	require.NoError(t, Init("", ""))
	require.NotNil(t, Default())

	roots, dict := Default().Stats()
	assert.Positive(t, roots)
	assert.Positive(t, dict)
	assert.True(t, Default().IsValidWord("silk", "en"))
	assert.NotEmpty(t, Default().RandomRoot())
}

func TestEmbeddedDictionaryCommonWords(t *testing.T) {
	require.NoError(t, Init("", ""))
	for _, w := range []string{"back", "pack", "owls", "rows", "lows", "silk", "worm", "plot", "atop"} {
		assert.True(t, Default().IsValidWord(w, "en"), w)
	}
}

// Every embedded root word leaves the player something to find.
func TestEmbeddedRootsArePlayable(t *testing.T) {
	f, err := assets.Open(assets.StartWords)
	require.NoError(t, err)
	defer f.Close()
	roots, err := ReadList(f)
	require.NoError(t, err)

	d, err := assets.Open(assets.Dictionary)
	require.NoError(t, err)
	defer d.Close()
	dict, err := ReadList(d)
	require.NoError(t, err)
	lex := NewLexicon(dict)
	assert.Greater(t, lex.Len(), 20000)

	for _, root := range normalize(roots) {
		found := 0
		for _, w := range dict {
			if len(w) >= game.MinWordLength && game.Validate(w, root, nil, lex).Accepted() {
				found++
			}
		}
		assert.GreaterOrEqual(t, found, 4, root)
	}
}
