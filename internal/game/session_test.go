package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSession(t *testing.T) {
	s := NewSession("SilkWorm", "")
	assert.NotEmpty(t, s.ID)
	assert.Equal(t, "silkworm", s.RootWord)
	assert.Equal(t, ModeNormal, s.Mode)
	assert.Equal(t, 1, s.Round)
	assert.Empty(t, s.UsedWords)
	assert.Zero(t, s.Score)
}

func TestSubmitAcceptsAndPrepends(t *testing.T) {
	s := NewSession("laptop", ModeNormal)
	lex := lexiconOf("plot", "atop")

	res := s.Submit("plot", lex)
	require.True(t, res.Accepted())
	assert.Equal(t, 4, res.ScoreDelta)

	res = s.Submit("Atop", lex)
	require.True(t, res.Accepted())

	v := s.Snapshot()
	assert.Equal(t, []string{"atop", "plot"}, v.UsedWords)
	assert.Equal(t, 8, v.Score)
}

func TestSubmitSameWordTwice(t *testing.T) {
	s := NewSession("silkworm", ModeNormal)
	lex := lexiconOf("silk")

	first := s.Submit("silk", lex)
	second := s.Submit("silk", lex)

	assert.Equal(t, StatusAccepted, first.Status)
	assert.Equal(t, StatusRejected, second.Status)
	assert.Equal(t, ReasonAlreadyUsed, second.Reason)
	assert.Equal(t, 4, s.Snapshot().Score)
}

func TestSubmitRejectionAndBlankLeaveStateAlone(t *testing.T) {
	s := NewSession("silkworm", ModeNormal)
	lex := lexiconOf("worm")
	require.True(t, s.Submit("worm", lex).Accepted())
	before := s.Snapshot()

	for _, in := range []string{"", "  \t", "zzzz", "wok", "silkworm", "worm", "wilk"} {
		res := s.Submit(in, lex)
		assert.False(t, res.Accepted(), in)
	}
	assert.Equal(t, before, s.Snapshot())
}

func TestRestartClearsState(t *testing.T) {
	s := NewSession("silkworm", ModeNormal)
	require.True(t, s.Submit("silk", lexiconOf("silk")).Accepted())

	s.Restart("Laptop")
	v := s.Snapshot()
	assert.Equal(t, "laptop", v.RootWord)
	assert.Empty(t, v.UsedWords)
	assert.Zero(t, v.Score)
	assert.Equal(t, 2, v.Round)

	// Same root again is allowed.
	s.Restart("laptop")
	assert.Equal(t, "laptop", s.Snapshot().RootWord)
	assert.Equal(t, 3, s.Snapshot().Round)
}

func TestSnapshotIsACopy(t *testing.T) {
	s := NewSession("silkworm", ModeNormal)
	require.True(t, s.Submit("silk", lexiconOf("silk")).Accepted())

	v := s.Snapshot()
	v.UsedWords[0] = "changed"
	assert.Equal(t, "silk", s.Snapshot().UsedWords[0])
}
