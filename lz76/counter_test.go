package lz76

import (
	"errors"
	"testing"

	"github.com/forestrie/go-lzsuffix/lzref"
	"github.com/forestrie/go-lzsuffix/lztesting"
	"github.com/forestrie/go-lzsuffix/suffixtree"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func feed(t *testing.T, c *Counter, s string) []bool {
	var closed []bool
	for i := 0; i < len(s); i++ {
		ok, err := c.Append(s[i])
		require.NoError(t, err)
		closed = append(closed, ok)
	}
	return closed
}

func TestPhraseCountScenarios(t *testing.T) {
	tests := []struct {
		name string
		s    string
	}{
		{"empty", ""},
		{"single", "0"},
		{"run", "aaaa"},
		{"alternating", "0101010101"},
		{"kaspar schuster", "0001101001000101"},
		{"banana", "banana"},
		{"mississippi", "mississippi"},
		{"abcabxabcd", "abcabxabcd"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := PhraseCount([]byte(tt.s))
			require.NoError(t, err)
			assert.Equal(t, lzref.PhraseCount76([]byte(tt.s)), got)
		})
	}
}

func TestFixedCounts(t *testing.T) {
	c := New()

	n, err := c.Count([]byte("aaaa"))
	require.NoError(t, err)
	require.Equal(t, 2, n)

	n, err = c.Count([]byte("0101010101"))
	require.NoError(t, err)
	require.Equal(t, 3, n)

	n, err = c.Count([]byte("0001101001000101"))
	require.NoError(t, err)
	require.Equal(t, 6, n)
}

func TestAppendReportsPhraseBoundaries(t *testing.T) {
	c := New()
	// 0 . 001 . 10 . 100 . 1000 . 101
	closed := feed(t, c, "0001101001000101")
	want := []bool{
		true,
		false, false, true,
		false, true,
		false, false, true,
		false, false, false, true,
		false, false, false,
	}
	require.Equal(t, want, closed)
	require.Equal(t, 6, c.Complexity())
}

func TestComplexityIncludesOpenPhrase(t *testing.T) {
	c := New()
	feed(t, c, "01")
	require.Equal(t, 2, c.Complexity())
	require.Empty(t, c.Phrase())

	feed(t, c, "0")
	require.Equal(t, []byte("0"), c.Phrase())
	require.Equal(t, 3, c.Complexity())

	feed(t, c, "1")
	require.Equal(t, []byte("01"), c.Phrase())
	require.Equal(t, 3, c.Complexity())
}

func TestDictionaryLagsByOneSymbol(t *testing.T) {
	tc := lztesting.NewTestContext(t, lztesting.TestConfig{Seed: 3, TestLabelPrefix: "TestDictionaryLagsByOneSymbol"})
	s := tc.RandomString(lztesting.Binary, 64, 64)

	c := New()
	require.Equal(t, 0, c.Dictionary().Len())
	for i, b := range s {
		_, err := c.Append(b)
		require.NoError(t, err)
		require.Equal(t, i, c.Dictionary().Len())
		require.Equal(t, s[:i], c.Dictionary().Text())
	}
	require.NoError(t, c.Dictionary().Validate())
}

func TestAgreesWithReference(t *testing.T) {
	tc := lztesting.NewTestContext(t, lztesting.TestConfig{Seed: 4, TestLabelPrefix: "TestAgreesWithReference"})

	c := New()
	for _, alphabet := range []string{lztesting.Binary, lztesting.Ternary, lztesting.DNA} {
		for i := 0; i < 200; i++ {
			s := tc.RandomString(alphabet, 0, 150)
			got, err := c.Count(s)
			require.NoError(t, err)
			require.Equal(t, lzref.PhraseCount76(s), got, "%q", s)
		}
	}
}

func TestAgreesWithReferenceOnEveryPrefix(t *testing.T) {
	tc := lztesting.NewTestContext(t, lztesting.TestConfig{Seed: 5, TestLabelPrefix: "TestAgreesWithReferenceOnEveryPrefix"})
	s := tc.RandomString(lztesting.Binary, 200, 200)

	c := New()
	ref := lzref.NewState(len(s))
	for _, b := range s {
		got, err := c.Append(b)
		require.NoError(t, err)
		require.Equal(t, ref.Push(b), got)
		require.Equal(t, ref.Complexity(), c.Complexity())
	}
}

func TestAgreesWithReferenceExhaustively(t *testing.T) {
	c := New()
	for l := 1; l <= 12; l++ {
		for _, s := range lztesting.AllStrings(lztesting.Binary, l) {
			got, err := c.Count(s)
			require.NoError(t, err)
			require.Equal(t, lzref.PhraseCount76(s), got, "%q", s)
		}
	}
}

func TestResetIdempotence(t *testing.T) {
	s := []byte("0110100110010110100101100110")

	fresh, err := New().Count(s)
	require.NoError(t, err)

	c := New()
	feed(t, c, "111000111")
	c.Reset()
	require.Equal(t, 0, c.Complexity())
	require.Equal(t, 0, c.Dictionary().Len())

	for _, b := range s {
		_, err := c.Append(b)
		require.NoError(t, err)
	}
	require.Equal(t, fresh, c.Complexity())

	again, err := c.Count(s)
	require.NoError(t, err)
	require.Equal(t, fresh, again)
}

func TestEmptyItemLeavesCounterUsable(t *testing.T) {
	c := New()
	n, err := c.Count(nil)
	require.NoError(t, err)
	require.Equal(t, 0, n)

	n, err = c.Count([]byte("aaaa"))
	require.NoError(t, err)
	require.Equal(t, 2, n)

	n, err = c.Count([]byte{})
	require.NoError(t, err)
	require.Equal(t, 0, n)
}

func TestCapacityErrorSurfaces(t *testing.T) {
	// The dictionary holds one symbol less than the input, so a bound of 3
	// admits 4 input symbols.
	c := New(suffixtree.WithMaxText(3))
	feed(t, c, "abcd")

	_, err := c.Append('e')
	require.ErrorIs(t, err, suffixtree.ErrCapacityExceeded)

	// A refused commit leaves the counter as it was.
	require.Equal(t, 4, c.Complexity())
	require.Empty(t, c.Phrase())
	require.Equal(t, 3, c.Dictionary().Len())
	require.Equal(t, [][]byte{[]byte("a"), []byte("b"), []byte("c"), []byte("d")}, c.Phrases())

	c.Reset()
	n, err := c.Count([]byte("abab"))
	require.NoError(t, err)
	require.Equal(t, lzref.PhraseCount76([]byte("abab")), n)
}

func TestPhrasesSplitsInput(t *testing.T) {
	c := New()
	require.Empty(t, c.Phrases())

	feed(t, c, "0001101001000101")
	want := [][]byte{
		[]byte("0"), []byte("001"), []byte("10"), []byte("100"), []byte("1000"), []byte("101"),
	}
	require.Equal(t, want, c.Phrases())

	// The open phrase is listed last.
	c.Reset()
	feed(t, c, "aaaa")
	require.Equal(t, [][]byte{[]byte("a"), []byte("aaa")}, c.Phrases())
	require.Equal(t, []byte("aaa"), c.Phrase())

	c.Reset()
	require.Empty(t, c.Phrases())
}

func TestPhrasesConcatenateToInput(t *testing.T) {
	tc := lztesting.NewTestContext(t, lztesting.TestConfig{Seed: 6, TestLabelPrefix: "TestPhrasesConcatenateToInput"})

	c := New()
	for i := 0; i < 50; i++ {
		s := tc.RandomString(lztesting.Ternary, 0, 100)
		n, err := c.Count(s)
		require.NoError(t, err)

		phrases := c.Phrases()
		require.Len(t, phrases, n)
		var joined []byte
		for _, p := range phrases {
			require.NotEmpty(t, p)
			joined = append(joined, p...)
		}
		require.Equal(t, string(s), string(joined))
	}
}

func TestCursorOffTreePanics(t *testing.T) {
	c := New()
	feed(t, c, "aba")
	require.Equal(t, 1, c.cur.length)

	// Move the cursor onto the leaf below "a", which has no outgoing edges.
	e, ok := c.Dictionary().Child(c.Dictionary().Root(), 'a')
	require.True(t, ok)
	c.cur.node = e.Dest

	var recovered any
	func() {
		defer func() { recovered = recover() }()
		_, _ = c.Append('b')
	}()

	err, ok := recovered.(error)
	require.True(t, ok, "expected an error panic, got %v", recovered)
	require.True(t, errors.Is(err, suffixtree.ErrInconsistentState))
}
