package lztesting

import (
	"bytes"
	"math/rand"
	"testing"

	"github.com/datatrails/go-datatrails-common/logger"
)

const (
	Binary  = "01"
	Ternary = "abc"
	DNA     = "ACGT"
)

type TestContext struct {
	Log  logger.Logger
	Rand *rand.Rand
	T    *testing.T
}

type TestConfig struct {
	// Seed fixes the generator so that failures reproduce from run to run.
	Seed            int64
	TestLabelPrefix string
	LogLevel        string // defaults to NOOP
}

func NewTestContext(t *testing.T, cfg TestConfig) TestContext {
	level := cfg.LogLevel
	if level == "" {
		level = "NOOP"
	}
	logger.New(level)
	return TestContext{
		Log:  logger.Sugar.WithServiceName(cfg.TestLabelPrefix),
		Rand: rand.New(rand.NewSource(cfg.Seed)),
		T:    t,
	}
}

func (c *TestContext) GetLog() logger.Logger { return c.Log }

// RandomString returns a string over alphabet with a length drawn uniformly
// from [minLen, maxLen].
func (c *TestContext) RandomString(alphabet string, minLen, maxLen int) []byte {
	if maxLen < minLen || maxLen < 0 {
		return nil
	}
	n := minLen + c.Rand.Intn(maxLen-minLen+1)
	s := make([]byte, n)
	for i := range s {
		s[i] = alphabet[c.Rand.Intn(len(alphabet))]
	}
	return s
}

// RandomStrings returns count strings, see RandomString.
func (c *TestContext) RandomStrings(count int, alphabet string, minLen, maxLen int) [][]byte {
	out := make([][]byte, count)
	for i := range out {
		out[i] = c.RandomString(alphabet, minLen, maxLen)
	}
	return out
}

// Substrings returns every distinct non-empty substring of s.
func Substrings(s []byte) [][]byte {
	seen := make(map[string]struct{})
	var out [][]byte
	for i := 0; i < len(s); i++ {
		for j := i + 1; j <= len(s); j++ {
			k := string(s[i:j])
			if _, ok := seen[k]; ok {
				continue
			}
			seen[k] = struct{}{}
			out = append(out, s[i:j])
		}
	}
	return out
}

// NonSubstrings returns every string over alphabet of length 1..maxLen that
// does not occur in s.
func NonSubstrings(s []byte, alphabet string, maxLen int) [][]byte {
	var out [][]byte
	for l := 1; l <= maxLen; l++ {
		for _, p := range AllStrings(alphabet, l) {
			if !bytes.Contains(s, p) {
				out = append(out, p)
			}
		}
	}
	return out
}

// AllStrings enumerates the len(alphabet)^n strings of length n in
// lexicographic order of alphabet positions.
func AllStrings(alphabet string, n int) [][]byte {
	out := [][]byte{{}}
	for i := 0; i < n; i++ {
		next := make([][]byte, 0, len(out)*len(alphabet))
		for _, p := range out {
			for j := 0; j < len(alphabet); j++ {
				q := make([]byte, len(p)+1)
				copy(q, p)
				q[len(p)] = alphabet[j]
				next = append(next, q)
			}
		}
		out = next
	}
	return out
}
