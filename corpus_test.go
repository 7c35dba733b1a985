package bspregexp

import (
	"errors"
	"os"
	"testing"

	"github.com/google/go-cmp/cmp"
	"gopkg.in/yaml.v2"
	"gotest.tools/v3/assert"

	"github.com/spewspews/bspregexp/meta"
	"github.com/spewspews/bspregexp/syntax"
)

type corpusCase struct {
	Name      string  `yaml:"name"`
	Pattern   string  `yaml:"pattern"`
	Mode      string  `yaml:"mode"`
	Multiline bool    `yaml:"multiline"`
	Input     string  `yaml:"input"`
	Range     []int   `yaml:"range"`
	Limit     *int    `yaml:"limit"`
	Match     bool    `yaml:"match"`
	Groups    [][]int `yaml:"groups"`
	Error     string  `yaml:"error"`
}

func loadCorpus(t *testing.T) []corpusCase {
	t.Helper()
	data, err := os.ReadFile("testdata/corpus.yaml")
	assert.NilError(t, err)
	var cases []corpusCase
	assert.NilError(t, yaml.Unmarshal(data, &cases))
	assert.Assert(t, len(cases) > 0)
	return cases
}

func (c corpusCase) config(t *testing.T) meta.Config {
	config := DefaultConfig()
	config.Multiline = c.Multiline
	switch c.Mode {
	case "", "normal":
	case "literal":
		config.Mode = meta.ModeLiteral
	case "dotnl":
		config.Mode = meta.ModeDotNL
	default:
		t.Fatalf("unknown mode %q", c.Mode)
	}
	return config
}

func TestCorpus(t *testing.T) {
	for _, c := range loadCorpus(t) {
		t.Run(c.Name, func(t *testing.T) {
			re, err := CompileWithConfig(c.Pattern, c.config(t))
			if c.Error != "" {
				assert.Equal(t, c.Error, "malformed")
				assert.Assert(t, re == nil)
				assert.Assert(t, errors.Is(err, syntax.ErrMalformed), "error %v", err)
				return
			}
			assert.NilError(t, err)

			limit := -1
			if c.Limit != nil {
				limit = *c.Limit
			}
			var m *MatchResult
			if c.Range != nil {
				m, err = re.ExecRange([]byte(c.Input), limit, c.Range[0], c.Range[1])
			} else {
				m, err = re.Exec([]byte(c.Input), limit)
			}
			assert.NilError(t, err)
			assert.Equal(t, m.Matched, c.Match)
			if !c.Match {
				return
			}

			var got [][]int
			for _, s := range m.Captures {
				got = append(got, []int{s.Start, s.End})
			}
			assert.DeepEqual(t, got, c.Groups)

			// the same match through the convenience API
			if c.Range == nil && c.Limit == nil {
				want := make([]int, 0, 2*len(c.Groups))
				for _, g := range c.Groups {
					want = append(want, g...)
				}
				assert.DeepEqual(t, re.FindStringSubmatchIndex(c.Input), want)
			}
		})
	}
}

// TestCorpusIdempotent compiles every pattern twice and checks both
// programs agree on every input in the corpus.
func TestCorpusIdempotent(t *testing.T) {
	cases := loadCorpus(t)
	for _, c := range cases {
		if c.Error != "" {
			continue
		}
		a, err := CompileWithConfig(c.Pattern, c.config(t))
		assert.NilError(t, err)
		b, err := CompileWithConfig(c.Pattern, c.config(t))
		assert.NilError(t, err)
		for _, other := range cases {
			ma, errA := a.Exec([]byte(other.Input), -1)
			mb, errB := b.Exec([]byte(other.Input), -1)
			assert.NilError(t, errA)
			assert.NilError(t, errB)
			assert.DeepEqual(t, ma, mb, cmp.AllowUnexported(MatchResult{}))
		}
	}
}
