package main

import (
	"fmt"
	"io"
	"time"

	"github.com/lestrrat-go/strftime"
	"gopkg.in/yaml.v2"

	"github.com/spewspews/bspregexp"
)

const (
	formatText = "text"
	formatYAML = "yaml"
)

// record is one match in yaml output.
type record struct {
	Time         string        `yaml:"time,omitempty"`
	Line         int           `yaml:"line"`
	Input        string        `yaml:"input"`
	Groups       []groupRecord `yaml:"groups,omitempty"`
	Substitution *string       `yaml:"substitution,omitempty"`
}

type groupRecord struct {
	Index int    `yaml:"index"`
	Start int    `yaml:"start"`
	End   int    `yaml:"end"`
	Text  string `yaml:"text"`
}

// printer writes the matches of one run.
type printer struct {
	w        io.Writer
	format   string
	stamp    *strftime.Strftime
	template string
	subst    bool
	limit    int
	now      func() time.Time
}

func newPrinter(w io.Writer, opts *options) (*printer, error) {
	p := &printer{
		w:        w,
		format:   opts.format,
		template: opts.template,
		subst:    opts.template != "",
		limit:    opts.limit,
		now:      time.Now,
	}
	if opts.stamp != "" {
		s, err := strftime.New(opts.stamp)
		if err != nil {
			return nil, fmt.Errorf("bad -stamp format: %w", err)
		}
		p.stamp = s
	}
	return p, nil
}

// match runs re over line and prints the result if it matched.
func (p *printer) match(re *bspregexp.Regex, n int, line []byte) error {
	m, err := re.Exec(line, p.limit)
	if err != nil {
		return err
	}
	if !m.Matched {
		return nil
	}
	if p.format == formatYAML {
		return p.yaml(n, line, m)
	}
	return p.text(m)
}

func (p *printer) text(m *bspregexp.MatchResult) error {
	head := "match!"
	if p.stamp != nil {
		head = p.stamp.FormatString(p.now()) + " " + head
	}
	if _, err := fmt.Fprintln(p.w, head); err != nil {
		return err
	}
	if p.subst {
		_, err := fmt.Fprintln(p.w, bspregexp.Substitute(p.template, m))
		return err
	}
	for i, s := range m.Captures {
		if !s.IsSet() {
			continue
		}
		if _, err := fmt.Fprintf(p.w, "%s\n", m.Group(i)); err != nil {
			return err
		}
	}
	return nil
}

func (p *printer) yaml(n int, line []byte, m *bspregexp.MatchResult) error {
	rec := record{Line: n, Input: string(line)}
	if p.stamp != nil {
		rec.Time = p.stamp.FormatString(p.now())
	}
	if p.subst {
		s := bspregexp.Substitute(p.template, m)
		rec.Substitution = &s
	} else {
		for i, s := range m.Captures {
			if !s.IsSet() {
				continue
			}
			rec.Groups = append(rec.Groups, groupRecord{
				Index: i,
				Start: s.Start,
				End:   s.End,
				Text:  m.GroupString(i),
			})
		}
	}
	out, err := yaml.Marshal([]record{rec})
	if err != nil {
		return err
	}
	_, err = p.w.Write(out)
	return err
}
