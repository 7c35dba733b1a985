package main

import (
	"fmt"
	"io"

	"github.com/chzyer/readline"

	"github.com/spewspews/bspregexp"
)

// interactive matches lines typed at a terminal until EOF or a second
// interrupt.
func interactive(re *bspregexp.Regex, p *printer, stderr io.Writer) error {
	rl, err := readline.New("> ")
	if err != nil {
		return err
	}
	defer rl.Close()

	interrupted := false
	for n := 1; ; {
		src, err := rl.Readline()
		if err != nil {
			if err == readline.ErrInterrupt {
				if interrupted {
					return nil
				}
				interrupted = true
				fmt.Fprintln(stderr, "Press ctrl-c again to quit.")
				continue
			}
			if err == io.EOF {
				return nil
			}
			return err
		}
		interrupted = false
		if err := p.match(re, n, []byte(src)); err != nil {
			fmt.Fprintln(stderr, err)
		}
		n++
	}
}
