package meta

import (
	"sync"
	"sync/atomic"
	"testing"
)

// TestConcurrentSearch tests that one Engine can be searched from many
// goroutines at once.
func TestConcurrentSearch(t *testing.T) {
	patterns := []string{
		`hello`,    // memmem, complete
		`[0-9]+`,   // byte set
		`x[a-z]*y`, // memchr, incomplete
		`^start`,   // anchored
		`foo|ba+r`, // aho-corasick
	}
	inputs := []string{
		"hello world",
		"12345",
		"xabcy",
		"start here",
		"a baaar",
		"nothing",
	}

	for _, pattern := range patterns {
		t.Run(pattern, func(t *testing.T) {
			engine, err := Compile(pattern)
			if err != nil {
				t.Fatalf("failed to compile %q: %v", pattern, err)
			}

			want := make([]bool, len(inputs))
			for i, in := range inputs {
				want[i], _ = engine.IsMatch([]byte(in))
			}

			const goroutines = 16
			var wg sync.WaitGroup
			var failures atomic.Int32
			for g := 0; g < goroutines; g++ {
				wg.Add(1)
				go func() {
					defer wg.Done()
					slots := make([]int, 2*engine.NumCaptures())
					for iter := 0; iter < 50; iter++ {
						for i, in := range inputs {
							got, err := engine.IsMatch([]byte(in))
							if err != nil || got != want[i] {
								failures.Add(1)
							}
							found, err := engine.Search(inputFor(in), slots)
							if err != nil || found != want[i] {
								failures.Add(1)
							}
						}
					}
				}()
			}
			wg.Wait()
			if n := failures.Load(); n > 0 {
				t.Errorf("%d concurrent searches disagreed with sequential results", n)
			}
		})
	}
}
