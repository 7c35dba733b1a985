package bspregexp

// The methods in this file report input that is not valid UTF-8 as no
// match. Use Exec to see the error.

// Match reports whether the byte slice b contains any match of the pattern.
//
// Example:
//
//	re := bspregexp.MustCompile(`[0-9]`)
//	re.Match([]byte("abc123")) // true
func (r *Regex) Match(b []byte) bool {
	ok, err := r.engine.IsMatch(b)
	return ok && err == nil
}

// MatchString reports whether the string s contains any match of the pattern.
func (r *Regex) MatchString(s string) bool {
	return r.Match([]byte(s))
}

// Find returns a slice holding the text of the leftmost match in b.
// Returns nil if no match is found.
//
// Example:
//
//	re := bspregexp.MustCompile(`[0-9]+`)
//	match := re.Find([]byte("age: 42"))
//	// match = []byte("42")
func (r *Regex) Find(b []byte) []byte {
	loc := r.FindIndex(b)
	if loc == nil {
		return nil
	}
	return b[loc[0]:loc[1]:loc[1]]
}

// FindString returns a string holding the text of the leftmost match in s.
// Returns empty string if no match is found.
func (r *Regex) FindString(s string) string {
	loc := r.FindStringIndex(s)
	if loc == nil {
		return ""
	}
	return s[loc[0]:loc[1]]
}

// FindIndex returns a two-element slice of integers defining the location of
// the leftmost match in b. The match itself is at b[loc[0]:loc[1]].
// Returns nil if no match is found.
func (r *Regex) FindIndex(b []byte) []int {
	m, _ := r.search(b, 0, 2)
	return m
}

// FindStringIndex returns a two-element slice of integers defining the location
// of the leftmost match in s. The match itself is at s[loc[0]:loc[1]].
func (r *Regex) FindStringIndex(s string) []int {
	return r.FindIndex([]byte(s))
}

// FindSubmatch returns a slice holding the text of the leftmost match
// of the pattern in b and the matches of its groups.
//
// A return value of nil indicates no match.
// Result[0] is the entire match, result[i] is the ith capture group.
// Unmatched groups will be nil.
//
// Example:
//
//	re := bspregexp.MustCompile(`([a-z]+)@([a-z]+)`)
//	match := re.FindSubmatch([]byte("mail bob@host"))
//	// match[0] = "bob@host", match[1] = "bob", match[2] = "host"
func (r *Regex) FindSubmatch(b []byte) [][]byte {
	loc := r.FindSubmatchIndex(b)
	if loc == nil {
		return nil
	}
	return r.submatches(b, loc)
}

func (r *Regex) submatches(b []byte, loc []int) [][]byte {
	out := make([][]byte, r.NumSubexp()+1)
	for i := 0; 2*i+1 < len(loc); i++ {
		if loc[2*i] >= 0 {
			out[i] = b[loc[2*i]:loc[2*i+1]:loc[2*i+1]]
		}
	}
	return out
}

// FindStringSubmatch returns a slice of strings holding the text of the leftmost
// match of the pattern in s and the matches of its groups.
func (r *Regex) FindStringSubmatch(s string) []string {
	loc := r.FindStringSubmatchIndex(s)
	if loc == nil {
		return nil
	}
	out := make([]string, r.NumSubexp()+1)
	for i := 0; 2*i+1 < len(loc); i++ {
		if loc[2*i] >= 0 {
			out[i] = s[loc[2*i]:loc[2*i+1]]
		}
	}
	return out
}

// FindSubmatchIndex returns a slice holding the index pairs for the leftmost
// match of the pattern in b and the matches of its groups.
//
// A return value of nil indicates no match.
// Result[2*i:2*i+2] is the indices for the ith group.
// Unmatched groups have -1 indices. Groups beyond Config.MaxCaptures are
// always reported unmatched.
func (r *Regex) FindSubmatchIndex(b []byte) []int {
	m, _ := r.search(b, 0, 2*r.engine.NumCaptures())
	return r.pad(m)
}

// FindStringSubmatchIndex returns the index pairs for the leftmost match
// of the pattern in s and the matches of its groups.
func (r *Regex) FindStringSubmatchIndex(s string) []int {
	return r.FindSubmatchIndex([]byte(s))
}

// pad extends slots to cover every group of the pattern.
func (r *Regex) pad(slots []int) []int {
	if slots == nil {
		return nil
	}
	n := 2 * r.engine.NumGroups()
	for len(slots) < n {
		slots = append(slots, -1)
	}
	return slots
}

// FindAll returns a slice of all successive matches of the pattern in b.
// If n >= 0, it returns at most n matches. If n < 0, it returns all matches.
//
// Example:
//
//	re := bspregexp.MustCompile(`[0-9]+`)
//	matches := re.FindAll([]byte("1 2 3"), -1)
//	// matches = [[]byte("1"), []byte("2"), []byte("3")]
func (r *Regex) FindAll(b []byte, n int) [][]byte {
	var out [][]byte
	r.allMatches(b, n, 2, func(m []int) bool {
		out = append(out, b[m[0]:m[1]:m[1]])
		return true
	})
	return out
}

// FindAllString returns a slice of all successive matches of the pattern in s.
// If n >= 0, it returns at most n matches. If n < 0, it returns all matches.
func (r *Regex) FindAllString(s string, n int) []string {
	var out []string
	r.allMatches([]byte(s), n, 2, func(m []int) bool {
		out = append(out, s[m[0]:m[1]])
		return true
	})
	return out
}

// FindAllIndex returns a slice of all successive matches of the pattern in b,
// as index pairs [start, end).
// If n >= 0, it returns at most n matches. If n < 0, it returns all matches.
func (r *Regex) FindAllIndex(b []byte, n int) [][]int {
	var out [][]int
	r.allMatches(b, n, 2, func(m []int) bool {
		out = append(out, m)
		return true
	})
	return out
}

// FindAllStringIndex returns a slice of all successive matches of the pattern in s,
// as index pairs [start, end).
func (r *Regex) FindAllStringIndex(s string, n int) [][]int {
	return r.FindAllIndex([]byte(s), n)
}

// FindAllSubmatchIndex returns the group index pairs of all successive
// matches of the pattern in b.
func (r *Regex) FindAllSubmatchIndex(b []byte, n int) [][]int {
	var out [][]int
	r.allMatches(b, n, 2*r.engine.NumCaptures(), func(m []int) bool {
		out = append(out, r.pad(m))
		return true
	})
	return out
}

// FindAllStringSubmatchIndex returns the group index pairs of all
// successive matches of the pattern in s.
func (r *Regex) FindAllStringSubmatchIndex(s string, n int) [][]int {
	return r.FindAllSubmatchIndex([]byte(s), n)
}

// FindAllSubmatch returns the text of all successive matches of the
// pattern in b and of their groups.
func (r *Regex) FindAllSubmatch(b []byte, n int) [][][]byte {
	var out [][][]byte
	r.allMatches(b, n, 2*r.engine.NumCaptures(), func(m []int) bool {
		out = append(out, r.submatches(b, r.pad(m)))
		return true
	})
	return out
}

// Count returns the number of non-overlapping matches of the pattern in b.
// If n >= 0, counts at most n matches. If n < 0, counts all matches.
//
// Example:
//
//	re := bspregexp.MustCompile(`[0-9]+`)
//	count := re.Count([]byte("1 2 3 4 5"), -1)
//	// count == 5
func (r *Regex) Count(b []byte, n int) int {
	count := 0
	r.allMatches(b, n, 2, func([]int) bool {
		count++
		return true
	})
	return count
}

// CountString returns the number of non-overlapping matches of the pattern in s.
func (r *Regex) CountString(s string, n int) int {
	return r.Count([]byte(s), n)
}
