package core

import (
	"strconv"
	"strings"
)

// Path is an ordered sequence of distinct participant ids; it indexes a
// node in a participant's message tree. The zero value is the empty
// path; a seeded root node uses a one-element path instead.
//
// Path is a first-class sequence of small integers rather than a
// digit-encoded string, so there is no limit on how many participants a
// path can name.
type Path []int

// Append returns a new Path with id appended, leaving the receiver
// untouched (paths are never mutated in place once handed to a caller).
func (p Path) Append(id int) Path {
	next := make(Path, len(p)+1)
	copy(next, p)
	next[len(p)] = id
	return next
}

// Parent returns p with its final element dropped.
func (p Path) Parent() Path {
	if len(p) == 0 {
		return nil
	}
	return p[:len(p)-1]
}

// Rank is the path's length minus one: the round at which this path's
// message was sent.
func (p Path) Rank() int {
	return len(p) - 1
}

// Originator is the path's final element: the sender that owns this path
// at its rank.
func (p Path) Originator() int {
	return p[len(p)-1]
}

// Contains reports whether id already appears in p.
func (p Path) Contains(id int) bool {
	for _, existing := range p {
		if existing == id {
			return true
		}
	}
	return false
}

// Key returns a comparable encoding of p suitable for use as a map key.
// It is an implementation detail, not a wire format; callers that need a
// human-readable rendering should use String.
func (p Path) Key() string {
	var b strings.Builder
	for _, id := range p {
		b.WriteByte('.')
		b.WriteString(strconv.Itoa(id))
	}
	return b.String()
}

// String renders p as a dot-separated list of ids, e.g. "3.0.5".
func (p Path) String() string {
	parts := make([]string, len(p))
	for i, id := range p {
		parts[i] = strconv.Itoa(id)
	}
	return strings.Join(parts, ".")
}
