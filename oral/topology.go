package oral

import (
	"fmt"

	"github.com/dipak93/Byzantine-Generals-Problem/core"
)

// Topology is the precomputed, immutable-after-construction structure of
// the message relay tree: for every path, its children, and for every
// (round, originator) pair, the list of paths whose messages originate
// at that process in that round. It is shared read-only across every
// Participant in a run.
type Topology struct {
	m, n, sourceID int

	children    map[string][]core.Path
	pathsByRank []map[int][]core.Path // indexed [rank][originator]
}

// NewTopology enumerates every path a policy's (m, n, sourceID) can
// produce: starting from the source, each step extends the current path
// with an id it hasn't already visited, down to depth m.
func NewTopology(policy core.Policy) (*Topology, error) {
	m, n, sourceID := policy.M(), policy.N(), policy.SourceID()
	if n <= 0 {
		return nil, fmt.Errorf("oral: n must be positive, got %d", n)
	}
	if m < 0 {
		return nil, fmt.Errorf("oral: m must be non-negative, got %d", m)
	}
	if sourceID < 0 || sourceID >= n {
		return nil, fmt.Errorf("oral: source id %d out of range [0,%d)", sourceID, n)
	}
	if !policy.SourceValue().Input.Decidable() {
		return nil, fmt.Errorf("oral: source value must be decidable, got %s", policy.SourceValue().Input)
	}

	t := &Topology{
		m:           m,
		n:           n,
		sourceID:    sourceID,
		children:    make(map[string][]core.Path),
		pathsByRank: make([]map[int][]core.Path, m+1),
	}
	for r := range t.pathsByRank {
		t.pathsByRank[r] = make(map[int][]core.Path, n)
	}

	t.enumerate(sourceID, nil, 0)
	return t, nil
}

func (t *Topology) enumerate(originator int, current core.Path, rank int) {
	path := current.Append(originator)
	t.pathsByRank[rank][originator] = append(t.pathsByRank[rank][originator], path)

	if rank < t.m {
		for j := 0; j < t.n; j++ {
			if path.Contains(j) {
				continue
			}
			t.enumerate(j, path, rank+1)
			key := path.Key()
			t.children[key] = append(t.children[key], path.Append(j))
		}
	}
}

func (t *Topology) Children(path core.Path) []core.Path {
	return t.children[path.Key()]
}

func (t *Topology) PathsByRank(rank, originator int) []core.Path {
	if rank < 0 || rank >= len(t.pathsByRank) {
		return nil
	}
	return t.pathsByRank[rank][originator]
}

func (t *Topology) Root() core.Path {
	return t.pathsByRank[0][t.sourceID][0]
}

func (t *Topology) M() int { return t.m }
func (t *Topology) N() int { return t.n }
