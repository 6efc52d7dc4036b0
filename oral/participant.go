package oral

import (
	"fmt"

	"github.com/dipak93/Byzantine-Generals-Problem/core"
)

type Phase int

const (
	PhaseFresh Phase = iota
	PhaseMessaged
	PhaseDecided
)

func (ph Phase) String() string {
	switch ph {
	case PhaseFresh:
		return "fresh"
	case PhaseMessaged:
		return "messaged"
	case PhaseDecided:
		return "decided"
	default:
		return "unknown"
	}
}

// Participant is one process in the simulation: its id, and its own
// private map from path to node.
type Participant struct {
	id     int
	topo   *Topology
	policy core.Policy

	nodes map[string]*core.Node

	phase     Phase
	lastRound int // -1 until the first SendRound call
	decision  core.Value
}

func NewParticipant(id int, topo *Topology, policy core.Policy) *Participant {
	p := &Participant{
		id:        id,
		topo:      topo,
		policy:    policy,
		nodes:     make(map[string]*core.Node),
		phase:     PhaseFresh,
		lastRound: -1,
	}
	if id == policy.SourceID() {
		root := core.Path{id}
		seed := policy.SourceValue()
		p.nodes[root.Key()] = &seed
	}
	return p
}

func (p *Participant) ID() int { return p.id }

func (p *Participant) Phase() Phase { return p.phase }

// Node returns the stored node at path, and whether one has arrived yet.
func (p *Participant) Node(path core.Path) (core.Node, bool) {
	n, ok := p.nodes[path.Key()]
	if !ok {
		return core.Node{}, false
	}
	return *n, true
}

func (p *Participant) Receive(path core.Path, node core.Node) {
	stored := node
	p.nodes[path.Key()] = &stored
}

func (p *Participant) node(path core.Path) (*core.Node, bool) {
	n, ok := p.nodes[path.Key()]
	return n, ok
}

func (p *Participant) isSource() bool {
	return p.id == p.policy.SourceID()
}

var errAlreadyDecided = fmt.Errorf("oral: invariant violation: SendRound called after Decide")
