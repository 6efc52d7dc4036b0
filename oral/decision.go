package oral

import (
	"fmt"

	"github.com/dipak93/Byzantine-Generals-Problem/core"
)

// Decide performs the bottom-up majority reduction over p's message tree.
// The source's decision is trivial: its own seeded input. Idempotent.
func (p *Participant) Decide() (core.Value, error) {
	if p.isSource() {
		root := core.Path{p.id}
		node, ok := p.node(root)
		if !ok {
			return core.Unknown, fmt.Errorf("oral: invariant violation: source participant %d missing seeded root", p.id)
		}
		return node.Input, nil
	}

	if p.phase == PhaseDecided {
		return p.decision, nil
	}

	m, n := p.policy.M(), p.policy.N()

	// leaf pass: rank M nodes copy input straight to output
	for i := 0; i < n; i++ {
		for _, path := range p.topo.PathsByRank(m, i) {
			node, ok := p.node(path)
			if !ok {
				continue
			}
			node.Output = node.Input
		}
	}

	for round := m - 1; round >= 0; round-- {
		for i := 0; i < n; i++ {
			for _, path := range p.topo.PathsByRank(round, i) {
				node, ok := p.node(path)
				if !ok {
					continue
				}
				node.Output = p.majority(path)
			}
		}
	}

	root := p.topo.Root()
	rootNode, ok := p.node(root)
	if !ok {
		return core.Unknown, fmt.Errorf("oral: invariant violation: participant %d missing root node %s", p.id, root)
	}

	p.decision = rootNode.Output
	p.phase = PhaseDecided
	return p.decision, nil
}

// majority reduces a node's children's outputs: strict majority wins, an
// exact ZERO/ONE split falls back to the policy's default, else Unknown.
func (p *Participant) majority(path core.Path) core.Value {
	children := p.topo.Children(path)
	count := len(children)

	var ones, zeros int
	for _, child := range children {
		node, ok := p.node(child)
		if !ok {
			continue
		}
		switch node.Output {
		case core.One:
			ones++
		case core.Zero:
			zeros++
		}
	}

	half := count / 2
	switch {
	case ones > half:
		return core.One
	case zeros > half:
		return core.Zero
	case ones == zeros && ones == half:
		return p.policy.DefaultValue()
	default:
		return core.Unknown
	}
}
