package scenario

import (
	"github.com/dipak93/Byzantine-Generals-Problem/core"
)

// FaultFunc is the per-sender override a Byzantine participant uses in
// place of honest forwarding.
type FaultFunc func(intended core.Value, sender, receiver int, path core.Path) core.Value

// Policy is the default implementation of core.Policy.
type Policy struct {
	sourceID int
	m        int
	n        int
	debug    bool

	sourceValue  core.Value
	defaultValue core.Value

	faulty map[int]FaultFunc
}

// NewPolicy builds an all-honest policy: every participant forwards
// exactly what it's told. Use SetFaulty to introduce Byzantine behavior.
func NewPolicy(sourceID, m, n int, sourceValue, defaultValue core.Value) *Policy {
	return &Policy{
		sourceID:     sourceID,
		m:            m,
		n:            n,
		sourceValue:  sourceValue,
		defaultValue: defaultValue,
	}
}

func (p *Policy) WithDebug(debug bool) *Policy {
	p.debug = debug
	return p
}

// SetFaulty marks sender as Byzantine, delegating to fn instead of
// honest forwarding.
func (p *Policy) SetFaulty(sender int, fn FaultFunc) *Policy {
	if p.faulty == nil {
		p.faulty = make(map[int]FaultFunc)
	}
	p.faulty[sender] = fn
	return p
}

func (p *Policy) SourceID() int             { return p.sourceID }
func (p *Policy) M() int                    { return p.m }
func (p *Policy) N() int                    { return p.n }
func (p *Policy) Debug() bool               { return p.debug }
func (p *Policy) DefaultValue() core.Value  { return p.defaultValue }

func (p *Policy) SourceValue() core.Node {
	return core.Node{Input: p.sourceValue, Output: core.Unknown}
}

func (p *Policy) IsFaulty(id int) bool {
	_, ok := p.faulty[id]
	return ok
}

func (p *Policy) ValueToSend(intended core.Value, sender, receiver int, path core.Path) core.Value {
	if fn, ok := p.faulty[sender]; ok {
		return fn(intended, sender, receiver, path)
	}
	return intended
}
