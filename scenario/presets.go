package scenario

import "github.com/dipak93/Byzantine-Generals-Problem/core"

// HonestSource builds a fully honest scenario: n=4, m=1, source_id=0,
// source seed ONE, no faults.
func HonestSource() *Policy {
	return NewPolicy(0, 1, 4, core.One, core.One)
}

// FaultySourceHonestLieutenants builds a scenario with a faulty source:
// n=4, m=1, source_id=0, the source sends ONE to receivers 1 and 2, ZERO
// to receiver 3, default ONE.
func FaultySourceHonestLieutenants() *Policy {
	p := NewPolicy(0, 1, 4, core.One, core.One)
	p.SetFaulty(0, FaultToEach(map[int]core.Value{
		1: core.One,
		2: core.One,
		3: core.Zero,
	}))
	return p
}

// Reference builds a seven-participant scenario with two Byzantine
// participants: n=7, m=2, source_id=3, source's true value ZERO but
// faulty (even/odd asymmetric send), lieutenant 2 always sends ONE,
// default ONE.
func Reference() *Policy {
	p := NewPolicy(3, 2, 7, core.Zero, core.One)
	p.SetFaulty(3, FaultySourceAsymmetric())
	p.SetFaulty(2, FaultyAlwaysOne())
	return p
}

// AllUnknownPropagation builds a scenario where two senders spread
// UNKNOWN instead of relaying: n=4, m=1, source_id=0, source and
// participant 1 both faulty and both send UNKNOWN to everyone.
func AllUnknownPropagation() *Policy {
	p := NewPolicy(0, 1, 4, core.Zero, core.One)
	p.SetFaulty(0, FaultyAlwaysUnknown())
	p.SetFaulty(1, FaultyAlwaysUnknown())
	return p
}

// ExactTieDefault builds a scenario that forces an exact ZERO/ONE split
// at a lieutenant's root, exercising the tie-break default: n=3, m=1,
// source_id=0, source sends ONE to 1 and ZERO to 2, no other faults,
// default ONE.
func ExactTieDefault() *Policy {
	p := NewPolicy(0, 1, 3, core.One, core.One)
	p.SetFaulty(0, FaultToEach(map[int]core.Value{
		1: core.One,
		2: core.Zero,
	}))
	return p
}

// Named resolves a preset by name, for CLI/config use; ok is false for an
// unrecognized name.
func Named(name string) (*Policy, bool) {
	switch name {
	case "honest-source":
		return HonestSource(), true
	case "faulty-source":
		return FaultySourceHonestLieutenants(), true
	case "reference":
		return Reference(), true
	case "all-unknown":
		return AllUnknownPropagation(), true
	case "exact-tie":
		return ExactTieDefault(), true
	default:
		return nil, false
	}
}
