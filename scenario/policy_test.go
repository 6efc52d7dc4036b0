package scenario_test

import (
	"testing"

	"github.com/dipak93/Byzantine-Generals-Problem/core"
	"github.com/dipak93/Byzantine-Generals-Problem/scenario"
)

func TestPolicyHonestForwarding(t *testing.T) {
	p := scenario.NewPolicy(0, 2, 5, core.One, core.One)
	for receiver := 0; receiver < 5; receiver++ {
		if got := p.ValueToSend(core.Zero, 1, receiver, core.Path{0, 1}); got != core.Zero {
			t.Errorf("honest sender 1 to %d: got %s, want %s", receiver, got, core.Zero)
		}
	}
	if p.IsFaulty(1) {
		t.Error("a plain NewPolicy should mark no sender faulty")
	}
}

func TestPolicySetFaultyOverridesSender(t *testing.T) {
	p := scenario.NewPolicy(0, 1, 4, core.One, core.One)
	p.SetFaulty(2, scenario.FaultyAlwaysZero())

	if !p.IsFaulty(2) {
		t.Error("participant 2 should be reported faulty after SetFaulty")
	}
	if p.IsFaulty(1) {
		t.Error("participant 1 was never marked faulty")
	}
	if got := p.ValueToSend(core.One, 2, 3, core.Path{0, 2}); got != core.Zero {
		t.Errorf("faulty sender 2: got %s, want %s", got, core.Zero)
	}
}

func TestPolicyWithDebugChaining(t *testing.T) {
	p := scenario.NewPolicy(0, 0, 1, core.One, core.One).WithDebug(true)
	if !p.Debug() {
		t.Error("WithDebug(true) should make Debug() report true")
	}
}

func TestFaultySourceAsymmetric(t *testing.T) {
	fn := scenario.FaultySourceAsymmetric()
	cases := []struct {
		receiver int
		want     core.Value
	}{
		{0, core.One},
		{1, core.Zero},
		{2, core.One},
		{3, core.Zero},
	}
	for _, tc := range cases {
		if got := fn(core.Zero, 3, tc.receiver, core.Path{3}); got != tc.want {
			t.Errorf("receiver %d: got %s, want %s", tc.receiver, got, tc.want)
		}
	}
}

func TestFaultToEachFallsBackToIntended(t *testing.T) {
	fn := scenario.FaultToEach(map[int]core.Value{1: core.Zero})
	if got := fn(core.One, 0, 1, core.Path{0}); got != core.Zero {
		t.Errorf("pinned receiver 1: got %s, want %s", got, core.Zero)
	}
	if got := fn(core.One, 0, 2, core.Path{0}); got != core.One {
		t.Errorf("unpinned receiver 2 should forward honestly: got %s, want %s", got, core.One)
	}
}

func TestNamedPresets(t *testing.T) {
	names := []string{"honest-source", "faulty-source", "reference", "all-unknown", "exact-tie"}
	for _, name := range names {
		if _, ok := scenario.Named(name); !ok {
			t.Errorf("Named(%q) should resolve", name)
		}
	}
	if _, ok := scenario.Named("no-such-preset"); ok {
		t.Error("Named should report ok=false for an unrecognized name")
	}
}
