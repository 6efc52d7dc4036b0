package scenario

import "github.com/dipak93/Byzantine-Generals-Problem/core"

// FaultySourceAsymmetric returns ONE to even-numbered receivers and ZERO
// to odd-numbered ones, regardless of what it was asked to forward.
func FaultySourceAsymmetric() FaultFunc {
	return func(_ core.Value, _, receiver int, _ core.Path) core.Value {
		if receiver%2 == 0 {
			return core.One
		}
		return core.Zero
	}
}

// FaultyAlwaysOne always sends ONE, regardless of intended.
func FaultyAlwaysOne() FaultFunc {
	return func(core.Value, int, int, core.Path) core.Value {
		return core.One
	}
}

// FaultyAlwaysZero always sends ZERO, regardless of intended.
func FaultyAlwaysZero() FaultFunc {
	return func(core.Value, int, int, core.Path) core.Value {
		return core.Zero
	}
}

// FaultyAlwaysUnknown always sends UNKNOWN, regardless of intended.
func FaultyAlwaysUnknown() FaultFunc {
	return func(core.Value, int, int, core.Path) core.Value {
		return core.Unknown
	}
}

// FaultToEach sends the pinned value to each named receiver and
// otherwise forwards intended honestly — useful for pinning a
// scenario's deliveries exactly.
func FaultToEach(values map[int]core.Value) FaultFunc {
	return func(intended core.Value, _, receiver int, _ core.Path) core.Value {
		if v, ok := values[receiver]; ok {
			return v
		}
		return intended
	}
}
