package oral_test

import (
	"context"
	"testing"

	"github.com/dipak93/Byzantine-Generals-Problem/core"
	"github.com/dipak93/Byzantine-Generals-Problem/oral"
	"github.com/dipak93/Byzantine-Generals-Problem/scenario"
)

// sizeFactory is the comparative table benchmarks are built around: a
// name and the (n, m) dimensions it exercises.
type sizeFactory struct {
	name string
	n, m int
}

var benchSizes = []sizeFactory{
	{"n=4,m=1", 4, 1},
	{"n=7,m=2", 7, 2},
	{"n=10,m=2", 10, 2},
	{"n=13,m=3", 13, 3},
}

// BenchmarkTopologyConstruction measures NewTopology's recursive
// enumeration cost as (n, m) grows; the path count is falling(n-2, m-1)
// per originator, so this is expected to scale steeply with m.
func BenchmarkTopologyConstruction(b *testing.B) {
	for _, sz := range benchSizes {
		b.Run(sz.name, func(b *testing.B) {
			policy := scenario.NewPolicy(0, sz.m, sz.n, core.One, core.One)
			for i := 0; i < b.N; i++ {
				if _, err := oral.NewTopology(policy); err != nil {
					b.Fatalf("NewTopology: %v", err)
				}
			}
		})
	}
}

// BenchmarkSimulationRun measures a full round loop plus every
// participant's Decide, honest-source, no faults.
func BenchmarkSimulationRun(b *testing.B) {
	for _, sz := range benchSizes {
		b.Run(sz.name, func(b *testing.B) {
			policy := scenario.NewPolicy(0, sz.m, sz.n, core.One, core.One)
			ctx := context.Background()
			for i := 0; i < b.N; i++ {
				sim, err := oral.New(policy, nil)
				if err != nil {
					b.Fatalf("oral.New: %v", err)
				}
				if err := sim.Run(ctx); err != nil {
					b.Fatalf("Run: %v", err)
				}
				sim.Reports()
			}
		})
	}
}

// BenchmarkBatch measures Batch's goroutine-per-scenario fan-out against
// running the same scenarios back to back in a single goroutine.
func BenchmarkBatch(b *testing.B) {
	items := make([]oral.BatchItem, 0, 5)
	for _, name := range []string{"honest-source", "faulty-source", "reference", "all-unknown", "exact-tie"} {
		p, _ := scenario.Named(name)
		items = append(items, oral.BatchItem{Name: name, Policy: p})
	}
	ctx := context.Background()

	b.Run("concurrent", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			oral.Batch(ctx, items, nil)
		}
	})

	b.Run("sequential", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			for _, item := range items {
				sim, err := oral.New(item.Policy, nil)
				if err != nil {
					b.Fatalf("oral.New: %v", err)
				}
				if err := sim.Run(ctx); err != nil {
					b.Fatalf("Run: %v", err)
				}
				sim.Reports()
			}
		}
	})
}
