package oral

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/dipak93/Byzantine-Generals-Problem/core"
)

// Simulation wires a shared Topology and Policy to N participants and
// drives the round loop that gets every participant to a decision.
type Simulation struct {
	policy       core.Policy
	topo         *Topology
	participants []*Participant
	logger       *slog.Logger
}

// New builds the topology and the N participants for policy.
func New(policy core.Policy, logger *slog.Logger) (*Simulation, error) {
	if logger == nil {
		logger = slog.Default()
	}
	topo, err := NewTopology(policy)
	if err != nil {
		return nil, err
	}
	participants := make([]*Participant, policy.N())
	for i := range participants {
		participants[i] = NewParticipant(i, topo, policy)
	}
	return &Simulation{policy: policy, topo: topo, participants: participants, logger: logger}, nil
}

func (s *Simulation) Topology() *Topology { return s.topo }

func (s *Simulation) Participant(id int) *Participant {
	if id < 0 || id >= len(s.participants) {
		return nil
	}
	return s.participants[id]
}

func (s *Simulation) Policy() core.Policy { return s.policy }

// Run executes rounds 0..M in order; every round's deliveries complete
// before the next round starts.
func (s *Simulation) Run(ctx context.Context) error {
	for r := 0; r <= s.policy.M(); r++ {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}
		for _, p := range s.participants {
			if err := p.SendRound(r, s.participants, s.logger); err != nil {
				return fmt.Errorf("round %d: %w", r, err)
			}
		}
	}
	return nil
}

// Report is one line of the driver's output.
type Report struct {
	ID       int
	IsSource bool
	IsFaulty bool
	Decision core.Value
	Decided  bool
	Err      error
}

// Reports runs Decide on every participant and returns one Report per
// participant. Faulty non-source participants are reported but not
// asked to decide.
func (s *Simulation) Reports() []Report {
	out := make([]Report, len(s.participants))
	for i, p := range s.participants {
		r := Report{
			ID:       p.ID(),
			IsSource: p.isSource(),
			IsFaulty: s.policy.IsFaulty(p.ID()),
		}
		if r.IsSource || !r.IsFaulty {
			v, err := p.Decide()
			r.Decision = v
			r.Decided = err == nil
			r.Err = err
		}
		out[i] = r
	}
	return out
}
