package oral

import (
	"fmt"
	"log/slog"

	"github.com/dipak93/Byzantine-Generals-Problem/core"
)

// SendRound performs participant p's sends for round, across the whole
// participant set; every round's deliveries complete before the next
// round's sends begin. The source is excluded from the recipient set. A
// sender also delivers to itself, so its own vote is a recorded node
// rather than the absent-child case majority() treats as a non-vote.
func (p *Participant) SendRound(round int, participants []*Participant, logger *slog.Logger) error {
	if p.phase == PhaseDecided {
		return errAlreadyDecided
	}
	if round != p.lastRound+1 {
		return fmt.Errorf("oral: invariant violation: participant %d asked to send round %d out of order (last sent round %d)", p.id, round, p.lastRound)
	}
	if logger == nil {
		logger = slog.Default()
	}

	for _, path := range p.topo.PathsByRank(round, p.id) {
		var sourcePath core.Path
		if round == 0 && p.isSource() {
			sourcePath = path
		} else {
			sourcePath = path.Parent()
		}

		source, ok := p.node(sourcePath)
		if !ok {
			return fmt.Errorf("oral: invariant violation: participant %d missing node at %s to forward along %s", p.id, sourcePath, path)
		}

		for j := 0; j < p.policy.N(); j++ {
			if j == p.policy.SourceID() {
				continue
			}
			value := p.policy.ValueToSend(source.Input, p.id, j, path)
			if p.policy.Debug() {
				logger.Debug("sending",
					"from", p.id,
					"to", j,
					"value", value.String(),
					"path", path.String(),
					"sourcePath", sourcePath.String(),
				)
			}
			participants[j].Receive(path, core.Node{Input: value, Output: core.Unknown})
		}
	}

	p.lastRound = round
	p.phase = PhaseMessaged
	return nil
}
