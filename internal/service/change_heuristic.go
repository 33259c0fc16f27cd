package service

import (
	"github.com/goodnatureofminers/txlens7000-backend/internal/model"
)

// Outputs at or below this value are considered dust and dispreferred as
// change candidates.
const dustThresholdSats = 1000

// changeOutputIndex guesses which output returns leftover value to the
// sender. It is best-effort, never protocol fact: nil means no defensible
// guess.
//
// Candidates are outputs paying back to an address seen on the input side;
// lacking any such match, every output is a candidate. Non-dust candidates
// are preferred when any exist. The smallest-valued candidate wins, with ties
// broken by output order, since change is typically the remainder left after
// a deliberately sized payment.
func changeOutputIndex(inputs []model.ResolvedInput, outputs []model.ResolvedOutput) *uint32 {
	if len(outputs) < 2 {
		return nil
	}

	inputAddrs := make(map[string]struct{}, len(inputs))
	for _, in := range inputs {
		if in.Address != nil {
			inputAddrs[*in.Address] = struct{}{}
		}
	}

	candidates := make([]model.ResolvedOutput, 0, len(outputs))
	for _, out := range outputs {
		if out.Address == nil {
			continue
		}
		if _, ok := inputAddrs[*out.Address]; ok {
			candidates = append(candidates, out)
		}
	}
	if len(candidates) == 0 {
		candidates = outputs
	}

	nonDust := make([]model.ResolvedOutput, 0, len(candidates))
	for _, out := range candidates {
		if out.Value > dustThresholdSats {
			nonDust = append(nonDust, out)
		}
	}
	if len(nonDust) > 0 {
		candidates = nonDust
	}

	if len(candidates) == 0 {
		return nil
	}

	best := candidates[0]
	for _, out := range candidates[1:] {
		if out.Value < best.Value {
			best = out
		}
	}
	index := best.Index
	return &index
}
