package service

import (
	"fmt"

	"github.com/goodnatureofminers/txlens7000-backend/internal/model"
	"github.com/goodnatureofminers/txlens7000-backend/pkg/safe"
)

// resolveOutputs pairs each raw output with its index and the live spend flag
// reported by the upstream. Missing spend entries default to unspent.
func resolveOutputs(outputs []model.TxOutput, spent []bool) ([]model.ResolvedOutput, error) {
	resolved := make([]model.ResolvedOutput, 0, len(outputs))
	for idx, out := range outputs {
		index, err := safe.Uint32(idx)
		if err != nil {
			return nil, fmt.Errorf("output index overflow: %w", err)
		}

		ro := model.ResolvedOutput{
			Index: index,
			Value: out.Value,
			Spent: idx < len(spent) && spent[idx],
		}
		if out.Address != "" {
			addr := out.Address
			ro.Address = &addr
		}
		if out.ScriptType != "" {
			st := out.ScriptType
			ro.ScriptType = &st
		}
		resolved = append(resolved, ro)
	}
	return resolved, nil
}

// aggregate computes totals and the fee and copies structural fields verbatim
// into the summary. The upstream-declared fee is trusted as-is when present
// and non-negative; otherwise the fee is the arithmetic difference floored at
// zero, since unresolved inputs contribute zero to the total.
func aggregate(tx *model.Transaction, inputs []model.ResolvedInput, outputs []model.ResolvedOutput, rawHex string) *model.TransactionSummary {
	var totalInput int64
	for _, in := range inputs {
		totalInput += in.Value
	}
	var totalOutput int64
	for _, out := range outputs {
		totalOutput += out.Value
	}

	fee := totalInput - totalOutput
	if fee < 0 {
		fee = 0
	}
	if tx.Fee != nil && *tx.Fee >= 0 {
		fee = *tx.Fee
	}

	return &model.TransactionSummary{
		TxID:        tx.TxID,
		Version:     tx.Version,
		Locktime:    tx.Locktime,
		Size:        tx.Size,
		Weight:      tx.Weight,
		InputCount:  len(inputs),
		OutputCount: len(outputs),
		TotalInput:  totalInput,
		TotalOutput: totalOutput,
		Fee:         fee,
		Inputs:      inputs,
		Outputs:     outputs,
		Status:      tx.Status,
		Hex:         rawHex,
	}
}
