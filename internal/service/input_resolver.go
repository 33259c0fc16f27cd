package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/goodnatureofminers/txlens7000-backend/internal/model"
	"github.com/goodnatureofminers/txlens7000-backend/pkg/workerpool"
)

// InputResolver enriches transaction inputs with the previous outputs they
// spend, fetching ancestor transactions from the ledger concurrently.
type InputResolver struct {
	client  LedgerClient
	logger  *zap.Logger
	workers int
}

// NewInputResolver constructs an InputResolver with the given fan-out width.
func NewInputResolver(client LedgerClient, logger *zap.Logger, workers int) *InputResolver {
	if workers < 1 {
		workers = 1
	}
	return &InputResolver{
		client:  client,
		logger:  logger,
		workers: workers,
	}
}

// Resolve returns resolved inputs index-aligned with the raw inputs. Coinbase
// inputs never trigger an ancestor fetch. A failed ancestor fetch or an
// out-of-range output reference degrades that input to zero value and absent
// address instead of failing the whole batch; only context cancellation
// aborts. Ancestor fetches are not deduplicated: each input is resolved
// against its own fetch.
func (r *InputResolver) Resolve(ctx context.Context, inputs []model.TxInput) ([]model.ResolvedInput, error) {
	return workerpool.Map(ctx, r.workers, inputs, r.resolveOne)
}

func (r *InputResolver) resolveOne(ctx context.Context, in model.TxInput) (model.ResolvedInput, error) {
	resolved := model.ResolvedInput{
		PrevTxID:   in.PrevTxID,
		PrevVout:   in.PrevVout,
		Sequence:   in.Sequence,
		IsCoinbase: in.IsCoinbase,
	}
	if in.IsCoinbase {
		return resolved, nil
	}

	ancestor, err := r.client.Transaction(ctx, in.PrevTxID)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return model.ResolvedInput{}, ctxErr
		}
		r.logger.Debug("ancestor fetch failed, input left unresolved",
			zap.String("prev_txid", in.PrevTxID),
			zap.Uint32("prev_vout", in.PrevVout),
			zap.Error(err))
		return resolved, nil
	}
	if int(in.PrevVout) >= len(ancestor.Outputs) {
		r.logger.Debug("referenced output index out of range, input left unresolved",
			zap.String("prev_txid", in.PrevTxID),
			zap.Uint32("prev_vout", in.PrevVout),
			zap.Int("ancestor_outputs", len(ancestor.Outputs)))
		return resolved, nil
	}

	prev := ancestor.Outputs[in.PrevVout]
	resolved.Value = prev.Value
	if prev.Address != "" {
		resolved.Address = &prev.Address
	}
	if prev.ScriptType != "" {
		resolved.ScriptType = &prev.ScriptType
	}
	return resolved, nil
}
