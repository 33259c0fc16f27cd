package service

import (
	"context"
	"errors"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/goodnatureofminers/txlens7000-backend/internal/model"
)

// ErrInvalidTxID reports an identifier that is not 64 hex characters. It is
// detected before any upstream call.
var ErrInvalidTxID = errors.New("transaction id must be 64 hex characters")

// sampleTxIDLimit caps the number of suggested mempool transaction ids.
const sampleTxIDLimit = 5

// Explainer assembles a complete explanation of one transaction from live
// upstream reads. It holds no per-request state and no cache; every call is an
// independent, stateless computation.
type Explainer struct {
	client   LedgerClient
	resolver *InputResolver
	logger   *zap.Logger
}

// NewExplainer constructs an Explainer. workers bounds the ancestor-fetch
// fan-out.
func NewExplainer(client LedgerClient, logger *zap.Logger, workers int) *Explainer {
	return &Explainer{
		client:   client,
		resolver: NewInputResolver(client, logger, workers),
		logger:   logger,
	}
}

// ValidateTxID checks that id is exactly 64 hex characters, case-insensitive.
func ValidateTxID(id string) error {
	if len(id) != chainhash.MaxHashStringSize {
		return ErrInvalidTxID
	}
	if _, err := chainhash.NewHashFromStr(id); err != nil {
		return ErrInvalidTxID
	}
	return nil
}

// Explain produces the transaction summary for the given identifier. The
// transaction, its raw hex, and the spend statuses are fetched concurrently;
// any of those failing fails the whole request. Per-input ancestor resolution
// degrades gracefully instead and never aborts the request.
func (e *Explainer) Explain(ctx context.Context, id string) (*model.TransactionSummary, error) {
	if err := ValidateTxID(id); err != nil {
		return nil, err
	}

	var (
		tx     *model.Transaction
		rawHex string
		spent  []bool
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		tx, err = e.client.Transaction(gctx, id)
		return err
	})
	g.Go(func() error {
		var err error
		rawHex, err = e.client.TransactionHex(gctx, id)
		return err
	})
	g.Go(func() error {
		var err error
		spent, err = e.client.Outspends(gctx, id)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	inputs, err := e.resolver.Resolve(ctx, tx.Inputs)
	if err != nil {
		return nil, err
	}
	outputs, err := resolveOutputs(tx.Outputs, spent)
	if err != nil {
		return nil, err
	}

	summary := aggregate(tx, inputs, outputs, rawHex)
	summary.ChangeOutputIndex = changeOutputIndex(inputs, outputs)

	if tx.Fee != nil && *tx.Fee != summary.TotalInput-summary.TotalOutput {
		e.logger.Debug("declared fee differs from arithmetic difference",
			zap.String("txid", tx.TxID),
			zap.Int64("declared_fee", *tx.Fee),
			zap.Int64("arithmetic_fee", summary.TotalInput-summary.TotalOutput))
	}

	return summary, nil
}

// SampleTxIDs returns up to five recent unconfirmed transaction ids, intended
// as input suggestions for callers.
func (e *Explainer) SampleTxIDs(ctx context.Context) ([]string, error) {
	txids, err := e.client.RecentMempool(ctx)
	if err != nil {
		return nil, err
	}
	if len(txids) > sampleTxIDLimit {
		txids = txids[:sampleTxIDLimit]
	}
	return txids, nil
}
