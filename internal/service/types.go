// Package service implements the transaction explanation pipeline: input
// resolution, value aggregation, and change detection.
package service

import (
	"context"

	"github.com/goodnatureofminers/txlens7000-backend/internal/model"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	// LedgerClient reads transaction data from the upstream ledger API.
	LedgerClient interface {
		Transaction(ctx context.Context, txid string) (*model.Transaction, error)
		TransactionHex(ctx context.Context, txid string) (string, error)
		Outspends(ctx context.Context, txid string) ([]bool, error)
		RecentMempool(ctx context.Context) ([]string, error)
	}
)
