// Package transport exposes the HTTP JSON API.
package transport

import (
	"context"

	"github.com/goodnatureofminers/txlens7000-backend/internal/model"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	// TxService explains transactions and suggests sample ids.
	TxService interface {
		Explain(ctx context.Context, id string) (*model.TransactionSummary, error)
		SampleTxIDs(ctx context.Context) ([]string, error)
	}
)
