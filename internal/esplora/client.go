// Package esplora implements a typed client for the Esplora REST API.
package esplora

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"go.uber.org/ratelimit"

	"github.com/goodnatureofminers/txlens7000-backend/internal/model"
)

type (
	// Metrics records metrics for upstream API calls.
	Metrics interface {
		Observe(operation string, err error, started time.Time)
	}
)

// UpstreamError reports a failed upstream call. StatusCode is zero for
// transport-level failures.
type UpstreamError struct {
	Path       string
	StatusCode int
	Err        error
}

func (e *UpstreamError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("upstream %s: %v", e.Path, e.Err)
	}
	return fmt.Sprintf("upstream %s: status %d", e.Path, e.StatusCode)
}

func (e *UpstreamError) Unwrap() error {
	return e.Err
}

// Client wraps an Esplora-compatible HTTP API with metrics instrumentation
// and an optional client-side rate limit. It performs no caching and no
// retries; every call is a live read and callers decide retry policy.
type Client struct {
	baseURL    string
	httpClient *http.Client
	metrics    Metrics
	limiter    ratelimit.Limiter
	decoder    *scriptDecoder
}

// NewClient constructs a Client for the given base URL and bitcoin network.
// rps caps outgoing requests per second; zero or negative means unlimited.
// httpClient may be nil, in which case http.DefaultClient is used.
func NewClient(baseURL, network string, rps int, httpClient *http.Client, metrics Metrics) (*Client, error) {
	decoder, err := newScriptDecoder(network)
	if err != nil {
		return nil, err
	}
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	limiter := ratelimit.NewUnlimited()
	if rps > 0 {
		limiter = ratelimit.New(rps)
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: httpClient,
		metrics:    metrics,
		limiter:    limiter,
		decoder:    decoder,
	}, nil
}

// Transaction fetches a transaction by id.
func (c *Client) Transaction(ctx context.Context, txid string) (tx *model.Transaction, err error) {
	started := time.Now()
	defer func() {
		c.metrics.Observe("get_transaction", err, started)
	}()

	body, err := c.get(ctx, "/tx/"+txid)
	if err != nil {
		return nil, err
	}

	var src txResult
	if err := json.Unmarshal(body, &src); err != nil {
		return nil, fmt.Errorf("decode tx %s: %w", txid, err)
	}
	return c.toTransaction(src)
}

// TransactionHex fetches the raw hex encoding of a transaction.
func (c *Client) TransactionHex(ctx context.Context, txid string) (rawHex string, err error) {
	started := time.Now()
	defer func() {
		c.metrics.Observe("get_transaction_hex", err, started)
	}()

	body, err := c.get(ctx, "/tx/"+txid+"/hex")
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(body)), nil
}

// Outspends fetches the per-output spend flags of a transaction, ordered by
// output index.
func (c *Client) Outspends(ctx context.Context, txid string) (spent []bool, err error) {
	started := time.Now()
	defer func() {
		c.metrics.Observe("get_outspends", err, started)
	}()

	body, err := c.get(ctx, "/tx/"+txid+"/outspends")
	if err != nil {
		return nil, err
	}

	var outspends []outspend
	if err := json.Unmarshal(body, &outspends); err != nil {
		return nil, fmt.Errorf("decode outspends for tx %s: %w", txid, err)
	}
	spent = make([]bool, len(outspends))
	for i, o := range outspends {
		spent[i] = o.Spent
	}
	return spent, nil
}

// RecentMempool fetches the most recently seen unconfirmed transaction ids.
func (c *Client) RecentMempool(ctx context.Context) (txids []string, err error) {
	started := time.Now()
	defer func() {
		c.metrics.Observe("get_recent_mempool", err, started)
	}()

	body, err := c.get(ctx, "/mempool/recent")
	if err != nil {
		return nil, err
	}

	var txs []mempoolTx
	if err := json.Unmarshal(body, &txs); err != nil {
		return nil, fmt.Errorf("decode recent mempool: %w", err)
	}
	txids = make([]string, 0, len(txs))
	for _, tx := range txs {
		txids = append(txids, tx.TxID)
	}
	return txids, nil
}

func (c *Client) get(ctx context.Context, path string) ([]byte, error) {
	c.limiter.Take()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return nil, &UpstreamError{Path: path, Err: err}
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &UpstreamError{Path: path, Err: err}
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode != http.StatusOK {
		return nil, &UpstreamError{Path: path, StatusCode: resp.StatusCode}
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &UpstreamError{Path: path, Err: err}
	}
	return body, nil
}
