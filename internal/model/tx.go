// Package model defines the domain types shared between the esplora client,
// the explainer service, and the HTTP transport.
package model

// TxStatus describes the confirmation state of a transaction.
type TxStatus struct {
	Confirmed   bool    `json:"confirmed"`
	BlockHeight *uint32 `json:"block_height,omitempty"`
	BlockHash   *string `json:"block_hash,omitempty"`
	BlockTime   *int64  `json:"block_time,omitempty"`
}

// TxInput references the previous output a transaction spends.
type TxInput struct {
	PrevTxID   string
	PrevVout   uint32
	Sequence   uint32
	IsCoinbase bool
}

// TxOutput is a newly created spendable value chunk. Address and ScriptType
// are empty when the locking script could not be decoded.
type TxOutput struct {
	Value      int64
	Address    string
	ScriptType string
}

// Transaction is a raw transaction as reported by the upstream ledger.
// Fee is the upstream-declared fee and is untrusted; nil means not declared.
type Transaction struct {
	TxID     string
	Version  int32
	Locktime uint32
	Size     uint32
	Weight   uint32
	Fee      *int64
	Inputs   []TxInput
	Outputs  []TxOutput
	Status   TxStatus
}

// ResolvedInput is a TxInput enriched with the value, address, and script type
// of the previous output it spends. Value is zero and Address/ScriptType are
// nil when the ancestor output could not be resolved or the input is coinbase.
type ResolvedInput struct {
	PrevTxID   string  `json:"txid"`
	PrevVout   uint32  `json:"vout"`
	Sequence   uint32  `json:"sequence"`
	IsCoinbase bool    `json:"is_coinbase"`
	Value      int64   `json:"value_sats"`
	Address    *string `json:"address"`
	ScriptType *string `json:"script_type"`
}

// ResolvedOutput is a TxOutput enriched with its own index and the live
// spend status reported by the upstream.
type ResolvedOutput struct {
	Index      uint32  `json:"n"`
	Value      int64   `json:"value_sats"`
	Address    *string `json:"address"`
	ScriptType *string `json:"script_type"`
	Spent      bool    `json:"spent"`
}

// TransactionSummary is the complete explanation of one transaction. It is
// assembled atomically per request and never cached.
//
// ChangeOutputIndex is a best-effort heuristic guess, not protocol fact;
// nil means no defensible guess.
type TransactionSummary struct {
	TxID              string           `json:"txid"`
	Version           int32            `json:"version"`
	Locktime          uint32           `json:"locktime"`
	Size              uint32           `json:"size_bytes"`
	Weight            uint32           `json:"weight"`
	InputCount        int              `json:"vin_count"`
	OutputCount       int              `json:"vout_count"`
	TotalInput        int64            `json:"total_input_sats"`
	TotalOutput       int64            `json:"total_output_sats"`
	Fee               int64            `json:"fee_sats"`
	Inputs            []ResolvedInput  `json:"vin"`
	Outputs           []ResolvedOutput `json:"vout"`
	Status            TxStatus         `json:"status"`
	Hex               string           `json:"hex"`
	ChangeOutputIndex *uint32          `json:"change_output_index"`
}
