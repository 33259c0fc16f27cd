package esplora

// Wire types for the Esplora REST API. Monetary values are integers in
// satoshis throughout.

type txResult struct {
	TxID     string     `json:"txid"`
	Version  int32      `json:"version"`
	Locktime uint32     `json:"locktime"`
	Size     uint32     `json:"size"`
	Weight   uint32     `json:"weight"`
	Fee      *int64     `json:"fee,omitempty"`
	Vin      []vin      `json:"vin"`
	Vout     []vout     `json:"vout"`
	Status   inlineStat `json:"status"`
}

type vin struct {
	TxID       string `json:"txid"`
	Vout       uint32 `json:"vout"`
	Sequence   uint32 `json:"sequence"`
	IsCoinbase bool   `json:"is_coinbase"`
}

type vout struct {
	ScriptPubKey        string `json:"scriptpubkey"`
	ScriptPubKeyType    string `json:"scriptpubkey_type"`
	ScriptPubKeyAddress string `json:"scriptpubkey_address,omitempty"`
	Value               int64  `json:"value"`
}

type inlineStat struct {
	Confirmed   bool    `json:"confirmed"`
	BlockHeight *uint32 `json:"block_height,omitempty"`
	BlockHash   *string `json:"block_hash,omitempty"`
	BlockTime   *int64  `json:"block_time,omitempty"`
}

type outspend struct {
	Spent bool `json:"spent"`
}

type mempoolTx struct {
	TxID string `json:"txid"`
}
