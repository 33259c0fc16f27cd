package esplora

import (
	"fmt"

	"github.com/goodnatureofminers/txlens7000-backend/internal/model"
)

func (c *Client) toTransaction(src txResult) (*model.Transaction, error) {
	inputs := make([]model.TxInput, 0, len(src.Vin))
	for _, in := range src.Vin {
		inputs = append(inputs, model.TxInput{
			PrevTxID:   in.TxID,
			PrevVout:   in.Vout,
			Sequence:   in.Sequence,
			IsCoinbase: in.IsCoinbase,
		})
	}

	outputs := make([]model.TxOutput, 0, len(src.Vout))
	for idx, out := range src.Vout {
		if out.Value < 0 {
			return nil, fmt.Errorf("tx %s output %d negative value: %d", src.TxID, idx, out.Value)
		}

		address := out.ScriptPubKeyAddress
		scriptType := out.ScriptPubKeyType
		if address == "" {
			decodedAddr, decodedType := c.decoder.decode(out.ScriptPubKey)
			address = decodedAddr
			if scriptType == "" {
				scriptType = decodedType
			}
		}

		outputs = append(outputs, model.TxOutput{
			Value:      out.Value,
			Address:    address,
			ScriptType: scriptType,
		})
	}

	return &model.Transaction{
		TxID:     src.TxID,
		Version:  src.Version,
		Locktime: src.Locktime,
		Size:     src.Size,
		Weight:   src.Weight,
		Fee:      src.Fee,
		Inputs:   inputs,
		Outputs:  outputs,
		Status: model.TxStatus{
			Confirmed:   src.Status.Confirmed,
			BlockHeight: src.Status.BlockHeight,
			BlockHash:   src.Status.BlockHash,
			BlockTime:   src.Status.BlockTime,
		},
	}, nil
}
