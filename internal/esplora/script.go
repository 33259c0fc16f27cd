package esplora

import (
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/btcsuite/btcd/chaincfg"
	"github.com/btcsuite/btcd/txscript"
)

// scriptDecoder recovers an address and script type from raw scriptpubkey hex
// when the upstream response omits the decoded address.
type scriptDecoder struct {
	params *chaincfg.Params
}

func newScriptDecoder(network string) (*scriptDecoder, error) {
	params, err := chainParamsForNetwork(network)
	if err != nil {
		return nil, err
	}
	return &scriptDecoder{params: params}, nil
}

// decode is best-effort: undecodable or non-standard scripts yield empty
// results rather than an error, matching the optional address contract.
func (d *scriptDecoder) decode(scriptHex string) (address, scriptType string) {
	if scriptHex == "" {
		return "", ""
	}
	scriptBytes, err := hex.DecodeString(scriptHex)
	if err != nil {
		return "", ""
	}
	class, addrs, _, err := txscript.ExtractPkScriptAddrs(scriptBytes, d.params)
	if err != nil {
		return "", ""
	}
	if len(addrs) > 0 {
		address = addrs[0].EncodeAddress()
	}
	if class != txscript.NonStandardTy {
		scriptType = class.String()
	}
	return address, scriptType
}

func chainParamsForNetwork(network string) (*chaincfg.Params, error) {
	switch strings.ToLower(network) {
	case "main", "mainnet", "bitcoin":
		return &chaincfg.MainNetParams, nil
	case "testnet", "testnet3":
		return &chaincfg.TestNet3Params, nil
	case "regtest":
		return &chaincfg.RegressionNetParams, nil
	case "signet":
		return &chaincfg.SigNetParams, nil
	default:
		return nil, fmt.Errorf("unsupported network %q", network)
	}
}
