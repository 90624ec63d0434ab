package chainaccess

import (
	"context"
	"fmt"
	"maps"
	"slices"

	"github.com/go-resty/resty/v2"
	"github.com/spf13/cast"

	"github.com/smartcontractkit/tokenreg/types"
)

// AxelarMainnetConfigURL is the published Axelar mainnet chain configuration.
const AxelarMainnetConfigURL = "https://axelar-mainnet.s3.us-east-2.amazonaws.com/configs/mainnet-config-1.x.json"

type axelarConfig struct {
	Chains map[string]axelarChain `json:"chains"`
}

type axelarChain struct {
	ID              string `json:"id"`
	ChainType       string `json:"chainType"`
	ExternalChainID any    `json:"externalChainId"`
	Config          struct {
		RPC []string `json:"rpc"`
	} `json:"config"`
}

// FetchAxelarDirectory builds a directory from the Axelar network configuration document. Only
// EVM chains with at least one RPC url are included, using the first url listed.
func FetchAxelarDirectory(ctx context.Context, client *resty.Client, url string) (*Directory, error) {
	var cfg axelarConfig
	resp, err := client.R().
		SetContext(ctx).
		SetResult(&cfg).
		Get(url)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch axelar chain config: %w", err)
	}
	if !resp.IsSuccess() {
		return nil, fmt.Errorf("failed to fetch axelar chain config: status %d", resp.StatusCode())
	}

	endpoints := make([]types.ChainEndpoint, 0, len(cfg.Chains))
	for _, key := range slices.Sorted(maps.Keys(cfg.Chains)) {
		chain := cfg.Chains[key]
		if chain.ChainType != "" && chain.ChainType != "evm" {
			continue
		}
		if len(chain.Config.RPC) == 0 {
			continue
		}

		// externalChainId is a number for EVM chains but some entries carry it as a string.
		evmChainID, err := cast.ToUint64E(chain.ExternalChainID)
		if err != nil {
			evmChainID = 0
		}

		endpoints = append(endpoints, types.ChainEndpoint{
			AxelarChainID: types.AxelarChainID(key),
			RPCURL:        chain.Config.RPC[0],
			EVMChainID:    evmChainID,
		})
	}

	return NewDirectory(endpoints...)
}
