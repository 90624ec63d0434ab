package sdk

import (
	"context"

	"github.com/smartcontractkit/tokenreg/types"
)

// Inspector is an interface for inspecting the on chain state of an interchain token deployment
// on a single chain.
type Inspector interface {
	// HasCode reports whether the address hosts contract code.
	HasCode(ctx context.Context, address string) (bool, error)
	// GetTokenMetadata reads name, symbol and decimals from an ERC20 token contract.
	GetTokenMetadata(ctx context.Context, tokenAddress string) (types.TokenMetadata, error)
	// GetManagerInfo reads the managed token address and implementation type of a token manager.
	GetManagerInfo(ctx context.Context, managerAddress string) (types.ManagerInfo, error)
	// InterchainTokenID recomputes the canonical token id from a deployer and a deploy salt.
	InterchainTokenID(ctx context.Context, deployer string, salt string) (string, error)
}

// Connector opens an Inspector for a chain endpoint.
type Connector interface {
	Connect(ctx context.Context, endpoint types.ChainEndpoint) (Inspector, error)
}

// ChainDirectory resolves Axelar chain ids to connection endpoints.
type ChainDirectory interface {
	Endpoint(chainID types.AxelarChainID) (types.ChainEndpoint, bool)
}
