package types

// ChainEndpoint defines how to reach a chain listed in the chain directory.
type ChainEndpoint struct {
	AxelarChainID AxelarChainID `json:"axelarChainId" yaml:"axelarChainId" validate:"required"`
	RPCURL        string        `json:"rpcUrl" yaml:"rpcUrl" validate:"required,url"`
	// EVMChainID is optional. When set, connections verify the RPC reports the same chain id.
	EVMChainID uint64 `json:"evmChainId,omitempty" yaml:"evmChainId,omitempty"`
	// ITSAddress overrides the InterchainTokenService address used for token id recomputation.
	ITSAddress string `json:"itsAddress,omitempty" yaml:"itsAddress,omitempty" validate:"omitempty,eth_addr"`

	// Populated from the chain-selectors registry when EVMChainID is known.
	ChainSelector uint64 `json:"-" yaml:"-"`
	ChainName     string `json:"-" yaml:"-"`
}
