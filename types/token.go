package types //nolint:revive,nolintlint // allow pkg name 'types'

// AxelarChainID is the Axelar network name of a chain, e.g. "ethereum" or "base".
type AxelarChainID string

// ChainEntry is the asserted deployment of a token on a single chain.
type ChainEntry struct {
	AxelarChainID    AxelarChainID    `json:"axelarChainId"`
	Name             string           `json:"name"`
	Symbol           string           `json:"symbol"`
	TokenAddress     string           `json:"tokenAddress"`
	TokenManager     string           `json:"tokenManager"`
	TokenManagerType TokenManagerType `json:"tokenManagerType"`
}

// IconURLs holds the externally hosted icons of a token.
type IconURLs struct {
	SVG string `json:"svg,omitempty"`
}

// TokenRecord is the full asserted configuration of one logical interchain token.
type TokenRecord struct {
	TokenID             string        `json:"tokenId"`
	Deployer            string        `json:"deployer"`
	OriginalMinter      *string       `json:"originalMinter,omitempty"`
	PrettySymbol        string        `json:"prettySymbol"`
	Decimals            int           `json:"decimals"`
	OriginAxelarChainID AxelarChainID `json:"originAxelarChainId"`
	TokenType           string        `json:"tokenType,omitempty"`
	DeploySalt          string        `json:"deploySalt"`
	IconURLs            *IconURLs     `json:"iconUrls,omitempty"`
	DeploymentMessageID string        `json:"deploymentMessageId,omitempty"`
	CoinGeckoID         string        `json:"coinGeckoId,omitempty"`
	Chains              []ChainEntry  `json:"chains" validate:"required,min=1,dive"`
}

// TokenMetadata is the ERC20 metadata reported by a token contract.
type TokenMetadata struct {
	Name     string
	Symbol   string
	Decimals uint8
}

// ManagerInfo is the state reported by a token manager contract.
type ManagerInfo struct {
	TokenAddress       string
	ImplementationType uint64
}

// CoinMetadata is the subset of third-party coin metadata the validator compares against.
type CoinMetadata struct {
	ID     string `json:"id"`
	Symbol string `json:"symbol"`
	Name   string `json:"name"`
}
