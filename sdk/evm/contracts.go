package evm

import (
	"github.com/ethereum/go-ethereum/accounts/abi"

	abiutil "github.com/smartcontractkit/tokenreg/internal/utils/abi"
)

// DefaultITSAddress is the InterchainTokenService address, identical on every EVM chain it is
// deployed to.
const DefaultITSAddress = "0xB5FB4BE02232B1bBA4dC8f81dc24C26980dE9e3C"

const erc20ABI = `[
	{"constant":true,"inputs":[],"name":"name","outputs":[{"name":"","type":"string"}],"type":"function"},
	{"constant":true,"inputs":[],"name":"symbol","outputs":[{"name":"","type":"string"}],"type":"function"},
	{"constant":true,"inputs":[],"name":"decimals","outputs":[{"name":"","type":"uint8"}],"type":"function"}
]`

const interchainTokenServiceABI = `[
	{
		"inputs":[
			{"internalType":"address","name":"sender","type":"address"},
			{"internalType":"bytes32","name":"salt","type":"bytes32"}
		],
		"name":"interchainTokenId",
		"outputs":[{"internalType":"bytes32","name":"tokenId","type":"bytes32"}],
		"stateMutability":"pure",
		"type":"function"
	}
]`

const tokenManagerABI = `[
	{
		"inputs":[],
		"name":"tokenAddress",
		"outputs":[{"internalType":"address","name":"","type":"address"}],
		"stateMutability":"view",
		"type":"function"
	},
	{
		"inputs":[],
		"name":"implementationType",
		"outputs":[{"internalType":"uint256","name":"","type":"uint256"}],
		"stateMutability":"view",
		"type":"function"
	}
]`

// ContractABIs holds the call signatures used to inspect a deployment.
type ContractABIs struct {
	ERC20                  abi.ABI
	TokenManager           abi.ABI
	InterchainTokenService abi.ABI
}

var defaultContractABIs = ContractABIs{
	ERC20:                  abiutil.MustParse(erc20ABI),
	TokenManager:           abiutil.MustParse(tokenManagerABI),
	InterchainTokenService: abiutil.MustParse(interchainTokenServiceABI),
}

// DefaultContractABIs returns the ABIs of the ERC20, TokenManager and InterchainTokenService
// contracts.
func DefaultContractABIs() ContractABIs {
	return defaultContractABIs
}
