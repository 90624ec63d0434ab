package evm

import (
	"context"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"

	abiutil "github.com/smartcontractkit/tokenreg/internal/utils/abi"
	"github.com/smartcontractkit/tokenreg/internal/utils/safecast"
	"github.com/smartcontractkit/tokenreg/sdk"
	"github.com/smartcontractkit/tokenreg/types"
)

var _ sdk.Inspector = (*Inspector)(nil)

// Inspector is an Inspector implementation for EVM chains, giving access to the state of the
// token, token manager and InterchainTokenService contracts.
type Inspector struct {
	client     bind.ContractCaller
	itsAddress common.Address
	abis       ContractABIs
}

// InspectorOption configures an Inspector.
type InspectorOption func(*Inspector)

// WithITSAddress overrides the InterchainTokenService address used for token id recomputation.
func WithITSAddress(address common.Address) InspectorOption {
	return func(i *Inspector) {
		i.itsAddress = address
	}
}

// NewInspector creates a new Inspector for evm chains.
func NewInspector(client bind.ContractCaller, opts ...InspectorOption) *Inspector {
	i := &Inspector{
		client:     client,
		itsAddress: common.HexToAddress(DefaultITSAddress),
		abis:       DefaultContractABIs(),
	}
	for _, opt := range opts {
		opt(i)
	}

	return i
}

// HasCode reports whether there is contract code deployed at the address.
func (e *Inspector) HasCode(ctx context.Context, address string) (bool, error) {
	addr, err := parseAddress(address)
	if err != nil {
		return false, err
	}

	code, err := e.client.CodeAt(ctx, addr, nil)
	if err != nil {
		return false, fmt.Errorf("failed to get code at %s: %w", addr.Hex(), err)
	}

	return len(code) > 0, nil
}

// GetTokenMetadata reads the ERC20 name, symbol and decimals of the token.
func (e *Inspector) GetTokenMetadata(ctx context.Context, tokenAddress string) (types.TokenMetadata, error) {
	addr, err := parseAddress(tokenAddress)
	if err != nil {
		return types.TokenMetadata{}, err
	}

	name, err := callERC20[string](ctx, e, addr, "name")
	if err != nil {
		return types.TokenMetadata{}, err
	}

	symbol, err := callERC20[string](ctx, e, addr, "symbol")
	if err != nil {
		return types.TokenMetadata{}, err
	}

	decimals, err := callERC20[uint8](ctx, e, addr, "decimals")
	if err != nil {
		return types.TokenMetadata{}, err
	}

	return types.TokenMetadata{
		Name:     name,
		Symbol:   symbol,
		Decimals: decimals,
	}, nil
}

// GetManagerInfo reads the managed token address and implementation type of a token manager.
func (e *Inspector) GetManagerInfo(ctx context.Context, managerAddress string) (types.ManagerInfo, error) {
	addr, err := parseAddress(managerAddress)
	if err != nil {
		return types.ManagerInfo{}, err
	}

	out, err := abiutil.Call(ctx, e.client, e.abis.TokenManager, addr, "tokenAddress")
	if err != nil {
		return types.ManagerInfo{}, err
	}
	managed, err := first[common.Address](out, "tokenAddress")
	if err != nil {
		return types.ManagerInfo{}, err
	}

	out, err = abiutil.Call(ctx, e.client, e.abis.TokenManager, addr, "implementationType")
	if err != nil {
		return types.ManagerInfo{}, err
	}
	implType, err := first[*big.Int](out, "implementationType")
	if err != nil {
		return types.ManagerInfo{}, err
	}
	code, err := safecast.BigIntToUint64(implType)
	if err != nil {
		return types.ManagerInfo{}, fmt.Errorf("invalid implementation type: %w", err)
	}

	return types.ManagerInfo{
		TokenAddress:       managed.Hex(),
		ImplementationType: code,
	}, nil
}

// InterchainTokenID asks the InterchainTokenService to derive the token id of a deployer and
// salt pair. The result is 0x prefixed lower case hex.
func (e *Inspector) InterchainTokenID(ctx context.Context, deployer string, salt string) (string, error) {
	sender, err := parseAddress(deployer)
	if err != nil {
		return "", err
	}

	saltBytes, err := hexutil.Decode(salt)
	if err != nil {
		return "", fmt.Errorf("invalid deploy salt %q: %w", salt, err)
	}
	if len(saltBytes) != common.HashLength {
		return "", fmt.Errorf("invalid deploy salt %q: expected %d bytes, got %d", salt, common.HashLength, len(saltBytes))
	}

	out, err := abiutil.Call(ctx, e.client, e.abis.InterchainTokenService, e.itsAddress,
		"interchainTokenId", sender, [32]byte(saltBytes))
	if err != nil {
		return "", err
	}
	id, err := first[[32]byte](out, "interchainTokenId")
	if err != nil {
		return "", err
	}

	return hexutil.Encode(id[:]), nil
}

func callERC20[T any](ctx context.Context, e *Inspector, addr common.Address, method string) (T, error) {
	out, err := abiutil.Call(ctx, e.client, e.abis.ERC20, addr, method)
	if err != nil {
		var zero T
		return zero, err
	}

	return first[T](out, method)
}

func first[T any](out []any, method string) (T, error) {
	var zero T
	if len(out) == 0 {
		return zero, fmt.Errorf("%s returned no values", method)
	}

	v, ok := out[0].(T)
	if !ok {
		return zero, fmt.Errorf("%s returned unexpected type %T", method, out[0])
	}

	return v, nil
}

func parseAddress(address string) (common.Address, error) {
	if !common.IsHexAddress(address) {
		return common.Address{}, fmt.Errorf("invalid address %q", address)
	}

	return common.HexToAddress(address), nil
}
