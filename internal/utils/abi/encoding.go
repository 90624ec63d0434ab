package abi

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
)

// ErrEmptyResult is returned when a contract call returns no data, which is what a node answers
// for calls to an address without code or to a function the contract does not implement.
var ErrEmptyResult = errors.New("contract call returned no data")

// MustParse parses a JSON ABI definition and panics if it is malformed. It is meant for package
// level ABI literals.
func MustParse(def string) abi.ABI {
	parsed, err := abi.JSON(strings.NewReader(def))
	if err != nil {
		panic(fmt.Sprintf("invalid ABI definition: %v", err))
	}

	return parsed
}

// Call performs a read-only call of method on the contract at address and returns the unpacked
// outputs.
func Call(
	ctx context.Context,
	caller ethereum.ContractCaller,
	contract abi.ABI,
	address common.Address,
	method string,
	args ...any,
) ([]any, error) {
	input, err := contract.Pack(method, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to pack %s call: %w", method, err)
	}

	out, err := caller.CallContract(ctx, ethereum.CallMsg{To: &address, Data: input}, nil)
	if err != nil {
		return nil, fmt.Errorf("%s call to %s failed: %w", method, address.Hex(), err)
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("%s call to %s: %w", method, address.Hex(), ErrEmptyResult)
	}

	values, err := contract.Unpack(method, out)
	if err != nil {
		return nil, fmt.Errorf("failed to unpack %s result from %s: %w", method, address.Hex(), err)
	}

	return values, nil
}
