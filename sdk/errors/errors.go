package sdkerrors

import (
	"fmt"

	"github.com/smartcontractkit/tokenreg/types"
)

// InvalidChainIDError is returned when an RPC endpoint serves a different chain than the one it
// is configured for.
type InvalidChainIDError struct {
	AxelarChainID   types.AxelarChainID
	ExpectedChainID uint64
	ReceivedChainID uint64
}

func (e *InvalidChainIDError) Error() string {
	return fmt.Sprintf("invalid chain ID for %s: expected %d, endpoint reports %d",
		e.AxelarChainID, e.ExpectedChainID, e.ReceivedChainID)
}

func NewInvalidChainIDError(chain types.AxelarChainID, expected, received uint64) *InvalidChainIDError {
	return &InvalidChainIDError{AxelarChainID: chain, ExpectedChainID: expected, ReceivedChainID: received}
}

// ConnectionError is returned when an endpoint cannot be dialed.
type ConnectionError struct {
	AxelarChainID types.AxelarChainID
	Err           error
}

func (e *ConnectionError) Error() string {
	return fmt.Sprintf("failed to connect to %s: %v", e.AxelarChainID, e.Err)
}

func (e *ConnectionError) Unwrap() error {
	return e.Err
}

func NewConnectionError(chain types.AxelarChainID, err error) *ConnectionError {
	return &ConnectionError{AxelarChainID: chain, Err: err}
}
