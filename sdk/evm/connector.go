package evm

import (
	"context"
	"math/big"
	"sync"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/ethclient"

	"github.com/smartcontractkit/tokenreg/sdk"
	sdkerrors "github.com/smartcontractkit/tokenreg/sdk/errors"
	"github.com/smartcontractkit/tokenreg/types"
)

var _ sdk.Connector = (*Connector)(nil)

// ContractBackend is the subset of an EVM RPC client needed to inspect deployments.
type ContractBackend interface {
	bind.ContractCaller
	ChainID(ctx context.Context) (*big.Int, error)
	Close()
}

// DialFunc opens a ContractBackend for an RPC url.
type DialFunc func(ctx context.Context, rpcURL string) (ContractBackend, error)

func dialEthClient(ctx context.Context, rpcURL string) (ContractBackend, error) {
	return ethclient.DialContext(ctx, rpcURL)
}

// connection is the outcome of connecting to one chain. It is resolved once.
type connection struct {
	once      sync.Once
	client    ContractBackend
	inspector *Inspector
	err       error
}

// Connector dials EVM endpoints and hands out Inspectors. Every chain is dialed at most once per
// Connector: both the Inspector and a failed connection are reused by later calls.
type Connector struct {
	dial DialFunc

	mu    sync.Mutex
	conns map[types.AxelarChainID]*connection
}

// ConnectorOption configures a Connector.
type ConnectorOption func(*Connector)

// WithDialer overrides how endpoints are dialed.
func WithDialer(dial DialFunc) ConnectorOption {
	return func(c *Connector) {
		c.dial = dial
	}
}

// NewConnector creates a new Connector.
func NewConnector(opts ...ConnectorOption) *Connector {
	c := &Connector{
		dial:  dialEthClient,
		conns: make(map[types.AxelarChainID]*connection),
	}
	for _, opt := range opts {
		opt(c)
	}

	return c
}

// Connect returns an Inspector for the endpoint. When the endpoint declares an EVM chain id, the
// RPC is asked for its chain id and a mismatch is reported as an InvalidChainIDError.
//
// Connects to different chains proceed concurrently. Concurrent calls for the same chain wait for
// the first one to finish.
func (c *Connector) Connect(ctx context.Context, endpoint types.ChainEndpoint) (sdk.Inspector, error) {
	c.mu.Lock()
	conn, ok := c.conns[endpoint.AxelarChainID]
	if !ok {
		conn = &connection{}
		c.conns[endpoint.AxelarChainID] = conn
	}
	c.mu.Unlock()

	conn.once.Do(func() {
		conn.client, conn.inspector, conn.err = c.connect(ctx, endpoint)
	})
	if conn.err != nil {
		return nil, conn.err
	}

	return conn.inspector, nil
}

func (c *Connector) connect(ctx context.Context, endpoint types.ChainEndpoint) (ContractBackend, *Inspector, error) {
	lggr := sdk.LoggerFrom(ctx)
	lggr.Debugf("Dialing %s at %s", endpoint.AxelarChainID, endpoint.RPCURL)

	client, err := c.dial(ctx, endpoint.RPCURL)
	if err != nil {
		return nil, nil, sdkerrors.NewConnectionError(endpoint.AxelarChainID, err)
	}

	if endpoint.EVMChainID != 0 {
		chainID, err := client.ChainID(ctx)
		if err != nil {
			client.Close()
			return nil, nil, sdkerrors.NewConnectionError(endpoint.AxelarChainID, err)
		}
		if !chainID.IsUint64() || chainID.Uint64() != endpoint.EVMChainID {
			client.Close()
			return nil, nil, sdkerrors.NewInvalidChainIDError(endpoint.AxelarChainID, endpoint.EVMChainID, chainID.Uint64())
		}
	}

	var opts []InspectorOption
	if endpoint.ITSAddress != "" {
		opts = append(opts, WithITSAddress(common.HexToAddress(endpoint.ITSAddress)))
	}

	return client, NewInspector(client, opts...), nil
}

// Close closes every client the Connector dialed successfully. It must not run concurrently with
// Connect.
func (c *Connector) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()

	for chain, conn := range c.conns {
		if conn.client != nil {
			conn.client.Close()
		}
		delete(c.conns, chain)
	}
}
