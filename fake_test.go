package tokenreg

import (
	"context"
	"errors"
	"strings"
	"sync"

	"github.com/smartcontractkit/tokenreg/sdk"
	"github.com/smartcontractkit/tokenreg/types"
)

// fakeWriter is a fake implementation of io.Writer.
type fakeWriter struct {
	n   int
	err error
}

// newFakeWriter returns a new Writer.
func newFakeWriter(n int, err error) *fakeWriter {
	return &fakeWriter{
		n:   n,
		err: err,
	}
}

// Write doesn't actually write anything, it just returns the values in the Writer.
func (w *fakeWriter) Write(p []byte) (n int, err error) {
	return w.n, w.err
}

// fakeDirectory is a static chain directory.
type fakeDirectory map[types.AxelarChainID]types.ChainEndpoint

func (d fakeDirectory) Endpoint(chain types.AxelarChainID) (types.ChainEndpoint, bool) {
	ep, ok := d[chain]

	return ep, ok
}

// fakeConnector hands out the fake chain registered for an endpoint, or the error registered for
// it.
type fakeConnector struct {
	chains map[types.AxelarChainID]*fakeChain
	errs   map[types.AxelarChainID]error
}

func (c *fakeConnector) Connect(_ context.Context, endpoint types.ChainEndpoint) (sdk.Inspector, error) {
	if err, ok := c.errs[endpoint.AxelarChainID]; ok {
		return nil, err
	}
	chain, ok := c.chains[endpoint.AxelarChainID]
	if !ok {
		return nil, errors.New("no fake chain for " + string(endpoint.AxelarChainID))
	}

	return chain, nil
}

// fakeChain holds the contract state of a single chain. Addresses are keyed in lower case.
type fakeChain struct {
	mu sync.Mutex

	code     map[string]bool
	tokens   map[string]types.TokenMetadata
	managers map[string]types.ManagerInfo
	// tokenIDs maps "deployer|salt" to the id the token service derives.
	tokenIDs map[string]string
	// err is returned by every lookup when set.
	err error

	calls map[string]int
}

func newFakeChain() *fakeChain {
	return &fakeChain{
		code:     make(map[string]bool),
		tokens:   make(map[string]types.TokenMetadata),
		managers: make(map[string]types.ManagerInfo),
		tokenIDs: make(map[string]string),
		calls:    make(map[string]int),
	}
}

func (c *fakeChain) deployToken(address string, meta types.TokenMetadata) {
	c.code[strings.ToLower(address)] = true
	c.tokens[strings.ToLower(address)] = meta
}

func (c *fakeChain) deployManager(address string, info types.ManagerInfo) {
	c.code[strings.ToLower(address)] = true
	c.managers[strings.ToLower(address)] = info
}

func (c *fakeChain) called(method string) int {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.calls[method]
}

func (c *fakeChain) record(method string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.calls[method]++

	return c.err
}

func (c *fakeChain) HasCode(_ context.Context, address string) (bool, error) {
	if err := c.record("HasCode"); err != nil {
		return false, err
	}

	return c.code[strings.ToLower(address)], nil
}

func (c *fakeChain) GetTokenMetadata(_ context.Context, tokenAddress string) (types.TokenMetadata, error) {
	if err := c.record("GetTokenMetadata"); err != nil {
		return types.TokenMetadata{}, err
	}
	meta, ok := c.tokens[strings.ToLower(tokenAddress)]
	if !ok {
		return types.TokenMetadata{}, errors.New("execution reverted")
	}

	return meta, nil
}

func (c *fakeChain) GetManagerInfo(_ context.Context, managerAddress string) (types.ManagerInfo, error) {
	if err := c.record("GetManagerInfo"); err != nil {
		return types.ManagerInfo{}, err
	}
	info, ok := c.managers[strings.ToLower(managerAddress)]
	if !ok {
		return types.ManagerInfo{}, errors.New("execution reverted")
	}

	return info, nil
}

func (c *fakeChain) InterchainTokenID(_ context.Context, deployer, salt string) (string, error) {
	if err := c.record("InterchainTokenID"); err != nil {
		return "", err
	}

	return c.tokenIDs[strings.ToLower(deployer+"|"+salt)], nil
}

// fakeFetcher serves coin metadata from a map. Unknown ids are not found.
type fakeFetcher struct {
	coins map[string]types.CoinMetadata
	err   error
}

func (f *fakeFetcher) FetchCoin(_ context.Context, externalID string) (types.CoinMetadata, error) {
	if f.err != nil {
		return types.CoinMetadata{}, f.err
	}
	coin, ok := f.coins[externalID]
	if !ok {
		return types.CoinMetadata{}, sdk.ErrExternalIDNotFound
	}

	return coin, nil
}

// fakeIconChecker returns err for every icon.
type fakeIconChecker struct {
	err error
}

func (f *fakeIconChecker) CheckSVG(context.Context, string) error {
	return f.err
}
