package chainaccess

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	chainsel "github.com/smartcontractkit/chain-selectors"
	"gopkg.in/yaml.v3"

	"github.com/smartcontractkit/tokenreg/sdk"
	"github.com/smartcontractkit/tokenreg/types"
)

// ErrChainNotFound is returned when a chain id has no endpoint in the directory.
var ErrChainNotFound = errors.New("chain not found in directory")

var _ sdk.ChainDirectory = (*Directory)(nil)

// Directory is the static table of chain endpoints, keyed by Axelar chain id.
type Directory struct {
	endpoints map[types.AxelarChainID]types.ChainEndpoint
	order     []types.AxelarChainID
}

// directoryFile is the YAML layout of a chain directory file.
type directoryFile struct {
	Chains []types.ChainEndpoint `yaml:"chains" validate:"required,min=1,dive"`
}

// NewDirectory builds a directory from a list of endpoints. Entries are validated and, when they
// declare an EVM chain id known to chain-selectors, enriched with the chain selector and name.
func NewDirectory(endpoints ...types.ChainEndpoint) (*Directory, error) {
	validate := validator.New()

	d := &Directory{endpoints: make(map[types.AxelarChainID]types.ChainEndpoint, len(endpoints))}
	for _, ep := range endpoints {
		if err := validate.Struct(ep); err != nil {
			return nil, fmt.Errorf("invalid endpoint for chain %q: %w", ep.AxelarChainID, err)
		}
		if _, dup := d.endpoints[ep.AxelarChainID]; dup {
			return nil, fmt.Errorf("duplicate endpoint for chain %q", ep.AxelarChainID)
		}

		d.endpoints[ep.AxelarChainID] = enrich(ep)
		d.order = append(d.order, ep.AxelarChainID)
	}

	return d, nil
}

// LoadDirectory reads a YAML chain directory.
//
//	chains:
//	  - axelarChainId: ethereum
//	    rpcUrl: https://ethereum-rpc.publicnode.com
//	    evmChainId: 1
func LoadDirectory(r io.Reader) (*Directory, error) {
	var file directoryFile
	if err := yaml.NewDecoder(r).Decode(&file); err != nil {
		return nil, fmt.Errorf("failed to decode chain directory: %w", err)
	}

	if err := validator.New().Struct(file); err != nil {
		return nil, fmt.Errorf("invalid chain directory: %w", err)
	}

	return NewDirectory(file.Chains...)
}

// Endpoint returns the endpoint configured for the chain.
func (d *Directory) Endpoint(chainID types.AxelarChainID) (types.ChainEndpoint, bool) {
	ep, ok := d.endpoints[chainID]

	return ep, ok
}

// Chains returns the chain ids in the directory in the order they were added.
func (d *Directory) Chains() []types.AxelarChainID {
	out := make([]types.AxelarChainID, len(d.order))
	copy(out, d.order)

	return out
}

// ApplyEnv overrides RPC urls from RPC_URL_<CHAIN> variables, where <CHAIN> is the upper case
// Axelar chain id with dashes replaced by underscores. It returns the chains that were
// overridden.
func (d *Directory) ApplyEnv(getenv func(string) string) []types.AxelarChainID {
	var overridden []types.AxelarChainID
	for _, id := range d.order {
		url := getenv(EnvKey(id))
		if url == "" {
			continue
		}

		ep := d.endpoints[id]
		ep.RPCURL = url
		d.endpoints[id] = ep
		overridden = append(overridden, id)
	}

	return overridden
}

// EnvKey returns the environment variable that overrides the RPC url of a chain.
func EnvKey(chainID types.AxelarChainID) string {
	return "RPC_URL_" + strings.ToUpper(strings.ReplaceAll(string(chainID), "-", "_"))
}

func enrich(ep types.ChainEndpoint) types.ChainEndpoint {
	if ep.EVMChainID == 0 {
		return ep
	}

	details, err := chainsel.GetChainDetailsByChainIDAndFamily(strconv.FormatUint(ep.EVMChainID, 10), chainsel.FamilyEVM)
	if err != nil {
		return ep
	}

	ep.ChainSelector = details.ChainSelector
	ep.ChainName = details.ChainName

	return ep
}
