package chainaccess

import (
	"context"
	"errors"
	"fmt"

	"github.com/smartcontractkit/tokenreg/sdk"
	"github.com/smartcontractkit/tokenreg/types"
)

// BuildInspectors connects to every given chain of the directory. Chains that cannot be reached
// are reported together in the returned error while the reachable ones are still returned.
func BuildInspectors(
	ctx context.Context,
	directory sdk.ChainDirectory,
	connector sdk.Connector,
	chains []types.AxelarChainID,
) (map[types.AxelarChainID]sdk.Inspector, error) {
	inspectors := make(map[types.AxelarChainID]sdk.Inspector, len(chains))
	var errs []error
	for _, chain := range chains {
		inspector, err := BuildInspector(ctx, directory, connector, chain)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		inspectors[chain] = inspector
	}

	return inspectors, errors.Join(errs...)
}

// BuildInspector resolves a chain in the directory and connects to its endpoint.
func BuildInspector(
	ctx context.Context,
	directory sdk.ChainDirectory,
	connector sdk.Connector,
	chain types.AxelarChainID,
) (sdk.Inspector, error) {
	if directory == nil || connector == nil {
		return nil, errors.New("chain directory and connector are required")
	}

	endpoint, ok := directory.Endpoint(chain)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrChainNotFound, chain)
	}

	inspector, err := connector.Connect(ctx, endpoint)
	if err != nil {
		return nil, fmt.Errorf("error connecting to %s: %w", chain, err)
	}

	return inspector, nil
}
