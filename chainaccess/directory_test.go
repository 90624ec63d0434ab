package chainaccess

import (
	"strings"
	"testing"

	chainsel "github.com/smartcontractkit/chain-selectors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smartcontractkit/tokenreg/types"
)

const testDirectoryYAML = `
chains:
  - axelarChainId: ethereum
    rpcUrl: https://ethereum-rpc.publicnode.com
    evmChainId: 1
  - axelarChainId: base
    rpcUrl: https://mainnet.base.org
  - axelarChainId: binance
    rpcUrl: https://bsc-dataseed.binance.org
    itsAddress: "0xB5FB4BE02232B1bBA4dC8f81dc24C26980dE9e3C"
`

func TestLoadDirectory(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		give    string
		want    []types.AxelarChainID
		wantErr string
	}{
		{
			name: "success",
			give: testDirectoryYAML,
			want: []types.AxelarChainID{"ethereum", "base", "binance"},
		},
		{
			name:    "failure: malformed yaml",
			give:    "chains: [",
			wantErr: "failed to decode chain directory",
		},
		{
			name:    "failure: no chains",
			give:    "chains: []",
			wantErr: "invalid chain directory",
		},
		{
			name: "failure: missing rpc url",
			give: `
chains:
  - axelarChainId: ethereum
`,
			wantErr: "invalid chain directory",
		},
		{
			name: "failure: invalid its address",
			give: `
chains:
  - axelarChainId: ethereum
    rpcUrl: https://ethereum-rpc.publicnode.com
    itsAddress: "0x1234"
`,
			wantErr: "invalid chain directory",
		},
		{
			name: "failure: duplicate chain",
			give: `
chains:
  - axelarChainId: ethereum
    rpcUrl: https://a.example
  - axelarChainId: ethereum
    rpcUrl: https://b.example
`,
			wantErr: `duplicate endpoint for chain "ethereum"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := LoadDirectory(strings.NewReader(tt.give))
			if tt.wantErr != "" {
				require.ErrorContains(t, err, tt.wantErr)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got.Chains())
		})
	}
}

func TestDirectory_Endpoint(t *testing.T) {
	t.Parallel()

	dir, err := LoadDirectory(strings.NewReader(testDirectoryYAML))
	require.NoError(t, err)

	eth, ok := dir.Endpoint("ethereum")
	require.True(t, ok)
	assert.Equal(t, "https://ethereum-rpc.publicnode.com", eth.RPCURL)
	assert.Equal(t, uint64(1), eth.EVMChainID)
	assert.Equal(t, chainsel.ETHEREUM_MAINNET.Selector, eth.ChainSelector)
	assert.Equal(t, chainsel.ETHEREUM_MAINNET.Name, eth.ChainName)

	base, ok := dir.Endpoint("base")
	require.True(t, ok)
	assert.Zero(t, base.ChainSelector)

	_, ok = dir.Endpoint("fantom")
	assert.False(t, ok)
}

func TestDirectory_ApplyEnv(t *testing.T) {
	t.Parallel()

	dir, err := NewDirectory(
		types.ChainEndpoint{AxelarChainID: "ethereum", RPCURL: "https://a.example"},
		types.ChainEndpoint{AxelarChainID: "arbitrum-sepolia", RPCURL: "https://b.example"},
	)
	require.NoError(t, err)

	env := map[string]string{
		"RPC_URL_ARBITRUM_SEPOLIA": "https://override.example",
	}
	overridden := dir.ApplyEnv(func(key string) string { return env[key] })

	assert.Equal(t, []types.AxelarChainID{"arbitrum-sepolia"}, overridden)

	ep, ok := dir.Endpoint("arbitrum-sepolia")
	require.True(t, ok)
	assert.Equal(t, "https://override.example", ep.RPCURL)

	ep, ok = dir.Endpoint("ethereum")
	require.True(t, ok)
	assert.Equal(t, "https://a.example", ep.RPCURL)
}

func TestEnvKey(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "RPC_URL_ETHEREUM", EnvKey("ethereum"))
	assert.Equal(t, "RPC_URL_ARBITRUM_SEPOLIA", EnvKey("arbitrum-sepolia"))
}
