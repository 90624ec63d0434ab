package tokenreg

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smartcontractkit/tokenreg/types"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func TestLoadDirectory(t *testing.T) {
	chains := writeFile(t, "chains.yaml", `
chains:
  - axelarChainId: ethereum
    rpcUrl: https://ethereum.invalid
  - axelarChainId: arbitrum-sepolia
    rpcUrl: https://arbitrum.invalid
`)
	t.Setenv("RPC_URL_ARBITRUM_SEPOLIA", "https://override.invalid")

	dir, err := loadDirectory(context.Background(), &rootOptions{chainsPath: chains})
	require.NoError(t, err)

	ep, ok := dir.Endpoint("arbitrum-sepolia")
	require.True(t, ok)
	assert.Equal(t, "https://override.invalid", ep.RPCURL)
	assert.Equal(t, []types.AxelarChainID{"ethereum", "arbitrum-sepolia"}, dir.Chains())
}

func TestLoadDirectory_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		give    *rootOptions
		wantErr string
	}{
		{
			name:    "no source",
			give:    &rootOptions{},
			wantErr: "one of --chains or --axelar-config is required",
		},
		{
			name:    "both sources",
			give:    &rootOptions{chainsPath: "chains.yaml", axelarURL: mainnetAlias},
			wantErr: "mutually exclusive",
		},
		{
			name:    "missing file",
			give:    &rootOptions{chainsPath: filepath.Join(t.TempDir(), "missing.yaml")},
			wantErr: "failed to open chain directory",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := loadDirectory(context.Background(), tt.give)
			assert.ErrorContains(t, err, tt.wantErr)
		})
	}
}

func TestLoadEnv(t *testing.T) {
	t.Setenv("TOKENREG_TEST_PRESET", "kept")

	path := writeFile(t, ".env", "TOKENREG_TEST_LOADED=yes\nTOKENREG_TEST_PRESET=replaced\n")
	require.NoError(t, loadEnv(path))
	t.Cleanup(func() { os.Unsetenv("TOKENREG_TEST_LOADED") })

	assert.Equal(t, "yes", os.Getenv("TOKENREG_TEST_LOADED"))
	assert.Equal(t, "kept", os.Getenv("TOKENREG_TEST_PRESET"))

	require.NoError(t, loadEnv(filepath.Join(t.TempDir(), "missing.env")))
	require.NoError(t, loadEnv(""))
}

func TestValidateCmd_MissingInput(t *testing.T) {
	t.Parallel()

	cmd := BuildTokenregCmd()
	cmd.SetArgs([]string{
		"validate",
		"--env-file", "",
		"--chains", "chains.yaml",
		"--input", filepath.Join(t.TempDir(), "missing.json"),
	})
	cmd.SetOut(&discard{})
	cmd.SetErr(&discard{})

	err := cmd.Execute()
	assert.ErrorContains(t, err, "failed to open token registry")
}

type discard struct{}

func (discard) Write(p []byte) (int, error) { return len(p), nil }
