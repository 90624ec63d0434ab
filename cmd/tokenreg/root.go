package tokenreg

import (
	"time"

	"github.com/spf13/cobra"
)

// rootOptions are the flags shared by every command.
type rootOptions struct {
	verbose    bool
	chainsPath string
	axelarURL  string
	envFile    string
	rpcTimeout time.Duration
}

func BuildTokenregCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := cobra.Command{
		Use:   "tokenreg",
		Short: "Validate interchain token registry entries against their deployments",
		Long: `Validate interchain token registry entries against the contracts deployed on every
listed chain, the interchain token service of the origin chain and CoinGecko metadata.

RPC endpoints come from a chain directory file (--chains) or the Axelar mainnet config
(--axelar-config) and can be overridden with RPC_URL_<CHAIN> environment variables.`,
		SilenceUsage: true,
	}

	cmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "Enable debug logging")
	cmd.PersistentFlags().StringVar(&opts.chainsPath, "chains", "", "Path to the chain directory YAML file")
	cmd.PersistentFlags().StringVar(&opts.axelarURL, "axelar-config", "", "URL of an Axelar config document to load chains from")
	cmd.PersistentFlags().StringVar(&opts.envFile, "env-file", ".env", "Optional dotenv file with RPC_URL_<CHAIN> and COINGECKO_API_KEY")
	cmd.PersistentFlags().DurationVar(&opts.rpcTimeout, "timeout", defaultTimeout, "Timeout for HTTP lookups")

	cmd.AddCommand(buildValidateCmd(opts))
	cmd.AddCommand(buildCheckChainsCmd(opts))

	return &cmd
}
