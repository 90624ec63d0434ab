package tokenreg

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/smartcontractkit/tokenreg/chainaccess"
	"github.com/smartcontractkit/tokenreg/sdk"
	"github.com/smartcontractkit/tokenreg/sdk/evm"
)

func buildCheckChainsCmd(root *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "check-chains",
		Short: "Connect to every chain of the directory and verify its chain id",
		RunE: func(cmd *cobra.Command, args []string) error {
			lggr, err := newLogger(root.verbose)
			if err != nil {
				return err
			}
			defer func() { _ = lggr.Sync() }()
			ctx := sdk.WithLogger(cmd.Context(), lggr)

			if err = loadEnv(root.envFile); err != nil {
				return err
			}

			dir, err := loadDirectory(ctx, root)
			if err != nil {
				return err
			}

			chains := dir.Chains()
			connector := evm.NewConnector()
			defer connector.Close()

			inspectors, err := chainaccess.BuildInspectors(ctx, dir, connector, chains)
			for _, chain := range chains {
				if _, ok := inspectors[chain]; ok {
					fmt.Fprintf(cmd.OutOrStdout(), "%s: ok\n", chain)
				}
			}
			if err != nil {
				return fmt.Errorf("unreachable chains:\n%w", err)
			}

			return nil
		},
	}
}
