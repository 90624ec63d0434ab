package tokenreg

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/smartcontractkit/tokenreg"
	"github.com/smartcontractkit/tokenreg/internal/metrics"
	"github.com/smartcontractkit/tokenreg/sdk"
	"github.com/smartcontractkit/tokenreg/sdk/coingecko"
	"github.com/smartcontractkit/tokenreg/sdk/evm"
	"github.com/smartcontractkit/tokenreg/sdk/icon"
)

func buildValidateCmd(root *rootOptions) *cobra.Command {
	var (
		inputPath          string
		reportPath         string
		metricsPath        string
		concurrency        int
		requireCoinGeckoID bool
		checkIcons         bool
	)

	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Validate every token record of a registry file",
		Long: `Validate every token record of a registry file. All findings are collected and written to
the report file, and the command exits non-zero if there are any.`,
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

			registry, err := tokenreg.LoadRegistry(inputPath)
			if err != nil {
				return err
			}

			dir, err := loadDirectory(ctx, root)
			if err != nil {
				return err
			}

			recorder := metrics.NewRecorder()
			opts := []tokenreg.Option{
				tokenreg.WithConcurrency(concurrency),
				tokenreg.WithRequireCoinGeckoID(requireCoinGeckoID),
				tokenreg.WithMetrics(recorder),
			}
			if checkIcons {
				opts = append(opts, tokenreg.WithIconChecker(icon.NewChecker(root.rpcTimeout)))
			}

			apiKey := os.Getenv(coinGeckoAPIKeyEnv)
			if apiKey == "" {
				lggr.Warnf("%s is not set, using the public CoinGecko rate limit", coinGeckoAPIKeyEnv)
			}
			connector := evm.NewConnector()
			defer connector.Close()

			validator := tokenreg.NewValidator(
				dir,
				connector,
				coingecko.NewClient(apiKey, coingecko.WithTimeout(root.rpcTimeout)),
				opts...,
			)

			lggr.Infof("Validating %d tokens", registry.Len())
			findings := validator.ValidateAll(ctx, registry)

			if metricsPath != "" {
				if err = recorder.WriteTextfile(metricsPath); err != nil {
					lggr.Warnf("Failed to write metrics: %v", err)
				}
			}

			if len(findings) == 0 {
				fmt.Fprintf(cmd.OutOrStdout(), "All %d tokens validated successfully\n", registry.Len())
				return nil
			}

			if err = tokenreg.WriteReportFile(reportPath, findings); err != nil {
				return err
			}
			_ = tokenreg.WriteReport(cmd.ErrOrStderr(), findings)
			_ = tokenreg.WriteSummary(cmd.ErrOrStderr(), tokenreg.Summarize(findings))

			return fmt.Errorf("validation failed with %d errors, see %s", len(findings), reportPath)
		},
	}

	cmd.Flags().StringVarP(&inputPath, "input", "i", "new_tokens.json", "Path to the token registry file to validate")
	cmd.Flags().StringVar(&reportPath, "report", tokenreg.DefaultReportFile, "Path the findings are written to")
	cmd.Flags().StringVar(&metricsPath, "metrics-textfile", "", "Write run metrics in prometheus text format to this path")
	cmd.Flags().IntVar(&concurrency, "concurrency", 1, "Number of tokens validated at once")
	cmd.Flags().BoolVar(&requireCoinGeckoID, "require-coingecko-id", true, "Report tokens without a coinGeckoId")
	cmd.Flags().BoolVar(&checkIcons, "check-icons", false, "Verify iconUrls.svg is served as SVG")

	return cmd
}
