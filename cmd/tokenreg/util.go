package tokenreg

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/smartcontractkit/tokenreg/chainaccess"
	"github.com/smartcontractkit/tokenreg/sdk"
)

const (
	defaultTimeout = 30 * time.Second

	// mainnetAlias selects the Axelar mainnet config for --axelar-config.
	mainnetAlias = "mainnet"

	coinGeckoAPIKeyEnv = "COINGECKO_API_KEY"
)

// newLogger builds the console logger of a run, tagged with a fresh run id.
func newLogger(verbose bool) (*zap.SugaredLogger, error) {
	cfg := zap.NewProductionConfig()
	cfg.Encoding = "console"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	cfg.DisableStacktrace = true
	if verbose {
		cfg.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	}

	logger, err := cfg.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to build logger: %w", err)
	}

	return logger.Sugar().With("run_id", uuid.NewString()), nil
}

// loadEnv loads the dotenv file if it exists. Variables already set in the environment win.
func loadEnv(path string) error {
	if path == "" {
		return nil
	}
	if err := godotenv.Load(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to load %s: %w", path, err)
	}

	return nil
}

// loadDirectory builds the chain directory from exactly one of --chains or --axelar-config and
// applies RPC_URL_<CHAIN> overrides.
func loadDirectory(ctx context.Context, opts *rootOptions) (*chainaccess.Directory, error) {
	lggr := sdk.LoggerFrom(ctx)

	var (
		dir *chainaccess.Directory
		err error
	)
	switch {
	case opts.chainsPath != "" && opts.axelarURL != "":
		return nil, errors.New("--chains and --axelar-config are mutually exclusive")
	case opts.chainsPath != "":
		dir, err = loadDirectoryFile(opts.chainsPath)
	case opts.axelarURL != "":
		url := opts.axelarURL
		if url == mainnetAlias {
			url = chainaccess.AxelarMainnetConfigURL
		}
		lggr.Infof("Fetching chain configs from %s", url)
		dir, err = chainaccess.FetchAxelarDirectory(ctx, resty.New().SetTimeout(opts.rpcTimeout), url)
	default:
		return nil, errors.New("one of --chains or --axelar-config is required")
	}
	if err != nil {
		return nil, err
	}

	for _, chain := range dir.ApplyEnv(os.Getenv) {
		lggr.Debugf("Using %s for chain %s", chainaccess.EnvKey(chain), chain)
	}

	return dir, nil
}

func loadDirectoryFile(path string) (*chainaccess.Directory, error) {
	f, err := os.Open(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("failed to open chain directory: %w", err)
	}
	defer f.Close()

	return chainaccess.LoadDirectory(f)
}
