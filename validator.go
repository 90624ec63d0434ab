package tokenreg

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/smartcontractkit/tokenreg/internal/metrics"
	"github.com/smartcontractkit/tokenreg/internal/utils/safecast"
	"github.com/smartcontractkit/tokenreg/sdk"
	sdkerrors "github.com/smartcontractkit/tokenreg/sdk/errors"
	"github.com/smartcontractkit/tokenreg/sdk/icon"
	"github.com/smartcontractkit/tokenreg/types"
)

const (
	// SourceCoinGecko names the CoinGecko metadata source in findings.
	SourceCoinGecko = "CoinGecko"
	// SourceIcon names the hosted SVG icon in findings.
	SourceIcon = "icon"

	roleToken        = "token address"
	roleTokenManager = "token manager"

	tagTokenID = "required,len=66,startswith=0x,hexadecimal"
	tagSalt    = "required,len=66,startswith=0x,hexadecimal"
	tagAddress = "required,eth_addr"
)

// Lookup operation names, used in findings and as metric labels.
const (
	OpConnect          = "connect"
	OpGetCode          = "get code"
	OpReadToken        = "read token metadata"
	OpReadManager      = "read token manager"
	OpRecomputeTokenID = "recompute interchain token id"
	OpFetchCoin        = "fetch CoinGecko metadata"
	OpFetchIcon        = "fetch icon"
)

// Validator checks token records against on-chain state and third-party metadata.
type Validator struct {
	chains    sdk.ChainDirectory
	connector sdk.Connector
	metadata  sdk.MetadataFetcher
	icons     sdk.IconChecker
	recorder  *metrics.Recorder

	requireCoinGeckoID bool
	concurrency        int

	validate *validator.Validate
}

// Option configures a Validator.
type Option func(*Validator)

// WithRequireCoinGeckoID makes a record without a coinGeckoId a finding instead of skipping the
// metadata check.
func WithRequireCoinGeckoID(require bool) Option {
	return func(v *Validator) {
		v.requireCoinGeckoID = require
	}
}

// WithIconChecker enables verification of iconUrls.svg.
func WithIconChecker(icons sdk.IconChecker) Option {
	return func(v *Validator) {
		v.icons = icons
	}
}

// WithMetrics records run metrics on the recorder.
func WithMetrics(recorder *metrics.Recorder) Option {
	return func(v *Validator) {
		v.recorder = recorder
	}
}

// WithConcurrency sets how many records are validated at once. Values below 2 validate records
// sequentially.
func WithConcurrency(n int) Option {
	return func(v *Validator) {
		v.concurrency = n
	}
}

// NewValidator creates a new Validator. metadata may be nil, in which case records with a
// coinGeckoId are reported as lookup failures.
func NewValidator(
	chains sdk.ChainDirectory,
	connector sdk.Connector,
	metadata sdk.MetadataFetcher,
	opts ...Option,
) *Validator {
	v := &Validator{
		chains:      chains,
		connector:   connector,
		metadata:    metadata,
		concurrency: 1,
		validate:    validator.New(),
	}
	for _, opt := range opts {
		opt(v)
	}

	return v
}

// ValidateRecord runs every check against a single record and returns all findings, in checklist
// order. key is the registry key the record is stored under. A nil result means the record is
// valid.
func (v *Validator) ValidateRecord(ctx context.Context, key string, record types.TokenRecord) []error {
	lggr := sdk.LoggerFrom(ctx)
	lggr.Infof("Validating token: %s", key)

	rv := &recordValidation{
		Validator: v,
		key:       key,
		record:    record,
		inspectors: make(map[types.AxelarChainID]sdk.Inspector, len(record.Chains)),
	}

	rv.checkIdentity()
	rv.checkCoinGecko(ctx)
	rv.checkIcon(ctx)
	rv.checkFormats()
	rv.checkChains(ctx)
	if rv.checkOrigin() {
		rv.checkInterchainTokenID(ctx)
	}

	if v.recorder != nil {
		v.recorder.RecordToken(len(rv.findings) == 0)
		for _, f := range rv.findings {
			var finding Finding
			if errors.As(f, &finding) {
				v.recorder.RecordFinding(string(finding.Kind()))
			}
		}
	}

	return rv.findings
}

// recordValidation is the state of validating one record.
type recordValidation struct {
	*Validator

	key    string
	record types.TokenRecord

	// inspectors holds the connected inspector of every chain entry that could be reached.
	inspectors map[types.AxelarChainID]sdk.Inspector

	validDeployer bool
	validSalt     bool

	findings []error
}

func (rv *recordValidation) fail(err error) {
	rv.findings = append(rv.findings, err)
}

func (rv *recordValidation) isOrigin(entry types.ChainEntry) bool {
	return entry.AxelarChainID == rv.record.OriginAxelarChainID
}

// checkIdentity verifies the registry key is a well formed token id equal to the record's own.
func (rv *recordValidation) checkIdentity() {
	if !strings.EqualFold(rv.key, rv.record.TokenID) {
		rv.fail(NewTokenIDMismatchError(rv.key, rv.record.TokenID))
	}
	if rv.validate.Var(rv.key, tagTokenID) != nil {
		rv.fail(NewFormatError(rv.key, "tokenId", rv.key))
	}
}

// checkCoinGecko verifies the CoinGecko id resolves and reports the record's pretty symbol.
func (rv *recordValidation) checkCoinGecko(ctx context.Context) {
	id := rv.record.CoinGeckoID
	if id == "" {
		if rv.requireCoinGeckoID {
			rv.fail(NewExternalMetadataNotFoundError(rv.key, SourceCoinGecko, ""))
		}

		return
	}

	if rv.metadata == nil {
		rv.fail(NewLookupFailureError(rv.key, "", OpFetchCoin, errors.New("no metadata source configured")))
		return
	}

	coin, err := observe(rv.Validator, OpFetchCoin, func() (types.CoinMetadata, error) {
		return rv.metadata.FetchCoin(ctx, id)
	})
	switch {
	case errors.Is(err, sdk.ErrExternalIDNotFound):
		rv.fail(NewExternalMetadataNotFoundError(rv.key, SourceCoinGecko, id))
	case err != nil:
		rv.fail(NewLookupFailureError(rv.key, "", OpFetchCoin, err))
	case !strings.EqualFold(coin.Symbol, rv.record.PrettySymbol):
		rv.fail(NewExternalMetadataMismatchError(rv.key, SourceCoinGecko, "symbol", rv.record.PrettySymbol, coin.Symbol))
	}
}

// checkIcon verifies the hosted SVG icon when icon checking is enabled.
func (rv *recordValidation) checkIcon(ctx context.Context) {
	if rv.icons == nil || rv.record.IconURLs == nil || rv.record.IconURLs.SVG == "" {
		return
	}

	url := rv.record.IconURLs.SVG
	_, err := observe(rv.Validator, OpFetchIcon, func() (struct{}, error) {
		return struct{}{}, rv.icons.CheckSVG(ctx, url)
	})
	if err == nil {
		return
	}

	var ctErr *icon.ContentTypeError
	if errors.As(err, &ctErr) {
		rv.fail(NewExternalMetadataMismatchError(rv.key, SourceIcon, "content type of "+url, icon.SVGContentType, ctErr.ContentType))
		return
	}
	rv.fail(NewLookupFailureError(rv.key, "", OpFetchIcon, err))
}

// checkFormats verifies the syntax of the deployer, deploy salt and decimals.
func (rv *recordValidation) checkFormats() {
	rv.validDeployer = rv.validate.Var(rv.record.Deployer, tagAddress) == nil
	if !rv.validDeployer {
		rv.fail(NewFormatError(rv.key, "deployer address", rv.record.Deployer))
	}

	rv.validSalt = rv.validate.Var(rv.record.DeploySalt, tagSalt) == nil
	if !rv.validSalt {
		rv.fail(NewFormatError(rv.key, "deploy salt", rv.record.DeploySalt))
	}

	if _, err := safecast.IntToUint8(rv.record.Decimals); err != nil {
		rv.fail(NewFormatError(rv.key, "decimals", err.Error()))
	}
}

// checkChains validates every chain entry in order.
func (rv *recordValidation) checkChains(ctx context.Context) {
	lggr := sdk.LoggerFrom(ctx)

	for _, entry := range rv.record.Chains {
		lggr.Infof("Validating chain: %s", entry.AxelarChainID)

		tokenOK := rv.checkAddress(entry, roleToken, entry.TokenAddress)
		managerOK := rv.checkAddress(entry, roleTokenManager, entry.TokenManager)
		typeOK := entry.TokenManagerType.Valid()
		if !typeOK {
			rv.fail(NewFormatError(rv.key, "token manager type on chain "+string(entry.AxelarChainID),
				string(entry.TokenManagerType)))
		}

		inspector, ok := rv.connect(ctx, entry.AxelarChainID)
		if !ok {
			continue
		}

		if tokenOK && rv.checkCode(ctx, inspector, entry, roleToken, entry.TokenAddress) {
			rv.checkTokenMetadata(ctx, inspector, entry)
		}
		if managerOK && rv.checkCode(ctx, inspector, entry, roleTokenManager, entry.TokenManager) {
			rv.checkTokenManager(ctx, inspector, entry, typeOK)
		}
	}
}

// connect resolves the chain in the directory and opens an inspector for it. Failures are
// recorded as findings and abort the on-chain checks of the entry.
func (rv *recordValidation) connect(ctx context.Context, chain types.AxelarChainID) (sdk.Inspector, bool) {
	if inspector, ok := rv.inspectors[chain]; ok {
		return inspector, true
	}

	endpoint, ok := rv.chains.Endpoint(chain)
	if !ok {
		rv.fail(NewConfigurationError(rv.key, chain, nil))
		return nil, false
	}

	inspector, err := observe(rv.Validator, OpConnect, func() (sdk.Inspector, error) {
		return rv.connector.Connect(ctx, endpoint)
	})
	if err != nil {
		var chainIDErr *sdkerrors.InvalidChainIDError
		if errors.As(err, &chainIDErr) {
			rv.fail(NewConfigurationError(rv.key, chain, err))
		} else {
			rv.fail(NewLookupFailureError(rv.key, chain, OpConnect, err))
		}

		return nil, false
	}

	rv.inspectors[chain] = inspector

	return inspector, true
}

func (rv *recordValidation) checkAddress(entry types.ChainEntry, role, address string) bool {
	if rv.validate.Var(address, tagAddress) != nil {
		rv.fail(NewFormatError(rv.key, role+" on chain "+string(entry.AxelarChainID), address))
		return false
	}

	return true
}

// checkCode reports whether address holds code. A missing contract or failed lookup is recorded
// and the contract's state checks are skipped.
func (rv *recordValidation) checkCode(
	ctx context.Context, inspector sdk.Inspector, entry types.ChainEntry, role, address string,
) bool {
	hasCode, err := observe(rv.Validator, OpGetCode, func() (bool, error) {
		return inspector.HasCode(ctx, address)
	})
	if err != nil {
		rv.fail(NewLookupFailureError(rv.key, entry.AxelarChainID, OpGetCode, err))
		return false
	}
	if !hasCode {
		rv.fail(NewMissingContractError(rv.key, entry.AxelarChainID, role, address))
		return false
	}

	return true
}

// checkTokenMetadata compares the token contract's name and symbol with the entry, and for the
// origin chain its symbol and decimals with the record.
func (rv *recordValidation) checkTokenMetadata(ctx context.Context, inspector sdk.Inspector, entry types.ChainEntry) {
	chain := entry.AxelarChainID

	meta, err := observe(rv.Validator, OpReadToken, func() (types.TokenMetadata, error) {
		return inspector.GetTokenMetadata(ctx, entry.TokenAddress)
	})
	if err != nil {
		rv.fail(NewLookupFailureError(rv.key, chain, OpReadToken, err))
		return
	}

	if !strings.EqualFold(meta.Name, entry.Name) {
		rv.fail(NewOnChainMismatchError(rv.key, chain, "token name", entry.Name, meta.Name))
	}
	if !strings.EqualFold(meta.Symbol, entry.Symbol) {
		rv.fail(NewOnChainMismatchError(rv.key, chain, "token symbol", entry.Symbol, meta.Symbol))
	}

	if !rv.isOrigin(entry) {
		return
	}
	if !strings.EqualFold(meta.Symbol, rv.record.PrettySymbol) {
		rv.fail(NewOnChainMismatchError(rv.key, chain, "pretty symbol", rv.record.PrettySymbol, meta.Symbol))
	}
	if int(meta.Decimals) != rv.record.Decimals {
		rv.fail(NewOnChainMismatchError(rv.key, chain, "token decimals",
			strconv.Itoa(rv.record.Decimals), strconv.Itoa(int(meta.Decimals))))
	}
}

// checkTokenManager verifies the manager manages the entry's token. The implementation type is
// only compared when the declared type name is known.
func (rv *recordValidation) checkTokenManager(
	ctx context.Context, inspector sdk.Inspector, entry types.ChainEntry, compareType bool,
) {
	chain := entry.AxelarChainID

	info, err := observe(rv.Validator, OpReadManager, func() (types.ManagerInfo, error) {
		return inspector.GetManagerInfo(ctx, entry.TokenManager)
	})
	if err != nil {
		rv.fail(NewLookupFailureError(rv.key, chain, OpReadManager, err))
		return
	}

	if !strings.EqualFold(info.TokenAddress, entry.TokenAddress) {
		rv.fail(NewOnChainMismatchError(rv.key, chain, "managed token address", entry.TokenAddress, info.TokenAddress))
	}

	if !compareType {
		return
	}
	code, _ := entry.TokenManagerType.Code()
	if uint64(code) != info.ImplementationType {
		rv.fail(NewOnChainMismatchError(rv.key, chain, "token manager implementation type",
			string(entry.TokenManagerType), types.DescribeTokenManagerCode(info.ImplementationType)))
	}
}

// checkOrigin verifies the origin chain is listed exactly once. It reports whether an origin entry
// exists.
func (rv *recordValidation) checkOrigin() bool {
	count := 0
	for _, entry := range rv.record.Chains {
		if rv.isOrigin(entry) {
			count++
		}
	}

	switch count {
	case 0:
		rv.fail(NewOriginChainNotFoundError(rv.key, rv.record.OriginAxelarChainID))
		return false
	case 1:
		return true
	default:
		rv.fail(NewDuplicateOriginChainError(rv.key, rv.record.OriginAxelarChainID, count))
		return true
	}
}

// checkInterchainTokenID recomputes the token id on the origin chain. It is skipped when the
// inputs are malformed or the origin chain could not be reached, since both were already
// reported.
func (rv *recordValidation) checkInterchainTokenID(ctx context.Context) {
	if !rv.validDeployer || !rv.validSalt {
		return
	}

	origin := rv.record.OriginAxelarChainID
	inspector, ok := rv.inspectors[origin]
	if !ok {
		return
	}

	calculated, err := observe(rv.Validator, OpRecomputeTokenID, func() (string, error) {
		return inspector.InterchainTokenID(ctx, rv.record.Deployer, rv.record.DeploySalt)
	})
	if err != nil {
		rv.fail(NewLookupFailureError(rv.key, origin, OpRecomputeTokenID, err))
		return
	}

	if !strings.EqualFold(calculated, rv.key) {
		rv.fail(NewOnChainMismatchError(rv.key, origin, "interchain token id (deployer "+rv.record.Deployer+
			", deploy salt "+rv.record.DeploySalt+")", rv.key, calculated))
	}
}

// observe runs a lookup and records its duration when metrics are enabled.
func observe[T any](v *Validator, op string, fn func() (T, error)) (T, error) {
	start := time.Now()
	out, err := fn()
	if v.recorder != nil {
		v.recorder.ObserveLookup(op, time.Since(start), err)
	}

	return out, err
}
