package tokenreg

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorMessages(t *testing.T) {
	t.Parallel()

	cause := errors.New("boom")

	tests := []struct {
		err      Finding
		kind     Kind
		expected string
	}{
		{NewTokenIDMismatchError("0x01", "0x02"), KindStructuralMismatch, "token 0x01: mismatch in tokenId: 0x01 vs 0x02"},
		{NewOriginChainNotFoundError("0x01", "ethereum"), KindStructuralMismatch, "token 0x01: origin chain ethereum not found in chains list"},
		{NewDuplicateOriginChainError("0x01", "ethereum", 2), KindStructuralMismatch, "token 0x01: origin chain ethereum appears 2 times in chains list"},
		{NewFormatError("0x01", "deployer address", "0xabc"), KindFormatError, `token 0x01: invalid deployer address: "0xabc"`},
		{NewOnChainMismatchError("0x01", "base", "token symbol", "TKN", "XYZ"), KindOnChainMismatch, "token 0x01: token symbol mismatch on chain base: expected TKN, got XYZ"},
		{NewMissingContractError("0x01", "base", "token manager", "0x02"), KindMissingContract, "token 0x01: token manager 0x02 does not exist on chain base"},
		{NewExternalMetadataMismatchError("0x01", "CoinGecko", "symbol", "TKN", "XYZ"), KindExternalMetadataMismatch, "token 0x01: CoinGecko symbol (XYZ) does not match TKN"},
		{NewExternalMetadataNotFoundError("0x01", "CoinGecko", ""), KindExternalMetadataNotFound, "token 0x01: CoinGecko id is missing"},
		{NewExternalMetadataNotFoundError("0x01", "CoinGecko", "tkn"), KindExternalMetadataNotFound, "token 0x01: CoinGecko id tkn not found"},
		{NewLookupFailureError("0x01", "", "fetch icon", cause), KindLookupFailure, "token 0x01: failed to fetch icon: boom"},
		{NewLookupFailureError("0x01", "base", "get code", cause), KindLookupFailure, "token 0x01: failed to get code on chain base: boom"},
		{NewConfigurationError("0x01", "base", nil), KindConfigurationError, "token 0x01: no RPC endpoint configured for chain base"},
		{NewConfigurationError("0x01", "base", cause), KindConfigurationError, "token 0x01: misconfigured endpoint for chain base: boom"},
	}

	for _, test := range tests {
		assert.Equal(t, test.expected, test.err.Error())
		assert.Equal(t, test.kind, test.err.Kind())
		assert.Equal(t, "0x01", test.err.Token())
	}
}

func TestErrorUnwrap(t *testing.T) {
	t.Parallel()

	cause := errors.New("boom")

	assert.ErrorIs(t, NewLookupFailureError("0x01", "base", "get code", cause), cause)
	assert.ErrorIs(t, NewConfigurationError("0x01", "base", cause), cause)
	assert.NoError(t, NewConfigurationError("0x01", "base", nil).Unwrap())
}
