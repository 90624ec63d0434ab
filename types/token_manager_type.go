package types //nolint:revive,nolintlint // allow pkg name 'types'

import "fmt"

// TokenManagerType names the custody implementation behind an interchain token manager.
//
// The on-chain manager reports its implementation as an integer code which is the index of the
// name in tokenManagerTypes. The ordering is a protocol constant shared with the deployed
// contracts and must never be reordered.
type TokenManagerType string

const (
	TokenManagerNativeInterchainToken TokenManagerType = "nativeInterchainToken"
	TokenManagerMintBurnFrom          TokenManagerType = "mintBurnFrom"
	TokenManagerLockUnlock            TokenManagerType = "lockUnlock"
	TokenManagerLockUnlockFee         TokenManagerType = "lockUnlockFee"
	TokenManagerMintBurn              TokenManagerType = "mintBurn"
	TokenManagerGateway               TokenManagerType = "gateway"
)

var tokenManagerTypes = [...]TokenManagerType{
	TokenManagerNativeInterchainToken,
	TokenManagerMintBurnFrom,
	TokenManagerLockUnlock,
	TokenManagerLockUnlockFee,
	TokenManagerMintBurn,
	TokenManagerGateway,
}

// TokenManagerTypes returns every known manager type ordered by implementation code.
func TokenManagerTypes() []TokenManagerType {
	out := make([]TokenManagerType, len(tokenManagerTypes))
	copy(out, tokenManagerTypes[:])

	return out
}

// Code returns the implementation code the on-chain manager reports for this type. The second
// return value is false if the name is not a known manager type.
func (t TokenManagerType) Code() (uint8, bool) {
	for i, name := range tokenManagerTypes {
		if name == t {
			return uint8(i), true //nolint:gosec // table length is 6
		}
	}

	return 0, false
}

// Valid reports whether t is one of the known manager types.
func (t TokenManagerType) Valid() bool {
	_, ok := t.Code()

	return ok
}

// TokenManagerTypeFromCode converts an on-chain implementation code back into its name.
func TokenManagerTypeFromCode(code uint64) (TokenManagerType, bool) {
	if code >= uint64(len(tokenManagerTypes)) {
		return "", false
	}

	return tokenManagerTypes[code], true
}

// DescribeTokenManagerCode renders an implementation code for messages, falling back to
// "unknown(<code>)" for codes outside the table.
func DescribeTokenManagerCode(code uint64) string {
	if name, ok := TokenManagerTypeFromCode(code); ok {
		return string(name)
	}

	return fmt.Sprintf("unknown(%d)", code)
}
