package tokenreg

import (
	"fmt"

	"github.com/smartcontractkit/tokenreg/types"
)

// Kind classifies a validation finding.
type Kind string

const (
	// KindStructuralMismatch covers identity mismatches and a missing origin chain.
	KindStructuralMismatch Kind = "StructuralMismatch"
	// KindFormatError covers malformed addresses, identifiers and enum values in a record.
	KindFormatError Kind = "FormatError"
	// KindOnChainMismatch covers deployed contract state that disagrees with the record.
	KindOnChainMismatch Kind = "OnChainMismatch"
	// KindMissingContract is reported when an address holds no code on its chain.
	KindMissingContract Kind = "MissingContract"
	// KindExternalMetadataMismatch covers third-party metadata that disagrees with the record.
	KindExternalMetadataMismatch Kind = "ExternalMetadataMismatch"
	// KindExternalMetadataNotFound is reported when an external id is missing or unresolved.
	KindExternalMetadataNotFound Kind = "ExternalMetadataNotFound"
	// KindLookupFailure means a remote call failed, so the check could not be decided.
	KindLookupFailure Kind = "LookupFailure"
	// KindConfigurationError is reported when a chain cannot be reached as configured.
	KindConfigurationError Kind = "ConfigurationError"
)

// Finding is a single validation failure of a token record.
type Finding interface {
	error
	Kind() Kind
	Token() string
}

var (
	_ Finding = (*StructuralMismatchError)(nil)
	_ Finding = (*FormatError)(nil)
	_ Finding = (*OnChainMismatchError)(nil)
	_ Finding = (*MissingContractError)(nil)
	_ Finding = (*ExternalMetadataMismatchError)(nil)
	_ Finding = (*ExternalMetadataNotFoundError)(nil)
	_ Finding = (*LookupFailureError)(nil)
	_ Finding = (*ConfigurationError)(nil)
)

// StructuralMismatchError is returned when a record is inconsistent with itself.
type StructuralMismatchError struct {
	TokenID string
	Detail  string
}

func (e *StructuralMismatchError) Error() string {
	return fmt.Sprintf("token %s: %s", e.TokenID, e.Detail)
}

func (e *StructuralMismatchError) Kind() Kind { return KindStructuralMismatch }
func (e *StructuralMismatchError) Token() string { return e.TokenID }

// NewTokenIDMismatchError creates a StructuralMismatchError for a registry key that differs from
// the record's own tokenId.
func NewTokenIDMismatchError(key, recordID string) *StructuralMismatchError {
	return &StructuralMismatchError{
		TokenID: key,
		Detail:  fmt.Sprintf("mismatch in tokenId: %s vs %s", key, recordID),
	}
}

// NewOriginChainNotFoundError creates a StructuralMismatchError for an origin chain that is not
// part of the chain list.
func NewOriginChainNotFoundError(tokenID string, origin types.AxelarChainID) *StructuralMismatchError {
	return &StructuralMismatchError{
		TokenID: tokenID,
		Detail:  fmt.Sprintf("origin chain %s not found in chains list", origin),
	}
}

// NewDuplicateOriginChainError creates a StructuralMismatchError for an origin chain listed more
// than once.
func NewDuplicateOriginChainError(tokenID string, origin types.AxelarChainID, count int) *StructuralMismatchError {
	return &StructuralMismatchError{
		TokenID: tokenID,
		Detail:  fmt.Sprintf("origin chain %s appears %d times in chains list", origin, count),
	}
}

// FormatError is returned when a record field is syntactically invalid.
type FormatError struct {
	TokenID string
	Field   string
	Value   string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("token %s: invalid %s: %q", e.TokenID, e.Field, e.Value)
}

func (e *FormatError) Kind() Kind { return KindFormatError }
func (e *FormatError) Token() string { return e.TokenID }

// NewFormatError creates a new FormatError.
func NewFormatError(tokenID, field, value string) *FormatError {
	return &FormatError{TokenID: tokenID, Field: field, Value: value}
}

// OnChainMismatchError is returned when deployed contract state differs from the record.
type OnChainMismatchError struct {
	TokenID  string
	Chain    types.AxelarChainID
	Field    string
	Expected string
	Got      string
}

func (e *OnChainMismatchError) Error() string {
	return fmt.Sprintf("token %s: %s mismatch on chain %s: expected %s, got %s",
		e.TokenID, e.Field, e.Chain, e.Expected, e.Got)
}

func (e *OnChainMismatchError) Kind() Kind { return KindOnChainMismatch }
func (e *OnChainMismatchError) Token() string { return e.TokenID }

// NewOnChainMismatchError creates a new OnChainMismatchError.
func NewOnChainMismatchError(tokenID string, chain types.AxelarChainID, field, expected, got string) *OnChainMismatchError {
	return &OnChainMismatchError{TokenID: tokenID, Chain: chain, Field: field, Expected: expected, Got: got}
}

// MissingContractError is returned when an address holds no contract code.
type MissingContractError struct {
	TokenID string
	Chain   types.AxelarChainID
	Role    string
	Address string
}

func (e *MissingContractError) Error() string {
	return fmt.Sprintf("token %s: %s %s does not exist on chain %s", e.TokenID, e.Role, e.Address, e.Chain)
}

func (e *MissingContractError) Kind() Kind { return KindMissingContract }
func (e *MissingContractError) Token() string { return e.TokenID }

// NewMissingContractError creates a new MissingContractError.
func NewMissingContractError(tokenID string, chain types.AxelarChainID, role, address string) *MissingContractError {
	return &MissingContractError{TokenID: tokenID, Chain: chain, Role: role, Address: address}
}

// ExternalMetadataMismatchError is returned when third-party metadata disagrees with the record.
type ExternalMetadataMismatchError struct {
	TokenID  string
	Source   string
	Field    string
	Expected string
	Got      string
}

func (e *ExternalMetadataMismatchError) Error() string {
	return fmt.Sprintf("token %s: %s %s (%s) does not match %s", e.TokenID, e.Source, e.Field, e.Got, e.Expected)
}

func (e *ExternalMetadataMismatchError) Kind() Kind { return KindExternalMetadataMismatch }
func (e *ExternalMetadataMismatchError) Token() string { return e.TokenID }

// NewExternalMetadataMismatchError creates a new ExternalMetadataMismatchError.
func NewExternalMetadataMismatchError(tokenID, source, field, expected, got string) *ExternalMetadataMismatchError {
	return &ExternalMetadataMismatchError{TokenID: tokenID, Source: source, Field: field, Expected: expected, Got: got}
}

// ExternalMetadataNotFoundError is returned when an external id is missing from the record or
// does not resolve.
type ExternalMetadataNotFoundError struct {
	TokenID    string
	Source     string
	ExternalID string
}

func (e *ExternalMetadataNotFoundError) Error() string {
	if e.ExternalID == "" {
		return fmt.Sprintf("token %s: %s id is missing", e.TokenID, e.Source)
	}

	return fmt.Sprintf("token %s: %s id %s not found", e.TokenID, e.Source, e.ExternalID)
}

func (e *ExternalMetadataNotFoundError) Kind() Kind { return KindExternalMetadataNotFound }
func (e *ExternalMetadataNotFoundError) Token() string { return e.TokenID }

// NewExternalMetadataNotFoundError creates a new ExternalMetadataNotFoundError.
func NewExternalMetadataNotFoundError(tokenID, source, externalID string) *ExternalMetadataNotFoundError {
	return &ExternalMetadataNotFoundError{TokenID: tokenID, Source: source, ExternalID: externalID}
}

// LookupFailureError is returned when a remote lookup failed, leaving the check undecided.
type LookupFailureError struct {
	TokenID   string
	Chain     types.AxelarChainID
	Operation string
	Err       error
}

func (e *LookupFailureError) Error() string {
	if e.Chain == "" {
		return fmt.Sprintf("token %s: failed to %s: %v", e.TokenID, e.Operation, e.Err)
	}

	return fmt.Sprintf("token %s: failed to %s on chain %s: %v", e.TokenID, e.Operation, e.Chain, e.Err)
}

func (e *LookupFailureError) Unwrap() error { return e.Err }
func (e *LookupFailureError) Kind() Kind { return KindLookupFailure }
func (e *LookupFailureError) Token() string { return e.TokenID }

// NewLookupFailureError creates a new LookupFailureError.
func NewLookupFailureError(tokenID string, chain types.AxelarChainID, operation string, err error) *LookupFailureError {
	return &LookupFailureError{TokenID: tokenID, Chain: chain, Operation: operation, Err: err}
}

// ConfigurationError is returned when a chain has no usable endpoint. It aborts the on-chain
// checks of the affected chain entry only.
type ConfigurationError struct {
	TokenID string
	Chain   types.AxelarChainID
	Err     error
}

func (e *ConfigurationError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("token %s: no RPC endpoint configured for chain %s", e.TokenID, e.Chain)
	}

	return fmt.Sprintf("token %s: misconfigured endpoint for chain %s: %v", e.TokenID, e.Chain, e.Err)
}

func (e *ConfigurationError) Unwrap() error { return e.Err }
func (e *ConfigurationError) Kind() Kind { return KindConfigurationError }
func (e *ConfigurationError) Token() string { return e.TokenID }

// NewConfigurationError creates a new ConfigurationError. err may be nil when the chain is simply
// absent from the directory.
func NewConfigurationError(tokenID string, chain types.AxelarChainID, err error) *ConfigurationError {
	return &ConfigurationError{TokenID: tokenID, Chain: chain, Err: err}
}
