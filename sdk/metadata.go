package sdk

import (
	"context"
	"errors"

	"github.com/smartcontractkit/tokenreg/types"
)

// ErrExternalIDNotFound is returned by a MetadataFetcher when the external id does not resolve.
var ErrExternalIDNotFound = errors.New("external id not found")

// MetadataFetcher fetches third-party coin metadata by its external id.
type MetadataFetcher interface {
	FetchCoin(ctx context.Context, externalID string) (types.CoinMetadata, error)
}

// IconChecker verifies that a hosted icon can be fetched and is served as SVG.
type IconChecker interface {
	CheckSVG(ctx context.Context, url string) error
}
