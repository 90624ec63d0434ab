// Package safecast implements functions to safely narrow numeric values read from records and
// contracts without silently wrapping around.
package safecast

import (
	"errors"
	"fmt"
	"math"
	"math/big"

	"github.com/spf13/cast"
)

// IntToUint8 safely converts an int to uint8 using cast and checks for overflow
func IntToUint8(value int) (uint8, error) {
	if value < 0 || value > math.MaxUint8 {
		return 0, fmt.Errorf("value %d exceeds uint8 range", value)
	}

	return cast.ToUint8E(value)
}

// BigIntToUint64 converts a contract uint256 to uint64, failing if it does not fit.
func BigIntToUint64(value *big.Int) (uint64, error) {
	if value == nil {
		return 0, errors.New("value is nil")
	}
	if !value.IsUint64() {
		return 0, fmt.Errorf("value %s exceeds uint64 range", value)
	}

	return cast.ToUint64E(value.Uint64())
}
