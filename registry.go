package tokenreg

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/go-playground/validator/v10"

	"github.com/smartcontractkit/tokenreg/types"
)

// NewRegistry decodes a token registry document and validates its shape. Shape errors are fatal
// to the whole run; everything else about a record is reported as a finding by the Validator.
func NewRegistry(reader io.Reader) (*types.Registry, error) {
	var out types.Registry
	if err := json.NewDecoder(reader).Decode(&out); err != nil {
		return nil, fmt.Errorf("failed to decode token registry: %w", err)
	}

	if err := ValidateRegistryShape(&out); err != nil {
		return nil, err
	}

	return &out, nil
}

// LoadRegistry reads a token registry document from path.
func LoadRegistry(path string) (*types.Registry, error) {
	f, err := os.Open(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("failed to open token registry: %w", err)
	}
	defer f.Close()

	return NewRegistry(f)
}

// ValidateRegistryShape runs the tag-based validation of every record.
func ValidateRegistryShape(registry *types.Registry) error {
	validate := validator.New()
	for _, key := range registry.Keys() {
		record, _ := registry.Get(key)
		if err := validate.Struct(record); err != nil {
			return fmt.Errorf("malformed record %s: %w", key, err)
		}
	}

	return nil
}
