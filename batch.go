package tokenreg

import (
	"context"
	"errors"

	"golang.org/x/sync/errgroup"

	"github.com/smartcontractkit/tokenreg/sdk"
	"github.com/smartcontractkit/tokenreg/types"
)

// ValidateAll validates every record of the registry and returns the concatenation of their
// findings in registry key order. It never stops early. When the validator runs concurrently the
// result is identical to a sequential run.
func (v *Validator) ValidateAll(ctx context.Context, registry *types.Registry) []error {
	keys := registry.Keys()
	results := make([][]error, len(keys))

	if v.concurrency < 2 {
		for i, key := range keys {
			record, _ := registry.Get(key)
			results[i] = v.ValidateRecord(ctx, key, record)
		}

		return flatten(results)
	}

	// Each record writes only its own slot.
	var g errgroup.Group
	g.SetLimit(v.concurrency)
	for i, key := range keys {
		record, _ := registry.Get(key)
		g.Go(func() error {
			results[i] = v.ValidateRecord(ctx, key, record)
			return nil
		})
	}
	_ = g.Wait()

	sdk.LoggerFrom(ctx).Debugf("Validated %d records with concurrency %d", len(keys), v.concurrency)

	return flatten(results)
}

func flatten(results [][]error) []error {
	var out []error
	for _, r := range results {
		out = append(out, r...)
	}

	return out
}

// Summarize counts findings by kind. Errors that are not findings are not counted.
func Summarize(findings []error) map[Kind]int {
	summary := make(map[Kind]int)
	for _, err := range findings {
		var f Finding
		if errors.As(err, &f) {
			summary[f.Kind()]++
		}
	}

	return summary
}
