package metric

import (
	"context"
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/arloliu/avroscan/decoder"
)

// DecodeBatch decodes payloads in parallel, bounded by GOMAXPROCS.
//
// Records are returned in input order. The first failure cancels the records not yet
// started and is returned wrapped with the index of the failing payload.
func DecodeBatch(ctx context.Context, payloads [][]byte, opts ...decoder.Option) ([]Record, error) {
	records := make([]Record, len(payloads))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))

	for i, payload := range payloads {
		if gctx.Err() != nil {
			break
		}

		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}

			r, err := Decode(payload, opts...)
			if err != nil {
				return fmt.Errorf("record %d: %w", i, err)
			}
			records[i] = r

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	return records, nil
}
