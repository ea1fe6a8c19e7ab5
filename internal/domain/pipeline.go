package domain

import (
	"context"
	"log/slog"

	"golang.org/x/sync/errgroup"

	m "mutavec.dev/pkg/mutavec/internal/model"
)

// Stream fans a payload list out across a bounded worker group, running one
// generation call per payload against the same original vector, and merges
// everything onto one output channel.
//
// Each generation call keeps its own dedup set, so identical transmitted
// states produced by different payloads are all emitted. Merge order across
// payloads is not deterministic; order within one payload follows the
// Generate contract. Both channels close when the work is done or ctx is
// cancelled; at most one error is reported.
func (e *engine) Stream(ctx context.Context, vector m.Vector, payloads []string, opts m.Options, threads int) (<-chan m.Vector, <-chan error) {
	out := make(chan m.Vector, normalizeBufferSize(threads))
	errCh := make(chan error, 1)

	// Materialize the lazily created immutables set before the workers start
	// reading the shared original concurrently.
	vector.Immutables()

	go func() {
		defer close(out)
		defer close(errCh)

		group, groupCtx := errgroup.WithContext(ctx)
		group.SetLimit(normalizeBufferSize(threads))

		for _, payload := range payloads {
			group.Go(func() error {
				return e.streamPayload(groupCtx, vector, payload, opts, out)
			})
		}

		if err := group.Wait(); err != nil {
			slog.Error("payload stream failed", "error", err)
			errCh <- err
		}
	}()

	return out, errCh
}

// streamPayload runs one generation call and forwards its emissions.
func (e *engine) streamPayload(ctx context.Context, vector m.Vector, payload string, opts m.Options, out chan<- m.Vector) error {
	ch, err := e.Generate(ctx, vector, payload, opts)
	if err != nil {
		return err
	}

	for candidate := range ch {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case out <- candidate:
		}
	}

	return nil
}

// normalizeBufferSize ensures channel buffers and worker limits are at least 1.
func normalizeBufferSize(threads int) int {
	if threads <= 0 {
		return 1
	}

	return threads
}
