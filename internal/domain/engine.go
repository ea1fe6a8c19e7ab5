package domain

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"mutavec.dev/pkg/mutavec/internal/adapter"
	m "mutavec.dev/pkg/mutavec/internal/model"
)

// ErrNoFormats is returned when a generation call is configured with an
// empty format list.
var ErrNoFormats = errors.New("empty format list")

// Engine defines the interface for mutation generation.
type Engine interface {
	// Generate streams mutations of vector, one payload injection per
	// eligible parameter and format combination. The channel closes when
	// generation is done or ctx is cancelled; cancelling ctx is how a
	// consumer stops early. Configuration errors are returned before any
	// work starts. An empty parameter mapping yields a closed, empty channel.
	Generate(ctx context.Context, vector m.Vector, payload string, opts m.Options) (<-chan m.Vector, error)

	// Collect is the eager form of Generate, materializing the stream in
	// emission order. Check ctx.Err() afterwards to detect a cancelled run.
	Collect(ctx context.Context, vector m.Vector, payload string, opts m.Options) ([]m.Vector, error)

	// Stream runs one generation call per payload across a bounded worker
	// group and merges the results onto a single channel. Deduplication
	// stays per payload; mutations of different payloads never collapse.
	Stream(ctx context.Context, vector m.Vector, payloads []string, opts m.Options, threads int) (<-chan m.Vector, <-chan error)
}

// engine orchestrates expansion across parameters, formats, and method
// variants. It never mutates the original vector; every emitted item is an
// independently owned clone.
type engine struct {
	adapter.DefaultFiller
	adapter.AuditConfig

	observer Observer
}

// NewEngine creates an Engine with the given collaborators. A nil observer
// defaults to NopObserver.
func NewEngine(filler adapter.DefaultFiller, policy adapter.AuditConfig, observer Observer) Engine {
	if observer == nil {
		observer = NopObserver{}
	}

	return &engine{
		DefaultFiller: filler,
		AuditConfig:   policy,
		observer:      observer,
	}
}

func (e *engine) Generate(ctx context.Context, vector m.Vector, payload string, opts m.Options) (<-chan m.Vector, error) {
	if err := e.validateConfig(opts); err != nil {
		return nil, err
	}

	ch := make(chan m.Vector)

	if vector.Params().Len() == 0 {
		close(ch)
		return ch, nil
	}

	e.observer.FormattingSummary(opts)

	respectMethod := e.resolveRespectMethod(opts)

	go func() {
		defer close(ch)

		gen := &generation{
			engine:  e,
			ctx:     ctx,
			out:     ch,
			vector:  vector,
			payload: payload,
			opts:    opts,
			respect: respectMethod,
			filled:  e.Fill(vector.Params()),
			seen:    newDedupSet(),
		}

		gen.run()
	}()

	return ch, nil
}

// validateConfig checks collaborators and options before any cloning.
func (e *engine) validateConfig(opts m.Options) error {
	if e.DefaultFiller == nil || e.AuditConfig == nil {
		return fmt.Errorf("missing collaborators")
	}

	if len(opts.Formats) == 0 {
		return ErrNoFormats
	}

	return nil
}

// resolveRespectMethod returns the explicit option value if provided, else
// the negation of the process-wide both-methods policy.
func (e *engine) resolveRespectMethod(opts m.Options) bool {
	if opts.RespectMethod != nil {
		return *opts.RespectMethod
	}

	return !e.FuzzBothMethods()
}

func (e *engine) Collect(ctx context.Context, vector m.Vector, payload string, opts m.Options) ([]m.Vector, error) {
	ch, err := e.Generate(ctx, vector, payload, opts)
	if err != nil {
		return nil, err
	}

	var out []m.Vector
	for candidate := range ch {
		out = append(out, candidate)
	}

	return out, nil
}

// generation holds the state of one Generate call.
type generation struct {
	engine  *engine
	ctx     context.Context
	out     chan<- m.Vector
	vector  m.Vector
	payload string
	opts    m.Options
	respect bool
	filled  *m.Params
	seen    *dedupSet
}

// run walks parameters in insertion order, formats in the given order, and
// emits (plain, switched) pairs, with the parameter flip appended last. The
// ordering is the output contract.
func (g *generation) run() {
	for _, name := range g.vector.Params().Keys() {
		if g.vector.Mutated() && g.vector.Params().Value(name) == g.vector.Seed() {
			// A stale mutation target from a previous pass; injecting here
			// would reproduce it.
			continue
		}

		if g.vector.Immutables().Contains(name) {
			continue
		}

		for _, format := range g.opts.Formats {
			if !g.expand(name, format) {
				return
			}
		}
	}

	if g.opts.ParamFlip {
		g.flip()
	}
}

// expand builds and emits the candidate for one (parameter, format) pair,
// plus its method-switched counterpart. Returns false when the consumer is
// gone.
func (g *generation) expand(name string, format m.Format) bool {
	injected := BuildInjection(g.payload, g.filled.Value(name), format)

	candidate := g.vector.Clone()

	merged := g.filled.Clone()
	merged.Set(name, injected)

	// Guarded mutation application: a concrete kind rejecting a value drops
	// only this candidate.
	if err := candidate.SetParams(merged); err != nil {
		slog.Debug("candidate rejected by vector", "param", name, "format", format.String(), "error", err)
		return true
	}

	candidate.MarkMutation(name, g.payload, format)

	return g.offer(candidate)
}

// flip emits the parameter-introducing mutation: a new parameter named after
// the payload, holding the vector's prior seed value.
func (g *generation) flip() {
	candidate := g.vector.Clone()

	if err := candidate.SetParam(g.payload, g.vector.Seed()); err != nil {
		slog.Debug("flip candidate rejected by vector", "error", err)
		return
	}

	candidate.MarkFlip(g.payload)

	g.offer(candidate)
}

// offer deduplicates and emits a candidate and, when the run covers both
// methods, its switched counterpart. The dedup set records every candidate,
// emitted or not.
func (g *generation) offer(candidate m.Vector) bool {
	if !g.seen.contains(candidate) {
		if !g.emit(candidate) {
			return false
		}
	}

	g.seen.add(candidate)

	if g.respect {
		return true
	}

	switched := SwitchMethod(candidate)

	if !g.seen.contains(switched) {
		if !g.emit(switched) {
			return false
		}
	}

	g.seen.add(switched)

	return true
}

func (g *generation) emit(candidate m.Vector) bool {
	select {
	case <-g.ctx.Done():
		return false
	case g.out <- candidate:
	}

	g.engine.observer.Candidate(candidate)

	return true
}
