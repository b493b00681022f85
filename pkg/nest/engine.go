package nest

import (
	"fmt"

	"github.com/oakwood-commons/nestx/internal/cel"
	"github.com/oakwood-commons/nestx/pkg/loader"
)

// Resolver resolves a path against a root node with safe-navigation
// semantics: a failed step yields the default, never an error.
type Resolver interface {
	Resolve(root any, path any, def any) any
}

// Evaluator evaluates expressions against a root node; used for queries that
// plain paths cannot express (filters, comparisons).
type Evaluator interface {
	Evaluate(expr string, root any) (any, error)
}

// Engine bundles a Resolver and an Evaluator behind one facade so embedders
// can swap either implementation.
type Engine struct {
	Resolver  Resolver
	Evaluator Evaluator
}

// Option configures the Engine.
type Option func(*Engine)

// WithResolver sets a custom path resolver.
func WithResolver(r Resolver) Option {
	return func(e *Engine) {
		e.Resolver = r
	}
}

// WithEvaluator sets a custom expression evaluator.
func WithEvaluator(ev Evaluator) Option {
	return func(e *Engine) {
		e.Evaluator = ev
	}
}

// New creates an Engine with the built-in resolver and a CEL evaluator.
func New(opts ...Option) (*Engine, error) {
	engine := &Engine{}
	for _, opt := range opts {
		opt(engine)
	}
	if engine.Resolver == nil {
		engine.Resolver = defaultResolver{}
	}
	if engine.Evaluator == nil {
		eval, err := cel.NewEvaluator()
		if err != nil {
			return nil, err
		}
		engine.Evaluator = eval
	}
	return engine, nil
}

// Get resolves a path, returning nil on any resolution failure.
func (e *Engine) Get(root any, path any) any {
	return e.GetDefault(root, path, nil)
}

// GetDefault resolves a path with a caller-supplied fallback.
func (e *Engine) GetDefault(root any, path any, def any) any {
	if e == nil || e.Resolver == nil {
		return def
	}
	return e.Resolver.Resolve(root, path, def)
}

// Query evaluates a full expression against the root. The data is bound to
// the variable "_", e.g. "_.items.filter(x, x.available)".
func (e *Engine) Query(expr string, root any) (any, error) {
	if e == nil || e.Evaluator == nil {
		return nil, fmt.Errorf("evaluator is not configured")
	}
	return e.Evaluator.Evaluate(expr, root)
}

// LoadRoot parses input into a single root node; multi-doc inputs return a
// slice.
func LoadRoot(input string) (any, error) {
	return loader.LoadRoot(input)
}

// LoadFile reads a file and parses it into a single root node.
func LoadFile(path string) (any, error) {
	return loader.LoadFile(path)
}

// LoadObject accepts an already parsed object and converts it to the generic
// tree forms the utilities operate on.
func LoadObject(value any) (any, error) {
	return loader.LoadObject(value)
}

type defaultResolver struct{}

func (defaultResolver) Resolve(root any, path any, def any) any {
	return GetDefault(root, path, def)
}
