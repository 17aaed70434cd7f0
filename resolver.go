package hoist

import (
	"context"
	"sort"
	"sync"

	"golang.org/x/sync/errgroup"
)

// DefaultMaxDepth is the depth limit used when no WithMaxDepth option is
// given.
const DefaultMaxDepth = 3

// Option configures a resolution call.
type Option func(*config) error

type config struct {
	maxDepth int
}

// WithMaxDepth sets the maximum number of hops a resolved path may have.
// Resolution fails with ErrInvalidDepth if n is not positive, and with a
// DepthExceededError if the schema requires a longer path than n.
func WithMaxDepth(n int) Option {
	return func(c *config) error {
		if n < 1 {
			return ErrInvalidDepth
		}
		c.maxDepth = n
		return nil
	}
}

// ResolvePaths computes the ordered list of include paths needed to
// eagerly fetch the entire subgraph reachable from the root type.
//
// Traversal is depth-first and pre-order: a path is appended before the
// navigations of its target are inspected, and navigations are walked in
// the order EntityType.Navigations defines. Three guards shape the walk:
//
//   - Branch-local cycle suppression: a type already on the current
//     root-to-here branch is not expanded again. The hop into it is still
//     emitted, so a genuine cycle contributes exactly one path. Types
//     reached independently on sibling branches are expanded normally, so
//     diamond-shaped schemas yield both routes.
//   - Back-pointer suppression: a navigation declared as the inverse of
//     the navigation just traversed is skipped entirely.
//   - Depth ceiling: a path that would exceed the configured limit fails
//     the whole call with a DepthExceededError naming that path. No
//     partial result is returned.
//
// The call is a pure function of (graph, root, options): it holds no state
// across calls, and any number of calls may run concurrently over the same
// graph.
func ResolvePaths(g SchemaGraph, root string, opts ...Option) ([]string, error) {
	cfg := config{maxDepth: DefaultMaxDepth}
	for _, opt := range opts {
		if err := opt(&cfg); err != nil {
			return nil, err
		}
	}
	typ, err := g.Lookup(root)
	if err != nil {
		return nil, err
	}
	r := &resolver{
		maxDepth: cfg.maxDepth,
		visited:  make(map[string]struct{}),
	}
	if err := r.visit(typ, "", 0, nil, ""); err != nil {
		return nil, err
	}
	return r.paths, nil
}

// resolver holds the per-call traversal state. It is created fresh for
// every ResolvePaths call and never shared.
type resolver struct {
	maxDepth int
	visited  map[string]struct{} // types on the current branch
	paths    []string
}

// visit expands typ, appending one path per reachable navigation. in is
// the navigation used to reach typ, or nil at the root; from names the
// type that declares in.
func (r *resolver) visit(typ EntityType, path string, depth int, in Navigation, from string) error {
	name := typ.Name()
	if _, ok := r.visited[name]; ok {
		// typ is an ancestor on this branch. The hop into it was already
		// recorded by the caller; do not expand further.
		return nil
	}
	r.visited[name] = struct{}{}
	defer delete(r.visited, name)

	for _, nav := range typ.Navigations() {
		if in != nil && isInverse(nav, in, from) {
			continue
		}
		next := nav.Name()
		if path != "" {
			next = path + "." + nav.Name()
		}
		if depth+1 > r.maxDepth {
			return NewDepthExceededError(next, r.maxDepth)
		}
		r.paths = append(r.paths, next)
		if err := r.visit(nav.Target(), next, depth+1, nav, name); err != nil {
			return err
		}
	}
	return nil
}

// isInverse reports whether nav is declared as the inverse of in, where
// in arrives from the type named from and nav is declared on in's target.
// The check is purely declaration-based; no structural symmetry is
// inferred. Either side of the pair may carry the declaration.
func isInverse(nav, in Navigation, from string) bool {
	// in.Inverse() is declared on in's target, the type that owns nav.
	if inv := in.Inverse(); inv != nil && sameNav(inv, nav) {
		return true
	}
	if inv := nav.Inverse(); inv != nil {
		if inv == in {
			return true
		}
		// inv is declared on nav's target, in on the type the traversal
		// came from. The name/target fallback is only unambiguous between
		// navigations of one owner, so require those types to coincide.
		if nav.Target().Name() == from && sameNav(inv, in) {
			return true
		}
	}
	return false
}

// sameNav reports whether a and b denote the same navigation. Interface
// equality covers pointer-backed implementations; the name/target pair is
// the fallback for value-backed ones. Callers must ensure both operands
// are owned by the same type, where navigation names are unique, or the
// fallback could collide.
func sameNav(a, b Navigation) bool {
	if a == b {
		return true
	}
	return a.Name() == b.Name() && a.Target().Name() == b.Target().Name()
}

// ResolveMany resolves include paths for several root types concurrently
// over the same schema graph. It returns a map keyed by root type name.
// The first failing root cancels the remaining resolutions and its error
// is returned. Roots are deduplicated and the per-root results are as
// deterministic as single-root calls.
func ResolveMany(ctx context.Context, g SchemaGraph, roots []string, opts ...Option) (map[string][]string, error) {
	uniq := make([]string, 0, len(roots))
	seen := make(map[string]struct{}, len(roots))
	for _, root := range roots {
		if _, ok := seen[root]; ok {
			continue
		}
		seen[root] = struct{}{}
		uniq = append(uniq, root)
	}
	sort.Strings(uniq)

	var (
		mu      sync.Mutex
		results = make(map[string][]string, len(uniq))
	)
	eg, ctx := errgroup.WithContext(ctx)
	for _, root := range uniq {
		eg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			paths, err := ResolvePaths(g, root, opts...)
			if err != nil {
				return err
			}
			mu.Lock()
			results[root] = paths
			mu.Unlock()
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
