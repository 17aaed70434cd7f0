// Package gen generates Go helpers from a schema graph: per-type
// navigation name constants and precomputed include-path sets, so callers
// can attach eager-fetch paths without spelling strings by hand.
package gen

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"github.com/dave/jennifer/jen"
	"github.com/go-openapi/inflect"
	"golang.org/x/sync/errgroup"

	"github.com/hoistdb/hoist"
	"github.com/hoistdb/hoist/schema"
)

// header is added at the top of every generated file.
const header = "Code generated by hoist gen. DO NOT EDIT."

// Generator writes one Go file per entity type. Files are generated in
// parallel; include-path sets are resolved at generation time, so a
// schema too deep for the configured limit fails generation with the
// resolver's DepthExceededError.
type Generator struct {
	graph    *schema.Graph
	outDir   string
	pkg      string
	workers  int
	maxDepth int
}

// NewGenerator creates a generator writing to outDir. The output package
// name defaults to the directory base name.
func NewGenerator(g *schema.Graph, outDir string) *Generator {
	return &Generator{
		graph:    g,
		outDir:   outDir,
		pkg:      filepath.Base(outDir),
		workers:  runtime.GOMAXPROCS(0),
		maxDepth: hoist.DefaultMaxDepth,
	}
}

// WithPackage sets the output package name.
func (g *Generator) WithPackage(pkg string) *Generator {
	if pkg != "" {
		g.pkg = pkg
	}
	return g
}

// WithWorkers sets the number of parallel workers.
func (g *Generator) WithWorkers(n int) *Generator {
	if n > 0 {
		g.workers = n
	}
	return g
}

// WithMaxDepth sets the depth limit used when resolving each type's
// include-path set.
func (g *Generator) WithMaxDepth(n int) *Generator {
	if n > 0 {
		g.maxDepth = n
	}
	return g
}

// Generate writes one file per entity type in the graph.
func (g *Generator) Generate(ctx context.Context) error {
	if err := os.MkdirAll(g.outDir, 0o755); err != nil {
		return fmt.Errorf("gen: create output directory: %w", err)
	}
	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(g.workers)
	for _, typ := range g.graph.Types() {
		eg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			return g.generateType(typ)
		})
	}
	return eg.Wait()
}

// generateType writes the helper file of a single entity type.
func (g *Generator) generateType(typ *schema.Type) error {
	paths, err := hoist.ResolvePaths(g.graph, typ.Name(), hoist.WithMaxDepth(g.maxDepth))
	if err != nil {
		return fmt.Errorf("gen: resolve includes for %s: %w", typ.Name(), err)
	}

	f := jen.NewFile(g.pkg)
	f.HeaderComment(header)

	name := inflect.Camelize(typ.Name())
	if navs := typ.Navigations(); len(navs) > 0 {
		f.Commentf("Navigation names of the %s type.", typ.Name())
		f.Const().DefsFunc(func(grp *jen.Group) {
			for _, nav := range navs {
				grp.Id(name + "Nav" + inflect.Camelize(nav.Name())).Op("=").Lit(nav.Name())
			}
		})
	}

	lits := make([]jen.Code, len(paths))
	for i, p := range paths {
		lits[i] = jen.Lit(p)
	}
	f.Commentf("%sIncludes returns the complete eager-fetch include-path set for %s roots, depth-bounded at %d.", name, typ.Name(), g.maxDepth)
	f.Func().Id(name + "Includes").Params().Index().String().Block(
		jen.Return(jen.Index().String().Values(lits...)),
	)

	var buf bytes.Buffer
	if err := f.Render(&buf); err != nil {
		return fmt.Errorf("gen: render %s: %w", typ.Name(), err)
	}
	out := filepath.Join(g.outDir, inflect.Underscore(typ.Name())+"_includes.go")
	if err := os.WriteFile(out, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("gen: write %s: %w", out, err)
	}
	return nil
}
