package sql

import (
	"fmt"
	"sort"
	"strings"

	"github.com/go-openapi/inflect"

	"github.com/hoistdb/hoist"
)

// Selector builds an eager-fetch query plan for a root entity type. The
// include paths attached with With (or resolved with WithAll) become one
// follow-up query each, in attach order, mirroring how the resolver hands
// paths to the query layer one at a time.
type Selector struct {
	graph   hoist.SchemaGraph
	root    string
	paths   []string
	all     bool
	allOpts []hoist.Option
}

// Select starts an eager-fetch plan for the given root type over the
// given schema graph.
func Select(g hoist.SchemaGraph, root string) *Selector {
	return &Selector{graph: g, root: root}
}

// With attaches include paths to the plan. Paths are validated against
// the schema graph when the plan is built.
func (s *Selector) With(paths ...string) *Selector {
	s.paths = append(s.paths, paths...)
	return s
}

// WithAll resolves the complete include-path set for the root type at
// Plan time and attaches every resolved path, in resolution order.
func (s *Selector) WithAll(opts ...hoist.Option) *Selector {
	s.all = true
	s.allOpts = opts
	return s
}

// Query is one statement of an eager-fetch plan.
type Query struct {
	// Path is the include path the statement fetches, or "" for the root
	// statement.
	Path string
	// SQL is the statement text.
	SQL string
}

// Plan is an ordered eager-fetch plan: the root statement first, then one
// statement per include path.
type Plan struct {
	Root    string
	Table   string
	Queries []Query
}

// Plan validates the attached paths and builds the statement plan.
// It fails with the resolver's errors when WithAll resolution fails, and
// with a descriptive error when an explicit path names an unknown
// navigation.
func (s *Selector) Plan() (*Plan, error) {
	root, err := s.graph.Lookup(s.root)
	if err != nil {
		return nil, err
	}
	paths := s.paths
	if s.all {
		resolved, err := hoist.ResolvePaths(s.graph, s.root, s.allOpts...)
		if err != nil {
			return nil, err
		}
		paths = append(paths, resolved...)
	}
	p := &Plan{
		Root:  root.Name(),
		Table: tableOf(root),
	}
	p.Queries = append(p.Queries, Query{SQL: fmt.Sprintf("SELECT t0.* FROM %s AS t0", p.Table)})
	for _, path := range paths {
		q, err := pathQuery(root, path)
		if err != nil {
			return nil, err
		}
		p.Queries = append(p.Queries, Query{Path: path, SQL: q})
	}
	return p, nil
}

// pathQuery renders the JOIN-chain statement fetching the entities at the
// end of one include path. Tables are always aliased t0..tn since a path
// may legally revisit a table (one hop into a cycle).
func pathQuery(root hoist.EntityType, path string) (string, error) {
	var (
		b      strings.Builder
		typ    = root
		hops   = strings.Split(path, ".")
		joined = make([]string, 0, len(hops))
	)
	for i, hop := range hops {
		nav := navOf(typ, hop)
		if nav == nil {
			return "", fmt.Errorf("dialect/sql: unknown navigation %q on type %q (path %q)", hop, typ.Name(), path)
		}
		target := nav.Target()
		parent, child := alias(i), alias(i+1)
		switch nav.Rel() {
		case hoist.O2M:
			joined = append(joined, fmt.Sprintf("JOIN %s AS %s ON %s.%s = %s.id",
				tableOf(target), child, child, foreignKey(typ), parent))
		case hoist.O2O:
			joined = append(joined, fmt.Sprintf("JOIN %s AS %s ON %s.id = %s.%s",
				tableOf(target), child, child, parent, columnOf(nav)))
		case hoist.M2M:
			jt, ja := joinTable(typ, target), "j"+alias(i)[1:]
			joined = append(joined,
				fmt.Sprintf("JOIN %s AS %s ON %s.%s = %s.id", jt, ja, ja, foreignKey(typ), parent),
				fmt.Sprintf("JOIN %s AS %s ON %s.id = %s.%s", tableOf(target), child, child, ja, foreignKey(target)))
		default:
			return "", fmt.Errorf("dialect/sql: navigation %q on type %q has unknown multiplicity", hop, typ.Name())
		}
		typ = target
	}
	fmt.Fprintf(&b, "SELECT %s.* FROM %s AS t0 ", alias(len(hops)), tableOf(root))
	b.WriteString(strings.Join(joined, " "))
	return b.String(), nil
}

// navOf returns the named navigation of typ, or nil.
func navOf(typ hoist.EntityType, name string) hoist.Navigation {
	for _, nav := range typ.Navigations() {
		if nav.Name() == name {
			return nav
		}
	}
	return nil
}

func alias(i int) string {
	return fmt.Sprintf("t%d", i)
}

// tableOf derives the table name of an entity type: underscored plural,
// e.g. "OrderItem" -> "order_items".
func tableOf(t hoist.EntityType) string {
	return inflect.Pluralize(inflect.Underscore(t.Name()))
}

// foreignKey derives the foreign-key column referencing an entity type,
// e.g. "Author" -> "author_id".
func foreignKey(t hoist.EntityType) string {
	return inflect.Underscore(t.Name()) + "_id"
}

// columnOf derives the owning-side foreign-key column of a to-one
// navigation, e.g. navigation "LatestOrder" -> "latest_order_id".
func columnOf(nav hoist.Navigation) string {
	return inflect.Underscore(nav.Name()) + "_id"
}

// joinTable derives the relation table of an M2M navigation. The pair is
// sorted so both directions of the relationship agree on the name, e.g.
// Book/Tag -> "book_tags".
func joinTable(a, b hoist.EntityType) string {
	names := []string{inflect.Underscore(a.Name()), inflect.Underscore(b.Name())}
	sort.Strings(names)
	return names[0] + "_" + inflect.Pluralize(names[1])
}
