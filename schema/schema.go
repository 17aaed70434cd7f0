// Package schema provides a hand-built, immutable implementation of the
// hoist.SchemaGraph contract.
//
// A Graph is assembled with the fluent Builder API and frozen by Build:
//
//	b := schema.New()
//	b.Type("Author").
//		ToMany("Books", "Book")
//	b.Type("Book").
//		ToMany("Reviews", "Review")
//	b.Type("Book").
//		ManyToMany("Tags", "Tag")
//	b.Type("Tag").
//		ManyToMany("Books", "Book").Ref("Tags")
//	g, err := b.Build()
//
// Ref declares the navigation as the inverse of an existing navigation on
// the target type; Build links both directions so either edge reports the
// other from Inverse(). After Build the graph is read-only and safe for
// concurrent resolution calls.
package schema

import (
	"github.com/hoistdb/hoist"
)

// Graph is an immutable schema graph. It implements hoist.SchemaGraph.
type Graph struct {
	types map[string]*Type
	order []*Type
}

// Lookup resolves a type name. It fails with a hoist.UnknownTypeError if
// the graph holds no type with that name.
func (g *Graph) Lookup(name string) (hoist.EntityType, error) {
	t, ok := g.types[name]
	if !ok {
		return nil, hoist.NewUnknownTypeError(name)
	}
	return t, nil
}

// Types returns all entity types in declaration order.
func (g *Graph) Types() []*Type {
	return g.order
}

// Type is an entity type in a built graph. It implements hoist.EntityType.
type Type struct {
	name string
	navs []hoist.Navigation
}

// Name returns the type name.
func (t *Type) Name() string { return t.name }

// Navigations returns the outgoing navigations: non-M2M navigations first,
// M2M navigations after, each group in declaration order. The returned
// slice is shared and must not be mutated.
func (t *Type) Navigations() []hoist.Navigation { return t.navs }

// Navigation is a directed relationship edge in a built graph. It
// implements hoist.Navigation.
type Navigation struct {
	name    string
	rel     hoist.Rel
	target  *Type
	inverse *Navigation
}

// Name returns the navigation name.
func (n *Navigation) Name() string { return n.name }

// Target returns the entity type the navigation points to.
func (n *Navigation) Target() hoist.EntityType { return n.target }

// Rel returns the navigation multiplicity.
func (n *Navigation) Rel() hoist.Rel { return n.rel }

// Inverse returns the declared inverse navigation, or nil.
func (n *Navigation) Inverse() hoist.Navigation {
	if n.inverse == nil {
		return nil
	}
	return n.inverse
}

var (
	_ hoist.SchemaGraph = (*Graph)(nil)
	_ hoist.EntityType  = (*Type)(nil)
	_ hoist.Navigation  = (*Navigation)(nil)
)
