package schema

import (
	"github.com/hoistdb/hoist"
)

// Builder assembles a Graph. It is not safe for concurrent use; the Graph
// it builds is.
type Builder struct {
	order []*TypeBuilder
	index map[string]*TypeBuilder
}

// New returns an empty schema builder.
func New() *Builder {
	return &Builder{index: make(map[string]*TypeBuilder)}
}

// Type declares an entity type, or returns the existing declaration if the
// name was seen before. Declaration order is preserved.
func (b *Builder) Type(name string) *TypeBuilder {
	if t, ok := b.index[name]; ok {
		return t
	}
	t := &TypeBuilder{name: name}
	b.index[name] = t
	b.order = append(b.order, t)
	return t
}

// TypeBuilder declares the outgoing navigations of one entity type.
type TypeBuilder struct {
	name string
	navs []*navDecl
}

// navDecl is a navigation declaration collected before Build.
type navDecl struct {
	name   string
	target string
	rel    hoist.Rel
	ref    string // inverse navigation name on the target type, "" if none
}

// ToOne declares a to-one navigation to the target type.
func (t *TypeBuilder) ToOne(name, target string) *NavBuilder {
	return t.add(name, target, hoist.O2O)
}

// ToMany declares a to-many navigation to the target type.
func (t *TypeBuilder) ToMany(name, target string) *NavBuilder {
	return t.add(name, target, hoist.O2M)
}

// ManyToMany declares a many-to-many navigation to the target type.
// M2M navigations sort after the regular ones in the built type's
// navigation order.
func (t *TypeBuilder) ManyToMany(name, target string) *NavBuilder {
	return t.add(name, target, hoist.M2M)
}

func (t *TypeBuilder) add(name, target string, rel hoist.Rel) *NavBuilder {
	d := &navDecl{name: name, target: target, rel: rel}
	t.navs = append(t.navs, d)
	return &NavBuilder{decl: d}
}

// NavBuilder configures a single navigation declaration.
type NavBuilder struct {
	decl *navDecl
}

// Ref declares this navigation as the inverse of the named navigation on
// the target type. Build fails if the reference cannot be linked.
func (n *NavBuilder) Ref(name string) *NavBuilder {
	n.decl.ref = name
	return n
}

// Build validates the declarations and freezes them into an immutable
// Graph. It fails with a hoist.SchemaError on duplicate navigation names,
// unknown target types, or inverse references that cannot be paired.
func (b *Builder) Build() (*Graph, error) {
	g := &Graph{types: make(map[string]*Type, len(b.order))}
	for _, tb := range b.order {
		t := &Type{name: tb.name}
		g.types[t.name] = t
		g.order = append(g.order, t)
	}
	// Materialize navigations: regular ones first, then M2M, keeping
	// declaration order within each group.
	navs := make(map[*Type]map[string]*Navigation, len(b.order))
	for _, tb := range b.order {
		t := g.types[tb.name]
		navs[t] = make(map[string]*Navigation, len(tb.navs))
		for _, group := range [2]bool{false, true} {
			for _, d := range tb.navs {
				if (d.rel == hoist.M2M) != group {
					continue
				}
				if _, ok := navs[t][d.name]; ok {
					return nil, hoist.NewSchemaError(t.name, d.name, "duplicate navigation name", nil)
				}
				target, ok := g.types[d.target]
				if !ok {
					return nil, hoist.NewSchemaError(t.name, d.name, "unknown target type "+d.target, nil)
				}
				nav := &Navigation{name: d.name, rel: d.rel, target: target}
				navs[t][d.name] = nav
				t.navs = append(t.navs, nav)
			}
		}
	}
	// Link declared inverses in both directions.
	for _, tb := range b.order {
		t := g.types[tb.name]
		for _, d := range tb.navs {
			if d.ref == "" {
				continue
			}
			nav := navs[t][d.name]
			ref, ok := navs[nav.target][d.ref]
			if !ok {
				return nil, hoist.NewSchemaError(t.name, d.name, "ref to unknown navigation "+d.ref+" on "+nav.target.name, nil)
			}
			if ref == nav {
				return nil, hoist.NewSchemaError(t.name, d.name, "navigation cannot be its own inverse", nil)
			}
			if ref.target != t {
				return nil, hoist.NewSchemaError(t.name, d.name, "ref navigation "+d.ref+" does not point back to "+t.name, nil)
			}
			if nav.inverse != nil && nav.inverse != ref {
				return nil, hoist.NewSchemaError(t.name, d.name, "navigation already paired with "+nav.inverse.name, nil)
			}
			if ref.inverse != nil && ref.inverse != nav {
				return nil, hoist.NewSchemaError(t.name, d.name, "ref navigation "+d.ref+" already paired with "+ref.inverse.name, nil)
			}
			nav.inverse = ref
			ref.inverse = nav
		}
	}
	return g, nil
}

// MustBuild is like Build but panics on error. Intended for statically
// known schemas in examples and tests.
func (b *Builder) MustBuild() *Graph {
	g, err := b.Build()
	if err != nil {
		panic(err)
	}
	return g
}
