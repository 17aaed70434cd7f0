// Package hoist computes eager-fetch include paths over a relational entity
// graph. Given a schema of entity types connected by named navigations, it
// produces the complete, non-cyclic, depth-bounded set of dot-joined paths
// needed to fetch an entire connected subgraph starting from one root type.
//
// The package depends only on the SchemaGraph contract below; the
// github.com/hoistdb/hoist/schema package provides a hand-built
// implementation, and schema/load decodes one from a YAML document.
package hoist

// Rel is the multiplicity of a navigation.
type Rel int

// Relation types.
const (
	Unk Rel = iota // Unknown.
	O2O            // To one / has one.
	O2M            // To many / has many.
	M2M            // Many to many.
)

// String returns the relation name.
func (r Rel) String() string {
	s := "Unknown"
	switch r {
	case O2O:
		s = "O2O"
	case O2M:
		s = "O2M"
	case M2M:
		s = "M2M"
	}
	return s
}

// SchemaGraph is the read-only schema description the resolver traverses.
// Implementations must be stable for the duration of a resolution call;
// the resolver performs no locking of its own. A single graph may serve
// any number of concurrent resolution calls.
type SchemaGraph interface {
	// Lookup resolves a type name to its EntityType. It fails with an
	// UnknownTypeError if the graph holds no type with that name.
	Lookup(name string) (EntityType, error)
}

// EntityType is a node in the schema graph. Types are defined once, at
// graph construction time, and are immutable afterwards.
type EntityType interface {
	// Name returns the stable type identifier.
	Name() string

	// Navigations returns all outgoing navigations in a deterministic
	// order: non-M2M navigations first, M2M navigations after, each group
	// in declaration order. This ordering is part of the contract: it
	// determines the order of resolved include paths.
	Navigations() []Navigation
}

// Navigation is a directed, named relationship edge between two entity
// types.
type Navigation interface {
	// Name returns the navigation name, unique among the owning type's
	// outgoing navigations.
	Name() string

	// Target returns the entity type the navigation points to.
	Target() EntityType

	// Rel returns the navigation multiplicity.
	Rel() Rel

	// Inverse returns the navigation on the target type that represents
	// the same relationship traversed backward, or nil if the schema
	// declares no inverse. Inverses are always explicit; they are never
	// inferred from the graph structure.
	Inverse() Navigation
}
