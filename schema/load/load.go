// Package load decodes schema graphs from YAML documents.
//
// A document lists entity types and their outgoing navigations:
//
//	types:
//	  - name: Author
//	    navigations:
//	      - {name: Books, target: Book, rel: to-many}
//	  - name: Book
//	    navigations:
//	      - {name: Reviews, target: Review, rel: to-many}
//	      - {name: Tags, target: Tag, rel: many-to-many}
//	  - name: Review
//	  - name: Tag
//	    navigations:
//	      - {name: Books, target: Book, rel: many-to-many, ref: Tags}
//
// Decoded documents go through the same validation as graphs assembled
// with the schema.Builder API.
package load

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/hoistdb/hoist"
	"github.com/hoistdb/hoist/schema"
)

// Document is the top-level YAML structure.
type Document struct {
	Types []Type `yaml:"types"`
}

// Type is one entity type declaration.
type Type struct {
	Name        string       `yaml:"name"`
	Navigations []Navigation `yaml:"navigations,omitempty"`
}

// Navigation is one outgoing navigation declaration.
type Navigation struct {
	Name   string `yaml:"name"`
	Target string `yaml:"target"`
	Rel    string `yaml:"rel"`
	Ref    string `yaml:"ref,omitempty"`
}

// File reads and decodes the schema document at path.
func File(path string) (*schema.Graph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("hoist/load: open schema document: %w", err)
	}
	defer f.Close()
	return Decode(f)
}

// Decode decodes a schema document from r and builds the graph.
func Decode(r io.Reader) (*schema.Graph, error) {
	var doc Document
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("hoist/load: decode schema document: %w", err)
	}
	return Graph(&doc)
}

// Graph builds a schema graph from a decoded document.
func Graph(doc *Document) (*schema.Graph, error) {
	b := schema.New()
	for _, t := range doc.Types {
		if t.Name == "" {
			return nil, hoist.NewSchemaError("", "", "type with empty name", nil)
		}
		tb := b.Type(t.Name)
		for _, n := range t.Navigations {
			if n.Name == "" {
				return nil, hoist.NewSchemaError(t.Name, "", "navigation with empty name", nil)
			}
			rel, err := parseRel(n.Rel)
			if err != nil {
				return nil, hoist.NewSchemaError(t.Name, n.Name, err.Error(), nil)
			}
			var nb *schema.NavBuilder
			switch rel {
			case hoist.O2O:
				nb = tb.ToOne(n.Name, n.Target)
			case hoist.O2M:
				nb = tb.ToMany(n.Name, n.Target)
			case hoist.M2M:
				nb = tb.ManyToMany(n.Name, n.Target)
			}
			if n.Ref != "" {
				nb.Ref(n.Ref)
			}
		}
	}
	return b.Build()
}

// parseRel maps the document's rel spelling to a hoist.Rel. Both the long
// forms (to-one, to-many, many-to-many) and the short ones (o2o, o2m, m2m)
// are accepted.
func parseRel(s string) (hoist.Rel, error) {
	switch s {
	case "to-one", "o2o":
		return hoist.O2O, nil
	case "to-many", "o2m", "":
		return hoist.O2M, nil
	case "many-to-many", "m2m":
		return hoist.M2M, nil
	default:
		return hoist.Unk, fmt.Errorf("unknown rel %q; use to-one, to-many, or many-to-many", s)
	}
}
