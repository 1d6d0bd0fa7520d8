package graph

import (
	"strings"

	"github.com/deiu/rdf2go"
)

// Canon returns the canonical N-Triples serialization of a node. This
// is the stable identity key for grouping: the provider may return
// distinct in-memory objects for the same underlying value across
// separate query executions, so object identity is never used.
func Canon(t rdf2go.Term) string {
	if t == nil {
		return ""
	}
	return t.String()
}

// Text returns the raw textual value of a node: the literal value, the
// resource IRI, or the blank node identifier. Node kinds form a closed
// set; anything else is a provider bug and yields the empty string.
func Text(t rdf2go.Term) string {
	switch n := t.(type) {
	case *rdf2go.Literal:
		return n.Value
	case *rdf2go.Resource:
		return n.URI
	case *rdf2go.BlankNode:
		return n.ID
	default:
		return ""
	}
}

// IsResource reports whether the node is an IRI resource.
func IsResource(t rdf2go.Term) bool {
	_, ok := t.(*rdf2go.Resource)
	return ok
}

// LocalName returns the final fragment or path segment of an IRI, the
// part rendered as a change-type sigil.
func LocalName(uri string) string {
	if i := strings.LastIndexAny(uri, "#/"); i >= 0 {
		return uri[i+1:]
	}
	return uri
}
