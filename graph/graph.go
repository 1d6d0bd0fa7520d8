// Package graph wraps the RDF graph provider: parsing a serialized
// triples document into a queryable in-memory graph and matching triple
// patterns against it. The provider itself (parsing, term model) is
// rdf2go; this package only adds source handling and the node helpers
// the extraction pipeline needs.
package graph

import (
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/deiu/rdf2go"
)

// Format identifies a supported input serialization.
type Format string

const (
	// FormatTurtle is the Turtle serialization, the default.
	FormatTurtle Format = "turtle"

	// FormatJSONLD is the JSON-LD serialization.
	FormatJSONLD Format = "jsonld"
)

// ParseFormat validates a format hint. An empty hint means Turtle.
func ParseFormat(s string) (Format, error) {
	switch Format(strings.ToLower(s)) {
	case FormatTurtle, "":
		return FormatTurtle, nil
	case FormatJSONLD:
		return FormatJSONLD, nil
	default:
		return "", fmt.Errorf("unsupported format %q (supported: turtle, jsonld)", s)
	}
}

// MimeType returns the MIME type the underlying parser expects for the
// format.
func (f Format) MimeType() string {
	if f == FormatJSONLD {
		return "application/ld+json"
	}
	return "text/turtle"
}

// Graph is a queryable snapshot of one parsed input document. Loading
// a new snapshot builds a fresh Graph; snapshots are never mutated.
type Graph struct {
	g      *rdf2go.Graph
	source string
	base   string
}

// Load reads and parses an input document from a local path or an
// http(s) URL. A parse failure is fatal and propagates unwrapped beyond
// the source context; no partial graph is returned.
func Load(source string, format Format) (*Graph, error) {
	base := BaseURI(source)
	g := rdf2go.NewGraph(base)

	if isRemote(source) {
		body, err := fetch(source, format)
		if err != nil {
			return nil, err
		}
		defer body.Close()

		if err := g.Parse(body, format.MimeType()); err != nil {
			return nil, fmt.Errorf("parse %s: %w", source, err)
		}
		return &Graph{g: g, source: source, base: base}, nil
	}

	f, err := os.Open(source)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", source, err)
	}
	defer f.Close()

	if err := g.Parse(f, format.MimeType()); err != nil {
		return nil, fmt.Errorf("parse %s: %w", source, err)
	}
	return &Graph{g: g, source: source, base: base}, nil
}

// Parse parses an already-slurped document. base resolves relative IRIs
// and becomes the document URI for scoped extraction.
func Parse(r io.Reader, base string, format Format) (*Graph, error) {
	g := rdf2go.NewGraph(base)
	if err := g.Parse(r, format.MimeType()); err != nil {
		return nil, fmt.Errorf("parse: %w", err)
	}
	return &Graph{g: g, source: base, base: base}, nil
}

// Wrap adopts a pre-loaded provider graph, for callers that already
// hold parsed data.
func Wrap(g *rdf2go.Graph, source string) *Graph {
	return &Graph{g: g, source: source, base: BaseURI(source)}
}

// Source returns the path or URL the graph was loaded from.
func (g *Graph) Source() string { return g.source }

// Base returns the resolved document URI, usable as the subject of
// document-level queries.
func (g *Graph) Base() string { return g.base }

// Underlying exposes the provider graph.
func (g *Graph) Underlying() *rdf2go.Graph { return g.g }

// Len returns the number of triples in the graph.
func (g *Graph) Len() int { return g.g.Len() }

// All returns every triple matching the pattern. Nil terms are
// wildcards.
func (g *Graph) All(s, p, o rdf2go.Term) []*rdf2go.Triple {
	return g.g.All(s, p, o)
}

// One returns one triple matching the pattern, or nil.
func (g *Graph) One(s, p, o rdf2go.Term) *rdf2go.Triple {
	return g.g.One(s, p, o)
}

// Any reports whether at least one triple matches the pattern.
func (g *Graph) Any(s, p, o rdf2go.Term) bool {
	return g.g.One(s, p, o) != nil
}

// BaseURI derives the document URI for a source: URLs pass through,
// local paths become file URIs.
func BaseURI(source string) string {
	if isRemote(source) || strings.HasPrefix(source, "file://") {
		return source
	}
	abs, err := filepath.Abs(source)
	if err != nil {
		abs = source
	}
	return (&url.URL{Scheme: "file", Path: filepath.ToSlash(abs)}).String()
}

func isRemote(source string) bool {
	return strings.HasPrefix(source, "http://") || strings.HasPrefix(source, "https://")
}

// fetch retrieves a remote document. The body is parsed with the
// caller's format hint rather than the server's content type, so a
// generic content type on the response cannot override --format.
func fetch(source string, format Format) (io.ReadCloser, error) {
	req, err := http.NewRequest(http.MethodGet, source, nil)
	if err != nil {
		return nil, fmt.Errorf("request %s: %w", source, err)
	}
	req.Header.Set("Accept", format.MimeType())

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", source, err)
	}
	if resp.StatusCode != http.StatusOK {
		resp.Body.Close()
		return nil, fmt.Errorf("fetch %s: unexpected status %s", source, resp.Status)
	}
	return resp.Body, nil
}
