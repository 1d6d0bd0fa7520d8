// Package changelog builds human-readable changelogs from RDF release
// histories. It ties the pipeline together: load a graph, detect its
// vocabulary, extract the project/release/change aggregate, and render
// it as text.
//
// The standalone entry point is Open:
//
//	cs, err := changelog.Open("Changes.ttl")
//	if err != nil { ... }
//	fmt.Print(cs.Render())
//
// By default Open behaves as a library call: project discovery is
// unscoped and unnamed projects fall back to their canonical node
// strings. The build-tool entry points in cmd/changelog run scoped to
// the input document with a supplied default name instead.
package changelog

import (
	"fmt"
	"os"

	"github.com/deiu/rdf2go"

	"github.com/c360studio/changelog/changeset"
	"github.com/c360studio/changelog/graph"
	"github.com/c360studio/changelog/render"
)

// Option configures Open.
type Option func(*settings)

type settings struct {
	format   graph.Format
	vocab    changeset.Vocabulary
	scope    changeset.Scope
	name     string
	sort     render.SortMode
	width    int
	preload  *rdf2go.Graph
}

// WithFormat sets the input serialization hint. Default is Turtle.
func WithFormat(f graph.Format) Option {
	return func(s *settings) { s.format = f }
}

// WithVocabulary overrides vocabulary autodetection.
func WithVocabulary(v changeset.Vocabulary) Option {
	return func(s *settings) { s.vocab = v }
}

// WithScope bounds project discovery. Default is Unscoped.
func WithScope(sc changeset.Scope) Option {
	return func(s *settings) { s.scope = sc }
}

// WithDefaultName sets the fallback display name for unnamed projects.
// Without it unnamed projects fall back to their canonical node string.
func WithDefaultName(name string) Option {
	return func(s *settings) { s.name = name }
}

// WithSort sets the release ordering mode.
func WithSort(m render.SortMode) Option {
	return func(s *settings) { s.sort = m }
}

// WithWidth sets the rendered output width in columns.
func WithWidth(w int) Option {
	return func(s *settings) { s.width = w }
}

// WithGraph uses pre-loaded data instead of reading the source. The
// source argument to Open then only names the document for scoping and
// titles.
func WithGraph(g *rdf2go.Graph) Option {
	return func(s *settings) { s.preload = g }
}

// Changeset is a loaded and extracted changelog, ready to render.
type Changeset struct {
	graph    *graph.Graph
	vocab    changeset.Vocabulary
	doc      *changeset.Document
	renderer *render.Renderer
}

// Open loads the source (a local path or http(s) URL), detects its
// vocabulary, and extracts the changelog aggregate. A parse failure is
// fatal; an empty graph is not.
func Open(source string, opts ...Option) (*Changeset, error) {
	s := settings{
		format: graph.FormatTurtle,
		vocab:  changeset.VocabularyAuto,
		scope:  changeset.Unscoped,
		sort:   render.SortSemver,
		width:  render.DefaultWidth,
	}
	for _, opt := range opts {
		opt(&s)
	}

	var (
		g   *graph.Graph
		err error
	)
	if s.preload != nil {
		g = graph.Wrap(s.preload, source)
	} else {
		g, err = graph.Load(source, s.format)
		if err != nil {
			return nil, err
		}
	}

	vocab := changeset.Detect(g, s.vocab)
	doc := changeset.Extract(g, vocab, g.Base(), changeset.Options{
		Scope:       s.scope,
		DefaultName: s.name,
	})

	return &Changeset{
		graph:    g,
		vocab:    vocab,
		doc:      doc,
		renderer: &render.Renderer{Width: s.width, Sort: s.sort},
	}, nil
}

// Source returns the path or URL the changeset was loaded from.
func (c *Changeset) Source() string { return c.graph.Source() }

// Graph returns the underlying graph snapshot.
func (c *Changeset) Graph() *graph.Graph { return c.graph }

// Vocabulary returns the detected (or overridden) vocabulary.
func (c *Changeset) Vocabulary() changeset.Vocabulary { return c.vocab }

// IsLegacy reports whether the source follows the legacy Changefile
// vocabulary.
func (c *Changeset) IsLegacy() bool { return c.vocab == changeset.VocabularyLegacy }

// IsCurrent reports whether the source follows the current DOAP Change
// Sets vocabulary.
func (c *Changeset) IsCurrent() bool { return c.vocab == changeset.VocabularyCurrent }

// Document returns the extracted aggregate.
func (c *Changeset) Document() *changeset.Document { return c.doc }

// Render returns the formatted changelog text.
func (c *Changeset) Render() string {
	return c.renderer.Render(c.doc)
}

// WriteFile renders the changelog and overwrites path with it. The
// text is rendered fully before the file is touched, so a rendering
// problem never truncates existing output.
func (c *Changeset) WriteFile(path string) error {
	text := c.Render()
	if err := os.WriteFile(path, []byte(text), 0644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
