package changeset

import (
	"sort"
	"unicode/utf8"

	"github.com/deiu/rdf2go"

	"github.com/c360studio/changelog/graph"
	"github.com/c360studio/changelog/vocabulary/doap"
)

// Scope selects how project discovery is bounded under the current
// vocabulary. The build-tool entry point scopes discovery to projects
// the input document explicitly links; the standalone library call
// takes every project in the graph. The two behaviors are deliberate
// and must stay distinct.
type Scope string

const (
	// ScopedToDocument discovers only projects linked from the input
	// document via a subject or references relation.
	ScopedToDocument Scope = "document"

	// Unscoped discovers every project in the graph.
	Unscoped Scope = "all"
)

// Options configures one extraction pass.
type Options struct {
	// Scope bounds project discovery. Zero value is Unscoped.
	Scope Scope

	// DefaultName is the fallback display name for projects that assert
	// no name at all. Empty means fall back to the project's canonical
	// node string, the standalone-library behavior.
	DefaultName string
}

// Extract builds the changelog aggregate from a graph under the given
// vocabulary. docURI is the document's own URI, used for the title
// lookup and for scoped discovery. An empty or matching-nothing graph
// yields a document with zero projects and the fallback title; it is
// not an error.
func Extract(g *graph.Graph, vocab Vocabulary, docURI string, opts Options) *Document {
	e := &extractor{
		g:      g,
		vocab:  vocab,
		docURI: docURI,
		opts:   opts,
		nodes:  make(map[string]rdf2go.Term),
	}

	doc := NewDocument()
	e.extractProjects(doc)
	for _, key := range doc.ProjectKeys() {
		p := doc.Projects[key]
		if vocab == VocabularyLegacy {
			e.extractLegacyReleases(p)
		} else {
			e.extractCurrentReleases(p)
		}
	}
	e.finalize(doc)
	return doc
}

type extractor struct {
	g      *graph.Graph
	vocab  Vocabulary
	docURI string
	opts   Options

	// nodes maps canonical project keys back to graph terms for the
	// per-project release queries.
	nodes map[string]rdf2go.Term
}

// extractProjects is the first query pass: project discovery plus the
// optional joins for name, creation date, homepages, bug trackers, and
// maintainer chains.
func (e *extractor) extractProjects(doc *Document) {
	typePred := rdf2go.NewResource(doap.RdfType)
	projectClass := rdf2go.NewResource(doap.ClassProject)

	var roots []rdf2go.Term
	if e.vocab == VocabularyCurrent && e.opts.Scope == ScopedToDocument && e.docURI != "" {
		docNode := rdf2go.NewResource(e.docURI)
		for _, pred := range []string{doap.DcSubject, doap.DcReferences} {
			for _, t := range e.g.All(docNode, rdf2go.NewResource(pred), nil) {
				if e.g.Any(t.Object, typePred, projectClass) {
					roots = append(roots, t.Object)
				}
			}
		}
	} else {
		for _, t := range e.g.All(nil, typePred, projectClass) {
			roots = append(roots, t.Subject)
		}
	}

	for _, node := range roots {
		key := graph.Canon(node)
		if _, seen := e.nodes[key]; seen {
			continue
		}
		e.nodes[key] = node
		e.projectMetadata(node, doc.ensureProject(key))
	}

	if e.docURI != "" {
		if title := e.pick(rdf2go.NewResource(e.docURI), doap.DcTitle); title != "" {
			doc.Title = title
		}
	}
}

func (e *extractor) projectMetadata(node rdf2go.Term, p *Project) {
	// Three alternate name predicates; the first one with any value
	// wins the dispatch, the fold inside pick settles duplicates.
	for _, pred := range []string{doap.PropName, doap.RdfsLabel, doap.DcTitle} {
		if v := e.pick(node, pred); v != "" {
			p.Name = v
			break
		}
	}

	p.Created = e.pick(node, doap.PropCreated)

	for _, t := range e.g.All(node, rdf2go.NewResource(doap.PropHomepage), nil) {
		p.addHomepage(graph.Text(t.Object))
	}
	for _, t := range e.g.All(node, rdf2go.NewResource(doap.PropBugDatabase), nil) {
		p.addBugDatabase(graph.Text(t.Object))
	}

	for _, t := range e.g.All(node, rdf2go.NewResource(doap.PropMaintainer), nil) {
		m := p.ensureMaintainer(graph.Canon(t.Object))
		if v := e.pick(t.Object, doap.FoafName); v != "" {
			m.Name = v
		}
		for _, mb := range e.g.All(t.Object, rdf2go.NewResource(doap.FoafMbox), nil) {
			m.addMbox(graph.Text(mb.Object))
		}
	}
}

// pick folds every value asserted for (node, pred) into one.
// Duplicate facts are not validated; to keep the winner independent of
// query result order the candidates are sorted before the fold and the
// last sorted value wins.
func (e *extractor) pick(node rdf2go.Term, pred string) string {
	var vals []string
	for _, t := range e.g.All(node, rdf2go.NewResource(pred), nil) {
		if v := graph.Text(t.Object); v != "" {
			vals = append(vals, v)
		}
	}
	if len(vals) == 0 {
		return ""
	}
	sort.Strings(vals)
	return vals[len(vals)-1]
}

// finalize fills fallback names and the document title after both
// passes have run.
func (e *extractor) finalize(doc *Document) {
	for _, key := range doc.ProjectKeys() {
		p := doc.Projects[key]
		if p.Name != "" {
			continue
		}
		if e.opts.DefaultName != "" {
			p.Name = e.opts.DefaultName
		} else {
			p.Name = p.Key
		}
	}

	if doc.Title == "" {
		if name := shortestName(doc); name != "" {
			doc.Title = "Changes for " + name
		} else {
			doc.Title = "Changes"
		}
	}
}

// shortestName returns the shortest project display name, breaking
// length ties lexicographically.
func shortestName(doc *Document) string {
	best := ""
	for _, key := range doc.ProjectKeys() {
		n := doc.Projects[key].Name
		if n == "" {
			continue
		}
		if best == "" {
			best = n
			continue
		}
		nl, bl := utf8.RuneCountInString(n), utf8.RuneCountInString(best)
		if nl < bl || (nl == bl && n < best) {
			best = n
		}
	}
	return best
}
