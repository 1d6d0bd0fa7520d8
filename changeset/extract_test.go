package changeset

import (
	"strings"
	"testing"

	"github.com/c360studio/changelog/graph"
	"github.com/c360studio/changelog/vocabulary/dcs"
)

const docURI = "http://example.org/doc"

func parseGraph(t *testing.T, ttl string) *graph.Graph {
	t.Helper()
	g, err := graph.Parse(strings.NewReader(ttl), docURI, graph.FormatTurtle)
	if err != nil {
		t.Fatalf("parse fixture: %v", err)
	}
	return g
}

const currentFixture = `
@prefix doap: <http://usefulinc.com/ns/doap#> .
@prefix dcs: <http://ontologi.es/doap-changeset#> .
@prefix dcterms: <http://purl.org/dc/terms/> .
@prefix rdfs: <http://www.w3.org/2000/01/rdf-schema#> .
@prefix foaf: <http://xmlns.com/foaf/0.1/> .

<http://example.org/widget> a doap:Project ;
    doap:name "Widget" ;
    doap:created "2019-03-01" ;
    doap:homepage <http://example.org/> ;
    doap:bug-database <http://example.org/bugs> ;
    doap:maintainer <http://example.org/alice> ;
    doap:release <http://example.org/widget/1.0> .

<http://example.org/alice> foaf:name "Alice" ;
    foaf:mbox <mailto:alice@example.org> ;
    foaf:mbox <mailto:a@example.org> .

<http://example.org/widget/1.0> a doap:Version ;
    doap:revision "1.0" ;
    dcterms:issued "2020-01-01" ;
    doap:name "First stable" ;
    dcs:changeset <http://example.org/widget/1.0/cs> .

<http://example.org/widget/1.0/cs> a dcs:ChangeSet ;
    dcs:item <http://example.org/widget/1.0/c1> ;
    dcs:item <http://example.org/widget/1.0/c2> .

<http://example.org/widget/1.0/c1> a dcs:Addition ;
    rdfs:label "Initial release" .

<http://example.org/widget/1.0/c2> a dcs:Change ;
    rdfs:label "Housekeeping" .
`

func TestExtractCurrent(t *testing.T) {
	g := parseGraph(t, currentFixture)
	doc := Extract(g, VocabularyCurrent, docURI, Options{})

	if len(doc.Projects) != 1 {
		t.Fatalf("got %d projects, want 1", len(doc.Projects))
	}
	p := doc.Projects["<http://example.org/widget>"]
	if p == nil {
		t.Fatalf("project not keyed by canonical node string; keys: %v", doc.ProjectKeys())
	}

	if p.Name != "Widget" {
		t.Errorf("name = %q, want %q", p.Name, "Widget")
	}
	if p.Created != "2019-03-01" {
		t.Errorf("created = %q", p.Created)
	}
	if got := p.Homepages(); len(got) != 1 || got[0] != "http://example.org/" {
		t.Errorf("homepages = %v", got)
	}
	if got := p.BugDatabases(); len(got) != 1 || got[0] != "http://example.org/bugs" {
		t.Errorf("bug databases = %v", got)
	}

	if len(p.Maintainers) != 1 {
		t.Fatalf("got %d maintainers, want 1", len(p.Maintainers))
	}
	m := p.Maintainers["<http://example.org/alice>"]
	if m == nil || m.Name != "Alice" {
		t.Fatalf("maintainer = %+v", m)
	}
	if got := m.FirstMbox(); got != "mailto:a@example.org" {
		t.Errorf("first mbox = %q, want the lexicographically first", got)
	}

	if len(p.Releases) != 1 {
		t.Fatalf("got %d releases, want 1", len(p.Releases))
	}
	rel := p.Releases["<http://example.org/widget/1.0>"]
	if rel == nil {
		t.Fatal("release not keyed by canonical node string")
	}
	if rel.Revision != "1.0" || rel.Issued != "2020-01-01" || rel.Name != "First stable" {
		t.Errorf("release = %+v", rel)
	}

	changes := rel.ChangeList()
	if len(changes) != 2 {
		t.Fatalf("got %d changes, want 2", len(changes))
	}
	// Untyped sorts first (empty type), typed second.
	if changes[0].Type != "" || changes[0].Label != "Housekeeping" {
		t.Errorf("changes[0] = %+v, want the untyped housekeeping item first", changes[0])
	}
	if changes[1].Type != dcs.ClassAddition || changes[1].Label != "Initial release" {
		t.Errorf("changes[1] = %+v", changes[1])
	}
}

const scopedFixture = `
@prefix doap: <http://usefulinc.com/ns/doap#> .
@prefix dcterms: <http://purl.org/dc/terms/> .

<http://example.org/doc> dcterms:title "Widget history" ;
    dcterms:subject <http://example.org/widget> .

<http://example.org/widget> a doap:Project ;
    doap:name "Widget" .

<http://example.org/other> a doap:Project ;
    doap:name "Other" .
`

func TestExtractScopeModes(t *testing.T) {
	tests := []struct {
		name         string
		scope        Scope
		wantProjects int
	}{
		{"scoped to document", ScopedToDocument, 1},
		{"unscoped", Unscoped, 2},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g := parseGraph(t, scopedFixture)
			doc := Extract(g, VocabularyCurrent, docURI, Options{Scope: tc.scope})
			if len(doc.Projects) != tc.wantProjects {
				t.Errorf("got %d projects, want %d (keys: %v)",
					len(doc.Projects), tc.wantProjects, doc.ProjectKeys())
			}
			if doc.Title != "Widget history" {
				t.Errorf("title = %q, want the explicit document title", doc.Title)
			}
		})
	}
}

const legacyFixture = `
@prefix cf: <http://aaronland.info/ns/changefile/> .
@prefix doap: <http://usefulinc.com/ns/doap#> .
@prefix rdfs: <http://www.w3.org/2000/01/rdf-schema#> .

<http://example.org/p> a doap:Project ;
    doap:name "P" .

<http://example.org/p/0.9> cf:Version "0.9" ;
    cf:versionOf <http://example.org/p> ;
    cf:created "2019-05-01" ;
    rdfs:label "Maintenance" ;
    cf:bugfix <http://example.org/p/0.9/c1> ;
    cf:frobnicate <http://example.org/p/0.9/c2> .

<http://example.org/p/0.9/c1> rdfs:label "Fixed a crash" .
<http://example.org/p/0.9/c2> rdfs:label "Mystery change" .
`

func TestExtractLegacy(t *testing.T) {
	g := parseGraph(t, legacyFixture)
	doc := Extract(g, VocabularyLegacy, docURI, Options{})

	p := doc.Projects["<http://example.org/p>"]
	if p == nil {
		t.Fatalf("project missing; keys: %v", doc.ProjectKeys())
	}
	rel := p.Releases["<http://example.org/p/0.9>"]
	if rel == nil {
		t.Fatal("legacy version resource not extracted as a release")
	}
	if rel.Revision != "0.9" || rel.Issued != "2019-05-01" || rel.Name != "Maintenance" {
		t.Errorf("release = %+v", rel)
	}

	changes := rel.Changes
	if len(changes) != 2 {
		t.Fatalf("got %d changes, want 2", len(changes))
	}

	fixed := changes["<http://example.org/p/0.9/c1>"]
	if fixed == nil || fixed.Type != dcs.ClassBugfix {
		t.Errorf("bugfix predicate must normalize onto the current vocabulary, got %+v", fixed)
	}
	mystery := changes["<http://example.org/p/0.9/c2>"]
	if mystery == nil || mystery.Type != "" || mystery.Label != "Mystery change" {
		t.Errorf("unrecognized predicate must yield an untyped change, got %+v", mystery)
	}
}

func TestFallbackTitle(t *testing.T) {
	g := parseGraph(t, `
@prefix doap: <http://usefulinc.com/ns/doap#> .
<http://example.org/foobar> a doap:Project ; doap:name "Foo-Bar" .
`)
	doc := Extract(g, VocabularyCurrent, docURI, Options{})
	if doc.Title != "Changes for Foo-Bar" {
		t.Errorf("title = %q, want %q", doc.Title, "Changes for Foo-Bar")
	}
}

func TestFallbackNameModes(t *testing.T) {
	const fixture = `
@prefix doap: <http://usefulinc.com/ns/doap#> .
<http://example.org/anon> a doap:Project .
`
	t.Run("build-tool mode uses the supplied default", func(t *testing.T) {
		g := parseGraph(t, fixture)
		doc := Extract(g, VocabularyCurrent, docURI, Options{DefaultName: "mytool"})
		p := doc.Projects["<http://example.org/anon>"]
		if p.Name != "mytool" {
			t.Errorf("name = %q, want %q", p.Name, "mytool")
		}
	})

	t.Run("library mode uses the canonical node string", func(t *testing.T) {
		g := parseGraph(t, fixture)
		doc := Extract(g, VocabularyCurrent, docURI, Options{})
		p := doc.Projects["<http://example.org/anon>"]
		if p.Name != "<http://example.org/anon>" {
			t.Errorf("name = %q, want the canonical node string", p.Name)
		}
	})
}

func TestExtractEmptyGraph(t *testing.T) {
	g := parseGraph(t, "")
	doc := Extract(g, VocabularyCurrent, docURI, Options{})
	if len(doc.Projects) != 0 {
		t.Errorf("got %d projects, want 0", len(doc.Projects))
	}
	if doc.Title != "Changes" {
		t.Errorf("title = %q, want the literal fallback", doc.Title)
	}
}

func TestDuplicateFactsFoldDeterministically(t *testing.T) {
	g := parseGraph(t, `
@prefix doap: <http://usefulinc.com/ns/doap#> .
<http://example.org/w> a doap:Project ;
    doap:name "Alpha" ;
    doap:name "Beta" .
`)
	doc := Extract(g, VocabularyCurrent, docURI, Options{})
	p := doc.Projects["<http://example.org/w>"]
	if p.Name != "Beta" {
		t.Errorf("name = %q; duplicate facts must fold to the last sorted value", p.Name)
	}
}
