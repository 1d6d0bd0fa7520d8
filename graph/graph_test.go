package graph

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/deiu/rdf2go"
)

const sampleTurtle = `
@prefix doap: <http://usefulinc.com/ns/doap#> .

<http://example.org/widget> a doap:Project ;
    doap:name "Widget" ;
    doap:homepage <http://example.org/> .
`

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in      string
		want    Format
		wantErr bool
	}{
		{"turtle", FormatTurtle, false},
		{"", FormatTurtle, false},
		{"Turtle", FormatTurtle, false},
		{"jsonld", FormatJSONLD, false},
		{"rdfxml", "", true},
	}

	for _, tc := range tests {
		t.Run(tc.in, func(t *testing.T) {
			got, err := ParseFormat(tc.in)
			if tc.wantErr {
				if err == nil {
					t.Fatalf("ParseFormat(%q) expected error, got %q", tc.in, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseFormat(%q): %v", tc.in, err)
			}
			if got != tc.want {
				t.Errorf("ParseFormat(%q) = %q, want %q", tc.in, got, tc.want)
			}
		})
	}
}

func TestParseAndMatch(t *testing.T) {
	g, err := Parse(strings.NewReader(sampleTurtle), "http://example.org/Changes.ttl", FormatTurtle)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}

	project := rdf2go.NewResource("http://example.org/widget")
	name := g.One(project, rdf2go.NewResource("http://usefulinc.com/ns/doap#name"), nil)
	if name == nil {
		t.Fatal("expected a doap:name triple")
	}
	if got := Text(name.Object); got != "Widget" {
		t.Errorf("name = %q, want %q", got, "Widget")
	}

	if !g.Any(project, nil, nil) {
		t.Error("Any returned false for an existing subject")
	}
	if g.Any(rdf2go.NewResource("http://example.org/absent"), nil, nil) {
		t.Error("Any returned true for an absent subject")
	}
}

func TestParseFailureIsFatal(t *testing.T) {
	_, err := Parse(strings.NewReader("@prefix broken"), "http://example.org/x", FormatTurtle)
	if err == nil {
		t.Fatal("expected parse error for malformed turtle")
	}
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "Changes.ttl")
	if err := os.WriteFile(path, []byte(sampleTurtle), 0644); err != nil {
		t.Fatal(err)
	}

	g, err := Load(path, FormatTurtle)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if g.Len() == 0 {
		t.Error("loaded graph is empty")
	}
	if g.Source() != path {
		t.Errorf("source = %q, want %q", g.Source(), path)
	}
	if !strings.HasPrefix(g.Base(), "file://") {
		t.Errorf("base = %q, want a file URI", g.Base())
	}
}

func TestLoadRemoteHonorsFormatHint(t *testing.T) {
	// The server deliberately reports a generic content type; the
	// caller's format hint must still drive parsing.
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("Accept"); got != "text/turtle" {
			t.Errorf("Accept = %q, want %q", got, "text/turtle")
		}
		w.Header().Set("Content-Type", "text/plain")
		_, _ = w.Write([]byte(sampleTurtle))
	}))
	defer srv.Close()

	g, err := Load(srv.URL+"/Changes.ttl", FormatTurtle)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if g.Len() == 0 {
		t.Error("loaded graph is empty")
	}
	name := g.One(rdf2go.NewResource("http://example.org/widget"),
		rdf2go.NewResource("http://usefulinc.com/ns/doap#name"), nil)
	if name == nil {
		t.Fatal("expected a doap:name triple from the remote document")
	}
}

func TestLoadRemoteRejectsErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer srv.Close()

	if _, err := Load(srv.URL+"/missing.ttl", FormatTurtle); err == nil {
		t.Fatal("expected error for a 404 response")
	}
}

func TestCanonIsStable(t *testing.T) {
	a := rdf2go.NewResource("http://example.org/widget")
	b := rdf2go.NewResource("http://example.org/widget")
	if Canon(a) != Canon(b) {
		t.Error("distinct term objects for the same IRI must share a canonical form")
	}
	if Canon(nil) != "" {
		t.Error("nil term must canonicalize to the empty string")
	}
}

func TestText(t *testing.T) {
	tests := []struct {
		name string
		term rdf2go.Term
		want string
	}{
		{"literal", rdf2go.NewLiteral("hello"), "hello"},
		{"resource", rdf2go.NewResource("http://example.org/a"), "http://example.org/a"},
		{"blank", &rdf2go.BlankNode{ID: "b1"}, "b1"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := Text(tc.term); got != tc.want {
				t.Errorf("Text = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestLocalName(t *testing.T) {
	tests := []struct {
		uri  string
		want string
	}{
		{"http://ontologi.es/doap-changeset#Addition", "Addition"},
		{"http://aaronland.info/ns/changefile/bugfix", "bugfix"},
		{"plain", "plain"},
	}

	for _, tc := range tests {
		if got := LocalName(tc.uri); got != tc.want {
			t.Errorf("LocalName(%q) = %q, want %q", tc.uri, got, tc.want)
		}
	}
}
