package changeset

import (
	"sort"

	"github.com/deiu/rdf2go"

	"github.com/c360studio/changelog/graph"
	"github.com/c360studio/changelog/vocabulary/dcs"
	"github.com/c360studio/changelog/vocabulary/doap"
)

// extractCurrentReleases is the second query pass under the current
// vocabulary: releases attach to the project through the release
// predicate, and change items come through an intermediate change set
// node's item references.
func (e *extractor) extractCurrentReleases(p *Project) {
	node, ok := e.nodes[p.Key]
	if !ok {
		return
	}

	for _, t := range e.g.All(node, rdf2go.NewResource(doap.PropRelease), nil) {
		ver := t.Object
		rel := p.ensureRelease(graph.Canon(ver))
		rel.Revision = e.pick(ver, doap.PropRevision)
		rel.Issued = e.pick(ver, doap.DcIssued)
		rel.Name = e.pick(ver, doap.PropName)

		for _, cs := range e.g.All(ver, rdf2go.NewResource(dcs.PropChangeset), nil) {
			for _, it := range e.g.All(cs.Object, rdf2go.NewResource(dcs.PropItem), nil) {
				item := it.Object
				c := rel.ensureChange(graph.Canon(item))
				c.Label = e.pick(item, doap.RdfsLabel)
				c.Type = e.itemType(item)
			}
		}
	}
}

// itemType returns the specializing class of a change item. The
// generic base Change class never classifies; with several specializing
// classes asserted, the lexicographically first wins so the result does
// not depend on query result order.
func (e *extractor) itemType(item rdf2go.Term) string {
	var types []string
	for _, t := range e.g.All(item, rdf2go.NewResource(doap.RdfType), nil) {
		if !graph.IsResource(t.Object) {
			continue
		}
		uri := graph.Text(t.Object)
		if uri == "" || uri == dcs.ClassChange {
			continue
		}
		types = append(types, uri)
	}
	if len(types) == 0 {
		return ""
	}
	sort.Strings(types)
	return types[0]
}
