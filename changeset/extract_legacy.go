package changeset

import (
	"github.com/deiu/rdf2go"

	"github.com/c360studio/changelog/graph"
	"github.com/c360studio/changelog/vocabulary/changefile"
	"github.com/c360studio/changelog/vocabulary/doap"
)

// extractLegacyReleases is the second query pass under the legacy
// vocabulary: version resources declare themselves a version of the
// project, and change items hang off the version through predicates
// whose IRI doubles as the change's classification.
func (e *extractor) extractLegacyReleases(p *Project) {
	versionOf := rdf2go.NewResource(changefile.PropVersionOf)
	for _, t := range e.g.All(nil, versionOf, nil) {
		if graph.Canon(t.Object) != p.Key {
			continue
		}
		ver := t.Subject
		rel := p.ensureRelease(graph.Canon(ver))
		rel.Revision = e.pick(ver, changefile.PropVersion)
		rel.Issued = e.pick(ver, changefile.PropCreated)
		rel.Name = e.pick(ver, doap.RdfsLabel)

		for _, ct := range e.g.All(ver, nil, nil) {
			predURI := graph.Text(ct.Predicate)
			if !changefile.IsChangePredicate(predURI) {
				continue
			}
			c := rel.ensureChange(graph.Canon(ct.Object))
			c.Label = e.pick(ct.Object, doap.RdfsLabel)
			// An item attached through several predicates keeps the
			// greatest recognized classification, independent of
			// query result order.
			if ty := changefile.TypeForPredicate(predURI); ty != "" && ty > c.Type {
				c.Type = ty
			}
		}
	}
}
