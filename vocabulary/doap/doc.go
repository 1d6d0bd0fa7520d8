// Package doap provides IRI constants for the DOAP vocabulary and the
// FOAF, Dublin Core, RDFS, and RDF terms the changelog pipeline joins
// against project descriptions.
//
// DOAP is shared by both the legacy and the current changelog
// vocabularies: projects, maintainers, and release revisions are always
// described with DOAP terms; the two vocabularies differ only in how
// versions and change items attach to them.
package doap
