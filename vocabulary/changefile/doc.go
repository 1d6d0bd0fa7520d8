// Package changefile provides IRI constants and type normalization for
// the legacy Changefile vocabulary. Historical changelog documents use
// these predicates; extraction rewrites their change classifications
// onto the dcs vocabulary so the renderer handles one schema.
package changefile
