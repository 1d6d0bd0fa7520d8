// Package dcs provides IRI constants for the DOAP Change Sets
// vocabulary, the current changelog schema. Legacy change types are
// normalized onto this namespace during extraction so rendering only
// ever sees one vocabulary.
package dcs
