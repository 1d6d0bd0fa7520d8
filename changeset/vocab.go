package changeset

import (
	"fmt"

	"github.com/deiu/rdf2go"

	"github.com/c360studio/changelog/graph"
	"github.com/c360studio/changelog/vocabulary/changefile"
)

// Vocabulary identifies which changelog schema a graph follows.
type Vocabulary string

const (
	// VocabularyAuto asks the detector to probe the graph.
	VocabularyAuto Vocabulary = "auto"

	// VocabularyLegacy is the historical Changefile schema.
	VocabularyLegacy Vocabulary = "legacy"

	// VocabularyCurrent is the DOAP Change Sets schema.
	VocabularyCurrent Vocabulary = "current"
)

// ParseVocabulary validates a vocabulary hint. An empty hint means auto.
func ParseVocabulary(s string) (Vocabulary, error) {
	switch Vocabulary(s) {
	case VocabularyAuto, "":
		return VocabularyAuto, nil
	case VocabularyLegacy:
		return VocabularyLegacy, nil
	case VocabularyCurrent:
		return VocabularyCurrent, nil
	default:
		return "", fmt.Errorf("unknown vocabulary %q (known: auto, legacy, current)", s)
	}
}

// Detect chooses the vocabulary for a graph. An explicit hint other
// than auto is honored as given. Under auto a single existence probe
// runs for the legacy version-number predicate: presence proves Legacy,
// absence yields Current. Absence does not positively prove Current, so
// every caller must use this same legacy-directed probe; mixing probe
// directions across call sites would make detection input-dependent.
func Detect(g *graph.Graph, hint Vocabulary) Vocabulary {
	if hint == VocabularyLegacy || hint == VocabularyCurrent {
		return hint
	}
	if g.Any(nil, rdf2go.NewResource(changefile.PropVersion), nil) {
		return VocabularyLegacy
	}
	return VocabularyCurrent
}
