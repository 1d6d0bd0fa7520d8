package changeset

import "testing"

func TestParseVocabulary(t *testing.T) {
	tests := []struct {
		in      string
		want    Vocabulary
		wantErr bool
	}{
		{"auto", VocabularyAuto, false},
		{"", VocabularyAuto, false},
		{"legacy", VocabularyLegacy, false},
		{"current", VocabularyCurrent, false},
		{"doap", "", true},
	}

	for _, tc := range tests {
		t.Run(tc.in, func(t *testing.T) {
			got, err := ParseVocabulary(tc.in)
			if tc.wantErr {
				if err == nil {
					t.Fatalf("ParseVocabulary(%q) expected error", tc.in)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseVocabulary(%q): %v", tc.in, err)
			}
			if got != tc.want {
				t.Errorf("ParseVocabulary(%q) = %q, want %q", tc.in, got, tc.want)
			}
		})
	}
}

func TestDetect(t *testing.T) {
	legacy := parseGraph(t, legacyFixture)
	current := parseGraph(t, currentFixture)

	tests := []struct {
		name  string
		graph string
		hint  Vocabulary
		want  Vocabulary
	}{
		{"auto on legacy graph", "legacy", VocabularyAuto, VocabularyLegacy},
		{"auto on current graph", "current", VocabularyAuto, VocabularyCurrent},
		{"explicit legacy hint wins", "current", VocabularyLegacy, VocabularyLegacy},
		{"explicit current hint wins", "legacy", VocabularyCurrent, VocabularyCurrent},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g := current
			if tc.graph == "legacy" {
				g = legacy
			}
			if got := Detect(g, tc.hint); got != tc.want {
				t.Errorf("Detect = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestDetectEmptyGraphIsCurrent(t *testing.T) {
	g := parseGraph(t, "")
	if got := Detect(g, VocabularyAuto); got != VocabularyCurrent {
		t.Errorf("Detect on empty graph = %q, want current", got)
	}
}
