package render

import (
	"fmt"
	"sort"
	"strings"

	"golang.org/x/mod/semver"

	"github.com/c360studio/changelog/changeset"
)

// SortMode orders releases within a project. Both modes render newest
// first; they differ in how revision labels compare.
type SortMode string

const (
	// SortSemver compares revisions as semantic versions where both
	// sides parse as one, falling back to plain string comparison
	// otherwise. This is the default: "1.10" orders above "1.9".
	SortSemver SortMode = "semver"

	// SortLexical compares revisions as plain strings. This matches
	// the historical rendering where "1.9" orders above "1.10".
	SortLexical SortMode = "lexical"
)

// ParseSortMode validates a sort mode name. Empty means SortSemver.
func ParseSortMode(s string) (SortMode, error) {
	switch SortMode(strings.ToLower(s)) {
	case SortSemver, "":
		return SortSemver, nil
	case SortLexical:
		return SortLexical, nil
	default:
		return "", fmt.Errorf("unknown sort mode %q (known: semver, lexical)", s)
	}
}

// sortReleases orders releases descending by revision under the given
// mode, breaking ties by canonical node key so the order is total.
func sortReleases(releases []*changeset.Release, mode SortMode) []*changeset.Release {
	sort.SliceStable(releases, func(i, j int) bool {
		if c := compareRevisions(releases[i].Revision, releases[j].Revision, mode); c != 0 {
			return c > 0
		}
		return releases[i].Key < releases[j].Key
	})
	return releases
}

func compareRevisions(a, b string, mode SortMode) int {
	if mode != SortLexical {
		av, bv := canonicalSemver(a), canonicalSemver(b)
		if av != "" && bv != "" {
			if c := semver.Compare(av, bv); c != 0 {
				return c
			}
			// Equal as versions ("1.0" vs "1.0.0"): settle on text.
			return strings.Compare(a, b)
		}
	}
	return strings.Compare(a, b)
}

// canonicalSemver returns the v-prefixed form of a revision label if it
// is a valid semantic version, else "".
func canonicalSemver(rev string) string {
	v := rev
	if !strings.HasPrefix(v, "v") {
		v = "v" + v
	}
	if semver.IsValid(v) {
		return v
	}
	return ""
}
