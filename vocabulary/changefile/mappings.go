package changefile

import (
	"strings"

	"github.com/c360studio/changelog/vocabulary/dcs"
)

// typeMap rewrites recognized legacy change predicate local names onto
// the current vocabulary's change classes.
var typeMap = map[string]string{
	"addition": dcs.ClassAddition,
	"update":   dcs.ClassUpdate,
	"bugfix":   dcs.ClassBugfix,
	"removal":  dcs.ClassRemoval,
}

// structural holds the legacy predicates that describe a version
// resource itself rather than attach change items to it.
var structural = map[string]bool{
	PropVersion:   true,
	PropVersionOf: true,
	PropCreated:   true,
}

// TypeForPredicate maps a legacy change predicate onto the change class
// it classifies, case-folding the local name so "bugfix", "Bugfix", and
// "BUGFIX" all normalize to the same class. Unrecognized predicates
// return the empty string: the change is kept but carries no type.
func TypeForPredicate(predicateURI string) string {
	local := predicateURI
	if i := strings.LastIndexAny(local, "#/"); i >= 0 {
		local = local[i+1:]
	}
	return typeMap[strings.ToLower(local)]
}

// IsChangePredicate reports whether a predicate on a legacy version
// resource attaches a change item. Any predicate in the changefile
// namespace qualifies except the structural ones describing the version
// itself.
func IsChangePredicate(predicateURI string) bool {
	if !strings.HasPrefix(predicateURI, Namespace) {
		return false
	}
	return !structural[predicateURI]
}
