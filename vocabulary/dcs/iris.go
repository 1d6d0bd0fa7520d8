package dcs

// Namespace is the base IRI for the DOAP Change Sets vocabulary, the
// current (preferred) changelog schema.
const Namespace = "http://ontologi.es/doap-changeset#"

// Class IRIs define change set entities and change classifications.
const (
	// ClassChangeSet is the intermediate node grouping a release's changes.
	ClassChangeSet = Namespace + "ChangeSet"

	// ClassChange is the generic change base class. It never produces a
	// sigil; only its specializing subtypes do.
	ClassChange = Namespace + "Change"

	// ClassAddition classifies a change that adds functionality.
	ClassAddition = Namespace + "Addition"

	// ClassUpdate classifies a change that updates existing functionality.
	ClassUpdate = Namespace + "Update"

	// ClassBugfix classifies a change that fixes a defect.
	ClassBugfix = Namespace + "Bugfix"

	// ClassRemoval classifies a change that removes functionality.
	ClassRemoval = Namespace + "Removal"
)

// Property IRIs attach change sets to releases and items to change sets.
const (
	// PropChangeset links a release to its change set node.
	// Domain: doap:Version, Range: ClassChangeSet
	PropChangeset = Namespace + "changeset"

	// PropItem links a change set to one change item.
	// Domain: ClassChangeSet, Range: ClassChange
	PropItem = Namespace + "item"
)
