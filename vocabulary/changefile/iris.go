package changefile

// Namespace is the base IRI for the legacy Changefile vocabulary.
const Namespace = "http://aaronland.info/ns/changefile/"

// Property IRIs describe legacy version resources.
const (
	// PropVersion carries the revision label of a legacy version
	// resource. This is the legacy-only predicate used as the
	// vocabulary detection probe.
	PropVersion = Namespace + "Version"

	// PropVersionOf links a version resource to the project it is a
	// version of. Ownership runs from version to project, the reverse
	// of the current vocabulary's release predicate.
	PropVersionOf = Namespace + "versionOf"

	// PropCreated is the free-text creation date of a version.
	PropCreated = Namespace + "created"

	// PropChanges attaches a change item with no classification.
	PropChanges = Namespace + "changes"
)

// Typed change predicates. The predicate IRI as used doubles as the
// change's type classifier.
const (
	// PropAddition attaches a change classified as an addition.
	PropAddition = Namespace + "addition"

	// PropUpdate attaches a change classified as an update.
	PropUpdate = Namespace + "update"

	// PropBugfix attaches a change classified as a bugfix.
	PropBugfix = Namespace + "bugfix"

	// PropRemoval attaches a change classified as a removal.
	PropRemoval = Namespace + "removal"
)
