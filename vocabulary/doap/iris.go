package doap

// Namespace is the base IRI for the DOAP (Description of a Project) vocabulary.
const Namespace = "http://usefulinc.com/ns/doap#"

// Class IRIs define the types of DOAP entities.
const (
	// ClassProject represents a software project.
	ClassProject = Namespace + "Project"

	// ClassVersion represents one release of a project.
	ClassVersion = Namespace + "Version"
)

// Property IRIs describe projects and their releases.
const (
	// PropName is the project or release display name.
	PropName = Namespace + "name"

	// PropCreated is the free-text creation date of a project.
	PropCreated = Namespace + "created"

	// PropHomepage links a project to a homepage URI.
	PropHomepage = Namespace + "homepage"

	// PropBugDatabase links a project to a bug tracker URI.
	PropBugDatabase = Namespace + "bug-database"

	// PropMaintainer links a project to a maintainer description.
	PropMaintainer = Namespace + "maintainer"

	// PropRelease links a project to one of its releases.
	// Domain: ClassProject, Range: ClassVersion
	PropRelease = Namespace + "release"

	// PropRevision is the revision label of a release. Free text, not
	// guaranteed to be a strict semantic version.
	PropRevision = Namespace + "revision"
)

// FOAF IRIs used for maintainer descriptions.
const (
	// FoafName is the maintainer display name.
	FoafName = "http://xmlns.com/foaf/0.1/name"

	// FoafMbox is a maintainer mailbox URI.
	FoafMbox = "http://xmlns.com/foaf/0.1/mbox"
)

// Dublin Core, RDFS, and RDF IRIs used for titles, labels, dates, and
// document-to-project scoping.
const (
	// DcTitle is the document or entity title.
	DcTitle = "http://purl.org/dc/terms/title"

	// DcIssued is the free-text issue date of a release.
	DcIssued = "http://purl.org/dc/terms/issued"

	// DcSubject links an input document to a project it describes.
	DcSubject = "http://purl.org/dc/terms/subject"

	// DcReferences links an input document to a project it references.
	DcReferences = "http://purl.org/dc/terms/references"

	// RdfsLabel is the generic label property, used as a fallback
	// project name and as the change item description.
	RdfsLabel = "http://www.w3.org/2000/01/rdf-schema#label"

	// RdfType is the rdf:type predicate.
	RdfType = "http://www.w3.org/1999/02/22-rdf-syntax-ns#type"
)
