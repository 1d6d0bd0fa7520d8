package changeset

import "sort"

// Document is the root aggregate extracted from one input graph: a
// document title and the projects it describes. It is built fresh for
// every extraction, never persisted, and never mutated after the
// extractor returns it.
type Document struct {
	// Title is the rendered banner title. The extractor guarantees it
	// is non-empty: an explicit title assertion, the shortest project
	// display name ("Changes for X"), or the literal fallback "Changes".
	Title string

	// Projects maps canonical node strings to projects.
	Projects map[string]*Project
}

// Project is one described software project. Optional attributes stay
// zero-valued until a matching fact is found; rendering omits them.
type Project struct {
	// Key is the canonical node string identifying the project.
	Key string

	// Name is the resolved display name. The extractor fills the
	// fallback (supplied default or Key) when no name is asserted.
	Name string

	// Created is the free-text creation date, if asserted.
	Created string

	homepages    map[string]bool
	bugDatabases map[string]bool

	// Maintainers maps maintainer canonical node strings to maintainers.
	Maintainers map[string]*Maintainer

	// Releases maps release canonical node strings to releases.
	Releases map[string]*Release
}

// Maintainer is a project maintainer: at most one display name (last
// one seen wins) and a set of mailbox URIs.
type Maintainer struct {
	Key  string
	Name string

	mboxes map[string]bool
}

// Release is one release of a project. Revision is free text and not
// guaranteed to be a valid semantic version.
type Release struct {
	Key      string
	Revision string
	Issued   string
	Name     string

	// Changes maps change-item canonical node strings to changes.
	Changes map[string]*Change
}

// Change is one change item of a release. Type is a change class IRI on
// the current vocabulary's namespace, or empty when the change carries
// no recognized classification.
type Change struct {
	Key   string
	Label string
	Type  string
}

// NewDocument returns an empty aggregate.
func NewDocument() *Document {
	return &Document{Projects: make(map[string]*Project)}
}

// ProjectKeys returns the project keys in ascending order, the order
// projects render in.
func (d *Document) ProjectKeys() []string {
	return sortedKeys(d.Projects)
}

func (d *Document) ensureProject(key string) *Project {
	if p, ok := d.Projects[key]; ok {
		return p
	}
	p := &Project{
		Key:          key,
		homepages:    make(map[string]bool),
		bugDatabases: make(map[string]bool),
		Maintainers:  make(map[string]*Maintainer),
		Releases:     make(map[string]*Release),
	}
	d.Projects[key] = p
	return p
}

func (p *Project) addHomepage(uri string) {
	if uri != "" {
		p.homepages[uri] = true
	}
}

func (p *Project) addBugDatabase(uri string) {
	if uri != "" {
		p.bugDatabases[uri] = true
	}
}

// Homepages returns the deduplicated homepage URIs in ascending order.
func (p *Project) Homepages() []string {
	return sortedSet(p.homepages)
}

// BugDatabases returns the deduplicated bug tracker URIs in ascending
// order.
func (p *Project) BugDatabases() []string {
	return sortedSet(p.bugDatabases)
}

// MaintainerKeys returns the maintainer keys in ascending order.
func (p *Project) MaintainerKeys() []string {
	return sortedKeys(p.Maintainers)
}

func (p *Project) ensureMaintainer(key string) *Maintainer {
	if m, ok := p.Maintainers[key]; ok {
		return m
	}
	m := &Maintainer{Key: key, mboxes: make(map[string]bool)}
	p.Maintainers[key] = m
	return m
}

func (p *Project) ensureRelease(key string) *Release {
	if r, ok := p.Releases[key]; ok {
		return r
	}
	r := &Release{Key: key, Changes: make(map[string]*Change)}
	p.Releases[key] = r
	return r
}

// ReleaseList returns the releases in no particular order; the renderer
// applies the configured revision ordering.
func (p *Project) ReleaseList() []*Release {
	out := make([]*Release, 0, len(p.Releases))
	for _, key := range sortedKeys(p.Releases) {
		out = append(out, p.Releases[key])
	}
	return out
}

func (m *Maintainer) addMbox(uri string) {
	if uri != "" {
		m.mboxes[uri] = true
	}
}

// Mboxes returns the mailbox URIs in ascending order.
func (m *Maintainer) Mboxes() []string {
	return sortedSet(m.mboxes)
}

// FirstMbox returns the lexicographically first mailbox, the one shown
// in rendered output, or "" when the maintainer has none.
func (m *Maintainer) FirstMbox() string {
	boxes := m.Mboxes()
	if len(boxes) == 0 {
		return ""
	}
	return boxes[0]
}

func (r *Release) ensureChange(key string) *Change {
	if c, ok := r.Changes[key]; ok {
		return c
	}
	c := &Change{Key: key}
	r.Changes[key] = c
	return c
}

// ChangeList returns the changes sorted ascending by (type, label),
// with an absent type ordering as the empty string. Keys break ties so
// the order is total.
func (r *Release) ChangeList() []*Change {
	out := make([]*Change, 0, len(r.Changes))
	for _, key := range sortedKeys(r.Changes) {
		out = append(out, r.Changes[key])
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Type != out[j].Type {
			return out[i].Type < out[j].Type
		}
		if out[i].Label != out[j].Label {
			return out[i].Label < out[j].Label
		}
		return out[i].Key < out[j].Key
	})
	return out
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func sortedSet(m map[string]bool) []string {
	return sortedKeys(m)
}
