// Package render turns the extracted changelog aggregate into its
// deterministic plain-text layout: banner, underlined project sections,
// ordered releases, and wrapped bullet points.
package render

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/c360studio/changelog/changeset"
	"github.com/c360studio/changelog/graph"
)

const (
	// DefaultWidth is the conventional terminal width the output
	// targets, counting the bullet prefix.
	DefaultWidth = 76

	// bannerWidth is the width of the full banner rules.
	bannerWidth = 76

	// titleBudget is the column budget for the banner title before
	// trailing padding stops.
	titleBudget = 72

	bulletPrefix = " - "
	contPrefix   = "   "
)

// Renderer renders documents. Wrap width and release ordering are
// explicit configuration, never ambient state.
type Renderer struct {
	// Width is the total output width in columns, including bullet
	// prefixes. Zero means DefaultWidth.
	Width int

	// Sort orders releases within a project. Zero value is the
	// semantic-version-aware ordering.
	Sort SortMode
}

// New returns a renderer with the default width and release ordering.
func New() *Renderer {
	return &Renderer{Width: DefaultWidth, Sort: SortSemver}
}

// Render produces the full text document. Rendering the same aggregate
// twice yields byte-identical output.
func (r *Renderer) Render(doc *changeset.Document) string {
	var sb strings.Builder
	r.writeBanner(&sb, doc.Title)
	for _, key := range doc.ProjectKeys() {
		r.writeProject(&sb, doc.Projects[key])
	}
	return sb.String()
}

func (r *Renderer) writeBanner(sb *strings.Builder, title string) {
	if title == "" {
		title = "Changes"
	}
	// A title longer than the budget pads with zero repeats, never a
	// negative count.
	pad := titleBudget - utf8.RuneCountInString(title)
	if pad < 0 {
		pad = 0
	}
	rule := strings.Repeat("#", bannerWidth)
	sb.WriteString(rule)
	sb.WriteString("\n## ")
	sb.WriteString(title)
	sb.WriteString(" ")
	sb.WriteString(strings.Repeat("#", pad))
	sb.WriteString("\n")
	sb.WriteString(rule)
	sb.WriteString("\n\n")
}

// writeProject emits one project section: name with underline, the
// optional metadata block, then releases. Projects order by canonical
// node string, not display name.
func (r *Renderer) writeProject(sb *strings.Builder, p *changeset.Project) {
	sb.WriteString(p.Name)
	sb.WriteString("\n")
	sb.WriteString(strings.Repeat("=", utf8.RuneCountInString(p.Name)))
	sb.WriteString("\n\n")

	meta := false
	if p.Created != "" {
		fmt.Fprintf(sb, "Created: %s\n", p.Created)
		meta = true
	}
	for _, hp := range p.Homepages() {
		fmt.Fprintf(sb, "Home page: %s\n", hp)
		meta = true
	}
	for _, bt := range p.BugDatabases() {
		fmt.Fprintf(sb, "Bug tracker: %s\n", bt)
		meta = true
	}
	for _, key := range p.MaintainerKeys() {
		m := p.Maintainers[key]
		name := m.Name
		if name == "" {
			name = m.Key
		}
		if mbox := m.FirstMbox(); mbox != "" {
			fmt.Fprintf(sb, "Maintainer: %s <%s>\n", name, mbox)
		} else {
			fmt.Fprintf(sb, "Maintainer: %s\n", name)
		}
		meta = true
	}
	if meta {
		sb.WriteString("\n")
	}

	for _, rel := range sortReleases(p.ReleaseList(), r.Sort) {
		r.writeRelease(sb, rel)
	}
}

func (r *Renderer) writeRelease(sb *strings.Builder, rel *changeset.Release) {
	sb.WriteString(rel.Revision)
	if rel.Issued != "" {
		fmt.Fprintf(sb, " [%s]", rel.Issued)
	}
	if rel.Name != "" {
		fmt.Fprintf(sb, " # %s", rel.Name)
	}
	sb.WriteString("\n")

	width := r.Width
	if width <= 0 {
		width = DefaultWidth
	}
	for _, c := range rel.ChangeList() {
		content := c.Label
		if c.Type != "" {
			content = "(" + graph.LocalName(c.Type) + ") " + c.Label
		}
		for i, line := range wrap(content, width-len(bulletPrefix)) {
			if i == 0 {
				sb.WriteString(bulletPrefix)
			} else {
				sb.WriteString(contPrefix)
			}
			sb.WriteString(line)
			sb.WriteString("\n")
		}
	}
	sb.WriteString("\n")
}
