package rendering

import "github.com/jonathan/cv-builder/internal/types"

const (
	// PageWidthPx is the nominal width of a rendered page.
	PageWidthPx = 794
	// PageMinHeightPx is the minimum height of a rendered page (A4 at 96 dpi).
	PageMinHeightPx = 1122
	// ExportTargetClass marks the element the exporter rasterizes.
	ExportTargetClass = "cv-export-target"
)

// Page is the template-independent output of Render: a header plus named regions of
// section blocks. Geometry lives in Style and in the template's HTML layout only.
type Page struct {
	Template types.TemplateName
	Style    PageStyle
	Header   Header
	Regions  []Region
}

// Region returns the region with the given name.
func (p *Page) Region(name string) (Region, bool) {
	for _, r := range p.Regions {
		if r.Name == name {
			return r, true
		}
	}
	return Region{}, false
}

// Blocks returns every block of the page in region then display order.
func (p *Page) Blocks() []Block {
	var out []Block
	for _, r := range p.Regions {
		out = append(out, r.Blocks...)
	}
	return out
}

// PageStyle holds the resolved presentation values of a page.
type PageStyle struct {
	FontClass    string
	FontStack    string
	FontSizePx   int
	SectionGapPx int
	AccentColor  string
	WidthPx      int
	MinHeightPx  int
}

// Header is the personal info block. Contacts keep a fixed order and omit empty values.
type Header struct {
	FullName string
	JobTitle string
	Contacts []Contact
}

// ContactKind identifies a contact line.
type ContactKind string

const (
	ContactEmail     ContactKind = "email"
	ContactPhone     ContactKind = "phone"
	ContactLocation  ContactKind = "location"
	ContactLinkedIn  ContactKind = "linkedin"
	ContactGitHub    ContactKind = "github"
	ContactPortfolio ContactKind = "portfolio"
)

// Contact is one line of the header's contact list.
type Contact struct {
	Kind  ContactKind
	Value string
}

// Region is a named area of the page holding blocks in display order.
type Region struct {
	Name   string
	Blocks []Block
}

// BlockKind selects how a block's content is laid out.
type BlockKind string

const (
	BlockText    BlockKind = "text"
	BlockEntries BlockKind = "entries"
	BlockChips   BlockKind = "chips"
)

// Block is one rendered section.
type Block struct {
	SectionID string
	Type      types.SectionType
	Title     string
	Kind      BlockKind
	Text      string
	Chips     []string
	Entries   []Entry
}

// Entry is one item of an entries block.
type Entry struct {
	Title    string
	Subtitle string
	Meta     string
	Details  []string
	Bullets  []string
}
