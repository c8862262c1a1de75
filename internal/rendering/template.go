package rendering

import (
	"github.com/jonathan/cv-builder/internal/sections"
	"github.com/jonathan/cv-builder/internal/types"
)

// Region names used by the built-in templates.
const (
	RegionMain    = "main"
	RegionSidebar = "sidebar"
)

// Template is a layout strategy. The set is closed: Lookup returns one of the built-in
// variants. All variants share block content and differ only in region assignment and
// geometry.
type Template interface {
	Name() types.TemplateName
	Regions() sections.RegionTable
	SpacingPx(spacing types.Spacing) int
	layout() string
}

type minimalTemplate struct{}

func (minimalTemplate) Name() types.TemplateName { return types.TemplateMinimal }

func (minimalTemplate) Regions() sections.RegionTable {
	return sections.RegionTable{Names: []string{RegionMain}, Default: RegionMain}
}

func (minimalTemplate) SpacingPx(spacing types.Spacing) int {
	return spacingScale(spacing, 12, 20, 28)
}

func (minimalTemplate) layout() string { return "minimal.html.tmpl" }

// twoColumnTemplate puts compact list sections in an accent-colored sidebar next to the
// personal info.
type twoColumnTemplate struct{}

func (twoColumnTemplate) Name() types.TemplateName { return types.TemplateTwoColumn }

func (twoColumnTemplate) Regions() sections.RegionTable {
	return sections.RegionTable{
		Names:   []string{RegionSidebar, RegionMain},
		Default: RegionMain,
		Assign: map[types.SectionType]string{
			types.SectionSkills:         RegionSidebar,
			types.SectionLanguages:      RegionSidebar,
			types.SectionCertifications: RegionSidebar,
			types.SectionReferences:     RegionSidebar,
		},
	}
}

func (twoColumnTemplate) SpacingPx(spacing types.Spacing) int {
	return spacingScale(spacing, 12, 16, 24)
}

func (twoColumnTemplate) layout() string { return "two-column.html.tmpl" }

type corporateTemplate struct{}

func (corporateTemplate) Name() types.TemplateName { return types.TemplateCorporate }

func (corporateTemplate) Regions() sections.RegionTable {
	return sections.RegionTable{Names: []string{RegionMain}, Default: RegionMain}
}

func (corporateTemplate) SpacingPx(spacing types.Spacing) int {
	return spacingScale(spacing, 16, 24, 32)
}

func (corporateTemplate) layout() string { return "corporate.html.tmpl" }

// Lookup returns the template registered under name. Unknown names fall back to minimal.
func Lookup(name types.TemplateName) Template {
	switch name {
	case types.TemplateTwoColumn:
		return twoColumnTemplate{}
	case types.TemplateCorporate:
		return corporateTemplate{}
	default:
		return minimalTemplate{}
	}
}

// Templates returns every built-in template in selector order.
func Templates() []Template {
	out := make([]Template, 0, len(types.TemplateNames))
	for _, name := range types.TemplateNames {
		out = append(out, Lookup(name))
	}
	return out
}

func spacingScale(spacing types.Spacing, compact, normal, relaxed int) int {
	switch spacing {
	case types.SpacingCompact:
		return compact
	case types.SpacingRelaxed:
		return relaxed
	default:
		return normal
	}
}
