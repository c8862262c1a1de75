// Package sections computes render order and region placement from the section registry.
package sections

import (
	"sort"

	"github.com/jonathan/cv-builder/internal/types"
)

// Ordered returns the enabled sections sorted ascending by Order. Ties keep their
// registry position. The personalInfo section is always excluded: every template renders
// it in its own header region.
func Ordered(registry []types.Section) []types.Section {
	out := make([]types.Section, 0, len(registry))
	for _, s := range registry {
		if !s.Enabled || s.Type == types.SectionPersonalInfo {
			continue
		}
		out = append(out, s)
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Order < out[j].Order
	})
	return out
}

// Sorted returns every section, enabled or not, in registry display order.
// Editors list sections this way.
func Sorted(registry []types.Section) []types.Section {
	out := types.CloneSlice(registry)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Order < out[j].Order
	})
	return out
}

// Region is a named area of a page holding an ordered run of sections.
type Region struct {
	Name     string
	Sections []types.Section
}

// RegionTable statically assigns section types to named regions.
// Types not listed in Assign land in Default.
type RegionTable struct {
	// Names lists the regions in layout order. Default must be one of them.
	Names   []string
	Default string
	Assign  map[types.SectionType]string
}

// RegionFor returns the region a section type is placed in.
func (t RegionTable) RegionFor(st types.SectionType) string {
	if name, ok := t.Assign[st]; ok {
		return name
	}
	return t.Default
}

// Partition splits the ordered sections of a registry into the table's regions.
// Every region named in the table is present in the result, possibly empty, and each
// region preserves the relative order produced by Ordered.
func Partition(registry []types.Section, table RegionTable) []Region {
	names := table.Names
	if len(names) == 0 {
		names = []string{table.Default}
	}

	regions := make([]Region, len(names))
	index := make(map[string]int, len(names))
	for i, name := range names {
		regions[i] = Region{Name: name, Sections: []types.Section{}}
		index[name] = i
	}

	for _, s := range Ordered(registry) {
		i, ok := index[table.RegionFor(s.Type)]
		if !ok {
			i = index[table.Default]
		}
		regions[i].Sections = append(regions[i].Sections, s)
	}
	return regions
}
