package types

// SectionType identifies which collection or record a Section renders.
// The mapping from type to content is fixed; it is not configurable per section.
type SectionType string

const (
	SectionPersonalInfo   SectionType = "personalInfo"
	SectionSummary        SectionType = "summary"
	SectionSkills         SectionType = "skills"
	SectionExperience     SectionType = "experience"
	SectionEducation      SectionType = "education"
	SectionProjects       SectionType = "projects"
	SectionCertifications SectionType = "certifications"
	SectionLanguages      SectionType = "languages"
	SectionAchievements   SectionType = "achievements"
	SectionVolunteering   SectionType = "volunteering"
	SectionPublications   SectionType = "publications"
	SectionReferences     SectionType = "references"
	SectionCustom         SectionType = "custom"
)

// AllSectionTypes lists the 13 section kinds in their canonical order.
var AllSectionTypes = []SectionType{
	SectionPersonalInfo,
	SectionSummary,
	SectionSkills,
	SectionExperience,
	SectionEducation,
	SectionProjects,
	SectionCertifications,
	SectionLanguages,
	SectionAchievements,
	SectionVolunteering,
	SectionPublications,
	SectionReferences,
	SectionCustom,
}

// Valid reports whether t is one of the known section kinds.
func (t SectionType) Valid() bool {
	for _, known := range AllSectionTypes {
		if t == known {
			return true
		}
	}
	return false
}

// Section is one slot of the section registry. Order need not be contiguous or unique.
type Section struct {
	ID      string      `json:"id"`
	Type    SectionType `json:"type"`
	Title   string      `json:"title"`
	Enabled bool        `json:"enabled"`
	Order   int         `json:"order"`
}

// FindSection returns the section with the given id.
func FindSection(sections []Section, id string) (Section, bool) {
	for _, s := range sections {
		if s.ID == id {
			return s, true
		}
	}
	return Section{}, false
}
