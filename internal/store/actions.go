// Package store holds the single CV Document, applies actions to it and keeps the
// durable snapshot in sync.
package store

import "github.com/jonathan/cv-builder/internal/types"

// ActionType is the wire tag of an action.
type ActionType string

const (
	ActionSetDocument          ActionType = "SET_CV_DATA"
	ActionResetDocument        ActionType = "RESET_CV_DATA"
	ActionUpdatePersonalInfo   ActionType = "UPDATE_PERSONAL_INFO"
	ActionUpdateSummary        ActionType = "UPDATE_SUMMARY"
	ActionUpdateSkills         ActionType = "UPDATE_SKILLS"
	ActionUpdateExperience     ActionType = "UPDATE_EXPERIENCE"
	ActionUpdateEducation      ActionType = "UPDATE_EDUCATION"
	ActionUpdateProjects       ActionType = "UPDATE_PROJECTS"
	ActionUpdateCertifications ActionType = "UPDATE_CERTIFICATIONS"
	ActionUpdateLanguages      ActionType = "UPDATE_LANGUAGES"
	ActionUpdateAchievements   ActionType = "UPDATE_ACHIEVEMENTS"
	ActionUpdateVolunteering   ActionType = "UPDATE_VOLUNTEERING"
	ActionUpdatePublications   ActionType = "UPDATE_PUBLICATIONS"
	ActionUpdateReferences     ActionType = "UPDATE_REFERENCES"
	ActionUpdateCustomSections ActionType = "UPDATE_CUSTOM_SECTIONS"
	ActionUpdateStyles         ActionType = "UPDATE_STYLES"
	ActionToggleSection        ActionType = "TOGGLE_SECTION"
	ActionReplaceSections      ActionType = "REPLACE_SECTIONS"

	// Older tags that carry the same payload as REPLACE_SECTIONS.
	ActionUpdateSections  ActionType = "UPDATE_SECTIONS"
	ActionReorderSections ActionType = "REORDER_SECTIONS"
)

// Action is a request to change the Document. Each action replaces exactly one slice of it.
type Action interface {
	Type() ActionType
}

// SetDocument replaces the whole Document.
type SetDocument struct {
	Document types.Document
}

// UpdatePersonalInfo merges Patch over personalInfo.
type UpdatePersonalInfo struct {
	Patch types.PersonalInfoPatch
}

// UpdateSummary replaces the summary content.
type UpdateSummary struct {
	Content string
}

// UpdateSkills replaces the skills collection.
type UpdateSkills struct {
	Skills []types.Skill
}

// UpdateExperience replaces the experience collection.
type UpdateExperience struct {
	Experience []types.Experience
}

// UpdateEducation replaces the education collection.
type UpdateEducation struct {
	Education []types.Education
}

// UpdateProjects replaces the projects collection.
type UpdateProjects struct {
	Projects []types.Project
}

// UpdateCertifications replaces the certifications collection.
type UpdateCertifications struct {
	Certifications []types.Certification
}

// UpdateLanguages replaces the languages collection.
type UpdateLanguages struct {
	Languages []types.Language
}

// UpdateAchievements replaces the achievements collection.
type UpdateAchievements struct {
	Achievements []types.Achievement
}

// UpdateVolunteering replaces the volunteering collection.
type UpdateVolunteering struct {
	Volunteering []types.Volunteering
}

// UpdatePublications replaces the publications collection.
type UpdatePublications struct {
	Publications []types.Publication
}

// UpdateReferences replaces the references collection.
type UpdateReferences struct {
	References []types.Reference
}

// UpdateCustomSections replaces the custom sections collection.
type UpdateCustomSections struct {
	CustomSections []types.CustomSection
}

// UpdateStyles merges Patch over styles.
type UpdateStyles struct {
	Patch types.StylePatch
}

// ToggleSection flips the enabled flag of the section with the given id.
type ToggleSection struct {
	ID string
}

// ReplaceSections replaces the whole section registry. Used for reordering.
type ReplaceSections struct {
	Sections []types.Section
}

// Unknown carries an action tag this package does not recognize. It reduces to a no-op.
type Unknown struct {
	Tag     string
	Payload []byte
}

func (SetDocument) Type() ActionType          { return ActionSetDocument }
func (UpdatePersonalInfo) Type() ActionType   { return ActionUpdatePersonalInfo }
func (UpdateSummary) Type() ActionType        { return ActionUpdateSummary }
func (UpdateSkills) Type() ActionType         { return ActionUpdateSkills }
func (UpdateExperience) Type() ActionType     { return ActionUpdateExperience }
func (UpdateEducation) Type() ActionType      { return ActionUpdateEducation }
func (UpdateProjects) Type() ActionType       { return ActionUpdateProjects }
func (UpdateCertifications) Type() ActionType { return ActionUpdateCertifications }
func (UpdateLanguages) Type() ActionType      { return ActionUpdateLanguages }
func (UpdateAchievements) Type() ActionType   { return ActionUpdateAchievements }
func (UpdateVolunteering) Type() ActionType   { return ActionUpdateVolunteering }
func (UpdatePublications) Type() ActionType   { return ActionUpdatePublications }
func (UpdateReferences) Type() ActionType     { return ActionUpdateReferences }
func (UpdateCustomSections) Type() ActionType { return ActionUpdateCustomSections }
func (UpdateStyles) Type() ActionType         { return ActionUpdateStyles }
func (ToggleSection) Type() ActionType        { return ActionToggleSection }
func (ReplaceSections) Type() ActionType      { return ActionReplaceSections }
func (u Unknown) Type() ActionType            { return ActionType(u.Tag) }
