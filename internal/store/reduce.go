package store

import "github.com/jonathan/cv-builder/internal/types"

// Reduce returns the Document that results from applying action to doc. It is total:
// nil and unrecognized actions return doc unchanged. The result never shares collection
// memory with doc or with the action payload.
func Reduce(doc types.Document, action Action) types.Document {
	next, _ := reduce(doc, action)
	return next
}

// reduce also reports whether the action was recognized.
func reduce(doc types.Document, action Action) (types.Document, bool) {
	switch a := action.(type) {
	case SetDocument:
		next := a.Document.Clone()
		next.Skills = uniqueByID(next.Skills)
		next.Experience = uniqueByID(next.Experience)
		next.Education = uniqueByID(next.Education)
		next.Projects = uniqueByID(next.Projects)
		next.Certifications = uniqueByID(next.Certifications)
		next.Languages = uniqueByID(next.Languages)
		next.Achievements = uniqueByID(next.Achievements)
		next.Volunteering = uniqueByID(next.Volunteering)
		next.Publications = uniqueByID(next.Publications)
		next.References = uniqueByID(next.References)
		next.CustomSections = uniqueByID(next.CustomSections)
		next.Sections = knownSections(next.Sections)
		return next, true
	case UpdatePersonalInfo:
		next := doc.Clone()
		next.PersonalInfo = a.Patch.Apply(next.PersonalInfo)
		return next, true
	case UpdateSummary:
		next := doc.Clone()
		next.Summary.Content = a.Content
		return next, true
	case UpdateSkills:
		next := doc.Clone()
		next.Skills = uniqueByID(types.CloneSlice(a.Skills))
		return next, true
	case UpdateExperience:
		next := doc.Clone()
		next.Experience = uniqueByID(types.CloneBulleted(a.Experience))
		return next, true
	case UpdateEducation:
		next := doc.Clone()
		next.Education = uniqueByID(types.CloneBulleted(a.Education))
		return next, true
	case UpdateProjects:
		next := doc.Clone()
		next.Projects = uniqueByID(types.CloneBulleted(a.Projects))
		return next, true
	case UpdateCertifications:
		next := doc.Clone()
		next.Certifications = uniqueByID(types.CloneSlice(a.Certifications))
		return next, true
	case UpdateLanguages:
		next := doc.Clone()
		next.Languages = uniqueByID(types.CloneSlice(a.Languages))
		return next, true
	case UpdateAchievements:
		next := doc.Clone()
		next.Achievements = uniqueByID(types.CloneSlice(a.Achievements))
		return next, true
	case UpdateVolunteering:
		next := doc.Clone()
		next.Volunteering = uniqueByID(types.CloneBulleted(a.Volunteering))
		return next, true
	case UpdatePublications:
		next := doc.Clone()
		next.Publications = uniqueByID(types.CloneSlice(a.Publications))
		return next, true
	case UpdateReferences:
		next := doc.Clone()
		next.References = uniqueByID(types.CloneSlice(a.References))
		return next, true
	case UpdateCustomSections:
		next := doc.Clone()
		next.CustomSections = uniqueByID(types.CloneCustomSections(a.CustomSections))
		return next, true
	case UpdateStyles:
		next := doc.Clone()
		next.Styles = a.Patch.Apply(next.Styles)
		return next, true
	case ToggleSection:
		next := doc.Clone()
		for i := range next.Sections {
			if next.Sections[i].ID == a.ID {
				next.Sections[i].Enabled = !next.Sections[i].Enabled
			}
		}
		return next, true
	case ReplaceSections:
		next := doc.Clone()
		next.Sections = knownSections(types.CloneSlice(a.Sections))
		return next, true
	default:
		return doc, false
	}
}

// uniqueByID drops every entity whose id already appeared earlier in items.
// items must already be a private copy.
func uniqueByID[T types.Entity](items []T) []T {
	seen := make(map[string]bool, len(items))
	out := items[:0]
	for _, item := range items {
		id := item.EntityID()
		if seen[id] {
			continue
		}
		seen[id] = true
		out = append(out, item)
	}
	return out
}

// knownSections drops sections of an unknown type and later duplicates of an id, so the
// registry always passes the snapshot schema on the next load.
func knownSections(sections []types.Section) []types.Section {
	seen := make(map[string]bool, len(sections))
	out := sections[:0]
	for _, s := range sections {
		if !s.Type.Valid() || seen[s.ID] {
			continue
		}
		seen[s.ID] = true
		out = append(out, s)
	}
	return out
}
