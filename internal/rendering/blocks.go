package rendering

import (
	"strings"

	"github.com/jonathan/cv-builder/internal/types"
)

// buildHeader collects the personal info shown by every template.
func buildHeader(info types.PersonalInfo) Header {
	candidates := []Contact{
		{Kind: ContactEmail, Value: info.Email},
		{Kind: ContactPhone, Value: info.Phone},
		{Kind: ContactLocation, Value: info.Location},
		{Kind: ContactLinkedIn, Value: info.LinkedIn},
		{Kind: ContactGitHub, Value: info.GitHub},
		{Kind: ContactPortfolio, Value: info.Portfolio},
	}

	contacts := make([]Contact, 0, len(candidates))
	for _, c := range candidates {
		if strings.TrimSpace(c.Value) != "" {
			contacts = append(contacts, c)
		}
	}

	return Header{
		FullName: info.FullName,
		JobTitle: info.JobTitle,
		Contacts: contacts,
	}
}

// buildBlock renders one section of doc. It reports false when the section has nothing to
// show: its backing collection is empty, the summary is blank, or the type has no renderer.
// Every template goes through here, so block text is the same whatever the layout.
func buildBlock(doc types.Document, section types.Section) (Block, bool) {
	block := Block{SectionID: section.ID, Type: section.Type, Title: section.Title}

	switch section.Type {
	case types.SectionSummary:
		if strings.TrimSpace(doc.Summary.Content) == "" {
			return Block{}, false
		}
		block.Kind = BlockText
		block.Text = doc.Summary.Content

	case types.SectionSkills:
		for _, s := range doc.Skills {
			if strings.TrimSpace(s.Name) != "" {
				block.Chips = append(block.Chips, s.Name)
			}
		}
		if len(block.Chips) == 0 {
			return Block{}, false
		}
		block.Kind = BlockChips

	case types.SectionExperience:
		for _, e := range doc.Experience {
			ongoing := e.Current || (e.EndDate == "" && e.StartDate != "")
			block.Entries = append(block.Entries, Entry{
				Title:    e.Position,
				Subtitle: joinNonEmpty(" • ", e.Company, e.Location),
				Meta:     FormatRange(e.StartDate, e.EndDate, ongoing),
				Bullets:  visibleBullets(e.Bullets),
			})
		}

	case types.SectionEducation:
		for _, e := range doc.Education {
			var details []string
			if strings.TrimSpace(e.GPA) != "" {
				details = append(details, "GPA: "+e.GPA)
			}
			block.Entries = append(block.Entries, Entry{
				Title:    joinNonEmpty(" in ", e.Degree, e.Field),
				Subtitle: joinNonEmpty(" • ", e.Institution, e.Location),
				Meta:     FormatRange(e.StartDate, e.EndDate, false),
				Details:  details,
				Bullets:  visibleBullets(e.Bullets),
			})
		}

	case types.SectionProjects:
		for _, p := range doc.Projects {
			block.Entries = append(block.Entries, Entry{
				Title:    p.Name,
				Subtitle: p.Technologies,
				Meta:     p.Link,
				Details:  nonEmpty(p.Description),
				Bullets:  visibleBullets(p.Bullets),
			})
		}

	case types.SectionCertifications:
		for _, c := range doc.Certifications {
			block.Entries = append(block.Entries, Entry{
				Title:    c.Name,
				Subtitle: c.Issuer,
				Meta:     FormatDate(c.Date),
				Details:  nonEmpty(c.Link),
			})
		}

	case types.SectionLanguages:
		for _, l := range doc.Languages {
			block.Entries = append(block.Entries, Entry{
				Title:    l.Name,
				Subtitle: l.Proficiency,
			})
		}

	case types.SectionAchievements:
		for _, a := range doc.Achievements {
			block.Entries = append(block.Entries, Entry{
				Title:   a.Title,
				Meta:    a.Date,
				Details: nonEmpty(a.Description),
			})
		}

	case types.SectionVolunteering:
		for _, v := range doc.Volunteering {
			block.Entries = append(block.Entries, Entry{
				Title:    v.Role,
				Subtitle: v.Organization,
				Meta:     FormatRange(v.StartDate, v.EndDate, v.EndDate == "" && v.StartDate != ""),
				Bullets:  visibleBullets(v.Bullets),
			})
		}

	case types.SectionPublications:
		for _, p := range doc.Publications {
			block.Entries = append(block.Entries, Entry{
				Title:    p.Title,
				Subtitle: p.Publisher,
				Meta:     FormatDate(p.Date),
				Details:  nonEmpty(p.Link),
			})
		}

	case types.SectionReferences:
		for _, r := range doc.References {
			block.Entries = append(block.Entries, Entry{
				Title:    r.Name,
				Subtitle: joinNonEmpty(" at ", r.Position, r.Company),
				Details:  nonEmpty(r.Email, r.Phone),
			})
		}

	default:
		// personalInfo lives in the header and custom sections are not rendered.
		return Block{}, false
	}

	if block.Kind == "" {
		if len(block.Entries) == 0 {
			return Block{}, false
		}
		block.Kind = BlockEntries
	}
	return block, true
}

// visibleBullets drops whitespace-only bullets.
func visibleBullets(bullets []string) []string {
	var out []string
	for _, b := range bullets {
		if strings.TrimSpace(b) != "" {
			out = append(out, b)
		}
	}
	return out
}

func nonEmpty(values ...string) []string {
	var out []string
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			out = append(out, v)
		}
	}
	return out
}

func joinNonEmpty(sep string, values ...string) string {
	return strings.Join(nonEmpty(values...), sep)
}
