package rendering

import (
	"testing"

	"github.com/jonathan/cv-builder/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func withTemplate(doc types.Document, name types.TemplateName) types.Document {
	doc.Styles.Template = name
	return doc
}

func blockTypes(page *Page) []types.SectionType {
	var out []types.SectionType
	for _, b := range page.Blocks() {
		out = append(out, b.Type)
	}
	return out
}

func findBlock(page *Page, st types.SectionType) (Block, bool) {
	for _, b := range page.Blocks() {
		if b.Type == st {
			return b, true
		}
	}
	return Block{}, false
}

func TestRender_DefaultDocumentMinimal(t *testing.T) {
	page := Render(types.DefaultDocument())

	assert.Equal(t, types.TemplateMinimal, page.Template)
	assert.Equal(t, "John Anderson", page.Header.FullName)
	assert.Equal(t, "Senior Software Engineer", page.Header.JobTitle)
	require.Len(t, page.Regions, 1)
	assert.Equal(t, RegionMain, page.Regions[0].Name)

	assert.Equal(t, []types.SectionType{
		types.SectionSummary,
		types.SectionExperience,
		types.SectionEducation,
		types.SectionSkills,
		types.SectionProjects,
		types.SectionCertifications,
		types.SectionLanguages,
	}, blockTypes(page))
}

func TestRender_HeaderContactsInFixedOrder(t *testing.T) {
	doc := types.DefaultDocument()
	doc.PersonalInfo.Phone = ""
	doc.PersonalInfo.GitHub = "  "

	page := Render(doc)

	var kinds []ContactKind
	for _, c := range page.Header.Contacts {
		kinds = append(kinds, c.Kind)
	}
	assert.Equal(t, []ContactKind{ContactEmail, ContactLocation, ContactLinkedIn, ContactPortfolio}, kinds)
}

func TestRender_ExperienceEntry(t *testing.T) {
	page := Render(types.DefaultDocument())

	block, ok := findBlock(page, types.SectionExperience)
	require.True(t, ok)
	require.Len(t, block.Entries, 2)

	first := block.Entries[0]
	assert.Equal(t, "Senior Software Engineer", first.Title)
	assert.Equal(t, "TechCorp Inc. • San Francisco, CA", first.Subtitle)
	assert.Equal(t, "Jan 2021 — Present", first.Meta)
	assert.Len(t, first.Bullets, 4)

	assert.Equal(t, "Jun 2018 — Dec 2020", block.Entries[1].Meta)
}

func TestRender_MissingEndDateIsPresent(t *testing.T) {
	doc := types.DefaultDocument()
	doc.Experience[1].EndDate = ""
	doc.Volunteering = []types.Volunteering{{ID: "v", Role: "Mentor", Organization: "Code Club", StartDate: "2022-04"}}
	doc.Sections = enable(doc.Sections, "volunteering")

	page := Render(doc)

	exp, _ := findBlock(page, types.SectionExperience)
	assert.Equal(t, "Jun 2018 — Present", exp.Entries[1].Meta)

	vol, ok := findBlock(page, types.SectionVolunteering)
	require.True(t, ok)
	assert.Equal(t, "Apr 2022 — Present", vol.Entries[0].Meta)
}

func TestRender_EducationAndSupplementalDetails(t *testing.T) {
	doc := types.DefaultDocument()
	doc.References = []types.Reference{{ID: "r", Name: "Grace Hopper", Position: "Rear Admiral", Company: "US Navy", Email: "grace@navy.mil"}}
	doc.Sections = enable(doc.Sections, "references", "achievements")

	page := Render(doc)

	edu, _ := findBlock(page, types.SectionEducation)
	assert.Equal(t, "Bachelor of Science in Computer Science", edu.Entries[0].Title)
	assert.Equal(t, "Sep 2012 — May 2016", edu.Entries[0].Meta)
	assert.Equal(t, []string{"GPA: 3.8"}, edu.Entries[0].Details)

	proj, _ := findBlock(page, types.SectionProjects)
	assert.Equal(t, "React, D3.js, Node.js, ClickHouse", proj.Entries[0].Subtitle)
	assert.Equal(t, "github.com/johnanderson/analytics", proj.Entries[0].Meta)
	assert.Equal(t, []string{"Real-time analytics platform for web applications"}, proj.Entries[0].Details)

	ref, ok := findBlock(page, types.SectionReferences)
	require.True(t, ok)
	assert.Equal(t, "Rear Admiral at US Navy", ref.Entries[0].Subtitle)
	assert.Equal(t, []string{"grace@navy.mil"}, ref.Entries[0].Details)

	ach, ok := findBlock(page, types.SectionAchievements)
	require.True(t, ok)
	assert.Equal(t, "2023", ach.Entries[0].Meta)

	cert, _ := findBlock(page, types.SectionCertifications)
	assert.Equal(t, "Mar 2023", cert.Entries[0].Meta)
}

func TestRender_BlankBulletsHidden(t *testing.T) {
	doc := types.DefaultDocument()
	doc.Experience[0].Bullets = []string{"", "Shipped it", "   "}

	page := Render(doc)
	exp, _ := findBlock(page, types.SectionExperience)
	assert.Equal(t, []string{"Shipped it"}, exp.Entries[0].Bullets)
}

func TestRender_SectionOrderFollowsRegistry(t *testing.T) {
	doc := types.DefaultDocument()
	doc.Sections = []types.Section{
		{ID: "languages", Type: types.SectionLanguages, Title: "Languages", Enabled: true, Order: -5},
		{ID: "summary", Type: types.SectionSummary, Title: "Summary", Enabled: true, Order: 10},
		{ID: "skills", Type: types.SectionSkills, Title: "Skills", Enabled: true, Order: 10},
		{ID: "experience", Type: types.SectionExperience, Title: "Experience", Enabled: false, Order: 0},
		{ID: "personalInfo", Type: types.SectionPersonalInfo, Title: "Personal", Enabled: true, Order: 1},
	}

	page := Render(doc)
	assert.Equal(t, []types.SectionType{types.SectionLanguages, types.SectionSummary, types.SectionSkills}, blockTypes(page))
}

func TestRender_TitlesComeFromRegistry(t *testing.T) {
	doc := types.DefaultDocument()
	doc.Sections[1].Title = "About Me"

	for _, name := range types.TemplateNames {
		page := Render(withTemplate(doc, name))
		summary, ok := findBlock(page, types.SectionSummary)
		require.True(t, ok)
		assert.Equal(t, "About Me", summary.Title)
	}
}

func TestRender_EmptyCollectionsSuppressedInEveryTemplate(t *testing.T) {
	doc := types.DefaultDocument()
	doc.Summary.Content = "   "
	doc.Skills = []types.Skill{}
	doc.Experience = []types.Experience{}
	doc.Education = nil
	doc.Projects = []types.Project{}
	doc.Certifications = []types.Certification{}
	doc.Languages = []types.Language{}
	doc.Sections = enable(doc.Sections, "achievements", "volunteering", "publications", "references")
	doc.Achievements = []types.Achievement{}
	doc.Sections = append(doc.Sections, types.Section{ID: "custom", Type: types.SectionCustom, Title: "Custom", Enabled: true, Order: 20})
	doc.CustomSections = []types.CustomSection{{ID: "c", Title: "Hobbies", Items: []types.CustomItem{{ID: "i", Content: "Chess"}}}}

	for _, name := range types.TemplateNames {
		t.Run(string(name), func(t *testing.T) {
			page := Render(withTemplate(doc, name))
			assert.Empty(t, page.Blocks())
			assert.Equal(t, "John Anderson", page.Header.FullName)
		})
	}
}

func TestRender_TwoColumnRegions(t *testing.T) {
	doc := types.DefaultDocument()
	doc.References = []types.Reference{{ID: "r", Name: "Grace"}}
	doc.Sections = enable(doc.Sections, "references", "achievements")

	page := Render(withTemplate(doc, types.TemplateTwoColumn))

	require.Len(t, page.Regions, 2)
	assert.Equal(t, RegionSidebar, page.Regions[0].Name)
	assert.Equal(t, RegionMain, page.Regions[1].Name)

	sidebar, _ := page.Region(RegionSidebar)
	mainRegion, _ := page.Region(RegionMain)

	var sidebarTypes, mainTypes []types.SectionType
	for _, b := range sidebar.Blocks {
		sidebarTypes = append(sidebarTypes, b.Type)
	}
	for _, b := range mainRegion.Blocks {
		mainTypes = append(mainTypes, b.Type)
	}

	assert.Equal(t, []types.SectionType{types.SectionSkills, types.SectionCertifications, types.SectionLanguages, types.SectionReferences}, sidebarTypes)
	assert.Equal(t, []types.SectionType{types.SectionSummary, types.SectionExperience, types.SectionEducation, types.SectionProjects, types.SectionAchievements}, mainTypes)
}

func TestRender_SameBlocksAcrossTemplates(t *testing.T) {
	doc := types.DefaultDocument()

	byType := func(page *Page) map[types.SectionType]Block {
		out := map[types.SectionType]Block{}
		for _, b := range page.Blocks() {
			out[b.Type] = b
		}
		return out
	}

	reference := byType(Render(withTemplate(doc, types.TemplateMinimal)))
	for _, name := range []types.TemplateName{types.TemplateTwoColumn, types.TemplateCorporate} {
		assert.Equal(t, reference, byType(Render(withTemplate(doc, name))), string(name))
	}
}

func TestRender_PageStyle(t *testing.T) {
	tests := []struct {
		template types.TemplateName
		spacing  types.Spacing
		wantGap  int
	}{
		{types.TemplateMinimal, types.SpacingCompact, 12},
		{types.TemplateMinimal, types.SpacingNormal, 20},
		{types.TemplateMinimal, types.SpacingRelaxed, 28},
		{types.TemplateTwoColumn, types.SpacingCompact, 12},
		{types.TemplateTwoColumn, types.SpacingNormal, 16},
		{types.TemplateTwoColumn, types.SpacingRelaxed, 24},
		{types.TemplateCorporate, types.SpacingCompact, 16},
		{types.TemplateCorporate, types.SpacingNormal, 24},
		{types.TemplateCorporate, types.SpacingRelaxed, 32},
	}

	for _, tt := range tests {
		t.Run(string(tt.template)+"/"+string(tt.spacing), func(t *testing.T) {
			doc := types.DefaultDocument()
			doc.Styles.Template = tt.template
			doc.Styles.Spacing = tt.spacing

			style := Render(doc).Style
			assert.Equal(t, tt.wantGap, style.SectionGapPx)
			assert.Equal(t, 794, style.WidthPx)
			assert.Equal(t, 1122, style.MinHeightPx)
		})
	}
}

func TestRender_FontResolution(t *testing.T) {
	doc := types.DefaultDocument()
	doc.Styles.FontFamily = types.FontMerriweather
	doc.Styles.FontSize = types.FontSizeLarge

	style := Render(doc).Style
	assert.Equal(t, "cv-font-merriweather", style.FontClass)
	assert.Contains(t, style.FontStack, "Merriweather")
	assert.Equal(t, 12, style.FontSizePx)

	doc.Styles.FontFamily = "comic-sans"
	doc.Styles.FontSize = "huge"
	doc.Styles.AccentColor = ""
	style = Render(doc).Style
	assert.Equal(t, "cv-font-inter", style.FontClass)
	assert.Equal(t, 11, style.FontSizePx)
	assert.Equal(t, types.DefaultAccentColor, style.AccentColor)
}

func TestLookup_UnknownFallsBackToMinimal(t *testing.T) {
	assert.Equal(t, types.TemplateMinimal, Lookup("fancy").Name())
	assert.Equal(t, types.TemplateCorporate, Lookup(types.TemplateCorporate).Name())

	doc := withTemplate(types.DefaultDocument(), "fancy")
	assert.Equal(t, types.TemplateMinimal, Render(doc).Template)
}

func TestTemplates(t *testing.T) {
	var names []types.TemplateName
	for _, tmpl := range Templates() {
		names = append(names, tmpl.Name())
	}
	assert.Equal(t, types.TemplateNames, names)
}

func TestRender_Deterministic(t *testing.T) {
	doc := types.DefaultDocument()
	for _, name := range types.TemplateNames {
		assert.Equal(t, Render(withTemplate(doc, name)), Render(withTemplate(doc, name)))
	}
}

func enable(registry []types.Section, ids ...string) []types.Section {
	out := types.CloneSlice(registry)
	for i := range out {
		for _, id := range ids {
			if out[i].ID == id {
				out[i].Enabled = true
			}
		}
	}
	return out
}
