package types

// StorageKey is the fixed key of the durable snapshot slot.
const StorageKey = "cv-builder-data"

// DefaultAccentColor is the accent color of a freshly created Document.
const DefaultAccentColor = "#3b82f6"

// DefaultSections returns the 12-entry default section registry.
func DefaultSections() []Section {
	return []Section{
		{ID: "personalInfo", Type: SectionPersonalInfo, Title: "Personal Info", Enabled: true, Order: 0},
		{ID: "summary", Type: SectionSummary, Title: "Professional Summary", Enabled: true, Order: 1},
		{ID: "experience", Type: SectionExperience, Title: "Work Experience", Enabled: true, Order: 2},
		{ID: "education", Type: SectionEducation, Title: "Education", Enabled: true, Order: 3},
		{ID: "skills", Type: SectionSkills, Title: "Skills", Enabled: true, Order: 4},
		{ID: "projects", Type: SectionProjects, Title: "Projects", Enabled: true, Order: 5},
		{ID: "certifications", Type: SectionCertifications, Title: "Certifications", Enabled: true, Order: 6},
		{ID: "languages", Type: SectionLanguages, Title: "Languages", Enabled: true, Order: 7},
		{ID: "achievements", Type: SectionAchievements, Title: "Achievements", Enabled: false, Order: 8},
		{ID: "volunteering", Type: SectionVolunteering, Title: "Volunteering", Enabled: false, Order: 9},
		{ID: "publications", Type: SectionPublications, Title: "Publications", Enabled: false, Order: 10},
		{ID: "references", Type: SectionReferences, Title: "References", Enabled: false, Order: 11},
	}
}

// DefaultStyles returns the style configuration of a freshly created Document.
func DefaultStyles() StyleConfig {
	return StyleConfig{
		Template:    TemplateMinimal,
		FontFamily:  FontInter,
		FontSize:    FontSizeMedium,
		AccentColor: DefaultAccentColor,
		Spacing:     SpacingNormal,
	}
}

// DefaultDocument returns the built-in Document seeded with example content.
// Every call returns a fresh value that shares no memory with previous calls.
func DefaultDocument() Document {
	return Document{
		PersonalInfo: PersonalInfo{
			FullName:  "John Anderson",
			JobTitle:  "Senior Software Engineer",
			Email:     "john.anderson@email.com",
			Phone:     "+1 (555) 123-4567",
			Location:  "San Francisco, CA",
			LinkedIn:  "linkedin.com/in/johnanderson",
			GitHub:    "github.com/johnanderson",
			Portfolio: "johnanderson.dev",
		},
		Summary: Summary{
			Content: "Results-driven software engineer with 8+ years of experience building scalable web applications. " +
				"Passionate about clean code, user experience, and mentoring junior developers. " +
				"Led teams of 5-10 engineers to deliver products serving millions of users.",
		},
		Skills: []Skill{
			{ID: "1", Name: "React", Category: "Frontend"},
			{ID: "2", Name: "TypeScript", Category: "Languages"},
			{ID: "3", Name: "Node.js", Category: "Backend"},
			{ID: "4", Name: "PostgreSQL", Category: "Database"},
			{ID: "5", Name: "AWS", Category: "Cloud"},
			{ID: "6", Name: "Docker", Category: "DevOps"},
			{ID: "7", Name: "GraphQL", Category: "API"},
			{ID: "8", Name: "Python", Category: "Languages"},
		},
		Experience: []Experience{
			{
				ID:        "1",
				Company:   "TechCorp Inc.",
				Position:  "Senior Software Engineer",
				Location:  "San Francisco, CA",
				StartDate: "2021-01",
				EndDate:   "",
				Current:   true,
				Bullets: []string{
					"Led development of microservices architecture serving 2M+ daily active users",
					"Reduced API response times by 40% through database optimization and caching strategies",
					"Mentored team of 5 junior developers, conducting code reviews and pair programming sessions",
					"Implemented CI/CD pipelines reducing deployment time from 2 hours to 15 minutes",
				},
			},
			{
				ID:        "2",
				Company:   "StartupXYZ",
				Position:  "Full Stack Developer",
				Location:  "Remote",
				StartDate: "2018-06",
				EndDate:   "2020-12",
				Current:   false,
				Bullets: []string{
					"Built React-based dashboard used by 500+ enterprise clients",
					"Developed RESTful APIs handling 100K+ requests per minute",
					"Collaborated with design team to improve UX, increasing user retention by 25%",
				},
			},
		},
		Education: []Education{
			{
				ID:          "1",
				Institution: "University of California, Berkeley",
				Degree:      "Bachelor of Science",
				Field:       "Computer Science",
				Location:    "Berkeley, CA",
				StartDate:   "2012-09",
				EndDate:     "2016-05",
				GPA:         "3.8",
				Bullets:     []string{"Magna Cum Laude", "Teaching Assistant for Data Structures"},
			},
		},
		Projects: []Project{
			{
				ID:           "1",
				Name:         "Open Source Analytics Dashboard",
				Description:  "Real-time analytics platform for web applications",
				Technologies: "React, D3.js, Node.js, ClickHouse",
				Link:         "github.com/johnanderson/analytics",
				Bullets: []string{
					"Built open-source analytics tool with 2K+ GitHub stars",
					"Processes 1M+ events per day with sub-second query times",
				},
			},
		},
		Certifications: []Certification{
			{ID: "1", Name: "AWS Solutions Architect Professional", Issuer: "Amazon Web Services", Date: "2023-03"},
		},
		Languages: []Language{
			{ID: "1", Name: "English", Proficiency: "Native"},
			{ID: "2", Name: "Spanish", Proficiency: "Professional"},
		},
		Achievements: []Achievement{
			{
				ID:          "1",
				Title:       "Engineering Excellence Award",
				Description: "Recognized for outstanding contributions to platform reliability",
				Date:        "2023",
			},
		},
		Volunteering:   []Volunteering{},
		Publications:   []Publication{},
		References:     []Reference{},
		CustomSections: []CustomSection{},
		Sections:       DefaultSections(),
		Styles:         DefaultStyles(),
	}
}
