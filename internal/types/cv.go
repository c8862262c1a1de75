// Package types provides type definitions for structured data used throughout the cv-builder system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// Document is the complete CV aggregate: content, section registry and style configuration.
// A Document is treated as an immutable value; mutations go through the store's reducer.
type Document struct {
	PersonalInfo   PersonalInfo    `json:"personalInfo"`
	Summary        Summary         `json:"summary"`
	Skills         []Skill         `json:"skills"`
	Experience     []Experience    `json:"experience"`
	Education      []Education     `json:"education"`
	Projects       []Project       `json:"projects"`
	Certifications []Certification `json:"certifications"`
	Languages      []Language      `json:"languages"`
	Achievements   []Achievement   `json:"achievements"`
	Volunteering   []Volunteering  `json:"volunteering"`
	Publications   []Publication   `json:"publications"`
	References     []Reference     `json:"references"`
	CustomSections []CustomSection `json:"customSections"`
	Sections       []Section       `json:"sections"`
	Styles         StyleConfig     `json:"styles"`
}

// PersonalInfo is the single owner record rendered in every template's header.
type PersonalInfo struct {
	FullName  string `json:"fullName"`
	JobTitle  string `json:"jobTitle"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Location  string `json:"location"`
	LinkedIn  string `json:"linkedin,omitempty"`
	GitHub    string `json:"github,omitempty"`
	Portfolio string `json:"portfolio,omitempty"`
	Photo     string `json:"photo,omitempty"`
}

// Summary holds the free-text professional summary.
type Summary struct {
	Content string `json:"content"`
}

// Entity is implemented by every item of a repeated collection.
type Entity interface {
	EntityID() string
}

// Skill is one entry of the skills collection.
type Skill struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Category string `json:"category,omitempty"`
}

// Experience is one position in the work history.
type Experience struct {
	ID        string   `json:"id"`
	Company   string   `json:"company"`
	Position  string   `json:"position"`
	Location  string   `json:"location"`
	StartDate string   `json:"startDate"`
	EndDate   string   `json:"endDate"`
	Current   bool     `json:"current"`
	Bullets   []string `json:"bullets"`
}

// Education is one degree or course of study.
type Education struct {
	ID          string   `json:"id"`
	Institution string   `json:"institution"`
	Degree      string   `json:"degree"`
	Field       string   `json:"field"`
	Location    string   `json:"location"`
	StartDate   string   `json:"startDate"`
	EndDate     string   `json:"endDate"`
	GPA         string   `json:"gpa,omitempty"`
	Bullets     []string `json:"bullets"`
}

// Project is a personal or professional project.
type Project struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Description  string   `json:"description"`
	Technologies string   `json:"technologies"`
	Link         string   `json:"link,omitempty"`
	Bullets      []string `json:"bullets"`
}

// Certification is a credential issued by a third party.
type Certification struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Issuer string `json:"issuer"`
	Date   string `json:"date"`
	Link   string `json:"link,omitempty"`
}

// Language is a spoken language and its proficiency.
type Language struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Proficiency string `json:"proficiency"`
}

// Achievement is an award or recognition. Date is free text and rendered as-is.
type Achievement struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Date        string `json:"date,omitempty"`
}

// Volunteering is an unpaid role. An empty EndDate means the role is ongoing.
type Volunteering struct {
	ID           string   `json:"id"`
	Organization string   `json:"organization"`
	Role         string   `json:"role"`
	StartDate    string   `json:"startDate"`
	EndDate      string   `json:"endDate"`
	Bullets      []string `json:"bullets"`
}

// Publication is an article, paper or book.
type Publication struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Publisher string `json:"publisher"`
	Date      string `json:"date"`
	Link      string `json:"link,omitempty"`
}

// Reference is a professional contact.
type Reference struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Position string `json:"position"`
	Company  string `json:"company"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
}

// CustomSection is a user-defined list of free-text items. Reserved: carried by the
// schema and reducer but not rendered by any template.
type CustomSection struct {
	ID    string       `json:"id"`
	Title string       `json:"title"`
	Items []CustomItem `json:"items"`
}

// CustomItem is one line of a CustomSection.
type CustomItem struct {
	ID      string `json:"id"`
	Content string `json:"content"`
}

func (s Skill) EntityID() string         { return s.ID }
func (e Experience) EntityID() string    { return e.ID }
func (e Education) EntityID() string     { return e.ID }
func (p Project) EntityID() string       { return p.ID }
func (c Certification) EntityID() string { return c.ID }
func (l Language) EntityID() string      { return l.ID }
func (a Achievement) EntityID() string   { return a.ID }
func (v Volunteering) EntityID() string  { return v.ID }
func (p Publication) EntityID() string   { return p.ID }
func (r Reference) EntityID() string     { return r.ID }
func (c CustomSection) EntityID() string { return c.ID }

// Bulleted is implemented by entities that carry a position-addressed bullet list.
type Bulleted[T any] interface {
	Entity
	BulletList() []string
	WithBullets(bullets []string) T
}

func (e Experience) BulletList() []string { return e.Bullets }

func (e Experience) WithBullets(bullets []string) Experience {
	e.Bullets = bullets
	return e
}

func (e Education) BulletList() []string { return e.Bullets }

func (e Education) WithBullets(bullets []string) Education {
	e.Bullets = bullets
	return e
}

func (p Project) BulletList() []string { return p.Bullets }

func (p Project) WithBullets(bullets []string) Project {
	p.Bullets = bullets
	return p
}

func (v Volunteering) BulletList() []string { return v.Bullets }

func (v Volunteering) WithBullets(bullets []string) Volunteering {
	v.Bullets = bullets
	return v
}
