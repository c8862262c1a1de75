package editor

import "github.com/jonathan/cv-builder/internal/types"

// Blank constructors. Bulleted entities start with one empty bullet so the editor always
// has a line to type into.

func NewSkill(name string) types.Skill {
	return types.Skill{ID: NewID(), Name: name}
}

func NewExperience() types.Experience {
	return types.Experience{ID: NewID(), Bullets: []string{""}}
}

func NewEducation() types.Education {
	return types.Education{ID: NewID(), Bullets: []string{""}}
}

func NewProject() types.Project {
	return types.Project{ID: NewID(), Bullets: []string{""}}
}

func NewCertification() types.Certification {
	return types.Certification{ID: NewID()}
}

func NewLanguage() types.Language {
	return types.Language{ID: NewID()}
}

func NewAchievement() types.Achievement {
	return types.Achievement{ID: NewID()}
}

func NewVolunteering() types.Volunteering {
	return types.Volunteering{ID: NewID(), Bullets: []string{""}}
}

func NewPublication() types.Publication {
	return types.Publication{ID: NewID()}
}

func NewReference() types.Reference {
	return types.Reference{ID: NewID()}
}

func NewCustomSection(title string) types.CustomSection {
	return types.CustomSection{ID: NewID(), Title: title, Items: []types.CustomItem{}}
}

// AddBullet appends an empty bullet to the entity.
func AddBullet[T types.Bulleted[T]](item T) T {
	return item.WithBullets(Append(item.BulletList(), ""))
}

// SetBullet replaces the bullet at index. An out of range index is a no-op.
func SetBullet[T types.Bulleted[T]](item T, index int, text string) T {
	bullets := types.CloneBullets(item.BulletList())
	if index < 0 || index >= len(bullets) {
		return item.WithBullets(bullets)
	}
	bullets[index] = text
	return item.WithBullets(bullets)
}

// RemoveBullet drops the bullet at index. The last remaining bullet is never removed and
// an out of range index is a no-op.
func RemoveBullet[T types.Bulleted[T]](item T, index int) T {
	bullets := item.BulletList()
	if len(bullets) <= 1 || index < 0 || index >= len(bullets) {
		return item.WithBullets(types.CloneBullets(bullets))
	}
	out := make([]string, 0, len(bullets)-1)
	out = append(out, bullets[:index]...)
	out = append(out, bullets[index+1:]...)
	return item.WithBullets(out)
}
