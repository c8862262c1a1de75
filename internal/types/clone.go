package types

// Clone returns a deep copy of the Document. Nil collections come back as empty slices,
// so a cloned Document always serializes every collection as a JSON array.
func (d Document) Clone() Document {
	out := d
	out.Skills = cloneSlice(d.Skills)
	out.Experience = cloneBulleted(d.Experience)
	out.Education = cloneBulleted(d.Education)
	out.Projects = cloneBulleted(d.Projects)
	out.Certifications = cloneSlice(d.Certifications)
	out.Languages = cloneSlice(d.Languages)
	out.Achievements = cloneSlice(d.Achievements)
	out.Volunteering = cloneBulleted(d.Volunteering)
	out.Publications = cloneSlice(d.Publications)
	out.References = cloneSlice(d.References)
	out.CustomSections = CloneCustomSections(d.CustomSections)
	out.Sections = cloneSlice(d.Sections)
	return out
}

// CloneSlice copies a slice of flat values. A nil input yields an empty, non-nil slice.
func CloneSlice[T any](items []T) []T {
	return cloneSlice(items)
}

// CloneBulleted copies a slice of bulleted entities including each bullet list.
func CloneBulleted[T Bulleted[T]](items []T) []T {
	return cloneBulleted(items)
}

// CloneCustomSections copies custom sections including their item lists.
func CloneCustomSections(items []CustomSection) []CustomSection {
	out := make([]CustomSection, len(items))
	for i, c := range items {
		c.Items = cloneSlice(c.Items)
		out[i] = c
	}
	return out
}

// CloneBullets copies a bullet list. A nil input yields an empty, non-nil slice.
func CloneBullets(bullets []string) []string {
	return cloneSlice(bullets)
}

func cloneSlice[T any](items []T) []T {
	out := make([]T, len(items))
	copy(out, items)
	return out
}

func cloneBulleted[T Bulleted[T]](items []T) []T {
	out := make([]T, len(items))
	for i, item := range items {
		out[i] = item.WithBullets(cloneSlice(item.BulletList()))
	}
	return out
}
