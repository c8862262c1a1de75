package types

// PersonalInfoPatch is a shallow merge patch over PersonalInfo. Nil fields are left
// untouched; a non-nil empty string clears the field.
type PersonalInfoPatch struct {
	FullName  *string `json:"fullName,omitempty"`
	JobTitle  *string `json:"jobTitle,omitempty"`
	Email     *string `json:"email,omitempty"`
	Phone     *string `json:"phone,omitempty"`
	Location  *string `json:"location,omitempty"`
	LinkedIn  *string `json:"linkedin,omitempty"`
	GitHub    *string `json:"github,omitempty"`
	Portfolio *string `json:"portfolio,omitempty"`
	Photo     *string `json:"photo,omitempty"`
}

// Empty reports whether the patch changes nothing.
func (p PersonalInfoPatch) Empty() bool {
	return p.FullName == nil && p.JobTitle == nil && p.Email == nil && p.Phone == nil &&
		p.Location == nil && p.LinkedIn == nil && p.GitHub == nil && p.Portfolio == nil && p.Photo == nil
}

// Apply returns info with every non-nil field of p merged over it.
func (p PersonalInfoPatch) Apply(info PersonalInfo) PersonalInfo {
	set := func(dst *string, src *string) {
		if src != nil {
			*dst = *src
		}
	}
	set(&info.FullName, p.FullName)
	set(&info.JobTitle, p.JobTitle)
	set(&info.Email, p.Email)
	set(&info.Phone, p.Phone)
	set(&info.Location, p.Location)
	set(&info.LinkedIn, p.LinkedIn)
	set(&info.GitHub, p.GitHub)
	set(&info.Portfolio, p.Portfolio)
	set(&info.Photo, p.Photo)
	return info
}
