// Package types provides type definitions for structured data used throughout the resume-builder system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// NormalizedResumeData is the render-ready form of a resume: display
// strings pre-computed, field-name aliases resolved, dates formatted.
// It is produced fresh for every render and never persisted.
type NormalizedResumeData struct {
	PersonalInfo   *PersonalInfo          `json:"personalInfo,omitempty"`
	Summary        string                 `json:"summary,omitempty"`
	Experience     []NormalizedExperience `json:"experience,omitempty"`
	Education      []NormalizedEducation  `json:"education,omitempty"`
	Skills         []NormalizedSkillGroup `json:"skills,omitempty"`
	Projects       []NormalizedProject    `json:"projects,omitempty"`
	Certifications []Certification        `json:"certifications,omitempty"`
}

// NormalizedExperience carries a computed display duration alongside the
// original entry fields.
type NormalizedExperience struct {
	Experience
	Duration string `json:"duration,omitempty"`
}

// NormalizedEducation carries a computed graduation year display string.
type NormalizedEducation struct {
	Education
	GraduationYear string `json:"graduationYear,omitempty"`
}

// NormalizedSkillGroup is a category with its items joined into a single
// display string.
type NormalizedSkillGroup struct {
	Category   string `json:"category,omitempty"`
	SkillsList string `json:"skillsList,omitempty"`
}

// NormalizedProject has technologies joined into a display string and the
// free-text description split into bullets. Description is intentionally
// cleared so templates render bullets exactly once.
type NormalizedProject struct {
	Title        string   `json:"title,omitempty"`
	Technologies string   `json:"technologies,omitempty"`
	Year         string   `json:"year,omitempty"`
	Link         string   `json:"link,omitempty"`
	Bullets      []string `json:"bullets,omitempty"`
}

// HasSections reports whether any renderable section beyond the header is
// present. Used to short-circuit empty-document edge cases in layouts.
func (n *NormalizedResumeData) HasSections() bool {
	return n.Summary != "" ||
		len(n.Experience) > 0 ||
		len(n.Education) > 0 ||
		len(n.Skills) > 0 ||
		len(n.Projects) > 0 ||
		len(n.Certifications) > 0
}
