// Package types provides type definitions for structured data used throughout the resume-builder system.
//
//nolint:revive // types is a standard Go package name pattern
package types

import "encoding/json"

// ResumeData is the raw resume a caller submits. Every top-level field is
// optional; an absent field means the corresponding section is suppressed
// in the rendered document rather than rendered empty.
type ResumeData struct {
	PersonalInfo   *PersonalInfo   `json:"personalInfo,omitempty"`
	Summary        string          `json:"summary,omitempty"`
	Experience     []Experience    `json:"experience,omitempty"`
	Education      []Education     `json:"education,omitempty"`
	Skills         []SkillGroup    `json:"skills,omitempty"`
	Projects       []Project       `json:"projects,omitempty"`
	Certifications []Certification `json:"certifications,omitempty"`
}

// PersonalInfo holds the header contact block. All fields optional.
type PersonalInfo struct {
	FullName  string `json:"fullName,omitempty"`
	Title     string `json:"title,omitempty"`
	Email     string `json:"email,omitempty"`
	Phone     string `json:"phone,omitempty"`
	Location  string `json:"location,omitempty"`
	LinkedIn  string `json:"linkedin,omitempty"`
	GitHub    string `json:"github,omitempty"`
	Portfolio string `json:"portfolio,omitempty"`
}

// Experience is one work-history entry. Dates are strings in YYYY-MM or
// free form; Current marks an ongoing position.
type Experience struct {
	Company   string   `json:"company,omitempty"`
	Position  string   `json:"position,omitempty"`
	Location  string   `json:"location,omitempty"`
	StartDate string   `json:"startDate,omitempty"`
	EndDate   string   `json:"endDate,omitempty"`
	Current   bool     `json:"current,omitempty"`
	Bullets   []string `json:"bullets,omitempty"`
}

// Education is one education entry.
type Education struct {
	School    string `json:"school,omitempty"`
	Degree    string `json:"degree,omitempty"`
	Field     string `json:"field,omitempty"`
	Location  string `json:"location,omitempty"`
	StartDate string `json:"startDate,omitempty"`
	EndDate   string `json:"endDate,omitempty"`
	GPA       string `json:"gpa,omitempty"`
}

// SkillGroup is a category label plus its skill items. Callers have used
// three field names for the items over time: "items" (current), "skills"
// (legacy), and "skillsList" (pre-joined display string). The aliases are
// resolved here, once, during unmarshaling.
type SkillGroup struct {
	Category string
	Items    StringOrList
}

// skillGroupWire mirrors the accepted wire shapes for a skill group.
type skillGroupWire struct {
	Category   string          `json:"category,omitempty"`
	Items      json.RawMessage `json:"items,omitempty"`
	Skills     json.RawMessage `json:"skills,omitempty"`
	SkillsList string          `json:"skillsList,omitempty"`
}

// UnmarshalJSON resolves the items/skills/skillsList aliases, preferring
// "items", then the legacy "skills", then the pre-joined "skillsList".
func (g *SkillGroup) UnmarshalJSON(data []byte) error {
	var wire skillGroupWire
	if err := json.Unmarshal(data, &wire); err != nil {
		return err
	}

	g.Category = wire.Category
	g.Items = StringOrList{}

	raw := wire.Items
	if len(raw) == 0 || string(raw) == "null" {
		raw = wire.Skills
	}
	if len(raw) > 0 && string(raw) != "null" {
		return g.Items.UnmarshalJSON(raw)
	}
	if wire.SkillsList != "" {
		g.Items = NewJoinedString(wire.SkillsList)
	}
	return nil
}

// MarshalJSON always emits the canonical "items" field name.
func (g SkillGroup) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Category string       `json:"category,omitempty"`
		Items    StringOrList `json:"items,omitempty"`
	}{Category: g.Category, Items: g.Items})
}

// Project is one project entry. Technologies may arrive as a sequence or
// as a pre-joined string; Description is free text, possibly multi-line.
type Project struct {
	Title        string       `json:"title,omitempty"`
	Description  string       `json:"description,omitempty"`
	Technologies StringOrList `json:"technologies,omitempty"`
	Year         string       `json:"year,omitempty"`
	Link         string       `json:"link,omitempty"`
}

// Certification is one certification entry.
type Certification struct {
	Name         string `json:"name,omitempty"`
	Issuer       string `json:"issuer,omitempty"`
	Date         string `json:"date,omitempty"`
	Description  string `json:"description,omitempty"`
	CredentialID string `json:"credentialId,omitempty"`
}

// Clone returns a deep copy of the resume that shares no memory with the
// receiver. Normalization works on a clone so the caller's data is never
// mutated or aliased.
func (r *ResumeData) Clone() *ResumeData {
	if r == nil {
		return nil
	}
	out := &ResumeData{Summary: r.Summary}

	if r.PersonalInfo != nil {
		info := *r.PersonalInfo
		out.PersonalInfo = &info
	}
	if r.Experience != nil {
		out.Experience = make([]Experience, len(r.Experience))
		for i, exp := range r.Experience {
			out.Experience[i] = exp
			if exp.Bullets != nil {
				out.Experience[i].Bullets = make([]string, len(exp.Bullets))
				copy(out.Experience[i].Bullets, exp.Bullets)
			}
		}
	}
	if r.Education != nil {
		out.Education = make([]Education, len(r.Education))
		copy(out.Education, r.Education)
	}
	if r.Skills != nil {
		out.Skills = make([]SkillGroup, len(r.Skills))
		for i, group := range r.Skills {
			out.Skills[i] = SkillGroup{Category: group.Category, Items: group.Items.Clone()}
		}
	}
	if r.Projects != nil {
		out.Projects = make([]Project, len(r.Projects))
		for i, proj := range r.Projects {
			out.Projects[i] = proj
			out.Projects[i].Technologies = proj.Technologies.Clone()
		}
	}
	if r.Certifications != nil {
		out.Certifications = make([]Certification, len(r.Certifications))
		copy(out.Certifications, r.Certifications)
	}
	return out
}
