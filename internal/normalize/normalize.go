// Package normalize reshapes raw resume data into the render-ready form
// templates and layouts expect.
package normalize

import (
	"strings"

	"github.com/jonathan/resume-builder/internal/types"
)

// skillsSeparator joins skill items and project technologies for display.
const skillsSeparator = ", "

// Normalize produces the render-ready copy of a resume. It is a pure
// function: no I/O, no error paths for well-typed input, and the caller's
// data is never mutated or aliased. Absent sections stay absent so
// downstream layouts can suppress them entirely.
func Normalize(raw *types.ResumeData) *types.NormalizedResumeData {
	if raw == nil {
		return &types.NormalizedResumeData{}
	}

	// Work on a deep copy so slice fields carried through structurally
	// (experience bullets in particular) never alias the input.
	src := raw.Clone()

	out := &types.NormalizedResumeData{
		PersonalInfo: src.PersonalInfo,
		Summary:      src.Summary,
	}

	if src.Skills != nil {
		out.Skills = make([]types.NormalizedSkillGroup, len(src.Skills))
		for i, group := range src.Skills {
			out.Skills[i] = types.NormalizedSkillGroup{
				Category:   group.Category,
				SkillsList: group.Items.Display(skillsSeparator),
			}
		}
	}

	if src.Experience != nil {
		out.Experience = make([]types.NormalizedExperience, len(src.Experience))
		for i, exp := range src.Experience {
			out.Experience[i] = types.NormalizedExperience{
				Experience: exp,
				Duration:   FormatDateRange(exp.StartDate, exp.EndDate, exp.Current),
			}
		}
	}

	if src.Education != nil {
		out.Education = make([]types.NormalizedEducation, len(src.Education))
		for i, edu := range src.Education {
			out.Education[i] = types.NormalizedEducation{
				Education:      edu,
				GraduationYear: FormatDate(edu.EndDate),
			}
		}
	}

	if src.Projects != nil {
		out.Projects = make([]types.NormalizedProject, len(src.Projects))
		for i, proj := range src.Projects {
			out.Projects[i] = types.NormalizedProject{
				Title:        proj.Title,
				Technologies: proj.Technologies.Display(skillsSeparator),
				Year:         proj.Year,
				Link:         proj.Link,
				Bullets:      splitBullets(proj.Description),
			}
		}
	}

	if src.Certifications != nil {
		out.Certifications = make([]types.Certification, len(src.Certifications))
		for i, cert := range src.Certifications {
			out.Certifications[i] = cert
			out.Certifications[i].Date = FormatDate(cert.Date)
		}
	}

	return out
}

// splitBullets turns a free-text project description into a bullet list:
// one bullet per non-blank line. An empty description yields no bullets.
func splitBullets(description string) []string {
	if description == "" {
		return nil
	}
	lines := strings.Split(description, "\n")
	bullets := make([]string, 0, len(lines))
	for _, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}
		bullets = append(bullets, line)
	}
	if len(bullets) == 0 {
		return nil
	}
	return bullets
}
