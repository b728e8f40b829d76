// Package fallback renders a resume PDF locally with headless Chrome,
// bypassing the template and remote compile path entirely.
package fallback

import (
	"html/template"
	"strings"

	"github.com/jonathan/resume-builder/internal/types"
)

// layoutHTML is the generic, template-independent resume layout. Sections
// appear in a fixed order and only when present; every field interpolation
// tolerates absent data. html/template escaping keeps user content inert.
const layoutHTML = `<!DOCTYPE html>
<html>
<head>
<meta charset="UTF-8">
<style>
  body {
    font-family: 'Times New Roman', Times, serif;
    color: #333;
    font-size: 11pt;
    line-height: 1.4;
    padding: 0.5in;
    max-width: 8.5in;
    margin: 0 auto;
  }
  .header { text-align: center; margin-bottom: 20px; }
  .header h1 { font-size: 24pt; margin: 0; text-transform: uppercase; }
  .header .role { font-size: 14pt; font-weight: bold; margin: 5px 0; }
  .section { margin-bottom: 15px; }
  .section-title {
    font-size: 14pt;
    font-weight: bold;
    text-transform: uppercase;
    border-bottom: 1px solid #000;
    margin-bottom: 10px;
    padding-bottom: 2px;
  }
  .entry { margin-bottom: 12px; }
  .entry-header { display: flex; justify-content: space-between; font-weight: bold; font-size: 11pt; }
  .entry-sub { display: flex; justify-content: space-between; font-style: italic; font-size: 11pt; margin-bottom: 4px; }
  ul { margin: 2px 0 10px 20px; padding: 0; }
  li { margin-bottom: 2px; font-size: 10.5pt; }
</style>
</head>
<body>
<div class="header">
  <h1>{{if .PersonalInfo}}{{with .PersonalInfo.FullName}}{{.}}{{else}}Resume{{end}}{{else}}Resume{{end}}</h1>
  {{if .PersonalInfo}}{{with .PersonalInfo.Title}}<div class="role">{{.}}</div>{{end}}
  <div>{{.PersonalInfo.Email}}{{if and .PersonalInfo.Email .PersonalInfo.Phone}} | {{end}}{{.PersonalInfo.Phone}}</div>
  {{end}}
</div>

{{if .Summary}}
<div class="section" id="summary">
  <div class="section-title">Summary</div>
  <p>{{.Summary}}</p>
</div>
{{end}}

{{if .Skills}}
<div class="section" id="skills">
  <div class="section-title">Skills</div>
  {{range .Skills}}<div><strong>{{.Category}}{{if .Category}}:{{end}}</strong> {{.SkillsList}}</div>
  {{end}}
</div>
{{end}}

{{if .Certifications}}
<div class="section" id="certifications">
  <div class="section-title">Certifications</div>
  {{range .Certifications}}<div class="entry">
    <div class="entry-header"><span>{{.Name}}</span><span>{{.Date}}</span></div>
    {{if .Issuer}}<div class="entry-sub"><span>{{.Issuer}}</span><span>{{.CredentialID}}</span></div>{{end}}
  </div>
  {{end}}
</div>
{{end}}

{{if .Experience}}
<div class="section" id="experience">
  <div class="section-title">Experience</div>
  {{range .Experience}}<div class="entry">
    <div class="entry-header"><span>{{.Position}}</span><span>{{.Duration}}</span></div>
    <div class="entry-sub"><span>{{.Company}}</span><span>{{.Location}}</span></div>
    {{if .Bullets}}<ul>{{range .Bullets}}<li>{{.}}</li>{{end}}</ul>{{end}}
  </div>
  {{end}}
</div>
{{end}}

{{if .Projects}}
<div class="section" id="projects">
  <div class="section-title">Projects</div>
  {{range .Projects}}<div class="entry">
    <div class="entry-header"><span><strong>{{.Title}}</strong>{{if .Technologies}} | {{.Technologies}}{{end}}</span><span>{{.Year}}</span></div>
    {{if .Bullets}}<ul>{{range .Bullets}}<li>{{.}}</li>{{end}}</ul>{{end}}
  </div>
  {{end}}
</div>
{{end}}

{{if .Education}}
<div class="section" id="education">
  <div class="section-title">Education</div>
  {{range .Education}}<div class="entry">
    <div class="entry-header"><span>{{.Degree}}{{if .Field}}, {{.Field}}{{end}}</span><span>{{.GraduationYear}}</span></div>
    <div class="entry-sub"><span>{{.School}}</span><span>{{if .GPA}}GPA: {{.GPA}}{{end}}</span></div>
  </div>
  {{end}}
</div>
{{end}}

</body>
</html>
`

// layoutTemplate is parsed once; execution against per-request data is
// safe for concurrent use.
var layoutTemplate = template.Must(template.New("fallback").Parse(layoutHTML))

// BuildHTML produces the fallback layout for the given normalized resume.
// Deterministic for identical input; never fails for well-typed data.
func BuildHTML(data *types.NormalizedResumeData) (string, error) {
	if data == nil {
		data = &types.NormalizedResumeData{}
	}
	var out strings.Builder
	if err := layoutTemplate.Execute(&out, data); err != nil {
		return "", &ErrRenderUnavailable{Message: "failed to build layout", Cause: err}
	}
	return out.String(), nil
}
