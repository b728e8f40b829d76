// Package ats scores a resume the way applicant tracking systems read
// it. Scoring is deterministic and heuristic: no model calls, the same
// input always yields the same score.
package ats

import (
	"regexp"
	"strings"

	"github.com/jonathan/resume-builder/internal/types"
)

// Breakdown holds the per-dimension scores, each 0-100.
type Breakdown struct {
	Completeness int `json:"completeness"`
	Impact       int `json:"impact"`
	Keywords     int `json:"keywords"`
	Formatting   int `json:"formatting"`
}

// Result is the full scoring outcome.
type Result struct {
	OverallScore int       `json:"overallScore"`
	Breakdown    Breakdown `json:"breakdown"`
	Suggestions  []string  `json:"suggestions"`
}

// Overall weights. Formatting is weighted even though it is constant:
// LaTeX output guarantees machine-readable structure, and the weight
// keeps the overall score comparable across resumes.
const (
	completenessWeight = 0.3
	impactWeight       = 0.3
	keywordsWeight     = 0.2
	formattingWeight   = 0.2
)

// keywordBaseline is the keyword score when no job description is
// supplied to match against.
const keywordBaseline = 50

var metricPattern = regexp.MustCompile(`\d+|%|\$`)

// Score rates resume data for completeness, quantified impact, and
// keyword coverage against an optional job description.
func Score(data *types.ResumeData, jobDescription string) Result {
	if data == nil {
		data = &types.ResumeData{}
	}

	var suggestions []string

	completeness := scoreCompleteness(data)
	if completeness < 100 {
		suggestions = append(suggestions, "Complete your personal information and add at least one experience to improve completeness.")
	}

	impact, impactSuggestion := scoreImpact(data)
	if impactSuggestion != "" {
		suggestions = append(suggestions, impactSuggestion)
	}

	keywords, keywordSuggestion := scoreKeywords(data, jobDescription)
	if keywordSuggestion != "" {
		suggestions = append(suggestions, keywordSuggestion)
	}

	formatting := 100

	overall := int(float64(completeness)*completenessWeight +
		float64(impact)*impactWeight +
		float64(keywords)*keywordsWeight +
		float64(formatting)*formattingWeight + 0.5)

	return Result{
		OverallScore: overall,
		Breakdown: Breakdown{
			Completeness: completeness,
			Impact:       impact,
			Keywords:     keywords,
			Formatting:   formatting,
		},
		Suggestions: suggestions,
	}
}

// scoreCompleteness awards points for the fields recruiters and parsers
// look for first.
func scoreCompleteness(data *types.ResumeData) int {
	score := 0
	if data.PersonalInfo != nil {
		if data.PersonalInfo.FullName != "" {
			score += 20
		}
		if data.PersonalInfo.Email != "" {
			score += 20
		}
		if data.PersonalInfo.Phone != "" {
			score += 10
		}
		if data.PersonalInfo.LinkedIn != "" {
			score += 10
		}
	}
	if len(data.Summary) > 50 {
		score += 20
	}
	if len(data.Experience) >= 1 {
		score += 20
	}
	return min(score, 100)
}

// scoreImpact measures how many experience bullets carry a number,
// percentage, or dollar figure.
func scoreImpact(data *types.ResumeData) (int, string) {
	bulletCount := 0
	metricCount := 0
	for _, exp := range data.Experience {
		for _, bullet := range exp.Bullets {
			bulletCount++
			if metricPattern.MatchString(bullet) {
				metricCount++
			}
		}
	}

	if bulletCount == 0 {
		return 0, "Add bullet points to your experience sections."
	}

	impact := int(float64(metricCount)/float64(bulletCount)*100 + 0.5)
	if impact < 50 {
		return impact, "Try to include more numbers and metrics (e.g., %, $) in your experience bullet points to show impact."
	}
	return impact, ""
}

// scoreKeywords rates how much of the job description's vocabulary the
// resume covers. Without a job description there is nothing to match
// against and a neutral baseline applies.
func scoreKeywords(data *types.ResumeData, jobDescription string) (int, string) {
	if strings.TrimSpace(jobDescription) == "" {
		return keywordBaseline, "Add a job description to get a keyword matching score."
	}

	wanted := extractKeywords(jobDescription)
	if len(wanted) == 0 {
		return keywordBaseline, ""
	}

	corpus := resumeCorpus(data)
	matched := 0
	for keyword := range wanted {
		if strings.Contains(corpus, keyword) {
			matched++
		}
	}

	score := int(float64(matched)/float64(len(wanted))*100 + 0.5)
	if score < 50 {
		return score, "Tailor your resume to the job description: mirror its key skills and terminology."
	}
	return score, ""
}

// extractKeywords lowercases the text and keeps distinct words of four
// or more letters, skipping filler words that carry no signal.
func extractKeywords(text string) map[string]struct{} {
	keywords := make(map[string]struct{})
	for _, word := range strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !('a' <= r && r <= 'z') && !('0' <= r && r <= '9')
	}) {
		if len(word) < 4 || stopWords[word] {
			continue
		}
		keywords[word] = struct{}{}
	}
	return keywords
}

var stopWords = map[string]bool{
	"with": true, "that": true, "this": true, "have": true, "will": true,
	"your": true, "from": true, "they": true, "their": true, "about": true,
	"were": true, "been": true, "more": true, "than": true, "them": true,
	"when": true, "what": true, "which": true, "would": true, "should": true,
	"must": true, "able": true, "work": true, "working": true, "years": true,
	"experience": true, "team": true, "role": true, "strong": true,
	"looking": true, "seeking": true,
}

// resumeCorpus flattens every free-text field into one lowercased blob
// for substring matching.
func resumeCorpus(data *types.ResumeData) string {
	var sb strings.Builder

	sb.WriteString(data.Summary)
	sb.WriteString(" ")
	for _, exp := range data.Experience {
		sb.WriteString(exp.Company)
		sb.WriteString(" ")
		sb.WriteString(exp.Position)
		sb.WriteString(" ")
		sb.WriteString(strings.Join(exp.Bullets, " "))
		sb.WriteString(" ")
	}
	for _, edu := range data.Education {
		sb.WriteString(edu.Degree)
		sb.WriteString(" ")
		sb.WriteString(edu.Field)
		sb.WriteString(" ")
	}
	for _, group := range data.Skills {
		sb.WriteString(group.Category)
		sb.WriteString(" ")
		sb.WriteString(group.Items.Display(" "))
		sb.WriteString(" ")
	}
	for _, project := range data.Projects {
		sb.WriteString(project.Title)
		sb.WriteString(" ")
		sb.WriteString(project.Description)
		sb.WriteString(" ")
		sb.WriteString(project.Technologies.Display(" "))
		sb.WriteString(" ")
	}
	for _, cert := range data.Certifications {
		sb.WriteString(cert.Name)
		sb.WriteString(" ")
	}

	return strings.ToLower(sb.String())
}
