package ats

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-builder/internal/types"
)

func completeResume() *types.ResumeData {
	return &types.ResumeData{
		PersonalInfo: &types.PersonalInfo{
			FullName: "Jane Doe",
			Email:    "jane@example.com",
			Phone:    "555-0100",
			LinkedIn: "linkedin.com/in/janedoe",
		},
		Summary: "Backend engineer with eight years of experience designing distributed systems in Go.",
		Experience: []types.Experience{
			{
				Company:  "Acme",
				Position: "Senior Engineer",
				Bullets: []string{
					"Cut infrastructure costs by 30%",
					"Served 2M daily users",
				},
			},
		},
		Skills: []types.SkillGroup{
			{Category: "Languages", Items: types.NewStringList("Go", "Python")},
		},
	}
}

func TestScoreCompleteResume(t *testing.T) {
	result := Score(completeResume(), "")

	assert.Equal(t, 100, result.Breakdown.Completeness)
	assert.Equal(t, 100, result.Breakdown.Impact)
	assert.Equal(t, keywordBaseline, result.Breakdown.Keywords)
	assert.Equal(t, 100, result.Breakdown.Formatting)
	// 100*0.3 + 100*0.3 + 50*0.2 + 100*0.2
	assert.Equal(t, 90, result.OverallScore)

	// Only the missing job description leaves a suggestion.
	require.Len(t, result.Suggestions, 1)
	assert.Contains(t, result.Suggestions[0], "job description")
}

func TestScoreEmptyResume(t *testing.T) {
	result := Score(&types.ResumeData{}, "")

	assert.Equal(t, 0, result.Breakdown.Completeness)
	assert.Equal(t, 0, result.Breakdown.Impact)
	assert.Equal(t, 100, result.Breakdown.Formatting)
	assert.NotEmpty(t, result.Suggestions)
}

func TestScoreNilData(t *testing.T) {
	result := Score(nil, "")
	assert.Equal(t, 0, result.Breakdown.Completeness)
}

func TestScoreCompletenessPartial(t *testing.T) {
	data := &types.ResumeData{
		PersonalInfo: &types.PersonalInfo{FullName: "Jane Doe", Email: "jane@example.com"},
	}
	result := Score(data, "")

	// 20 name + 20 email; short summary and no experience earn nothing.
	assert.Equal(t, 40, result.Breakdown.Completeness)
	assert.Contains(t, result.Suggestions[0], "completeness")
}

func TestScoreShortSummaryEarnsNothing(t *testing.T) {
	withShort := Score(&types.ResumeData{Summary: "Engineer."}, "")
	withLong := Score(&types.ResumeData{Summary: "Backend engineer with eight years of experience designing distributed systems."}, "")

	assert.Equal(t, 0, withShort.Breakdown.Completeness)
	assert.Equal(t, 20, withLong.Breakdown.Completeness)
}

func TestScoreImpactRatio(t *testing.T) {
	data := &types.ResumeData{
		Experience: []types.Experience{
			{Bullets: []string{
				"Cut costs by 30%",
				"Led the platform team",
				"Saved $1M annually",
				"Improved reliability",
			}},
		},
	}
	result := Score(data, "")

	assert.Equal(t, 50, result.Breakdown.Impact)
	for _, s := range result.Suggestions {
		assert.NotContains(t, s, "metrics")
	}
}

func TestScoreImpactLowSuggestsMetrics(t *testing.T) {
	data := &types.ResumeData{
		Experience: []types.Experience{
			{Bullets: []string{"Led the team", "Improved morale", "Shipped features"}},
		},
	}
	result := Score(data, "")

	assert.Equal(t, 0, result.Breakdown.Impact)

	found := false
	for _, s := range result.Suggestions {
		if s == "Try to include more numbers and metrics (e.g., %, $) in your experience bullet points to show impact." {
			found = true
		}
	}
	assert.True(t, found)
}

func TestScoreNoBulletsSuggestsAddingThem(t *testing.T) {
	data := &types.ResumeData{
		Experience: []types.Experience{{Company: "Acme", Position: "Engineer"}},
	}
	result := Score(data, "")

	assert.Equal(t, 0, result.Breakdown.Impact)
	assert.Contains(t, result.Suggestions, "Add bullet points to your experience sections.")
}

func TestScoreKeywordsMatchJobDescription(t *testing.T) {
	result := Score(completeResume(), "Looking for a backend engineer who knows distributed systems and Go.")

	// backend, engineer, knows, distributed, systems: only "knows" is
	// absent from the resume corpus.
	assert.Equal(t, 80, result.Breakdown.Keywords)
}

func TestScoreKeywordsNoOverlap(t *testing.T) {
	result := Score(completeResume(), "Seeking veterinary dentistry specialist.")

	assert.Equal(t, 0, result.Breakdown.Keywords)

	found := false
	for _, s := range result.Suggestions {
		if s == "Tailor your resume to the job description: mirror its key skills and terminology." {
			found = true
		}
	}
	assert.True(t, found)
}

func TestScoreDeterministic(t *testing.T) {
	jd := "Backend engineer, Go, distributed systems."
	first := Score(completeResume(), jd)
	second := Score(completeResume(), jd)

	assert.Equal(t, first, second)
}

func TestExtractKeywords(t *testing.T) {
	keywords := extractKeywords("Strong Go engineer with 5+ years experience in Kubernetes!")

	// Short words, stop words, and filler are dropped.
	assert.NotContains(t, keywords, "go")
	assert.NotContains(t, keywords, "with")
	assert.NotContains(t, keywords, "strong")
	assert.NotContains(t, keywords, "experience")
	assert.Contains(t, keywords, "kubernetes")
	assert.Contains(t, keywords, "engineer")
}
