package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHasSections(t *testing.T) {
	empty := &NormalizedResumeData{
		PersonalInfo: &PersonalInfo{FullName: "Jane Doe"},
	}
	assert.False(t, empty.HasSections(), "header alone is not a section")

	withSummary := &NormalizedResumeData{Summary: "Engineer."}
	assert.True(t, withSummary.HasSections())

	withExperience := &NormalizedResumeData{
		Experience: []NormalizedExperience{{}},
	}
	assert.True(t, withExperience.HasSections())

	withCerts := &NormalizedResumeData{
		Certifications: []Certification{{Name: "Cert"}},
	}
	assert.True(t, withCerts.HasSections())
}
