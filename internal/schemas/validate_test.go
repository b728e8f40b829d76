package schemas

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateResumeValid(t *testing.T) {
	payload := `{
		"personalInfo": {"fullName": "Jane Doe", "email": "jane@example.com"},
		"summary": "Engineer.",
		"experience": [
			{"company": "Acme", "position": "Engineer", "current": true, "bullets": ["Did things"]}
		],
		"skills": [
			{"category": "Languages", "items": ["Go", "Python"]}
		]
	}`

	assert.NoError(t, ValidateResume([]byte(payload)))
}

func TestValidateResumeMissingSectionsIsValid(t *testing.T) {
	// Every section is optional; an empty object is a valid resume.
	assert.NoError(t, ValidateResume([]byte(`{}`)))
}

func TestValidateResumeSkillAliases(t *testing.T) {
	// Legacy field names and string-vs-array item shapes all pass.
	payload := `{
		"skills": [
			{"category": "A", "items": "Go, Python"},
			{"category": "B", "skills": ["Docker"]},
			{"category": "C", "skillsList": "SQL, Redis"}
		]
	}`

	assert.NoError(t, ValidateResume([]byte(payload)))
}

func TestValidateResumeWrongTypes(t *testing.T) {
	payload := `{
		"summary": 42,
		"experience": "not an array"
	}`

	err := ValidateResume([]byte(payload))
	require.Error(t, err)

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Len(t, validationErr.Errors, 2)

	fields := make([]string, 0, len(validationErr.Errors))
	for _, fe := range validationErr.Errors {
		fields = append(fields, fe.Field)
	}
	assert.Contains(t, fields, "summary")
	assert.Contains(t, fields, "experience")
}

func TestValidateResumeNestedViolation(t *testing.T) {
	payload := `{
		"experience": [
			{"company": "Acme", "bullets": [1, 2]}
		]
	}`

	err := ValidateResume([]byte(payload))
	require.Error(t, err)

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.NotEmpty(t, validationErr.Details())
}

func TestValidateResumeMalformedJSON(t *testing.T) {
	err := ValidateResume([]byte(`{"summary": `))
	require.Error(t, err)

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "(root)", validationErr.Errors[0].Field)
}

func TestValidationErrorMessage(t *testing.T) {
	err := &ValidationError{Errors: []FieldError{
		{Field: "summary", Message: "Invalid type"},
	}}

	assert.Contains(t, err.Error(), "validation failed")
	assert.Contains(t, err.Error(), "summary: Invalid type")
}
