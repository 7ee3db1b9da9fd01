package services

import (
	"testing"

	"github.com/careerconnect/careerconnect/internal/dtos"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractJSON_PlainObject(t *testing.T) {
	out := ExtractJSON[dtos.ResumeMatchResult](`{"matchedSkills":["Go"],"missingSkills":[],"suggestions":[],"percentageMatch":80}`)
	require.NotNil(t, out)
	assert.Equal(t, []string{"Go"}, out.MatchedSkills)
	assert.Equal(t, 80.0, out.PercentageMatch)
}

func TestExtractJSON_SurroundedByProse(t *testing.T) {
	reply := "Sure! Here is the analysis:\n```json\n" +
		`{"matchedSkills":[],"missingSkills":["SQL"],"suggestions":["learn SQL"],"percentageMatch":40}` +
		"\n```\nHope that helps."
	out := ExtractJSON[dtos.ResumeMatchResult](reply)
	require.NotNil(t, out)
	assert.Equal(t, []string{"SQL"}, out.MissingSkills)
}

func TestExtractJSON_NoObject(t *testing.T) {
	assert.Nil(t, ExtractJSON[dtos.ResumeMatchResult]("I could not process that resume."))
}

func TestExtractJSON_MalformedObject(t *testing.T) {
	assert.Nil(t, ExtractJSON[dtos.ResumeMatchResult](`{"matchedSkills": [unquoted]}`))
}
