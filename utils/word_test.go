package utils

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"careeragent/models"
)

func TestRenderResumeDocx(t *testing.T) {
	doc := &models.ResumeDocument{
		Header:  models.ResumeHeader{Name: "Jane Smith", Title: "Backend Developer"},
		Contact: models.ResumeContact{Email: "jane@example.com", Phone: "555-0100"},
		Summary: "Backend developer with three years of Go experience.",
		Skills:  []models.ResumeSkill{{Name: "Go", Level: 80}, {Name: "PostgreSQL", Level: 70}},
		Experience: []models.ResumeExperience{
			{Role: "Developer", Company: "Acme", Duration: "2022 - Present", Points: []string{"Built payment APIs"}},
		},
		Education:      []models.ResumeEducation{{Degree: "BS Computer Science", Institution: "State University", Year: "2021"}},
		Certifications: []string{"AWS Certified Developer"},
	}

	var buf bytes.Buffer
	err := RenderResumeDocx(doc, &buf)

	require.NoError(t, err)
	// .docx files are zip archives
	assert.Equal(t, []byte{'P', 'K'}, buf.Bytes()[:2])
}

func TestJoinNonEmpty(t *testing.T) {
	assert.Equal(t, "a | b", joinNonEmpty(" | ", "a", "", "b"))
	assert.Equal(t, "", joinNonEmpty(" | ", "", ""))
}
