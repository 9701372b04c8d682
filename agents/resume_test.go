package agents

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"careeragent/models"
)

func TestValidateAndCleanNormalizesSkills(t *testing.T) {
	agent := NewResumeAgent(failingLLM())

	doc := agent.ValidateAndClean(map[string]interface{}{
		"skills": []interface{}{
			map[string]interface{}{"name": "Go", "level": float64(85)},
			map[string]interface{}{"name": "SQL"},
			"Docker",
		},
	}, ResumeProfile{})

	require.Len(t, doc.Skills, 3)
	assert.Equal(t, models.ResumeSkill{Name: "Go", Level: 85}, doc.Skills[0])
	assert.Equal(t, models.ResumeSkill{Name: "SQL", Level: 50}, doc.Skills[1], "missing level defaults to 50")
	assert.Equal(t, models.ResumeSkill{Name: "Docker", Level: 70}, doc.Skills[2], "bare strings default to 70")
}

func TestValidateAndCleanBackfillsContactFromProfile(t *testing.T) {
	agent := NewResumeAgent(failingLLM())
	profile := ResumeProfile{
		Name:     "Sam Doe",
		Email:    "sam@example.com",
		Phone:    "555-0100",
		Location: "Austin, TX",
		LinkedIn: "linkedin.com/in/samdoe",
	}

	doc := agent.ValidateAndClean(map[string]interface{}{
		"header":  map[string]interface{}{"title": "Backend Developer"},
		"contact": map[string]interface{}{"email": "model@example.com"},
	}, profile)

	assert.Equal(t, "Sam Doe", doc.Header.Name)
	assert.Equal(t, "Backend Developer", doc.Header.Title)
	assert.Equal(t, "model@example.com", doc.Contact.Email, "model output wins when present")
	assert.Equal(t, "555-0100", doc.Contact.Phone)
	assert.Equal(t, "Austin, TX", doc.Contact.Address)
	assert.Equal(t, "linkedin.com/in/samdoe", doc.Contact.LinkedIn)
}

func TestValidateAndCleanProjectAndExperienceAliases(t *testing.T) {
	agent := NewResumeAgent(failingLLM())

	doc := agent.ValidateAndClean(map[string]interface{}{
		"projects": []interface{}{
			map[string]interface{}{
				"name":         "Chat Service",
				"technologies": []interface{}{"Go", "Redis"},
				"highlights":   []interface{}{"Handled 10k concurrent users"},
			},
		},
		"experience": []interface{}{
			map[string]interface{}{
				"title":        "Software Engineer",
				"company":      "Acme",
				"achievements": []interface{}{"Cut p99 latency by 40%"},
			},
			"not an object",
		},
	}, ResumeProfile{})

	require.Len(t, doc.Projects, 1)
	assert.Equal(t, "Chat Service", doc.Projects[0].Title)
	assert.Equal(t, []string{"Go", "Redis"}, doc.Projects[0].TechStack)
	assert.Equal(t, []string{"Handled 10k concurrent users"}, doc.Projects[0].Points)

	require.Len(t, doc.Experience, 1, "non-object entries are dropped")
	assert.Equal(t, "Software Engineer", doc.Experience[0].Role)
	assert.Equal(t, []string{"Cut p99 latency by 40%"}, doc.Experience[0].Points)
}

func TestValidateAndCleanEducationAndCertifications(t *testing.T) {
	agent := NewResumeAgent(failingLLM())

	doc := agent.ValidateAndClean(map[string]interface{}{
		"education": []interface{}{
			map[string]interface{}{"degree": "BSc Computer Science", "institution": "State University", "year": float64(2021)},
		},
		"certifications": []interface{}{
			"AWS Certified Developer",
			map[string]interface{}{"name": "CKA"},
			map[string]interface{}{"title": "Scrum Master"},
		},
	}, ResumeProfile{})

	require.Len(t, doc.Education, 1)
	assert.Equal(t, "2021", doc.Education[0].Year, "numeric years become strings")

	assert.Equal(t, []string{"AWS Certified Developer", "CKA", "Scrum Master"}, doc.Certifications)
}

func TestGenerateStructuredResumeErrorsWithoutFallback(t *testing.T) {
	agent := NewResumeAgent(failingLLM())

	result := agent.GenerateStructuredResume(context.Background(), ResumeProfile{Name: "Sam"},
		nil, nil, nil, nil, "Backend Developer", "")

	assert.Equal(t, StatusError, result.Status)
	assert.Nil(t, result.ResumeData)
	assert.Equal(t, "Failed to generate resume content", result.Message)
}

func TestGenerateStructuredResumeSuccess(t *testing.T) {
	llm := &stubLLM{jsonResult: map[string]interface{}{
		"header":  map[string]interface{}{"name": "Sam Doe", "title": "Backend Developer"},
		"summary": "Engineer with five years of API and infrastructure experience.",
		"skills":  []interface{}{map[string]interface{}{"name": "Go", "level": float64(90)}},
	}}
	agent := NewResumeAgent(llm)

	result := agent.GenerateStructuredResume(context.Background(), ResumeProfile{Name: "Sam Doe"},
		skillList("Go"), nil, nil, nil, "Backend Developer", "")

	require.Equal(t, StatusSuccess, result.Status)
	require.NotNil(t, result.ResumeData)
	assert.Equal(t, "Backend Developer", result.TargetRole)
	assert.Equal(t, "Sam Doe", result.ResumeData.Header.Name)
	assert.NotNil(t, result.ResumeData.Certifications, "empty sections stay as empty slices, never nil")
	assert.NotNil(t, result.ResumeData.Projects)
}

func TestTailorToJobDescriptionError(t *testing.T) {
	agent := NewResumeAgent(failingLLM())

	result := agent.TailorToJobDescription(context.Background(), models.ResumeDocument{}, "JD text", "SRE", "Acme")

	assert.Equal(t, StatusError, result.Status)
	assert.Nil(t, result.ResumeData)
	assert.False(t, result.Tailored)
}
