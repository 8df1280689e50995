package content

import (
	"testing"

	"portfolio-api/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate_StaticDatasets(t *testing.T) {
	require.NoError(t, Validate(Projects(), Skills(), Posts("me")))
}

func TestValidate_ProjectSlugsAreCaseInsensitive(t *testing.T) {
	projects := []domain.Project{{Slug: "wine-yard", Title: "A"}, {Slug: "Wine-Yard", Title: "B"}}

	err := Validate(projects, nil, nil)
	assert.ErrorContains(t, err, "wine-yard")
}

func TestValidate_RejectsUnknownProficiency(t *testing.T) {
	skills := []domain.Skill{{ID: "go", Name: "Go", Proficiency: "Guru"}}

	assert.Error(t, Validate(nil, skills, nil))
}

func TestValidate_RejectsDuplicatePostIDs(t *testing.T) {
	posts := []domain.Post{{ID: "a"}, {ID: "a"}}

	assert.Error(t, Validate(nil, nil, posts))
}

func TestProjects_HaveBothPartitions(t *testing.T) {
	var featured, other int
	for _, p := range Projects() {
		if p.Featured {
			featured++
		} else {
			other++
		}
	}
	assert.Positive(t, featured)
	assert.Positive(t, other)
}
